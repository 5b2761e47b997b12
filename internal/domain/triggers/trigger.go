package triggers

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

// Kind tags which variant a Trigger holds
type Kind string

const (
	KindStatus         Kind = "status"
	KindCooldown       Kind = "cooldown"
	KindItemCooldown   Kind = "item_cooldown"
	KindCharacterState Kind = "character_state"
)

// Kinds lists the trigger kinds in display order
func Kinds() []Kind {
	return []Kind{KindStatus, KindCooldown, KindItemCooldown, KindCharacterState}
}

// ParseKind resolves a kind name
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown trigger kind %q", s)
}

// Trigger is a closed variant over the supported trigger kinds. Exactly
// the payload matching Kind is read; the others are ignored.
type Trigger struct {
	Kind           Kind                   `json:"kind" yaml:"kind"`
	Status         *StatusTrigger         `json:"status,omitempty" yaml:"status,omitempty"`
	Cooldown       *CooldownTrigger       `json:"cooldown,omitempty" yaml:"cooldown,omitempty"`
	ItemCooldown   *ItemCooldownTrigger   `json:"item_cooldown,omitempty" yaml:"item_cooldown,omitempty"`
	CharacterState *CharacterStateTrigger `json:"character_state,omitempty" yaml:"character_state,omitempty"`
}

// NewStatus wraps a status trigger
func NewStatus(t StatusTrigger) Trigger {
	t.setDefaults()
	return Trigger{Kind: KindStatus, Status: &t}
}

// NewCooldown wraps a cooldown trigger
func NewCooldown(t CooldownTrigger) Trigger {
	return Trigger{Kind: KindCooldown, Cooldown: &t}
}

// NewItemCooldown wraps an item cooldown trigger
func NewItemCooldown(t ItemCooldownTrigger) Trigger {
	return Trigger{Kind: KindItemCooldown, ItemCooldown: &t}
}

// NewCharacterState wraps a character state trigger
func NewCharacterState(t CharacterStateTrigger) Trigger {
	return Trigger{Kind: KindCharacterState, CharacterState: &t}
}

// Evaluate samples game state and reports whether the trigger fired along
// with the normalized data. In preview mode every variant fires with
// synthetic data. A missing payload or unknown kind never fires.
func (t Trigger) Evaluate(p gamestate.Provider, preview bool) (bool, datasource.DataSource) {
	switch t.Kind {
	case KindStatus:
		if t.Status != nil {
			return t.Status.Evaluate(p, preview)
		}
	case KindCooldown:
		if t.Cooldown != nil {
			return t.Cooldown.Evaluate(p, preview)
		}
	case KindItemCooldown:
		if t.ItemCooldown != nil {
			return t.ItemCooldown.Evaluate(p, preview)
		}
	case KindCharacterState:
		if t.CharacterState != nil {
			return t.CharacterState.Evaluate(p, preview)
		}
	}
	return false, datasource.DataSource{}
}

// Label is a short human-readable description for editor lists
func (t Trigger) Label() string {
	switch t.Kind {
	case KindStatus:
		if t.Status != nil && len(t.Status.Descriptors) > 0 {
			return "Status: " + t.Status.Descriptors[0].Name
		}
	case KindCooldown:
		if t.Cooldown != nil && t.Cooldown.Descriptor != nil {
			return "Cooldown: " + t.Cooldown.Descriptor.Name
		}
	case KindItemCooldown:
		if t.ItemCooldown != nil && t.ItemCooldown.Descriptor != nil {
			return "Item: " + t.ItemCooldown.Descriptor.Name
		}
	case KindCharacterState:
		if t.CharacterState != nil {
			return "Character: " + t.CharacterState.Role.String()
		}
	}
	return string(t.Kind)
}

// Clone deep-copies the trigger and its payload
func (t Trigger) Clone() Trigger {
	out := Trigger{Kind: t.Kind}
	if t.Status != nil {
		s := *t.Status
		s.Descriptors = cloneDescriptors(s.Descriptors)
		out.Status = &s
	}
	if t.Cooldown != nil {
		c := *t.Cooldown
		c.Descriptor = cloneDescriptor(c.Descriptor)
		out.Cooldown = &c
	}
	if t.ItemCooldown != nil {
		i := *t.ItemCooldown
		i.Descriptor = cloneDescriptor(i.Descriptor)
		out.ItemCooldown = &i
	}
	if t.CharacterState != nil {
		c := *t.CharacterState
		out.CharacterState = &c
	}
	return out
}

func cloneDescriptor(d *gamestate.Descriptor) *gamestate.Descriptor {
	if d == nil {
		return nil
	}
	c := d.Clone()
	return &c
}

func cloneDescriptors(ds []gamestate.Descriptor) []gamestate.Descriptor {
	if ds == nil {
		return nil
	}
	out := make([]gamestate.Descriptor, len(ds))
	for i, d := range ds {
		out[i] = d.Clone()
	}
	return out
}
