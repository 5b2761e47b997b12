package triggers

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

// TriggerCondition selects whether a status must be present or absent
type TriggerCondition string

const (
	ConditionActive    TriggerCondition = "active"
	ConditionNotActive TriggerCondition = "not_active"
)

// UnmarshalText implements encoding.TextUnmarshaler
func (c *TriggerCondition) UnmarshalText(text []byte) error {
	switch v := TriggerCondition(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case ConditionActive, ConditionNotActive:
		*c = v
		return nil
	case "":
		*c = ConditionActive
		return nil
	default:
		return fmt.Errorf("unknown trigger condition %q", string(text))
	}
}

// StatusTrigger fires on the presence or absence of any configured status
// effect on an actor
type StatusTrigger struct {
	Descriptors []gamestate.Descriptor `json:"descriptors" yaml:"descriptors"`
	Target      gamestate.ActorRole    `json:"target" yaml:"target"`
	OnlyMine    bool                   `json:"only_mine,omitempty" yaml:"only_mine,omitempty"`
	Condition   TriggerCondition       `json:"condition" yaml:"condition"`
	Duration    NumericCondition       `json:"duration" yaml:"duration"`
	Stacks      NumericCondition       `json:"stacks" yaml:"stacks"`
}

func (t *StatusTrigger) setDefaults() {
	if t.Condition == "" {
		t.Condition = ConditionActive
	}
}

// Evaluate implements the status variant of Trigger.Evaluate
func (t *StatusTrigger) Evaluate(p gamestate.Provider, preview bool) (bool, datasource.DataSource) {
	if len(t.Descriptors) == 0 {
		return false, datasource.DataSource{}
	}

	if preview {
		return true, previewData(firstDescriptor(t.Descriptors))
	}

	actor, ok := p.FindActor(t.Target)
	if !ok {
		return false, datasource.DataSource{}
	}

	effect, descriptor, found := t.match(p.StatusEffects(actor))

	ds := datasource.DataSource{
		ID:        descriptor.ID,
		Icon:      descriptor.Icon,
		Name:      descriptor.Name,
		MaxStacks: descriptor.MaxStacks,
	}
	if found {
		ds.Value = effect.RemainingTime
		ds.Duration = effect.RemainingTime
		ds.Stacks = effect.StackCount
		ds.Active = true
	}

	if t.Condition == ConditionNotActive {
		return !found, ds
	}

	triggered := found &&
		t.Duration.Check(effect.RemainingTime) &&
		t.Stacks.Check(float64(effect.StackCount))
	return triggered, ds
}

// match returns the first configured descriptor present in effects. When
// none is present the first descriptor is returned for display.
func (t *StatusTrigger) match(effects []gamestate.StatusEffect) (gamestate.StatusEffect, gamestate.Descriptor, bool) {
	for _, d := range t.Descriptors {
		for _, e := range effects {
			if e.DescriptorID != d.ID {
				continue
			}
			if t.OnlyMine && !e.SourceIsSelf {
				continue
			}
			return e, d, true
		}
	}
	return gamestate.StatusEffect{}, t.Descriptors[0], false
}
