package gamestate

import (
	"fmt"
	"strings"
)

// ActorRole identifies whose state a trigger samples
type ActorRole int

const (
	RoleSelf ActorRole = iota
	RoleTarget
	RoleTargetOfTarget
	RoleFocus
)

var roleNames = map[ActorRole]string{
	RoleSelf:           "self",
	RoleTarget:         "target",
	RoleTargetOfTarget: "targettarget",
	RoleFocus:          "focus",
}

func (r ActorRole) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("ActorRole(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler
func (r ActorRole) MarshalText() ([]byte, error) {
	s, ok := roleNames[r]
	if !ok {
		return nil, fmt.Errorf("unknown actor role %d", int(r))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *ActorRole) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for role, n := range roleNames {
		if n == name {
			*r = role
			return nil
		}
	}
	return fmt.Errorf("unknown actor role %q", string(text))
}

// Actor is an opaque handle to a game object
type Actor struct {
	ID   int
	Name string
}

// Vitals is the resource state of an actor
type Vitals struct {
	Level  int
	HP     int
	MaxHP  int
	MP     int
	MaxMP  int
	CP     int
	MaxCP  int
	GP     int
	MaxGP  int
	HasPet bool
}

// StatusEffect is a buff or debuff on an actor
type StatusEffect struct {
	DescriptorID  int
	RemainingTime float64
	StackCount    int
	SourceIsSelf  bool
}

// Recast is the cooldown state of an ability or item.
// RecastTime covers every charge; Elapsed counts from the start of the recast.
type Recast struct {
	RecastTime float64
	Elapsed    float64
	MaxCharges int
}

// DescriptorKind selects which catalog a descriptor lookup searches
type DescriptorKind string

const (
	KindStatus  DescriptorKind = "status"
	KindAbility DescriptorKind = "ability"
	KindItem    DescriptorKind = "item"
)

// Descriptor identifies a game entity a trigger matches against
type Descriptor struct {
	Name      string `json:"name" yaml:"name"`
	ID        int    `json:"id" yaml:"id"`
	Icon      int    `json:"icon" yaml:"icon"`
	MaxStacks int    `json:"max_stacks,omitempty" yaml:"max_stacks,omitempty"`
	ComboIDs  []int  `json:"combo_ids,omitempty" yaml:"combo_ids,omitempty"`
}

// Clone returns a copy that does not share the combo set
func (d Descriptor) Clone() Descriptor {
	if d.ComboIDs != nil {
		d.ComboIDs = append([]int(nil), d.ComboIDs...)
	}
	return d
}
