package triggers

import (
	"math"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

// CooldownTrigger fires on the recast state of an ability
type CooldownTrigger struct {
	Descriptor *gamestate.Descriptor `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
	Cooldown   NumericCondition      `json:"cooldown" yaml:"cooldown"`
	Charges    NumericCondition      `json:"charges" yaml:"charges"`
	Combo      BoolCondition         `json:"combo" yaml:"combo"`
	Usable     BoolCondition         `json:"usable" yaml:"usable"`
	Range      BoolCondition         `json:"range" yaml:"range"`
	Los        BoolCondition         `json:"los" yaml:"los"`
}

// Evaluate implements the cooldown variant of Trigger.Evaluate
func (t *CooldownTrigger) Evaluate(p gamestate.Provider, preview bool) (bool, datasource.DataSource) {
	if t.Descriptor == nil {
		return false, datasource.DataSource{}
	}

	if preview {
		return true, previewData(t.Descriptor)
	}

	self, ok := p.FindActor(gamestate.RoleSelf)
	if !ok {
		return false, datasource.DataSource{}
	}

	id := t.Descriptor.ID
	remaining, charges, maxCharges := recastState(p.AbilityRecast(id))

	target, hasTarget := p.FindActor(gamestate.RoleTarget)
	usable := p.IsAbilityUsable(id, target)
	inRange, inLos := false, false
	if hasTarget {
		inRange = p.IsInRange(id, self, target)
		inLos = p.IsInLos(self, target)
	}
	combo := len(t.Descriptor.ComboIDs) > 0 && p.IsComboWindowOpen()

	ds := datasource.DataSource{
		ID:          id,
		Icon:        t.Descriptor.Icon,
		Name:        t.Descriptor.Name,
		Value:       remaining,
		Cooldown:    remaining,
		Stacks:      charges,
		MaxStacks:   maxCharges,
		Active:      remaining > 0,
		ComboActive: combo,
		InRange:     inRange,
		InLos:       inLos,
	}

	triggered := t.Cooldown.Check(remaining) &&
		t.Charges.Check(float64(charges)) &&
		t.Combo.Check(combo) &&
		t.Usable.Check(usable) &&
		t.Range.Check(inRange) &&
		t.Los.Check(inLos)
	return triggered, ds
}

// recastState converts a recast sample into the remaining time until the
// next charge, the current charge count and the maximum charge count
func recastState(r gamestate.Recast) (remaining float64, charges, maxCharges int) {
	maxCharges = max(r.MaxCharges, 1)
	if r.RecastTime <= 0 || r.Elapsed >= r.RecastTime || r.Elapsed < 0 {
		return 0, maxCharges, maxCharges
	}

	chargeTime := r.RecastTime / float64(maxCharges)
	charges = int(r.Elapsed / chargeTime)
	remaining = chargeTime - math.Mod(r.Elapsed, chargeTime)
	return remaining, charges, maxCharges
}
