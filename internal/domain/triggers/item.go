package triggers

import (
	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

// ItemCooldownTrigger fires on the recast state and held quantity of an
// inventory item
type ItemCooldownTrigger struct {
	Descriptor *gamestate.Descriptor `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
	Cooldown   NumericCondition      `json:"cooldown" yaml:"cooldown"`
	Quantity   NumericCondition      `json:"quantity" yaml:"quantity"`
}

// Evaluate implements the item cooldown variant of Trigger.Evaluate
func (t *ItemCooldownTrigger) Evaluate(p gamestate.Provider, preview bool) (bool, datasource.DataSource) {
	if t.Descriptor == nil {
		return false, datasource.DataSource{}
	}

	if preview {
		return true, previewData(t.Descriptor)
	}

	id := t.Descriptor.ID
	recast := p.ItemRecast(id)
	recast.MaxCharges = 1
	remaining, _, _ := recastState(recast)
	quantity := p.ItemQuantity(id)

	ds := datasource.DataSource{
		ID:        id,
		Icon:      t.Descriptor.Icon,
		Name:      t.Descriptor.Name,
		Value:     remaining,
		Cooldown:  remaining,
		Stacks:    quantity,
		MaxStacks: quantity,
		Active:    remaining > 0,
	}

	triggered := t.Cooldown.Check(remaining) && t.Quantity.Check(float64(quantity))
	return triggered, ds
}
