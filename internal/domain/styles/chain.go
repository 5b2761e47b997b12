package styles

import (
	"strconv"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/compare"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
)

// DynamicIndex selects whichever trigger fired this frame
const DynamicIndex = 0

// Cloner is implemented by styles that can deep copy themselves
type Cloner[S any] interface {
	Clone() S
}

// EditRegistry reports whether a condition's style page is open in the editor
type EditRegistry interface {
	IsOpenForEdit(conditionID string) bool
}

// Condition selects Style when Field of the referenced trigger's data
// compares true against Threshold.
type Condition[S Cloner[S]] struct {
	ID           string           `json:"id" yaml:"id"`
	TriggerIndex int              `json:"trigger_index" yaml:"trigger_index"`
	Field        datasource.Field `json:"field" yaml:"field"`
	Op           compare.Operator `json:"op" yaml:"op"`
	Threshold    float64          `json:"threshold" yaml:"threshold"`
	Style        S                `json:"style" yaml:"style"`
}

// Matches runs the numeric test against ds
func (c *Condition[S]) Matches(ds datasource.DataSource) bool {
	return compare.Evaluate(c.Field.Of(ds), c.Op, c.Threshold)
}

// Clone returns a copy owning its own style
func (c *Condition[S]) Clone() *Condition[S] {
	clone := *c
	clone.Style = c.Style.Clone()
	return &clone
}

// Chain is an ordered if/else-if list of style conditions
type Chain[S Cloner[S]] struct {
	Conditions   []*Condition[S] `json:"conditions" yaml:"conditions"`
	TriggerCount int             `json:"trigger_count" yaml:"trigger_count"`
}

// NewChain creates an empty chain for an element with triggerCount triggers
func NewChain[S Cloner[S]](triggerCount int) *Chain[S] {
	return &Chain[S]{TriggerCount: max(triggerCount, 0)}
}

// Len returns the number of conditions
func (c *Chain[S]) Len() int {
	return len(c.Conditions)
}

// Add appends a condition on the dynamic trigger holding its own copy of style
func (c *Chain[S]) Add(id string, style S) *Condition[S] {
	cond := &Condition[S]{
		ID:           id,
		TriggerIndex: DynamicIndex,
		Field:        datasource.FieldValue,
		Op:           compare.GreaterThan,
		Style:        style.Clone(),
	}
	c.Conditions = append(c.Conditions, cond)
	return cond
}

// Get returns the condition with id
func (c *Chain[S]) Get(id string) (*Condition[S], bool) {
	i := c.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return c.Conditions[i], true
}

// Remove deletes the condition with id, reporting whether it existed
func (c *Chain[S]) Remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.Conditions = append(c.Conditions[:i], c.Conditions[i+1:]...)
	return true
}

// Move shifts the condition with id by delta positions, clamped to the
// ends of the chain. Negative deltas move it up.
func (c *Chain[S]) Move(id string, delta int) bool {
	from := c.indexOf(id)
	if from < 0 {
		return false
	}

	to := min(max(from+delta, 0), len(c.Conditions)-1)
	if to == from {
		return true
	}

	cond := c.Conditions[from]
	if to < from {
		copy(c.Conditions[to+1:from+1], c.Conditions[to:from])
	} else {
		copy(c.Conditions[from:to], c.Conditions[from+1:to+1])
	}
	c.Conditions[to] = cond
	return true
}

func (c *Chain[S]) indexOf(id string) int {
	for i, cond := range c.Conditions {
		if cond.ID == id {
			return i
		}
	}
	return -1
}

// Select walks the chain top to bottom and returns the first matching
// style. A condition also matches while reg reports it open for edit.
// The returned style is the condition's own value; callers that mutate
// it should Clone first.
func (c *Chain[S]) Select(data []datasource.DataSource, dynamicIndex int, reg EditRegistry) (S, bool) {
	cond, ok := c.Match(data, dynamicIndex, reg)
	if !ok {
		var none S
		return none, false
	}
	return cond.Style, true
}

// Match is Select returning the winning condition
func (c *Chain[S]) Match(data []datasource.DataSource, dynamicIndex int, reg EditRegistry) (*Condition[S], bool) {
	for _, cond := range c.Conditions {
		ds := resolve(data, cond.TriggerIndex, dynamicIndex)
		if cond.Matches(ds) || (reg != nil && reg.IsOpenForEdit(cond.ID)) {
			return cond, true
		}
	}
	return nil, false
}

// resolve picks the data a condition targets. Index 0 is the dynamic
// trigger and k > 0 is trigger k-1, clamped into range.
func resolve(data []datasource.DataSource, triggerIndex, dynamicIndex int) datasource.DataSource {
	if len(data) == 0 {
		return datasource.DataSource{}
	}

	i := dynamicIndex
	if triggerIndex > DynamicIndex {
		i = triggerIndex - 1
	}
	return data[min(max(i, 0), len(data)-1)]
}

// UpdateTriggerCount records the element's trigger count and clamps every
// fixed trigger index into [0, n].
func (c *Chain[S]) UpdateTriggerCount(n int) {
	n = max(n, 0)
	for _, cond := range c.Conditions {
		cond.TriggerIndex = min(max(cond.TriggerIndex, 0), n)
	}
	c.TriggerCount = n
}

// TriggerLabels names the selectable trigger indexes, starting with the
// dynamic entry.
func (c *Chain[S]) TriggerLabels() []string {
	labels := make([]string, 0, c.TriggerCount+1)
	labels = append(labels, "Dynamic")
	for i := 1; i <= c.TriggerCount; i++ {
		labels = append(labels, "Trigger "+strconv.Itoa(i))
	}
	return labels
}

// Clone deep copies the chain and every condition's style
func (c *Chain[S]) Clone() *Chain[S] {
	clone := &Chain[S]{TriggerCount: c.TriggerCount}
	if c.Conditions != nil {
		clone.Conditions = make([]*Condition[S], len(c.Conditions))
		for i, cond := range c.Conditions {
			clone.Conditions[i] = cond.Clone()
		}
	}
	return clone
}
