package triggers

import (
	"github.com/KirkDiggler/trigger-overlay/internal/domain/compare"
)

// NumericCondition compares a sampled number against a threshold.
// A disabled condition is always satisfied.
type NumericCondition struct {
	Enabled bool             `json:"enabled" yaml:"enabled"`
	Op      compare.Operator `json:"op" yaml:"op"`
	Value   float64          `json:"value" yaml:"value"`
}

// Check reports whether v satisfies the condition
func (c NumericCondition) Check(v float64) bool {
	if !c.Enabled {
		return true
	}
	return compare.Evaluate(v, c.Op, c.Value)
}

// BoolCondition requires a sampled flag to equal Value when enabled
type BoolCondition struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Value   bool `json:"value" yaml:"value"`
}

// Check reports whether b satisfies the condition
func (c BoolCondition) Check(b bool) bool {
	return !c.Enabled || b == c.Value
}

// VitalCondition compares a resource against a literal threshold or,
// with CompareToMax, against the actor's maximum for that resource
type VitalCondition struct {
	Enabled      bool             `json:"enabled" yaml:"enabled"`
	Op           compare.Operator `json:"op" yaml:"op"`
	Value        float64          `json:"value" yaml:"value"`
	CompareToMax bool             `json:"compare_to_max,omitempty" yaml:"compare_to_max,omitempty"`
}

// Check reports whether current satisfies the condition given the resource maximum
func (c VitalCondition) Check(current, maximum int) bool {
	if !c.Enabled {
		return true
	}
	threshold := c.Value
	if c.CompareToMax {
		threshold = float64(maximum)
	}
	return compare.Evaluate(float64(current), c.Op, threshold)
}
