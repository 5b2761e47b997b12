package compare

import (
	"fmt"
	"strings"
)

// Operator is a comparison between a sampled value and a threshold
type Operator int

const (
	Equals Operator = iota
	NotEquals
	LessThan
	GreaterThan
	LessThanEq
	GreaterThanEq
)

var operatorSymbols = map[Operator]string{
	Equals:        "==",
	NotEquals:     "!=",
	LessThan:      "<",
	GreaterThan:   ">",
	LessThanEq:    "<=",
	GreaterThanEq: ">=",
}

var operatorAliases = map[string]Operator{
	"equals":          Equals,
	"not_equals":      NotEquals,
	"less_than":       LessThan,
	"greater_than":    GreaterThan,
	"less_than_eq":    LessThanEq,
	"greater_than_eq": GreaterThanEq,
}

// Operators lists every operator in display order
func Operators() []Operator {
	return []Operator{Equals, NotEquals, LessThan, GreaterThan, LessThanEq, GreaterThanEq}
}

// Evaluate applies op to value and threshold.
// Equality is exact float equality and NaN follows IEEE rules, so every
// operator except NotEquals is false when either side is NaN.
func Evaluate(value float64, op Operator, threshold float64) bool {
	switch op {
	case Equals:
		return value == threshold
	case NotEquals:
		return value != threshold
	case LessThan:
		return value < threshold
	case GreaterThan:
		return value > threshold
	case LessThanEq:
		return value <= threshold
	case GreaterThanEq:
		return value >= threshold
	default:
		return false
	}
}

// String returns the operator symbol
func (o Operator) String() string {
	if s, ok := operatorSymbols[o]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// ParseOperator accepts a symbol ("<=") or a spelled-out name ("less_than_eq")
func ParseOperator(s string) (Operator, error) {
	trimmed := strings.TrimSpace(s)
	for op, sym := range operatorSymbols {
		if sym == trimmed {
			return op, nil
		}
	}
	if op, ok := operatorAliases[strings.ToLower(trimmed)]; ok {
		return op, nil
	}
	return Equals, fmt.Errorf("unknown operator %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (o Operator) MarshalText() ([]byte, error) {
	sym, ok := operatorSymbols[o]
	if !ok {
		return nil, fmt.Errorf("unknown operator %d", int(o))
	}
	return []byte(sym), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
