package datasource

import (
	"fmt"
	"strings"
)

// Field names a numeric DataSource field a style condition can test
type Field int

const (
	FieldValue Field = iota
	FieldStacks
	FieldMaxStacks
	FieldDuration
	FieldCooldown
	FieldLevel
	FieldHP
	FieldMaxHP
	FieldMP
	FieldMaxMP
	FieldCP
	FieldMaxCP
	FieldGP
	FieldMaxGP
)

var fieldNames = []string{
	FieldValue:     "value",
	FieldStacks:    "stacks",
	FieldMaxStacks: "maxstacks",
	FieldDuration:  "duration",
	FieldCooldown:  "cooldown",
	FieldLevel:     "level",
	FieldHP:        "hp",
	FieldMaxHP:     "maxhp",
	FieldMP:        "mp",
	FieldMaxMP:     "maxmp",
	FieldCP:        "cp",
	FieldMaxCP:     "maxcp",
	FieldGP:        "gp",
	FieldMaxGP:     "maxgp",
}

// Fields lists the selectable fields in display order
func Fields() []Field {
	fields := make([]Field, len(fieldNames))
	for i := range fieldNames {
		fields[i] = Field(i)
	}
	return fields
}

// Of reads the field from ds; unknown fields read 0
func (f Field) Of(ds DataSource) float64 {
	switch f {
	case FieldValue:
		return ds.Value
	case FieldStacks:
		return float64(ds.Stacks)
	case FieldMaxStacks:
		return float64(ds.MaxStacks)
	case FieldDuration:
		return ds.Duration
	case FieldCooldown:
		return ds.Cooldown
	case FieldLevel:
		return float64(ds.Level)
	case FieldHP:
		return float64(ds.HP)
	case FieldMaxHP:
		return float64(ds.MaxHP)
	case FieldMP:
		return float64(ds.MP)
	case FieldMaxMP:
		return float64(ds.MaxMP)
	case FieldCP:
		return float64(ds.CP)
	case FieldMaxCP:
		return float64(ds.MaxCP)
	case FieldGP:
		return float64(ds.GP)
	case FieldMaxGP:
		return float64(ds.MaxGP)
	default:
		return 0
	}
}

func (f Field) String() string {
	if f >= 0 && int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField resolves a field by name, ignoring case
func ParseField(s string) (Field, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return FieldValue, fmt.Errorf("unknown field %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (f Field) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(fieldNames) {
		return nil, fmt.Errorf("unknown field %d", int(f))
	}
	return []byte(fieldNames[f]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
