package datasource

import (
	"strconv"

	"golang.org/x/text/cases"
)

// TagKind tells a formatter how to render a resolved tag
type TagKind int

const (
	TagNumber TagKind = iota
	TagString
)

// Tag is a template field resolved against a DataSource
type Tag struct {
	Kind   TagKind
	Number float64
	Text   string
}

type tagReader func(ds DataSource) Tag

func number(read func(ds DataSource) float64) tagReader {
	return func(ds DataSource) Tag {
		return Tag{Kind: TagNumber, Number: read(ds)}
	}
}

func text(read func(ds DataSource) string) tagReader {
	return func(ds DataSource) Tag {
		return Tag{Kind: TagString, Text: read(ds)}
	}
}

func flag(read func(ds DataSource) bool) tagReader {
	return text(func(ds DataSource) string { return strconv.FormatBool(read(ds)) })
}

func fieldTag(f Field) tagReader {
	return number(f.Of)
}

// tagTable is keyed by case-folded tag names
var tagTable = map[string]tagReader{
	"value":     fieldTag(FieldValue),
	"stacks":    fieldTag(FieldStacks),
	"maxstacks": fieldTag(FieldMaxStacks),
	"duration":  fieldTag(FieldDuration),
	"cooldown":  fieldTag(FieldCooldown),
	"level":     fieldTag(FieldLevel),
	"hp":        fieldTag(FieldHP),
	"maxhp":     fieldTag(FieldMaxHP),
	"mp":        fieldTag(FieldMP),
	"maxmp":     fieldTag(FieldMaxMP),
	"cp":        fieldTag(FieldCP),
	"maxcp":     fieldTag(FieldMaxCP),
	"gp":        fieldTag(FieldGP),
	"maxgp":     fieldTag(FieldMaxGP),
	"id":        number(func(ds DataSource) float64 { return float64(ds.ID) }),
	"icon":      number(func(ds DataSource) float64 { return float64(ds.Icon) }),
	"name":      text(func(ds DataSource) string { return ds.Name }),
	"active":    flag(func(ds DataSource) bool { return ds.Active }),
	"combo":     flag(func(ds DataSource) bool { return ds.ComboActive }),
	"inrange":   flag(func(ds DataSource) bool { return ds.InRange }),
	"inlos":     flag(func(ds DataSource) bool { return ds.InLos }),
	"haspet":    flag(func(ds DataSource) bool { return ds.HasPet }),
}

// Lookup resolves a template tag name against ds. Names match case-insensitively.
func Lookup(ds DataSource, name string) (Tag, bool) {
	read, ok := tagTable[cases.Fold().String(name)]
	if !ok {
		return Tag{}, false
	}
	return read(ds), true
}

// TagNames returns every known tag name
func TagNames() []string {
	names := make([]string, 0, len(tagTable))
	for name := range tagTable {
		names = append(names, name)
	}
	return names
}
