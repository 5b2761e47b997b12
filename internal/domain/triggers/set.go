package triggers

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

// Combine folds a trigger's result into the results of the triggers before it
type Combine string

const (
	CombineAnd Combine = "and"
	CombineOr  Combine = "or"
	CombineXor Combine = "xor"
)

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Combine) UnmarshalText(text []byte) error {
	switch v := Combine(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case CombineAnd, CombineOr, CombineXor:
		*c = v
		return nil
	case "":
		*c = CombineAnd
		return nil
	default:
		return fmt.Errorf("unknown trigger combination %q", string(text))
	}
}

func (c Combine) fold(acc, next bool) bool {
	switch c {
	case CombineOr:
		return acc || next
	case CombineXor:
		return acc != next
	default:
		return acc && next
	}
}

// Entry is one trigger of a set and how it joins the preceding triggers.
// The first entry's Combine is ignored.
type Entry struct {
	Trigger Trigger `json:"trigger" yaml:"trigger"`
	Combine Combine `json:"combine,omitempty" yaml:"combine,omitempty"`
}

// Set is the ordered list of triggers configured on an element
type Set struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Result is the outcome of evaluating a Set for one tick
type Result struct {
	Triggered bool
	// Data holds one DataSource per entry, in entry order
	Data []datasource.DataSource
	// DynamicIndex is the index into Data of the first trigger that fired,
	// or 0 when none did
	DynamicIndex int
}

// Dynamic returns the DataSource of the trigger bound to the dynamic index
func (r Result) Dynamic() datasource.DataSource {
	return datasource.At(r.Data, r.DynamicIndex)
}

// Len returns the number of triggers in the set
func (s Set) Len() int {
	return len(s.Entries)
}

// SetDefaults fills in the fields a layout may leave out
func (s Set) SetDefaults() {
	for _, e := range s.Entries {
		if e.Trigger.Status != nil {
			e.Trigger.Status.setDefaults()
		}
	}
}

// Evaluate runs every trigger and folds their results left to right.
// An empty set never fires.
func (s Set) Evaluate(p gamestate.Provider, preview bool) Result {
	res := Result{Data: make([]datasource.DataSource, len(s.Entries))}
	dynamicFound := false

	for i, entry := range s.Entries {
		fired, ds := entry.Trigger.Evaluate(p, preview)
		res.Data[i] = ds

		if i == 0 {
			res.Triggered = fired
		} else {
			res.Triggered = entry.Combine.fold(res.Triggered, fired)
		}

		if fired && !dynamicFound {
			res.DynamicIndex = i
			dynamicFound = true
		}
	}

	return res
}

// Clone deep-copies the set
func (s Set) Clone() Set {
	if s.Entries == nil {
		return Set{}
	}
	out := Set{Entries: make([]Entry, len(s.Entries))}
	for i, e := range s.Entries {
		out.Entries[i] = Entry{Trigger: e.Trigger.Clone(), Combine: e.Combine}
	}
	return out
}
