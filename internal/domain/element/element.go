package element

import (
	"strings"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/styles"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/triggers"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
)

// Style is how an element is drawn
type Style struct {
	Foreground string `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Bold       bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic     bool   `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline  bool   `json:"underline,omitempty" yaml:"underline,omitempty"`
	Blink      bool   `json:"blink,omitempty" yaml:"blink,omitempty"`
	Width      int    `json:"width,omitempty" yaml:"width,omitempty"`
	// Padding follows CSS shorthand: 1, 2 or 4 values
	Padding []int `json:"padding,omitempty" yaml:"padding,omitempty"`
}

// Clone returns an independent copy
func (s Style) Clone() Style {
	if s.Padding != nil {
		s.Padding = append([]int(nil), s.Padding...)
	}
	return s
}

// Element is one configured overlay widget
type Element struct {
	ID        string               `json:"id" yaml:"id"`
	Name      string               `json:"name" yaml:"name"`
	Triggers  triggers.Set         `json:"triggers" yaml:"triggers"`
	BaseStyle Style                `json:"base_style" yaml:"base_style"`
	Styles    *styles.Chain[Style] `json:"styles,omitempty" yaml:"styles,omitempty"`
	Template  string               `json:"template" yaml:"template"`
	// Preview is runtime state and is never persisted
	Preview bool `json:"-" yaml:"-"`
}

// New creates an element with an empty trigger set and style chain
func New(id, name string) *Element {
	return &Element{
		ID:     id,
		Name:   name,
		Styles: styles.NewChain[Style](0),
	}
}

// Validate checks the element can be stored
func (e *Element) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return overlayerr.InvalidArgument("element id is required")
	}
	if strings.TrimSpace(e.Name) == "" {
		return overlayerr.InvalidArgument("element name is required").
			WithMeta("element_id", e.ID)
	}
	for i, entry := range e.Triggers.Entries {
		if _, err := triggers.ParseKind(string(entry.Trigger.Kind)); err != nil {
			return overlayerr.WrapWithCode(err, overlayerr.CodeInvalidArgument, "invalid trigger").
				WithMeta("element_id", e.ID).
				WithMeta("trigger", i+1)
		}
	}
	return nil
}

// Chain returns the style chain, creating it on first use
func (e *Element) Chain() *styles.Chain[Style] {
	if e.Styles == nil {
		e.Styles = styles.NewChain[Style](e.Triggers.Len())
	}
	return e.Styles
}

// AddTrigger appends a trigger and regrows the style chain's trigger labels
func (e *Element) AddTrigger(t triggers.Trigger, combine triggers.Combine) {
	if combine == "" {
		combine = triggers.CombineAnd
	}
	e.Triggers.Entries = append(e.Triggers.Entries, triggers.Entry{Trigger: t, Combine: combine})
	e.Chain().UpdateTriggerCount(e.Triggers.Len())
}

// RemoveTrigger drops the trigger at i and clamps style conditions that
// pointed past the new end.
func (e *Element) RemoveTrigger(i int) error {
	if i < 0 || i >= e.Triggers.Len() {
		return overlayerr.InvalidArgumentf("trigger index %d out of range", i).
			WithMeta("element_id", e.ID)
	}
	entries := e.Triggers.Entries
	e.Triggers.Entries = append(entries[:i:i], entries[i+1:]...)
	e.Chain().UpdateTriggerCount(e.Triggers.Len())
	return nil
}

// Clone deep copies the element
func (e *Element) Clone() *Element {
	clone := *e
	clone.Triggers = e.Triggers.Clone()
	clone.BaseStyle = e.BaseStyle.Clone()
	if e.Styles != nil {
		clone.Styles = e.Styles.Clone()
	}
	return &clone
}
