package events

import (
	"github.com/KirkDiggler/trigger-overlay/internal/domain/element"
)

// EventType represents the type of overlay event
type EventType string

// Event is the base interface for all overlay events
type Event interface {
	GetType() EventType
	GetElementID() string
	GetElementName() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type        EventType
	ElementID   string
	ElementName string
	Cancelled   bool
}

func (e *BaseEvent) GetType() EventType     { return e.Type }
func (e *BaseEvent) GetElementID() string   { return e.ElementID }
func (e *BaseEvent) GetElementName() string { return e.ElementName }
func (e *BaseEvent) IsCancelled() bool      { return e.Cancelled }
func (e *BaseEvent) Cancel()                { e.Cancelled = true }

// ElementShownEvent fires when an element's trigger set starts firing
type ElementShownEvent struct {
	BaseEvent
	Style element.Style
	Text  string
	// Preview is set when the element is shown because it is being previewed
	Preview bool
}

// NewElementShown creates an ElementShownEvent
func NewElementShown(el *element.Element, style element.Style, text string) *ElementShownEvent {
	return &ElementShownEvent{
		BaseEvent: BaseEvent{Type: EventTypeElementShown, ElementID: el.ID, ElementName: el.Name},
		Style:     style,
		Text:      text,
		Preview:   el.Preview,
	}
}

// ElementHiddenEvent fires when an element's trigger set stops firing
type ElementHiddenEvent struct {
	BaseEvent
}

// NewElementHidden creates an ElementHiddenEvent
func NewElementHidden(el *element.Element) *ElementHiddenEvent {
	return &ElementHiddenEvent{
		BaseEvent: BaseEvent{Type: EventTypeElementHidden, ElementID: el.ID, ElementName: el.Name},
	}
}

// StyleChangedEvent fires when a visible element switches style condition.
// An empty condition ID means the base style.
type StyleChangedEvent struct {
	BaseEvent
	PreviousConditionID string
	ConditionID         string
	Style               element.Style
}

// NewStyleChanged creates a StyleChangedEvent
func NewStyleChanged(el *element.Element, previous, current string, style element.Style) *StyleChangedEvent {
	return &StyleChangedEvent{
		BaseEvent:           BaseEvent{Type: EventTypeStyleChanged, ElementID: el.ID, ElementName: el.Name},
		PreviousConditionID: previous,
		ConditionID:         current,
		Style:               style,
	}
}
