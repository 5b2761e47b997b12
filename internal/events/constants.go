package events

// Event type constants
const (
	EventTypeElementShown  EventType = "element_shown"
	EventTypeElementHidden EventType = "element_hidden"
	EventTypeStyleChanged  EventType = "style_changed"
)

// EventTypes lists every overlay event type
func EventTypes() []EventType {
	return []EventType{EventTypeElementShown, EventTypeElementHidden, EventTypeStyleChanged}
}

// Priority levels for listener order
const (
	PriorityState   = 0   // Runtime bookkeeping
	PriorityDisplay = 100 // Renderers and sound cues
	PriorityLogging = 500 // Audit logging runs last
)
