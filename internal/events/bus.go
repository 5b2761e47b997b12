package events

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
	log       logrus.FieldLogger
}

// NewBus creates a new event bus logging to logger, or the standard logrus
// logger when nil.
func NewBus(logger logrus.FieldLogger) *Bus {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Bus{
		listeners: make(map[EventType][]EventListener),
		log:       logger.WithField("component", "event_bus"),
	}
}

func (b *Bus) sortLocked(eventType EventType) {
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	b.sortLocked(eventType)

	b.log.WithFields(logrus.Fields{
		"listener": listener.ID(),
		"event":    eventType,
		"priority": listener.Priority(),
	}).Debug("subscribed listener")
}

// SubscribeAll adds listener to every overlay event type
func (b *Bus) SubscribeAll(listener EventListener) {
	for _, eventType := range EventTypes() {
		b.Subscribe(eventType, listener)
	}
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)

		b.log.WithFields(logrus.Fields{
			"listener": listenerID,
			"event":    eventType,
		}).Debug("unsubscribed listener")
		return
	}
}

// Emit sends an event to all registered listeners in priority order. The
// first listener error stops propagation.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	log := b.log.WithFields(logrus.Fields{
		"event":      event.GetType(),
		"element_id": event.GetElementID(),
	})
	log.WithField("listeners", len(listeners)).Debug("emitting event")

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Debug("event cancelled, stopping propagation")
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	b.log.Debug("cleared all listeners")
}
