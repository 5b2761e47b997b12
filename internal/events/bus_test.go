package events_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/element"
	"github.com/KirkDiggler/trigger-overlay/internal/events"
)

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus(nil)

	// Track execution order
	var executionOrder []string
	track := func(id string, priority int) *testListener {
		return &testListener{
			id:       id,
			priority: priority,
			handler: func(e events.Event) error {
				executionOrder = append(executionOrder, id)
				return nil
			},
		}
	}

	// Subscribe in random order
	bus.Subscribe(events.EventTypeElementShown, track("low", 300))
	bus.Subscribe(events.EventTypeElementShown, track("high", 0))
	bus.Subscribe(events.EventTypeElementShown, track("medium", 100))

	el := element.New("dots", "DoT tracker")
	require.NoError(t, bus.Emit(events.NewElementShown(el, el.BaseStyle, "Dia 21")))

	assert.Equal(t, []string{"high", "medium", "low"}, executionOrder)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus(nil)

	secondCalled := false
	bus.Subscribe(events.EventTypeElementHidden, &testListener{
		id:       "canceller",
		priority: 0,
		handler: func(e events.Event) error {
			e.Cancel()
			return nil
		},
	})
	bus.Subscribe(events.EventTypeElementHidden, &testListener{
		id:       "second",
		priority: 100,
		handler: func(e events.Event) error {
			secondCalled = true
			return nil
		},
	})

	event := events.NewElementHidden(element.New("dots", "DoT tracker"))
	require.NoError(t, bus.Emit(event))

	assert.True(t, event.IsCancelled())
	assert.False(t, secondCalled, "cancelled events stop propagating")
}

func TestEventBus_ListenerError(t *testing.T) {
	bus := events.NewBus(nil)
	boom := errors.New("boom")

	bus.Subscribe(events.EventTypeStyleChanged, &testListener{
		id:      "broken",
		handler: func(events.Event) error { return boom },
	})

	el := element.New("dots", "DoT tracker")
	err := bus.Emit(events.NewStyleChanged(el, "", "cond-1", el.BaseStyle))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
}

func TestEventBus_UnsubscribeAndClear(t *testing.T) {
	bus := events.NewBus(nil)

	calls := 0
	listener := &testListener{
		id:      "counter",
		handler: func(events.Event) error { calls++; return nil },
	}
	bus.SubscribeAll(listener)

	el := element.New("dots", "DoT tracker")
	require.NoError(t, bus.Emit(events.NewElementShown(el, el.BaseStyle, "")))
	require.NoError(t, bus.Emit(events.NewElementHidden(el)))
	assert.Equal(t, 2, calls)

	bus.Unsubscribe(events.EventTypeElementShown, "counter")
	require.NoError(t, bus.Emit(events.NewElementShown(el, el.BaseStyle, "")))
	assert.Equal(t, 2, calls)

	bus.Clear()
	require.NoError(t, bus.Emit(events.NewElementHidden(el)))
	assert.Equal(t, 2, calls)
}

func TestLoggingListener(t *testing.T) {
	logger, hook := test.NewNullLogger()
	bus := events.NewBus(logger)
	bus.SubscribeAll(events.NewLoggingListener(logger))

	el := element.New("dots", "DoT tracker")
	el.Preview = true

	require.NoError(t, bus.Emit(events.NewElementShown(el, el.BaseStyle, "Dia 21")))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "element shown", entry.Message)
	assert.Equal(t, "Dia 21", entry.Data["text"])
	assert.Equal(t, true, entry.Data["preview"])
	assert.Equal(t, "dots", entry.Data["element_id"])

	require.NoError(t, bus.Emit(events.NewStyleChanged(el, "", "cond-1", el.BaseStyle)))
	entry = hook.LastEntry()
	assert.Equal(t, "element style changed", entry.Message)
	assert.Equal(t, "cond-1", entry.Data["to"])

	require.NoError(t, bus.Emit(events.NewElementHidden(el)))
	assert.Equal(t, "element hidden", hook.LastEntry().Message)
}

// Test helpers

type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) ID() string                       { return l.id }
func (l *testListener) Priority() int                    { return l.priority }
func (l *testListener) HandleEvent(e events.Event) error { return l.handler(e) }
