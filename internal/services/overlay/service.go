package overlay

//go:generate mockgen -destination=mock/mock_service.go -package=mockoverlay -source=service.go

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/trigger-overlay/internal/clock"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/element"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/preview"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/styles"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/textformat"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
	"github.com/KirkDiggler/trigger-overlay/internal/events"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
	"github.com/KirkDiggler/trigger-overlay/internal/repositories/elements"
)

// RenderResult is what the render sink draws for one element this tick
type RenderResult struct {
	ElementID string
	Name      string
	Visible   bool
	Style     element.Style
	Text      string
	// ConditionID is the style condition that won, empty for the base style
	ConditionID string
	Preview     bool
}

// Service defines the overlay loop interface
type Service interface {
	// Load replaces the running elements with the repository contents
	Load(ctx context.Context) error

	// Tick evaluates every element once and returns what to draw
	Tick() []RenderResult

	// SetPreview turns preview mode on or off for one element
	SetPreview(elementID string, on bool) error

	// TogglePreview previews every element unless all already are, in
	// which case previewing stops. It returns the new state.
	TogglePreview() bool

	// Replace swaps a loaded element's configuration for el, keeping its
	// preview state and transition history
	Replace(el *element.Element) error

	// Save writes an element's running configuration back to the repository.
	// Preview state is not saved.
	Save(ctx context.Context, elementID string) error

	// Elements returns copies of the running elements in display order
	Elements() []*element.Element
}

type state struct {
	el          *element.Element
	sim         *preview.Simulator
	visible     bool
	conditionID string
}

type service struct {
	mu     sync.Mutex
	states []*state

	repository   elements.Repository
	provider     gamestate.Provider
	registry     styles.EditRegistry
	formatter    *textformat.Formatter
	timeProvider clock.TimeProvider
	bus          *events.Bus
	log          logrus.FieldLogger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository   elements.Repository   // Required
	Provider     gamestate.Provider    // Required
	Registry     styles.EditRegistry   // Optional, nothing is pinned when nil
	Formatter    *textformat.Formatter // Optional, truncating formatter when nil
	TimeProvider clock.TimeProvider    // Optional, wall clock when nil
	EventBus     *events.Bus           // Optional, transitions are not published when nil
	Logger       logrus.FieldLogger    // Optional
}

// NewService creates a new overlay service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Provider == nil {
		panic("game state provider is required")
	}

	svc := &service{
		repository:   cfg.Repository,
		provider:     cfg.Provider,
		registry:     cfg.Registry,
		formatter:    cfg.Formatter,
		timeProvider: cfg.TimeProvider,
		bus:          cfg.EventBus,
		log:          cfg.Logger,
	}

	if svc.formatter == nil {
		svc.formatter = textformat.New(textformat.RoundTruncate)
	}
	if svc.timeProvider == nil {
		svc.timeProvider = clock.Real{}
	}
	if svc.log == nil {
		svc.log = logrus.StandardLogger()
	}
	svc.log = svc.log.WithField("service", "overlay")

	return svc
}

func (s *service) Load(ctx context.Context) error {
	els, err := s.repository.List(ctx)
	if err != nil {
		return overlayerr.Wrap(err, "failed to load elements")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := make(map[string]*state, len(s.states))
	for _, st := range s.states {
		previous[st.el.ID] = st
	}

	states := make([]*state, 0, len(els))
	for _, el := range els {
		if st, ok := previous[el.ID]; ok {
			el.Preview = st.el.Preview
			st.el = el
			states = append(states, st)
			continue
		}
		el.Preview = false
		states = append(states, &state{el: el, sim: preview.NewSimulator(s.timeProvider)})
	}
	s.states = states

	s.log.WithField("elements", len(states)).Info("loaded elements")
	return nil
}

func (s *service) Tick() []RenderResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]RenderResult, 0, len(s.states))
	for _, st := range s.states {
		results = append(results, s.tick(st))
	}
	return results
}

func (s *service) tick(st *state) RenderResult {
	el := st.el
	res := el.Triggers.Evaluate(s.provider, el.Preview)

	if el.Preview && res.Triggered && len(res.Data) > 0 {
		st.sim.Apply(&res.Data[res.DynamicIndex])
	} else {
		st.sim.Reset()
	}

	style := el.BaseStyle
	conditionID := ""
	if cond, ok := el.Chain().Match(res.Data, res.DynamicIndex, s.registry); ok {
		style = cond.Style
		conditionID = cond.ID
	}
	style = style.Clone()

	text := s.formatter.Render(el.Template, res.Dynamic())

	s.publish(st, res.Triggered, conditionID, style, text)

	return RenderResult{
		ElementID:   el.ID,
		Name:        el.Name,
		Visible:     res.Triggered,
		Style:       style,
		Text:        text,
		ConditionID: conditionID,
		Preview:     el.Preview,
	}
}

// publish emits visibility and style transitions and records the new state
func (s *service) publish(st *state, visible bool, conditionID string, style element.Style, text string) {
	wasVisible, previousID := st.visible, st.conditionID
	st.visible, st.conditionID = visible, conditionID

	if s.bus == nil {
		return
	}

	var event events.Event
	switch {
	case visible && !wasVisible:
		event = events.NewElementShown(st.el, style, text)
	case !visible && wasVisible:
		event = events.NewElementHidden(st.el)
	case visible && conditionID != previousID:
		event = events.NewStyleChanged(st.el, previousID, conditionID, style)
	default:
		return
	}

	if err := s.bus.Emit(event); err != nil {
		s.log.WithError(err).WithField("element_id", st.el.ID).Warn("event listener failed")
	}
}

func (s *service) find(elementID string) (*state, error) {
	for _, st := range s.states {
		if st.el.ID == elementID {
			return st, nil
		}
	}
	return nil, overlayerr.NotFoundf("element %s is not loaded", elementID).
		WithMeta("element_id", elementID)
}

func (s *service) SetPreview(elementID string, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.find(elementID)
	if err != nil {
		return err
	}
	s.setPreview(st, on)
	return nil
}

func (s *service) setPreview(st *state, on bool) {
	if st.el.Preview == on {
		return
	}
	st.el.Preview = on
	st.sim.Reset()

	s.log.WithFields(logrus.Fields{
		"element_id": st.el.ID,
		"preview":    on,
	}).Debug("preview changed")
}

func (s *service) TogglePreview() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	on := false
	for _, st := range s.states {
		if !st.el.Preview {
			on = true
			break
		}
	}

	for _, st := range s.states {
		s.setPreview(st, on)
	}
	return on
}

func (s *service) Replace(el *element.Element) error {
	if el == nil {
		return overlayerr.InvalidArgument("element cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.find(el.ID)
	if err != nil {
		return err
	}

	next := el.Clone()
	next.Preview = st.el.Preview
	st.el = next

	s.log.WithField("element_id", el.ID).Debug("replaced running element")
	return nil
}

func (s *service) Save(ctx context.Context, elementID string) error {
	s.mu.Lock()
	st, err := s.find(elementID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	el := st.el.Clone()
	s.mu.Unlock()

	el.Preview = false

	if err := s.repository.Update(ctx, el); err != nil {
		return overlayerr.Wrapf(err, "failed to save element %s", elementID)
	}
	return nil
}

func (s *service) Elements() []*element.Element {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*element.Element, len(s.states))
	for i, st := range s.states {
		out[i] = st.el.Clone()
	}
	return out
}
