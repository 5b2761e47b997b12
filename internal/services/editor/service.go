package editor

//go:generate mockgen -destination=mock/mock_service.go -package=mockeditor -source=service.go

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/compare"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/element"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/styles"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
	"github.com/KirkDiggler/trigger-overlay/internal/repositories/elements"
	"github.com/KirkDiggler/trigger-overlay/internal/uuid"
)

// Condition is a style condition of an overlay element
type Condition = styles.Condition[element.Style]

// Service defines the element editor interface
type Service interface {
	// OpenCondition opens a condition's style page, pinning its style
	OpenCondition(ctx context.Context, elementID, conditionID string) error

	// CloseCondition closes a condition's style page
	CloseCondition(conditionID string)

	// AddCondition appends a condition holding a copy of the element's base style
	AddCondition(ctx context.Context, elementID string) (*Condition, error)

	// RemoveCondition deletes a condition
	RemoveCondition(ctx context.Context, elementID, conditionID string) error

	// MoveCondition shifts a condition delta places in the chain
	MoveCondition(ctx context.Context, elementID, conditionID string, delta int) error

	// SetConditionTrigger binds a condition to a trigger, 0 being dynamic
	SetConditionTrigger(ctx context.Context, elementID, conditionID string, triggerIndex int) error

	// SetConditionTest changes the field and operator a condition tests
	SetConditionTest(ctx context.Context, elementID, conditionID string, field datasource.Field, op compare.Operator) error

	// CommitThreshold parses text typed into the threshold field
	CommitThreshold(ctx context.Context, elementID, conditionID, text string) (*Condition, error)

	// SetConditionStyle replaces a condition's style
	SetConditionStyle(ctx context.Context, elementID, conditionID string, style element.Style) error
}

// LiveElements receives stored edits so a running loop draws them on its
// next tick
type LiveElements interface {
	Replace(el *element.Element) error
}

type service struct {
	repository    elements.Repository
	registry      *Registry
	live          LiveElements
	uuidGenerator uuid.Generator
	log           logrus.FieldLogger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    elements.Repository // Required
	Registry      *Registry           // Required, shared with the overlay loop
	Live          LiveElements        // Optional, edits only reach the loop on reload when nil
	UUIDGenerator uuid.Generator      // Optional, will use default if nil
	Logger        logrus.FieldLogger  // Optional
}

// NewService creates a new editor service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Registry == nil {
		panic("registry is required")
	}

	svc := &service{
		repository: cfg.Repository,
		registry:   cfg.Registry,
		live:       cfg.Live,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewPrefixedGenerator("cond")
	}

	if cfg.Logger != nil {
		svc.log = cfg.Logger
	} else {
		svc.log = logrus.StandardLogger()
	}
	svc.log = svc.log.WithField("service", "editor")

	return svc
}

// edit loads an element, applies fn to the named condition and stores the result
func (s *service) edit(ctx context.Context, elementID, conditionID string, fn func(el *element.Element, cond *Condition) error) error {
	el, err := s.repository.Get(ctx, elementID)
	if err != nil {
		return err
	}

	cond, ok := el.Chain().Get(conditionID)
	if !ok {
		return overlayerr.NotFoundf("condition %s not found", conditionID).
			WithMeta("element_id", elementID).
			WithMeta("condition_id", conditionID)
	}

	if err := fn(el, cond); err != nil {
		return err
	}

	return s.store(ctx, el)
}

// store persists el and hands it to the running loop. An element the loop
// has not loaded picks the edit up when it is loaded.
func (s *service) store(ctx context.Context, el *element.Element) error {
	if err := s.repository.Update(ctx, el); err != nil {
		return overlayerr.Wrapf(err, "failed to save element %s", el.ID)
	}

	if s.live == nil {
		return nil
	}
	if err := s.live.Replace(el); err != nil && !overlayerr.IsNotFound(err) {
		return overlayerr.Wrapf(err, "failed to apply element %s", el.ID)
	}
	return nil
}

func (s *service) OpenCondition(ctx context.Context, elementID, conditionID string) error {
	el, err := s.repository.Get(ctx, elementID)
	if err != nil {
		return err
	}
	if _, ok := el.Chain().Get(conditionID); !ok {
		return overlayerr.NotFoundf("condition %s not found", conditionID).
			WithMeta("element_id", elementID)
	}

	s.registry.Open(conditionID)
	s.log.WithFields(logrus.Fields{
		"element_id":   elementID,
		"condition_id": conditionID,
	}).Debug("opened condition")
	return nil
}

func (s *service) CloseCondition(conditionID string) {
	s.registry.Close(conditionID)
}

func (s *service) AddCondition(ctx context.Context, elementID string) (*Condition, error) {
	el, err := s.repository.Get(ctx, elementID)
	if err != nil {
		return nil, err
	}

	cond := el.Chain().Add(s.uuidGenerator.New(), el.BaseStyle)
	if err := s.store(ctx, el); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"element_id":   elementID,
		"condition_id": cond.ID,
	}).Info("added style condition")
	return cond.Clone(), nil
}

func (s *service) RemoveCondition(ctx context.Context, elementID, conditionID string) error {
	err := s.edit(ctx, elementID, conditionID, func(el *element.Element, _ *Condition) error {
		el.Chain().Remove(conditionID)
		return nil
	})
	if err != nil {
		return err
	}

	s.registry.Close(conditionID)
	return nil
}

func (s *service) MoveCondition(ctx context.Context, elementID, conditionID string, delta int) error {
	return s.edit(ctx, elementID, conditionID, func(el *element.Element, _ *Condition) error {
		el.Chain().Move(conditionID, delta)
		return nil
	})
}

func (s *service) SetConditionTrigger(ctx context.Context, elementID, conditionID string, triggerIndex int) error {
	return s.edit(ctx, elementID, conditionID, func(el *element.Element, cond *Condition) error {
		if triggerIndex < 0 || triggerIndex > el.Triggers.Len() {
			return overlayerr.InvalidArgumentf("trigger index %d out of range", triggerIndex).
				WithMeta("element_id", elementID)
		}
		cond.TriggerIndex = triggerIndex
		return nil
	})
}

func (s *service) SetConditionTest(ctx context.Context, elementID, conditionID string, field datasource.Field, op compare.Operator) error {
	return s.edit(ctx, elementID, conditionID, func(_ *element.Element, cond *Condition) error {
		cond.Field = field
		cond.Op = op
		return nil
	})
}

func (s *service) CommitThreshold(ctx context.Context, elementID, conditionID, text string) (*Condition, error) {
	var committed *Condition
	err := s.edit(ctx, elementID, conditionID, func(_ *element.Element, cond *Condition) error {
		if err := CommitThreshold(cond, text); err != nil {
			return err
		}
		committed = cond.Clone()
		return nil
	})
	if err != nil {
		if overlayerr.IsValidation(err) {
			s.log.WithFields(logrus.Fields{
				"element_id":   elementID,
				"condition_id": conditionID,
				"input":        text,
			}).Debug("rejected threshold")
		}
		return nil, err
	}
	return committed, nil
}

func (s *service) SetConditionStyle(ctx context.Context, elementID, conditionID string, style element.Style) error {
	return s.edit(ctx, elementID, conditionID, func(_ *element.Element, cond *Condition) error {
		cond.Style = style.Clone()
		return nil
	})
}
