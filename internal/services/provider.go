package services

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/trigger-overlay/internal/clock"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/textformat"
	"github.com/KirkDiggler/trigger-overlay/internal/events"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
	"github.com/KirkDiggler/trigger-overlay/internal/repositories/elements"
	"github.com/KirkDiggler/trigger-overlay/internal/services/editor"
	"github.com/KirkDiggler/trigger-overlay/internal/services/overlay"
)

// Provider holds all service instances
type Provider struct {
	EditorService  editor.Service
	OverlayService overlay.Service
	Registry       *editor.Registry
	EventBus       *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	GameState         gamestate.Provider  // Required
	ElementRepository elements.Repository // Optional, in-memory when nil
	Rounding          textformat.RoundingMode
	TimeProvider      clock.TimeProvider
	Logger            logrus.FieldLogger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	repo := cfg.ElementRepository
	if repo == nil {
		repo = elements.NewInMemoryRepository()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	// The editor and the overlay loop share one registry so an open
	// condition page pins its style on the next tick
	registry := editor.NewRegistry()

	bus := events.NewBus(logger)
	bus.SubscribeAll(events.NewLoggingListener(logger))

	overlayService := overlay.NewService(&overlay.ServiceConfig{
		Repository:   repo,
		Provider:     cfg.GameState,
		Registry:     registry,
		Formatter:    textformat.New(cfg.Rounding),
		TimeProvider: cfg.TimeProvider,
		EventBus:     bus,
		Logger:       logger,
	})

	// Editor writes go straight into the running loop so a later save
	// never stores a stale copy
	editorService := editor.NewService(&editor.ServiceConfig{
		Repository: repo,
		Registry:   registry,
		Live:       overlayService,
		Logger:     logger,
	})

	return &Provider{
		EditorService:  editorService,
		OverlayService: overlayService,
		Registry:       registry,
		EventBus:       bus,
	}
}
