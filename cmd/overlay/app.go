package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/trigger-overlay/internal/config"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate/replay"
	"github.com/KirkDiggler/trigger-overlay/internal/layout"
	"github.com/KirkDiggler/trigger-overlay/internal/logging"
	"github.com/KirkDiggler/trigger-overlay/internal/repositories/elements"
	"github.com/KirkDiggler/trigger-overlay/internal/services"
)

// app is the wired overlay shared by the run and render commands
type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	services *services.Provider

	closers []io.Closer
}

func newLogger(cfg *config.Config, opts *rootOptions, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	if opts.logFile == "" {
		log, err := logging.NewWithOutput(cfg.Log.Level, fallback)
		return log, nil, err
	}

	f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, overlayerr.Wrapf(err, "failed to open log file %s", opts.logFile)
	}
	log, err := logging.NewWithOutput(cfg.Log.Level, f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return log, f, nil
}

func newApp(ctx context.Context, cfg *config.Config, opts *rootOptions, logOut io.Writer) (*app, error) {
	log, logCloser, err := newLogger(cfg, opts, logOut)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}
	if logCloser != nil {
		a.closers = append(a.closers, logCloser)
	}

	if opts.envLoaded {
		log.Debug("Loaded .env file")
	}

	if cfg.Overlay.SnapshotPath == "" {
		a.Close()
		return nil, overlayerr.Validation("OVERLAY_SNAPSHOT is required")
	}
	gameState, err := replay.Load(cfg.Overlay.SnapshotPath)
	if err != nil {
		a.Close()
		return nil, err
	}

	repo := a.repository(ctx)

	els, err := layout.NewLoader(nil).Load(cfg.Overlay.LayoutPath)
	switch {
	case err == nil:
		if err := layout.Seed(ctx, repo, els); err != nil {
			a.Close()
			return nil, err
		}
		log.WithField("elements", len(els)).Info("Seeded layout")
	case overlayerr.IsNotFound(err) && cfg.Redis.URL != "":
		log.WithField("layout", cfg.Overlay.LayoutPath).Info("No layout file, using stored elements")
	default:
		a.Close()
		return nil, err
	}

	a.services = services.NewProvider(&services.ProviderConfig{
		GameState:         gameState,
		ElementRepository: repo,
		Rounding:          cfg.Overlay.Rounding,
		Logger:            log,
	})

	if err := a.services.OverlayService.Load(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// repository connects to Redis when configured, falling back to memory
func (a *app) repository(ctx context.Context) elements.Repository {
	if a.cfg.Redis.URL == "" {
		a.log.Debug("No REDIS_URL found, using in-memory repositories")
		return elements.NewInMemoryRepository()
	}

	opts, err := redis.ParseURL(a.cfg.Redis.URL)
	if err != nil {
		a.log.WithError(err).Warn("Failed to parse Redis URL, falling back to in-memory repositories")
		return elements.NewInMemoryRepository()
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		a.log.WithError(err).Warn("Failed to connect to Redis, falling back to in-memory repositories")
		return elements.NewInMemoryRepository()
	}

	a.closers = append(a.closers, client)
	a.log.WithField("addr", opts.Addr).Info("Using Redis for persistence")
	return elements.NewRedis(client)
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.WithError(err).Warn("Error during shutdown")
		}
	}
	a.closers = nil
}
