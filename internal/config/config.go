package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/textformat"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Overlay OverlayConfig
	Redis   RedisConfig
	Log     LogConfig
}

// OverlayConfig holds the overlay inputs and frame loop settings
type OverlayConfig struct {
	LayoutPath    string                  `env:"OVERLAY_LAYOUT" envDefault:"layout.yaml"`
	SnapshotPath  string                  `env:"OVERLAY_SNAPSHOT"`
	CatalogPath   string                  `env:"OVERLAY_CATALOG"`
	Rounding      textformat.RoundingMode `env:"OVERLAY_ROUNDING" envDefault:"truncate"`
	FrameInterval time.Duration           `env:"OVERLAY_FRAME_INTERVAL" envDefault:"100ms"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL"` // Optional: elements stay in memory when empty
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom loads configuration from the given variables only
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, overlayerr.WrapWithCode(err, overlayerr.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the environment parser cannot
func (c *Config) Validate() error {
	if c.Overlay.FrameInterval <= 0 {
		return overlayerr.Validationf("OVERLAY_FRAME_INTERVAL must be positive, got %s", c.Overlay.FrameInterval)
	}
	if c.Overlay.LayoutPath == "" {
		return overlayerr.Validation("OVERLAY_LAYOUT is required")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return overlayerr.Validationf("LOG_LEVEL %q is not a log level", c.Log.Level)
	}
	return nil
}
