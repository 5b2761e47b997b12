package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trigger-overlay/internal/config"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/textformat"
)

type rootOptions struct {
	envLoaded bool

	layout   string
	snapshot string
	catalog  string
	rounding string
	logLevel string
	logFile  string
}

func newRootCmd(envLoaded bool) *cobra.Command {
	opts := &rootOptions{envLoaded: envLoaded}

	cmd := &cobra.Command{
		Use:   "overlay",
		Short: "Trigger driven game overlay",
		Long: `overlay evaluates configured triggers against game state every frame and
draws the matching elements with their conditional styles and text templates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.layout, "layout", "", "layout file (overrides OVERLAY_LAYOUT)")
	flags.StringVar(&opts.snapshot, "snapshot", "", "game state snapshot (overrides OVERLAY_SNAPSHOT)")
	flags.StringVar(&opts.catalog, "catalog", "", "descriptor catalog (overrides OVERLAY_CATALOG)")
	flags.StringVar(&opts.rounding, "rounding", "", "kilo rounding: truncate, ceiling or nearest (overrides OVERLAY_ROUNDING)")
	flags.StringVarP(&opts.logLevel, "loglevel", "l", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")

	cmd.AddCommand(
		newRunCmd(opts),
		newRenderCmd(opts),
		newLookupCmd(opts),
	)
	return cmd
}

// config loads the environment and applies flag overrides
func (o *rootOptions) config() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if o.layout != "" {
		cfg.Overlay.LayoutPath = o.layout
	}
	if o.snapshot != "" {
		cfg.Overlay.SnapshotPath = o.snapshot
	}
	if o.catalog != "" {
		cfg.Overlay.CatalogPath = o.catalog
	}
	if o.rounding != "" {
		mode, err := textformat.ParseRoundingMode(o.rounding)
		if err != nil {
			return nil, err
		}
		cfg.Overlay.Rounding = mode
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
