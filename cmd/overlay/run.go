package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trigger-overlay/internal/render"
	"github.com/KirkDiggler/trigger-overlay/internal/tui"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the overlay in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			// The terminal belongs to the overlay; logs go to --log-file only
			a, err := newApp(cmd.Context(), cfg, opts, io.Discard)
			if err != nil {
				return err
			}
			defer a.Close()

			if preview {
				a.services.OverlayService.TogglePreview()
			}

			return tui.Run(&tui.Config{
				Overlay:       a.services.OverlayService,
				Editor:        a.services.EditorService,
				Renderer:      render.New(nil),
				FrameInterval: cfg.Overlay.FrameInterval,
			})
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "start with every element previewed")
	return cmd
}
