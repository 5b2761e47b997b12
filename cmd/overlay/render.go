package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trigger-overlay/internal/render"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		preview bool
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Evaluate the layout once and print the frame",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg, opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			if preview {
				a.services.OverlayService.TogglePreview()
			}

			results := a.services.OverlayService.Tick()
			out := cmd.OutOrStdout()

			if plain {
				for _, res := range results {
					fmt.Fprintf(out, "%s\t%t\t%s\n", res.ElementID, res.Visible, res.Text)
				}
				return nil
			}

			if frame := render.New(nil).Frame(results); frame != "" {
				fmt.Fprintln(out, frame)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "preview every element")
	cmd.Flags().BoolVar(&plain, "plain", false, "print one unstyled line per element: id, visible, text")
	return cmd
}
