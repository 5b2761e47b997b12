package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trigger-overlay/internal/catalog"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
	"github.com/KirkDiggler/trigger-overlay/internal/gamestate"
)

const suggestionLimit = 5

func parseKind(s string) (gamestate.DescriptorKind, error) {
	switch kind := gamestate.DescriptorKind(strings.ToLower(s)); kind {
	case gamestate.KindStatus, gamestate.KindAbility, gamestate.KindItem:
		return kind, nil
	default:
		return "", overlayerr.InvalidArgumentf("unknown kind %q, want status, ability or item", s)
	}
}

func newLookupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <status|ability|item> <name or id>",
		Short: "Resolve a descriptor in the catalog",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			query := strings.Join(args[1:], " ")

			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if cfg.Overlay.CatalogPath == "" {
				return overlayerr.Validation("OVERLAY_CATALOG is required")
			}

			c, err := catalog.Load(cfg.Overlay.CatalogPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if found := c.ResolveDescriptors(query, kind); len(found) > 0 {
				for _, d := range found {
					fmt.Fprintf(out, "%d\t%s\t%d\n", d.ID, d.Name, d.Icon)
				}
				return nil
			}

			suggestions := c.Suggest(query, kind, suggestionLimit)
			if len(suggestions) == 0 {
				return overlayerr.NotFoundf("no %s named %q", kind, query)
			}

			names := make([]string, len(suggestions))
			for i, s := range suggestions {
				names[i] = s.Descriptor.Name
			}
			return overlayerr.NotFoundf("no %s named %q, did you mean: %s", kind, query, strings.Join(names, ", "))
		},
	}
}
