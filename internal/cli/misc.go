package cli

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vaultpass/credgen/internal/generator"
	"github.com/vaultpass/credgen/internal/identity"
)

var defaultPlatforms = []string{"github", "twitter", "instagram", "reddit"}

func newCheckCommand(_ *container) *cobra.Command {
	var platforms []string

	cmd := &cobra.Command{
		Use:   "check USERNAME",
		Short: "Estimate username availability (placeholder, not a real lookup)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verdicts := generator.CheckAvailability(args[0], platforms)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range slices.Sorted(maps.Keys(verdicts)) {
				status := "taken"
				if verdicts[name] {
					status = "available"
				}
				fmt.Fprintf(tw, "%s\t%s\n", name, status)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringSliceVar(&platforms, "platform", defaultPlatforms, "Platforms to check")
	return cmd
}

func newTokenCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "token IDENTITY",
		Short: "Mint an identity token for the HTTP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}

			token, err := identity.NewIssuer(cfg.IdentitySecret, cfg.IdentityTokenTTL).Issue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}
