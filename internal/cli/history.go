package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultpass/credgen/internal/model"
)

// newHistoryCommand lists history and, through subcommands, curates it.
func newHistoryCommand(c *container) *cobra.Command {
	var (
		kind      string
		limit     int
		favorites bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List generated values, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.open(ctx); err != nil {
				return err
			}
			owner, err := c.owner()
			if err != nil {
				return err
			}

			resp, err := c.history.List(ctx, owner, model.Kind(kind), limit, favorites)
			if err != nil {
				return err
			}
			if resp.Count == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history recorded yet.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTYPE\tFAV\tCREATED\tVALUE")
			for _, item := range resp.Items {
				fav := ""
				if item.Favorite {
					fav = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					item.ID, item.Kind, fav, item.CreatedAt.Local().Format(time.DateTime), item.Value)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "Only username or password records")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max entries to show (0: HISTORY_LIMIT)")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "Only favorites")

	cmd.AddCommand(newFavoriteCommand(c), newDeleteCommand(c))
	return cmd
}

func newFavoriteCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite ID",
		Short: "Toggle the favorite flag of a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.open(ctx); err != nil {
				return err
			}
			owner, err := c.owner()
			if err != nil {
				return err
			}

			resp, err := c.history.ToggleFavorite(ctx, owner, args[0])
			if err != nil {
				return err
			}
			state := "removed from favorites"
			if resp.Favorite {
				state = "added to favorites"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", resp.ID, state)
			return nil
		},
	}
}

func newDeleteCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.open(ctx); err != nil {
				return err
			}
			owner, err := c.owner()
			if err != nil {
				return err
			}

			if err := c.history.Delete(ctx, owner, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s deleted\n", args[0])
			return nil
		},
	}
}
