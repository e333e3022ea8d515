package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vaultpass/credgen/internal/model"
)

var errSaveWithCount = errors.New("--save cannot be combined with --count above 1")

// generateFlags are shared by the username and password commands.
type generateFlags struct {
	profile string
	count   int
	seed    uint64
	save    bool
}

func (g *generateFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.profile, "profile", "", "YAML profile with username/password settings")
	cmd.Flags().IntVarP(&g.count, "count", "n", 1, "How many values to generate (at most 20)")
	cmd.Flags().Uint64Var(&g.seed, "seed", 0, "Seed for reproducible output")
	cmd.Flags().BoolVar(&g.save, "save", false, "Record the value in history")
}

func (g *generateFlags) seedPtr(cmd *cobra.Command) *uint64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	seed := g.seed
	return &seed
}

func (g *generateFlags) validate() error {
	if g.save && g.count > 1 {
		return errSaveWithCount
	}
	return nil
}

func newUsernameCommand(c *container) *cobra.Command {
	var gf generateFlags
	display := model.DefaultUsernameSettings()

	cmd := &cobra.Command{
		Use:   "username",
		Short: "Generate usernames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gf.validate(); err != nil {
				return err
			}
			p, err := loadProfile(gf.profile)
			if err != nil {
				return err
			}
			settings := p.Username
			if err := overlayFlags(cmd, func(fs *pflag.FlagSet) { bindUsernameFlags(fs, &settings) }); err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := c.open(ctx); err != nil {
				return err
			}

			if gf.count > 1 {
				resp, err := c.generator.GenerateBatch(ctx, model.BatchRequest{
					Type:     model.KindUsername,
					Count:    gf.count,
					Username: &settings,
					Seed:     gf.seedPtr(cmd),
				})
				if err != nil {
					return err
				}
				return printValues(cmd.OutOrStdout(), resp.Values)
			}

			owner, err := c.owner()
			if err != nil {
				return err
			}
			resp, err := c.generator.GenerateUsername(ctx, owner, model.GenerateUsernameRequest{
				UsernameSettings: settings,
				SaveToHistory:    gf.save,
				Seed:             gf.seedPtr(cmd),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Value)
			if resp.Truncated {
				fmt.Fprintln(cmd.ErrOrStderr(), "note: truncated to the maximum length")
			}
			reportSaved(cmd.ErrOrStderr(), resp.ID)
			return nil
		},
	}

	gf.bind(cmd)
	bindUsernameFlags(cmd.Flags(), &display)
	return cmd
}

func newPasswordCommand(c *container) *cobra.Command {
	var (
		gf           generateFlags
		showStrength bool
	)
	display := model.DefaultPasswordSettings()

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gf.validate(); err != nil {
				return err
			}
			p, err := loadProfile(gf.profile)
			if err != nil {
				return err
			}
			settings := p.Password
			if err := overlayFlags(cmd, func(fs *pflag.FlagSet) { bindPasswordFlags(fs, &settings) }); err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := c.open(ctx); err != nil {
				return err
			}

			if gf.count > 1 {
				resp, err := c.generator.GenerateBatch(ctx, model.BatchRequest{
					Type:     model.KindPassword,
					Count:    gf.count,
					Password: &settings,
					Seed:     gf.seedPtr(cmd),
				})
				if err != nil {
					return err
				}
				return printValues(cmd.OutOrStdout(), resp.Values)
			}

			owner, err := c.owner()
			if err != nil {
				return err
			}
			resp, err := c.generator.GeneratePassword(ctx, owner, model.GeneratePasswordRequest{
				PasswordSettings: settings,
				SaveToHistory:    gf.save,
				Seed:             gf.seedPtr(cmd),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Value)
			if showStrength {
				fmt.Fprintf(cmd.ErrOrStderr(), "strength: %s (%d/6)\n", resp.Strength, resp.Score)
			}
			reportSaved(cmd.ErrOrStderr(), resp.ID)
			return nil
		},
	}

	gf.bind(cmd)
	cmd.Flags().BoolVar(&showStrength, "strength", false, "Print the strength rating to stderr")
	bindPasswordFlags(cmd.Flags(), &display)
	return cmd
}

func newPairCommand(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "pair",
		Short: "Generate and record a username and password from saved defaults",
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

			pair, err := c.generator.GeneratePair(ctx, owner)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "username: %s\n", pair.Username.Value)
			fmt.Fprintf(out, "password: %s\n", pair.Password.Value)
			return nil
		},
	}
}

func printValues(w io.Writer, values []string) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

func reportSaved(w io.Writer, id string) {
	if id != "" {
		fmt.Fprintf(w, "saved as %s\n", id)
	}
}
