// Package cli implements the credgen command line.
package cli

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vaultpass/credgen/internal/app"
	"github.com/vaultpass/credgen/internal/config"
	"github.com/vaultpass/credgen/internal/logger"
	"github.com/vaultpass/credgen/internal/service"
	"github.com/vaultpass/credgen/internal/store"
)

// Options holds CLI-level configuration.
type Options struct {
	// Env replaces the process environment when non-nil.
	Env map[string]string
}

// container holds what commands share. It is opened on first use so that
// commands without a store never touch one.
type container struct {
	opts     Options
	identity string

	cfg       config.Config
	cfgLoaded bool

	store     store.Store
	generator *service.GeneratorService
	history   *service.HistoryService
}

func (c *container) config() (config.Config, error) {
	if c.cfgLoaded {
		return c.cfg, nil
	}
	var (
		cfg config.Config
		err error
	)
	if c.opts.Env != nil {
		cfg, err = config.LoadFrom(c.opts.Env)
	} else {
		_ = godotenv.Load()
		cfg, err = config.Load()
	}
	if err != nil {
		return config.Config{}, err
	}
	c.cfg, c.cfgLoaded = cfg, true
	return cfg, nil
}

func (c *container) owner() (string, error) {
	if c.identity != "" {
		return c.identity, nil
	}
	cfg, err := c.config()
	if err != nil {
		return "", err
	}
	return cfg.DefaultIdentity, nil
}

func (c *container) open(ctx context.Context) error {
	if c.store != nil {
		return nil
	}
	cfg, err := c.config()
	if err != nil {
		return err
	}

	st, _, err := app.OpenStore(ctx, cfg, logger.Nop())
	if err != nil {
		return err
	}
	gen, err := app.NewGenerator(cfg)
	if err != nil {
		st.Close()
		return err
	}

	c.store = st
	c.generator = service.NewGeneratorService(gen, st, logger.Nop())
	c.history = service.NewHistoryService(st, cfg.HistoryLimit)
	return nil
}

func (c *container) close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	c := &container{opts: opts}

	root := &cobra.Command{
		Use:   "credgen",
		Short: "Generate usernames and passwords",
		Long: "credgen composes usernames and passwords from configurable rules.\n" +
			"History is kept in the store selected by STORE_DRIVER.",
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&c.identity, "identity", "", "Owner key for history (default DEFAULT_IDENTITY)")

	root.AddCommand(newUsernameCommand(c))
	root.AddCommand(newPasswordCommand(c))
	root.AddCommand(newPairCommand(c))
	root.AddCommand(newHistoryCommand(c))
	root.AddCommand(newCheckCommand(c))
	root.AddCommand(newTokenCommand(c))
	return root
}
