// Package app wires configuration into stores, services and routes for both
// binaries.
package app

import (
	"context"
	"fmt"

	"github.com/vaultpass/credgen/internal/config"
	"github.com/vaultpass/credgen/internal/generator"
	"github.com/vaultpass/credgen/internal/handler"
	"github.com/vaultpass/credgen/internal/logger"
	"github.com/vaultpass/credgen/internal/repository"
	"github.com/vaultpass/credgen/internal/store"
	"github.com/vaultpass/credgen/internal/store/redisstore"
	"github.com/vaultpass/credgen/internal/words"
)

// OpenStore opens the store selected by cfg.StoreDriver. The returned Pinger
// is nil for the in-memory store.
func OpenStore(ctx context.Context, cfg config.Config, log logger.Logger) (store.Store, handler.Pinger, error) {
	switch cfg.StoreDriver {
	case "memory":
		log.Warn("using in-memory store, history is lost on restart")
		return store.NewMemory(), nil, nil

	case "mysql", "sqlite", "postgres":
		st, err := repository.Open(ctx, repository.Dialect(cfg.StoreDriver), cfg.DatabaseDSN, log)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
		}
		return st, st, nil

	case "redis":
		client, err := redisstore.Connect(ctx, cfg.RedisURL, redisstore.DefaultConnectOptions(), log)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis store: %w", err)
		}
		st := redisstore.New(client, redisstore.DefaultPrefix)
		return st, st, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStore, cfg.StoreDriver)
	}
}

// NewGenerator builds the composers over the built-in words or, when
// cfg.WordsFile is set, the table it names.
func NewGenerator(cfg config.Config) (*generator.Generator, error) {
	if cfg.WordsFile == "" {
		return generator.New(words.Default()), nil
	}
	table, err := words.LoadTable(cfg.WordsFile)
	if err != nil {
		return nil, err
	}
	return generator.New(table), nil
}
