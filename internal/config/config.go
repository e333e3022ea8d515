package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const devSecret = "dev-secret-change-in-production"

var (
	ErrInsecureSecret     = errors.New("IDENTITY_SECRET must be set in production environment")
	ErrUnknownStore       = errors.New("unknown STORE_DRIVER")
	ErrMissingDatabaseDSN = errors.New("DATABASE_DSN is required for sql store drivers")
)

type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	PrettyLog bool   `env:"PRETTY_LOG" envDefault:"false"`

	// StoreDriver is one of memory, mysql, sqlite, postgres, redis.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
	DatabaseDSN string `env:"DATABASE_DSN"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	WordsFile   string `env:"WORDS_FILE"`

	IdentitySecret   string        `env:"IDENTITY_SECRET" envDefault:"dev-secret-change-in-production"`
	IdentityTokenTTL time.Duration `env:"IDENTITY_TOKEN_TTL" envDefault:"720h"`
	DefaultIdentity  string        `env:"DEFAULT_IDENTITY" envDefault:"anonymous"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	AutosaveDelay time.Duration `env:"AUTOSAVE_DELAY" envDefault:"1s"`
	HistoryLimit  int           `env:"HISTORY_LIMIT" envDefault:"50"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsSQL reports whether the store driver is backed by database/sql.
func (c Config) IsSQL() bool {
	switch c.StoreDriver {
	case "mysql", "sqlite", "postgres":
		return true
	}
	return false
}

func (c Config) validate() error {
	if c.Env == "production" && c.IdentitySecret == devSecret {
		return ErrInsecureSecret
	}
	switch c.StoreDriver {
	case "memory", "redis":
	case "mysql", "sqlite", "postgres":
		if c.DatabaseDSN == "" {
			return ErrMissingDatabaseDSN
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, c.StoreDriver)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be > 0, got %d", c.HistoryLimit)
	}
	return nil
}
