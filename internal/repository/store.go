package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/vaultpass/credgen/internal/logger"
	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/store"
)

// Store is the SQL-backed store.Store.
type Store struct {
	db          *sql.DB
	credentials *CredentialRepository
	preferences *PreferencesRepository
}

var _ store.Store = (*Store)(nil)

// Open connects, migrates and returns a Store that owns the pool.
func Open(ctx context.Context, d Dialect, dsn string, log logger.Logger) (*Store, error) {
	db, err := NewDB(ctx, d, dsn, log)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db, d, log); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewStore(db, d), nil
}

// NewStore wraps an already migrated pool.
func NewStore(db *sql.DB, d Dialect) *Store {
	return &Store{
		db:          db,
		credentials: NewCredentialRepository(db, d),
		preferences: NewPreferencesRepository(db, d),
	}
}

func (s *Store) Append(ctx context.Context, owner string, kind model.Kind, value string, settings json.RawMessage) (string, error) {
	return s.credentials.Append(ctx, owner, kind, value, settings)
}

func (s *Store) Get(ctx context.Context, owner, id string) (model.Credential, error) {
	return s.credentials.Get(ctx, owner, id)
}

func (s *Store) ListByOwner(ctx context.Context, owner string, kind model.Kind, limit int) ([]model.Credential, error) {
	return s.credentials.ListByOwner(ctx, owner, kind, limit)
}

func (s *Store) SetFavorite(ctx context.Context, owner, id string, favorite bool) error {
	return s.credentials.SetFavorite(ctx, owner, id, favorite)
}

func (s *Store) ToggleFavorite(ctx context.Context, owner, id string) (bool, error) {
	return s.credentials.ToggleFavorite(ctx, owner, id)
}

func (s *Store) Delete(ctx context.Context, owner, id string) error {
	return s.credentials.Delete(ctx, owner, id)
}

func (s *Store) GetPreferences(ctx context.Context, owner string) (model.Preferences, error) {
	return s.preferences.Get(ctx, owner)
}

func (s *Store) SavePreferences(ctx context.Context, owner string, prefs model.Preferences) error {
	return s.preferences.Save(ctx, owner, prefs)
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
