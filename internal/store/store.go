// Package store defines the persistence contract for generated credentials
// and per-identity preferences.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/vaultpass/credgen/internal/model"
)

var (
	// ErrCredentialNotFound is returned when a record does not exist or is
	// owned by another identity. The two cases are indistinguishable.
	ErrCredentialNotFound = errors.New("credential not found or access denied")
	// ErrPreferencesNotFound is returned when an identity has never saved
	// preferences.
	ErrPreferencesNotFound = errors.New("preferences not found")
)

// Store is implemented by every backend. All operations are scoped to an
// owner identity.
type Store interface {
	// Append inserts a record and returns its id. Records are append-only.
	Append(ctx context.Context, owner string, kind model.Kind, value string, settings json.RawMessage) (string, error)
	Get(ctx context.Context, owner, id string) (model.Credential, error)
	// ListByOwner returns up to limit records, most recent first. An empty
	// kind matches both kinds.
	ListByOwner(ctx context.Context, owner string, kind model.Kind, limit int) ([]model.Credential, error)
	SetFavorite(ctx context.Context, owner, id string, favorite bool) error
	// ToggleFavorite flips the favorite flag atomically and returns the new
	// value.
	ToggleFavorite(ctx context.Context, owner, id string) (bool, error)
	Delete(ctx context.Context, owner, id string) error

	GetPreferences(ctx context.Context, owner string) (model.Preferences, error)
	// SavePreferences creates the owner's record or patches it in place.
	SavePreferences(ctx context.Context, owner string, prefs model.Preferences) error

	Close() error
}
