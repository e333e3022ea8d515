package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/store"
)

// PreferencesRepository persists one preferences row per identity.
type PreferencesRepository struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// NewPreferencesRepository creates a new PreferencesRepository.
func NewPreferencesRepository(db *sql.DB, d Dialect) *PreferencesRepository {
	return &PreferencesRepository{db: db, dialect: d, now: time.Now}
}

// Get retrieves owner's preferences.
func (r *PreferencesRepository) Get(ctx context.Context, owner string) (model.Preferences, error) {
	query := `SELECT owner, username_defaults, password_defaults, dark_mode, updated_at
		FROM user_preferences WHERE owner = ?`

	var (
		p                model.Preferences
		username, passwd string
		updatedAt        int64
	)
	err := r.db.QueryRowContext(ctx, rebind(r.dialect, query), owner).Scan(
		&p.Owner, &username, &passwd, &p.DarkMode, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Preferences{}, store.ErrPreferencesNotFound
		}
		return model.Preferences{}, err
	}

	if err := json.Unmarshal([]byte(username), &p.UsernameDefaults); err != nil {
		return model.Preferences{}, fmt.Errorf("decode username defaults: %w", err)
	}
	if err := json.Unmarshal([]byte(passwd), &p.PasswordDefaults); err != nil {
		return model.Preferences{}, fmt.Errorf("decode password defaults: %w", err)
	}
	p.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return p, nil
}

// Save looks up owner's row and patches it, or inserts one when absent. Both
// steps run in one transaction.
func (r *PreferencesRepository) Save(ctx context.Context, owner string, p model.Preferences) error {
	username, err := json.Marshal(p.UsernameDefaults)
	if err != nil {
		return fmt.Errorf("encode username defaults: %w", err)
	}
	passwd, err := json.Marshal(p.PasswordDefaults)
	if err != nil {
		return fmt.Errorf("encode password defaults: %w", err)
	}
	now := r.now().UnixMilli()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, rebind(r.dialect, `SELECT 1 FROM user_preferences WHERE owner = ?`), owner).Scan(&exists)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		query := `INSERT INTO user_preferences (owner, username_defaults, password_defaults, dark_mode, updated_at)
			VALUES (?, ?, ?, ?, ?)`
		_, err = tx.ExecContext(ctx, rebind(r.dialect, query), owner, string(username), string(passwd), p.DarkMode, now)
	case err == nil:
		query := `UPDATE user_preferences SET username_defaults = ?, password_defaults = ?, dark_mode = ?, updated_at = ?
			WHERE owner = ?`
		_, err = tx.ExecContext(ctx, rebind(r.dialect, query), string(username), string(passwd), p.DarkMode, now, owner)
	}
	if err != nil {
		return err
	}

	return tx.Commit()
}
