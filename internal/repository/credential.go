package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/store"
)

// CredentialRepository persists generated credentials.
type CredentialRepository struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(db *sql.DB, d Dialect) *CredentialRepository {
	return &CredentialRepository{db: db, dialect: d, now: time.Now}
}

const credentialColumns = `id, owner, kind, value, settings, is_favorite, created_at`

// Append inserts a credential and returns its generated id.
func (r *CredentialRepository) Append(ctx context.Context, owner string, kind model.Kind, value string, settings json.RawMessage) (string, error) {
	if len(settings) == 0 {
		settings = json.RawMessage("{}")
	}
	id := uuid.NewString()
	query := `INSERT INTO generated_credentials (` + credentialColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, rebind(r.dialect, query),
		id, owner, string(kind), value, string(settings), false, r.now().UnixMilli(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Get retrieves one of owner's credentials.
func (r *CredentialRepository) Get(ctx context.Context, owner, id string) (model.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM generated_credentials WHERE id = ? AND owner = ?`

	c, err := scanCredential(r.db.QueryRowContext(ctx, rebind(r.dialect, query), id, owner))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Credential{}, store.ErrCredentialNotFound
		}
		return model.Credential{}, err
	}
	return c, nil
}

// ListByOwner retrieves owner's credentials, most recent first. An empty kind
// matches both kinds; limit <= 0 means no limit.
func (r *CredentialRepository) ListByOwner(ctx context.Context, owner string, kind model.Kind, limit int) ([]model.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM generated_credentials WHERE owner = ?`
	args := []any{owner}
	if kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY seq DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, rebind(r.dialect, query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Credential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SetFavorite sets the favorite flag on one of owner's credentials.
func (r *CredentialRepository) SetFavorite(ctx context.Context, owner, id string, favorite bool) error {
	query := `UPDATE generated_credentials SET is_favorite = ? WHERE id = ? AND owner = ?`
	return r.execOne(ctx, query, favorite, id, owner)
}

// ToggleFavorite flips the favorite flag in the database and reads the result
// back inside the same transaction, so concurrent toggles never lose a flip.
func (r *CredentialRepository) ToggleFavorite(ctx context.Context, owner, id string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	update := `UPDATE generated_credentials SET is_favorite = NOT is_favorite WHERE id = ? AND owner = ?`
	result, err := tx.ExecContext(ctx, rebind(r.dialect, update), id, owner)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rowsAffected == 0 {
		return false, store.ErrCredentialNotFound
	}

	var favorite bool
	query := `SELECT is_favorite FROM generated_credentials WHERE id = ? AND owner = ?`
	if err := tx.QueryRowContext(ctx, rebind(r.dialect, query), id, owner).Scan(&favorite); err != nil {
		return false, err
	}
	return favorite, tx.Commit()
}

// Delete removes one of owner's credentials.
func (r *CredentialRepository) Delete(ctx context.Context, owner, id string) error {
	query := `DELETE FROM generated_credentials WHERE id = ? AND owner = ?`
	return r.execOne(ctx, query, id, owner)
}

// execOne runs a statement that must touch exactly one row.
func (r *CredentialRepository) execOne(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, rebind(r.dialect, query), args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrCredentialNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner) (model.Credential, error) {
	var (
		c         model.Credential
		kind      string
		settings  string
		createdAt int64
	)
	if err := row.Scan(&c.ID, &c.Owner, &kind, &c.Value, &settings, &c.Favorite, &createdAt); err != nil {
		return model.Credential{}, err
	}
	c.Kind = model.Kind(kind)
	c.Settings = json.RawMessage(settings)
	c.CreatedAt = time.UnixMilli(createdAt).UTC()
	return c, nil
}
