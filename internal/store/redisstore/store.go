// Package redisstore implements store.Store on Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/store"
)

// maxWatchRetries bounds optimistic-lock retries on concurrent favorite updates.
const maxWatchRetries = 10

// Store keeps each record as a JSON value and indexes it in per-owner sorted
// sets scored by a global sequence, newest highest.
type Store struct {
	client *redis.Client
	keys   keys
	now    func() time.Time
}

var _ store.Store = (*Store)(nil)

// New wraps a connected client. An empty prefix uses DefaultPrefix.
func New(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, keys: keys{prefix: prefix}, now: time.Now}
}

type record struct {
	ID        string          `json:"id"`
	Owner     string          `json:"owner"`
	Kind      model.Kind      `json:"kind"`
	Value     string          `json:"value"`
	Settings  json.RawMessage `json:"settings"`
	Favorite  bool            `json:"is_favorite"`
	CreatedAt int64           `json:"created_at"`
}

func (r record) credential() model.Credential {
	return model.Credential{
		ID:        r.ID,
		Owner:     r.Owner,
		Kind:      r.Kind,
		Value:     r.Value,
		Settings:  r.Settings,
		Favorite:  r.Favorite,
		CreatedAt: time.UnixMilli(r.CreatedAt).UTC(),
	}
}

func (s *Store) Append(ctx context.Context, owner string, kind model.Kind, value string, settings json.RawMessage) (string, error) {
	if len(settings) == 0 {
		settings = json.RawMessage("{}")
	}
	rec := record{
		ID:        uuid.NewString(),
		Owner:     owner,
		Kind:      kind,
		Value:     value,
		Settings:  settings,
		CreatedAt: s.now().UnixMilli(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal credential: %w", err)
	}

	seq, err := s.client.Incr(ctx, s.keys.sequence()).Result()
	if err != nil {
		return "", fmt.Errorf("failed to allocate sequence: %w", err)
	}

	member := redis.Z{Score: float64(seq), Member: rec.ID}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.keys.credential(rec.ID), data, 0)
		pipe.ZAdd(ctx, s.keys.history(owner, ""), member)
		pipe.ZAdd(ctx, s.keys.history(owner, kind), member)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to save credential: %w", err)
	}
	return rec.ID, nil
}

func (s *Store) Get(ctx context.Context, owner, id string) (model.Credential, error) {
	rec, err := s.load(ctx, s.client, owner, id)
	if err != nil {
		return model.Credential{}, err
	}
	return rec.credential(), nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// load reads a record through c, which may be a transaction-scoped client.
func (s *Store) load(ctx context.Context, c getter, owner, id string) (record, error) {
	data, err := c.Get(ctx, s.keys.credential(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return record{}, store.ErrCredentialNotFound
		}
		return record{}, fmt.Errorf("failed to get credential: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return record{}, fmt.Errorf("failed to unmarshal credential: %w", err)
	}
	if rec.Owner != owner {
		return record{}, store.ErrCredentialNotFound
	}
	return rec, nil
}

func (s *Store) ListByOwner(ctx context.Context, owner string, kind model.Kind, limit int) ([]model.Credential, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	ids, err := s.client.ZRevRange(ctx, s.keys.history(owner, kind), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list credential ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	recordKeys := make([]string, len(ids))
	for i, id := range ids {
		recordKeys[i] = s.keys.credential(id)
	}
	values, err := s.client.MGet(ctx, recordKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}

	out := make([]model.Credential, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry outlived its record
			continue
		}
		var rec record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal credential: %w", err)
		}
		out = append(out, rec.credential())
	}
	return out, nil
}

func (s *Store) SetFavorite(ctx context.Context, owner, id string, favorite bool) error {
	_, err := s.updateFavorite(ctx, owner, id, func(bool) bool { return favorite })
	return err
}

func (s *Store) ToggleFavorite(ctx context.Context, owner, id string) (bool, error) {
	return s.updateFavorite(ctx, owner, id, func(cur bool) bool { return !cur })
}

// updateFavorite rewrites the record's flag under WATCH, retrying when another
// writer gets in between the read and the write.
func (s *Store) updateFavorite(ctx context.Context, owner, id string, next func(bool) bool) (bool, error) {
	key := s.keys.credential(id)

	var favorite bool
	update := func(tx *redis.Tx) error {
		rec, err := s.load(ctx, tx, owner, id)
		if err != nil {
			return err
		}
		rec.Favorite = next(rec.Favorite)
		favorite = rec.Favorite
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal credential: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for range maxWatchRetries {
		err := s.client.Watch(ctx, update, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return false, err
		}
		return favorite, nil
	}
	return false, fmt.Errorf("failed to update credential %s: too much contention", id)
}

func (s *Store) Delete(ctx context.Context, owner, id string) error {
	rec, err := s.load(ctx, s.client, owner, id)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.keys.credential(id))
		pipe.ZRem(ctx, s.keys.history(owner, ""), id)
		pipe.ZRem(ctx, s.keys.history(owner, rec.Kind), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}

type preferencesRecord struct {
	UsernameDefaults model.UsernameSettings `json:"username_defaults"`
	PasswordDefaults model.PasswordSettings `json:"password_defaults"`
	DarkMode         bool                   `json:"dark_mode"`
	UpdatedAt        int64                  `json:"updated_at"`
}

func (s *Store) GetPreferences(ctx context.Context, owner string) (model.Preferences, error) {
	data, err := s.client.Get(ctx, s.keys.preferences(owner)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Preferences{}, store.ErrPreferencesNotFound
		}
		return model.Preferences{}, fmt.Errorf("failed to get preferences: %w", err)
	}

	var rec preferencesRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.Preferences{}, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	return model.Preferences{
		Owner:            owner,
		UsernameDefaults: rec.UsernameDefaults,
		PasswordDefaults: rec.PasswordDefaults,
		DarkMode:         rec.DarkMode,
		UpdatedAt:        time.UnixMilli(rec.UpdatedAt).UTC(),
	}, nil
}

// SavePreferences overwrites owner's single preferences value.
func (s *Store) SavePreferences(ctx context.Context, owner string, prefs model.Preferences) error {
	data, err := json.Marshal(preferencesRecord{
		UsernameDefaults: prefs.UsernameDefaults,
		PasswordDefaults: prefs.PasswordDefaults,
		DarkMode:         prefs.DarkMode,
		UpdatedAt:        s.now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := s.client.Set(ctx, s.keys.preferences(owner), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Ping reports whether the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
