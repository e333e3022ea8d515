package store

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vaultpass/credgen/internal/model"
)

// Memory is an in-process Store. Records are kept in insertion order.
type Memory struct {
	mu      sync.RWMutex
	records []model.Credential
	prefs   map[string]model.Preferences
	now     func() time.Time
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		prefs: make(map[string]model.Preferences),
		now:   time.Now,
	}
}

func (m *Memory) Append(_ context.Context, owner string, kind model.Kind, value string, settings json.RawMessage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := model.Credential{
		ID:        uuid.NewString(),
		Owner:     owner,
		Kind:      kind,
		Value:     value,
		Settings:  slices.Clone(settings),
		CreatedAt: m.now().UTC().Truncate(time.Millisecond),
	}
	m.records = append(m.records, c)
	return c.ID, nil
}

func (m *Memory) Get(_ context.Context, owner, id string) (model.Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.index(owner, id)
	if i < 0 {
		return model.Credential{}, ErrCredentialNotFound
	}
	return m.records[i].Clone(), nil
}

func (m *Memory) ListByOwner(_ context.Context, owner string, kind model.Kind, limit int) ([]model.Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []model.Credential
	for i := len(m.records) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		c := m.records[i]
		if c.Owner != owner || (kind != "" && c.Kind != kind) {
			continue
		}
		out = append(out, c.Clone())
	}
	return out, nil
}

func (m *Memory) SetFavorite(_ context.Context, owner, id string, favorite bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(owner, id)
	if i < 0 {
		return ErrCredentialNotFound
	}
	m.records[i].Favorite = favorite
	return nil
}

func (m *Memory) ToggleFavorite(_ context.Context, owner, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(owner, id)
	if i < 0 {
		return false, ErrCredentialNotFound
	}
	m.records[i].Favorite = !m.records[i].Favorite
	return m.records[i].Favorite, nil
}

func (m *Memory) Delete(_ context.Context, owner, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(owner, id)
	if i < 0 {
		return ErrCredentialNotFound
	}
	m.records = slices.Delete(m.records, i, i+1)
	return nil
}

func (m *Memory) GetPreferences(_ context.Context, owner string) (model.Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.prefs[owner]
	if !ok {
		return model.Preferences{}, ErrPreferencesNotFound
	}
	return p.Clone(), nil
}

func (m *Memory) SavePreferences(_ context.Context, owner string, prefs model.Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefs.Owner = owner
	prefs.UpdatedAt = m.now().UTC().Truncate(time.Millisecond)
	m.prefs[owner] = prefs.Clone()
	return nil
}

func (m *Memory) Close() error { return nil }

func (m *Memory) index(owner, id string) int {
	return slices.IndexFunc(m.records, func(c model.Credential) bool {
		return c.ID == id && c.Owner == owner
	})
}
