package model

import (
	"encoding/json"
	"slices"
	"time"
)

// Kind is the type of a generated credential.
type Kind string

const (
	KindUsername Kind = "username"
	KindPassword Kind = "password"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindUsername || k == KindPassword
}

// Credential is a generated value persisted to history. Value and Settings
// never change after creation; only Favorite does.
type Credential struct {
	ID        string
	Owner     string
	Kind      Kind
	Value     string
	Settings  json.RawMessage
	Favorite  bool
	CreatedAt time.Time
}

// Clone returns a copy that shares no settings bytes with c.
func (c Credential) Clone() Credential {
	c.Settings = slices.Clone(c.Settings)
	return c
}

// CredentialResponse is a history record safe for API responses (no owner).
type CredentialResponse struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"type"`
	Value     string          `json:"value"`
	Settings  json.RawMessage `json:"settings"`
	Favorite  bool            `json:"is_favorite"`
	CreatedAt time.Time       `json:"created_at"`
}

// Response converts c for API output.
func (c Credential) Response() CredentialResponse {
	settings := c.Settings
	if len(settings) == 0 {
		settings = json.RawMessage("{}")
	}
	return CredentialResponse{
		ID:        c.ID,
		Kind:      c.Kind,
		Value:     c.Value,
		Settings:  settings,
		Favorite:  c.Favorite,
		CreatedAt: c.CreatedAt,
	}
}

// HistoryResponse lists history records, most recent first.
type HistoryResponse struct {
	Items []CredentialResponse `json:"items"`
	Count int                  `json:"count"`
}

// FavoriteRequest sets the favorite flag explicitly.
type FavoriteRequest struct {
	Favorite *bool `json:"favorite"`
}

// FavoriteResponse reports the flag after a change.
type FavoriteResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"is_favorite"`
}
