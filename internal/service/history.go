package service

import (
	"context"
	"errors"

	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/store"
)

// HistoryService reads and curates an owner's generated credentials.
type HistoryService struct {
	store        store.Store
	defaultLimit int
}

// NewHistoryService creates a HistoryService. defaultLimit applies when a
// caller passes no positive limit.
func NewHistoryService(st store.Store, defaultLimit int) *HistoryService {
	return &HistoryService{store: st, defaultLimit: defaultLimit}
}

// List returns up to limit records, most recent first, optionally restricted
// to one kind and to favorites.
func (s *HistoryService) List(ctx context.Context, owner string, kind model.Kind, limit int, favoritesOnly bool) (model.HistoryResponse, error) {
	if kind != "" && !kind.Valid() {
		return model.HistoryResponse{}, ErrInvalidKind
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	fetch := limit
	if favoritesOnly {
		fetch = 0
	}
	records, err := s.store.ListByOwner(ctx, owner, kind, fetch)
	if err != nil {
		return model.HistoryResponse{}, err
	}

	items := make([]model.CredentialResponse, 0, min(len(records), limit))
	for _, c := range records {
		if len(items) == limit {
			break
		}
		if favoritesOnly && !c.Favorite {
			continue
		}
		items = append(items, c.Response())
	}
	return model.HistoryResponse{Items: items, Count: len(items)}, nil
}

// Get returns one record.
func (s *HistoryService) Get(ctx context.Context, owner, id string) (model.Credential, error) {
	c, err := s.store.Get(ctx, owner, id)
	return c, ownership(err)
}

// ToggleFavorite flips a record's favorite flag.
func (s *HistoryService) ToggleFavorite(ctx context.Context, owner, id string) (model.FavoriteResponse, error) {
	favorite, err := s.store.ToggleFavorite(ctx, owner, id)
	if err != nil {
		return model.FavoriteResponse{}, ownership(err)
	}
	return model.FavoriteResponse{ID: id, Favorite: favorite}, nil
}

// SetFavorite sets a record's favorite flag.
func (s *HistoryService) SetFavorite(ctx context.Context, owner, id string, favorite bool) (model.FavoriteResponse, error) {
	if err := s.store.SetFavorite(ctx, owner, id, favorite); err != nil {
		return model.FavoriteResponse{}, ownership(err)
	}
	return model.FavoriteResponse{ID: id, Favorite: favorite}, nil
}

// Delete removes a record.
func (s *HistoryService) Delete(ctx context.Context, owner, id string) error {
	return ownership(s.store.Delete(ctx, owner, id))
}

// ownership maps a store miss to ErrInvalidOwnership. A missing record and a
// foreign one are reported the same way.
func ownership(err error) error {
	if errors.Is(err, store.ErrCredentialNotFound) {
		return ErrInvalidOwnership
	}
	return err
}
