package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/vaultpass/credgen/internal/generator"
	"github.com/vaultpass/credgen/internal/logger"
	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/store"
	"github.com/vaultpass/credgen/internal/words"
)

var errStoreDown = errors.New("store down")

// recordingStore counts preference writes and can be told to fail writes.
type recordingStore struct {
	store.Store

	mu         sync.Mutex
	prefSaves  int
	failAppend bool
	failPrefs  bool
}

func newRecordingStore() *recordingStore {
	return &recordingStore{Store: store.NewMemory()}
}

func (r *recordingStore) Append(ctx context.Context, owner string, kind model.Kind, value string, settings json.RawMessage) (string, error) {
	if r.failAppend {
		return "", errStoreDown
	}
	return r.Store.Append(ctx, owner, kind, value, settings)
}

func (r *recordingStore) SavePreferences(ctx context.Context, owner string, prefs model.Preferences) error {
	r.mu.Lock()
	r.prefSaves++
	fail := r.failPrefs
	r.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return r.Store.SavePreferences(ctx, owner, prefs)
}

func (r *recordingStore) saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prefSaves
}

func newTestGeneratorService(st store.Store) *GeneratorService {
	return NewGeneratorService(generator.New(words.Default()), st, logger.Nop())
}

func seed(v uint64) *uint64 {
	return &v
}
