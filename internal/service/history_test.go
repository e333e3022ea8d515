package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/store"
)

func seedHistory(t *testing.T, st store.Store, owner string, n int) []string {
	t.Helper()
	ids := make([]string, n)
	for i := range n {
		kind := model.KindUsername
		if i%2 == 1 {
			kind = model.KindPassword
		}
		id, err := st.Append(context.Background(), owner, kind, fmt.Sprintf("v%d", i), nil)
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}

func TestHistoryList(t *testing.T) {
	st := store.NewMemory()
	seedHistory(t, st, "alice", 6)
	svc := NewHistoryService(st, 4)
	ctx := context.Background()

	resp, err := svc.List(ctx, "alice", "", 0, false)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Count)
	assert.Equal(t, "v5", resp.Items[0].Value)

	resp, err = svc.List(ctx, "alice", model.KindPassword, 10, false)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Count)
	for _, item := range resp.Items {
		assert.Equal(t, model.KindPassword, item.Kind)
	}

	_, err = svc.List(ctx, "alice", "pin", 10, false)
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestHistoryFavoritesOnly(t *testing.T) {
	st := store.NewMemory()
	ids := seedHistory(t, st, "alice", 6)
	svc := NewHistoryService(st, 2)
	ctx := context.Background()

	_, err := svc.SetFavorite(ctx, "alice", ids[0], true)
	require.NoError(t, err)
	_, err = svc.SetFavorite(ctx, "alice", ids[1], true)
	require.NoError(t, err)

	// favorites older than the default window are still found
	resp, err := svc.List(ctx, "alice", "", 0, true)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "v1", resp.Items[0].Value)
	assert.Equal(t, "v0", resp.Items[1].Value)
}

func TestHistoryToggleFavoriteTwice(t *testing.T) {
	st := store.NewMemory()
	id := seedHistory(t, st, "alice", 1)[0]
	svc := NewHistoryService(st, 50)
	ctx := context.Background()

	resp, err := svc.ToggleFavorite(ctx, "alice", id)
	require.NoError(t, err)
	assert.True(t, resp.Favorite)

	resp, err = svc.ToggleFavorite(ctx, "alice", id)
	require.NoError(t, err)
	assert.False(t, resp.Favorite)

	c, err := svc.Get(ctx, "alice", id)
	require.NoError(t, err)
	assert.False(t, c.Favorite)
}

func TestHistoryConcurrentTogglesKeepEveryFlip(t *testing.T) {
	st := store.NewMemory()
	id := seedHistory(t, st, "alice", 1)[0]
	svc := NewHistoryService(st, 50)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 9 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ToggleFavorite(ctx, "alice", id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	c, err := svc.Get(ctx, "alice", id)
	require.NoError(t, err)
	assert.True(t, c.Favorite)
}

func TestHistoryForeignOwner(t *testing.T) {
	st := store.NewMemory()
	id := seedHistory(t, st, "alice", 1)[0]
	svc := NewHistoryService(st, 50)
	ctx := context.Background()

	_, err := svc.ToggleFavorite(ctx, "mallory", id)
	assert.ErrorIs(t, err, ErrInvalidOwnership)
	_, err = svc.SetFavorite(ctx, "mallory", id, true)
	assert.ErrorIs(t, err, ErrInvalidOwnership)
	assert.ErrorIs(t, svc.Delete(ctx, "mallory", id), ErrInvalidOwnership)
	_, err = svc.Get(ctx, "mallory", id)
	assert.ErrorIs(t, err, ErrInvalidOwnership)

	c, err := svc.Get(ctx, "alice", id)
	require.NoError(t, err)
	assert.False(t, c.Favorite)
}

func TestHistoryDelete(t *testing.T) {
	st := store.NewMemory()
	ids := seedHistory(t, st, "alice", 2)
	svc := NewHistoryService(st, 50)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "alice", ids[0]))
	assert.ErrorIs(t, svc.Delete(ctx, "alice", ids[0]), ErrInvalidOwnership)

	resp, err := svc.List(ctx, "alice", "", 0, false)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "v1", resp.Items[0].Value)
}
