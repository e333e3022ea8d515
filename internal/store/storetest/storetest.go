// Package storetest holds the behavioural suite every store.Store backend
// must pass.
package storetest

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/store"
)

// Run exercises a fresh store from newStore in every subtest.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s store.Store)
	}{
		{"AppendAndGet", testAppendAndGet},
		{"ListMostRecentFirst", testListMostRecentFirst},
		{"ListKindAndLimit", testListKindAndLimit},
		{"ListScopedToOwner", testListScopedToOwner},
		{"SetFavorite", testSetFavorite},
		{"ForeignOwnerRejected", testForeignOwnerRejected},
		{"Delete", testDelete},
		{"PreferencesUpsert", testPreferencesUpsert},
		{"PreferencesNotAliased", testPreferencesNotAliased},
		{"ToggleFavorite", testToggleFavorite},
		{"ToggleFavoriteConcurrent", testToggleFavoriteConcurrent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			t.Cleanup(func() { _ = s.Close() })
			tt.fn(t, s)
		})
	}
}

func appendN(t *testing.T, s store.Store, owner string, kind model.Kind, values ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(values))
	for _, v := range values {
		id, err := s.Append(context.Background(), owner, kind, v, json.RawMessage(`{"length":8}`))
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func values(cs []model.Credential) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Value
	}
	return out
}

func testAppendAndGet(t *testing.T, s store.Store) {
	ctx := context.Background()
	id, err := s.Append(ctx, "alice", model.KindPassword, "s3cret!", json.RawMessage(`{"length":7,"symbols":true}`))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	c, err := s.Get(ctx, "alice", id)
	require.NoError(t, err)
	assert.Equal(t, id, c.ID)
	assert.Equal(t, "alice", c.Owner)
	assert.Equal(t, model.KindPassword, c.Kind)
	assert.Equal(t, "s3cret!", c.Value)
	assert.JSONEq(t, `{"length":7,"symbols":true}`, string(c.Settings))
	assert.False(t, c.Favorite)
	assert.False(t, c.CreatedAt.IsZero())

	_, err = s.Get(ctx, "alice", "missing")
	assert.ErrorIs(t, err, store.ErrCredentialNotFound)
}

func testListMostRecentFirst(t *testing.T, s store.Store) {
	appendN(t, s, "alice", model.KindUsername, "one", "two", "three")

	got, err := s.ListByOwner(context.Background(), "alice", "", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "two", "one"}, values(got))
}

func testListKindAndLimit(t *testing.T, s store.Store) {
	appendN(t, s, "alice", model.KindUsername, "u1")
	appendN(t, s, "alice", model.KindPassword, "p1")
	appendN(t, s, "alice", model.KindUsername, "u2", "u3")

	ctx := context.Background()
	got, err := s.ListByOwner(ctx, "alice", model.KindUsername, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"u3", "u2", "u1"}, values(got))

	got, err = s.ListByOwner(ctx, "alice", model.KindPassword, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, values(got))

	got, err = s.ListByOwner(ctx, "alice", "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"u3", "u2"}, values(got))
}

func testListScopedToOwner(t *testing.T, s store.Store) {
	appendN(t, s, "alice", model.KindUsername, "a1")
	appendN(t, s, "bob", model.KindUsername, "b1")

	got, err := s.ListByOwner(context.Background(), "bob", "", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, values(got))

	got, err = s.ListByOwner(context.Background(), "carol", "", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func testSetFavorite(t *testing.T, s store.Store) {
	ctx := context.Background()
	id := appendN(t, s, "alice", model.KindPassword, "pw")[0]

	require.NoError(t, s.SetFavorite(ctx, "alice", id, true))
	c, err := s.Get(ctx, "alice", id)
	require.NoError(t, err)
	assert.True(t, c.Favorite)

	require.NoError(t, s.SetFavorite(ctx, "alice", id, false))
	c, err = s.Get(ctx, "alice", id)
	require.NoError(t, err)
	assert.False(t, c.Favorite)

	assert.ErrorIs(t, s.SetFavorite(ctx, "alice", "missing", true), store.ErrCredentialNotFound)
}

func testForeignOwnerRejected(t *testing.T, s store.Store) {
	ctx := context.Background()
	id := appendN(t, s, "alice", model.KindPassword, "pw")[0]

	_, err := s.Get(ctx, "bob", id)
	assert.ErrorIs(t, err, store.ErrCredentialNotFound)
	assert.ErrorIs(t, s.SetFavorite(ctx, "bob", id, true), store.ErrCredentialNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "bob", id), store.ErrCredentialNotFound)

	c, err := s.Get(ctx, "alice", id)
	require.NoError(t, err)
	assert.False(t, c.Favorite)
}

func testDelete(t *testing.T, s store.Store) {
	ctx := context.Background()
	ids := appendN(t, s, "alice", model.KindUsername, "keep", "drop")

	require.NoError(t, s.Delete(ctx, "alice", ids[1]))
	assert.ErrorIs(t, s.Delete(ctx, "alice", ids[1]), store.ErrCredentialNotFound)

	got, err := s.ListByOwner(ctx, "alice", "", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, values(got))
}

func testPreferencesUpsert(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.GetPreferences(ctx, "alice")
	require.ErrorIs(t, err, store.ErrPreferencesNotFound)

	prefs := model.DefaultPreferences("alice")
	require.NoError(t, s.SavePreferences(ctx, "alice", prefs))

	got, err := s.GetPreferences(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Owner)
	assert.Equal(t, prefs.UsernameDefaults, got.UsernameDefaults)
	assert.Equal(t, prefs.PasswordDefaults, got.PasswordDefaults)
	assert.False(t, got.DarkMode)
	assert.False(t, got.UpdatedAt.IsZero())

	prefs.DarkMode = true
	prefs.UsernameDefaults.Theme = "nature"
	require.NoError(t, s.SavePreferences(ctx, "alice", prefs))

	got, err = s.GetPreferences(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, got.DarkMode)
	assert.Equal(t, "nature", got.UsernameDefaults.Theme)

	_, err = s.GetPreferences(ctx, "bob")
	assert.ErrorIs(t, err, store.ErrPreferencesNotFound)
}

func testPreferencesNotAliased(t *testing.T, s store.Store) {
	ctx := context.Background()

	prefs := model.DefaultPreferences("alice")
	require.NoError(t, s.SavePreferences(ctx, "alice", prefs))
	*prefs.PasswordDefaults.Symbols = false

	got, err := s.GetPreferences(ctx, "alice")
	require.NoError(t, err)
	*got.PasswordDefaults.Uppercase = false
	got.PasswordDefaults.Lowercase = model.Bool(false)

	again, err := s.GetPreferences(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPasswordSettings(), again.PasswordDefaults)
}

func testToggleFavorite(t *testing.T, s store.Store) {
	ctx := context.Background()
	id := appendN(t, s, "alice", model.KindPassword, "pw")[0]

	fav, err := s.ToggleFavorite(ctx, "alice", id)
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = s.ToggleFavorite(ctx, "alice", id)
	require.NoError(t, err)
	assert.False(t, fav)

	c, err := s.Get(ctx, "alice", id)
	require.NoError(t, err)
	assert.False(t, c.Favorite)

	_, err = s.ToggleFavorite(ctx, "bob", id)
	assert.ErrorIs(t, err, store.ErrCredentialNotFound)
	_, err = s.ToggleFavorite(ctx, "alice", "missing")
	assert.ErrorIs(t, err, store.ErrCredentialNotFound)
}

func testToggleFavoriteConcurrent(t *testing.T, s store.Store) {
	ctx := context.Background()
	id := appendN(t, s, "alice", model.KindPassword, "pw")[0]

	const toggles = 6
	var wg sync.WaitGroup
	errs := make(chan error, toggles)
	for range toggles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ToggleFavorite(ctx, "alice", id)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// an even number of flips lands back where it started
	c, err := s.Get(ctx, "alice", id)
	require.NoError(t, err)
	assert.False(t, c.Favorite)
}
