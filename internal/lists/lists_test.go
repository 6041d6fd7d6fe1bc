package lists

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handla/internal/model"
	"handla/internal/store"
)

func openStore(t *testing.T) *store.SQLite {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "handla.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadOrCreateBootstrapsDefaultList(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	userID, err := s.EnsureUser(ctx, "anna@example.com")
	require.NoError(t, err)

	ls, err := LoadOrCreate(ctx, s, userID)
	require.NoError(t, err)
	require.Len(t, ls, 1)
	assert.Equal(t, DefaultName, ls[0].Name)

	// Second call finds the list instead of creating another.
	again, err := LoadOrCreate(ctx, s, userID)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, ls[0].ID, again[0].ID)
}

func TestPickActive(t *testing.T) {
	ls := []model.List{{ID: "a"}, {ID: "b"}}

	got, ok := PickActive(ls, "b")
	require.True(t, ok)
	assert.Equal(t, "b", got.ID, "saved selection wins while valid")

	got, ok = PickActive(ls, "gone")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID, "stale selection falls back to the first list")

	_, ok = PickActive(nil, "a")
	assert.False(t, ok)
}

func TestInvite(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	ownerID, err := s.EnsureUser(ctx, "anna@example.com")
	require.NoError(t, err)
	ls, err := LoadOrCreate(ctx, s, ownerID)
	require.NoError(t, err)

	guestID, err := s.EnsureUser(ctx, "bo@example.com")
	require.NoError(t, err)

	require.NoError(t, Invite(ctx, s, ls[0].ID, " Bo@Example.com "))
	guestLists, err := s.ListsForUser(ctx, guestID)
	require.NoError(t, err)
	require.Len(t, guestLists, 1)
	assert.Equal(t, ls[0].ID, guestLists[0].ID)

	// Inviting twice stays a single membership.
	require.NoError(t, Invite(ctx, s, ls[0].ID, "bo@example.com"))
	guestLists, err = s.ListsForUser(ctx, guestID)
	require.NoError(t, err)
	assert.Len(t, guestLists, 1)
}

func TestInviteUnknownEmail(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	ownerID, err := s.EnsureUser(ctx, "anna@example.com")
	require.NoError(t, err)
	ls, err := LoadOrCreate(ctx, s, ownerID)
	require.NoError(t, err)

	err = Invite(ctx, s, ls[0].ID, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
