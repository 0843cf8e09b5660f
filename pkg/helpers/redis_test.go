package helpers_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
)

func newSessionStore(t *testing.T) (*helpers.SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := helpers.NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rdb.Close() })
	return helpers.NewSessionStore(rdb), mr
}

func TestSessionStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store, mr := newSessionStore(t)

	require.NoError(t, store.Save(ctx, "user-1", "sid-1", time.Hour))
	require.NoError(t, store.Save(ctx, "user-1", "sid-2", time.Hour))

	ok, err := store.Active(ctx, "user-1", "sid-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Active(ctx, "user-2", "sid-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.RevokeUser(ctx, "user-1"))
	for _, sid := range []string{"sid-1", "sid-2"} {
		ok, err = store.Active(ctx, "user-1", sid)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.False(t, mr.Exists("user:sessions:user-1"))
}

func TestSessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newSessionStore(t)

	require.NoError(t, store.Save(ctx, "user-1", "sid-1", time.Minute))
	mr.FastForward(2 * time.Minute)

	ok, err := store.Active(ctx, "user-1", "sid-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRevokeUserWithoutSessions(t *testing.T) {
	store, _ := newSessionStore(t)
	assert.NoError(t, store.RevokeUser(context.Background(), "nobody"))
}
