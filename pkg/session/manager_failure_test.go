package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authtoken/pkg/session"
)

var errStoreDown = errors.New("store down")

// flakyStore wraps MemoryStore and fails selected operations on demand.
type flakyStore struct {
	*session.MemoryStore
	failGet          bool
	failPut          bool
	failDelete       bool
	failDeleteUser   bool
	failUserKeys     bool
	failClear        bool
	failUserSessions map[string]bool
}

func newFlakyStore() *flakyStore {
	return &flakyStore{
		MemoryStore:      session.NewMemoryStore(),
		failUserSessions: make(map[string]bool),
	}
}

func (s *flakyStore) Get(ctx context.Context, userKey, sessionKey string) (*session.Session, error) {
	if s.failGet {
		return nil, errStoreDown
	}
	return s.MemoryStore.Get(ctx, userKey, sessionKey)
}

func (s *flakyStore) Put(ctx context.Context, sess *session.Session) error {
	if s.failPut {
		return errStoreDown
	}
	return s.MemoryStore.Put(ctx, sess)
}

func (s *flakyStore) Delete(ctx context.Context, userKey, sessionKey string) error {
	if s.failDelete {
		return errStoreDown
	}
	return s.MemoryStore.Delete(ctx, userKey, sessionKey)
}

func (s *flakyStore) DeleteUser(ctx context.Context, userKey string) error {
	if s.failDeleteUser {
		return errStoreDown
	}
	return s.MemoryStore.DeleteUser(ctx, userKey)
}

func (s *flakyStore) UserSessions(ctx context.Context, userKey string) ([]*session.Session, error) {
	if s.failUserSessions[userKey] {
		return nil, errStoreDown
	}
	return s.MemoryStore.UserSessions(ctx, userKey)
}

func (s *flakyStore) UserKeys(ctx context.Context) ([]string, error) {
	if s.failUserKeys {
		return nil, errStoreDown
	}
	return s.MemoryStore.UserKeys(ctx)
}

func (s *flakyStore) Clear(ctx context.Context) error {
	if s.failClear {
		return errStoreDown
	}
	return s.MemoryStore.Clear(ctx)
}

func newFlakyManager(t *testing.T, cfg session.Config) (*session.Manager, *flakyStore) {
	t.Helper()

	store := newFlakyStore()
	manager, err := session.New(newTestCodec(t), store, session.WithConfig(cfg))
	require.NoError(t, err)

	return manager, store
}

func TestManager_LoginPropagatesStoreErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("persist failure", func(t *testing.T) {
		manager, store := newFlakyManager(t, testConfig())
		store.failPut = true

		_, err := manager.Login(ctx, "u1")
		assert.ErrorIs(t, err, errStoreDown)
	})

	t.Run("single-login eviction failure", func(t *testing.T) {
		cfg := testConfig()
		cfg.ConcurrentLogin = false
		manager, store := newFlakyManager(t, cfg)
		store.failDeleteUser = true

		_, err := manager.Login(ctx, "u1")
		assert.ErrorIs(t, err, errStoreDown)
	})

	t.Run("device-reject enumeration failure", func(t *testing.T) {
		cfg := testConfig()
		cfg.DeviceReject = true
		manager, store := newFlakyManager(t, cfg)
		store.failUserSessions[manager.UserKey("", "u1")] = true

		_, err := manager.Login(ctx, "u1", session.WithDeviceType("mobile"))
		assert.ErrorIs(t, err, errStoreDown)
	})

	t.Run("piggyback sweep failure does not abort login", func(t *testing.T) {
		manager, store := newFlakyManager(t, testConfig())
		store.failUserSessions[manager.UserKey("", "u1")] = true

		sess, err := manager.Login(ctx, "u1")
		require.NoError(t, err)

		_, ok := manager.Verify(ctx, sess.Token)
		assert.True(t, ok)
	})
}

func TestManager_VerifySwallowsStoreErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("lookup failure", func(t *testing.T) {
		manager, store := newFlakyManager(t, testConfig())
		sess, err := manager.Login(ctx, "u1")
		require.NoError(t, err)

		store.failGet = true
		got, ok := manager.Verify(ctx, sess.Token)
		assert.False(t, ok)
		assert.Nil(t, got)

		// The session itself is untouched once the store recovers
		store.failGet = false
		_, ok = manager.Verify(ctx, sess.Token)
		assert.True(t, ok)
	})

	t.Run("refresh failure", func(t *testing.T) {
		manager, store := newFlakyManager(t, testConfig())
		sess, err := manager.Login(ctx, "u1")
		require.NoError(t, err)

		store.failPut = true
		got, ok := manager.Verify(ctx, sess.Token)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("expired-session removal failure", func(t *testing.T) {
		manager, store := newFlakyManager(t, testConfig())
		sess, err := manager.Login(ctx, "u1", session.WithTimeout(30*time.Millisecond))
		require.NoError(t, err)

		time.Sleep(50 * time.Millisecond)

		store.failDelete = true
		_, ok := manager.Verify(ctx, sess.Token)
		assert.False(t, ok)
	})
}

func TestManager_SweepPartialFailureTolerance(t *testing.T) {
	t.Parallel()

	manager, store := newFlakyManager(t, testConfig())
	ctx := context.Background()

	broken, err := manager.Login(ctx, "u1", session.WithTimeout(30*time.Millisecond))
	require.NoError(t, err)
	expired, err := manager.Login(ctx, "u2", session.WithTimeout(30*time.Millisecond))
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	// One user's enumeration fails; the sweep must still clean the rest
	store.failUserSessions[broken.UserKey] = true
	require.NoError(t, manager.Sweep(ctx))

	userKeys, err := store.MemoryStore.UserKeys(ctx)
	require.NoError(t, err)
	assert.NotContains(t, userKeys, expired.UserKey)
	assert.Contains(t, userKeys, broken.UserKey, "failing user is left for the next sweep")
}

func TestManager_AdminOpsPropagateStoreErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("kick out user", func(t *testing.T) {
		manager, store := newFlakyManager(t, testConfig())
		store.failDeleteUser = true
		assert.ErrorIs(t, manager.KickOutUser(ctx, "uk1"), errStoreDown)
	})

	t.Run("kick out session", func(t *testing.T) {
		manager, store := newFlakyManager(t, testConfig())
		store.failDelete = true
		assert.ErrorIs(t, manager.KickOutSession(ctx, "uk1", "sk1"), errStoreDown)
	})

	t.Run("clear all", func(t *testing.T) {
		manager, store := newFlakyManager(t, testConfig())
		store.failClear = true
		assert.ErrorIs(t, manager.ClearAll(ctx), errStoreDown)
	})

	t.Run("active user keys", func(t *testing.T) {
		manager, store := newFlakyManager(t, testConfig())
		store.failUserKeys = true
		_, err := manager.ActiveUserKeys(ctx)
		assert.ErrorIs(t, err, errStoreDown)
	})

	t.Run("user sessions", func(t *testing.T) {
		manager, store := newFlakyManager(t, testConfig())
		store.failUserSessions["uk1"] = true
		_, err := manager.UserSessions(ctx, "uk1")
		assert.ErrorIs(t, err, errStoreDown)
	})

	t.Run("logout", func(t *testing.T) {
		manager, store := newFlakyManager(t, testConfig())
		sess, err := manager.Login(ctx, "u1")
		require.NoError(t, err)

		store.failDelete = true
		err = manager.Logout(session.WithSession(ctx, sess))
		assert.ErrorIs(t, err, errStoreDown)
	})
}
