package session

import (
	"context"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// TokenCodec turns key pairs into signed opaque tokens and back.
// Decode must collapse every failure mode into a single error.
type TokenCodec interface {
	Encode(userKey, sessionKey string) (string, error)
	Decode(token string) (userKey, sessionKey string, err error)
}

// Manager orchestrates the session lifecycle: login, verification, logout,
// forced eviction and expiry sweeping. It is immutable after construction
// and safe for concurrent use.
//
// Sequences like read-then-conditionally-remove are not wrapped in a
// distributed lock; concurrent requests racing on one user key resolve as
// last-write-wins, which the store layout tolerates without orphaned
// entries.
type Manager struct {
	codec  TokenCodec
	store  Store
	config Config
	log    *slog.Logger
}

// New creates a Manager. A nil codec or store is a configuration error and
// fails here rather than on first use.
func New(codec TokenCodec, store Store, opts ...Option) (*Manager, error) {
	if codec == nil {
		return nil, ErrNoCodec
	}
	if store == nil {
		return nil, ErrNoStore
	}

	m := &Manager{
		codec:  codec,
		store:  store,
		config: DefaultConfig(),
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Config returns the manager's effective configuration.
func (m *Manager) Config() Config {
	return m.config
}

// UserKey derives the store key that groups every session of one subject.
func (m *Manager) UserKey(userType, id string) string {
	if userType == "" {
		userType = m.config.DefaultUserType
	}
	return m.config.KeyPrefix + "_" + userType + "_" + id
}

// Login creates, signs and persists a new session for the subject id,
// applying the concurrency policies from Config: with concurrent login
// disabled every existing session of this user is evicted first; with
// device rejection enabled only sessions of the same device type are.
// Expired sessions of the user are swept opportunistically on the way.
//
// The returned session should be attached to the request context with
// WithSession so Logout and the handlers downstream can see it.
func (m *Manager) Login(ctx context.Context, id string, opts ...LoginOption) (*Session, error) {
	p := loginParams{
		timeout:    m.config.DefaultTimeout,
		userType:   m.config.DefaultUserType,
		deviceType: m.config.DefaultDeviceType,
		loginTime:  time.Now(),
	}
	for _, opt := range opts {
		opt(&p)
	}

	userKey := m.UserKey(p.userType, id)
	sessionKey := newSessionKey()

	tok, err := m.codec.Encode(userKey, sessionKey)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:           id,
		UserType:     p.userType,
		UserKey:      userKey,
		SessionKey:   sessionKey,
		Token:        tok,
		Timeout:      p.timeout,
		LoginAt:      p.loginTime,
		LastAccessAt: time.Now(),
		DeviceType:   p.deviceType,
		DeviceName:   p.deviceName,
	}

	if !m.config.ConcurrentLogin {
		// Single active session per user, across all devices
		if err := m.store.DeleteUser(ctx, userKey); err != nil {
			return nil, err
		}
	} else if m.config.DeviceReject {
		if err := m.evictSameDevice(ctx, userKey, sess.DeviceType); err != nil {
			return nil, err
		}
	}

	// Piggyback sweep on login traffic; best effort
	if err := m.sweepUser(ctx, userKey); err != nil {
		m.log.WarnContext(ctx, "session sweep during login failed",
			slog.String("user_key", userKey), slog.Any("error", err))
	}

	if err := m.store.Put(ctx, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

// Verify decodes and validates a client token. It returns the live session
// and true on success; every failure (tampered token, unknown session,
// expiry, store trouble) collapses to (nil, false) so callers can not
// distinguish the cause. A session found expired is deleted, not skipped.
// With RefreshOnAccess enabled, a successful verify resets the idle clock.
func (m *Manager) Verify(ctx context.Context, token string) (*Session, bool) {
	userKey, sessionKey, err := m.codec.Decode(token)
	if err != nil {
		return nil, false
	}

	sess, err := m.store.Get(ctx, userKey, sessionKey)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			m.log.DebugContext(ctx, "session lookup failed during verify",
				slog.String("user_key", userKey), slog.Any("error", err))
		}
		return nil, false
	}

	now := time.Now()
	if sess.ExpiredAt(now) {
		if err := m.store.Delete(ctx, userKey, sessionKey); err != nil {
			m.log.DebugContext(ctx, "expired session removal failed",
				slog.String("user_key", userKey), slog.Any("error", err))
		}
		return nil, false
	}

	if m.config.RefreshOnAccess {
		sess.LastAccessAt = now
		if err := m.store.Put(ctx, sess); err != nil {
			m.log.DebugContext(ctx, "session refresh failed during verify",
				slog.String("user_key", userKey), slog.Any("error", err))
			return nil, false
		}
	}

	return sess, true
}

// Logout removes the session propagated in ctx. Callers must be
// authenticated; logging out without a session is a usage error.
func (m *Manager) Logout(ctx context.Context) error {
	sess, ok := FromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}
	return m.store.Delete(ctx, sess.UserKey, sess.SessionKey)
}

// KickOutUser force-evicts every session of the user key.
func (m *Manager) KickOutUser(ctx context.Context, userKey string) error {
	return m.store.DeleteUser(ctx, userKey)
}

// KickOutSession force-evicts one login instance.
func (m *Manager) KickOutSession(ctx context.Context, userKey, sessionKey string) error {
	return m.store.Delete(ctx, userKey, sessionKey)
}

// ClearAll wipes every session of every user.
func (m *Manager) ClearAll(ctx context.Context) error {
	return m.store.Clear(ctx)
}

// UserSessions returns the user's live sessions, sweeping expired ones first.
func (m *Manager) UserSessions(ctx context.Context, userKey string) ([]*Session, error) {
	if err := m.sweepUser(ctx, userKey); err != nil {
		return nil, err
	}
	return m.store.UserSessions(ctx, userKey)
}

// ActiveUserKeys returns every user key with at least one live session.
// A global sweep runs first so users whose sessions have all expired are
// never reported.
func (m *Manager) ActiveUserKeys(ctx context.Context) ([]string, error) {
	if err := m.Sweep(ctx); err != nil {
		return nil, err
	}
	return m.store.UserKeys(ctx)
}

// SweepUser removes the user's expired sessions. When every session was
// expired, the now-empty user key bookkeeping entry is removed too, so the
// store never retains keys with zero sessions.
func (m *Manager) SweepUser(ctx context.Context, userKey string) error {
	return m.sweepUser(ctx, userKey)
}

// Sweep runs the per-user sweep for every known user key. A failing user
// does not abort the rest of the sweep.
func (m *Manager) Sweep(ctx context.Context) error {
	userKeys, err := m.store.UserKeys(ctx)
	if err != nil {
		return err
	}

	for _, userKey := range userKeys {
		if err := m.sweepUser(ctx, userKey); err != nil {
			m.log.WarnContext(ctx, "user sweep failed",
				slog.String("user_key", userKey), slog.Any("error", err))
		}
	}

	return nil
}

func (m *Manager) sweepUser(ctx context.Context, userKey string) error {
	sessions, err := m.store.UserSessions(ctx, userKey)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		// Empty bookkeeping entry left behind by individual removals
		return m.store.DeleteUser(ctx, userKey)
	}

	now := time.Now()
	expired := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		if sess.ExpiredAt(now) {
			expired = append(expired, sess.SessionKey)
		}
	}

	if len(expired) == 0 {
		return nil
	}

	if len(expired) == len(sessions) {
		return m.store.DeleteUser(ctx, userKey)
	}

	return m.store.DeleteMany(ctx, userKey, expired)
}

func (m *Manager) evictSameDevice(ctx context.Context, userKey, deviceType string) error {
	sessions, err := m.store.UserSessions(ctx, userKey)
	if err != nil {
		return err
	}

	var sameDevice []string
	for _, sess := range sessions {
		if sess.DeviceType == deviceType {
			sameDevice = append(sameDevice, sess.SessionKey)
		}
	}

	if len(sameDevice) == 0 {
		return nil
	}

	return m.store.DeleteMany(ctx, userKey, sameDevice)
}

// newSessionKey returns a 32-char hex id, globally unique per login.
func newSessionKey() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
