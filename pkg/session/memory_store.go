package session

import (
	"context"
	"sync"
)

// MemoryStore is the reference Store: a mutex-guarded two-level map keyed by
// userKey then sessionKey. Suitable for tests and single-process deployments.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]map[string]*Session
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]map[string]*Session),
	}
}

// Get retrieves a copy of the session stored under (userKey, sessionKey)
func (m *MemoryStore) Get(ctx context.Context, userKey, sessionKey string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.users[userKey][sessionKey]
	if !ok {
		return nil, ErrSessionNotFound
	}

	cp := *sess
	return &cp, nil
}

// Put upserts the session, creating the user's bookkeeping entry as needed
func (m *MemoryStore) Put(ctx context.Context, sess *Session) error {
	if sess == nil || sess.UserKey == "" || sess.SessionKey == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	userSessions, ok := m.users[sess.UserKey]
	if !ok {
		userSessions = make(map[string]*Session)
		m.users[sess.UserKey] = userSessions
	}

	cp := *sess
	userSessions[sess.SessionKey] = &cp
	return nil
}

// Delete removes one session, keeping the user's (possibly empty)
// bookkeeping entry; the sweep is responsible for pruning it.
func (m *MemoryStore) Delete(ctx context.Context, userKey, sessionKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users[userKey], sessionKey)
	return nil
}

// DeleteMany removes a set of the user's sessions
func (m *MemoryStore) DeleteMany(ctx context.Context, userKey string, sessionKeys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	userSessions := m.users[userKey]
	for _, sessionKey := range sessionKeys {
		delete(userSessions, sessionKey)
	}
	return nil
}

// DeleteUser removes the user's sessions and the bookkeeping entry itself
func (m *MemoryStore) DeleteUser(ctx context.Context, userKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, userKey)
	return nil
}

// UserSessions returns copies of all sessions stored for the user key
func (m *MemoryStore) UserSessions(ctx context.Context, userKey string) ([]*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	userSessions := m.users[userKey]
	out := make([]*Session, 0, len(userSessions))
	for _, sess := range userSessions {
		cp := *sess
		out = append(out, &cp)
	}
	return out, nil
}

// UserKeys returns every user key present in the store
func (m *MemoryStore) UserKeys(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.users))
	for userKey := range m.users {
		out = append(out, userKey)
	}
	return out, nil
}

// Clear wipes the store
func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[string]map[string]*Session)
	return nil
}
