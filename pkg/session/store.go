package session

import "context"

// Store is the persistence contract for sessions. Sessions are addressed by
// the composite (userKey, sessionKey) key; a userKey groups every concurrent
// login of one logical subject.
//
// Each call must be atomic per key with read-after-write consistency; no
// multi-key transactions are assumed, and the Manager's read-then-remove
// sequences are deliberately not wrapped in a distributed lock.
// Implementations must return copies, never references the caller could
// mutate behind the store's back.
type Store interface {
	// Get returns the session stored under (userKey, sessionKey),
	// or ErrSessionNotFound.
	Get(ctx context.Context, userKey, sessionKey string) (*Session, error)

	// Put upserts the session under (sess.UserKey, sess.SessionKey).
	Put(ctx context.Context, sess *Session) error

	// Delete removes one session. Removing an absent session is not an error.
	Delete(ctx context.Context, userKey, sessionKey string) error

	// DeleteMany removes a set of the user's sessions.
	DeleteMany(ctx context.Context, userKey string, sessionKeys []string) error

	// DeleteUser removes every session for the user key, including the
	// user's bookkeeping entry itself.
	DeleteUser(ctx context.Context, userKey string) error

	// UserSessions returns all sessions stored for the user key.
	UserSessions(ctx context.Context, userKey string) ([]*Session, error)

	// UserKeys returns every user key known to the store, including keys
	// whose sessions have all been individually removed but whose
	// bookkeeping entry still exists.
	UserKeys(ctx context.Context) ([]string, error)

	// Clear wipes the entire store.
	Clear(ctx context.Context) error
}
