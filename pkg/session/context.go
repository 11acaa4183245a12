package session

import "context"

type sessionContextKey struct{}

// WithSession returns a context carrying the session. Context values are
// copied at goroutine hand-off, so the session follows asynchronous
// continuations of the same request without being shared mutably across
// unrelated requests, and it vanishes when the request context does.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// FromContext retrieves the session propagated for the current request
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(*Session)
	return sess, ok
}

// MustFromContext retrieves the propagated session or panics
func MustFromContext(ctx context.Context) *Session {
	sess, ok := FromContext(ctx)
	if !ok {
		panic("session: not found in context")
	}
	return sess
}

// UserIDFromContext returns the business id of the authenticated subject
func UserIDFromContext(ctx context.Context) (string, bool) {
	sess, ok := FromContext(ctx)
	if !ok {
		return "", false
	}
	return sess.ID, true
}
