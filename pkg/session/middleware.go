package session

import "net/http"

// Middleware authenticates inbound requests. Sources are tried in priority
// order and the first token that verifies wins; its session is attached to
// the request context for downstream handlers. Requests with no verifying
// token proceed unauthenticated: rejecting them is the caller's policy, not
// this package's. The session rides the request context, so it is dropped
// when the request ends, on success, failure and cancellation alike.
//
// With no sources given, the header, query parameter and cookie named by
// Config.TokenName are tried in that order.
func (m *Manager) Middleware(sources ...TokenSource) func(http.Handler) http.Handler {
	if len(sources) == 0 {
		sources = []TokenSource{
			NewHeaderSource(m.config.TokenName),
			NewQuerySource(m.config.TokenName),
			NewCookieSource(m.config.TokenName),
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, source := range sources {
				tok, ok := source.Token(r)
				if !ok {
					continue
				}

				sess, ok := m.Verify(r.Context(), tok)
				if !ok {
					continue
				}

				r = r.WithContext(WithSession(r.Context(), sess))
				break
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth rejects requests whose context carries no session.
// Compose it after Middleware.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
