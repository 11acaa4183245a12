package session

import (
	"net/http"
	"strings"
)

// TokenSource extracts a candidate token string from one place in an
// inbound request. Sources report only presence; whether the token actually
// verifies is the Manager's business.
type TokenSource interface {
	Token(r *http.Request) (string, bool)
}

// HeaderSource reads the token from an HTTP header, optionally stripping a
// value prefix such as "Bearer ".
type HeaderSource struct {
	name   string
	prefix string
}

// NewHeaderSource creates a header token source
func NewHeaderSource(name string, opts ...HeaderOption) *HeaderSource {
	s := &HeaderSource{name: name}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HeaderOption is a functional option for HeaderSource
type HeaderOption func(*HeaderSource)

// WithHeaderPrefix strips the given prefix from the header value
func WithHeaderPrefix(prefix string) HeaderOption {
	return func(s *HeaderSource) {
		s.prefix = prefix
	}
}

// Token extracts the token from the configured header
func (s *HeaderSource) Token(r *http.Request) (string, bool) {
	value := r.Header.Get(s.name)
	if value == "" {
		return "", false
	}

	if s.prefix != "" {
		value = strings.TrimPrefix(value, s.prefix)
	}

	return value, true
}

// QuerySource reads the token from a URL query parameter
type QuerySource struct {
	name string
}

// NewQuerySource creates a query-parameter token source
func NewQuerySource(name string) *QuerySource {
	return &QuerySource{name: name}
}

// Token extracts the token from the configured query parameter
func (s *QuerySource) Token(r *http.Request) (string, bool) {
	value := r.URL.Query().Get(s.name)
	return value, value != ""
}

// CookieSource reads the token from a cookie. The token is self-signed and
// opaque, so the cookie needs no additional encryption layer.
type CookieSource struct {
	name string
}

// NewCookieSource creates a cookie token source
func NewCookieSource(name string) *CookieSource {
	return &CookieSource{name: name}
}

// Token extracts the token from the configured cookie
func (s *CookieSource) Token(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
