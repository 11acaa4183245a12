package session

import "errors"

var (
	// ErrSessionNotFound indicates no session is stored under the given keys
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrInvalidSession indicates a nil session or one with empty keys
	ErrInvalidSession = errors.New("session.invalid")

	// ErrNotAuthenticated indicates an operation that requires a
	// context-propagated session was called without one
	ErrNotAuthenticated = errors.New("session.not_authenticated")

	// ErrNoStore indicates the manager was constructed without a store
	ErrNoStore = errors.New("session.no_store")

	// ErrNoCodec indicates the manager was constructed without a token codec
	ErrNoCodec = errors.New("session.no_codec")

	// ErrConfigParse indicates environment variables could not be parsed into Config
	ErrConfigParse = errors.New("session.config_parse_failed")
)
