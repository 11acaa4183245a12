package token

import "errors"

var (
	// ErrInvalidToken is the uniform decode failure; the cause is deliberately not exposed
	ErrInvalidToken = errors.New("token.invalid")

	// ErrEmptyField indicates Encode was called with an empty userKey or sessionKey
	ErrEmptyField = errors.New("token.empty_field")

	// ErrInvalidNonceRange indicates a misconfigured nonce length range
	ErrInvalidNonceRange = errors.New("token.invalid_nonce_range")

	// ErrNilSigner indicates the codec was constructed without a signer
	ErrNilSigner = errors.New("token.nil_signer")
)
