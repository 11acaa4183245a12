package signer

import "errors"

var (
	// ErrMissingPublicKey indicates no public key material was provided
	ErrMissingPublicKey = errors.New("signer.missing_public_key")

	// ErrInvalidPrivateKey indicates the private key could not be decoded or parsed
	ErrInvalidPrivateKey = errors.New("signer.invalid_private_key")

	// ErrInvalidPublicKey indicates the public key could not be decoded or parsed
	ErrInvalidPublicKey = errors.New("signer.invalid_public_key")

	// ErrVerifyOnly indicates Sign was called on a verify-only instance
	ErrVerifyOnly = errors.New("signer.verify_only")

	// ErrSigningFailed indicates the RSA signing operation failed
	ErrSigningFailed = errors.New("signer.signing_failed")
)
