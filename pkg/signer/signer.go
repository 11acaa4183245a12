package signer

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"errors"
)

// RSA signs and verifies byte payloads with an RSA key pair.
// Instances are immutable after construction and safe for concurrent use.
type RSA struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

// New creates a signer from base64-encoded DER key material.
// The private key may be PKCS#8 or PKCS#1, the public key PKIX.
// Malformed or missing keys fail here, not on first use.
func New(privateKeyBase64, publicKeyBase64 string) (*RSA, error) {
	priv, err := parsePrivateKey(privateKeyBase64)
	if err != nil {
		return nil, err
	}

	pub, err := parsePublicKey(publicKeyBase64)
	if err != nil {
		return nil, err
	}

	return &RSA{privateKey: priv, publicKey: pub}, nil
}

// NewVerifier creates a verify-only signer holding just the public key.
// Sign returns ErrVerifyOnly on instances created this way.
func NewVerifier(publicKeyBase64 string) (*RSA, error) {
	pub, err := parsePublicKey(publicKeyBase64)
	if err != nil {
		return nil, err
	}

	return &RSA{publicKey: pub}, nil
}

// FromKeys creates a signer from an already-parsed private key.
func FromKeys(privateKey *rsa.PrivateKey) *RSA {
	return &RSA{privateKey: privateKey, publicKey: &privateKey.PublicKey}
}

// Sign computes the SHA256withRSA signature of payload and returns it hex-encoded.
func (s *RSA) Sign(payload []byte) (string, error) {
	if s.privateKey == nil {
		return "", ErrVerifyOnly
	}

	digest := sha256.Sum256(payload)
	sig, err := rsa.SignPKCS1v15(rand.Reader, s.privateKey, crypto.SHA256, digest[:])
	if err != nil {
		return "", errors.Join(ErrSigningFailed, err)
	}

	return hex.EncodeToString(sig), nil
}

// Verify reports whether signatureHex is a valid signature of payload.
// Malformed hex or a signature mismatch returns false; Verify never errors.
func (s *RSA) Verify(payload []byte, signatureHex string) bool {
	sig, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false
	}

	digest := sha256.Sum256(payload)
	return rsa.VerifyPKCS1v15(s.publicKey, crypto.SHA256, digest[:], sig) == nil
}

func parsePrivateKey(encoded string) (*rsa.PrivateKey, error) {
	der, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrInvalidPrivateKey, err)
	}

	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, ErrInvalidPrivateKey
		}
		return rsaKey, nil
	}

	key, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, errors.Join(ErrInvalidPrivateKey, err)
	}

	return key, nil
}

func parsePublicKey(encoded string) (*rsa.PublicKey, error) {
	if encoded == "" {
		return nil, ErrMissingPublicKey
	}

	der, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrInvalidPublicKey, err)
	}

	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, errors.Join(ErrInvalidPublicKey, err)
	}

	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, ErrInvalidPublicKey
	}

	return rsaKey, nil
}
