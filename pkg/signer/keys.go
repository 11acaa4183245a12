package signer

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
)

// GenerateKeyPair creates a fresh RSA key pair and returns it as
// base64-encoded DER (PKCS#8 private, PKIX public), the format New expects.
// Intended for provisioning and tests.
func GenerateKeyPair(bits int) (privateKeyBase64, publicKeyBase64 string, err error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return "", "", err
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", "", err
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(privDER),
		base64.StdEncoding.EncodeToString(pubDER), nil
}
