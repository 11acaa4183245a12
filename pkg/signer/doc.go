// Package signer provides asymmetric signing and verification of raw byte
// payloads using SHA256 with RSA (PKCS#1 v1.5).
//
// The private key signs, the public key verifies, so verification can be
// distributed to many stateless instances that hold only the public key.
// Signatures travel as lowercase hex strings.
//
// # Usage
//
//	import "github.com/dmitrymomot/authtoken/pkg/signer"
//
//	s, err := signer.New(privateKeyBase64, publicKeyBase64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := s.Sign([]byte("payload"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if !s.Verify([]byte("payload"), sig) {
//	    // tampered or wrong key
//	}
//
// Verify is advisory: any failure (malformed hex, wrong key, tampered
// payload) returns false and never an error. Key material problems are
// reported at construction time instead of on first use.
package signer
