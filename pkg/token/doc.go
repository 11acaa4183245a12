// Package token encodes and decodes signed opaque session tokens.
//
// A token binds a user key and a session key together with a random nonce
// and an asymmetric signature, then wraps everything in base62 so the result
// is a compact, alphanumeric-only string safe for headers, query parameters
// and cookies. The nonce makes two tokens for the same (userKey, sessionKey)
// pair differ, so reissued credentials cannot be correlated; it is discarded
// after verification and never stored.
//
// Token layout before base62:
//
//	{"uk":"<userKey>","sk":"<sessionKey>","n":"<nonce>"}&&<signatureHex>
//
// The JSON payload makes field boundaries unambiguous regardless of the
// characters inside userKey or sessionKey, and the boundary before the hex
// signature is found from the right, so "&&" inside a JSON string cannot
// confuse decoding.
//
// # Usage
//
//	s, _ := signer.New(privKey, pubKey)
//	codec, _ := token.New(s)
//
//	tok, err := codec.Encode("app_user_42", sessionKey)
//	...
//	userKey, sessionKey, err := codec.Decode(tok)
//	if err != nil {
//	    // token.ErrInvalidToken, whatever the underlying reason
//	}
//
// Decode collapses every failure (bad encoding, bad signature, malformed
// payload) into ErrInvalidToken so callers cannot build a decoding oracle.
package token
