package token

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/jxskiss/base62"
)

// Signer produces and checks detached signatures over raw payloads.
// Verify must treat any failure as a mismatch and return false.
type Signer interface {
	Sign(payload []byte) (string, error)
	Verify(payload []byte, signatureHex string) bool
}

// signatureBoundary separates the JSON payload from the hex signature.
// The signature is hex, so searching from the right is unambiguous even if
// a payload field contains "&&".
const signatureBoundary = "&&"

const nonceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	defaultNonceMin = 10
	defaultNonceMax = 20
)

type payload struct {
	UserKey    string `json:"uk"`
	SessionKey string `json:"sk"`
	Nonce      string `json:"n"`
}

// Codec turns (userKey, sessionKey) pairs into signed opaque token strings
// and back. Safe for concurrent use.
type Codec struct {
	signer   Signer
	nonceMin int
	nonceMax int
}

// Option is a functional option for configuring the Codec
type Option func(*Codec)

// WithNonceLength sets the inclusive range the random nonce length is drawn from
func WithNonceLength(minLen, maxLen int) Option {
	return func(c *Codec) {
		c.nonceMin = minLen
		c.nonceMax = maxLen
	}
}

// New creates a Codec backed by the given signer.
func New(s Signer, opts ...Option) (*Codec, error) {
	if s == nil {
		return nil, ErrNilSigner
	}

	c := &Codec{
		signer:   s,
		nonceMin: defaultNonceMin,
		nonceMax: defaultNonceMax,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.nonceMin < 1 || c.nonceMax < c.nonceMin {
		return nil, ErrInvalidNonceRange
	}

	return c, nil
}

// Encode builds a signed token for the given keys. A fresh random nonce is
// mixed in, so two calls with identical arguments produce distinct tokens.
func (c *Codec) Encode(userKey, sessionKey string) (string, error) {
	if userKey == "" || sessionKey == "" {
		return "", ErrEmptyField
	}

	nonce, err := c.nonce()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(payload{UserKey: userKey, SessionKey: sessionKey, Nonce: nonce})
	if err != nil {
		return "", err
	}

	sig, err := c.signer.Sign(data)
	if err != nil {
		return "", err
	}

	return base62.EncodeToString([]byte(string(data) + signatureBoundary + sig)), nil
}

// Decode verifies a token and returns the (userKey, sessionKey) pair it
// carries. All failure modes return ErrInvalidToken.
func (c *Codec) Decode(tok string) (userKey, sessionKey string, err error) {
	raw, err := base62.DecodeString(tok)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	plain := string(raw)
	i := strings.LastIndex(plain, signatureBoundary)
	if i < 0 {
		return "", "", ErrInvalidToken
	}

	data, sig := plain[:i], plain[i+len(signatureBoundary):]
	if !c.signer.Verify([]byte(data), sig) {
		return "", "", ErrInvalidToken
	}

	var p payload
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return "", "", ErrInvalidToken
	}

	if p.UserKey == "" || p.SessionKey == "" {
		return "", "", ErrInvalidToken
	}

	return p.UserKey, p.SessionKey, nil
}

// nonce returns a random alphanumeric string with length drawn from the
// configured range.
func (c *Codec) nonce() (string, error) {
	length := c.nonceMin
	if c.nonceMax > c.nonceMin {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(c.nonceMax-c.nonceMin+1)))
		if err != nil {
			return "", err
		}
		length += int(n.Int64())
	}

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(nonceAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(nonceAlphabet[idx.Int64()])
	}

	return b.String(), nil
}
