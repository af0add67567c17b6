// Package token implements symmetric signing and verification of the
// credential carried in the auth cookie.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the credential lifetime when none is configured.
const DefaultTTL = 8 * time.Hour

// ErrInvalid is returned by Verify for every failure mode: malformed token,
// wrong signature, wrong algorithm, or expired. Callers branch on it; there
// is no partial trust.
var ErrInvalid = errors.New("invalid token")

// Claims is the decoded credential. Subject holds the user id.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (c *Claims) UserID() string { return c.Subject }

// Codec signs and verifies credentials with a process-wide HS256 secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// New returns a Codec. A non-positive ttl falls back to DefaultTTL.
func New(secret string, ttl time.Duration) *Codec {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed credential for the given identity, valid from now
// until now plus the configured TTL.
func (c *Codec) Issue(userID, email, role string) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify decodes raw and checks signature and expiry in one operation.
// On success the decoded Claims are returned; any failure yields ErrInvalid.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}

// TTL reports the configured credential lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }
