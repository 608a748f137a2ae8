// Package token issues and verifies the signed bearer tokens used by the
// login flow. Tokens are stateless: validity is computed from the token and
// the shared secret alone, nothing is stored server-side.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures. All of them surface to clients as a plain 401; the
// distinction exists for internal logging only.
var (
	ErrMalformed    = errors.New("token malformed")
	ErrBadSignature = errors.New("token signature invalid")
	ErrExpired      = errors.New("token expired")
)

const DefaultTTL = 600 * time.Second

// Issuer signs and verifies HS256 identity tokens. The signature covers both
// the identity and the expiry, so neither can be altered without invalidating
// the token.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token whose verified identity is username and which
// expires ttl after now.
func (i *Issuer) Issue(username string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses and validates a token and returns the identity it encodes.
// Failures are classified as ErrMalformed, ErrBadSignature or ErrExpired.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		return "", classify(err)
	}
	if !tkn.Valid {
		return "", ErrBadSignature
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return "", ErrMalformed
	}
	return username, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrBadSignature
	default:
		return ErrMalformed
	}
}
