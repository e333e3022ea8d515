// Package identity issues and verifies the tokens that select which owner's
// history and preferences a request reads and writes.
package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer   = "credgen"
	audience = "credgen-api"

	// Anonymous is the owner key used when a caller presents no token.
	Anonymous = "anonymous"
)

var ErrInvalidToken = errors.New("invalid or expired identity token")

// Claims carries the identity in the standard subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// Identity is the owner key the token grants.
func (c *Claims) Identity() string {
	return c.Subject
}

// Issuer signs and verifies identity tokens with one HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates an Issuer. A zero ttl produces tokens without expiry.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a signed token for identity.
func (i *Issuer) Issue(identity string) (string, error) {
	if identity == "" {
		return "", errors.New("identity must not be empty")
	}

	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  identity,
			Audience: jwt.ClaimStrings{audience},
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if i.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify parses and validates a token, returning the identity it carries.
func (i *Issuer) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience), jwt.WithTimeFunc(i.now))
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Identity() == "" {
		return "", ErrInvalidToken
	}

	return claims.Identity(), nil
}
