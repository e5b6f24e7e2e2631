package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity assertion embedded in a bearer token. The codec
// never consults the store: claims are trusted as of issuance and may go
// stale until re-issuance.
type Claims struct {
	ID     string
	Email  string
	Role   string
	Status string
}

// ErrInvalidToken covers every verification failure: expired, malformed,
// or signed with the wrong secret.
var ErrInvalidToken = errors.New("invalid or expired token")

const DefaultTTL = time.Hour

type tokenClaims struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed, expiring identity assertions.
type Codec struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func (c Codec) Issue(claims Claims) (string, error) {
	if len(c.Secret) == 0 {
		return "", errors.New("token secret is required")
	}
	now := c.now()
	payload := tokenClaims{
		Email:  claims.Email,
		Role:   claims.Role,
		Status: claims.Status,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl())),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(c.Secret)
}

func (c Codec) Verify(raw string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.Secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	payload, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	return Claims{
		ID:     payload.Subject,
		Email:  payload.Email,
		Role:   payload.Role,
		Status: payload.Status,
	}, nil
}

func (c Codec) ttl() time.Duration {
	if c.TTL <= 0 {
		return DefaultTTL
	}
	return c.TTL
}

func (c Codec) now() time.Time {
	if c.Now == nil {
		return time.Now().UTC()
	}
	return c.Now().UTC()
}
