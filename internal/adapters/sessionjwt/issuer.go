package sessionjwt

// Package sessionjwt implements ports.SessionIssuer with HMAC-signed JWTs.
// Tokens are stateless: the signing secret is the only server-side state.

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/dstokens/tokens-api/internal/domain/auth"
)

// ErrInvalidToken is returned for tokens that fail signature, shape, or
// expiry checks.
var ErrInvalidToken = errors.New("invalid session token")

// Issuer mints and verifies session tokens with a fixed lifetime.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Config holds configuration for the Issuer.
type Config struct {
	Secret string
	TTL    time.Duration
	Now    func() time.Time // optional, defaults to time.Now
}

// NewIssuer creates a new Issuer.
func NewIssuer(cfg Config) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("signing secret is required")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("token TTL must be positive")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Issuer{secret: []byte(cfg.Secret), ttl: cfg.TTL, now: now}, nil
}

// Issue mints a signed token for the given user id.
func (i *Issuer) Issue(userID int64) (string, error) {
	if userID <= 0 {
		return "", errors.New("user id must be > 0")
	}

	issuedAt := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims.
func (i *Issuer) Verify(token string) (domainauth.SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !parsed.Valid {
		return domainauth.SessionClaims{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return domainauth.SessionClaims{}, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return domainauth.SessionClaims{}, ErrInvalidToken
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return domainauth.SessionClaims{}, ErrInvalidToken
	}

	sc := domainauth.SessionClaims{
		UserID:    userID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if sc.Expired(i.now()) {
		return domainauth.SessionClaims{}, ErrInvalidToken
	}
	return sc, nil
}
