package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// ProviderIdentity represents the identity resolved from the OAuth provider
// after a successful callback. It is transient: fetched per login, never
// persisted as-is.
type ProviderIdentity struct {
	Login        string // provider account name (becomes the local username)
	PrimaryEmail string // the email flagged primary on the provider account
	ProfileID    int64  // provider's own user id; informational, not a match key
	Name         string
	AvatarURL    string
}

// SessionClaims is what a session token encodes. Tokens are immutable once
// issued and verified, never mutated.
type SessionClaims struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the claims are past their expiry at the given instant.
func (c SessionClaims) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
