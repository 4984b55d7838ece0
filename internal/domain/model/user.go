//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

const maxUsernameLen = 255

// User is the locally persisted account record. Email is the stable upsert
// key: the provider's own profile id is deliberately not used for matching,
// so a renamed provider account maps to the same local user only while the
// email is unchanged.
type User struct {
	ID         int64     `json:"id"          db:"id"`
	DocumentID string    `json:"document_id" db:"document_id"`
	Username   string    `json:"username"    db:"username"`
	Email      string    `json:"email"       db:"email"`
	Provider   string    `json:"provider"    db:"provider"`
	Confirmed  bool      `json:"confirmed"   db:"confirmed"`
	Blocked    bool      `json:"blocked"     db:"blocked"`
	RoleID     int64     `json:"role_id"     db:"role_id"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"  db:"updated_at"`
}

// UpsertUserParams carries the fields written on every successful callback.
// Creates set confirmed=true, blocked=false; updates refresh username,
// provider, and role in place.
type UpsertUserParams struct {
	Username string
	Email    string
	Provider string
	RoleID   int64
}

// Validate validates UpsertUserParams.
func (p *UpsertUserParams) Validate() error {
	username := strings.TrimSpace(p.Username)
	if username == "" {
		return errors.New("username is required and cannot be empty")
	}
	if len(username) > maxUsernameLen {
		return errors.New("username cannot exceed 255 characters")
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return errors.New("email must be a valid address")
	}
	if strings.TrimSpace(p.Provider) == "" {
		return errors.New("provider is required")
	}
	if p.RoleID <= 0 {
		return errors.New("role_id must be > 0")
	}
	return nil
}
