//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxTokenNameLen = 255

// TokenType enumerates the supported design-token value kinds.
type TokenType string

const (
	TokenTypeColor      TokenType = "color"
	TokenTypeTypography TokenType = "typography"
	TokenTypeDimension  TokenType = "dimension"
	TokenTypeOther      TokenType = "other"
)

// Valid reports whether the token type is supported.
func (t TokenType) Valid() bool {
	switch t {
	case TokenTypeColor, TokenTypeTypography, TokenTypeDimension, TokenTypeOther:
		return true
	default:
		return false
	}
}

// normalizeTokenType trims and lowercases the input, defaulting to other when empty.
func normalizeTokenType(v TokenType) TokenType {
	normalized := TokenType(strings.ToLower(strings.TrimSpace(string(v))))
	if normalized == "" {
		return TokenTypeOther
	}
	return normalized
}

// Token is a single design-token value inside a collection, optionally
// attached to a group. GroupPath is the legacy pre-group field; the startup
// migration moves tokens with a group_path and no group into real groups.
type Token struct {
	ID           int64     `json:"id"                   db:"id"`
	DocumentID   string    `json:"document_id"          db:"document_id"`
	Name         string    `json:"name"                 db:"name"`
	Value        string    `json:"value"                db:"value"`
	Type         TokenType `json:"type"                 db:"type"`
	Description  string    `json:"description"          db:"description"`
	GroupPath    *string   `json:"group_path,omitempty" db:"group_path"`
	CollectionID int64     `json:"collection_id"        db:"collection_id"`
	GroupID      *int64    `json:"group_id,omitempty"   db:"group_id"`
	CreatedAt    time.Time `json:"created_at"           db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"           db:"updated_at"`
}

// CreateTokenRequest represents parameters to create a Token.
type CreateTokenRequest struct {
	Name         string    `json:"name"`
	Value        string    `json:"value"`
	Type         TokenType `json:"type,omitempty"`
	Description  string    `json:"description,omitempty"`
	CollectionID int64     `json:"collection_id"`
	GroupID      *int64    `json:"group_id,omitempty"`
}

// UpdateTokenRequest represents parameters to update a Token.
type UpdateTokenRequest struct {
	Name        *string    `json:"name,omitempty"`
	Value       *string    `json:"value,omitempty"`
	Type        *TokenType `json:"type,omitempty"`
	Description *string    `json:"description,omitempty"`
	GroupID     *int64     `json:"group_id,omitempty"`
}

// TokenListOptions controls paging and filtering for listing tokens.
// CollectionID and GroupID are parent-id equality filters.
type TokenListOptions struct {
	Limit        int
	Offset       int
	CollectionID *int64
	GroupID      *int64
}

// Validate validates CreateTokenRequest.
func (r *CreateTokenRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxTokenNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Value) == "" {
		return errors.New("value is required")
	}
	if r.CollectionID <= 0 {
		return errors.New("collection_id must be > 0")
	}
	r.Type = normalizeTokenType(r.Type)
	if !r.Type.Valid() {
		return errors.New("invalid type")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateTokenRequest.
func (r *UpdateTokenRequest) HasUpdates() bool {
	return r.Name != nil || r.Value != nil || r.Type != nil || r.Description != nil || r.GroupID != nil
}

// Validate validates UpdateTokenRequest.
func (r *UpdateTokenRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if r.Value != nil && strings.TrimSpace(*r.Value) == "" {
		return errors.New("value cannot be empty")
	}
	if r.Type != nil {
		normalized := normalizeTokenType(*r.Type)
		if !normalized.Valid() {
			return errors.New("invalid type")
		}
		*r.Type = normalized
	}
	return nil
}
