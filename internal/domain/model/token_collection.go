//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxCollectionNameLen = 255

// TokenCollection groups tokens of one kind (color, typography, dimension)
// under a design system.
type TokenCollection struct {
	ID             int64     `json:"id"               db:"id"`
	DocumentID     string    `json:"document_id"      db:"document_id"`
	Name           string    `json:"name"             db:"name"`
	Key            string    `json:"key"              db:"key"`
	Description    string    `json:"description"      db:"description"`
	DesignSystemID int64     `json:"design_system_id" db:"design_system_id"`
	CreatedAt      time.Time `json:"created_at"       db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"       db:"updated_at"`
}

// TokenCollectionExpanded is a collection with optionally populated relations.
type TokenCollectionExpanded struct {
	TokenCollection
	Groups []*TokenGroup `json:"groups,omitempty"`
	Tokens []*Token      `json:"tokens,omitempty"`
}

// CreateTokenCollectionRequest represents parameters to create a TokenCollection.
type CreateTokenCollectionRequest struct {
	Name           string `json:"name"`
	Key            string `json:"key"`
	Description    string `json:"description,omitempty"`
	DesignSystemID int64  `json:"design_system_id"`
}

// UpdateTokenCollectionRequest represents parameters to update a TokenCollection.
type UpdateTokenCollectionRequest struct {
	Name        *string `json:"name,omitempty"`
	Key         *string `json:"key,omitempty"`
	Description *string `json:"description,omitempty"`
}

// TokenCollectionListOptions controls paging and filtering for listing collections.
// DesignSystemID is a parent-id equality filter; Populate names relations to expand.
type TokenCollectionListOptions struct {
	Limit          int
	Offset         int
	DesignSystemID *int64
	Populate       []string // allowed: "groups", "tokens"
}

// Validate validates CreateTokenCollectionRequest.
func (r *CreateTokenCollectionRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxCollectionNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Key) == "" {
		return errors.New("key is required")
	}
	if r.DesignSystemID <= 0 {
		return errors.New("design_system_id must be > 0")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateTokenCollectionRequest.
func (r *UpdateTokenCollectionRequest) HasUpdates() bool {
	return r.Name != nil || r.Key != nil || r.Description != nil
}

// Validate validates UpdateTokenCollectionRequest.
func (r *UpdateTokenCollectionRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if r.Key != nil && strings.TrimSpace(*r.Key) == "" {
		return errors.New("key cannot be empty")
	}
	return nil
}
