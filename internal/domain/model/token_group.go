//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// TokenGroup is a named grouping of tokens inside a collection. (name,
// collection_id) is unique; the legacy group_path migration relies on that to
// find-or-create groups idempotently.
type TokenGroup struct {
	ID           int64     `json:"id"            db:"id"`
	DocumentID   string    `json:"document_id"   db:"document_id"`
	Name         string    `json:"name"          db:"name"`
	Slug         string    `json:"slug"          db:"slug"`
	CollectionID int64     `json:"collection_id" db:"collection_id"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"    db:"updated_at"`
}

// TokenGroupExpanded is a group with optionally populated tokens.
type TokenGroupExpanded struct {
	TokenGroup
	Tokens []*Token `json:"tokens,omitempty"`
}

// CreateTokenGroupRequest represents parameters to create a TokenGroup.
type CreateTokenGroupRequest struct {
	Name         string `json:"name"`
	Slug         string `json:"slug,omitempty"`
	CollectionID int64  `json:"collection_id"`
}

// UpdateTokenGroupRequest represents parameters to update a TokenGroup.
type UpdateTokenGroupRequest struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// TokenGroupListOptions controls paging and filtering for listing groups.
type TokenGroupListOptions struct {
	Limit        int
	Offset       int
	CollectionID *int64
	Populate     []string // allowed: "tokens"
}

// Validate validates CreateTokenGroupRequest and derives the slug when absent.
func (r *CreateTokenGroupRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if r.CollectionID <= 0 {
		return errors.New("collection_id must be > 0")
	}
	if r.Slug == "" {
		r.Slug = Slugify(r.Name)
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateTokenGroupRequest.
func (r *UpdateTokenGroupRequest) HasUpdates() bool {
	return r.Name != nil || r.Slug != nil
}

// Validate validates UpdateTokenGroupRequest.
func (r *UpdateTokenGroupRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	return nil
}
