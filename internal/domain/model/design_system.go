//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const maxRepoNameLen = 100

// DesignSystem ties a set of token collections to a connected GitHub repository.
type DesignSystem struct {
	ID         int64     `json:"id"          db:"id"`
	DocumentID string    `json:"document_id" db:"document_id"`
	Name       string    `json:"name"        db:"name"`
	Slug       string    `json:"slug"        db:"slug"`
	RepoName   string    `json:"repo_name"   db:"repo_name"`
	RepoOwner  string    `json:"repo_owner"  db:"repo_owner"`
	Branch     string    `json:"branch"      db:"branch"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"  db:"updated_at"`
}

// ConnectDesignSystemRequest represents parameters to connect a repository as
// a design system. Connecting is find-or-create keyed by (repo_owner, repo_name).
type ConnectDesignSystemRequest struct {
	RepoName  string `json:"repoName"`
	RepoOwner string `json:"repoOwner"`
	Branch    string `json:"branch,omitempty"`
}

// Validate validates ConnectDesignSystemRequest and applies defaults.
func (r *ConnectDesignSystemRequest) Validate() error {
	r.RepoName = strings.TrimSpace(r.RepoName)
	r.RepoOwner = strings.TrimSpace(r.RepoOwner)
	if r.RepoName == "" || r.RepoOwner == "" {
		return errors.New("repoName and repoOwner are required")
	}
	if len(r.RepoName) > maxRepoNameLen || len(r.RepoOwner) > maxRepoNameLen {
		return errors.New("repo details cannot exceed 100 characters")
	}
	if r.Branch == "" {
		r.Branch = "main"
	}
	return nil
}

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the value and collapses runs of non-alphanumerics into
// single dashes. Empty results fall back to "group" so slugs stay non-empty.
func Slugify(value string) string {
	s := slugUnsafe.ReplaceAllString(strings.ToLower(value), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "group"
	}
	return s
}
