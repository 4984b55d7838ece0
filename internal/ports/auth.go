package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"
	"fmt"

	domainauth "github.com/dstokens/tokens-api/internal/domain/auth"
)

// GrantFlow covers the authorize-and-exchange half of the OAuth round trip:
// building the provider authorize URL and trading the consent code for a
// provisional access token.
type GrantFlow interface {
	// AuthCodeURL returns the provider authorize URL carrying the given state.
	AuthCodeURL(state string) string

	// ExchangeCode trades the consent code for a provisional access token.
	ExchangeCode(ctx context.Context, code string) (string, error)
}

// ProviderClient makes outbound calls to the identity provider's REST API
// using a previously obtained bearer token. Pure request/response, no state.
type ProviderClient interface {
	// FetchIdentity fetches the profile and verified emails and resolves the
	// primary email. Returns ErrNoPrimaryEmail when no email is flagged primary.
	FetchIdentity(ctx context.Context, accessToken string) (domainauth.ProviderIdentity, error)

	// CreateRepo creates a repository on behalf of the token's owner.
	CreateRepo(ctx context.Context, accessToken string, in CreateRepoInput) (*RepoSummary, error)

	// ListRepos lists repositories the token's owner can access.
	ListRepos(ctx context.Context, accessToken string) ([]*RepoSummary, error)
}

// CreateRepoInput carries the fields forwarded to the provider's create-repo call.
type CreateRepoInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private,omitempty"`
	AutoInit    bool   `json:"auto_init,omitempty"`
}

// RepoSummary is the subset of the provider's repository representation the
// frontend consumes.
type RepoSummary struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	HTMLURL       string `json:"html_url"`
	Private       bool   `json:"private"`
	DefaultBranch string `json:"default_branch,omitempty"`
}

// SessionIssuer mints and verifies signed, time-bound session tokens.
// Stateless beyond the signing secret.
type SessionIssuer interface {
	Issue(userID int64) (string, error)
	Verify(token string) (domainauth.SessionClaims, error)
}

// ReturnPathStore holds the caller-supplied return path for the duration of
// the OAuth round trip, keyed by the opaque state value.
type ReturnPathStore interface {
	Save(ctx context.Context, state, returnTo string) error

	// Take retrieves and deletes the stored return path. Returns
	// ErrStateNotFound for unknown or expired state.
	Take(ctx context.Context, state string) (string, error)
}

// ErrNoPrimaryEmail is returned when the provider reports no primary email.
var ErrNoPrimaryEmail = errors.New("no primary email on provider account")

// ErrStateNotFound is returned for unknown or expired OAuth state.
var ErrStateNotFound = errors.New("oauth state not found")

// ProviderAPIError carries a non-2xx provider response. The provider's own
// message is surfaced verbatim to callers when available.
type ProviderAPIError struct {
	StatusCode int
	Message    string
}

func (e *ProviderAPIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider returned %d", e.StatusCode)
}
