package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	domainauth "github.com/dstokens/tokens-api/internal/domain/auth"
	"github.com/dstokens/tokens-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.GrantFlow       = (*MockGrantFlow)(nil)
	_ ports.ProviderClient  = (*MockProviderClient)(nil)
	_ ports.SessionIssuer   = (*MockSessionIssuer)(nil)
	_ ports.ReturnPathStore = (*MemoryReturnPathStore)(nil)
)

// MockGrantFlow simulates the provider's authorize-and-exchange endpoints
// with deterministic token values.
type MockGrantFlow struct {
	AuthCodeURLFunc  func(state string) string
	ExchangeCodeFunc func(ctx context.Context, code string) (string, error)

	// Deterministic values for predictable testing
	AuthorizeBase string
	TokenPrefix   string

	// Internal state tracking for deterministic behavior
	exchangeCount int
}

// NewMockGrantFlow creates a MockGrantFlow with sensible defaults.
func NewMockGrantFlow() *MockGrantFlow {
	return &MockGrantFlow{
		AuthorizeBase: "https://mock-provider/login/oauth/authorize",
		TokenPrefix:   "gho_mock",
	}
}

func (m *MockGrantFlow) AuthCodeURL(state string) string {
	if m.AuthCodeURLFunc != nil {
		return m.AuthCodeURLFunc(state)
	}

	base := m.AuthorizeBase
	if base == "" {
		base = "https://mock-provider/login/oauth/authorize"
	}
	return base + "?state=" + url.QueryEscape(state)
}

func (m *MockGrantFlow) ExchangeCode(ctx context.Context, code string) (string, error) {
	if m.ExchangeCodeFunc != nil {
		return m.ExchangeCodeFunc(ctx, code)
	}

	m.exchangeCount++
	prefix := m.TokenPrefix
	if prefix == "" {
		prefix = "gho_mock"
	}
	return fmt.Sprintf("%s-%s-%d", prefix, code, m.exchangeCount), nil
}

// MockProviderClient simulates the provider's REST API for tests.
type MockProviderClient struct {
	FetchIdentityFunc func(ctx context.Context, accessToken string) (domainauth.ProviderIdentity, error)
	CreateRepoFunc    func(ctx context.Context, accessToken string, in ports.CreateRepoInput) (*ports.RepoSummary, error)
	ListReposFunc     func(ctx context.Context, accessToken string) ([]*ports.RepoSummary, error)

	// DefaultIdentity is returned by FetchIdentity when no FetchIdentityFunc is set.
	DefaultIdentity domainauth.ProviderIdentity
}

// NewMockProviderClient creates a MockProviderClient with sensible defaults.
func NewMockProviderClient() *MockProviderClient {
	return &MockProviderClient{
		DefaultIdentity: domainauth.ProviderIdentity{
			Login:        "mock-user",
			PrimaryEmail: "mock.user@example.com",
			ProfileID:    12345,
			Name:         "Mock User",
			AvatarURL:    "https://mock-provider/avatars/12345",
		},
	}
}

func (m *MockProviderClient) FetchIdentity(ctx context.Context, accessToken string) (domainauth.ProviderIdentity, error) {
	if m.FetchIdentityFunc != nil {
		return m.FetchIdentityFunc(ctx, accessToken)
	}

	identity := m.DefaultIdentity
	if identity.Login == "" {
		identity = domainauth.ProviderIdentity{
			Login:        "mock-user",
			PrimaryEmail: "mock.user@example.com",
			ProfileID:    12345,
		}
	}
	return identity, nil
}

func (m *MockProviderClient) CreateRepo(ctx context.Context, accessToken string, in ports.CreateRepoInput) (*ports.RepoSummary, error) {
	if m.CreateRepoFunc != nil {
		return m.CreateRepoFunc(ctx, accessToken, in)
	}

	return &ports.RepoSummary{
		ID:            1,
		Name:          in.Name,
		FullName:      "mock-user/" + in.Name,
		HTMLURL:       "https://mock-provider/mock-user/" + in.Name,
		Private:       in.Private,
		DefaultBranch: "main",
	}, nil
}

func (m *MockProviderClient) ListRepos(ctx context.Context, accessToken string) ([]*ports.RepoSummary, error) {
	if m.ListReposFunc != nil {
		return m.ListReposFunc(ctx, accessToken)
	}
	return []*ports.RepoSummary{}, nil
}

// MockSessionIssuer issues predictable unsigned tokens for tests.
type MockSessionIssuer struct {
	IssueFunc  func(userID int64) (string, error)
	VerifyFunc func(token string) (domainauth.SessionClaims, error)
}

func (m *MockSessionIssuer) Issue(userID int64) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID)
	}
	return fmt.Sprintf("session-for-%d", userID), nil
}

func (m *MockSessionIssuer) Verify(token string) (domainauth.SessionClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}

	var userID int64
	if _, err := fmt.Sscanf(token, "session-for-%d", &userID); err != nil {
		return domainauth.SessionClaims{}, errors.New("malformed mock session token")
	}
	return domainauth.SessionClaims{UserID: userID}, nil
}

// MemoryReturnPathStore is an in-memory return path store for unit tests.
// Take consumes the stored value, matching the single-use semantics of the
// Redis-backed store.
type MemoryReturnPathStore struct {
	paths map[string]string
}

// NewMemoryReturnPathStore creates a new in-memory return path store.
func NewMemoryReturnPathStore() *MemoryReturnPathStore {
	return &MemoryReturnPathStore{
		paths: make(map[string]string),
	}
}

func (m *MemoryReturnPathStore) Save(_ context.Context, state, returnTo string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	m.paths[state] = returnTo
	return nil
}

func (m *MemoryReturnPathStore) Take(_ context.Context, state string) (string, error) {
	returnTo, ok := m.paths[state]
	if !ok {
		return "", ports.ErrStateNotFound
	}
	delete(m.paths, state)
	return returnTo, nil
}
