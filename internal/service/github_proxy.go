package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dstokens/tokens-api/internal/ports"
)

// GitHubProxyServiceOptions groups dependencies for GitHubProxyService.
type GitHubProxyServiceOptions struct {
	Provider ports.ProviderClient
}

// GitHubProxyService forwards repository actions to the provider on behalf of
// an already-authenticated caller. No retries and no rate-limit handling;
// provider errors surface as-is.
type GitHubProxyService struct {
	provider ports.ProviderClient
}

// NewGitHubProxyService constructs a new GitHubProxyService.
func NewGitHubProxyService(opts GitHubProxyServiceOptions) *GitHubProxyService {
	return &GitHubProxyService{provider: opts.Provider}
}

// CreateRepo creates a repository owned by the bearer token's account.
func (s *GitHubProxyService) CreateRepo(ctx context.Context, accessToken string, in ports.CreateRepoInput) (*ports.RepoSummary, error) {
	if accessToken == "" {
		return nil, errors.New("access token is required")
	}
	if in.Name == "" {
		return nil, errors.New("repository name is required")
	}
	repo, err := s.provider.CreateRepo(ctx, accessToken, in)
	if err != nil {
		var apiErr *ports.ProviderAPIError
		if errors.As(err, &apiErr) {
			return nil, err
		}
		return nil, fmt.Errorf("create repo: %w", err)
	}
	return repo, nil
}

// ListRepos lists repositories the bearer token's account can access.
func (s *GitHubProxyService) ListRepos(ctx context.Context, accessToken string) ([]*ports.RepoSummary, error) {
	if accessToken == "" {
		return nil, errors.New("access token is required")
	}
	repos, err := s.provider.ListRepos(ctx, accessToken)
	if err != nil {
		var apiErr *ports.ProviderAPIError
		if errors.As(err, &apiErr) {
			return nil, err
		}
		return nil, fmt.Errorf("list repos: %w", err)
	}
	return repos, nil
}
