package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockauth "github.com/dstokens/tokens-api/internal/mocks/auth"
	"github.com/dstokens/tokens-api/internal/ports"
	"github.com/dstokens/tokens-api/internal/service"
)

func newGitHubHandlers(provider *mockauth.MockProviderClient) *GitHubHandlers {
	return &GitHubHandlers{
		Svc: service.NewGitHubProxyService(service.GitHubProxyServiceOptions{Provider: provider}),
	}
}

func TestGitHubTokenFromRequest_Precedence(t *testing.T) {
	// Header beats both cookies.
	req := httptest.NewRequest(http.MethodGet, "/api/github/repos", nil)
	req.Header.Set("Github-Token", "from-header")
	req.AddCookie(&http.Cookie{Name: "github_token", Value: "from-github-cookie"})
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "from-access-cookie"})
	assert.Equal(t, "from-header", githubTokenFromRequest(req))

	// github_token cookie beats access_token cookie.
	req = httptest.NewRequest(http.MethodGet, "/api/github/repos", nil)
	req.AddCookie(&http.Cookie{Name: "github_token", Value: "from-github-cookie"})
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "from-access-cookie"})
	assert.Equal(t, "from-github-cookie", githubTokenFromRequest(req))

	// access_token cookie is the last resort.
	req = httptest.NewRequest(http.MethodGet, "/api/github/repos", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "from-access-cookie"})
	assert.Equal(t, "from-access-cookie", githubTokenFromRequest(req))

	// Nothing present.
	req = httptest.NewRequest(http.MethodGet, "/api/github/repos", nil)
	assert.Empty(t, githubTokenFromRequest(req))
}

func TestGitHubHandlers_CreateRepo_Success(t *testing.T) {
	provider := mockauth.NewMockProviderClient()
	handlers := newGitHubHandlers(provider)

	req := httptest.NewRequest(http.MethodPost, "/api/github/create-repo",
		strings.NewReader(`{"name":"design-tokens","private":true}`))
	req.Header.Set("Github-Token", "gho_abc")
	rec := httptest.NewRecorder()
	handlers.CreateRepo(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var repo ports.RepoSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &repo))
	assert.Equal(t, "mock-user/design-tokens", repo.FullName)
	assert.True(t, repo.Private)
}

func TestGitHubHandlers_CreateRepo_NoToken(t *testing.T) {
	handlers := newGitHubHandlers(mockauth.NewMockProviderClient())

	req := httptest.NewRequest(http.MethodPost, "/api/github/create-repo", strings.NewReader(`{"name":"x"}`))
	rec := httptest.NewRecorder()
	handlers.CreateRepo(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "github_token_required", errorCode(t, rec))
}

func TestGitHubHandlers_CreateRepo_InvalidJSON(t *testing.T) {
	handlers := newGitHubHandlers(mockauth.NewMockProviderClient())

	req := httptest.NewRequest(http.MethodPost, "/api/github/create-repo", strings.NewReader(`{not json`))
	req.Header.Set("Github-Token", "gho_abc")
	rec := httptest.NewRecorder()
	handlers.CreateRepo(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_json", errorCode(t, rec))
}

func TestGitHubHandlers_CreateRepo_GitHubMessageSurfacesVerbatim(t *testing.T) {
	provider := mockauth.NewMockProviderClient()
	provider.CreateRepoFunc = func(context.Context, string, ports.CreateRepoInput) (*ports.RepoSummary, error) {
		return nil, &ports.ProviderAPIError{StatusCode: 422, Message: "name already exists on this account"}
	}
	handlers := newGitHubHandlers(provider)

	req := httptest.NewRequest(http.MethodPost, "/api/github/create-repo", strings.NewReader(`{"name":"dup"}`))
	req.Header.Set("Github-Token", "gho_abc")
	rec := httptest.NewRecorder()
	handlers.CreateRepo(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "github_error", body["error"])
	assert.Equal(t, "name already exists on this account", body["message"])
}

func TestGitHubHandlers_CreateRepo_MissingNameIsValidation(t *testing.T) {
	handlers := newGitHubHandlers(mockauth.NewMockProviderClient())

	req := httptest.NewRequest(http.MethodPost, "/api/github/create-repo", strings.NewReader(`{}`))
	req.Header.Set("Github-Token", "gho_abc")
	rec := httptest.NewRecorder()
	handlers.CreateRepo(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_failed", errorCode(t, rec))
}

func TestGitHubHandlers_CreateRepo_TransportFailureIs502(t *testing.T) {
	provider := mockauth.NewMockProviderClient()
	provider.CreateRepoFunc = func(context.Context, string, ports.CreateRepoInput) (*ports.RepoSummary, error) {
		return nil, errors.New("dial tcp: i/o timeout")
	}
	handlers := newGitHubHandlers(provider)

	req := httptest.NewRequest(http.MethodPost, "/api/github/create-repo", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Github-Token", "gho_abc")
	rec := httptest.NewRecorder()
	handlers.CreateRepo(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "create_repo_failed", errorCode(t, rec))
}

func TestGitHubHandlers_ListRepos_Success(t *testing.T) {
	provider := mockauth.NewMockProviderClient()
	provider.ListReposFunc = func(context.Context, string) ([]*ports.RepoSummary, error) {
		return []*ports.RepoSummary{{ID: 1, Name: "tokens"}}, nil
	}
	handlers := newGitHubHandlers(provider)

	req := httptest.NewRequest(http.MethodGet, "/api/github/repos", nil)
	req.AddCookie(&http.Cookie{Name: "github_token", Value: "gho_abc"})
	rec := httptest.NewRecorder()
	handlers.ListRepos(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var repos []*ports.RepoSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &repos))
	require.Len(t, repos, 1)
	assert.Equal(t, "tokens", repos[0].Name)
}

func TestGitHubHandlers_ListRepos_NoToken(t *testing.T) {
	handlers := newGitHubHandlers(mockauth.NewMockProviderClient())

	rec := httptest.NewRecorder()
	handlers.ListRepos(rec, httptest.NewRequest(http.MethodGet, "/api/github/repos", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "github_token_required", errorCode(t, rec))
}
