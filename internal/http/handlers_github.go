package httpx

import (
	"errors"
	"net/http"

	"github.com/dstokens/tokens-api/internal/ports"
	"github.com/dstokens/tokens-api/internal/service"
)

// GitHubHandlers provides HTTP handlers for proxied GitHub repository actions.
type GitHubHandlers struct {
	Svc *service.GitHubProxyService
}

// githubTokenFromRequest resolves the GitHub bearer token through the ordered
// source list: Github-Token header, github_token cookie, access_token cookie.
// First present wins.
func githubTokenFromRequest(r *http.Request) string {
	if token := r.Header.Get("Github-Token"); token != "" {
		return token
	}
	if cookie, err := r.Cookie("github_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// CreateRepo handles POST /api/github/create-repo.
func (h *GitHubHandlers) CreateRepo(w http.ResponseWriter, r *http.Request) {
	token := githubTokenFromRequest(r)
	if token == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "github_token_required",
			Err:     errors.New("no github token provided"),
		})
		return
	}

	var req ports.CreateRepoInput
	if !DecodeJSON(w, r, &req) {
		return
	}

	repo, err := h.Svc.CreateRepo(r.Context(), token, req)
	if err != nil {
		writeGitHubError(w, err, "create_repo_failed")
		return
	}

	WriteJSON(w, http.StatusCreated, repo)
}

// ListRepos handles GET /api/github/repos.
func (h *GitHubHandlers) ListRepos(w http.ResponseWriter, r *http.Request) {
	token := githubTokenFromRequest(r)
	if token == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "github_token_required",
			Err:     errors.New("no github token provided"),
		})
		return
	}

	repos, err := h.Svc.ListRepos(r.Context(), token)
	if err != nil {
		writeGitHubError(w, err, "list_repos_failed")
		return
	}

	WriteJSON(w, http.StatusOK, repos)
}

// writeGitHubError maps proxy errors: GitHub's own message surfaces verbatim
// as a 400 when present, anything else is a generic failure.
func writeGitHubError(w http.ResponseWriter, err error, fallbackCode string) {
	var apiErr *ports.ProviderAPIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "github_error",
			Err:     errors.New(apiErr.Message),
		})
		return
	}
	if isValidationError(err) {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		return
	}
	WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: fallbackCode, Err: err})
}
