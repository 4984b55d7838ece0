package github

// Package github provides the OAuth grant flow and REST client for the GitHub
// identity provider.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/oauth2"
	oauth2github "golang.org/x/oauth2/github"

	domainauth "github.com/dstokens/tokens-api/internal/domain/auth"
	"github.com/dstokens/tokens-api/internal/ports"
)

// primaryEmailExpr selects the address flagged primary from the
// /user/emails response.
const primaryEmailExpr = `[?primary] | [0].email`

// Client implements ports.GrantFlow and ports.ProviderClient against the
// GitHub OAuth and REST APIs.
type Client struct {
	config     *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
}

// Config holds configuration for the GitHub client.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
	APIBaseURL   string       // defaults to https://api.github.com
	Timeout      time.Duration // per-call timeout, defaults to 10s
	HTTPClient   *http.Client // optional, overrides Timeout when set
}

// NewClient creates a new GitHub client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.RedirectURI == "" {
		return nil, errors.New("redirect URI is required")
	}

	base := strings.TrimRight(cfg.APIBaseURL, "/")
	if base == "" {
		base = "https://api.github.com"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       cfg.Scopes,
			Endpoint:     oauth2github.Endpoint,
		},
		apiBaseURL: base,
		httpClient: httpClient,
	}, nil
}

// AuthCodeURL returns the GitHub authorize URL carrying the given state.
func (c *Client) AuthCodeURL(state string) string {
	return c.config.AuthCodeURL(state)
}

// ExchangeCode trades the consent code for a provisional access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", errors.New("authorization code is required")
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange code for token: %w", err)
	}
	if token.AccessToken == "" {
		return "", errors.New("empty access token in exchange response")
	}
	return token.AccessToken, nil
}

// profile is the subset of the GitHub /user response we consume.
type profile struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Email     string `json:"email"`
}

// FetchIdentity fetches the profile and email list and resolves the primary
// email. One profile fetch, one emails fetch, no retries.
func (c *Client) FetchIdentity(ctx context.Context, accessToken string) (domainauth.ProviderIdentity, error) {
	var p profile
	if err := c.getJSON(ctx, accessToken, "/user", &p); err != nil {
		return domainauth.ProviderIdentity{}, fmt.Errorf("fetch profile: %w", err)
	}

	primary, err := c.fetchPrimaryEmail(ctx, accessToken)
	if err != nil {
		return domainauth.ProviderIdentity{}, err
	}

	return domainauth.ProviderIdentity{
		Login:        p.Login,
		PrimaryEmail: primary,
		ProfileID:    p.ID,
		Name:         p.Name,
		AvatarURL:    p.AvatarURL,
	}, nil
}

// fetchPrimaryEmail lists the account emails and selects the one flagged primary.
func (c *Client) fetchPrimaryEmail(ctx context.Context, accessToken string) (string, error) {
	var emails any
	if err := c.getJSON(ctx, accessToken, "/user/emails", &emails); err != nil {
		return "", fmt.Errorf("fetch emails: %w", err)
	}

	result, err := jmespath.Search(primaryEmailExpr, emails)
	if err != nil {
		return "", fmt.Errorf("select primary email: %w", err)
	}
	primary, ok := result.(string)
	if !ok || primary == "" {
		return "", ports.ErrNoPrimaryEmail
	}
	return primary, nil
}

// CreateRepo creates a repository on behalf of the token's owner.
func (c *Client) CreateRepo(ctx context.Context, accessToken string, in ports.CreateRepoInput) (*ports.RepoSummary, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("repository name is required")
	}

	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode create repo request: %w", err)
	}

	var out ports.RepoSummary
	if doErr := c.doJSON(ctx, jsonRequest{
		Method:      http.MethodPost,
		Path:        "/user/repos",
		AccessToken: accessToken,
		Body:        body,
	}, &out); doErr != nil {
		return nil, doErr
	}
	return &out, nil
}

// ListRepos lists repositories the token's owner can access, most recently
// updated first.
func (c *Client) ListRepos(ctx context.Context, accessToken string) ([]*ports.RepoSummary, error) {
	var out []*ports.RepoSummary
	if err := c.getJSON(ctx, accessToken, "/user/repos?sort=updated&per_page=100", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// jsonRequest groups parameters for doJSON to keep parameter count small.
type jsonRequest struct {
	Method      string
	Path        string
	AccessToken string
	Body        []byte
}

func (c *Client) getJSON(ctx context.Context, accessToken, path string, dst any) error {
	return c.doJSON(ctx, jsonRequest{Method: http.MethodGet, Path: path, AccessToken: accessToken}, dst)
}

func (c *Client) doJSON(ctx context.Context, req jsonRequest, dst any) error {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.apiBaseURL+req.Path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+req.AccessToken)
	httpReq.Header.Set("Accept", "application/vnd.github.v3+json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("call provider: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ports.ProviderAPIError{
			StatusCode: resp.StatusCode,
			Message:    providerMessage(data),
		}
	}

	if dst == nil {
		return nil
	}
	if unmarshalErr := json.Unmarshal(data, dst); unmarshalErr != nil {
		return fmt.Errorf("decode provider response: %w", unmarshalErr)
	}
	return nil
}

// providerMessage extracts GitHub's error message field when present.
func providerMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Message
}
