package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/dstokens/tokens-api/internal/core"
	"github.com/dstokens/tokens-api/internal/data"
	domainauth "github.com/dstokens/tokens-api/internal/domain/auth"
	"github.com/dstokens/tokens-api/internal/domain/model"
	"github.com/dstokens/tokens-api/internal/ports"
)

// Structured outcome errors for the callback orchestration steps. Callers
// branch on these: provider-side failures pass the provisional redirect
// through untouched, user-store failures do not.
var (
	// ErrMalformedRedirect means the provisional redirect could not be
	// interpreted (unparsable Location or no access_token parameter).
	ErrMalformedRedirect = errors.New("malformed provisional redirect")

	// ErrProviderUnavailable means the identity provider could not be reached
	// or did not answer within the client timeout.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Grant       ports.GrantFlow
	Provider    ports.ProviderClient
	Sessions    ports.SessionIssuer
	ReturnPaths ports.ReturnPathStore
	Users       core.UserRepository
	Roles       core.RoleRepository
	FrontendURL string
	Logger      *slog.Logger
}

// AuthService orchestrates the GitHub login round trip: begin, grant
// exchange, and the callback completion that bootstraps a local user and
// mints the session token.
type AuthService struct {
	grant       ports.GrantFlow
	provider    ports.ProviderClient
	sessions    ports.SessionIssuer
	returnPaths ports.ReturnPathStore
	users       core.UserRepository
	roles       core.RoleRepository
	frontendURL string
	logger      *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		grant:       opts.Grant,
		provider:    opts.Provider,
		sessions:    opts.Sessions,
		returnPaths: opts.ReturnPaths,
		users:       opts.Users,
		roles:       opts.Roles,
		frontendURL: strings.TrimRight(opts.FrontendURL, "/"),
		logger:      logger.With("component", "auth_service"),
	}
}

// BeginLogin stores the caller's return path under a fresh state value and
// returns the provider authorize URL carrying that state.
func (s *AuthService) BeginLogin(ctx context.Context, returnTo string) (string, error) {
	state := uuid.NewString()
	if err := s.returnPaths.Save(ctx, state, returnTo); err != nil {
		return "", fmt.Errorf("save return path: %w", err)
	}
	return s.grant.AuthCodeURL(state), nil
}

// GrantResult is the outcome of exchanging the consent code.
type GrantResult struct {
	AccessToken string
	ReturnTo    string
}

// ExchangeGrant validates the state, consumes the stored return path, and
// trades the consent code for the provisional access token. Unknown or
// expired state surfaces ports.ErrStateNotFound.
func (s *AuthService) ExchangeGrant(ctx context.Context, state, code string) (*GrantResult, error) {
	if state == "" {
		return nil, ports.ErrStateNotFound
	}
	if code == "" {
		return nil, errors.New("authorization code is required")
	}

	returnTo, err := s.returnPaths.Take(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("take return path: %w", err)
	}

	token, err := s.grant.ExchangeCode(ctx, code)
	if err != nil {
		return nil, errors.Join(ErrProviderUnavailable, err)
	}
	return &GrantResult{AccessToken: token, ReturnTo: returnTo}, nil
}

// ProvisionalRedirect is the interpreted content of the grant handler's 302.
type ProvisionalRedirect struct {
	AccessToken string
	ReturnTo    string
}

// ParseProvisionalRedirect interprets a provisional Location header. A
// Location that cannot be parsed, or that carries no access_token query
// parameter, yields ErrMalformedRedirect.
func ParseProvisionalRedirect(location string) (ProvisionalRedirect, error) {
	u, err := url.Parse(location)
	if err != nil {
		return ProvisionalRedirect{}, fmt.Errorf("%w: %w", ErrMalformedRedirect, err)
	}
	q := u.Query()
	token := q.Get("access_token")
	if token == "" {
		return ProvisionalRedirect{}, fmt.Errorf("%w: no access_token parameter", ErrMalformedRedirect)
	}
	return ProvisionalRedirect{
		AccessToken: token,
		ReturnTo:    q.Get("returnTo"),
	}, nil
}

// CallbackResult is the outcome of completing a callback.
type CallbackResult struct {
	User        *model.User
	SessionJWT  string
	RedirectURL string
}

// CompleteCallback finishes the login: fetches the provider identity with the
// provisional token, upserts the local user keyed by primary email, issues
// the session token, and builds the final redirect URL.
//
// Provider-side failures come back as ErrProviderUnavailable or
// ports.ErrNoPrimaryEmail so the caller can fail open. User-store failures
// are returned as-is and must not be swallowed.
func (s *AuthService) CompleteCallback(ctx context.Context, redirect ProvisionalRedirect) (*CallbackResult, error) {
	identity, err := s.provider.FetchIdentity(ctx, redirect.AccessToken)
	if err != nil {
		if errors.Is(err, ports.ErrNoPrimaryEmail) {
			return nil, err
		}
		return nil, errors.Join(ErrProviderUnavailable, err)
	}

	user, err := s.upsertUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &CallbackResult{
		User:        user,
		SessionJWT:  token,
		RedirectURL: s.finalRedirectURL(redirect.ReturnTo, redirect.AccessToken, token),
	}, nil
}

// upsertUser creates or refreshes the local user for a provider identity.
// Email is the match key; creates land on the authenticated role with
// confirmed=true and blocked=false.
func (s *AuthService) upsertUser(ctx context.Context, identity domainauth.ProviderIdentity) (*model.User, error) {
	role, err := s.roles.GetByType(ctx, model.RoleTypeAuthenticated)
	if err != nil {
		return nil, fmt.Errorf("resolve authenticated role: %w", err)
	}

	params := model.UpsertUserParams{
		Username: identity.Login,
		Email:    strings.ToLower(identity.PrimaryEmail),
		Provider: "github",
		RoleID:   role.ID,
	}

	existing, err := s.users.GetByEmail(ctx, params.Email)
	switch {
	case err == nil:
		updated, updateErr := s.users.Update(ctx, existing.ID, params)
		if updateErr != nil {
			return nil, fmt.Errorf("update user: %w", updateErr)
		}
		return updated, nil
	case errors.Is(err, data.ErrUserNotFound):
		created, createErr := s.users.Create(ctx, params)
		if createErr != nil {
			return nil, fmt.Errorf("create user: %w", createErr)
		}
		s.logger.InfoContext(ctx, "created user from oauth callback",
			"user_id", created.ID, "username", created.Username)
		return created, nil
	default:
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}
}

// finalRedirectURL builds the post-login redirect. An absolute http(s)
// returnTo is used verbatim, a relative one is appended to the frontend base,
// and an absent one lands on the frontend base alone. The access token and
// session JWT ride along as query parameters.
func (s *AuthService) finalRedirectURL(returnTo, accessToken, sessionJWT string) string {
	base := s.frontendURL
	switch {
	case returnTo == "":
		// frontend base alone
	case isAbsoluteHTTPURL(returnTo):
		base = returnTo
	default:
		base = s.frontendURL + "/" + strings.TrimLeft(returnTo, "/")
	}

	u, err := url.Parse(base)
	if err != nil {
		u = &url.URL{Path: s.frontendURL}
	}
	q := u.Query()
	q.Set("access_token", accessToken)
	q.Set("jwt", sessionJWT)
	u.RawQuery = q.Encode()
	return u.String()
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
