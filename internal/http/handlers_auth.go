package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dstokens/tokens-api/internal/ports"
	"github.com/dstokens/tokens-api/internal/service"
)

// AuthHandlers provides HTTP handlers for the GitHub login round trip.
type AuthHandlers struct {
	Svc          *service.AuthService
	CallbackPath string
	Logger       *slog.Logger
}

// Begin handles GET /api/connect/github. It stashes the caller's returnTo
// under a fresh state value and redirects to the GitHub authorize URL.
func (h *AuthHandlers) Begin(w http.ResponseWriter, r *http.Request) {
	returnTo := r.URL.Query().Get("returnTo")

	authURL, err := h.Svc.BeginLogin(r.Context(), returnTo)
	if err != nil {
		h.Logger.ErrorContext(r.Context(), "failed to begin login", "err", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     errors.New("failed to begin login"),
		})
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

// Callback handles GET /api/connect/github/callback. It validates state,
// exchanges the code, and emits the provisional 302 the interceptor observes.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := q.Get("state")
	code := q.Get("code")

	if errMsg := q.Get("error"); errMsg != "" {
		// The provider declined (user canceled, bad scope). Nothing to exchange.
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "provider_denied",
			Err:     errors.New(errMsg),
		})
		return
	}

	result, err := h.Svc.ExchangeGrant(r.Context(), state, code)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrStateNotFound):
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_state",
				Err:     errors.New("unknown or expired oauth state"),
			})
		case errors.Is(err, service.ErrProviderUnavailable):
			h.Logger.ErrorContext(r.Context(), "code exchange failed", "err", err)
			WriteError(w, ErrorParams{
				Code:    http.StatusBadGateway,
				ErrCode: "provider_unavailable",
				Err:     errors.New("failed to exchange authorization code"),
			})
		default:
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "grant_failed", Err: err})
		}
		return
	}

	// The provisional redirect: access_token and returnTo ride in the query
	// for the interceptor to pick up and rewrite.
	loc := url.URL{Path: h.CallbackPath}
	locQ := loc.Query()
	locQ.Set("access_token", result.AccessToken)
	if result.ReturnTo != "" {
		locQ.Set("returnTo", result.ReturnTo)
	}
	loc.RawQuery = locQ.Encode()
	http.Redirect(w, r, loc.String(), http.StatusFound)
}

// Logout handles POST /api/auth/logout. Stateless sessions mean logout is
// cookie clearing only.
func (h *AuthHandlers) Logout(w http.ResponseWriter, _ *http.Request) {
	for _, name := range []string{"jwt", "github_token", "is_authenticated"} {
		http.SetCookie(w, &http.Cookie{
			Name:   name,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"logged_out": true})
}

// Me handles GET /api/users/me. RequireAuth has already loaded the user.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}
	WriteJSON(w, http.StatusOK, user)
}
