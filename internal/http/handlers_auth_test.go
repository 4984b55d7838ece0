package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dstokens/tokens-api/internal/mocks"
	mockauth "github.com/dstokens/tokens-api/internal/mocks/auth"
	"github.com/dstokens/tokens-api/internal/service"
)

type authHandlerDeps struct {
	flow    *mockauth.MockGrantFlow
	returns *mockauth.MemoryReturnPathStore
}

func newAuthHandlers(t *testing.T) (*AuthHandlers, authHandlerDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := authHandlerDeps{
		flow:    mockauth.NewMockGrantFlow(),
		returns: mockauth.NewMemoryReturnPathStore(),
	}

	svc := service.NewAuthService(service.AuthServiceOptions{
		Grant:       deps.flow,
		Provider:    mockauth.NewMockProviderClient(),
		Sessions:    &mockauth.MockSessionIssuer{},
		ReturnPaths: deps.returns,
		Users:       mocks.NewMockUserRepository(ctrl),
		Roles:       mocks.NewMockRoleRepository(ctrl),
		FrontendURL: "http://localhost:5173",
	})

	return &AuthHandlers{
		Svc:          svc,
		CallbackPath: testCallbackPath,
		Logger:       slog.Default(),
	}, deps
}

func TestAuthHandlers_Begin_RedirectsToAuthorizeURL(t *testing.T) {
	handlers, deps := newAuthHandlers(t)

	rec := httptest.NewRecorder()
	handlers.Begin(rec, httptest.NewRequest(http.MethodGet, "/api/connect/github?returnTo=%2Feditor", nil))

	require.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "mock-provider", location.Host)

	// The returnTo landed in the store under the state in the redirect.
	state := location.Query().Get("state")
	require.NotEmpty(t, state)
	returnTo, err := deps.returns.Take(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, "/editor", returnTo)
}

func TestAuthHandlers_Callback_ProviderDenied(t *testing.T) {
	handlers, _ := newAuthHandlers(t)

	rec := httptest.NewRecorder()
	handlers.Callback(rec, httptest.NewRequest(http.MethodGet, testCallbackPath+"?error=access_denied", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "provider_denied", errorCode(t, rec))
}

func TestAuthHandlers_Callback_UnknownState(t *testing.T) {
	handlers, _ := newAuthHandlers(t)

	rec := httptest.NewRecorder()
	handlers.Callback(rec, httptest.NewRequest(http.MethodGet, testCallbackPath+"?state=stale&code=c", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_state", errorCode(t, rec))
}

func TestAuthHandlers_Callback_ExchangeFailure(t *testing.T) {
	handlers, deps := newAuthHandlers(t)

	require.NoError(t, deps.returns.Save(context.Background(), "s1", ""))
	deps.flow.ExchangeCodeFunc = func(context.Context, string) (string, error) {
		return "", errors.New("connection refused")
	}

	rec := httptest.NewRecorder()
	handlers.Callback(rec, httptest.NewRequest(http.MethodGet, testCallbackPath+"?state=s1&code=c", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "provider_unavailable", errorCode(t, rec))
}

func TestAuthHandlers_Callback_EmitsProvisionalRedirect(t *testing.T) {
	handlers, deps := newAuthHandlers(t)

	require.NoError(t, deps.returns.Save(context.Background(), "s1", "/editor"))
	deps.flow.ExchangeCodeFunc = func(context.Context, string) (string, error) {
		return "gho_abc", nil
	}

	rec := httptest.NewRecorder()
	handlers.Callback(rec, httptest.NewRequest(http.MethodGet, testCallbackPath+"?state=s1&code=c", nil))

	require.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, testCallbackPath, location.Path)
	assert.Equal(t, "gho_abc", location.Query().Get("access_token"))
	assert.Equal(t, "/editor", location.Query().Get("returnTo"))
}

func TestAuthHandlers_Callback_NoReturnToOmitsParameter(t *testing.T) {
	handlers, deps := newAuthHandlers(t)

	require.NoError(t, deps.returns.Save(context.Background(), "s1", ""))

	rec := httptest.NewRecorder()
	handlers.Callback(rec, httptest.NewRequest(http.MethodGet, testCallbackPath+"?state=s1&code=c", nil))

	require.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.NotEmpty(t, location.Query().Get("access_token"))
	assert.False(t, location.Query().Has("returnTo"))
}

func TestAuthHandlers_Logout_ClearsCookies(t *testing.T) {
	handlers, _ := newAuthHandlers(t)

	rec := httptest.NewRecorder()
	handlers.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body["logged_out"])

	cleared := make(map[string]bool)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared[c.Name] = true
		}
	}
	assert.True(t, cleared["jwt"])
	assert.True(t, cleared["github_token"])
	assert.True(t, cleared["is_authenticated"])
}

func TestAuthHandlers_Me_WithoutUser(t *testing.T) {
	handlers, _ := newAuthHandlers(t)

	rec := httptest.NewRecorder()
	handlers.Me(rec, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authentication_required", errorCode(t, rec))
}
