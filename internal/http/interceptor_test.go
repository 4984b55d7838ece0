package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dstokens/tokens-api/internal/data"
	domainauth "github.com/dstokens/tokens-api/internal/domain/auth"
	"github.com/dstokens/tokens-api/internal/domain/model"
	"github.com/dstokens/tokens-api/internal/mocks"
	mockauth "github.com/dstokens/tokens-api/internal/mocks/auth"
	"github.com/dstokens/tokens-api/internal/ports"
	"github.com/dstokens/tokens-api/internal/service"
)

const testCallbackPath = "/api/connect/github/callback"

type interceptorDeps struct {
	provider *mockauth.MockProviderClient
	users    *mocks.MockUserRepository
	roles    *mocks.MockRoleRepository
}

func newInterceptor(t *testing.T) (func(http.Handler) http.Handler, interceptorDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := interceptorDeps{
		provider: mockauth.NewMockProviderClient(),
		users:    mocks.NewMockUserRepository(ctrl),
		roles:    mocks.NewMockRoleRepository(ctrl),
	}

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Grant:       mockauth.NewMockGrantFlow(),
		Provider:    deps.provider,
		Sessions:    &mockauth.MockSessionIssuer{},
		ReturnPaths: mockauth.NewMemoryReturnPathStore(),
		Users:       deps.users,
		Roles:       deps.roles,
		FrontendURL: "http://localhost:5173",
	})

	interceptor := CallbackInterceptor(CallbackInterceptorOptions{
		Auth:         authSvc,
		CallbackPath: testCallbackPath,
	})
	return interceptor, deps
}

// provisionalRedirectHandler mimics the grant handler's 302 output.
func provisionalRedirectHandler(location string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, location, http.StatusFound)
	})
}

func expectUpsert(deps interceptorDeps, userID int64) {
	deps.roles.EXPECT().
		GetByType(gomock.Any(), model.RoleTypeAuthenticated).
		Return(&model.Role{ID: 1, Type: model.RoleTypeAuthenticated}, nil)
	deps.users.EXPECT().
		GetByEmail(gomock.Any(), gomock.Any()).
		Return(nil, data.ErrUserNotFound)
	deps.users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&model.User{ID: userID, Username: "mock-user", Confirmed: true}, nil)
}

func TestCallbackInterceptor_CompletesLoginAndRewritesLocation(t *testing.T) {
	interceptor, deps := newInterceptor(t)
	expectUpsert(deps, 7)

	handler := interceptor(provisionalRedirectHandler(testCallbackPath + "?access_token=gho_abc&returnTo=%2Feditor"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, testCallbackPath+"?state=s&code=c", nil))

	require.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "localhost:5173", location.Host)
	assert.Equal(t, "/editor", location.Path)
	assert.Equal(t, "gho_abc", location.Query().Get("access_token"))
	assert.Equal(t, "session-for-7", location.Query().Get("jwt"))

	cookies := rec.Result().Cookies()
	byName := make(map[string]*http.Cookie, len(cookies))
	for _, c := range cookies {
		byName[c.Name] = c
	}
	require.Contains(t, byName, "jwt")
	require.Contains(t, byName, "github_token")
	require.Contains(t, byName, "is_authenticated")
	assert.Equal(t, "session-for-7", byName["jwt"].Value)
	assert.True(t, byName["jwt"].HttpOnly)
	assert.Equal(t, "gho_abc", byName["github_token"].Value)
	assert.True(t, byName["github_token"].HttpOnly)
	assert.Equal(t, "true", byName["is_authenticated"].Value)
	assert.False(t, byName["is_authenticated"].HttpOnly)
}

func TestCallbackInterceptor_OtherPathsPassStraightThrough(t *testing.T) {
	interceptor, _ := newInterceptor(t)

	handler := interceptor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("untouched"))
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/healthz", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "untouched", rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestCallbackInterceptor_RedirectWithoutAccessTokenUnchanged(t *testing.T) {
	interceptor, _ := newInterceptor(t)

	handler := interceptor(provisionalRedirectHandler("https://example.com/elsewhere"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, testCallbackPath, nil))

	// No access_token parameter means this is not a provisional redirect;
	// it passes through byte for byte.
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/elsewhere", rec.Header().Get("Location"))
	assert.Empty(t, rec.Result().Cookies())
}

func TestCallbackInterceptor_NonRedirectResponseUnchanged(t *testing.T) {
	interceptor, _ := newInterceptor(t)

	handler := interceptor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_state", Err: errors.New("unknown state")})
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, testCallbackPath, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid_state", body["error"])
}

func TestCallbackInterceptor_ProviderFailureFailsOpen(t *testing.T) {
	interceptor, deps := newInterceptor(t)
	deps.provider.FetchIdentityFunc = func(context.Context, string) (domainauth.ProviderIdentity, error) {
		return domainauth.ProviderIdentity{}, errors.New("dial tcp: i/o timeout")
	}

	provisional := testCallbackPath + "?access_token=gho_abc"
	handler := interceptor(provisionalRedirectHandler(provisional))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, testCallbackPath, nil))

	// The original provisional redirect survives unchanged.
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, provisional, rec.Header().Get("Location"))
	assert.Empty(t, rec.Result().Cookies())
}

func TestCallbackInterceptor_NoPrimaryEmailFailsOpen(t *testing.T) {
	interceptor, deps := newInterceptor(t)
	deps.provider.FetchIdentityFunc = func(context.Context, string) (domainauth.ProviderIdentity, error) {
		return domainauth.ProviderIdentity{}, ports.ErrNoPrimaryEmail
	}

	provisional := testCallbackPath + "?access_token=gho_abc"
	handler := interceptor(provisionalRedirectHandler(provisional))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, testCallbackPath, nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, provisional, rec.Header().Get("Location"))
}

func TestCallbackInterceptor_UserStoreFailureFailsLoud(t *testing.T) {
	interceptor, deps := newInterceptor(t)

	deps.roles.EXPECT().
		GetByType(gomock.Any(), model.RoleTypeAuthenticated).
		Return(&model.Role{ID: 1, Type: model.RoleTypeAuthenticated}, nil)
	deps.users.EXPECT().
		GetByEmail(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("pq: connection reset"))

	handler := interceptor(provisionalRedirectHandler(testCallbackPath + "?access_token=gho_abc"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, testCallbackPath, nil))

	// Store failures must not silently log a user in or pass the redirect on.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "callback_failed", body["error"])
	assert.Empty(t, rec.Header().Get("Location"))
}
