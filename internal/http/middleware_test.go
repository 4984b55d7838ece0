package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/dstokens/tokens-api/internal/domain/auth"
	"github.com/dstokens/tokens-api/internal/domain/model"
	"github.com/dstokens/tokens-api/internal/mocks"
	mockauth "github.com/dstokens/tokens-api/internal/mocks/auth"
)

func TestPromoteJWTCookie_InjectsBearerHeader(t *testing.T) {
	var seen string
	handler := PromoteJWTCookie()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "cookie-token"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "Bearer cookie-token", seen)
}

func TestPromoteJWTCookie_HeaderWins(t *testing.T) {
	var seen string
	handler := PromoteJWTCookie()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "cookie-token"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "Bearer header-token", seen)
}

func TestPromoteJWTCookie_NoCookieNoHeader(t *testing.T) {
	var seen string
	handler := PromoteJWTCookie()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, seen)
}

func newRequireAuthHandler(t *testing.T) (http.Handler, *mockauth.MockSessionIssuer, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sessions := &mockauth.MockSessionIssuer{}
	users := mocks.NewMockUserRepository(ctrl)

	handler := RequireAuth(sessions, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUserFromContext(r.Context())
		require.True(t, ok)
		WriteJSON(w, http.StatusOK, user)
	}))
	return handler, sessions, users
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestRequireAuth_Success(t *testing.T) {
	handler, _, users := newRequireAuthHandler(t)

	users.EXPECT().
		GetByID(gomock.Any(), int64(42)).
		Return(&model.User{ID: 42, Username: "octocat"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer session-for-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "octocat", user.Username)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	handler, _, _ := newRequireAuthHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authentication_required", errorCode(t, rec))
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	handler, sessions, _ := newRequireAuthHandler(t)
	sessions.VerifyFunc = func(string) (domainauth.SessionClaims, error) {
		return domainauth.SessionClaims{}, errors.New("signature mismatch")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_token", errorCode(t, rec))
}

func TestRequireAuth_UnknownUser(t *testing.T) {
	handler, _, users := newRequireAuthHandler(t)

	users.EXPECT().
		GetByID(gomock.Any(), int64(42)).
		Return(nil, errors.New("user not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer session-for-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unknown_user", errorCode(t, rec))
}

func TestRequireAuth_BlockedUser(t *testing.T) {
	handler, _, users := newRequireAuthHandler(t)

	users.EXPECT().
		GetByID(gomock.Any(), int64(42)).
		Return(&model.User{ID: 42, Blocked: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer session-for-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "user_blocked", errorCode(t, rec))
}

func TestRequireAuth_CaseInsensitiveBearerPrefix(t *testing.T) {
	handler, _, users := newRequireAuthHandler(t)

	users.EXPECT().
		GetByID(gomock.Any(), int64(42)).
		Return(&model.User{ID: 42}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "bearer session-for-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
