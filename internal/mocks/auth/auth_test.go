package auth

import (
	"context"
	"testing"

	domainauth "github.com/dstokens/tokens-api/internal/domain/auth"
	"github.com/dstokens/tokens-api/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGrantFlow_Defaults(t *testing.T) {
	flow := NewMockGrantFlow()
	ctx := context.Background()

	authURL := flow.AuthCodeURL("abc123")
	assert.Equal(t, "https://mock-provider/login/oauth/authorize?state=abc123", authURL)

	token, err := flow.ExchangeCode(ctx, "code-1")
	require.NoError(t, err)
	assert.Equal(t, "gho_mock-code-1-1", token)

	// Second exchange should increment the counter
	token2, err := flow.ExchangeCode(ctx, "code-2")
	require.NoError(t, err)
	assert.Equal(t, "gho_mock-code-2-2", token2)
}

func TestMockGrantFlow_CustomFuncs(t *testing.T) {
	flow := &MockGrantFlow{
		AuthCodeURLFunc: func(state string) string {
			return "https://custom/authorize?s=" + state
		},
		ExchangeCodeFunc: func(_ context.Context, code string) (string, error) {
			return "fixed-token", nil
		},
	}

	assert.Equal(t, "https://custom/authorize?s=xyz", flow.AuthCodeURL("xyz"))

	token, err := flow.ExchangeCode(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "fixed-token", token)
}

func TestMockProviderClient_Defaults(t *testing.T) {
	client := NewMockProviderClient()
	ctx := context.Background()

	identity, err := client.FetchIdentity(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "mock-user", identity.Login)
	assert.Equal(t, "mock.user@example.com", identity.PrimaryEmail)

	repo, err := client.CreateRepo(ctx, "token", ports.CreateRepoInput{Name: "design-tokens", Private: true})
	require.NoError(t, err)
	assert.Equal(t, "design-tokens", repo.Name)
	assert.Equal(t, "mock-user/design-tokens", repo.FullName)
	assert.True(t, repo.Private)

	repos, err := client.ListRepos(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestMockSessionIssuer_RoundTrip(t *testing.T) {
	issuer := &MockSessionIssuer{}

	token, err := issuer.Issue(42)
	require.NoError(t, err)
	assert.Equal(t, "session-for-42", token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)

	_, err = issuer.Verify("garbage")
	require.Error(t, err)
}

func TestMockSessionIssuer_CustomVerify(t *testing.T) {
	issuer := &MockSessionIssuer{
		VerifyFunc: func(token string) (domainauth.SessionClaims, error) {
			return domainauth.SessionClaims{UserID: 7}, nil
		},
	}

	claims, err := issuer.Verify("anything")
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestMemoryReturnPathStore_TakeConsumes(t *testing.T) {
	store := NewMemoryReturnPathStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "state-1", "/editor"))

	got, err := store.Take(ctx, "state-1")
	require.NoError(t, err)
	assert.Equal(t, "/editor", got)

	// Second take should fail: the value is single use.
	_, err = store.Take(ctx, "state-1")
	assert.ErrorIs(t, err, ports.ErrStateNotFound)
}

func TestMemoryReturnPathStore_UnknownState(t *testing.T) {
	store := NewMemoryReturnPathStore()

	_, err := store.Take(context.Background(), "never-saved")
	assert.ErrorIs(t, err, ports.ErrStateNotFound)
}

func TestMemoryReturnPathStore_EmptyState(t *testing.T) {
	store := NewMemoryReturnPathStore()

	err := store.Save(context.Background(), "", "/home")
	require.Error(t, err)
}
