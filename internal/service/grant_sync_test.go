package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dstokens/tokens-api/config"
	"github.com/dstokens/tokens-api/internal/data"
	"github.com/dstokens/tokens-api/internal/domain/model"
	"github.com/dstokens/tokens-api/internal/mocks"
)

func newTestGrantSyncService(t *testing.T) (*GrantSyncService, *mocks.MockSettingsRepository, *mocks.MockRoleRepository, *mocks.MockPermissionRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsRepository(ctrl)
	roles := mocks.NewMockRoleRepository(ctrl)
	permissions := mocks.NewMockPermissionRepository(ctrl)

	svc := NewGrantSyncService(GrantSyncServiceOptions{
		Settings:    settings,
		Roles:       roles,
		Permissions: permissions,
		OAuth: config.GitHubOAuthConfig{
			Enabled:      true,
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			CallbackPath: "/api/connect/github/callback",
			RedirectURI:  "http://localhost:1337/api/connect/github/callback",
			Scopes:       "read:user user:email repo",
		},
	})
	return svc, settings, roles, permissions
}

func TestGrantSyncService_Sync_SeedsAllActions(t *testing.T) {
	svc, settings, roles, permissions := newTestGrantSyncService(t)
	ctx := context.Background()

	settings.EXPECT().
		Delete(ctx, model.ProviderSettingsKey).
		Return(nil)
	settings.EXPECT().
		Set(ctx, model.ProviderSettingsKey, gomock.Any()).
		Return(nil)
	roles.EXPECT().
		GetByType(ctx, model.RoleTypeAuthenticated).
		Return(authenticatedRole(), nil)

	actions := grantedActions()
	for _, action := range actions {
		permissions.EXPECT().
			Exists(ctx, action, int64(1)).
			Return(false, nil)
		permissions.EXPECT().
			Create(ctx, action, int64(1)).
			Return(&model.PermissionGrant{Action: action, RoleID: 1}, nil)
	}

	require.NoError(t, svc.Sync(ctx))
}

func TestGrantSyncService_Sync_SecondRunCreatesNothing(t *testing.T) {
	svc, settings, roles, permissions := newTestGrantSyncService(t)
	ctx := context.Background()

	settings.EXPECT().
		Delete(ctx, model.ProviderSettingsKey).
		Return(nil)
	settings.EXPECT().
		Set(ctx, model.ProviderSettingsKey, gomock.Any()).
		Return(nil)
	roles.EXPECT().
		GetByType(ctx, model.RoleTypeAuthenticated).
		Return(authenticatedRole(), nil)

	// Every grant already exists; Create must never be called.
	for _, action := range grantedActions() {
		permissions.EXPECT().
			Exists(ctx, action, int64(1)).
			Return(true, nil)
	}

	require.NoError(t, svc.Sync(ctx))
}

func TestGrantSyncService_Sync_ConcurrentDuplicateTolerated(t *testing.T) {
	svc, settings, roles, permissions := newTestGrantSyncService(t)
	ctx := context.Background()

	settings.EXPECT().
		Delete(ctx, model.ProviderSettingsKey).
		Return(nil)
	settings.EXPECT().
		Set(ctx, model.ProviderSettingsKey, gomock.Any()).
		Return(nil)
	roles.EXPECT().
		GetByType(ctx, model.RoleTypeAuthenticated).
		Return(authenticatedRole(), nil)

	// A concurrent startup wins the race on every insert; the duplicate
	// violation is tolerated, not fatal.
	for _, action := range grantedActions() {
		permissions.EXPECT().
			Exists(ctx, action, int64(1)).
			Return(false, nil)
		permissions.EXPECT().
			Create(ctx, action, int64(1)).
			Return(nil, data.ErrPermissionExists)
	}

	require.NoError(t, svc.Sync(ctx))
}

func TestGrantSyncService_Sync_SettingsOverwrittenWholesale(t *testing.T) {
	svc, settings, roles, permissions := newTestGrantSyncService(t)
	ctx := context.Background()

	// The stored copy is cleared before the authoritative record is written.
	var stored model.ProviderOAuthConfig
	gomock.InOrder(
		settings.EXPECT().
			Delete(ctx, model.ProviderSettingsKey).
			Return(nil),
		settings.EXPECT().
			Set(ctx, model.ProviderSettingsKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				stored = value.(model.ProviderOAuthConfig)
				return nil
			}),
	)
	roles.EXPECT().
		GetByType(ctx, model.RoleTypeAuthenticated).
		Return(authenticatedRole(), nil)
	permissions.EXPECT().
		Exists(ctx, gomock.Any(), int64(1)).
		Return(true, nil).
		AnyTimes()

	require.NoError(t, svc.Sync(ctx))

	// The stored record mirrors the code-defined configuration: any admin
	// edit to the persisted copy is gone after a restart.
	assert.True(t, stored.Enabled)
	assert.Equal(t, "client-id", stored.ClientKey)
	assert.Equal(t, "/api/connect/github/callback", stored.CallbackPath)
	assert.Equal(t, []string{"read:user", "user:email", "repo"}, stored.Scopes)
}

func TestGrantSyncService_Sync_SettingsFailureDoesNotStopSeeding(t *testing.T) {
	svc, settings, roles, permissions := newTestGrantSyncService(t)
	ctx := context.Background()

	settings.EXPECT().
		Delete(ctx, model.ProviderSettingsKey).
		Return(nil)
	settings.EXPECT().
		Set(ctx, model.ProviderSettingsKey, gomock.Any()).
		Return(errors.New("settings table missing"))
	roles.EXPECT().
		GetByType(ctx, model.RoleTypeAuthenticated).
		Return(authenticatedRole(), nil)
	permissions.EXPECT().
		Exists(ctx, gomock.Any(), int64(1)).
		Return(true, nil).
		AnyTimes()

	// Both halves run; the settings failure is reported, not fatal to seeding.
	err := svc.Sync(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings table missing")
}

func TestGrantSyncService_Sync_ClearFailureStillWrites(t *testing.T) {
	svc, settings, roles, permissions := newTestGrantSyncService(t)
	ctx := context.Background()

	// A failed clear is logged and the authoritative write still happens;
	// Set replaces the record wholesale either way.
	settings.EXPECT().
		Delete(ctx, model.ProviderSettingsKey).
		Return(errors.New("settings table locked"))
	settings.EXPECT().
		Set(ctx, model.ProviderSettingsKey, gomock.Any()).
		Return(nil)
	roles.EXPECT().
		GetByType(ctx, model.RoleTypeAuthenticated).
		Return(authenticatedRole(), nil)
	permissions.EXPECT().
		Exists(ctx, gomock.Any(), int64(1)).
		Return(true, nil).
		AnyTimes()

	require.NoError(t, svc.Sync(ctx))
}

func TestGrantSyncService_Sync_RoleLookupFailure(t *testing.T) {
	svc, settings, roles, _ := newTestGrantSyncService(t)
	ctx := context.Background()

	settings.EXPECT().
		Delete(ctx, model.ProviderSettingsKey).
		Return(nil)
	settings.EXPECT().
		Set(ctx, model.ProviderSettingsKey, gomock.Any()).
		Return(nil)
	roles.EXPECT().
		GetByType(ctx, model.RoleTypeAuthenticated).
		Return(nil, data.ErrRoleNotFound)

	err := svc.Sync(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, data.ErrRoleNotFound)
}
