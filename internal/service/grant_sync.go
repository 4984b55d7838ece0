package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dstokens/tokens-api/config"
	"github.com/dstokens/tokens-api/internal/core"
	"github.com/dstokens/tokens-api/internal/data"
	"github.com/dstokens/tokens-api/internal/domain/model"
)

// grantedActions is the single authoritative list of permission actions
// seeded onto the authenticated role at startup.
func grantedActions() []string {
	return []string{
		"api::github.github.createRepo",
		"api::github.github.listRepos",
		"api::design-system.design-system.connect",
		"api::design-system.design-system.find",
		"api::design-system.design-system.findOne",
		"api::token-collection.token-collection.find",
		"api::token-collection.token-collection.findOne",
		"api::token-collection.token-collection.create",
		"api::token-collection.token-collection.update",
		"api::token-collection.token-collection.delete",
		"api::token-group.token-group.find",
		"api::token-group.token-group.findOne",
		"api::token-group.token-group.create",
		"api::token-group.token-group.update",
		"api::token-group.token-group.delete",
		"api::token.token.find",
		"api::token.token.findOne",
		"api::token.token.create",
		"api::token.token.update",
		"api::token.token.delete",
		"plugin::users-permissions.user.me",
	}
}

// GrantSyncServiceOptions groups dependencies for GrantSyncService.
type GrantSyncServiceOptions struct {
	Settings    core.SettingsRepository
	Roles       core.RoleRepository
	Permissions core.PermissionRepository
	OAuth       config.GitHubOAuthConfig
	Logger      *slog.Logger
}

// GrantSyncService reconciles persisted authorization state with the
// code-defined configuration at startup. Stored provider settings are
// overwritten wholesale and missing permission grants are created; nothing
// here ever aborts startup.
type GrantSyncService struct {
	settings    core.SettingsRepository
	roles       core.RoleRepository
	permissions core.PermissionRepository
	oauth       config.GitHubOAuthConfig
	logger      *slog.Logger
}

// NewGrantSyncService constructs a new GrantSyncService.
func NewGrantSyncService(opts GrantSyncServiceOptions) *GrantSyncService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &GrantSyncService{
		settings:    opts.Settings,
		roles:       opts.Roles,
		permissions: opts.Permissions,
		oauth:       opts.OAuth,
		logger:      logger.With("component", "grant_sync"),
	}
}

// Sync overwrites the provider settings record and seeds permission grants.
// Failures are logged and reported but callers treat them as non-fatal.
func (s *GrantSyncService) Sync(ctx context.Context) error {
	var errs []error
	if err := s.syncProviderSettings(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to sync provider settings", "err", err)
		errs = append(errs, err)
	}
	if err := s.seedPermissions(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to seed permissions", "err", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// syncProviderSettings replaces the stored provider configuration with the
// code-defined values. Admin edits to the stored copy never survive a restart.
func (s *GrantSyncService) syncProviderSettings(ctx context.Context) error {
	record := model.ProviderOAuthConfig{
		Enabled:      s.oauth.Enabled,
		ClientKey:    s.oauth.ClientID,
		ClientSecret: s.oauth.ClientSecret,
		CallbackPath: s.oauth.CallbackPath,
		RedirectURI:  s.oauth.RedirectURI,
		Scopes:       s.oauth.ScopeList(),
	}
	// Clear the stored copy first so an admin-edited record with fields the
	// current schema no longer carries cannot linger under the key.
	if err := s.settings.Delete(ctx, model.ProviderSettingsKey); err != nil {
		s.logger.WarnContext(ctx, "failed to clear stored provider settings", "err", err)
	}
	if err := s.settings.Set(ctx, model.ProviderSettingsKey, record); err != nil {
		return fmt.Errorf("store provider settings: %w", err)
	}
	s.logger.InfoContext(ctx, "provider settings synchronized", "enabled", record.Enabled)
	return nil
}

// seedPermissions grants every authoritative action to the authenticated
// role. Exists+Create per action keeps reruns idempotent; a duplicate racing
// in from a concurrent startup maps to ErrPermissionExists and is ignored.
func (s *GrantSyncService) seedPermissions(ctx context.Context) error {
	role, err := s.roles.GetByType(ctx, model.RoleTypeAuthenticated)
	if err != nil {
		return fmt.Errorf("resolve authenticated role: %w", err)
	}

	var created int
	for _, action := range grantedActions() {
		exists, existsErr := s.permissions.Exists(ctx, action, role.ID)
		if existsErr != nil {
			return fmt.Errorf("check permission %s: %w", action, existsErr)
		}
		if exists {
			continue
		}
		if _, createErr := s.permissions.Create(ctx, action, role.ID); createErr != nil {
			if errors.Is(createErr, data.ErrPermissionExists) {
				continue
			}
			return fmt.Errorf("create permission %s: %w", action, createErr)
		}
		created++
	}
	if created > 0 {
		s.logger.InfoContext(ctx, "seeded permission grants", "created", created, "role_id", role.ID)
	}
	return nil
}
