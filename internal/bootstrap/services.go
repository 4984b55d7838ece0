package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dstokens/tokens-api/config"
	"github.com/dstokens/tokens-api/internal/adapters/github"
	"github.com/dstokens/tokens-api/internal/adapters/redisstore"
	"github.com/dstokens/tokens-api/internal/adapters/sessionjwt"
	"github.com/dstokens/tokens-api/internal/data"
	"github.com/dstokens/tokens-api/internal/service"
)

// Repositories bundles the data-layer repositories.
type Repositories struct {
	Users         *data.UserRepo
	Roles         *data.RoleRepo
	Permissions   *data.PermissionRepo
	Settings      *data.SettingsRepo
	DesignSystems *data.DesignSystemRepo
	Collections   *data.TokenCollectionRepo
	Groups        *data.TokenGroupRepo
	Tokens        *data.TokenRepo
}

// NewRepositories constructs all repositories over a shared connection pool.
func NewRepositories(db *sql.DB) Repositories {
	return Repositories{
		Users:         data.NewUserRepo(db),
		Roles:         data.NewRoleRepo(db),
		Permissions:   data.NewPermissionRepo(db),
		Settings:      data.NewSettingsRepo(db),
		DesignSystems: data.NewDesignSystemRepo(db),
		Collections:   data.NewTokenCollectionRepo(db),
		Groups:        data.NewTokenGroupRepo(db),
		Tokens:        data.NewTokenRepo(db),
	}
}

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth        *service.AuthService
	GrantSync   *service.GrantSyncService
	GitHubProxy *service.GitHubProxyService
	Designs     *service.DesignSystemService
	Collections *service.TokenCollectionService
	Groups      *service.TokenGroupService
	Tokens      *service.TokenService
	Migration   *service.GroupMigrationService

	Sessions *sessionjwt.Issuer
	Repos    Repositories
}

// ServicesConfig groups inputs for BuildServices.
type ServicesConfig struct {
	Config *config.AppConfig
	DB     *sql.DB
	Redis  *redis.Client
	Logger *slog.Logger
}

// BuildServices wires adapters, repositories, and services.
func BuildServices(cfg ServicesConfig) (*ServiceContainer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repos := NewRepositories(cfg.DB)

	ghClient, err := github.NewClient(github.Config{
		ClientID:     cfg.Config.Auth.GitHub.ClientID,
		ClientSecret: cfg.Config.Auth.GitHub.ClientSecret,
		RedirectURI:  cfg.Config.Auth.GitHub.RedirectURI,
		Scopes:       cfg.Config.Auth.GitHub.ScopeList(),
		APIBaseURL:   cfg.Config.Auth.GitHub.APIBaseURL,
		Timeout:      cfg.Config.Auth.ProviderTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create github client: %w", err)
	}

	sessions, err := sessionjwt.NewIssuer(sessionjwt.Config{
		Secret: cfg.Config.Auth.Session.Secret,
		TTL:    cfg.Config.Auth.Session.TTL,
	})
	if err != nil {
		return nil, fmt.Errorf("create session issuer: %w", err)
	}

	returnPaths := redisstore.NewReturnPathStore(cfg.Redis, cfg.Config.Auth.ReturnPathTTL)

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Grant:       ghClient,
		Provider:    ghClient,
		Sessions:    sessions,
		ReturnPaths: returnPaths,
		Users:       repos.Users,
		Roles:       repos.Roles,
		FrontendURL: cfg.Config.Auth.FrontendURL,
		Logger:      logger,
	})

	grantSync := service.NewGrantSyncService(service.GrantSyncServiceOptions{
		Settings:    repos.Settings,
		Roles:       repos.Roles,
		Permissions: repos.Permissions,
		OAuth:       cfg.Config.Auth.GitHub,
		Logger:      logger,
	})

	collectionsSvc := service.NewTokenCollectionService(service.TokenCollectionServiceOptions{
		Collections: repos.Collections,
		Groups:      repos.Groups,
		Tokens:      repos.Tokens,
	})

	return &ServiceContainer{
		Auth:        authSvc,
		GrantSync:   grantSync,
		GitHubProxy: service.NewGitHubProxyService(service.GitHubProxyServiceOptions{Provider: ghClient}),
		Designs: service.NewDesignSystemService(service.DesignSystemServiceOptions{
			DesignSystems: repos.DesignSystems,
			Collections:   repos.Collections,
			Logger:        logger,
		}),
		Collections: collectionsSvc,
		Groups: service.NewTokenGroupService(service.TokenGroupServiceOptions{
			Groups: repos.Groups,
			Tokens: repos.Tokens,
		}),
		Tokens: service.NewTokenService(service.TokenServiceOptions{Tokens: repos.Tokens}),
		Migration: service.NewGroupMigrationService(service.GroupMigrationServiceOptions{
			Tokens: repos.Tokens,
			Groups: repos.Groups,
			Logger: logger,
		}),
		Sessions: sessions,
		Repos:    repos,
	}, nil
}

// RunStartupTasks runs the startup reconciliation: provider settings and
// permission sync, then the legacy group-path migration. Failures are logged
// and never abort startup.
func RunStartupTasks(ctx context.Context, services *ServiceContainer, logger *slog.Logger) {
	if err := services.GrantSync.Sync(ctx); err != nil {
		logger.ErrorContext(ctx, "grant sync failed", "err", err)
	}
	if _, err := services.Migration.Run(ctx); err != nil {
		logger.ErrorContext(ctx, "group path migration failed", "err", err)
	}
}
