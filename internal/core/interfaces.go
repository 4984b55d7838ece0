package core

import (
	"context"

	"github.com/dstokens/tokens-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// UserRepository defines the interface for local user records. The callback
// orchestrator upserts through GetByEmail + Create/Update; email is the key.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, params model.UpsertUserParams) (*model.User, error)
	Update(ctx context.Context, id int64, params model.UpsertUserParams) (*model.User, error)
}

// RoleRepository resolves roles by their stable type key.
type RoleRepository interface {
	GetByType(ctx context.Context, roleType string) (*model.Role, error)
}

// PermissionRepository defines the interface for permission grant records.
// Exists+Create is the idempotent seeding pair; a rare duplicate from
// concurrent startups is tolerated, not guarded against.
type PermissionRepository interface {
	Exists(ctx context.Context, action string, roleID int64) (bool, error)
	Create(ctx context.Context, action string, roleID int64) (*model.PermissionGrant, error)
	ListByRole(ctx context.Context, roleID int64) ([]*model.PermissionGrant, error)
}

// SettingsRepository is generic key/value storage for namespaced settings
// records (JSON-encoded), mirroring the CMS core store this replaces.
type SettingsRepository interface {
	Get(ctx context.Context, key string, dst any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// DesignSystemRepository defines the interface for design system records.
type DesignSystemRepository interface {
	GetByID(ctx context.Context, id int64) (*model.DesignSystem, error)
	GetByRepo(ctx context.Context, repoOwner, repoName string) (*model.DesignSystem, error)
	List(ctx context.Context, limit, offset int) ([]*model.DesignSystem, error)
	Create(ctx context.Context, req *model.ConnectDesignSystemRequest) (*model.DesignSystem, error)
}

// TokenCollectionRepository defines the interface for token collection records.
type TokenCollectionRepository interface {
	Create(ctx context.Context, req *model.CreateTokenCollectionRequest) (*model.TokenCollection, error)
	GetByID(ctx context.Context, id int64) (*model.TokenCollection, error)
	List(ctx context.Context, opts model.TokenCollectionListOptions) ([]*model.TokenCollection, error)
	Update(ctx context.Context, id int64, req model.UpdateTokenCollectionRequest) (*model.TokenCollection, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TokenGroupRepository defines the interface for token group records.
type TokenGroupRepository interface {
	Create(ctx context.Context, req *model.CreateTokenGroupRequest) (*model.TokenGroup, error)
	GetByID(ctx context.Context, id int64) (*model.TokenGroup, error)
	GetByName(ctx context.Context, collectionID int64, name string) (*model.TokenGroup, error)
	List(ctx context.Context, opts model.TokenGroupListOptions) ([]*model.TokenGroup, error)
	Update(ctx context.Context, id int64, req model.UpdateTokenGroupRequest) (*model.TokenGroup, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TokenRepository defines the interface for token records.
type TokenRepository interface {
	Create(ctx context.Context, req *model.CreateTokenRequest) (*model.Token, error)
	GetByID(ctx context.Context, id int64) (*model.Token, error)
	List(ctx context.Context, opts model.TokenListOptions) ([]*model.Token, error)
	Update(ctx context.Context, id int64, req model.UpdateTokenRequest) (*model.Token, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// ListLegacyGrouped returns tokens carrying a legacy group_path but no
	// group relation; AssignGroup attaches one. Both exist for the startup
	// group-path migration.
	ListLegacyGrouped(ctx context.Context) ([]*model.Token, error)
	AssignGroup(ctx context.Context, tokenID, groupID int64) error
}
