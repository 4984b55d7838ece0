// Package mocks provides mock implementations for testing the tokens API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockUserRepository(ctrl)
//	mockRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
package mocks

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// GetByID, GetByEmail, Create, Update
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/dstokens/tokens-api/internal/core UserRepository

// Generate mock for RoleRepository interface from internal/core package.
// This creates MockRoleRepository with methods for all RoleRepository interface methods:
// GetByType
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=role_repository_mock.go github.com/dstokens/tokens-api/internal/core RoleRepository

// Generate mock for PermissionRepository interface from internal/core package.
// This creates MockPermissionRepository with methods for all PermissionRepository interface methods:
// Exists, Create, ListByRole
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=permission_repository_mock.go github.com/dstokens/tokens-api/internal/core PermissionRepository

// Generate mock for SettingsRepository interface from internal/core package.
// This creates MockSettingsRepository with methods for all SettingsRepository interface methods:
// Get, Set, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=settings_repository_mock.go github.com/dstokens/tokens-api/internal/core SettingsRepository

// Generate mock for DesignSystemRepository interface from internal/core package.
// This creates MockDesignSystemRepository with methods for all DesignSystemRepository interface methods:
// GetByID, GetByRepo, List, Create
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=design_system_repository_mock.go github.com/dstokens/tokens-api/internal/core DesignSystemRepository

// Generate mock for TokenCollectionRepository interface from internal/core package.
// This creates MockTokenCollectionRepository with methods for all TokenCollectionRepository interface methods:
// Create, GetByID, List, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=token_collection_repository_mock.go github.com/dstokens/tokens-api/internal/core TokenCollectionRepository

// Generate mock for TokenGroupRepository interface from internal/core package.
// This creates MockTokenGroupRepository with methods for all TokenGroupRepository interface methods:
// Create, GetByID, GetByName, List, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=token_group_repository_mock.go github.com/dstokens/tokens-api/internal/core TokenGroupRepository

// Generate mock for TokenRepository interface from internal/core package.
// This creates MockTokenRepository with methods for all TokenRepository interface methods:
// Create, GetByID, List, Update, Delete, ListLegacyGrouped, AssignGroup
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=token_repository_mock.go github.com/dstokens/tokens-api/internal/core TokenRepository
