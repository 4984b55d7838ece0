package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dstokens/tokens-api/internal/core"
	"github.com/dstokens/tokens-api/internal/data"
	"github.com/dstokens/tokens-api/internal/domain/model"
)

// GroupMigrationServiceOptions groups dependencies for GroupMigrationService.
type GroupMigrationServiceOptions struct {
	Tokens core.TokenRepository
	Groups core.TokenGroupRepository
	Logger *slog.Logger
}

// GroupMigrationService moves tokens carrying a legacy group_path into real
// token groups at startup. Groups are created on demand per (collection,
// path); every step is best effort and logged, never fatal.
type GroupMigrationService struct {
	tokens core.TokenRepository
	groups core.TokenGroupRepository
	logger *slog.Logger
}

// NewGroupMigrationService constructs a new GroupMigrationService.
func NewGroupMigrationService(opts GroupMigrationServiceOptions) *GroupMigrationService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &GroupMigrationService{
		tokens: opts.Tokens,
		groups: opts.Groups,
		logger: logger.With("component", "group_migration"),
	}
}

// Run migrates all legacy-grouped tokens. Returns the number of tokens moved.
func (s *GroupMigrationService) Run(ctx context.Context) (int, error) {
	legacy, err := s.tokens.ListLegacyGrouped(ctx)
	if err != nil {
		return 0, err
	}
	if len(legacy) == 0 {
		return 0, nil
	}

	type groupKey struct {
		collectionID int64
		path         string
	}
	resolved := make(map[groupKey]int64)

	var migrated int
	for _, token := range legacy {
		if token.GroupPath == nil || *token.GroupPath == "" {
			continue
		}
		key := groupKey{collectionID: token.CollectionID, path: *token.GroupPath}
		groupID, ok := resolved[key]
		if !ok {
			id, resolveErr := s.resolveGroup(ctx, key.collectionID, key.path)
			if resolveErr != nil {
				s.logger.ErrorContext(ctx, "failed to resolve group for legacy token",
					"token_id", token.ID, "group_path", key.path, "err", resolveErr)
				continue
			}
			groupID = id
			resolved[key] = id
		}

		if assignErr := s.tokens.AssignGroup(ctx, token.ID, groupID); assignErr != nil {
			s.logger.ErrorContext(ctx, "failed to assign token to group",
				"token_id", token.ID, "group_id", groupID, "err", assignErr)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		s.logger.InfoContext(ctx, "migrated legacy grouped tokens", "migrated", migrated)
	}
	return migrated, nil
}

// resolveGroup finds or creates the group named after a legacy path within a
// collection. A create losing to a concurrent duplicate re-reads the winner.
func (s *GroupMigrationService) resolveGroup(ctx context.Context, collectionID int64, path string) (int64, error) {
	existing, err := s.groups.GetByName(ctx, collectionID, path)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, data.ErrTokenGroupNotFound) {
		return 0, err
	}

	created, err := s.groups.Create(ctx, &model.CreateTokenGroupRequest{
		Name:         path,
		CollectionID: collectionID,
	})
	if err != nil {
		if errors.Is(err, data.ErrTokenGroupNameExists) {
			winner, getErr := s.groups.GetByName(ctx, collectionID, path)
			if getErr != nil {
				return 0, getErr
			}
			return winner.ID, nil
		}
		return 0, err
	}
	return created.ID, nil
}
