package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dstokens/tokens-api/internal/core"
	"github.com/dstokens/tokens-api/internal/data"
	"github.com/dstokens/tokens-api/internal/domain/model"
)

// defaultCollections are seeded into every newly connected design system.
func defaultCollections() []model.CreateTokenCollectionRequest {
	return []model.CreateTokenCollectionRequest{
		{Name: "Colors", Key: "colors", Description: "Color palette tokens"},
		{Name: "Typography", Key: "typography", Description: "Typography tokens"},
		{Name: "Spacing", Key: "spacing", Description: "Spacing scale tokens"},
	}
}

// DesignSystemServiceOptions groups dependencies for DesignSystemService.
type DesignSystemServiceOptions struct {
	DesignSystems core.DesignSystemRepository
	Collections   core.TokenCollectionRepository
	Logger        *slog.Logger
}

// DesignSystemService manages design systems connected to GitHub repositories.
type DesignSystemService struct {
	designSystems core.DesignSystemRepository
	collections   core.TokenCollectionRepository
	logger        *slog.Logger
}

// NewDesignSystemService constructs a new DesignSystemService.
func NewDesignSystemService(opts DesignSystemServiceOptions) *DesignSystemService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DesignSystemService{
		designSystems: opts.DesignSystems,
		collections:   opts.Collections,
		logger:        logger.With("component", "design_system_service"),
	}
}

// Connect finds or creates the design system for a repository. First connect
// also seeds the default collections; a concurrent create losing the race
// falls back to the winner's record.
func (s *DesignSystemService) Connect(ctx context.Context, req *model.ConnectDesignSystemRequest) (*model.DesignSystem, error) {
	if req == nil {
		return nil, errors.New("connect request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.designSystems.GetByRepo(ctx, req.RepoOwner, req.RepoName)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, data.ErrDesignSystemNotFound) {
		return nil, fmt.Errorf("lookup design system: %w", err)
	}

	created, err := s.designSystems.Create(ctx, req)
	if err != nil {
		if errors.Is(err, data.ErrDesignSystemRepoExists) {
			return s.designSystems.GetByRepo(ctx, req.RepoOwner, req.RepoName)
		}
		return nil, fmt.Errorf("create design system: %w", err)
	}

	s.seedDefaultCollections(ctx, created.ID)
	s.logger.InfoContext(ctx, "connected design system",
		"id", created.ID, "repo", req.RepoOwner+"/"+req.RepoName)
	return created, nil
}

// seedDefaultCollections creates the starter collections. Best effort; a
// partial seed leaves the design system usable.
func (s *DesignSystemService) seedDefaultCollections(ctx context.Context, designSystemID int64) {
	for _, req := range defaultCollections() {
		req.DesignSystemID = designSystemID
		if _, err := s.collections.Create(ctx, &req); err != nil {
			s.logger.ErrorContext(ctx, "failed to seed default collection",
				"design_system_id", designSystemID, "key", req.Key, "err", err)
		}
	}
}

// Get retrieves a design system by id.
func (s *DesignSystemService) Get(ctx context.Context, id int64) (*model.DesignSystem, error) {
	return s.designSystems.GetByID(ctx, id)
}

// List retrieves design systems.
func (s *DesignSystemService) List(ctx context.Context, limit, offset int) ([]*model.DesignSystem, error) {
	return s.designSystems.List(ctx, limit, offset)
}
