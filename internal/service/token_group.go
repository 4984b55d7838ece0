package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/dstokens/tokens-api/internal/core"
	"github.com/dstokens/tokens-api/internal/domain/model"
)

// TokenGroupServiceOptions groups dependencies for TokenGroupService.
type TokenGroupServiceOptions struct {
	Groups core.TokenGroupRepository
	Tokens core.TokenRepository
}

// TokenGroupService manages token groups.
type TokenGroupService struct {
	groups core.TokenGroupRepository
	tokens core.TokenRepository
}

// NewTokenGroupService constructs a new TokenGroupService.
func NewTokenGroupService(opts TokenGroupServiceOptions) *TokenGroupService {
	return &TokenGroupService{groups: opts.Groups, tokens: opts.Tokens}
}

// Create creates a token group.
func (s *TokenGroupService) Create(ctx context.Context, req *model.CreateTokenGroupRequest) (*model.TokenGroup, error) {
	return s.groups.Create(ctx, req)
}

// Get retrieves a group, expanding tokens when asked to populate them.
func (s *TokenGroupService) Get(ctx context.Context, id int64, populate []string) (*model.TokenGroupExpanded, error) {
	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, group, populate)
}

// List retrieves groups, expanding tokens when asked to populate them.
func (s *TokenGroupService) List(ctx context.Context, opts model.TokenGroupListOptions) ([]*model.TokenGroupExpanded, error) {
	groups, err := s.groups.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*model.TokenGroupExpanded, 0, len(groups))
	for _, g := range groups {
		exp, expErr := s.expand(ctx, g, opts.Populate)
		if expErr != nil {
			return nil, expErr
		}
		out = append(out, exp)
	}
	return out, nil
}

// Update updates a group.
func (s *TokenGroupService) Update(ctx context.Context, id int64, req model.UpdateTokenGroupRequest) (*model.TokenGroup, error) {
	return s.groups.Update(ctx, id, req)
}

// Delete deletes a group. Member tokens stay, ungrouped.
func (s *TokenGroupService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.groups.Delete(ctx, id)
}

func (s *TokenGroupService) expand(ctx context.Context, g *model.TokenGroup, populate []string) (*model.TokenGroupExpanded, error) {
	out := &model.TokenGroupExpanded{TokenGroup: *g}
	if slices.Contains(populate, "tokens") {
		tokens, err := s.tokens.List(ctx, model.TokenListOptions{GroupID: &g.ID})
		if err != nil {
			return nil, fmt.Errorf("populate tokens: %w", err)
		}
		out.Tokens = tokens
	}
	return out, nil
}
