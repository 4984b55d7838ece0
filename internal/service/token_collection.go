package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/dstokens/tokens-api/internal/core"
	"github.com/dstokens/tokens-api/internal/domain/model"
)

// TokenCollectionServiceOptions groups dependencies for TokenCollectionService.
type TokenCollectionServiceOptions struct {
	Collections core.TokenCollectionRepository
	Groups      core.TokenGroupRepository
	Tokens      core.TokenRepository
}

// TokenCollectionService manages token collections and their populated relations.
type TokenCollectionService struct {
	collections core.TokenCollectionRepository
	groups      core.TokenGroupRepository
	tokens      core.TokenRepository
}

// NewTokenCollectionService constructs a new TokenCollectionService.
func NewTokenCollectionService(opts TokenCollectionServiceOptions) *TokenCollectionService {
	return &TokenCollectionService{
		collections: opts.Collections,
		groups:      opts.Groups,
		tokens:      opts.Tokens,
	}
}

// Create creates a token collection.
func (s *TokenCollectionService) Create(ctx context.Context, req *model.CreateTokenCollectionRequest) (*model.TokenCollection, error) {
	return s.collections.Create(ctx, req)
}

// Get retrieves a collection, expanding the relations named in populate.
func (s *TokenCollectionService) Get(ctx context.Context, id int64, populate []string) (*model.TokenCollectionExpanded, error) {
	collection, err := s.collections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, collection, populate)
}

// List retrieves collections, expanding the relations named in opts.Populate.
func (s *TokenCollectionService) List(ctx context.Context, opts model.TokenCollectionListOptions) ([]*model.TokenCollectionExpanded, error) {
	collections, err := s.collections.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*model.TokenCollectionExpanded, 0, len(collections))
	for _, c := range collections {
		exp, expErr := s.expand(ctx, c, opts.Populate)
		if expErr != nil {
			return nil, expErr
		}
		out = append(out, exp)
	}
	return out, nil
}

// Update updates a collection.
func (s *TokenCollectionService) Update(ctx context.Context, id int64, req model.UpdateTokenCollectionRequest) (*model.TokenCollection, error) {
	return s.collections.Update(ctx, id, req)
}

// Delete deletes a collection. Groups and tokens under it go with it.
func (s *TokenCollectionService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.collections.Delete(ctx, id)
}

func (s *TokenCollectionService) expand(ctx context.Context, c *model.TokenCollection, populate []string) (*model.TokenCollectionExpanded, error) {
	out := &model.TokenCollectionExpanded{TokenCollection: *c}
	if slices.Contains(populate, "groups") {
		groups, err := s.groups.List(ctx, model.TokenGroupListOptions{CollectionID: &c.ID})
		if err != nil {
			return nil, fmt.Errorf("populate groups: %w", err)
		}
		out.Groups = groups
	}
	if slices.Contains(populate, "tokens") {
		tokens, err := s.tokens.List(ctx, model.TokenListOptions{CollectionID: &c.ID})
		if err != nil {
			return nil, fmt.Errorf("populate tokens: %w", err)
		}
		out.Tokens = tokens
	}
	return out, nil
}
