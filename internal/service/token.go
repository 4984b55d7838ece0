package service

import (
	"context"

	"github.com/dstokens/tokens-api/internal/core"
	"github.com/dstokens/tokens-api/internal/domain/model"
)

// TokenServiceOptions groups dependencies for TokenService.
type TokenServiceOptions struct {
	Tokens core.TokenRepository
}

// TokenService manages individual design tokens.
type TokenService struct {
	tokens core.TokenRepository
}

// NewTokenService constructs a new TokenService.
func NewTokenService(opts TokenServiceOptions) *TokenService {
	return &TokenService{tokens: opts.Tokens}
}

// Create creates a token.
func (s *TokenService) Create(ctx context.Context, req *model.CreateTokenRequest) (*model.Token, error) {
	return s.tokens.Create(ctx, req)
}

// Get retrieves a token by id.
func (s *TokenService) Get(ctx context.Context, id int64) (*model.Token, error) {
	return s.tokens.GetByID(ctx, id)
}

// List retrieves tokens with optional parent filters.
func (s *TokenService) List(ctx context.Context, opts model.TokenListOptions) ([]*model.Token, error) {
	return s.tokens.List(ctx, opts)
}

// Update updates a token.
func (s *TokenService) Update(ctx context.Context, id int64, req model.UpdateTokenRequest) (*model.Token, error) {
	return s.tokens.Update(ctx, id, req)
}

// Delete deletes a token.
func (s *TokenService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.tokens.Delete(ctx, id)
}
