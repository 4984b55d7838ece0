package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dstokens/tokens-api/internal/data"
	"github.com/dstokens/tokens-api/internal/domain/model"
	"github.com/dstokens/tokens-api/internal/mocks"
)

func newTestTokenCollectionService(t *testing.T) (*TokenCollectionService, *mocks.MockTokenCollectionRepository, *mocks.MockTokenGroupRepository, *mocks.MockTokenRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	collections := mocks.NewMockTokenCollectionRepository(ctrl)
	groups := mocks.NewMockTokenGroupRepository(ctrl)
	tokens := mocks.NewMockTokenRepository(ctrl)

	svc := NewTokenCollectionService(TokenCollectionServiceOptions{
		Collections: collections,
		Groups:      groups,
		Tokens:      tokens,
	})
	return svc, collections, groups, tokens
}

func TestTokenCollectionService_Get_NoPopulate(t *testing.T) {
	svc, collections, _, _ := newTestTokenCollectionService(t)
	ctx := context.Background()

	collections.EXPECT().
		GetByID(ctx, int64(1)).
		Return(&model.TokenCollection{ID: 1, Name: "Colors", Key: "colors"}, nil)

	got, err := svc.Get(ctx, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "colors", got.Key)
	assert.Nil(t, got.Groups)
	assert.Nil(t, got.Tokens)
}

func TestTokenCollectionService_Get_PopulateGroupsAndTokens(t *testing.T) {
	svc, collections, groups, tokens := newTestTokenCollectionService(t)
	ctx := context.Background()

	collection := &model.TokenCollection{ID: 1, Name: "Colors", Key: "colors"}
	collections.EXPECT().
		GetByID(ctx, int64(1)).
		Return(collection, nil)
	groups.EXPECT().
		List(ctx, model.TokenGroupListOptions{CollectionID: &collection.ID}).
		Return([]*model.TokenGroup{{ID: 10, Name: "Brand"}}, nil)
	tokens.EXPECT().
		List(ctx, model.TokenListOptions{CollectionID: &collection.ID}).
		Return([]*model.Token{{ID: 100, Name: "primary"}}, nil)

	got, err := svc.Get(ctx, 1, []string{"groups", "tokens"})
	require.NoError(t, err)
	require.Len(t, got.Groups, 1)
	require.Len(t, got.Tokens, 1)
	assert.Equal(t, "Brand", got.Groups[0].Name)
	assert.Equal(t, "primary", got.Tokens[0].Name)
}

func TestTokenCollectionService_Get_UnknownPopulateIgnored(t *testing.T) {
	svc, collections, _, _ := newTestTokenCollectionService(t)
	ctx := context.Background()

	collections.EXPECT().
		GetByID(ctx, int64(1)).
		Return(&model.TokenCollection{ID: 1}, nil)

	got, err := svc.Get(ctx, 1, []string{"something-else"})
	require.NoError(t, err)
	assert.Nil(t, got.Groups)
	assert.Nil(t, got.Tokens)
}

func TestTokenCollectionService_Get_NotFound(t *testing.T) {
	svc, collections, _, _ := newTestTokenCollectionService(t)

	collections.EXPECT().
		GetByID(gomock.Any(), int64(404)).
		Return(nil, data.ErrTokenCollectionNotFound)

	_, err := svc.Get(context.Background(), 404, nil)
	assert.ErrorIs(t, err, data.ErrTokenCollectionNotFound)
}

func TestTokenCollectionService_List_PopulatesEachRow(t *testing.T) {
	svc, collections, groups, _ := newTestTokenCollectionService(t)
	ctx := context.Background()

	designSystemID := int64(7)
	opts := model.TokenCollectionListOptions{
		DesignSystemID: &designSystemID,
		Populate:       []string{"groups"},
	}

	rows := []*model.TokenCollection{{ID: 1}, {ID: 2}}
	collections.EXPECT().
		List(ctx, opts).
		Return(rows, nil)
	groups.EXPECT().
		List(ctx, model.TokenGroupListOptions{CollectionID: &rows[0].ID}).
		Return([]*model.TokenGroup{{ID: 11}}, nil)
	groups.EXPECT().
		List(ctx, model.TokenGroupListOptions{CollectionID: &rows[1].ID}).
		Return(nil, nil)

	got, err := svc.List(ctx, opts)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0].Groups, 1)
	assert.Empty(t, got[1].Groups)
}

func TestTokenCollectionService_Delete_Passthrough(t *testing.T) {
	svc, collections, _, _ := newTestTokenCollectionService(t)
	ctx := context.Background()

	collections.EXPECT().
		Delete(ctx, int64(3)).
		Return(true, nil)

	deleted, err := svc.Delete(ctx, 3)
	require.NoError(t, err)
	assert.True(t, deleted)
}
