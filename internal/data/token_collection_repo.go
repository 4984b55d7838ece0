package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dstokens/tokens-api/internal/data/database"
	"github.com/dstokens/tokens-api/internal/data/pgxutil"
	"github.com/dstokens/tokens-api/internal/domain/model"
)

// TokenCollectionRepo provides database operations for token collections.
type TokenCollectionRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewTokenCollectionRepo creates a new TokenCollectionRepo with real time provider.
func NewTokenCollectionRepo(db *sql.DB) *TokenCollectionRepo {
	return &TokenCollectionRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewTokenCollectionRepoWithTimeProvider creates a TokenCollectionRepo with a custom time provider.
func NewTokenCollectionRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *TokenCollectionRepo {
	return &TokenCollectionRepo{DB: db, timeProvider: tp}
}

func tokenCollectionColumns() []string {
	return []string{
		"id",
		"document_id",
		"name",
		"key",
		"description",
		"design_system_id",
		"created_at",
		"updated_at",
	}
}

const tokenCollectionColumnList = `id, document_id, name, key, description, design_system_id, created_at, updated_at`

// Create inserts a new token collection.
func (r *TokenCollectionRepo) Create(ctx context.Context, req *model.CreateTokenCollectionRequest) (*model.TokenCollection, error) {
	if req == nil {
		return nil, errors.New("create token collection request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.TokenCollection
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO token_collections (
				document_id, name, key, description, design_system_id, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $6
			) RETURNING `+tokenCollectionColumnList,
			uuid.NewString(),
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Key),
			req.Description,
			req.DesignSystemID,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.TokenCollection])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create token collection: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a token collection by id.
func (r *TokenCollectionRepo) GetByID(ctx context.Context, id int64) (*model.TokenCollection, error) {
	var out model.TokenCollection
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+tokenCollectionColumnList+`
			FROM token_collections
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.TokenCollection])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenCollectionNotFound
		}
		return nil, fmt.Errorf("failed to get token collection: %w", err)
	}
	return &out, nil
}

// List retrieves token collections with an optional parent design-system filter.
func (r *TokenCollectionRepo) List(ctx context.Context, opts model.TokenCollectionListOptions) ([]*model.TokenCollection, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(tokenCollectionColumns()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
		database.WithOrderBy("created_at", "desc"),
	}
	if opts.DesignSystemID != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("design_system_id", database.Equal, *opts.DesignSystemID),
		))
	}
	query, args := database.BuildListQuery(database.NewListQueryOptions("token_collections", queryOpts...))

	var rowsOut []model.TokenCollection
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.TokenCollection])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list token collections: %w", err)
	}

	res := make([]*model.TokenCollection, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a token collection.
func (r *TokenCollectionRepo) Update(ctx context.Context, id int64, req model.UpdateTokenCollectionRequest) (*model.TokenCollection, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 4)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Key != nil {
		setParts = append(setParts, fmt.Sprintf("key = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Key))
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	args = append(args, id)

	query := "UPDATE token_collections SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + tokenCollectionColumnList

	var out model.TokenCollection
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.TokenCollection])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenCollectionNotFound
		}
		return nil, fmt.Errorf("failed to update token collection: %w", err)
	}
	return &out, nil
}

// Delete deletes a token collection by id. Groups and tokens cascade at the
// schema level.
func (r *TokenCollectionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM token_collections WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete token collection: %w", err)
	}
	return rows > 0, nil
}
