package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dstokens/tokens-api/internal/data/database"
	"github.com/dstokens/tokens-api/internal/data/pgxutil"
	"github.com/dstokens/tokens-api/internal/domain/model"
)

// TokenGroupRepo provides database operations for token groups.
type TokenGroupRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewTokenGroupRepo creates a new TokenGroupRepo with real time provider.
func NewTokenGroupRepo(db *sql.DB) *TokenGroupRepo {
	return &TokenGroupRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewTokenGroupRepoWithTimeProvider creates a TokenGroupRepo with a custom time provider.
func NewTokenGroupRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *TokenGroupRepo {
	return &TokenGroupRepo{DB: db, timeProvider: tp}
}

func tokenGroupColumns() []string {
	return []string{
		"id",
		"document_id",
		"name",
		"slug",
		"collection_id",
		"created_at",
		"updated_at",
	}
}

const tokenGroupColumnList = `id, document_id, name, slug, collection_id, created_at, updated_at`

// Create inserts a new token group. (collection_id, name) is unique.
func (r *TokenGroupRepo) Create(ctx context.Context, req *model.CreateTokenGroupRequest) (*model.TokenGroup, error) {
	if req == nil {
		return nil, errors.New("create token group request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.TokenGroup
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO token_groups (
				document_id, name, slug, collection_id, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $5
			) RETURNING `+tokenGroupColumnList,
			uuid.NewString(),
			req.Name,
			req.Slug,
			req.CollectionID,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.TokenGroup])
		return err
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrTokenGroupNameExists
		}
		return nil, fmt.Errorf("failed to create token group: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a token group by id.
func (r *TokenGroupRepo) GetByID(ctx context.Context, id int64) (*model.TokenGroup, error) {
	return r.getByQuery(ctx, `
		SELECT `+tokenGroupColumnList+`
		FROM token_groups
		WHERE id = $1`, id)
}

// GetByName retrieves a token group by its name within a collection. Used by
// the legacy group_path migration to find-or-create groups.
func (r *TokenGroupRepo) GetByName(ctx context.Context, collectionID int64, name string) (*model.TokenGroup, error) {
	return r.getByQuery(ctx, `
		SELECT `+tokenGroupColumnList+`
		FROM token_groups
		WHERE collection_id = $1 AND name = $2`, collectionID, name)
}

// List retrieves token groups with an optional parent collection filter.
func (r *TokenGroupRepo) List(ctx context.Context, opts model.TokenGroupListOptions) ([]*model.TokenGroup, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(tokenGroupColumns()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
		database.WithOrderBy("created_at", "desc"),
	}
	if opts.CollectionID != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("collection_id", database.Equal, *opts.CollectionID),
		))
	}
	query, args := database.BuildListQuery(database.NewListQueryOptions("token_groups", queryOpts...))

	var rowsOut []model.TokenGroup
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.TokenGroup])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list token groups: %w", err)
	}

	res := make([]*model.TokenGroup, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a token group.
func (r *TokenGroupRepo) Update(ctx context.Context, id int64, req model.UpdateTokenGroupRequest) (*model.TokenGroup, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 3)
	args := make([]any, 0, 4)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Slug != nil {
		setParts = append(setParts, fmt.Sprintf("slug = $%d", nextIdx()))
		args = append(args, *req.Slug)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	args = append(args, id)

	query := "UPDATE token_groups SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + tokenGroupColumnList

	var out model.TokenGroup
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.TokenGroup])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenGroupNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrTokenGroupNameExists
		}
		return nil, fmt.Errorf("failed to update token group: %w", err)
	}
	return &out, nil
}

// Delete deletes a token group by id. Tokens in the group keep their row and
// lose the group reference at the schema level.
func (r *TokenGroupRepo) Delete(ctx context.Context, id int64) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM token_groups WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete token group: %w", err)
	}
	return rows > 0, nil
}

func (r *TokenGroupRepo) getByQuery(ctx context.Context, query string, args ...any) (*model.TokenGroup, error) {
	var out model.TokenGroup
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.TokenGroup])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenGroupNotFound
		}
		return nil, fmt.Errorf("failed to get token group: %w", err)
	}
	return &out, nil
}
