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

// TokenRepo provides database operations for design tokens.
type TokenRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewTokenRepo creates a new TokenRepo with real time provider.
func NewTokenRepo(db *sql.DB) *TokenRepo {
	return &TokenRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewTokenRepoWithTimeProvider creates a TokenRepo with a custom time provider.
func NewTokenRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *TokenRepo {
	return &TokenRepo{DB: db, timeProvider: tp}
}

func tokenColumns() []string {
	return []string{
		"id",
		"document_id",
		"name",
		"value",
		"type",
		"description",
		"group_path",
		"collection_id",
		"group_id",
		"created_at",
		"updated_at",
	}
}

const tokenColumnList = `id, document_id, name, value, type, description, group_path, collection_id, group_id, created_at, updated_at`

// Create inserts a new token.
func (r *TokenRepo) Create(ctx context.Context, req *model.CreateTokenRequest) (*model.Token, error) {
	if req == nil {
		return nil, errors.New("create token request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Token
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO tokens (
				document_id, name, value, type, description, collection_id, group_id, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $8
			) RETURNING `+tokenColumnList,
			uuid.NewString(),
			strings.TrimSpace(req.Name),
			req.Value,
			req.Type,
			req.Description,
			req.CollectionID,
			req.GroupID,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Token])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a token by id.
func (r *TokenRepo) GetByID(ctx context.Context, id int64) (*model.Token, error) {
	var out model.Token
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+tokenColumnList+`
			FROM tokens
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Token])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return &out, nil
}

// List retrieves tokens with optional parent-id filters.
func (r *TokenRepo) List(ctx context.Context, opts model.TokenListOptions) ([]*model.Token, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(tokenColumns()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
		database.WithOrderBy("created_at", "desc"),
	}
	if opts.CollectionID != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("collection_id", database.Equal, *opts.CollectionID),
		))
	}
	if opts.GroupID != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("group_id", database.Equal, *opts.GroupID),
		))
	}
	query, args := database.BuildListQuery(database.NewListQueryOptions("tokens", queryOpts...))

	var rowsOut []model.Token
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Token])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	res := make([]*model.Token, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListLegacyGrouped retrieves tokens that carry a legacy group_path but have
// no group assignment, keyed by (collection_id, group_path). The startup
// migration walks this set.
func (r *TokenRepo) ListLegacyGrouped(ctx context.Context) ([]*model.Token, error) {
	var rowsOut []model.Token
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+tokenColumnList+`
			FROM tokens
			WHERE group_path IS NOT NULL
			  AND group_path <> ''
			  AND group_id IS NULL
			ORDER BY collection_id, group_path, id`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Token])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list legacy grouped tokens: %w", err)
	}

	res := make([]*model.Token, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// AssignGroup attaches a token to a group and clears its legacy group_path.
func (r *TokenRepo) AssignGroup(ctx context.Context, tokenID, groupID int64) error {
	now := r.timeProvider.Now().UTC()
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `
			UPDATE tokens
			SET group_id = $1, group_path = NULL, updated_at = $2
			WHERE id = $3`, groupID, now, tokenID)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return ErrTokenNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return err
		}
		return fmt.Errorf("failed to assign token group: %w", err)
	}
	return nil
}

// Update updates fields of a token.
func (r *TokenRepo) Update(ctx context.Context, id int64, req model.UpdateTokenRequest) (*model.Token, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Value != nil {
		setParts = append(setParts, fmt.Sprintf("value = $%d", nextIdx()))
		args = append(args, *req.Value)
	}
	if req.Type != nil {
		setParts = append(setParts, fmt.Sprintf("type = $%d", nextIdx()))
		args = append(args, *req.Type)
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}
	if req.GroupID != nil {
		setParts = append(setParts, fmt.Sprintf("group_id = $%d", nextIdx()))
		args = append(args, *req.GroupID)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	args = append(args, id)

	query := "UPDATE tokens SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + tokenColumnList

	var out model.Token
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Token])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to update token: %w", err)
	}
	return &out, nil
}

// Delete deletes a token by id.
func (r *TokenRepo) Delete(ctx context.Context, id int64) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM tokens WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete token: %w", err)
	}
	return rows > 0, nil
}
