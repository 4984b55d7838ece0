package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dstokens/tokens-api/internal/data/pgxutil"
	"github.com/dstokens/tokens-api/internal/domain/model"
)

// DesignSystemRepo provides database operations for design systems.
type DesignSystemRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewDesignSystemRepo creates a new DesignSystemRepo with real time provider.
func NewDesignSystemRepo(db *sql.DB) *DesignSystemRepo {
	return &DesignSystemRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const designSystemColumns = `id, document_id, name, slug, repo_name, repo_owner, branch, created_at, updated_at`

// GetByID retrieves a design system by id.
func (r *DesignSystemRepo) GetByID(ctx context.Context, id int64) (*model.DesignSystem, error) {
	return r.getByQuery(ctx, `
		SELECT `+designSystemColumns+`
		FROM design_systems
		WHERE id = $1`, "failed to get design system by id", id)
}

// GetByRepo retrieves a design system by its connected repository.
func (r *DesignSystemRepo) GetByRepo(ctx context.Context, repoOwner, repoName string) (*model.DesignSystem, error) {
	return r.getByQuery(ctx, `
		SELECT `+designSystemColumns+`
		FROM design_systems
		WHERE repo_owner = $1 AND repo_name = $2`, "failed to get design system by repo", repoOwner, repoName)
}

// List retrieves design systems with pagination.
func (r *DesignSystemRepo) List(ctx context.Context, limit, offset int) ([]*model.DesignSystem, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.DesignSystem
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+designSystemColumns+`
			FROM design_systems
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.DesignSystem])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list design systems: %w", err)
	}

	res := make([]*model.DesignSystem, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Create inserts a new design system. Name and slug derive from the repo
// coordinates.
func (r *DesignSystemRepo) Create(ctx context.Context, req *model.ConnectDesignSystemRequest) (*model.DesignSystem, error) {
	if req == nil {
		return nil, errors.New("connect design system request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	name := req.RepoOwner + "/" + req.RepoName
	slug := strings.ToLower(strings.ReplaceAll(name, "/", "-"))
	now := r.timeProvider.Now().UTC()

	var out model.DesignSystem
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO design_systems (
				document_id, name, slug, repo_name, repo_owner, branch, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $7
			) RETURNING `+designSystemColumns,
			uuid.NewString(), name, slug, req.RepoName, req.RepoOwner, req.Branch, now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.DesignSystem])
		return err
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrDesignSystemRepoExists
		}
		return nil, fmt.Errorf("failed to create design system: %w", err)
	}
	return &out, nil
}

func (r *DesignSystemRepo) getByQuery(ctx context.Context, q, errMsg string, args ...any) (*model.DesignSystem, error) {
	var ds model.DesignSystem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		ds, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.DesignSystem])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDesignSystemNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &ds, nil
}
