package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dstokens/tokens-api/internal/data/pgxutil"
	"github.com/dstokens/tokens-api/internal/domain/model"
)

// PermissionRepo provides database operations for permission grants. The
// (action, role_id) pair is unique at the schema level; Exists+Create is the
// seeding pair and a concurrent duplicate surfaces as ErrPermissionExists.
type PermissionRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPermissionRepo creates a new PermissionRepo.
func NewPermissionRepo(db *sql.DB) *PermissionRepo {
	return &PermissionRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// Exists reports whether a grant for (action, roleID) is already present.
func (r *PermissionRepo) Exists(ctx context.Context, action string, roleID int64) (bool, error) {
	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM permissions WHERE action = $1 AND role_id = $2)`,
			action, roleID,
		).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check permission existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new grant.
func (r *PermissionRepo) Create(ctx context.Context, action string, roleID int64) (*model.PermissionGrant, error) {
	var out model.PermissionGrant
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO permissions (action, role_id, created_at)
			VALUES ($1, $2, $3)
			RETURNING id, action, role_id, created_at`,
			action, roleID, r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.PermissionGrant])
		return err
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrPermissionExists
		}
		return nil, fmt.Errorf("failed to create permission: %w", err)
	}
	return &out, nil
}

// ListByRole retrieves all grants attached to a role.
func (r *PermissionRepo) ListByRole(ctx context.Context, roleID int64) ([]*model.PermissionGrant, error) {
	var rowsOut []model.PermissionGrant
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, action, role_id, created_at
			FROM permissions
			WHERE role_id = $1
			ORDER BY action`, roleID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.PermissionGrant])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	res := make([]*model.PermissionGrant, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
