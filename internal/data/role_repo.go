package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dstokens/tokens-api/internal/data/pgxutil"
	"github.com/dstokens/tokens-api/internal/domain/model"
)

// RoleRepo provides database operations for roles. Roles are created by
// migrations; the application only resolves them by type.
type RoleRepo struct {
	DB *sql.DB
}

// NewRoleRepo creates a new RoleRepo.
func NewRoleRepo(db *sql.DB) *RoleRepo {
	return &RoleRepo{DB: db}
}

// GetByType retrieves a role by its stable type key.
func (r *RoleRepo) GetByType(ctx context.Context, roleType string) (*model.Role, error) {
	var role model.Role
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, name, type, description, created_at
			FROM roles
			WHERE type = $1`, roleType)
		if err != nil {
			return err
		}
		defer rows.Close()
		role, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Role])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role by type: %w", err)
	}
	return &role, nil
}
