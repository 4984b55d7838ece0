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

// UserRepo provides database operations for local user records.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

const userColumns = `id, document_id, username, email, provider, confirmed, blocked, role_id, created_at, updated_at`

// GetByID retrieves a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getByQuery(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`, "failed to get user by id", id)
}

// GetByEmail retrieves a user by email. Email is the stable upsert key for
// the OAuth callback flow.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getByQuery(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`, "failed to get user by email", strings.ToLower(strings.TrimSpace(email)))
}

// Create inserts a new user. Callback-created users arrive confirmed and
// unblocked.
func (r *UserRepo) Create(ctx context.Context, params model.UpsertUserParams) (*model.User, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (
				document_id, username, email, provider, confirmed, blocked, role_id, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, TRUE, FALSE, $5, $6, $6
			) RETURNING `+userColumns,
			uuid.NewString(),
			strings.TrimSpace(params.Username),
			strings.ToLower(strings.TrimSpace(params.Email)),
			params.Provider,
			params.RoleID,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// Update refreshes username, provider, and role for an existing user. Email
// and the confirmed/blocked flags are left untouched.
func (r *UserRepo) Update(ctx context.Context, id int64, params model.UpsertUserParams) (*model.User, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE users
			SET username = $1, provider = $2, role_id = $3, updated_at = $4
			WHERE id = $5
			RETURNING `+userColumns,
			strings.TrimSpace(params.Username),
			params.Provider,
			params.RoleID,
			now,
			id,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// getByQuery executes a query and returns a single user.
func (r *UserRepo) getByQuery(ctx context.Context, q, errMsg string, args ...any) (*model.User, error) {
	var user model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &user, nil
}

func (r *UserRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrUserNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrUserEmailExists
	}
	return err
}
