package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dstokens/tokens-api/internal/data/pgxutil"
)

// SettingsRepo is a generic JSON key/value store for namespaced settings
// records, the local stand-in for the CMS core store. Values are written
// wholesale; there is no partial update.
type SettingsRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// Get reads the record under key into dst.
func (r *SettingsRepo) Get(ctx context.Context, key string, dst any) error {
	var raw []byte
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&raw)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSettingNotFound
		}
		return fmt.Errorf("failed to get setting: %w", err)
	}
	if unmarshalErr := json.Unmarshal(raw, dst); unmarshalErr != nil {
		return fmt.Errorf("decode setting %q: %w", key, unmarshalErr)
	}
	return nil
}

// Set writes the record under key, replacing any previous value.
func (r *SettingsRepo) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %q: %w", key, err)
	}
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO settings (key, value, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
			key, raw, r.timeProvider.Now().UTC(),
		)
		return execErr
	}); err != nil {
		return fmt.Errorf("failed to set setting: %w", err)
	}
	return nil
}

// Delete removes the record under key. Deleting a missing key is a no-op.
func (r *SettingsRepo) Delete(ctx context.Context, key string) error {
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `DELETE FROM settings WHERE key = $1`, key)
		return execErr
	}); err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	return nil
}
