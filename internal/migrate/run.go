// Package migrate applies the embedded SQL schema migrations in lexical
// order, tracking applied versions in a schema_migrations table.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dstokens/tokens-api/internal/data/pgxutil"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const versionTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// Run applies every pending migration. Already-applied versions are skipped,
// so calling it on each startup is safe.
func Run(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, versionTable); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	for _, file := range migrationFiles() {
		version := strings.TrimSuffix(file, ".sql")

		var done bool
		err := db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&done)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if done {
			continue
		}

		if err := apply(ctx, db, file, version); err != nil {
			return err
		}
	}
	return nil
}

func migrationFiles() []string {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		// The directory is embedded at compile time; failing to read it
		// means the binary itself is broken.
		panic(fmt.Sprintf("read embedded migrations: %v", err))
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files
}

// apply runs a single migration and records its version in one transaction.
func apply(ctx context.Context, db *sql.DB, file, version string) error {
	stmts, err := migrationsFS.ReadFile("migrations/" + file)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", file, err)
	}

	logger := slog.Default().With("component", "migrations")
	logger.InfoContext(ctx, "applying migration", "version", version)

	return pgxutil.WithPgxTx(ctx, db, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		if _, execErr := tx.Exec(ctx, string(stmts)); execErr != nil {
			return fmt.Errorf("exec migration %s: %w", file, execErr)
		}
		if _, insertErr := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version) VALUES ($1)`, version); insertErr != nil {
			return fmt.Errorf("record migration %s: %w", file, insertErr)
		}
		return nil
	}})
}
