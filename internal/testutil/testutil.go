// Package testutil provides shared helpers for integration tests that need
// live infrastructure. Tests using these helpers skip when the backing
// service is unavailable, unless TEST_REQUIRE_INFRA demands it.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"strconv"
	"testing"
	"time"

	// Import pgx driver for database/sql compatibility in tests.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/dstokens/tokens-api/internal/migrate"
)

// FixedTimeFunc returns a function that always returns the same time.
func FixedTimeFunc(t time.Time) func() time.Time {
	return func() time.Time {
		return t
	}
}

// TestTime returns a fixed time for testing.
func TestTime() time.Time {
	return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func requireRedis() bool { return envBool("TEST_REQUIRE_REDIS") || envBool("TEST_REQUIRE_INFRA") }

func requirePostgres() bool { return envBool("TEST_REQUIRE_POSTGRES") || envBool("TEST_REQUIRE_INFRA") }

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// SetupTestDB opens a connection to the test database, applies the production
// migrations, and clears any leftover rows. The test skips when no database
// is reachable. TEST_DB_HOST, TEST_DB_PORT, TEST_DB_USER, TEST_DB_PASSWORD,
// and TEST_DB_NAME override the connection defaults.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	hostPort := net.JoinHostPort(
		envOrDefault("TEST_DB_HOST", "localhost"),
		envOrDefault("TEST_DB_PORT", "5432"),
	)
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		envOrDefault("TEST_DB_USER", "tokens"),
		envOrDefault("TEST_DB_PASSWORD", "tokens"),
		hostPort,
		envOrDefault("TEST_DB_NAME", "tokens"),
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		if requirePostgres() {
			t.Fatalf("Postgres required but not available at %s: %v", hostPort, err)
		}
		t.Skipf("Postgres not available at %s: %v", hostPort, err)
	}

	if err := migrate.Run(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	CleanupTestDB(t, db)

	t.Cleanup(func() {
		CleanupTestDB(t, db)
		_ = db.Close()
	})
	return db
}

// CleanupTestDB removes test rows in foreign-key order. Seeded roles and the
// schema_migrations ledger survive so a cleaned database still boots.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, table := range []string{
		"tokens",
		"token_groups",
		"token_collections",
		"design_systems",
		"permissions",
		"settings",
		"users",
	} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			t.Fatalf("clean up table %s: %v", table, err)
		}
	}
}

// SetupTestRedis returns a Redis client for tests, skipping the test when no
// Redis is reachable. TEST_REDIS_ADDR overrides the default address.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: testRedisDB()})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		if requireRedis() {
			t.Fatalf("Redis required but not available at %s: %v", addr, err)
		}
		t.Skipf("Redis not available at %s: %v", addr, err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

// testRedisDB picks a non-default DB index so test keys stay out of DB 0.
func testRedisDB() int {
	if v := os.Getenv("TEST_REDIS_DB"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
	}
	return 1
}
