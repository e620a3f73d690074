// Package testutil provides shared helpers for the Postgres integration tests.
// Every helper skips (or no-ops) when TEST_DATABASE_URL is not set, so unit
// tests run without a database.
package testutil

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/travelbook/migrations"
)

// dsnEnv names the variable holding the test database connection string.
const dsnEnv = "TEST_DATABASE_URL"

// Tables lists the tables created by the migrations, parents before children.
var Tables = []string{"users", "places", "travels", "albums"}

// NewPool opens a *pgxpool.Pool on the test database and closes it when the
// test finishes. The test is skipped when TEST_DATABASE_URL is not set.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := openPool(requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB returns a *sql.DB backed by a pgx pool on the test database, for
// code that needs database/sql such as goose. It is closed when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db := stdlib.OpenDBFromPool(NewPool(t))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// MigrateMain is meant to be called from TestMain. It applies all pending
// migrations to the test database, then runs the tests and returns their
// exit code. Without TEST_DATABASE_URL it only runs the tests, which then
// skip themselves through NewPool.
//
//	func TestMain(m *testing.M) { os.Exit(testutil.MigrateMain(m)) }
func MigrateMain(m *testing.M) int {
	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		return m.Run()
	}

	pool, err := openPool(dsn)
	if err != nil {
		log.Fatalf("testutil.MigrateMain: %v", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	applied, err := migrations.Up(context.Background(), db)
	_ = db.Close()
	pool.Close()
	if err != nil {
		log.Fatalf("testutil.MigrateMain: %v", err)
	}
	if applied > 0 {
		log.Printf("testutil.MigrateMain: applied %d migrations", applied)
	}

	return m.Run()
}

func openPool(dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// requireDSN returns the test database connection string, skipping the test
// if it is not set.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skip(dsnEnv + " not set; skipping integration test")
	}
	return dsn
}
