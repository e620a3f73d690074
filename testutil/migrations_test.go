package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travelbook/migrations"
	"github.com/pkordes/travelbook/testutil"
)

// TestMigrations applies every migration, checks the schema tables exist,
// rolls everything back and checks they are gone. It then re-applies the
// migrations through migrations.Up so the database is left usable for the
// other integration test packages.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)

	provider, err := goose.NewProvider(
		goose.DialectPostgres,
		db,
		migrations.FS,
	)
	require.NoError(t, err, "create goose provider")

	ctx := context.Background()

	// --- Ensure a clean baseline before testing ---
	// Another package's TestMain may have already applied migrations against this
	// shared test DB. Reset to version 0 first so this test is self-contained and
	// order-independent, whether run alone or as part of the full suite.
	if _, err := provider.DownTo(ctx, 0); err != nil {
		t.Fatalf("TestMigrations: initial reset: %v", err)
	}

	// --- Apply all migrations ---
	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.NotEmpty(t, results, "expected at least one migration to be applied")

	// Verify all expected tables exist after applying migrations.
	for _, table := range testutil.Tables {
		assertTableExists(t, db, table)
	}

	// --- Roll back all migrations ---
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")

	// Verify all tables have been removed after rolling back.
	for _, table := range testutil.Tables {
		assertTableNotExists(t, db, table)
	}

	// --- Restore the schema ---
	applied, err := migrations.Up(ctx, db)
	require.NoError(t, err, "migrations.Up")
	assert.Equal(t, len(results), applied)

	// The travels.status check constraint only admits the two lifecycle states.
	_, err = db.ExecContext(ctx, `INSERT INTO users (email) VALUES ('constraint@example.com')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `
		INSERT INTO travels (uuid, name, budget, status, is_shared, user_id, created_at, updated_at)
		SELECT gen_random_uuid(), 'x', 1, 'ARCHIVED', true, id, now(), now() FROM users WHERE email = 'constraint@example.com'`)
	assert.Error(t, err, "unknown status must be rejected")
	_, err = db.ExecContext(ctx, `DELETE FROM users WHERE email = 'constraint@example.com'`)
	require.NoError(t, err)
}

// assertTableExists fails the test if the named table does not exist in the
// public schema of the connected database.
func assertTableExists(t *testing.T, db *sql.DB, table string) {
	t.Helper()
	assertTablePresence(t, db, table, true)
}

// assertTableNotExists fails the test if the named table exists in the
// public schema of the connected database.
func assertTableNotExists(t *testing.T, db *sql.DB, table string) {
	t.Helper()
	assertTablePresence(t, db, table, false)
}

func assertTablePresence(t *testing.T, db *sql.DB, table string, shouldExist bool) {
	t.Helper()

	// Use the information_schema to check table existence in a portable way.
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND   table_name   = $1
		)`
	var exists bool
	err := db.QueryRowContext(context.Background(), q, table).Scan(&exists)
	require.NoError(t, err, "check table existence for %q", table)

	if shouldExist {
		assert.True(t, exists, "expected table %q to exist", table)
	} else {
		assert.False(t, exists, "expected table %q to not exist", table)
	}
}
