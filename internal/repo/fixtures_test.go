package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travelbook/internal/domain"
	"github.com/pkordes/travelbook/internal/repo"
	"github.com/pkordes/travelbook/testutil"
)

// beginTx opens a transaction against the test database that is rolled back
// automatically when the test finishes, giving free per-test isolation.
func beginTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test, so no cleanup SQL is needed.
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// mustCreateUser inserts a user with a unique email.
func mustCreateUser(t *testing.T, tx pgx.Tx, roles ...string) domain.User {
	t.Helper()
	if len(roles) == 0 {
		roles = []string{domain.RoleUser}
	}
	u, err := repo.NewUserRepo(tx).Upsert(context.Background(), uuid.NewString()+"@example.com", roles)
	require.NoError(t, err, "create user")
	return u
}

// mustCreatePlace inserts a place.
func mustCreatePlace(t *testing.T, tx pgx.Tx) domain.Place {
	t.Helper()
	p, err := repo.NewPlaceRepo(tx).Create(context.Background(), "Lisbon")
	require.NoError(t, err, "create place")
	return p
}

// travelFixture returns a Travel ready for insertion, owned by userID.
func travelFixture(userID int64) domain.Travel {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	desc := "Two weeks along the Atlantic coast"
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Travel{
		UUID:        uuid.New(),
		Name:        "Summer Tour",
		Budget:      decimal.RequireFromString("1500.50"),
		StartedAt:   &start,
		EndedAt:     &end,
		Description: &desc,
		Status:      domain.TravelStatusActive,
		IsShared:    true,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// mustCreateTravel inserts a travel owned by a fresh user.
func mustCreateTravel(t *testing.T, tx pgx.Tx) domain.Travel {
	t.Helper()
	u := mustCreateUser(t, tx)
	travel, err := repo.NewTravelRepo(tx).Create(context.Background(), travelFixture(u.ID))
	require.NoError(t, err, "create travel")
	return travel
}
