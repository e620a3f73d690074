package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/pkordes/travelbook/internal/domain"
)

// TravelRepo defines the persistence operations for Travels.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
// There is no physical delete: travels are soft-deleted through Update.
type TravelRepo interface {
	// Create inserts a new travel and returns the persisted record with its
	// DB-generated id populated.
	Create(ctx context.Context, travel domain.Travel) (domain.Travel, error)

	// GetByID retrieves a single travel by its primary key.
	// Returns domain.ErrNotFound if no travel with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Travel, error)

	// List returns every travel, deleted ones included, ordered by id.
	List(ctx context.Context) ([]domain.Travel, error)

	// Update overwrites every column of an existing travel except id and
	// created_at. Returns domain.ErrNotFound if no travel with that ID exists.
	Update(ctx context.Context, travel domain.Travel) (domain.Travel, error)
}

// pgTravelRepo is the Postgres implementation of TravelRepo.
type pgTravelRepo struct {
	db db
}

// NewTravelRepo constructs a TravelRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTravelRepo(db db) TravelRepo {
	return &pgTravelRepo{db: db}
}

const travelColumns = `id, uuid, name, budget::text, started_at, ended_at, description,
		status, is_shared, user_id, place_id, created_at, updated_at`

// Create inserts a new travel row and returns the full persisted record.
func (r *pgTravelRepo) Create(ctx context.Context, travel domain.Travel) (domain.Travel, error) {
	const q = `
		INSERT INTO travels (uuid, name, budget, started_at, ended_at, description,
		                     status, is_shared, user_id, place_id, created_at, updated_at)
		VALUES (@uuid, @name, @budget::numeric, @started_at, @ended_at, @description,
		        @status, @is_shared, @user_id, @place_id, @created_at, @updated_at)
		RETURNING ` + travelColumns

	row := conn(ctx, r.db).QueryRow(ctx, q, travelArgs(travel))
	result, err := scanTravel(row)
	if err != nil {
		return domain.Travel{}, fmt.Errorf("repo.TravelRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a travel by primary key.
func (r *pgTravelRepo) GetByID(ctx context.Context, id int64) (domain.Travel, error) {
	const q = `SELECT ` + travelColumns + ` FROM travels WHERE id = @id`

	row := conn(ctx, r.db).QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTravel(row)
	if err != nil {
		return domain.Travel{}, fmt.Errorf("repo.TravelRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all travels ordered by id ascending.
func (r *pgTravelRepo) List(ctx context.Context) ([]domain.Travel, error) {
	const q = `SELECT ` + travelColumns + ` FROM travels ORDER BY id`

	rows, err := conn(ctx, r.db).Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TravelRepo.List: %w", err)
	}
	defer rows.Close()

	var travels []domain.Travel
	for rows.Next() {
		t, err := scanTravel(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TravelRepo.List: scan: %w", err)
		}
		travels = append(travels, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TravelRepo.List: rows: %w", err)
	}

	return travels, nil
}

// Update writes the travel's fields back and returns the stored record.
func (r *pgTravelRepo) Update(ctx context.Context, travel domain.Travel) (domain.Travel, error) {
	const q = `
		UPDATE travels
		SET uuid        = @uuid,
		    name        = @name,
		    budget      = @budget::numeric,
		    started_at  = @started_at,
		    ended_at    = @ended_at,
		    description = @description,
		    status      = @status,
		    is_shared   = @is_shared,
		    user_id     = @user_id,
		    place_id    = @place_id,
		    updated_at  = @updated_at
		WHERE id = @id
		RETURNING ` + travelColumns

	args := travelArgs(travel)
	args["id"] = travel.ID

	row := conn(ctx, r.db).QueryRow(ctx, q, args)
	result, err := scanTravel(row)
	if err != nil {
		return domain.Travel{}, fmt.Errorf("repo.TravelRepo.Update: %w", err)
	}
	return result, nil
}

// travelArgs maps the writable travel fields to named query arguments.
// Nil pointers become NULL.
func travelArgs(t domain.Travel) pgx.NamedArgs {
	return pgx.NamedArgs{
		"uuid":        t.UUID,
		"name":        t.Name,
		"budget":      t.Budget.String(),
		"started_at":  t.StartedAt,
		"ended_at":    t.EndedAt,
		"description": t.Description,
		"status":      string(t.Status),
		"is_shared":   t.IsShared,
		"user_id":     t.UserID,
		"place_id":    t.PlaceID,
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

// scanTravel maps a single database row into a domain.Travel.
// It handles the UUID, numeric budget and nullable date conversions.
func scanTravel(s scanner) (domain.Travel, error) {
	var (
		t         domain.Travel
		id        pgtype.UUID
		budget    string
		status    string
		startedAt pgtype.Date
		endedAt   pgtype.Date
	)

	err := s.Scan(&t.ID, &id, &t.Name, &budget, &startedAt, &endedAt, &t.Description,
		&status, &t.IsShared, &t.UserID, &t.PlaceID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Travel{}, domain.ErrNotFound
		}
		return domain.Travel{}, err
	}

	t.UUID = uuid.UUID(id.Bytes)
	t.Status = domain.TravelStatus(status)
	t.Budget, err = decimal.NewFromString(budget)
	if err != nil {
		return domain.Travel{}, fmt.Errorf("parse budget %q: %w", budget, err)
	}
	if startedAt.Valid {
		sd := startedAt.Time
		t.StartedAt = &sd
	}
	if endedAt.Valid {
		ed := endedAt.Time
		t.EndedAt = &ed
	}

	return t, nil
}
