package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/travelbook/internal/domain"
)

// PlaceRepo defines the persistence operations for Places.
type PlaceRepo interface {
	// Create inserts a place and returns the persisted record.
	Create(ctx context.Context, name string) (domain.Place, error)

	// GetByID retrieves a place by primary key.
	// Returns domain.ErrNotFound if no place with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Place, error)

	// List returns all places ordered by name.
	List(ctx context.Context) ([]domain.Place, error)
}

// pgPlaceRepo is the Postgres implementation of PlaceRepo.
type pgPlaceRepo struct {
	db db
}

// NewPlaceRepo constructs a PlaceRepo backed by the provided db connection.
func NewPlaceRepo(db db) PlaceRepo {
	return &pgPlaceRepo{db: db}
}

func (r *pgPlaceRepo) Create(ctx context.Context, name string) (domain.Place, error) {
	const q = `INSERT INTO places (name) VALUES (@name) RETURNING id, name`

	result, err := scanPlace(conn(ctx, r.db).QueryRow(ctx, q, pgx.NamedArgs{"name": name}))
	if err != nil {
		return domain.Place{}, fmt.Errorf("repo.PlaceRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgPlaceRepo) GetByID(ctx context.Context, id int64) (domain.Place, error) {
	const q = `SELECT id, name FROM places WHERE id = @id`

	result, err := scanPlace(conn(ctx, r.db).QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Place{}, fmt.Errorf("repo.PlaceRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgPlaceRepo) List(ctx context.Context) ([]domain.Place, error) {
	const q = `SELECT id, name FROM places ORDER BY name, id`

	rows, err := conn(ctx, r.db).Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.List: %w", err)
	}
	defer rows.Close()

	var places []domain.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PlaceRepo.List: scan: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.List: rows: %w", err)
	}
	return places, nil
}

func scanPlace(s scanner) (domain.Place, error) {
	var p domain.Place
	if err := s.Scan(&p.ID, &p.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Place{}, domain.ErrNotFound
		}
		return domain.Place{}, err
	}
	return p, nil
}
