package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/travelbook/internal/domain"
)

// UserRepo defines the persistence operations for Users.
type UserRepo interface {
	// GetByID retrieves a user by primary key.
	// Returns domain.ErrNotFound if no user with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.User, error)

	// Upsert inserts a user by email, or replaces the roles of the existing
	// user with that email, and returns the stored record.
	Upsert(ctx context.Context, email string, roles []string) (domain.User, error)
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

func (r *pgUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	const q = `SELECT id, email, roles FROM users WHERE id = @id`

	result, err := scanUser(conn(ctx, r.db).QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) Upsert(ctx context.Context, email string, roles []string) (domain.User, error) {
	const q = `
		INSERT INTO users (email, roles)
		VALUES (@email, @roles)
		ON CONFLICT (email) DO UPDATE SET roles = EXCLUDED.roles
		RETURNING id, email, roles`

	row := conn(ctx, r.db).QueryRow(ctx, q, pgx.NamedArgs{"email": email, "roles": roles})
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Upsert: %w", err)
	}
	return result, nil
}

func scanUser(s scanner) (domain.User, error) {
	var u domain.User
	if err := s.Scan(&u.ID, &u.Email, &u.Roles); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}
