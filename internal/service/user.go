package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/travelbook/internal/domain"
	"github.com/pkordes/travelbook/internal/repo"
)

// UserService resolves users for authentication and bootstrapping.
type UserService struct {
	users repo.UserRepo
}

// NewUserService constructs a UserService backed by the provided UserRepo.
func NewUserService(users repo.UserRepo) *UserService {
	return &UserService{users: users}
}

// GetByID returns the user with the given id, or domain.ErrNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, storageError("service.UserService.GetByID", err)
	}
	return u, nil
}

// Ensure creates the user with the given email, or replaces the roles of an
// existing one. RoleUser is always granted; admin adds RoleAdmin.
func (s *UserService) Ensure(ctx context.Context, email string, admin bool) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.User{}, fmt.Errorf("service.UserService.Ensure: %w: email is required", domain.ErrValidation)
	}

	roles := []string{domain.RoleUser}
	if admin {
		roles = append(roles, domain.RoleAdmin)
	}

	u, err := s.users.Upsert(ctx, email, roles)
	if err != nil {
		return domain.User{}, storageError("service.UserService.Ensure", err)
	}
	return u, nil
}
