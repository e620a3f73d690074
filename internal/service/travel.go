// Package service contains the business logic for the travel logbook.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travelbook/internal/domain"
	"github.com/pkordes/travelbook/internal/repo"
)

// TravelService implements business logic for Travel operations.
type TravelService struct {
	repo repo.TravelRepo
	now  func() time.Time
}

// NewTravelService constructs a TravelService backed by the provided TravelRepo.
func NewTravelService(r repo.TravelRepo) *TravelService {
	return &TravelService{repo: r, now: func() time.Time { return time.Now().UTC() }}
}

// Create validates and persists a new active travel owned by user.
// place may be nil. Returns domain.ErrValidation for a blank name or a
// description shorter than domain.DescriptionMinWords words, and
// domain.ErrStorage when the travel cannot be persisted.
func (s *TravelService) Create(ctx context.Context, user domain.User, place *domain.Place, in domain.TravelInput) (domain.Travel, error) {
	if err := validateTravelInput(in); err != nil {
		return domain.Travel{}, fmt.Errorf("service.TravelService.Create: %w", err)
	}

	now := s.now()
	travel := domain.Travel{
		UUID:      uuid.New(),
		Status:    domain.TravelStatusActive,
		UserID:    user.ID,
		CreatedAt: now,
	}
	applyTravelInput(&travel, place, in, now)

	created, err := s.repo.Create(ctx, travel)
	if err != nil {
		return domain.Travel{}, storageError("service.TravelService.Create", err)
	}
	return created, nil
}

// Update overwrites the fields of an existing travel and hands its ownership
// to user. Every update also issues the travel a new UUID. The status is left
// untouched, so a deleted travel stays deleted.
func (s *TravelService) Update(ctx context.Context, travel domain.Travel, place *domain.Place, user domain.User, in domain.TravelInput) (domain.Travel, error) {
	if err := validateTravelInput(in); err != nil {
		return domain.Travel{}, fmt.Errorf("service.TravelService.Update: %w", err)
	}

	travel.UserID = user.ID
	travel.UUID = uuid.New()
	applyTravelInput(&travel, place, in, s.now())

	updated, err := s.repo.Update(ctx, travel)
	if err != nil {
		return domain.Travel{}, storageError("service.TravelService.Update", err)
	}
	return updated, nil
}

// Delete soft-deletes a travel on behalf of user.
// Returns domain.ErrAlreadyDeleted when the travel is already deleted, whoever
// the caller is, and domain.ErrForbidden unless the user is an admin whose id
// matches the travel's owner.
func (s *TravelService) Delete(ctx context.Context, travel domain.Travel, user domain.User) (domain.Travel, error) {
	if travel.IsDeleted() {
		return domain.Travel{}, fmt.Errorf("service.TravelService.Delete: travel %d: %w", travel.ID, domain.ErrAlreadyDeleted)
	}
	// Rejection rule kept as written upstream: "not admin OR not owner".
	if !user.IsAdmin() || travel.UserID != user.ID {
		return domain.Travel{}, fmt.Errorf("service.TravelService.Delete: user %d on travel %d: %w", user.ID, travel.ID, domain.ErrForbidden)
	}

	travel.Status = domain.TravelStatusDeleted
	travel.UpdatedAt = s.now()

	deleted, err := s.repo.Update(ctx, travel)
	if err != nil {
		return domain.Travel{}, storageError("service.TravelService.Delete", err)
	}
	return deleted, nil
}

// GetByID returns a single travel by ID.
// Returns domain.ErrNotFound if it does not exist.
func (s *TravelService) GetByID(ctx context.Context, id int64) (domain.Travel, error) {
	travel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Travel{}, storageError("service.TravelService.GetByID", err)
	}
	return travel, nil
}

// List returns every travel, unfiltered.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TravelService) List(ctx context.Context) ([]domain.Travel, error) {
	travels, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageError("service.TravelService.List", err)
	}
	if travels == nil {
		return []domain.Travel{}, nil
	}
	return travels, nil
}

// validateTravelInput enforces business rules common to both Create and Update.
//   - Name must be non-empty once trimmed.
//   - Description, when present, must hold at least DescriptionMinWords words.
func validateTravelInput(in domain.TravelInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return &domain.FieldError{Field: "name", Message: "name is required"}
	}
	if in.Description != nil && domain.CountDescriptionWords(*in.Description) < domain.DescriptionMinWords {
		return &domain.FieldError{
			Field:   "description",
			Message: fmt.Sprintf("description must contain at least %d words", domain.DescriptionMinWords),
		}
	}
	return nil
}

// applyTravelInput copies the caller-supplied fields onto t.
func applyTravelInput(t *domain.Travel, place *domain.Place, in domain.TravelInput, now time.Time) {
	t.Name = strings.TrimSpace(in.Name)
	t.Budget = in.Budget
	t.StartedAt = in.StartedAt
	t.EndedAt = in.EndedAt
	t.Description = in.Description
	t.IsShared = in.IsShared
	t.PlaceID = nil
	if place != nil {
		id := place.ID
		t.PlaceID = &id
	}
	t.UpdatedAt = now
}

// storageError wraps a repo failure. Not-found passes through untouched so
// handlers can answer 404; anything else is marked as domain.ErrStorage.
func storageError(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}
