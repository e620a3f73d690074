package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/travelbook/internal/domain"
	"github.com/pkordes/travelbook/internal/repo"
)

// PlaceService implements business logic for Place operations.
type PlaceService struct {
	places repo.PlaceRepo
}

// NewPlaceService constructs a PlaceService backed by the provided PlaceRepo.
func NewPlaceService(places repo.PlaceRepo) *PlaceService {
	return &PlaceService{places: places}
}

// Create persists a place with a trimmed, non-blank name.
func (s *PlaceService) Create(ctx context.Context, name string) (domain.Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Place{}, fmt.Errorf("service.PlaceService.Create: %w", &domain.FieldError{Field: "name", Message: "name is required"})
	}
	p, err := s.places.Create(ctx, name)
	if err != nil {
		return domain.Place{}, storageError("service.PlaceService.Create", err)
	}
	return p, nil
}

// GetByID returns a place by id, or domain.ErrNotFound.
func (s *PlaceService) GetByID(ctx context.Context, id int64) (domain.Place, error) {
	p, err := s.places.GetByID(ctx, id)
	if err != nil {
		return domain.Place{}, storageError("service.PlaceService.GetByID", err)
	}
	return p, nil
}

// List returns all places. Never nil.
func (s *PlaceService) List(ctx context.Context) ([]domain.Place, error) {
	places, err := s.places.List(ctx)
	if err != nil {
		return nil, storageError("service.PlaceService.List", err)
	}
	if places == nil {
		return []domain.Place{}, nil
	}
	return places, nil
}
