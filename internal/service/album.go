package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travelbook/internal/domain"
	"github.com/pkordes/travelbook/internal/repo"
)

// AlbumService implements business logic for Album operations.
type AlbumService struct {
	albums repo.AlbumRepo
	now    func() time.Time
}

// NewAlbumService constructs an AlbumService backed by the provided AlbumRepo.
func NewAlbumService(albums repo.AlbumRepo) *AlbumService {
	return &AlbumService{albums: albums, now: func() time.Time { return time.Now().UTC() }}
}

// Create trims title and description and persists a new album attached to travel.
func (s *AlbumService) Create(ctx context.Context, title, description string, travel domain.Travel) (domain.Album, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Album{}, fmt.Errorf("service.AlbumService.Create: %w", &domain.FieldError{Field: "title", Message: "title is required"})
	}

	now := s.now()
	album := domain.Album{
		UUID:        uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(description),
		TravelID:    travel.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.albums.Create(ctx, album)
	if err != nil {
		return domain.Album{}, storageError("service.AlbumService.Create", err)
	}
	return created, nil
}

// GetAll returns every album, unfiltered. Never nil.
func (s *AlbumService) GetAll(ctx context.Context) ([]domain.Album, error) {
	albums, err := s.albums.List(ctx)
	if err != nil {
		return nil, storageError("service.AlbumService.GetAll", err)
	}
	if albums == nil {
		return []domain.Album{}, nil
	}
	return albums, nil
}

// ListByTravel returns the albums attached to one travel. Never nil.
func (s *AlbumService) ListByTravel(ctx context.Context, travelID int64) ([]domain.Album, error) {
	albums, err := s.albums.ListByTravelID(ctx, travelID)
	if err != nil {
		return nil, storageError("service.AlbumService.ListByTravel", err)
	}
	if albums == nil {
		return []domain.Album{}, nil
	}
	return albums, nil
}
