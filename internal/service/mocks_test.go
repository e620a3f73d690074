package service_test

import (
	"context"

	"github.com/pkordes/travelbook/internal/domain"
	"github.com/pkordes/travelbook/internal/repo"
)

// mockTravelRepo is a hand-written test double for repo.TravelRepo.
// Each method is a function field; set only the ones your test needs.
type mockTravelRepo struct {
	create  func(ctx context.Context, travel domain.Travel) (domain.Travel, error)
	getByID func(ctx context.Context, id int64) (domain.Travel, error)
	list    func(ctx context.Context) ([]domain.Travel, error)
	update  func(ctx context.Context, travel domain.Travel) (domain.Travel, error)
}

func (m *mockTravelRepo) Create(ctx context.Context, t domain.Travel) (domain.Travel, error) {
	return m.create(ctx, t)
}
func (m *mockTravelRepo) GetByID(ctx context.Context, id int64) (domain.Travel, error) {
	return m.getByID(ctx, id)
}
func (m *mockTravelRepo) List(ctx context.Context) ([]domain.Travel, error) {
	return m.list(ctx)
}
func (m *mockTravelRepo) Update(ctx context.Context, t domain.Travel) (domain.Travel, error) {
	return m.update(ctx, t)
}

// compile-time check: mockTravelRepo must satisfy repo.TravelRepo.
var _ repo.TravelRepo = (*mockTravelRepo)(nil)

// mockAlbumRepo is a hand-written test double for repo.AlbumRepo.
type mockAlbumRepo struct {
	create         func(ctx context.Context, album domain.Album) (domain.Album, error)
	list           func(ctx context.Context) ([]domain.Album, error)
	listByTravelID func(ctx context.Context, travelID int64) ([]domain.Album, error)
}

func (m *mockAlbumRepo) Create(ctx context.Context, a domain.Album) (domain.Album, error) {
	return m.create(ctx, a)
}
func (m *mockAlbumRepo) List(ctx context.Context) ([]domain.Album, error) {
	return m.list(ctx)
}
func (m *mockAlbumRepo) ListByTravelID(ctx context.Context, travelID int64) ([]domain.Album, error) {
	return m.listByTravelID(ctx, travelID)
}

var _ repo.AlbumRepo = (*mockAlbumRepo)(nil)

// mockUserRepo is a hand-written test double for repo.UserRepo.
type mockUserRepo struct {
	getByID func(ctx context.Context, id int64) (domain.User, error)
	upsert  func(ctx context.Context, email string, roles []string) (domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) Upsert(ctx context.Context, email string, roles []string) (domain.User, error) {
	return m.upsert(ctx, email, roles)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

// mockPlaceRepo is a hand-written test double for repo.PlaceRepo.
type mockPlaceRepo struct {
	create  func(ctx context.Context, name string) (domain.Place, error)
	getByID func(ctx context.Context, id int64) (domain.Place, error)
	list    func(ctx context.Context) ([]domain.Place, error)
}

func (m *mockPlaceRepo) Create(ctx context.Context, name string) (domain.Place, error) {
	return m.create(ctx, name)
}
func (m *mockPlaceRepo) GetByID(ctx context.Context, id int64) (domain.Place, error) {
	return m.getByID(ctx, id)
}
func (m *mockPlaceRepo) List(ctx context.Context) ([]domain.Place, error) {
	return m.list(ctx)
}

var _ repo.PlaceRepo = (*mockPlaceRepo)(nil)
