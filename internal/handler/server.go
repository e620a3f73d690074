// Package handler implements the HTTP handlers for the travel logbook API.
// All handlers are methods on Server. Methods are split into resource files
// (travel.go, album.go, ...) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/pkordes/travelbook/internal/domain"
)

// TravelServicer defines the business operations the travel handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TravelServicer interface {
	Create(ctx context.Context, user domain.User, place *domain.Place, in domain.TravelInput) (domain.Travel, error)
	Update(ctx context.Context, travel domain.Travel, place *domain.Place, user domain.User, in domain.TravelInput) (domain.Travel, error)
	Delete(ctx context.Context, travel domain.Travel, user domain.User) (domain.Travel, error)
	GetByID(ctx context.Context, id int64) (domain.Travel, error)
	List(ctx context.Context) ([]domain.Travel, error)
}

// AlbumServicer defines the album operations the handlers depend on.
type AlbumServicer interface {
	Create(ctx context.Context, title, description string, travel domain.Travel) (domain.Album, error)
	GetAll(ctx context.Context) ([]domain.Album, error)
	ListByTravel(ctx context.Context, travelID int64) ([]domain.Album, error)
}

// PlaceServicer defines the place operations the handlers depend on.
type PlaceServicer interface {
	Create(ctx context.Context, name string) (domain.Place, error)
	GetByID(ctx context.Context, id int64) (domain.Place, error)
	List(ctx context.Context) ([]domain.Place, error)
}

// Transactor runs fn inside one database transaction, committing when fn
// returns nil and rolling back otherwise. *repo.TxManager satisfies it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventRecorder is notified after each successful mutation.
// *metrics.Collector satisfies it.
type EventRecorder interface {
	TravelCreated()
	TravelUpdated()
	TravelDeleted()
	AlbumCreated()
}

// Deps bundles the collaborators of Server. Tx, Events and Log are optional.
type Deps struct {
	Travels TravelServicer
	Albums  AlbumServicer
	Places  PlaceServicer
	Tx      Transactor
	Events  EventRecorder
	Log     *slog.Logger
}

// Server holds the dependencies shared by every HTTP handler.
// Wire it in main.go via Server.Routes.
type Server struct {
	travels TravelServicer
	albums  AlbumServicer
	places  PlaceServicer
	tx      Transactor
	events  EventRecorder
	log     *slog.Logger
}

// NewServer constructs the Server. Missing optional dependencies fall back to
// no-op implementations so tests only provide what they exercise.
func NewServer(d Deps) *Server {
	s := &Server{
		travels: d.Travels,
		albums:  d.Albums,
		places:  d.Places,
		tx:      d.Tx,
		events:  d.Events,
		log:     d.Log,
	}
	if s.tx == nil {
		s.tx = noTx{}
	}
	if s.events == nil {
		s.events = noEvents{}
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// noTx runs the unit of work without a transaction.
type noTx struct{}

func (noTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type noEvents struct{}

func (noEvents) TravelCreated() {}
func (noEvents) TravelUpdated() {}
func (noEvents) TravelDeleted() {}
func (noEvents) AlbumCreated()  {}
