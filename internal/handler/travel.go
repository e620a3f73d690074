package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travelbook/internal/domain"
	"github.com/pkordes/travelbook/internal/middleware"
)

// travelResponse is the JSON representation of a travel.
type travelResponse struct {
	ID          int64               `json:"id"`
	UUID        openapi_types.UUID  `json:"uuid"`
	Name        string              `json:"name"`
	Budget      string              `json:"budget"`
	StartedAt   *openapi_types.Date `json:"startedAt"`
	EndedAt     *openapi_types.Date `json:"endedAt"`
	Description *string             `json:"description"`
	Status      domain.TravelStatus `json:"status"`
	IsShared    bool                `json:"isShared"`
	UserID      int64               `json:"userId"`
	PlaceID     *int64              `json:"placeId"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

const travelNotFound = "travel not found"

// ListTravels handles GET /travels.
// The logged user is optional here and only recorded in the log.
func (s *Server) ListTravels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if user, ok := middleware.UserFromContext(ctx); ok {
		s.log.DebugContext(ctx, "listing travels", slog.Int64("user_id", user.ID))
	}

	var travels []domain.Travel
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		travels, err = s.travels.List(ctx)
		return err
	})
	if err != nil {
		s.writeServiceError(w, r, err, travelNotFound)
		return
	}

	out := make([]travelResponse, len(travels))
	for i, t := range travels {
		out[i] = travelToResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateTravel handles POST /travels.
// The caller must be logged in; that is checked before the body is read.
func (s *Server) CreateTravel(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	in, placeID, ok := s.readTravelInput(w, r)
	if !ok {
		return
	}

	var created domain.Travel
	err := s.tx.WithinTx(r.Context(), func(ctx context.Context) error {
		place, err := s.resolvePlace(ctx, placeID)
		if err != nil {
			return err
		}
		created, err = s.travels.Create(ctx, user, place, in)
		return err
	})
	if err != nil {
		s.writeServiceError(w, r, err, travelNotFound)
		return
	}

	s.events.TravelCreated()
	writeJSON(w, http.StatusCreated, travelToResponse(created))
}

// GetTravel handles GET /travels/{id}.
func (s *Server) GetTravel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, travelNotFound)
		return
	}

	var travel domain.Travel
	err := s.tx.WithinTx(r.Context(), func(ctx context.Context) error {
		var err error
		travel, err = s.travels.GetByID(ctx, id)
		return err
	})
	if err != nil {
		s.writeServiceError(w, r, err, travelNotFound)
		return
	}

	writeJSON(w, http.StatusOK, travelToResponse(travel))
}

// UpdateTravel handles PUT /travels/{id}.
// The body is validated exactly like POST /travels.
func (s *Server) UpdateTravel(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, travelNotFound)
		return
	}

	in, placeID, ok := s.readTravelInput(w, r)
	if !ok {
		return
	}

	var updated domain.Travel
	err := s.tx.WithinTx(r.Context(), func(ctx context.Context) error {
		travel, err := s.travels.GetByID(ctx, id)
		if err != nil {
			return err
		}
		place, err := s.resolvePlace(ctx, placeID)
		if err != nil {
			return err
		}
		updated, err = s.travels.Update(ctx, travel, place, user, in)
		return err
	})
	if err != nil {
		s.writeServiceError(w, r, err, travelNotFound)
		return
	}

	s.events.TravelUpdated()
	writeJSON(w, http.StatusOK, travelToResponse(updated))
}

// DeleteTravel handles DELETE /travels/{id}.
// Travels are soft-deleted; the response carries the travel with its new status.
func (s *Server) DeleteTravel(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, travelNotFound)
		return
	}

	var deleted domain.Travel
	err := s.tx.WithinTx(r.Context(), func(ctx context.Context) error {
		travel, err := s.travels.GetByID(ctx, id)
		if err != nil {
			return err
		}
		deleted, err = s.travels.Delete(ctx, travel, user)
		return err
	})
	if err != nil {
		s.writeServiceError(w, r, err, travelNotFound)
		return
	}

	s.events.TravelDeleted()
	writeJSON(w, http.StatusOK, travelToResponse(deleted))
}

// readTravelInput decodes and validates a travel body. On failure it writes
// the error response itself and reports ok=false.
func (s *Server) readTravelInput(w http.ResponseWriter, r *http.Request) (domain.TravelInput, *int64, bool) {
	content, ok := readContent(w, r)
	if !ok {
		return domain.TravelInput{}, nil, false
	}

	req, errs := parseTravelRequest(content)
	if len(errs) > 0 {
		writeValidation(w, errs)
		return domain.TravelInput{}, nil, false
	}

	in, err := req.input()
	if err != nil {
		s.writeServiceError(w, r, err, travelNotFound)
		return domain.TravelInput{}, nil, false
	}
	return in, req.PlaceID, true
}

// resolvePlace loads the place referenced by a travel body, if any.
// An unknown id is reported as a field error rather than a 404.
func (s *Server) resolvePlace(ctx context.Context, id *int64) (*domain.Place, error) {
	if id == nil {
		return nil, nil
	}
	place, err := s.places.GetByID(ctx, *id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, validationErrors{{Field: "placeId", Message: "this place does not exist"}}
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func travelToResponse(t domain.Travel) travelResponse {
	resp := travelResponse{
		ID:          t.ID,
		UUID:        openapi_types.UUID(t.UUID),
		Name:        t.Name,
		Budget:      t.Budget.StringFixed(2),
		Description: t.Description,
		Status:      t.Status,
		IsShared:    t.IsShared,
		UserID:      t.UserID,
		PlaceID:     t.PlaceID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.StartedAt != nil {
		resp.StartedAt = &openapi_types.Date{Time: *t.StartedAt}
	}
	if t.EndedAt != nil {
		resp.EndedAt = &openapi_types.Date{Time: *t.EndedAt}
	}
	return resp
}
