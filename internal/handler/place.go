package handler

import (
	"context"
	"net/http"

	"github.com/pkordes/travelbook/internal/domain"
	"github.com/pkordes/travelbook/internal/middleware"
)

type placeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListPlaces handles GET /places.
func (s *Server) ListPlaces(w http.ResponseWriter, r *http.Request) {
	var places []domain.Place
	err := s.tx.WithinTx(r.Context(), func(ctx context.Context) error {
		var err error
		places, err = s.places.List(ctx)
		return err
	})
	if err != nil {
		s.writeServiceError(w, r, err, "place not found")
		return
	}

	out := make([]placeResponse, len(places))
	for i, p := range places {
		out[i] = placeResponse{ID: p.ID, Name: p.Name}
	}
	writeJSON(w, http.StatusOK, out)
}

// CreatePlace handles POST /places.
func (s *Server) CreatePlace(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		writeUnauthorized(w)
		return
	}

	content, ok := readContent(w, r)
	if !ok {
		return
	}
	req, errs := parsePlaceRequest(content)
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	var created domain.Place
	err := s.tx.WithinTx(r.Context(), func(ctx context.Context) error {
		var err error
		created, err = s.places.Create(ctx, *req.Name)
		return err
	})
	if err != nil {
		s.writeServiceError(w, r, err, "place not found")
		return
	}
	writeJSON(w, http.StatusCreated, placeResponse{ID: created.ID, Name: created.Name})
}
