package handler

import (
	"context"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travelbook/internal/domain"
	"github.com/pkordes/travelbook/internal/middleware"
)

type albumResponse struct {
	ID          int64              `json:"id"`
	UUID        openapi_types.UUID `json:"uuid"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	TravelID    int64              `json:"travelId"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ListAlbums handles GET /albums.
func (s *Server) ListAlbums(w http.ResponseWriter, r *http.Request) {
	var albums []domain.Album
	err := s.tx.WithinTx(r.Context(), func(ctx context.Context) error {
		var err error
		albums, err = s.albums.GetAll(ctx)
		return err
	})
	if err != nil {
		s.writeServiceError(w, r, err, "album not found")
		return
	}
	writeJSON(w, http.StatusOK, albumsToResponse(albums))
}

// ListTravelAlbums handles GET /travels/{id}/albums.
func (s *Server) ListTravelAlbums(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, travelNotFound)
		return
	}

	var albums []domain.Album
	err := s.tx.WithinTx(r.Context(), func(ctx context.Context) error {
		if _, err := s.travels.GetByID(ctx, id); err != nil {
			return err
		}
		var err error
		albums, err = s.albums.ListByTravel(ctx, id)
		return err
	})
	if err != nil {
		s.writeServiceError(w, r, err, travelNotFound)
		return
	}
	writeJSON(w, http.StatusOK, albumsToResponse(albums))
}

// CreateAlbum handles POST /travels/{id}/albums.
func (s *Server) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		writeUnauthorized(w)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, travelNotFound)
		return
	}

	content, ok := readContent(w, r)
	if !ok {
		return
	}
	req, errs := parseAlbumRequest(content)
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}
	var description string
	if req.Description != nil {
		description = *req.Description
	}

	var created domain.Album
	err := s.tx.WithinTx(r.Context(), func(ctx context.Context) error {
		travel, err := s.travels.GetByID(ctx, id)
		if err != nil {
			return err
		}
		created, err = s.albums.Create(ctx, *req.Title, description, travel)
		return err
	})
	if err != nil {
		s.writeServiceError(w, r, err, travelNotFound)
		return
	}

	s.events.AlbumCreated()
	writeJSON(w, http.StatusCreated, albumToResponse(created))
}

func albumToResponse(a domain.Album) albumResponse {
	return albumResponse{
		ID:          a.ID,
		UUID:        openapi_types.UUID(a.UUID),
		Title:       a.Title,
		Description: a.Description,
		TravelID:    a.TravelID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func albumsToResponse(albums []domain.Album) []albumResponse {
	out := make([]albumResponse, len(albums))
	for i, a := range albums {
		out[i] = albumToResponse(a)
	}
	return out
}
