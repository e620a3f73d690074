package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travelbook/internal/domain"
	"github.com/pkordes/travelbook/internal/handler"
)

func TestCreatePlace_201(t *testing.T) {
	user := userFixture()
	places := &mockPlaceServicer{
		create: func(_ context.Context, name string) (domain.Place, error) {
			return domain.Place{ID: 1, Name: name}, nil
		},
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(handler.Deps{Places: places}).
		ServeHTTP(rec, newRequest(t, http.MethodPost, "/places", map[string]any{"name": "Lisbon"}, &user))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Lisbon"}`, rec.Body.String())
}

func TestCreatePlace_400_BlankName(t *testing.T) {
	user := userFixture()

	rec := httptest.NewRecorder()
	newHTTPHandler(handler.Deps{Places: &mockPlaceServicer{}}).
		ServeHTTP(rec, newRequest(t, http.MethodPost, "/places", map[string]any{"name": " "}, &user))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"name"}, decodeError(t, rec).fields())
}

func TestListPlaces_200(t *testing.T) {
	places := &mockPlaceServicer{
		list: func(_ context.Context) ([]domain.Place, error) {
			return []domain.Place{{ID: 1, Name: "Lisbon"}}, nil
		},
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(handler.Deps{Places: places}).
		ServeHTTP(rec, newRequest(t, http.MethodGet, "/places", nil, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Lisbon"}]`, rec.Body.String())
}
