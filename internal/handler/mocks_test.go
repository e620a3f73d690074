package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travelbook/internal/domain"
	"github.com/pkordes/travelbook/internal/handler"
	"github.com/pkordes/travelbook/internal/middleware"
)

// mockTravelServicer is a test double for handler.TravelServicer.
// Set only the method fields your test needs; calling an unset one panics,
// which makes an unexpected service call fail the test loudly.
type mockTravelServicer struct {
	create  func(ctx context.Context, user domain.User, place *domain.Place, in domain.TravelInput) (domain.Travel, error)
	update  func(ctx context.Context, travel domain.Travel, place *domain.Place, user domain.User, in domain.TravelInput) (domain.Travel, error)
	delete  func(ctx context.Context, travel domain.Travel, user domain.User) (domain.Travel, error)
	getByID func(ctx context.Context, id int64) (domain.Travel, error)
	list    func(ctx context.Context) ([]domain.Travel, error)
}

func (m *mockTravelServicer) Create(ctx context.Context, user domain.User, place *domain.Place, in domain.TravelInput) (domain.Travel, error) {
	return m.create(ctx, user, place, in)
}
func (m *mockTravelServicer) Update(ctx context.Context, travel domain.Travel, place *domain.Place, user domain.User, in domain.TravelInput) (domain.Travel, error) {
	return m.update(ctx, travel, place, user, in)
}
func (m *mockTravelServicer) Delete(ctx context.Context, travel domain.Travel, user domain.User) (domain.Travel, error) {
	return m.delete(ctx, travel, user)
}
func (m *mockTravelServicer) GetByID(ctx context.Context, id int64) (domain.Travel, error) {
	return m.getByID(ctx, id)
}
func (m *mockTravelServicer) List(ctx context.Context) ([]domain.Travel, error) {
	return m.list(ctx)
}

type mockAlbumServicer struct {
	create       func(ctx context.Context, title, description string, travel domain.Travel) (domain.Album, error)
	getAll       func(ctx context.Context) ([]domain.Album, error)
	listByTravel func(ctx context.Context, travelID int64) ([]domain.Album, error)
}

func (m *mockAlbumServicer) Create(ctx context.Context, title, description string, travel domain.Travel) (domain.Album, error) {
	return m.create(ctx, title, description, travel)
}
func (m *mockAlbumServicer) GetAll(ctx context.Context) ([]domain.Album, error) {
	return m.getAll(ctx)
}
func (m *mockAlbumServicer) ListByTravel(ctx context.Context, travelID int64) ([]domain.Album, error) {
	return m.listByTravel(ctx, travelID)
}

type mockPlaceServicer struct {
	create  func(ctx context.Context, name string) (domain.Place, error)
	getByID func(ctx context.Context, id int64) (domain.Place, error)
	list    func(ctx context.Context) ([]domain.Place, error)
}

func (m *mockPlaceServicer) Create(ctx context.Context, name string) (domain.Place, error) {
	return m.create(ctx, name)
}
func (m *mockPlaceServicer) GetByID(ctx context.Context, id int64) (domain.Place, error) {
	return m.getByID(ctx, id)
}
func (m *mockPlaceServicer) List(ctx context.Context) ([]domain.Place, error) {
	return m.list(ctx)
}

// recordingTx counts units of work and remembers the last outcome.
type recordingTx struct {
	calls   int
	lastErr error
}

func (tx *recordingTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	tx.lastErr = fn(ctx)
	return tx.lastErr
}

type countingEvents struct {
	created, updated, deleted, albums int
}

func (e *countingEvents) TravelCreated() { e.created++ }
func (e *countingEvents) TravelUpdated() { e.updated++ }
func (e *countingEvents) TravelDeleted() { e.deleted++ }
func (e *countingEvents) AlbumCreated()  { e.albums++ }

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.TravelServicer = (*mockTravelServicer)(nil)
	_ handler.AlbumServicer  = (*mockAlbumServicer)(nil)
	_ handler.PlaceServicer  = (*mockPlaceServicer)(nil)
	_ handler.Transactor     = (*recordingTx)(nil)
	_ handler.EventRecorder  = (*countingEvents)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given deps into its chi router.
// This mirrors how main.go wires it in production, minus the middleware stack.
func newHTTPHandler(d handler.Deps) http.Handler {
	return handler.NewServer(d).Routes()
}

// travelJSON mirrors the travel response body.
type travelJSON struct {
	ID          int64     `json:"id"`
	UUID        uuid.UUID `json:"uuid"`
	Name        string    `json:"name"`
	Budget      string    `json:"budget"`
	StartedAt   *string   `json:"startedAt"`
	EndedAt     *string   `json:"endedAt"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	IsShared    bool      `json:"isShared"`
	UserID      int64     `json:"userId"`
	PlaceID     *int64    `json:"placeId"`
}

// errorJSON mirrors the error response body.
type errorJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (e errorJSON) fields() []string {
	out := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		out[i] = fe.Field
	}
	return out
}

func userFixture() domain.User {
	return domain.User{ID: 7, Email: "traveller@example.com", Roles: []string{domain.RoleUser}}
}

func adminFixture() domain.User {
	return domain.User{ID: 7, Email: "admin@example.com", Roles: []string{domain.RoleUser, domain.RoleAdmin}}
}

func travelFixture() domain.Travel {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	desc := "A somewhat longer valid description here"
	return domain.Travel{
		ID:          42,
		UUID:        uuid.New(),
		Name:        "Summer Tour",
		Budget:      decimal.RequireFromString("1250.50"),
		StartedAt:   &start,
		Description: &desc,
		Status:      domain.TravelStatusActive,
		IsShared:    true,
		UserID:      7,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// newRequest builds a JSON request, logged in as user when user is non-nil.
func newRequest(t *testing.T, method, target string, body any, user *domain.User) *http.Request {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, jsonBody(t, body))
		req.Header.Set("Content-Type", "application/json")
	}
	if user != nil {
		req = req.WithContext(middleware.ContextWithUser(req.Context(), *user))
	}
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorJSON {
	t.Helper()
	var body errorJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func validTravelBody() map[string]any {
	return map[string]any{
		"name":        "Summer Tour",
		"budget":      1250.5,
		"isSharable":  true,
		"description": "A somewhat longer valid description here",
		"startedAt":   "2025-06-01",
	}
}
