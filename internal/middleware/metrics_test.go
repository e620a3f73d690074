package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/travelbook/internal/middleware"
)

type statusSpy struct {
	method string
	status int
}

func (s *statusSpy) RecordHTTPStatus(method string, status int) {
	s.method, s.status = method, status
}

func TestStatusMetrics_RecordsStatus(t *testing.T) {
	spy := &statusSpy{}
	h := middleware.NewStatusMetrics(spy)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/travels", nil))

	assert.Equal(t, http.MethodPost, spy.method)
	assert.Equal(t, http.StatusCreated, spy.status)
}

func TestStatusMetrics_CollapsesUnknownMethods(t *testing.T) {
	spy := &statusSpy{}
	h := middleware.NewStatusMetrics(spy)(trivialHandler)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("BREW", "/travels", nil))

	assert.Equal(t, "OTHER", spy.method)
	assert.Equal(t, http.StatusOK, spy.status)
}
