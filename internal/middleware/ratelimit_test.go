package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/travelbook/internal/middleware"
)

func sendFrom(h http.Handler, addr string) int {
	req := httptest.NewRequest(http.MethodPost, "/travels", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_BurstThen429(t *testing.T) {
	// A near-zero refill rate makes the test independent of wall-clock time.
	h := middleware.NewRateLimiter(0.0001, 2).Handler(trivialHandler)

	assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.1:2222"))
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(h, "10.0.0.1:3333"))
}

func TestRateLimiter_PerClient(t *testing.T) {
	h := middleware.NewRateLimiter(0.0001, 1).Handler(trivialHandler)

	assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.1:1111"))
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(h, "10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.2:1111"), "other clients keep their own budget")
}
