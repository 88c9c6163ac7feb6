package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func hit(m *RateLimitMiddleware, path string, remoteAddr string) int {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	m.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimit_GeneralBudget(t *testing.T) {
	m := NewRateLimitMiddleware(3, 2)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(m, "/api/v1/users", "10.0.0.1:1234"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(m, "/api/v1/users", "10.0.0.1:1234"))
}

func TestRateLimit_AuthBudgetIsTighter(t *testing.T) {
	m := NewRateLimitMiddleware(10, 2)

	assert.Equal(t, http.StatusOK, hit(m, "/api/v1/auth/login", "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, hit(m, "/api/v1/auth/login", "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, hit(m, "/api/v1/auth/login", "10.0.0.1:1234"))

	// The general budget is untouched by auth traffic.
	assert.Equal(t, http.StatusOK, hit(m, "/api/v1/users", "10.0.0.1:1234"))
}

func TestRateLimit_BudgetsArePerClient(t *testing.T) {
	m := NewRateLimitMiddleware(1, 1)

	assert.Equal(t, http.StatusOK, hit(m, "/api/v1/users", "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, hit(m, "/api/v1/users", "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, hit(m, "/api/v1/users", "10.0.0.2:1234"))
}

func TestExtractClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", extractClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", extractClientIP(req))
}
