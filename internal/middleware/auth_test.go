package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-travel-identity/internal/model"
)

type stubValidator struct {
	claims *model.Claims
	err    error
}

func (s *stubValidator) ValidateToken(string) (*model.Claims, error) {
	return s.claims, s.err
}

func okClaims(role model.Role) *model.Claims {
	return &model.Claims{
		Subject:   "user@example.com",
		UserID:    uuid.New(),
		Role:      role,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "user@example.com", claims.Subject)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing header", func(t *testing.T) {
		m := NewAuthMiddleware(&stubValidator{claims: okClaims(model.RoleUser)})
		rec := httptest.NewRecorder()
		m.RequireAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		m := NewAuthMiddleware(&stubValidator{claims: okClaims(model.RoleUser)})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		m.RequireAuth(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		m := NewAuthMiddleware(&stubValidator{err: model.ErrInvalidToken})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		m.RequireAuth(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches handler with claims", func(t *testing.T) {
		m := NewAuthMiddleware(&stubValidator{claims: okClaims(model.RoleUser)})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		m.RequireAuth(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	run := func(role model.Role, allowed ...model.Role) int {
		m := NewAuthMiddleware(&stubValidator{claims: okClaims(role)})
		handler := m.RequireAuth(m.RequireRoles(allowed...)(next))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run(model.RoleAdmin, model.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, run(model.RoleUser, model.RoleAdmin))
	assert.Equal(t, http.StatusOK, run(model.RoleUser, model.RoleUser, model.RoleAdmin))
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", BearerToken(req))

	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", BearerToken(req))

	req.Header.Set("Authorization", "bearer  spaced-token ")
	assert.Equal(t, "spaced-token", BearerToken(req))
}
