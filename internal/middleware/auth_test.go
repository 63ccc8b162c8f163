package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	_, ok := bearerToken(r)
	assert.False(t, ok)

	r.Header.Set("Authorization", "Bearer abc123")
	token, ok := bearerToken(r)
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)

	r.Header.Set("Authorization", "Basic abc123")
	_, ok = bearerToken(r)
	assert.False(t, ok)
}

func TestRequireRole(t *testing.T) {
	m := &AuthMiddleware{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := m.RequireRole("admin")(next)

	// No role in context
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Wrong role
	rec = httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), RoleKey, "staff"))
	protected.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Allowed role
	rec = httptest.NewRecorder()
	r = httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), RoleKey, "admin"))
	protected.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusOK, rec.Code)
}
