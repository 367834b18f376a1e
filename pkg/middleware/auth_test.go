package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bistro/pkg/auth"
	"github.com/shashiranjanraj/bistro/pkg/middleware"
)

func protected(t *testing.T, reached *bool, wantEmail string) http.Handler {
	return middleware.VerifyToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		claims, ok := middleware.ClaimsFromCtx(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantEmail, claims.Email)
	}))
}

func TestVerifyTokenValid(t *testing.T) {
	token, err := auth.GenerateToken("diner@example.com")
	require.NoError(t, err)

	reached := false
	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protected(t, &reached, "diner@example.com").ServeHTTP(rec, req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyTokenMissing(t *testing.T) {
	reached := false
	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	rec := httptest.NewRecorder()

	protected(t, &reached, "").ServeHTTP(rec, req)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyTokenGarbage(t *testing.T) {
	reached := false
	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rec := httptest.NewRecorder()

	protected(t, &reached, "").ServeHTTP(rec, req)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type fakeRoles struct {
	role string
	err  error
}

func (f fakeRoles) RoleByEmail(context.Context, string) (string, error) { return f.role, f.err }

func adminOnly(roles middleware.RoleFinder, reached *bool) http.Handler {
	guard := middleware.RequireAdmin(roles)
	return middleware.VerifyToken(guard(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		*reached = true
	})))
}

func adminRequest(t *testing.T, email string) *http.Request {
	t.Helper()
	token, err := auth.GenerateToken(email)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/admin-states", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRequireAdminAllows(t *testing.T) {
	reached := false
	rec := httptest.NewRecorder()

	adminOnly(fakeRoles{role: "admin"}, &reached).ServeHTTP(rec, adminRequest(t, "boss@example.com"))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminForbidsRegularUser(t *testing.T) {
	reached := false
	rec := httptest.NewRecorder()

	adminOnly(fakeRoles{role: ""}, &reached).ServeHTTP(rec, adminRequest(t, "diner@example.com"))

	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminForbidsUnknownUser(t *testing.T) {
	// A valid token whose email has no user record must fail closed.
	reached := false
	rec := httptest.NewRecorder()

	adminOnly(fakeRoles{role: ""}, &reached).ServeHTTP(rec, adminRequest(t, "ghost@example.com"))

	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminLookupError(t *testing.T) {
	reached := false
	rec := httptest.NewRecorder()

	adminOnly(fakeRoles{err: errors.New("mongo down")}, &reached).ServeHTTP(rec, adminRequest(t, "boss@example.com"))

	assert.False(t, reached)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireAdminWithoutToken(t *testing.T) {
	reached := false
	req := httptest.NewRequest(http.MethodGet, "/admin-states", nil)
	rec := httptest.NewRecorder()

	adminOnly(fakeRoles{role: "admin"}, &reached).ServeHTTP(rec, req)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
