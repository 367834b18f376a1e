package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bistro/app/controllers"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/auth"
	"github.com/shashiranjanraj/bistro/pkg/middleware"
)

// These tests cover the self-only rule: a valid token for one user must
// not read another user's data. The forbidden path returns before any
// database call, so no running Mongo is needed.

func testRouter() http.Handler {
	userController := controllers.NewUserController(repositories.NewUserRepository())
	cartController := controllers.NewCartController(repositories.NewCartRepository())
	paymentController := controllers.NewPaymentController(nil, repositories.NewPaymentRepository())

	r := chi.NewRouter()
	r.Get("/carts", cartController.Index)
	r.Group(func(r chi.Router) {
		r.Use(middleware.VerifyToken)
		r.Get("/users/admin/{email}", userController.CheckAdmin)
		r.Get("/payments/{email}", paymentController.History)
	})
	return r
}

func authedGet(t *testing.T, path, email string) *http.Request {
	t.Helper()
	token, err := auth.GenerateToken(email)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestCheckAdminOtherUserForbidden(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, authedGet(t, "/users/admin/victim@example.com", "snoop@example.com"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPaymentHistoryOtherUserForbidden(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, authedGet(t, "/payments/victim@example.com", "snoop@example.com"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPaymentHistoryWithoutToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/victim@example.com", nil)
	testRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartMissingEmailParam(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	testRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
