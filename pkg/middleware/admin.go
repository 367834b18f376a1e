package middleware

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

// RoleFinder looks up the current role persisted for an email.
// An empty role (including "no such user") must be returned as "", nil.
type RoleFinder interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// AdminRole is the elevated role value stored on user records.
const AdminRole = "admin"

// RequireAdmin allows the request through only when the persisted role of
// the authenticated principal is admin. The role is re-read from the store
// on every request; the token's contents are never trusted for this
// decision, so a demoted user loses access immediately. A missing user
// record fails closed as non-admin. Must be mounted after VerifyToken.
func RequireAdmin(roles RoleFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}

			role, err := roles.RoleByEmail(r.Context(), claims.Email)
			if err != nil {
				logger.WithCtx(r.Context()).Error("auth: role lookup failed",
					"email", claims.Email, "error", err)
				response.Error(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}

			if role != AdminRole {
				response.Forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
