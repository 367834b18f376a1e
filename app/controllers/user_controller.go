package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/middleware"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(users *repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// Index returns every registered user. Admin only.
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load users")
		return
	}
	response.Success(w, users)
}

// Store registers a user on first sign-in. Repeat sign-ins with a known
// email are acknowledged without inserting a duplicate.
func (c *UserController) Store(w http.ResponseWriter, r *http.Request) {
	var user models.User
	errs, err := bind.JSON(r, &user)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}
	user.ID = primitive.NilObjectID // ids are always server-generated
	user.Role = ""                  // roles are never self-assigned

	inserted, err := c.users.CreateIfAbsent(r.Context(), &user)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not save user")
		return
	}
	if !inserted {
		response.SuccessMessage(w, "user already exists", nil)
		return
	}
	response.Created(w, user)
}

// CheckAdmin reports whether the email holds the admin role. Callers may
// only ask about themselves.
func (c *UserController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}
	if claims.Email != email {
		response.Forbidden(w)
		return
	}

	role, err := c.users.RoleByEmail(r.Context(), email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not check role")
		return
	}
	response.Success(w, map[string]bool{"admin": role == middleware.AdminRole})
}

// Promote grants the admin role to a user. Admin only.
func (c *UserController) Promote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	modified, err := c.users.PromoteToAdmin(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not update user")
		return
	}
	if modified == 0 {
		response.NotFound(w)
		return
	}
	response.SuccessMessage(w, "user promoted to admin", map[string]int64{"modifiedCount": modified})
}

// Destroy removes a user. Admin only.
func (c *UserController) Destroy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := c.users.Delete(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not delete user")
		return
	}
	if deleted == 0 {
		response.NotFound(w)
		return
	}
	response.SuccessMessage(w, "user deleted", map[string]int64{"deletedCount": deleted})
}
