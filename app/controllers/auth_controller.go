package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

// IssueToken signs a token for the posted email. Tokens are issued to any
// email; authorization is decided per-request against the stored role, so
// an issued token grants nothing by itself.
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.service.IssueToken(body.Email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	response.Success(w, map[string]string{"token": token})
}
