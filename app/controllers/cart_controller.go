package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

type CartController struct {
	carts *repositories.CartRepository
}

func NewCartController(carts *repositories.CartRepository) *CartController {
	return &CartController{carts: carts}
}

// Index returns the cart rows for an email.
func (c *CartController) Index(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		response.Error(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	items, err := c.carts.FindByEmail(r.Context(), email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load cart")
		return
	}
	response.Success(w, items)
}

// Store adds an item to the cart. Duplicate adds of the same dish are
// separate rows, each standing for quantity one.
func (c *CartController) Store(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	errs, err := bind.JSON(r, &item)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}
	item.ID = primitive.NilObjectID

	id, err := c.carts.Insert(r.Context(), &item)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not save cart item")
		return
	}
	response.Created(w, map[string]string{"insertedId": id})
}

// Destroy removes a single cart row.
func (c *CartController) Destroy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := c.carts.Delete(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not delete cart item")
		return
	}
	if deleted == 0 {
		response.NotFound(w)
		return
	}
	response.SuccessMessage(w, "cart item removed", map[string]int64{"deletedCount": deleted})
}
