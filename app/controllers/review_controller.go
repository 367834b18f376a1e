package controllers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

type ReviewController struct {
	reviews *repositories.ReviewRepository
}

func NewReviewController(reviews *repositories.ReviewRepository) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// Index returns all reviews. Public.
func (c *ReviewController) Index(w http.ResponseWriter, r *http.Request) {
	reviews, err := c.reviews.All(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load reviews")
		return
	}
	response.Success(w, reviews)
}

// Store saves a review from a signed-in user.
func (c *ReviewController) Store(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	errs, err := bind.JSON(r, &review)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}
	review.ID = primitive.NilObjectID

	id, err := c.reviews.Insert(r.Context(), &review)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not save review")
		return
	}
	response.Created(w, map[string]string{"insertedId": id})
}
