package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/middleware"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

type PaymentController struct {
	service  *services.PaymentService
	payments *repositories.PaymentRepository
}

func NewPaymentController(service *services.PaymentService, payments *repositories.PaymentRepository) *PaymentController {
	return &PaymentController{service: service, payments: payments}
}

// CreateIntent asks the gateway to authorize the given price and returns
// the client secret the frontend completes the charge with.
func (c *PaymentController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price" validate:"required,gt=0"`
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

	secret, err := c.service.CreateIntent(r.Context(), body.Price)
	if err != nil {
		response.Error(w, http.StatusBadGateway, "payment gateway unavailable")
		return
	}
	response.Success(w, map[string]string{"clientSecret": secret})
}

// Store records a completed payment and clears the purchased cart rows.
func (c *PaymentController) Store(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	errs, err := bind.JSON(r, &payment)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	payment.ID = primitive.NilObjectID
	if payment.Status == "" {
		payment.Status = "pending"
	}

	result, err := c.service.RecordPayment(r.Context(), &payment)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not record payment")
		return
	}
	response.Created(w, result)
}

// History returns the payment history for an email. Users may only read
// their own history.
func (c *PaymentController) History(w http.ResponseWriter, r *http.Request) {
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

	payments, err := c.payments.FindByEmail(r.Context(), email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load payments")
		return
	}
	response.Success(w, payments)
}
