package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/metrics"
	"github.com/shashiranjanraj/bistro/pkg/payment"
)

// PaymentStore persists completed payments.
type PaymentStore interface {
	Insert(ctx context.Context, p *models.Payment) (string, error)
}

// CartClearer removes purchased cart rows.
type CartClearer interface {
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

// DeleteSummary mirrors the shape Mongo drivers return for bulk deletes,
// which the frontend already checks for deletedCount.
type DeleteSummary struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ReconcileResult is the outcome of recording a payment. CartCleared is
// false when the payment was saved but the cart rows could not be removed;
// the order still stands and the rows can be cleaned up later.
type ReconcileResult struct {
	Payment     *models.Payment `json:"paymentResult"`
	Deleted     DeleteSummary   `json:"deleteResult"`
	CartCleared bool            `json:"cartCleared"`
}

// PaymentService turns a confirmed charge into a durable order: persist
// the payment first, then clear the purchased cart rows, then fire the
// confirmation notification. Later steps never undo earlier ones.
type PaymentService struct {
	payments PaymentStore
	carts    CartClearer
	gateway  payment.Gateway

	// notify sends the order confirmation. Failures are logged and
	// swallowed; a lost email never fails a paid order.
	notify func(ctx context.Context, p *models.Payment) error
}

func NewPaymentService(payments PaymentStore, carts CartClearer, gateway payment.Gateway, notify func(ctx context.Context, p *models.Payment) error) *PaymentService {
	return &PaymentService{payments: payments, carts: carts, gateway: gateway, notify: notify}
}

// CreateIntent asks the payment gateway for a client secret covering the
// given price.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	return s.gateway.CreateIntent(ctx, price)
}

// RecordPayment persists the payment and then clears the purchased cart
// rows. The insert is the durability checkpoint: once it succeeds the
// order exists, and a failed cart clear downgrades the result instead of
// rolling anything back. Replaying the same request is harmless — the
// rows are already gone, so the second clear deletes nothing.
func (s *PaymentService) RecordPayment(ctx context.Context, p *models.Payment) (*ReconcileResult, error) {
	if _, err := s.payments.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	result := &ReconcileResult{Payment: p, CartCleared: true}

	deleted, err := s.carts.DeleteMany(ctx, p.CartIDs)
	if err != nil {
		logger.WithCtx(ctx).Error("payment saved but cart clear failed",
			"transactionId", p.TransactionID, "email", p.Email, "error", err)
		result.CartCleared = false
		metrics.RecordPayment("partial", p.Price)
	} else {
		result.Deleted.DeletedCount = deleted
		metrics.RecordPayment("complete", p.Price)
	}

	if s.notify != nil {
		if err := s.notify(ctx, p); err != nil {
			logger.WithCtx(ctx).Warn("payment confirmation not sent",
				"transactionId", p.TransactionID, "email", p.Email, "error", err)
		}
	}

	return result, nil
}
