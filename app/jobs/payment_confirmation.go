// Package jobs holds the background jobs processed by the queue workers.
package jobs

import (
	"fmt"

	"github.com/shashiranjanraj/bistro/pkg/mail"
	"github.com/shashiranjanraj/bistro/pkg/queue"
)

// PaymentConfirmation emails an order confirmation after checkout. It is
// dispatched fire-and-forget: checkout never waits on it and never fails
// because of it.
type PaymentConfirmation struct {
	Email         string  `json:"email"`
	TransactionID string  `json:"transactionId"`
	Price         float64 `json:"price"`
	Items         int     `json:"items"`
}

// RegisterJobs wires every job type into the queue registry. Call once at
// boot, before workers start.
func RegisterJobs() {
	queue.Register("*jobs.PaymentConfirmation", func() queue.Job {
		return &PaymentConfirmation{}
	})
}

func (j *PaymentConfirmation) Handle() error {
	return mail.To(j.Email).
		Subject("Your Bistro Boss order is confirmed").
		Text(fmt.Sprintf(
			"Thanks for your order!\n\nTransaction: %s\nItems: %d\nTotal: $%.2f\n\nWe are preparing your food now.",
			j.TransactionID, j.Items, j.Price,
		)).
		Send()
}
