// Package payment wraps the Stripe payment gateway. The gateway is the
// source of truth for authorization of funds; nothing is persisted here.
package payment

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"

	"github.com/shashiranjanraj/bistro/pkg/metrics"
)

// ErrGateway wraps every failure returned by the payment processor.
// It is surfaced to the caller as a failed checkout and never retried
// silently; retrying is the client's explicit decision.
var ErrGateway = errors.New("payment: gateway request failed")

// Gateway authorizes funds for a checkout and hands back the client secret
// the frontend needs to finish the charge.
type Gateway interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// Setup installs the server-side API key. Call once at boot.
func Setup(apiKey string) {
	stripe.Key = apiKey
}

// MinorUnits converts a decimal price to the gateway's smallest-currency-unit
// integer representation (multiply by 100 and truncate).
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}

// StripeGateway creates payment intents against Stripe.
type StripeGateway struct {
	currency string
}

// NewStripeGateway returns a gateway charging in the given ISO currency code.
func NewStripeGateway(currency string) *StripeGateway {
	return &StripeGateway{currency: currency}
}

// CreateIntent requests a card-only payment intent for price and returns the
// client secret the frontend needs to complete payment.
func (g *StripeGateway) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := MinorUnits(price)
	if amount <= 0 {
		metrics.IntentFailures.Inc()
		return "", fmt.Errorf("%w: invalid amount %.2f", ErrGateway, price)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		metrics.IntentFailures.Inc()
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	return intent.ClientSecret, nil
}
