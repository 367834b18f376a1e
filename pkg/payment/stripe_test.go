package payment

import (
	"context"
	"errors"
	"testing"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{1, 100},
		{12.5, 1250},
		{19.99, 1998}, // 19.99*100 is 1998.999…; truncation, not rounding
		{0.999, 99},
	}
	for _, c := range cases {
		if got := MinorUnits(c.price); got != c.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", c.price, got, c.want)
		}
	}
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	g := NewStripeGateway("usd")
	for _, price := range []float64{0, -3.5} {
		_, err := g.CreateIntent(context.Background(), price)
		if !errors.Is(err, ErrGateway) {
			t.Errorf("CreateIntent(%v) error = %v, want ErrGateway", price, err)
		}
	}
}
