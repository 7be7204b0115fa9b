package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/checkout/internal/domain/model"
)

// ErrDeclined indicates the gateway refused the charge.
var ErrDeclined = errors.New("payment declined")

// Charge describes funds to capture.
type Charge struct {
	Reference string
	Amount    decimal.Decimal
	Currency  string
	Method    model.PaymentMethod
	Holder    string
	Email     string
}

// Receipt acknowledges a captured charge.
type Receipt struct {
	Reference  string
	CapturedAt time.Time
}

// Gateway captures payments. Implementations must honour ctx
// cancellation and deadlines.
type Gateway interface {
	Charge(ctx context.Context, charge Charge) (*Receipt, error)
}

// Simulated approves every well-formed charge without network I/O.
type Simulated struct {
	latency time.Duration
	now     func() time.Time
}

// NewSimulated creates a gateway that waits latency before approving.
func NewSimulated(latency time.Duration) *Simulated {
	return &Simulated{latency: latency, now: time.Now}
}

// Charge approves the charge unless ctx ends first.
func (g *Simulated) Charge(ctx context.Context, charge Charge) (*Receipt, error) {
	if !charge.Amount.IsPositive() {
		return nil, fmt.Errorf("amount %s: %w", charge.Amount, ErrDeclined)
	}

	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Receipt{Reference: charge.Reference, CapturedAt: g.now()}, nil
}
