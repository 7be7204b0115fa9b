package test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/checkout/internal/adapter/cart"
	"github.com/polkiloo/checkout/internal/adapter/gateway"
)

// GatewayStub records charges and approves them unless ChargeFn says otherwise.
type GatewayStub struct {
	ChargeFn func(context.Context, gateway.Charge) (*gateway.Receipt, error)

	mu      sync.Mutex
	charges []gateway.Charge
}

// Charge records the request and delegates to ChargeFn when set.
func (g *GatewayStub) Charge(ctx context.Context, charge gateway.Charge) (*gateway.Receipt, error) {
	g.mu.Lock()
	g.charges = append(g.charges, charge)
	g.mu.Unlock()

	if g.ChargeFn != nil {
		return g.ChargeFn(ctx, charge)
	}
	return &gateway.Receipt{Reference: charge.Reference, CapturedAt: time.Now()}, nil
}

// Charges returns a snapshot of recorded charges.
func (g *GatewayStub) Charges() []gateway.Charge {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]gateway.Charge(nil), g.charges...)
}

// CartStub returns a configured quote.
type CartStub struct {
	QuoteFn func(context.Context) (*cart.Quote, error)
}

// Quote delegates to QuoteFn or returns a single-line quote of 10.00 + 0.50.
func (c CartStub) Quote(ctx context.Context) (*cart.Quote, error) {
	if c.QuoteFn != nil {
		return c.QuoteFn(ctx)
	}
	return &cart.Quote{
		Lines: []cart.Line{{
			ProductName: "Stub product",
			Quantity:    1,
			UnitPrice:   decimal.RequireFromString("10.00"),
		}},
		Subtotal: decimal.RequireFromString("10.00"),
		Tax:      decimal.RequireFromString("0.50"),
		Total:    decimal.RequireFromString("10.50"),
	}, nil
}

// TransactionIDSequence hands out IDs in order and repeats the last one
// once exhausted.
type TransactionIDSequence struct {
	IDs []string

	mu    sync.Mutex
	calls int
}

// Next returns the next configured identifier.
func (s *TransactionIDSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.calls
	s.calls++
	if len(s.IDs) == 0 {
		return "TR-100000"
	}
	if idx >= len(s.IDs) {
		idx = len(s.IDs) - 1
	}
	return s.IDs[idx]
}

// Calls reports how many identifiers were drawn.
func (s *TransactionIDSequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var (
	_ gateway.Gateway = (*GatewayStub)(nil)
	_ cart.Provider   = CartStub{}
)
