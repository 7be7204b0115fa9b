package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order describes a checkout attempt with computed totals.
type Order struct {
	ID        int64
	UserID    *int64
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	Status    Status
	CreatedAt time.Time
}

// NewOrder carries the fields a caller supplies when creating an order.
type NewOrder struct {
	UserID   *int64
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Status   Status
}

// Anonymous reports whether the order has no owning user.
func (o Order) Anonymous() bool {
	return o.UserID == nil
}

// Balanced reports whether Total equals Subtotal plus Tax.
func (o Order) Balanced() bool {
	return o.Total.Equal(o.Subtotal.Add(o.Tax))
}
