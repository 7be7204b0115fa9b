package model

import "github.com/shopspring/decimal"

// OrderItem is a single line of an order.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// NewOrderItem carries the fields required to create an order item.
type NewOrderItem struct {
	OrderID     int64
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// LineTotal returns unit price multiplied by quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
