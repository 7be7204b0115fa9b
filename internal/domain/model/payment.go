package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the instrument chosen by the customer.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPayPal     PaymentMethod = "paypal"
)

// Payment records a funds transfer attempt tied to an order.
type Payment struct {
	ID            int64
	OrderID       int64
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod PaymentMethod
	Status        Status
	TransactionID string
	CreatedAt     time.Time
}

// NewPayment carries the fields required to create a payment.
type NewPayment struct {
	OrderID       int64
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod PaymentMethod
	Status        Status
	TransactionID string
}
