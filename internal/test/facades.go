package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
)

// FixedTime is the creation timestamp used by stub entities.
var FixedTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// SamplePayment builds a payment with the given id and status.
func SamplePayment(id int64, status model.Status) model.Payment {
	return model.Payment{
		ID:            id,
		OrderID:       id,
		Amount:        decimal.RequireFromString("94.49"),
		Currency:      "CAD",
		PaymentMethod: model.PaymentMethodCreditCard,
		Status:        status,
		TransactionID: "TR-123456",
		CreatedAt:     FixedTime,
	}
}

// SampleConfirmation builds a confirmation whose order and payment share status.
func SampleConfirmation(status model.Status) *model.Confirmation {
	return &model.Confirmation{
		Order: model.Order{
			ID:        1,
			Subtotal:  decimal.RequireFromString("89.99"),
			Tax:       decimal.RequireFromString("4.50"),
			Total:     decimal.RequireFromString("94.49"),
			Status:    status,
			CreatedAt: FixedTime,
		},
		Items: []model.OrderItem{{
			ID:          1,
			OrderID:     1,
			ProductName: "Produit exemple",
			Quantity:    1,
			Price:       decimal.RequireFromString("89.99"),
		}},
		Payment: SamplePayment(1, status),
	}
}

// CheckoutFacadeStub provides controllable behaviour for HTTP handlers.
type CheckoutFacadeStub struct {
	ProcessFn      func(context.Context, model.PaymentDetails) (*model.Confirmation, error)
	PaymentFn      func(context.Context, int64) (*model.Payment, error)
	OrderDetailsFn func(context.Context, int64) (*model.OrderDetails, error)
}

// Process delegates to ProcessFn or returns a completed confirmation.
func (s CheckoutFacadeStub) Process(ctx context.Context, details model.PaymentDetails) (*model.Confirmation, error) {
	if s.ProcessFn != nil {
		return s.ProcessFn(ctx, details)
	}
	return SampleConfirmation(model.StatusCompleted), nil
}

// Payment delegates to PaymentFn or reports not found.
func (s CheckoutFacadeStub) Payment(ctx context.Context, id int64) (*model.Payment, error) {
	if s.PaymentFn != nil {
		return s.PaymentFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// OrderDetails delegates to OrderDetailsFn or reports not found.
func (s CheckoutFacadeStub) OrderDetails(ctx context.Context, id int64) (*model.OrderDetails, error) {
	if s.OrderDetailsFn != nil {
		return s.OrderDetailsFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}
