package repository

import (
	"context"

	"github.com/polkiloo/checkout/internal/domain/model"
)

// PaymentRepository describes storage operations with payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment model.NewPayment) (*model.Payment, error)
	GetByID(ctx context.Context, id int64) (*model.Payment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error)
}
