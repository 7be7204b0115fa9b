package usecase

import (
	"context"

	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/domain/repository"
)

// PaymentUseCase serves payment reads.
type PaymentUseCase struct {
	payments repository.PaymentRepository
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(payments repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{payments: payments}
}

// Get returns the payment with id or ErrNotFound.
func (u *PaymentUseCase) Get(ctx context.Context, id int64) (*model.Payment, error) {
	return u.payments.GetByID(ctx, id)
}
