package test

import (
	"context"
	"log/slog"

	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/domain/repository"
)

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// TransactorStub fails every unit of work with Err, or runs fn against
// Factory when Err is nil.
type TransactorStub struct {
	Factory repository.Factory
	Err     error
	Calls   int
}

// WithinTransaction returns Err or delegates to fn.
func (s *TransactorStub) WithinTransaction(ctx context.Context, fn func(repository.Factory) error) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}
	return fn(s.Factory)
}

// PaymentRepositoryStub serves payment reads from overrides.
type PaymentRepositoryStub struct {
	CreateFn      func(context.Context, model.NewPayment) (*model.Payment, error)
	GetByIDFn     func(context.Context, int64) (*model.Payment, error)
	ListByOrderFn func(context.Context, int64) ([]model.Payment, error)
}

// Create delegates to CreateFn.
func (s PaymentRepositoryStub) Create(ctx context.Context, payment model.NewPayment) (*model.Payment, error) {
	return s.CreateFn(ctx, payment)
}

// GetByID delegates to GetByIDFn.
func (s PaymentRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	return s.GetByIDFn(ctx, id)
}

// ListByOrder delegates to ListByOrderFn or returns an empty list.
func (s PaymentRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	if s.ListByOrderFn != nil {
		return s.ListByOrderFn(ctx, orderID)
	}
	return []model.Payment{}, nil
}

var (
	_ repository.Transactor        = (*TransactorStub)(nil)
	_ repository.PaymentRepository = PaymentRepositoryStub{}
)
