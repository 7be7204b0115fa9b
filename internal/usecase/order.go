package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/domain/repository"
)

// OrderUseCase serves order reads.
type OrderUseCase struct {
	orders   repository.OrderRepository
	items    repository.OrderItemRepository
	payments repository.PaymentRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, items repository.OrderItemRepository, payments repository.PaymentRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, items: items, payments: payments}
}

// Details returns the order with its items and payments.
func (u *OrderUseCase) Details(ctx context.Context, id int64) (*model.OrderDetails, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &model.OrderDetails{Order: *order}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := u.items.ListByOrder(gctx, order.ID)
		details.Items = items
		return err
	})
	g.Go(func() error {
		payments, err := u.payments.ListByOrder(gctx, order.ID)
		details.Payments = payments
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}
