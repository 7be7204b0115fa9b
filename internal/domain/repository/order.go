package repository

import (
	"context"

	"github.com/polkiloo/checkout/internal/domain/model"
)

// OrderRepository describes storage operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order model.NewOrder) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
}

// OrderItemRepository describes storage operations with order lines.
type OrderItemRepository interface {
	Create(ctx context.Context, item model.NewOrderItem) (*model.OrderItem, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
