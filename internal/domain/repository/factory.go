package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Payments() PaymentRepository
}

// Transactor runs fn as one unit of work. Writes made through the
// factory passed to fn become visible only if fn returns nil.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(Factory) error) error
}
