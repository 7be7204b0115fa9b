package memory

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/checkout/internal/domain/repository"
)

// Module wires in-memory storage and repository adapters.
var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.OrderItemRepository { return s.OrderItems() },
		func(s *Storage) repository.PaymentRepository { return s.Payments() },
		func(s *Storage) repository.Transactor { return s },
	),
	fx.Invoke(registerLifecycle),
)

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stats := storage.Stats()
			storage.Logger().Info("discarding in-memory state",
				slog.Int("users", stats.Users),
				slog.Int("orders", stats.Orders),
				slog.Int("order_items", stats.OrderItems),
				slog.Int("payments", stats.Payments),
			)
			return nil
		},
	})
}
