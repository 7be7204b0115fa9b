package handlers

import (
	"context"

	"github.com/polkiloo/checkout/internal/domain/model"
)

// PaymentFacade exposes checkout and payment reads to handlers.
type PaymentFacade interface {
	Process(ctx context.Context, details model.PaymentDetails) (*model.Confirmation, error)
	Payment(ctx context.Context, id int64) (*model.Payment, error)
}

// OrderFacade exposes order reads to handlers.
type OrderFacade interface {
	OrderDetails(ctx context.Context, id int64) (*model.OrderDetails, error)
}

// CheckoutFacade aggregates the full set of operations used across handlers.
type CheckoutFacade interface {
	PaymentFacade
	OrderFacade
}
