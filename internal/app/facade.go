package app

import (
	"context"

	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/usecase"
)

// CheckoutFacade is the single entry point transports use to reach use cases.
type CheckoutFacade struct {
	checkout *usecase.CheckoutUseCase
	payments *usecase.PaymentUseCase
	orders   *usecase.OrderUseCase
	users    *usecase.UserUseCase
}

func NewCheckoutFacade(checkout *usecase.CheckoutUseCase, payments *usecase.PaymentUseCase, orders *usecase.OrderUseCase, users *usecase.UserUseCase) *CheckoutFacade {
	return &CheckoutFacade{checkout: checkout, payments: payments, orders: orders, users: users}
}

func (f *CheckoutFacade) Process(ctx context.Context, details model.PaymentDetails) (*model.Confirmation, error) {
	return f.checkout.Process(ctx, details)
}

func (f *CheckoutFacade) Payment(ctx context.Context, id int64) (*model.Payment, error) {
	return f.payments.Get(ctx, id)
}

func (f *CheckoutFacade) OrderDetails(ctx context.Context, id int64) (*model.OrderDetails, error) {
	return f.orders.Details(ctx, id)
}

func (f *CheckoutFacade) RegisterUser(ctx context.Context, username, password string) (*model.User, error) {
	return f.users.Register(ctx, username, password)
}

func (f *CheckoutFacade) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	return f.users.Authenticate(ctx, username, password)
}

func (f *CheckoutFacade) UserOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.users.Orders(ctx, userID)
}
