package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/polkiloo/checkout/internal/adapter/cart"
	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/storage/memory"
	testhelpers "github.com/polkiloo/checkout/internal/test"
	"github.com/polkiloo/checkout/internal/usecase"
)

func newFacade(t *testing.T) *CheckoutFacade {
	t.Helper()
	logger := testhelpers.DiscardLogger()
	store := memory.New(logger)
	settings := usecase.CheckoutSettings{Currency: "CAD", GatewayTimeout: time.Second, TransactionIDAttempts: 3}

	return NewCheckoutFacade(
		usecase.NewCheckoutUseCase(store, cart.NewDefault(), &testhelpers.GatewayStub{}, usecase.NewRandomTransactionIDs(), settings, logger),
		usecase.NewPaymentUseCase(store.Payments()),
		usecase.NewOrderUseCase(store.Orders(), store.OrderItems(), store.Payments()),
		usecase.NewUserUseCase(store.Users(), store.Orders(), testhelpers.HasherStub{}),
	)
}

func TestCheckoutFacadeProcessAndLookups(t *testing.T) {
	facade := newFacade(t)
	ctx := context.Background()

	confirmation, err := facade.Process(ctx, model.PaymentDetails{Method: model.PaymentMethodDebitCard})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !confirmation.Succeeded() {
		t.Fatalf("expected completed payment, got %s", confirmation.Payment.Status)
	}

	payment, err := facade.Payment(ctx, confirmation.Payment.ID)
	if err != nil {
		t.Fatalf("payment: %v", err)
	}
	if payment.TransactionID != confirmation.Payment.TransactionID || payment.PaymentMethod != model.PaymentMethodDebitCard {
		t.Fatalf("unexpected payment %+v", payment)
	}

	details, err := facade.OrderDetails(ctx, confirmation.Order.ID)
	if err != nil {
		t.Fatalf("order details: %v", err)
	}
	if len(details.Items) != 1 || len(details.Payments) != 1 {
		t.Fatalf("unexpected details %+v", details)
	}

	if _, err := facade.Payment(ctx, 99999); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := facade.OrderDetails(ctx, 99999); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCheckoutFacadeUsers(t *testing.T) {
	facade := newFacade(t)
	ctx := context.Background()

	usr, err := facade.RegisterUser(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	authenticated, err := facade.Authenticate(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authenticated.ID != usr.ID {
		t.Fatalf("expected user %d, got %d", usr.ID, authenticated.ID)
	}

	if _, err := facade.Process(ctx, model.PaymentDetails{Method: model.PaymentMethodPayPal}); err != nil {
		t.Fatalf("process: %v", err)
	}
	orders, err := facade.UserOrders(ctx, usr.ID)
	if err != nil {
		t.Fatalf("user orders: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("anonymous checkouts must not be linked to users, got %+v", orders)
	}
}
