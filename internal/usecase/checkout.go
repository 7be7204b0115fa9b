package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/checkout/internal/adapter/cart"
	"github.com/polkiloo/checkout/internal/adapter/gateway"
	"github.com/polkiloo/checkout/internal/config"
	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/domain/repository"
)

// CheckoutSettings tunes checkout processing.
type CheckoutSettings struct {
	Currency              string
	GatewayTimeout        time.Duration
	TransactionIDAttempts int
}

// NewCheckoutSettings derives settings from application config.
func NewCheckoutSettings(cfg *config.Config) CheckoutSettings {
	return CheckoutSettings{
		Currency:              cfg.Currency,
		GatewayTimeout:        cfg.GatewayTimeout,
		TransactionIDAttempts: cfg.TransactionIDAttempts,
	}
}

// CheckoutUseCase turns a validated payment submission into a persisted
// order, its items and a payment.
type CheckoutUseCase struct {
	tx       repository.Transactor
	cart     cart.Provider
	gateway  gateway.Gateway
	ids      TransactionIDGenerator
	settings CheckoutSettings
	logger   *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	tx repository.Transactor,
	provider cart.Provider,
	gw gateway.Gateway,
	ids TransactionIDGenerator,
	settings CheckoutSettings,
	logger *slog.Logger,
) *CheckoutUseCase {
	if settings.TransactionIDAttempts <= 0 {
		settings.TransactionIDAttempts = 1
	}
	return &CheckoutUseCase{
		tx:       tx,
		cart:     provider,
		gateway:  gw,
		ids:      ids,
		settings: settings,
		logger:   logger,
	}
}

// Process charges the current cart and records the outcome. A declined or
// timed out charge is not an error: the returned confirmation carries the
// failed status. Errors are returned only when nothing was recorded.
func (u *CheckoutUseCase) Process(ctx context.Context, details model.PaymentDetails) (*model.Confirmation, error) {
	quote, err := u.cart.Quote(ctx)
	if err != nil {
		return nil, fmt.Errorf("quote cart: %w", err)
	}

	status, err := u.charge(ctx, quote, details)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		transactionID := u.ids.Next()
		confirmation, err := u.record(ctx, quote, details.Method, status, transactionID)
		if err == nil {
			u.logger.Info("checkout processed",
				slog.Int64("order_id", confirmation.Order.ID),
				slog.Int64("payment_id", confirmation.Payment.ID),
				slog.String("transaction_id", transactionID),
				slog.String("status", string(status)),
			)
			return confirmation, nil
		}
		if !errors.Is(err, domainErrors.ErrDuplicateTransactionID) {
			return nil, fmt.Errorf("record checkout: %w", err)
		}
		if attempt >= u.settings.TransactionIDAttempts {
			return nil, fmt.Errorf("record checkout after %d attempts: %w", attempt, err)
		}
		u.logger.Debug("transaction id collision", slog.String("transaction_id", transactionID), slog.Int("attempt", attempt))
	}
}

func (u *CheckoutUseCase) charge(ctx context.Context, quote *cart.Quote, details model.PaymentDetails) (model.Status, error) {
	chargeCtx, cancel := context.WithTimeout(ctx, u.settings.GatewayTimeout)
	defer cancel()

	next := model.StatusCompleted
	receipt, err := u.gateway.Charge(chargeCtx, gateway.Charge{
		Reference: uuid.NewString(),
		Amount:    quote.Total,
		Currency:  u.settings.Currency,
		Method:    details.Method,
		Holder:    details.CardholderName,
		Email:     details.Email,
	})
	if err != nil {
		u.logger.Warn("payment not captured", slog.String("method", string(details.Method)), slog.Any("error", err))
		next = model.StatusFailed
	} else {
		u.logger.Debug("payment captured", slog.String("reference", receipt.Reference))
	}

	return model.StatusPending.Transition(next)
}

func (u *CheckoutUseCase) record(ctx context.Context, quote *cart.Quote, method model.PaymentMethod, status model.Status, transactionID string) (*model.Confirmation, error) {
	var confirmation model.Confirmation

	err := u.tx.WithinTransaction(ctx, func(repos repository.Factory) error {
		order, err := repos.Orders().Create(ctx, model.NewOrder{
			Subtotal: quote.Subtotal,
			Tax:      quote.Tax,
			Total:    quote.Total,
			Status:   status,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		items := make([]model.OrderItem, 0, len(quote.Lines))
		for _, line := range quote.Lines {
			item, err := repos.OrderItems().Create(ctx, model.NewOrderItem{
				OrderID:     order.ID,
				ProductName: line.ProductName,
				Quantity:    line.Quantity,
				Price:       line.UnitPrice,
			})
			if err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
			items = append(items, *item)
		}

		payment, err := repos.Payments().Create(ctx, model.NewPayment{
			OrderID:       order.ID,
			Amount:        order.Total,
			Currency:      u.settings.Currency,
			PaymentMethod: method,
			Status:        status,
			TransactionID: transactionID,
		})
		if err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		confirmation = model.Confirmation{Order: *order, Items: items, Payment: *payment}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &confirmation, nil
}
