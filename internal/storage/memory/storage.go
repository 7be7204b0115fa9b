package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/domain/repository"
)

// Storage acts as repository facade backed by process memory.
// A single RWMutex serializes writers; transactions hold the write
// lock from start to commit.
type Storage struct {
	mu     sync.RWMutex
	ids    *Allocator
	logger *slog.Logger
	now    func() time.Time

	users        *table[model.User]
	orders       *table[model.Order]
	orderItems   *table[model.OrderItem]
	payments     *table[model.Payment]
	transactions map[string]int64
}

// Stats reports how many rows each collection holds.
type Stats struct {
	Users      int
	Orders     int
	OrderItems int
	Payments   int
}

// staged holds writes of an open transaction.
type staged struct {
	users      []model.User
	orders     []model.Order
	orderItems []model.OrderItem
	payments   []model.Payment
}

// scope binds repositories either to committed state (tx == nil) or to
// an open transaction whose caller already holds the write lock.
type scope struct {
	storage *Storage
	tx      *staged
}

type userRepository struct{ scope }

type orderRepository struct{ scope }

type orderItemRepository struct{ scope }

type paymentRepository struct{ scope }

// New creates an empty storage.
func New(logger *slog.Logger) *Storage {
	return &Storage{
		ids:          NewAllocator(),
		logger:       logger,
		now:          time.Now,
		users:        newTable[model.User](),
		orders:       newTable[model.Order](),
		orderItems:   newTable[model.OrderItem](),
		payments:     newTable[model.Payment](),
		transactions: make(map[string]int64),
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{scope{storage: s}}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{scope{storage: s}}
}

func (s *Storage) OrderItems() repository.OrderItemRepository {
	return &orderItemRepository{scope{storage: s}}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{scope{storage: s}}
}

// WithinTransaction executes fn inside a staged unit of work. Staged
// rows are applied only when fn returns nil.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(repository.Factory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	factory := &txFactory{scope{storage: s, tx: &staged{}}}
	defer func() {
		if err != nil {
			s.logger.Debug("transaction rolled back", slog.String("error", err.Error()))
			return
		}
		if err = ctx.Err(); err != nil {
			s.logger.Debug("transaction abandoned", slog.String("error", err.Error()))
			return
		}
		s.commit(factory.tx)
	}()

	err = fn(factory)
	return err
}

// Stats returns row counts of committed state.
func (s *Storage) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Users:      s.users.len(),
		Orders:     s.orders.len(),
		OrderItems: s.orderItems.len(),
		Payments:   s.payments.len(),
	}
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

func (s *Storage) commit(tx *staged) {
	for _, u := range tx.users {
		s.users.insert(u.ID, u)
	}
	for _, o := range tx.orders {
		s.orders.insert(o.ID, o)
	}
	for _, i := range tx.orderItems {
		s.orderItems.insert(i.ID, i)
	}
	for _, p := range tx.payments {
		s.payments.insert(p.ID, p)
		s.transactions[p.TransactionID] = p.ID
	}
}

type txFactory struct{ scope }

var (
	_ repository.Factory    = (*Storage)(nil)
	_ repository.Transactor = (*Storage)(nil)
	_ repository.Factory    = (*txFactory)(nil)
)

func (f *txFactory) Users() repository.UserRepository {
	return &userRepository{f.scope}
}

func (f *txFactory) Orders() repository.OrderRepository {
	return &orderRepository{f.scope}
}

func (f *txFactory) OrderItems() repository.OrderItemRepository {
	return &orderItemRepository{f.scope}
}

func (f *txFactory) Payments() repository.PaymentRepository {
	return &paymentRepository{f.scope}
}

func (sc scope) read(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sc.tx == nil {
		sc.storage.mu.RLock()
		defer sc.storage.mu.RUnlock()
	}
	fn()
	return nil
}

func (sc scope) write(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sc.tx == nil {
		sc.storage.mu.Lock()
		defer sc.storage.mu.Unlock()
	}
	return fn()
}

func (sc scope) orderExists(id int64) bool {
	if _, ok := sc.storage.orders.get(id); ok {
		return true
	}
	if sc.tx != nil {
		for _, o := range sc.tx.orders {
			if o.ID == id {
				return true
			}
		}
	}
	return false
}

func (sc scope) transactionExists(transactionID string) bool {
	if _, ok := sc.storage.transactions[transactionID]; ok {
		return true
	}
	if sc.tx != nil {
		for _, p := range sc.tx.payments {
			if p.TransactionID == transactionID {
				return true
			}
		}
	}
	return false
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	var user model.User
	err := r.write(ctx, func() error {
		user = model.User{
			ID:           r.storage.ids.Next(EntityUser),
			Username:     username,
			PasswordHash: passwordHash,
			CreatedAt:    r.storage.now(),
		}
		if r.tx != nil {
			r.tx.users = append(r.tx.users, user)
			return nil
		}
		r.storage.users.insert(user.ID, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var (
		user  model.User
		found bool
	)
	err := r.read(ctx, func() {
		user, found = r.storage.users.get(id)
		if !found && r.tx != nil {
			user, found = findStaged(r.tx.users, func(u model.User) bool { return u.ID == id })
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainErrors.ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	match := func(u model.User) bool { return u.Username == username }
	var matches []model.User
	err := r.read(ctx, func() {
		matches = r.storage.users.filter(match)
		if r.tx != nil {
			matches = append(matches, filterStaged(r.tx.users, match)...)
		}
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domainErrors.ErrNotFound
	}
	user := matches[0]
	return &user, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	var order model.Order
	err := r.write(ctx, func() error {
		order = model.Order{
			ID:        r.storage.ids.Next(EntityOrder),
			UserID:    cloneID(in.UserID),
			Subtotal:  in.Subtotal,
			Tax:       in.Tax,
			Total:     in.Total,
			Status:    in.Status,
			CreatedAt: r.storage.now(),
		}
		if r.tx != nil {
			r.tx.orders = append(r.tx.orders, order)
			return nil
		}
		r.storage.orders.insert(order.ID, order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return copyOrder(order), nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var (
		order model.Order
		found bool
	)
	err := r.read(ctx, func() {
		order, found = r.storage.orders.get(id)
		if !found && r.tx != nil {
			order, found = findStaged(r.tx.orders, func(o model.Order) bool { return o.ID == id })
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainErrors.ErrNotFound
	}
	return copyOrder(order), nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	match := func(o model.Order) bool { return o.UserID != nil && *o.UserID == userID }
	var result []model.Order
	err := r.read(ctx, func() {
		result = r.storage.orders.filter(match)
		if r.tx != nil {
			result = append(result, filterStaged(r.tx.orders, match)...)
		}
	})
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].UserID = cloneID(result[i].UserID)
	}
	return result, nil
}

// --- OrderItemRepository implementation ---

func (r *orderItemRepository) Create(ctx context.Context, in model.NewOrderItem) (*model.OrderItem, error) {
	var item model.OrderItem
	err := r.write(ctx, func() error {
		if !r.orderExists(in.OrderID) {
			return fmt.Errorf("order item for order %d: %w", in.OrderID, domainErrors.ErrUnknownOrder)
		}
		item = model.OrderItem{
			ID:          r.storage.ids.Next(EntityOrderItem),
			OrderID:     in.OrderID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			Price:       in.Price,
		}
		if r.tx != nil {
			r.tx.orderItems = append(r.tx.orderItems, item)
			return nil
		}
		r.storage.orderItems.insert(item.ID, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	match := func(i model.OrderItem) bool { return i.OrderID == orderID }
	var result []model.OrderItem
	err := r.read(ctx, func() {
		result = r.storage.orderItems.filter(match)
		if r.tx != nil {
			result = append(result, filterStaged(r.tx.orderItems, match)...)
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// --- PaymentRepository implementation ---

func (r *paymentRepository) Create(ctx context.Context, in model.NewPayment) (*model.Payment, error) {
	var payment model.Payment
	err := r.write(ctx, func() error {
		if !r.orderExists(in.OrderID) {
			return fmt.Errorf("payment for order %d: %w", in.OrderID, domainErrors.ErrUnknownOrder)
		}
		if r.transactionExists(in.TransactionID) {
			return fmt.Errorf("transaction %s: %w", in.TransactionID, domainErrors.ErrDuplicateTransactionID)
		}
		payment = model.Payment{
			ID:            r.storage.ids.Next(EntityPayment),
			OrderID:       in.OrderID,
			Amount:        in.Amount,
			Currency:      in.Currency,
			PaymentMethod: in.PaymentMethod,
			Status:        in.Status,
			TransactionID: in.TransactionID,
			CreatedAt:     r.storage.now(),
		}
		if r.tx != nil {
			r.tx.payments = append(r.tx.payments, payment)
			return nil
		}
		r.storage.payments.insert(payment.ID, payment)
		r.storage.transactions[payment.TransactionID] = payment.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	var (
		payment model.Payment
		found   bool
	)
	err := r.read(ctx, func() {
		payment, found = r.storage.payments.get(id)
		if !found && r.tx != nil {
			payment, found = findStaged(r.tx.payments, func(p model.Payment) bool { return p.ID == id })
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainErrors.ErrNotFound
	}
	return &payment, nil
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	match := func(p model.Payment) bool { return p.OrderID == orderID }
	var result []model.Payment
	err := r.read(ctx, func() {
		result = r.storage.payments.filter(match)
		if r.tx != nil {
			result = append(result, filterStaged(r.tx.payments, match)...)
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func findStaged[T any](rows []T, match func(T) bool) (T, bool) {
	for _, row := range rows {
		if match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func filterStaged[T any](rows []T, match func(T) bool) []T {
	var result []T
	for _, row := range rows {
		if match(row) {
			result = append(result, row)
		}
	}
	return result
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyOrder(o model.Order) *model.Order {
	o.UserID = cloneID(o.UserID)
	return &o
}
