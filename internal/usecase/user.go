package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/domain/repository"
	pkgAuth "github.com/polkiloo/checkout/internal/pkg/auth"
)

// UserUseCase manages the user directory.
type UserUseCase struct {
	users  repository.UserRepository
	orders repository.OrderRepository
	hasher pkgAuth.PasswordHasher
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, orders repository.OrderRepository, hasher pkgAuth.PasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, orders: orders, hasher: hasher}
}

// Register creates a user. Usernames are unique at this level only; the
// store itself does not enforce it.
func (u *UserUseCase) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	if _, err := u.users.GetByUsername(ctx, username); err == nil {
		return nil, domainErrors.ErrAlreadyExists
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, username, hash)
}

// Authenticate checks credentials and returns the matching user.
func (u *UserUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, domainErrors.ErrInvalidCredentials
	}

	return usr, nil
}

// Orders lists orders owned by userID in creation order.
func (u *UserUseCase) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return u.orders.ListByUser(ctx, userID)
}
