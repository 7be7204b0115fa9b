package repository

import (
	"context"

	"github.com/polkiloo/checkout/internal/domain/model"
)

// UserRepository describes storage operations for users.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
