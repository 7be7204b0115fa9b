package model

import (
	"fmt"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
)

// Status describes the lifecycle shared by orders and payments.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Transition returns next when the move from s is allowed.
// Only pending may move, and only to completed or failed.
func (s Status) Transition(next Status) (Status, error) {
	if s != StatusPending || !next.Terminal() {
		return s, fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidStatusTransition, s, next)
	}
	return next, nil
}
