package errors

import "errors"

var (
	ErrAlreadyExists           = errors.New("already exists")
	ErrNotFound                = errors.New("not found")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUnknownOrder            = errors.New("unknown order")
	ErrDuplicateTransactionID  = errors.New("duplicate transaction id")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrMalformedIdentifier     = errors.New("malformed identifier")
)
