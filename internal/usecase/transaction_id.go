package usecase

import (
	"fmt"
	"math/rand/v2"
)

const (
	transactionIDPrefix = "TR-"
	transactionIDMin    = 100000
	transactionIDSpan   = 900000
)

// TransactionIDGenerator draws payment transaction identifiers.
type TransactionIDGenerator interface {
	Next() string
}

// RandomTransactionIDs produces identifiers of the form TR-NNNNNN with the
// numeric part uniform in [100000, 999999]. Uniqueness is enforced by the
// store, not here.
type RandomTransactionIDs struct {
	intN func(int) int
}

// NewRandomTransactionIDs returns a generator backed by math/rand/v2.
func NewRandomTransactionIDs() *RandomTransactionIDs {
	return &RandomTransactionIDs{intN: rand.IntN}
}

// Next returns a fresh transaction identifier.
func (g *RandomTransactionIDs) Next() string {
	return fmt.Sprintf("%s%06d", transactionIDPrefix, transactionIDMin+g.intN(transactionIDSpan))
}
