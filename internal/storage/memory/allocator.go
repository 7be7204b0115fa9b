package memory

import "sync"

// Entity names an independent identifier sequence.
type Entity string

const (
	EntityUser      Entity = "user"
	EntityOrder     Entity = "order"
	EntityOrderItem Entity = "order_item"
	EntityPayment   Entity = "payment"
)

// Allocator issues strictly increasing identifiers starting at 1, one
// sequence per entity. Values are never handed out twice, even when the
// transaction that drew them is rolled back.
type Allocator struct {
	mu   sync.Mutex
	last map[Entity]int64
}

// NewAllocator creates an allocator with every sequence at zero.
func NewAllocator() *Allocator {
	return &Allocator{last: make(map[Entity]int64)}
}

// Next returns the next identifier for entity.
func (a *Allocator) Next(entity Entity) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last[entity]++
	return a.last[entity]
}
