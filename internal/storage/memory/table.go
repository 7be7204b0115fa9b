package memory

// table keeps rows in insertion order with a primary key index.
type table[T any] struct {
	rows  []T
	index map[int64]int
}

func newTable[T any]() *table[T] {
	return &table[T]{index: make(map[int64]int)}
}

func (t *table[T]) insert(id int64, row T) {
	t.index[id] = len(t.rows)
	t.rows = append(t.rows, row)
}

func (t *table[T]) get(id int64) (T, bool) {
	pos, ok := t.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.rows[pos], true
}

func (t *table[T]) filter(match func(T) bool) []T {
	result := make([]T, 0)
	for _, row := range t.rows {
		if match(row) {
			result = append(result, row)
		}
	}
	return result
}

func (t *table[T]) len() int {
	return len(t.rows)
}
