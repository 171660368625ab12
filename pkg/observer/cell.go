package observer

import "sync"

// Cell — изменяемое значение, общее для наблюдателя и издателей, которые в него пишут.
// Нулевое значение Cell готово к работе и хранит нулевое T.
type Cell[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewCell создаёт ячейку со значением v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get возвращает сохранённое значение.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set перезаписывает сохранённое значение.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
}

// Replace сохраняет v и возвращает предыдущее значение.
func (c *Cell[T]) Replace(v T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.value
	c.value = v
	return old
}
