package observer

// RealObserver — пассивный наблюдатель, хранящий последнее полученное значение.
type RealObserver[T any] struct {
	data *Cell[T]
}

// NewRealObserver создаёт наблюдателя с начальным значением initial.
func NewRealObserver[T any](initial T) *RealObserver[T] {
	return &RealObserver[T]{
		data: NewCell(initial),
	}
}

// Update возвращает ячейку наблюдателя.
func (o *RealObserver[T]) Update() *Cell[T] {
	return o.data
}

// Value возвращает последнее полученное значение.
func (o *RealObserver[T]) Value() T {
	return o.data.Get()
}
