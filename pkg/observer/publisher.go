package observer

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Option настраивает RealPublisher.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger задаёт логгер для отладочных сообщений издателя.
// nil игнорируется, остаётся no-op логгер.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// RealPublisher хранит значение и фиксированное число слотов для наблюдателей.
// Слоты заполняются в порядке подписки и никогда не освобождаются.
type RealPublisher[T any] struct {
	mu        sync.RWMutex
	observers []Observer[T] // len == capacity, nil — пустой слот
	count     int           // число занятых слотов
	data      T             // текущее опубликованное значение
	log       *zap.Logger
}

// NewRealPublisher создаёт издателя с местом для capacity наблюдателей.
// Отрицательная ёмкость считается нулевой.
func NewRealPublisher[T any](capacity int, initial T, opts ...Option) *RealPublisher[T] {
	if capacity < 0 {
		capacity = 0
	}

	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	// Слоты выделяются один раз, дальше размер не меняется
	return &RealPublisher[T]{
		observers: make([]Observer[T], capacity),
		data:      initial,
		log:       o.log,
	}
}

// Subscribe помещает наблюдателя в следующий свободный слот.
// Если слотов не осталось, возвращает ErrObserverListFull, состояние издателя
// при этом не меняется. nil (в том числе типизированный nil-указатель)
// отклоняется с ErrNilObserver.
func (p *RealPublisher[T]) Subscribe(observer Observer[T]) error {
	if isNil(observer) {
		return ErrNilObserver
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.count >= len(p.observers) {
		return fmt.Errorf("%w: capacity %d", ErrObserverListFull, len(p.observers))
	}

	p.observers[p.count] = observer
	p.count++

	p.log.Debug("Observer subscribed",
		zap.Int("slot", p.count-1),
		zap.Int("observer_count", p.count),
		zap.Int("capacity", len(p.observers)),
	)

	return nil
}

// Notify записывает value во всех подписанных наблюдателей в порядке подписки.
// Собственное значение издателя не меняется, для этого есть ChangeValue.
func (p *RealPublisher[T]) Notify(value T) {
	p.mu.RLock()
	observers := p.subscribed()
	p.mu.RUnlock()

	p.deliver(observers, value)
}

// ChangeValue сохраняет value и оповещает всех подписанных наблюдателей.
func (p *RealPublisher[T]) ChangeValue(value T) {
	p.mu.Lock()
	p.data = value
	observers := p.subscribed()
	p.mu.Unlock()

	// Запись идёт без блокировки: наблюдатель может читать издателя из Update
	p.deliver(observers, value)
}

// subscribed возвращает копию занятых слотов. Вызывается под p.mu.
func (p *RealPublisher[T]) subscribed() []Observer[T] {
	observers := make([]Observer[T], 0, p.count)
	for _, observer := range p.observers[:p.count] {
		if observer != nil {
			observers = append(observers, observer)
		}
	}
	return observers
}

func (p *RealPublisher[T]) deliver(observers []Observer[T], value T) {
	notified := 0
	for _, observer := range observers {
		cell := observer.Update()
		if cell == nil {
			// Наблюдатель без ячейки — ошибка вызывающего, пропускаем его
			p.log.Debug("Observer returned nil cell, skipped")
			continue
		}
		cell.Set(value)
		notified++
	}

	p.log.Debug("Observers notified", zap.Int("observer_count", notified))
}

// Value возвращает опубликованное значение.
func (p *RealPublisher[T]) Value() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data
}

// ObserverCount возвращает число занятых слотов.
func (p *RealPublisher[T]) ObserverCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.count
}

// Capacity возвращает общее число слотов.
func (p *RealPublisher[T]) Capacity() int {
	return len(p.observers)
}

// Full сообщает, завершится ли следующий Subscribe ошибкой.
func (p *RealPublisher[T]) Full() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.count >= len(p.observers)
}

// isNil ловит и нулевой интерфейс, и интерфейс с типизированным nil внутри.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

var _ Publisher[int] = (*RealPublisher[int])(nil)
