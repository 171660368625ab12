package observer

import "errors"

var (
	// ErrObserverListFull возвращается из Subscribe, когда все слоты заняты
	ErrObserverListFull = errors.New("observer list is full")
	// ErrNilObserver возвращается из Subscribe для nil-наблюдателя
	ErrNilObserver = errors.New("observer is nil")
)
