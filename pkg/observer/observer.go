// Package observer реализует синхронную схему издатель/наблюдатель
// с ограниченным числом подписчиков. Издатель владеет значением и
// фиксированным числом слотов; при изменении значения оно записывается
// в ячейку каждого подписанного наблюдателя в горутине вызывающего,
// в порядке подписки.
//
// Издатель не владеет наблюдателями. Подписанный наблюдатель остаётся
// достижимым, пока жив издатель, и отписать его нельзя.
package observer

//go:generate mockgen -destination=mocks/mock_observer.go -package=mocks . Observer

// Observer представляет наблюдателя, который получает значения от издателя
type Observer[T any] interface {
	// Update возвращает ячейку, в которую издатель записывает новое значение.
	// Издатель вызывает его без своей блокировки, так что читать издателя здесь можно.
	Update() *Cell[T]
}

// Publisher управляет ограниченным списком наблюдателей и рассылает им значения
type Publisher[T any] interface {
	// Subscribe добавляет наблюдателя в список подписчиков
	Subscribe(observer Observer[T]) error
	// Notify записывает значение во всех подписанных наблюдателей
	Notify(value T)
}
