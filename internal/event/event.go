// internal/event/event.go
package event

// EventType тип события
type EventType string

// Event событие с необязательной полезной нагрузкой
type Event struct {
	Type EventType
	Data interface{}
}

// Listener подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher синхронно раздаёт события подписчикам в порядке подписки.
// Вызывается только из игрового цикла, блокировок нет.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher создаёт пустой диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на eventType
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch отправляет событие всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
