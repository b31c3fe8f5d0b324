package game

import "github.com/rocketscienceinc/goban-backend/internal/entity"

// Handler receives game events. It runs synchronously on the goroutine that published the event.
type Handler func(event entity.GameEvent)

// Bus delivers every published event to all subscribers in subscription order.
type Bus struct {
	handlers []Handler
}

func (that *Bus) Subscribe(handler Handler) {
	that.handlers = append(that.handlers, handler)
}

func (that *Bus) Publish(event entity.GameEvent) {
	for _, handler := range that.handlers {
		handler(event)
	}
}
