package engine

import (
	"sync"
	"time"
)

type EventType int

type Event struct {
	Type      EventType
	Timestamp time.Time
	Payload   any
}

type subscriber struct {
	fn     func(Event)
	filter map[EventType]struct{}
}

// EventBus is a synchronous in-process fan-out. Handlers run on the emitting
// goroutine, so anything slow must hand off to its own goroutine.
type EventBus struct {
	mu          sync.RWMutex
	subscribers []subscriber
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

// SubscribeTypes registers a handler for the given event types.
func (eb *EventBus) SubscribeTypes(fn func(Event), types ...EventType) {
	filter := make(map[EventType]struct{}, len(types))
	for _, t := range types {
		filter[t] = struct{}{}
	}
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers = append(eb.subscribers, subscriber{fn: fn, filter: filter})
}

// Emit delivers evt to every matching subscriber in registration order.
func (eb *EventBus) Emit(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	eb.mu.RLock()
	subs := make([]subscriber, len(eb.subscribers))
	copy(subs, eb.subscribers)
	eb.mu.RUnlock()

	for _, s := range subs {
		if _, ok := s.filter[evt.Type]; ok {
			s.fn(evt)
		}
	}
}
