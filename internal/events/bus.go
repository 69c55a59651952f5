package events

import (
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
)

// Handler processes one event. Handlers must not panic; a misbehaving
// subscriber must not take down the dispatch of the remaining ones.
type Handler func(Event)

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events.
type Subscription interface {
	Unsubscribe()
}

// Bus distributes events to subscribers synchronously, in subscription
// order. Publish blocks until all handlers ran, which gives the ordering
// guarantee consumers rely on: apply happens-before publish happens-before
// subscriber refresh.
type Bus struct {
	log    *logger.Logger
	mu     sync.RWMutex
	subs   map[string][]subscriptionEntry
	nextID int
}

type subscriptionEntry struct {
	id      int
	handler Handler
}

// NewBus creates an event bus. The logger may be nil.
func NewBus(log *logger.Logger) *Bus {
	return &Bus{log: log, subs: make(map[string][]subscriptionEntry)}
}

// Publish dispatches the event to every handler subscribed to its type.
func (b *Bus) Publish(event Event) {
	if b == nil || event == nil {
		return
	}

	b.mu.RLock()
	handlers := append([]subscriptionEntry(nil), b.subs[event.EventType()]...)
	b.mu.RUnlock()

	b.log.WithFields(map[string]any{"event_type": event.EventType(), "subscribers": len(handlers)}).
		Debug("dispatching event")

	for _, entry := range handlers {
		if entry.handler == nil {
			continue
		}
		b.dispatch(entry.handler, event)
	}
}

func (b *Bus) dispatch(handler Handler, event Event) {
	defer func() {
		if recovered := recover(); recovered != nil {
			b.log.WithFields(map[string]any{"event_type": event.EventType(), "panic": recovered}).
				Warn("event handler panicked")
		}
	}()
	handler(event)
}

// Subscribe registers a handler for the given event type.
func (b *Bus) Subscribe(eventType string, handler Handler) Subscription {
	if b == nil || handler == nil {
		return noopSubscription{}
	}
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[eventType] = append(b.subs[eventType], subscriptionEntry{id: id, handler: handler})
	b.mu.Unlock()

	return subscription{cancel: func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		handlers := b.subs[eventType]
		for i, entry := range handlers {
			if entry.id == id {
				b.subs[eventType] = append(handlers[:i], handlers[i+1:]...)
				break
			}
		}
	}}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}
