package events

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Event is the base interface for all game events.
type Event interface {
	// Type returns the event type as a string for filtering and logging
	Type() string
	// Timestamp returns when the event occurred
	Timestamp() time.Time
	// GameID returns the ID of the game this event belongs to
	GameID() string
}

// BaseEvent provides common fields for all events.
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Game      string    `json:"game_id"`
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) GameID() string       { return e.Game }

// Handler is a function that processes events.
type Handler func(Event)

// AllEvents subscribes a handler to every event type.
const AllEvents = "*"

// Bus is a synchronous event bus. Subscribers run inline on the publisher's
// goroutine; a panicking handler is contained so it cannot break the others.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   zerolog.Logger
}

// NewBus creates a new event bus instance.
func NewBus(logger zerolog.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a handler for the given event type, or for every event when
// eventType is AllEvents.
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], h)
	b.logger.Debug().Str("event_type", eventType).Msg("Handler subscribed")
}

// Publish sends an event to all interested handlers synchronously. Publishing
// on a nil bus is a no-op, which is how simulation forks silence themselves.
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, h := range b.handlers[event.Type()] {
		b.dispatch(h, event)
	}
	for _, h := range b.handlers[AllEvents] {
		b.dispatch(h, event)
	}
}

func (b *Bus) dispatch(h Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("event_type", event.Type()).
				Interface("panic", r).
				Msg("Handler panicked while handling event")
		}
	}()
	h(event)
}

// HandlerCount returns the number of handlers for an event type, for tests.
func (b *Bus) HandlerCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
