package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// EventManager manages event subscriptions and dispatches. Emit runs every
// handler synchronously, so a handler's effects are visible to whatever the
// emitter does next.
type EventManager struct {
	subscribers map[EventType][]EventHandler
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// Clear removes every handler for a specific event type
func (em *EventManager) Clear(eventType EventType) {
	delete(em.subscribers, eventType)
}

// HasSubscribers reports whether any handler listens for eventType
func (em *EventManager) HasSubscribers(eventType EventType) bool {
	return len(em.subscribers[eventType]) > 0
}

// Emit dispatches an event to all subscribed handlers in subscription order
func (em *EventManager) Emit(event Event) {
	for _, handler := range em.subscribers[event.Type()] {
		handler(event)
	}
}
