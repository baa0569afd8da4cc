package events

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
)

// EventBus delivers bookkeeping events to listeners in priority order.
// Listeners with equal priority run in subscription order.
type EventBus struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventListener
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for one event type
func (eb *EventBus) Subscribe(eventType EventType, listener EventListener) {
	eb.SubscribeAll(listener, eventType)
}

// SubscribeAll adds a listener for every given event type
func (eb *EventBus) SubscribeAll(listener EventListener, eventTypes ...EventType) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for _, t := range eventTypes {
		eb.listeners[t] = append(eb.listeners[t], listener)
	}
}

// Unsubscribe removes the first registration of listener for an event type
func (eb *EventBus) Unsubscribe(eventType EventType, listener EventListener) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	current := eb.listeners[eventType]
	if i := slices.Index(current, listener); i >= 0 {
		eb.listeners[eventType] = slices.Delete(slices.Clone(current), i, i+1)
	}
}

// Emit delivers the event until a listener cancels it. A failing listener
// does not stop delivery; failures are logged and returned joined.
func (eb *EventBus) Emit(event *GameEvent) error {
	if event == nil {
		return fmt.Errorf("cannot emit nil event")
	}

	eb.mu.RLock()
	listeners := slices.Clone(eb.listeners[event.Type])
	eb.mu.RUnlock()

	slices.SortStableFunc(listeners, func(a, b EventListener) int {
		return a.Priority() - b.Priority()
	})

	var errs []error
	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			log.Printf("[events] listener failed handling %s for %s: %v", event.Type, event.ActorID, err)
			errs = append(errs, fmt.Errorf("%s: %w", event.Type, err))
		}
		if event.Cancelled {
			break
		}
	}
	return errors.Join(errs...)
}

// Clear removes all listeners
func (eb *EventBus) Clear() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	clear(eb.listeners)
}

// ListenerCount returns the number of listeners for an event type
func (eb *EventBus) ListenerCount(eventType EventType) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	return len(eb.listeners[eventType])
}

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	priority int
	fn       func(*GameEvent) error
}

// NewListenerFunc wraps fn as a listener with the given priority
func NewListenerFunc(priority int, fn func(*GameEvent) error) *ListenerFunc {
	return &ListenerFunc{priority: priority, fn: fn}
}

func (l *ListenerFunc) HandleEvent(event *GameEvent) error {
	return l.fn(event)
}

func (l *ListenerFunc) Priority() int {
	return l.priority
}
