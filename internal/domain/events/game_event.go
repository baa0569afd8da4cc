package events

// GameEvent is a bookkeeping notice dispatched after engine work. Context
// carries the values named by the Context* keys.
type GameEvent struct {
	Type      EventType
	ActorID   string
	Context   map[string]any
	Cancelled bool
}

// NewGameEvent creates an event with an empty context
func NewGameEvent(eventType EventType) *GameEvent {
	return &GameEvent{
		Type:    eventType,
		Context: make(map[string]any),
	}
}

func (e *GameEvent) WithActor(actorID string) *GameEvent {
	e.ActorID = actorID
	return e
}

func (e *GameEvent) WithContext(key string, value any) *GameEvent {
	e.Context[key] = value
	return e
}

// Cancel stops delivery to lower priority listeners
func (e *GameEvent) Cancel() {
	e.Cancelled = true
}

func (e *GameEvent) IsCancelled() bool {
	return e.Cancelled
}

// GetContext retrieves a raw value from the context
func (e *GameEvent) GetContext(key string) (any, bool) {
	val, exists := e.Context[key]
	return val, exists
}

func (e *GameEvent) GetIntContext(key string) (int, bool) {
	return contextAs[int](e, key)
}

func (e *GameEvent) GetBoolContext(key string) (bool, bool) {
	return contextAs[bool](e, key)
}

func (e *GameEvent) GetStringContext(key string) (string, bool) {
	return contextAs[string](e, key)
}

func (e *GameEvent) GetStringsContext(key string) ([]string, bool) {
	return contextAs[[]string](e, key)
}

func contextAs[T any](e *GameEvent, key string) (T, bool) {
	v, ok := e.Context[key].(T)
	return v, ok
}
