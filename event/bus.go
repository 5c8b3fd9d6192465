package event

// Handler processes specific event types
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously from Emit
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Emitter is the publishing side of the bus, handed to simulation code
type Emitter interface {
	Emit(t EventType, payload any)
}

// HandlerFunc adapts a function to Handler for a fixed type list
type HandlerFunc struct {
	Types []EventType
	Fn    func(GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }
func (h HandlerFunc) EventTypes() []EventType { return h.Types }

// Bus dispatches events to registered handlers
//
// Architecture:
//   - Synchronous dispatch on the emitting goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Owned by the game loop goroutine; not safe for concurrent Emit
type Bus struct {
	handlers map[EventType][]Handler
	counts   [EventTypeCount]uint64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType][]Handler)}
}

// Register adds a handler for its declared event types
func (b *Bus) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		b.handlers[t] = append(b.handlers[t], handler)
	}
}

// Subscribe registers fn for the given types
func (b *Bus) Subscribe(fn func(GameEvent), types ...EventType) {
	b.Register(HandlerFunc{Types: types, Fn: fn})
}

// Emit routes one event to every handler of its type
func (b *Bus) Emit(t EventType, payload any) {
	if t >= 0 && t < EventTypeCount {
		b.counts[t]++
	}
	ev := GameEvent{Type: t, Payload: payload}
	for _, h := range b.handlers[t] {
		h.HandleEvent(ev)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (b *Bus) HandlerCount(t EventType) int {
	return len(b.handlers[t])
}

// Count returns how many events of type t were emitted
func (b *Bus) Count(t EventType) uint64 {
	if t < 0 || t >= EventTypeCount {
		return 0
	}
	return b.counts[t]
}

// Discard is an Emitter that drops everything
var Discard Emitter = discard{}

type discard struct{}

func (discard) Emit(EventType, any) {}
