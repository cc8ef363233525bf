package sim

type EventType int

const (
	EventRoundStarted EventType = iota
	EventFoodEaten
	EventRoundEnded
	EventQuit
)

type Event struct {
	Type      EventType
	Cell      Cell // head cell at the time of the event
	Score     int
	HighScore int
	Rate      float64
}

type EventHandler func(Event)

// EventBus fans events out synchronously on the simulation thread.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

// NewEventBus returns a bus with no subscribers.
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers fn for events of type t.
func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// Emit calls every handler subscribed to e.Type. A nil bus drops e.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
