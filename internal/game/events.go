package game

type EventType int

const (
	EventReset EventType = iota
	EventPauseToggled
	EventCameraToggled
	EventFoodEaten
	EventDeath
)

type Event struct {
	Type EventType
	Pos  Vec3 // world position for positional effects (food, death)
	Data int  // generic payload (e.g. score at time of event)
}

type EventHandler func(Event)

// EventBus decouples the simulation from feedback effects (audio pulses,
// particles). Handlers run synchronously on the frame thread.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
