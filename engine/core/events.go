package core

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtEnemyKilled EventType = iota
	EvtHeroDamaged
	EvtProjectileFired
	EvtHazardPlaced
	EvtHazardDetonated
	EvtPickupCollected
	EvtWeaponChanged
	EvtWaveAnnounced
	EvtWaveStarted
	EvtGameOver
	EvtRunRestarted
)

// KillPayload accompanies EvtEnemyKilled
type KillPayload struct {
	Kind      EnemyKind
	Explosion bool // killed by a barrel rather than a projectile
}

// WavePayload accompanies EvtWaveAnnounced and EvtWaveStarted
type WavePayload struct {
	Wave    int
	Enemies int
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the queued events that have not been dispatched yet
func (eb *EventBus) Pending() []Event {
	return eb.queue
}

// Dispatch processes all queued events
func (eb *EventBus) Dispatch() {
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
	eb.queue = eb.queue[:0]
}
