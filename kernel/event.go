package kernel

// Event codes produced by the input drivers.
const (
	EventKey   = 'k' // A: character, B: make scancode, C: 1 press / 0 release
	EventMouse = 'm' // A, B: motion (relative in, absolute out), C: buttons
)

// Make scancodes with dispatcher-level meaning.
const (
	ScanDebugOn  = 0x3B // F1: show the debug overlay
	ScanDebugOff = 0x3C // F2: hide it again
)

// Event is the fixed-shape input record: a byte tag plus three integer
// words. The dispatcher mutates pointer-class events in place (clamping
// coordinates) before they reach the queue.
type Event struct {
	Code byte
	A    int
	B    int
	C    int
}

// EventQueue is the append-only global event queue. Pushes happen only
// inside a Guard scope; the downstream consumer drains batches from the
// idle loop. Per-window dispatch does not exist yet.
type EventQueue struct {
	events []Event
}

// Push appends one event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int { return len(q.events) }

// Drain removes and returns everything queued so far.
func (q *EventQueue) Drain() []Event {
	evs := q.events
	q.events = nil
	return evs
}
