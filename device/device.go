// Package device defines the capability set a driver exposes to the
// kernel: an interrupt notification and an idle poll. The kernel core
// depends only on this interface; driver internals (descriptor rings,
// register files) never leak through it.
package device

// Driver is implemented by every device driver variant.
type Driver interface {
	// Notify is called when the driver's interrupt line is asserted.
	Notify(line uint8)

	// Poll runs one best-effort service pass from the idle loop, for
	// hardware without a usable interrupt line.
	Poll()
}

// Interrupt lines used by the host front end.
const (
	LineKeyboard uint8 = 1
	LineMouse    uint8 = 12
)

// Registry dispatches interrupt notifications by line number and fans
// idle polls out to every registered driver. It is mutated only during
// boot; after that the front end only reads it.
type Registry struct {
	byLine map[uint8][]Driver
	all    []Driver
}

// NewRegistry returns an empty driver registry.
func NewRegistry() *Registry {
	return &Registry{byLine: map[uint8][]Driver{}}
}

// Register adds a driver and subscribes it to the given interrupt
// lines. A driver registered with no lines is poll-only.
func (r *Registry) Register(d Driver, lines ...uint8) {
	r.all = append(r.all, d)
	for _, line := range lines {
		r.byLine[line] = append(r.byLine[line], d)
	}
}

// Notify delivers an interrupt to every driver on the line. Unclaimed
// lines are ignored.
func (r *Registry) Notify(line uint8) {
	for _, d := range r.byLine[line] {
		d.Notify(line)
	}
}

// Poll runs one idle pass over all drivers.
func (r *Registry) Poll() {
	for _, d := range r.all {
		d.Poll()
	}
}
