package kernel

import (
	"image"
	"io"

	"github.com/ixycoder/redox/session"
)

// DebugSurface is the drawing contract the debug-output syscall needs:
// a pixel size, a glyph at a point, and a scroll by pixel rows. The
// console package provides the framebuffer-backed implementation.
type DebugSurface interface {
	Size() (w, h int)
	Glyph(x, y int, b byte)
	Scroll(px int)
}

// Config carries the collaborators the kernel state object owns. The
// session must be non-nil; Serial and Debug may be nil, in which case
// debug output goes nowhere.
type Config struct {
	Switcher Switcher
	Session  *session.Session

	// Serial is the fixed legacy byte-output port (COM1, 0x3F8 on the
	// original hardware). Debug output always mirrors here, overlay or
	// not.
	Serial io.Writer

	// Debug is the glyph console the debug-output syscall draws on.
	Debug DebugSurface
}

// Kernel is the explicitly owned kernel state: the scheduler (guard,
// process table, switcher), the active session, the debug surface and
// its cursor, and the global event queue. Everything here used to be a
// process-wide singleton; making it one object keeps the core testable
// without a full boot.
type Kernel struct {
	sched   *Sched
	session *session.Session
	serial  io.Writer

	debug       DebugSurface
	debugAt     image.Point
	debugDraw   bool
	debugRedraw bool

	events EventQueue
}

// New builds the kernel state. Construction order: guard first (born
// masked), then the scheduler over an empty table, then the session,
// surface, and queue references. Interrupts stay masked until Boot.
func New(cfg Config) *Kernel {
	g := NewGuard()
	return &Kernel{
		sched:   NewSched(g, cfg.Switcher),
		session: cfg.Session,
		serial:  cfg.Serial,
		debug:   cfg.Debug,
	}
}

// Sched returns the scheduler.
func (k *Kernel) Sched() *Sched { return k.sched }

// Session returns the active session.
func (k *Kernel) Session() *session.Session { return k.session }

// Boot adopts the calling flow as the reserved idle context at index 0
// and unmasks interrupts. It must run before any Spawn or Syscall, on
// the goroutine that will serve as the idle loop.
func (k *Kernel) Boot(space AddressSpace) *Context {
	c := k.sched.Adopt(space)
	k.sched.Guard().Enable()
	return c
}

// Spawn adds a runnable context executing fn.
func (k *Kernel) Spawn(space AddressSpace, fn func()) *Context {
	return k.sched.Spawn(space, fn)
}

// DrainEvents removes and returns the queued events, under the guard.
// The caller is the downstream consumer the queue feeds.
func (k *Kernel) DrainEvents() []Event {
	tok := k.sched.Guard().Acquire()
	evs := k.events.Drain()
	k.sched.Guard().Release(tok)
	return evs
}

// DebugVisible reports whether the debug overlay is toggled on.
func (k *Kernel) DebugVisible() bool { return k.debugDraw }

// TakeDebugRedraw reports whether the debug surface needs repainting
// and clears the flag, so the consumer sees each repaint request once.
// Line breaks and entering the overlay raise it; plain glyphs do not.
func (k *Kernel) TakeDebugRedraw() bool {
	r := k.debugRedraw
	k.debugRedraw = false
	return r
}
