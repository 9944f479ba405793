package kernel

import (
	"image"

	"github.com/ixycoder/redox/scheme"
	"github.com/ixycoder/redox/session"
)

// Op is the numeric syscall operation code, the first word of the trap
// calling convention.
type Op uint32

const (
	OpDebug Op = iota
	OpExit
	OpOpen
	OpTrigger
	OpWindowCreate
	OpWindowDestroy
	OpYield
)

// Trap is one decoded syscall. The raw convention is an operation code
// plus three argument words; the arch trap stub decodes those words
// into the typed slots below before entering the dispatcher, so the
// core never chases untyped addresses. Results travel through the
// caller-designated Out slot; there is no return-value channel.
type Trap struct {
	Op Op

	Byte   byte             // OpDebug: the byte to print
	URL    *scheme.URL      // OpOpen: locator to resolve
	Out    *scheme.Resource // OpOpen: where the opened handle lands
	Event  *Event           // OpTrigger: event record to inject
	Window *session.Window  // OpWindowCreate / OpWindowDestroy
}

// Debug console metrics: a fixed 8-pixel glyph step and 16-pixel line
// height, regardless of the font actually rendering the glyphs.
const (
	glyphStep  = 8
	lineHeight = 16
)

// Syscall is the trap handler: the sole entry point from user code into
// kernel functionality. Unknown operation codes and malformed argument
// slots are absorbed as no-ops; this layer has no error channel.
func (k *Kernel) Syscall(t Trap) {
	switch t.Op {
	case OpDebug:
		k.sysDebug(t.Byte)
	case OpExit:
		k.sched.Exit()
	case OpOpen:
		k.sysOpen(t.URL, t.Out)
	case OpTrigger:
		k.sysTrigger(t.Event)
	case OpWindowCreate:
		k.sysWindowCreate(t.Window)
	case OpWindowDestroy:
		k.sysWindowDestroy(t.Window)
	case OpYield:
		k.sched.Yield()
	}
}

// sysDebug draws one glyph at the debug cursor and advances it,
// wrapping at the surface width and scrolling one line height at a time
// while the cursor would sit below the surface. Byte 10 forces a line
// break instead of drawing. The raw byte always goes to the legacy
// serial port as well.
func (k *Kernel) sysDebug(b byte) {
	if k.debug != nil {
		w, h := k.debug.Size()
		if b == '\n' {
			k.debugAt.X = 0
			k.debugAt.Y += lineHeight
			k.debugRedraw = true
		} else {
			k.debug.Glyph(k.debugAt.X, k.debugAt.Y, b)
			k.debugAt.X += glyphStep
		}
		if k.debugAt.X >= w {
			k.debugAt.X = 0
			k.debugAt.Y += lineHeight
		}
		for k.debugAt.Y+lineHeight > h {
			k.debug.Scroll(lineHeight)
			k.debugAt.Y -= lineHeight
		}
	}

	if k.serial != nil {
		k.serial.Write([]byte{b})
	}
}

// sysOpen resolves the locator through the active session and writes
// the opened handle, by value, to the caller-designated slot.
func (k *Kernel) sysOpen(u *scheme.URL, out *scheme.Resource) {
	if u == nil || out == nil {
		return
	}
	*out = k.session.Open(*u)
}

// sysTrigger copies the event, rewrites pointer motion into clamped
// absolute coordinates, handles the debug-overlay keys, and appends the
// event to the global queue under the guard.
func (k *Kernel) sysTrigger(ev *Event) {
	if ev == nil {
		return
	}
	e := *ev

	if e.Code == EventMouse {
		e.A = clamp(k.session.MousePoint.X+e.A, 0, k.session.DisplayW-1)
		e.B = clamp(k.session.MousePoint.Y+e.B, 0, k.session.DisplayH-1)
		k.session.MousePoint = image.Pt(e.A, e.B)
		k.session.Damage(session.RedrawCursor)
	}
	if e.Code == EventKey && e.B == ScanDebugOn && e.C > 0 {
		k.debugDraw = true
		k.debugRedraw = true
	}
	if e.Code == EventKey && e.B == ScanDebugOff && e.C > 0 {
		k.debugDraw = false
		k.session.Damage(session.RedrawAll)
	}

	tok := k.sched.Guard().Acquire()
	// TODO: dispatch to the window under the pointer once per-window
	// queues exist.
	k.events.Push(e)
	k.sched.Guard().Release(tok)
}

func (k *Kernel) sysWindowCreate(w *session.Window) {
	if w == nil {
		return
	}
	tok := k.sched.Guard().Acquire()
	k.session.AddWindow(w)
	k.sched.Guard().Release(tok)
}

func (k *Kernel) sysWindowDestroy(w *session.Window) {
	if w == nil {
		return
	}
	tok := k.sched.Guard().Acquire()
	k.session.RemoveWindow(w)
	k.sched.Guard().Release(tok)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
