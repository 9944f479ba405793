// Package app wires the HAL, the kernel, the session, and the drivers
// together and runs the idle context.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/ixycoder/redox/console"
	"github.com/ixycoder/redox/device"
	"github.com/ixycoder/redox/hal"
	"github.com/ixycoder/redox/kernel"
	"github.com/ixycoder/redox/scheme"
	"github.com/ixycoder/redox/session"
)

type system struct {
	k    *kernel.Kernel
	reg  *device.Registry
	log  hal.Logger
	demo bool

	ticks  <-chan uint64
	uptime uint64

	stepReq  chan struct{}
	stepDone chan struct{}
}

type Config struct {
	// Demo spawns the boot demo contexts (a banner writer and a
	// one-shot worker that exits).
	Demo bool
}

// New initializes and boots the kernel with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{Demo: true})
}

// Run boots the kernel and drives it forever (native entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		step()
		time.Sleep(time.Millisecond)
	}
}

// NewWithConfig boots the kernel and returns the per-frame step hook
// the host runner must call to advance it.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return newSystem(h, cfg).step
}

func newSystem(h hal.HAL, cfg Config) *system {
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}

	w, hgt := 640, 480
	var debug kernel.DebugSurface
	if fb != nil {
		w, hgt = fb.Width(), fb.Height()
		debug = console.New(fb)
	}
	sess := session.New(w, hgt)

	var serial io.Writer
	if s := h.Serial(); s != nil {
		serial = s
	}

	k := kernel.New(kernel.Config{
		Switcher: kernel.NewGoSwitcher(),
		Session:  sess,
		Serial:   serial,
		Debug:    debug,
	})
	sess.Register("debug", scheme.OpenFunc(func(u scheme.URL) scheme.Resource {
		return debugResource{k: k, url: u}
	}))

	reg := device.NewRegistry()
	reg.Register(device.NewInput(k, h.Input()), device.LineKeyboard, device.LineMouse)

	s := &system{
		k:        k,
		reg:      reg,
		log:      h.Logger(),
		demo:     cfg.Demo,
		stepReq:  make(chan struct{}),
		stepDone: make(chan struct{}),
	}
	if ht := h.Time(); ht != nil {
		s.ticks = ht.Ticks()
	}
	go s.run()

	return s
}

// step is the hook handed to the host runner. It blocks until the idle
// context finishes one pass, so kernel code never touches the
// framebuffer while the host is snapshotting a frame.
func (s *system) step() error {
	s.stepReq <- struct{}{}
	<-s.stepDone
	return nil
}

// run owns the reserved context at table index 0. It adopts the calling
// goroutine during boot, then executes exactly one kernel pass per step
// request.
func (s *system) run() {
	s.k.Boot(kernel.FlatSpace{})
	if s.demo {
		s.k.Spawn(kernel.FlatSpace{}, s.greeter)
		s.k.Spawn(kernel.FlatSpace{}, s.courier)
	}
	for range s.stepReq {
		s.pass()
		s.stepDone <- struct{}{}
	}
}

// pass is one idle slice: fold the tick stream into the uptime counter,
// service the drivers, drain the kernel's output, and yield so every
// runnable context gets its slice.
func (s *system) pass() {
	for drained := false; !drained; {
		select {
		case n := <-s.ticks:
			s.uptime = n
		default:
			drained = true
		}
	}
	s.reg.Poll()
	s.pump()
	s.k.Syscall(kernel.Trap{Op: kernel.OpYield})
}

// pump consumes the kernel's pending repaint flag and event queue. A
// debug-surface repaint forces full damage while the overlay is up. Key
// events go to the host log; pointer motion is already folded into the
// session by the trigger handler, so it is dropped here.
func (s *system) pump() {
	if s.k.TakeDebugRedraw() && s.k.DebugVisible() {
		s.k.Session().Damage(session.RedrawAll)
	}
	for _, ev := range s.k.DrainEvents() {
		if ev.Code != kernel.EventKey || s.log == nil {
			continue
		}
		s.log.WriteLineString(fmt.Sprintf("key: char=%q scan=%#02x pressed=%d t=%d", rune(ev.A), ev.B, ev.C, s.uptime))
	}
}

// greeter opens debug: through the session and prints the boot banner,
// then spins on yield so the round-robin always has a runnable peer.
func (s *system) greeter() {
	u := scheme.Parse("debug:console")
	var out scheme.Resource
	s.k.Syscall(kernel.Trap{Op: kernel.OpOpen, URL: &u, Out: &out})
	if out != nil {
		out.Write([]byte("redox kernel\n"))
		out.Close()
	}
	for {
		s.k.Syscall(kernel.Trap{Op: kernel.OpYield})
	}
}

// courier prints one line and exits, exercising context teardown.
func (s *system) courier() {
	for _, b := range []byte("init: ok\n") {
		s.k.Syscall(kernel.Trap{Op: kernel.OpDebug, Byte: b})
	}
	s.k.Syscall(kernel.Trap{Op: kernel.OpExit})
}

// debugResource adapts the debug-output syscall to the resource
// interface so user contexts can reach the console by URL.
type debugResource struct {
	k   *kernel.Kernel
	url scheme.URL
}

func (r debugResource) URL() scheme.URL { return r.url }

func (r debugResource) Read(p []byte) (int, error) { return 0, io.EOF }

func (r debugResource) Write(p []byte) (int, error) {
	for _, b := range p {
		r.k.Syscall(kernel.Trap{Op: kernel.OpDebug, Byte: b})
	}
	return len(p), nil
}

func (r debugResource) Close() error { return nil }
