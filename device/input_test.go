package device

import (
	"testing"

	"github.com/ixycoder/redox/hal"
	"github.com/ixycoder/redox/kernel"
	"github.com/ixycoder/redox/session"
)

type fakeKeyboard struct{ ch chan hal.KeyEvent }
type fakeMouse struct{ ch chan hal.MouseEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

func (m fakeMouse) Events() <-chan hal.MouseEvent { return m.ch }

type fakeInput struct {
	kbd   fakeKeyboard
	mouse fakeMouse
}

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }
func (in fakeInput) Mouse() hal.Mouse       { return in.mouse }

func newInputFixture() (*kernel.Kernel, fakeInput, *Input) {
	k := kernel.New(kernel.Config{
		Switcher: kernel.NewGoSwitcher(),
		Session:  session.New(320, 240),
	})
	k.Boot(kernel.FlatSpace{})

	in := fakeInput{
		kbd:   fakeKeyboard{ch: make(chan hal.KeyEvent, 8)},
		mouse: fakeMouse{ch: make(chan hal.MouseEvent, 8)},
	}
	return k, in, NewInput(k, in)
}

func TestInputKeyboardBecomesKeyEvent(t *testing.T) {
	k, in, d := newInputFixture()

	in.kbd.ch <- hal.KeyEvent{Code: hal.KeyF1, Press: true}
	d.Notify(LineKeyboard)

	evs := k.DrainEvents()
	if len(evs) != 1 {
		t.Fatalf("queued %d events, want 1", len(evs))
	}
	want := kernel.Event{Code: kernel.EventKey, B: kernel.ScanDebugOn, C: 1}
	if evs[0] != want {
		t.Fatalf("event = %+v, want %+v", evs[0], want)
	}
	if !k.DebugVisible() {
		t.Fatalf("F1 press did not reach the debug-overlay toggle")
	}
}

func TestInputRuneCarriesCharacter(t *testing.T) {
	k, in, d := newInputFixture()

	in.kbd.ch <- hal.KeyEvent{Rune: 'x', Press: true}
	d.Poll()

	evs := k.DrainEvents()
	if len(evs) != 1 {
		t.Fatalf("queued %d events, want 1", len(evs))
	}
	if evs[0].A != 'x' || evs[0].B != 0 || evs[0].C != 1 {
		t.Fatalf("event = %+v, want char 'x', no scancode, pressed", evs[0])
	}
}

func TestInputMouseBecomesPointerEvent(t *testing.T) {
	k, in, d := newInputFixture()

	in.mouse.ch <- hal.MouseEvent{DX: 5, DY: -3, Buttons: hal.MouseLeft}
	d.Notify(LineMouse)

	evs := k.DrainEvents()
	if len(evs) != 1 {
		t.Fatalf("queued %d events, want 1", len(evs))
	}
	if evs[0].Code != kernel.EventMouse || evs[0].C != int(hal.MouseLeft) {
		t.Fatalf("event = %+v, want pointer event with left button", evs[0])
	}
}

func TestInputPollDrainsEverything(t *testing.T) {
	k, in, d := newInputFixture()

	in.kbd.ch <- hal.KeyEvent{Rune: 'a', Press: true}
	in.kbd.ch <- hal.KeyEvent{Rune: 'b', Press: true}
	in.mouse.ch <- hal.MouseEvent{DX: 1}
	d.Poll()

	if got := len(k.DrainEvents()); got != 3 {
		t.Fatalf("queued %d events, want 3", got)
	}
}
