package device

import (
	"github.com/ixycoder/redox/hal"
	"github.com/ixycoder/redox/kernel"
)

// ps2Make maps HAL key codes to PS/2 set-1 make scancodes, which is
// what the event record carries in its B word.
var ps2Make = map[hal.KeyCode]int{
	hal.KeyEscape:    0x01,
	hal.KeyBackspace: 0x0E,
	hal.KeyTab:       0x0F,
	hal.KeyEnter:     0x1C,
	hal.KeyF1:        kernel.ScanDebugOn,
	hal.KeyF2:        kernel.ScanDebugOff,
	hal.KeyUp:        0x48,
	hal.KeyLeft:      0x4B,
	hal.KeyRight:     0x4D,
	hal.KeyDown:      0x50,
	hal.KeyDelete:    0x53,
}

// Input drains the HAL keyboard and mouse streams and injects them as
// event-trigger syscalls, the same path the PS/2 controller fed on the
// original hardware.
type Input struct {
	k     *kernel.Kernel
	kbd   hal.Keyboard
	mouse hal.Mouse
}

// NewInput wires an input driver to the kernel.
func NewInput(k *kernel.Kernel, in hal.Input) *Input {
	d := &Input{k: k}
	if in != nil {
		d.kbd = in.Keyboard()
		d.mouse = in.Mouse()
	}
	return d
}

// Notify services the asserted line. An interrupt front end raises
// lines individually; the host has no interrupt source, so its idle
// loop drains both streams through Poll instead.
func (d *Input) Notify(line uint8) {
	switch line {
	case LineKeyboard:
		d.drainKeyboard()
	case LineMouse:
		d.drainMouse()
	}
}

// Poll drains both streams from the idle loop.
func (d *Input) Poll() {
	d.drainKeyboard()
	d.drainMouse()
}

func (d *Input) drainKeyboard() {
	if d.kbd == nil {
		return
	}
	for {
		select {
		case ev := <-d.kbd.Events():
			pressed := 0
			if ev.Press {
				pressed = 1
			}
			e := kernel.Event{
				Code: kernel.EventKey,
				A:    int(ev.Rune),
				B:    ps2Make[ev.Code],
				C:    pressed,
			}
			d.k.Syscall(kernel.Trap{Op: kernel.OpTrigger, Event: &e})
		default:
			return
		}
	}
}

func (d *Input) drainMouse() {
	if d.mouse == nil {
		return
	}
	for {
		select {
		case ev := <-d.mouse.Events():
			e := kernel.Event{
				Code: kernel.EventMouse,
				A:    ev.DX,
				B:    ev.DY,
				C:    int(ev.Buttons),
			}
			d.k.Syscall(kernel.Trap{Op: kernel.OpTrigger, Event: &e})
		default:
			return
		}
	}
}
