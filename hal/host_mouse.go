//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

type hostMouse struct {
	ch chan MouseEvent

	lastX, lastY int
	primed       bool
	buttons      uint8
}

func newHostMouse() *hostMouse {
	return &hostMouse{ch: make(chan MouseEvent, 64)}
}

func (m *hostMouse) Events() <-chan MouseEvent { return m.ch }

func (m *hostMouse) poll() {
	x, y := ebiten.CursorPosition()
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
	}
	dx, dy := x-m.lastX, y-m.lastY
	m.lastX, m.lastY = x, y

	var buttons uint8
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= MouseLeft
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= MouseRight
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= MouseMiddle
	}

	if dx == 0 && dy == 0 && buttons == m.buttons {
		return
	}
	m.buttons = buttons

	select {
	case m.ch <- MouseEvent{DX: dx, DY: dy, Buttons: buttons}:
	default:
	}
}
