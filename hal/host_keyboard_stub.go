//go:build !tinygo && !cgo

package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}

type hostMouse struct {
	ch chan MouseEvent
}

func newHostMouse() *hostMouse {
	return &hostMouse{ch: make(chan MouseEvent, 64)}
}

func (m *hostMouse) Events() <-chan MouseEvent { return m.ch }

func (m *hostMouse) poll() {
	// No pointer support without the window backend.
}
