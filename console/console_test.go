package console

import (
	"bytes"
	"testing"

	"github.com/ixycoder/redox/hal"
)

// memFramebuffer is a minimal RGB565 framebuffer for tests.
type memFramebuffer struct {
	w, h int
	buf  []byte
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, buf: make([]byte, w*2*h)}
}

func (f *memFramebuffer) Width() int              { return f.w }
func (f *memFramebuffer) Height() int             { return f.h }
func (f *memFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte          { return f.buf }
func (f *memFramebuffer) Present() error          { return nil }
func (f *memFramebuffer) ClearRGB(r, g, b uint8)  {}

func (f *memFramebuffer) row(y int) []byte {
	return f.buf[y*f.w*2 : (y+1)*f.w*2]
}

func TestConsoleSize(t *testing.T) {
	c := New(newMemFramebuffer(64, 48))
	w, h := c.Size()
	if w != 64 || h != 48 {
		t.Fatalf("Size() = %d,%d, want 64,48", w, h)
	}
}

func TestGlyphSetsPixels(t *testing.T) {
	fb := newMemFramebuffer(64, 48)
	c := New(fb)

	c.Glyph(0, 0, 'A')

	if !bytes.ContainsFunc(fb.buf, func(r rune) bool { return r != 0 }) {
		t.Fatalf("Glyph('A') left the framebuffer blank")
	}
}

func TestGlyphOffSurfaceIsSafe(t *testing.T) {
	fb := newMemFramebuffer(32, 32)
	c := New(fb)

	// Clipping, not faulting, is the contract.
	c.Glyph(-100, -100, 'A')
	c.Glyph(1000, 1000, 'A')
}

func TestScrollShiftsRowsUp(t *testing.T) {
	fb := newMemFramebuffer(8, 32)
	c := New(fb)

	// Paint row 16 and check it lands on row 0 after one line scroll.
	marked := fb.row(16)
	for i := range marked {
		marked[i] = 0xAB
	}

	c.Scroll(16)

	for i, b := range fb.row(0) {
		if b != 0xAB {
			t.Fatalf("row 0 byte %d = %#x after scroll, want 0xAB", i, b)
		}
	}
	for i, b := range fb.row(31) {
		if b != 0 {
			t.Fatalf("exposed bottom row byte %d = %#x, want cleared", i, b)
		}
	}
}

func TestScrollWholeSurfaceClears(t *testing.T) {
	fb := newMemFramebuffer(8, 16)
	c := New(fb)
	for i := range fb.buf {
		fb.buf[i] = 0xFF
	}

	c.Scroll(64)

	for i, b := range fb.buf {
		if b != 0 {
			t.Fatalf("byte %d = %#x after full scroll, want 0", i, b)
		}
	}
}
