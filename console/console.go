// Package console renders the kernel's debug output as glyphs on the
// framebuffer. The kernel owns the cursor and the wrap/scroll policy;
// this package only knows how to draw one glyph at a point and how to
// scroll the surface.
package console

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/ixycoder/redox/hal"
)

// glyphBaseline is the offset from the kernel's top-of-line cursor to
// the font baseline, inside the fixed 16-pixel line height.
const glyphBaseline = 12

var (
	defaultFont = &proggy.TinySZ8pt7b

	fg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bg = color.RGBA{A: 255}
)

// Console implements the kernel's debug surface on a framebuffer.
type Console struct {
	d    *fbDisplay
	font tinyfont.Fonter
}

// New returns a console drawing on fb with the default font.
func New(fb hal.Framebuffer) *Console {
	return &Console{d: newFBDisplay(fb), font: defaultFont}
}

// Size returns the surface size in pixels.
func (c *Console) Size() (w, h int) {
	x, y := c.d.Size()
	return int(x), int(y)
}

// Glyph draws one byte at the top-left cursor position (x, y).
func (c *Console) Glyph(x, y int, b byte) {
	tinyfont.DrawChar(c.d, c.font, int16(x), int16(y)+glyphBaseline, rune(b), fg)
}

// Scroll shifts the surface content up by px pixel rows.
func (c *Console) Scroll(px int) {
	c.d.scrollUp(px, bg)
}
