// Package session holds the active session: the display the user sees,
// the pointer state, the ordered window list, and the scheme registry
// that backs the resource-open syscall. The dispatcher touches only
// these fields; everything else about a session lives elsewhere.
package session

import (
	"image"

	"github.com/ixycoder/redox/scheme"
)

// Redraw is the session damage level. Levels only ever ratchet upward
// until the compositor repaints and resets.
type Redraw uint8

const (
	RedrawNone Redraw = iota
	RedrawCursor
	RedrawAll
)

// Session is the state shared between the dispatcher and the display
// front end. Mutations of the window list happen only inside the
// kernel's guard scope.
type Session struct {
	DisplayW int
	DisplayH int

	MousePoint image.Point
	redraw     Redraw

	windows []*Window
	schemes map[string]scheme.Opener
}

// New returns a session for a display of the given pixel size.
func New(displayW, displayH int) *Session {
	return &Session{
		DisplayW: displayW,
		DisplayH: displayH,
		schemes:  map[string]scheme.Opener{},
	}
}

// Damage raises the pending redraw level. Lower requests never mask a
// higher pending one.
func (s *Session) Damage(r Redraw) {
	if r > s.redraw {
		s.redraw = r
	}
}

// Redraw returns the pending damage level.
func (s *Session) Redraw() Redraw { return s.redraw }

// ResetRedraw clears pending damage after a repaint.
func (s *Session) ResetRedraw() { s.redraw = RedrawNone }

// Register installs an opener for a URL scheme.
func (s *Session) Register(name string, o scheme.Opener) {
	s.schemes[name] = o
}

// Open resolves a locator into an opened resource handle. Unknown
// schemes resolve to the empty none: resource.
func (s *Session) Open(u scheme.URL) scheme.Resource {
	if o, ok := s.schemes[u.Scheme]; ok {
		return o.Open(u)
	}
	return scheme.None{}
}
