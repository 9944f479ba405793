package session

import "image"

// Window is an opaque handle held by the session. The dispatcher only
// ever compares windows by identity; the fields exist for the
// compositor.
type Window struct {
	Rect  image.Rectangle
	Title string
}

// AddWindow inserts w at the front of the window list, making it the
// topmost window.
func (s *Session) AddWindow(w *Window) {
	s.windows = append([]*Window{w}, s.windows...)
}

// RemoveWindow removes the first entry identical to w. Removing an
// absent window is a no-op, so destroy is idempotent.
func (s *Session) RemoveWindow(w *Window) {
	for i, have := range s.windows {
		if have == w {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			return
		}
	}
}

// Windows returns the window list, topmost first.
func (s *Session) Windows() []*Window { return s.windows }
