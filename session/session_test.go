package session

import (
	"testing"

	"github.com/ixycoder/redox/scheme"
)

func TestDamageRatchets(t *testing.T) {
	s := New(320, 240)

	s.Damage(RedrawCursor)
	if s.Redraw() != RedrawCursor {
		t.Fatalf("Redraw() = %d, want RedrawCursor", s.Redraw())
	}

	s.Damage(RedrawAll)
	s.Damage(RedrawCursor)
	if s.Redraw() != RedrawAll {
		t.Fatalf("Redraw() = %d, want RedrawAll to stick", s.Redraw())
	}

	s.ResetRedraw()
	if s.Redraw() != RedrawNone {
		t.Fatalf("Redraw() = %d after reset, want RedrawNone", s.Redraw())
	}
}

func TestWindowListOrder(t *testing.T) {
	s := New(320, 240)

	a := &Window{Title: "a"}
	b := &Window{Title: "b"}
	c := &Window{Title: "c"}
	s.AddWindow(a)
	s.AddWindow(b)
	s.AddWindow(c)

	got := s.Windows()
	if len(got) != 3 || got[0] != c || got[1] != b || got[2] != a {
		t.Fatalf("Windows() = %v, want newest first [c b a]", got)
	}
}

func TestRemoveWindowByIdentity(t *testing.T) {
	s := New(320, 240)

	// Two windows with identical fields: removal must go by identity,
	// not by value.
	a := &Window{Title: "same"}
	b := &Window{Title: "same"}
	s.AddWindow(a)
	s.AddWindow(b)

	s.RemoveWindow(a)
	got := s.Windows()
	if len(got) != 1 || got[0] != b {
		t.Fatalf("Windows() = %v, want only b left", got)
	}

	s.RemoveWindow(a) // already gone; must not fault
	if len(s.Windows()) != 1 {
		t.Fatalf("second remove changed the list")
	}
}

func TestOpenFallsBackToNone(t *testing.T) {
	s := New(320, 240)
	s.Register("echo", scheme.OpenFunc(func(u scheme.URL) scheme.Resource {
		return scheme.None{}
	}))

	if r := s.Open(scheme.Parse("echo://x")); r == nil {
		t.Fatalf("Open() = nil for a registered scheme")
	}
	r := s.Open(scheme.Parse("missing://x"))
	if _, ok := r.(scheme.None); !ok {
		t.Fatalf("Open() = %T for unknown scheme, want scheme.None", r)
	}
}
