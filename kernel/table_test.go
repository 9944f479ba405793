package kernel

import "testing"

func newTestTable(n int) *Table {
	t := &Table{}
	for i := 0; i < n; i++ {
		t.Append(&Context{space: FlatSpace{}})
	}
	return t
}

func TestTableAdvanceWraps(t *testing.T) {
	tab := newTestTable(3)

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		tab.Advance()
		if got := tab.Index(); got != w {
			t.Fatalf("advance %d: Index() = %d, want %d", i+1, got, w)
		}
	}
}

func TestTableAdvanceSingle(t *testing.T) {
	tab := newTestTable(1)
	if c := tab.Advance(); c != tab.Current() {
		t.Fatalf("Advance() on length-1 table moved off the only context")
	}
	if tab.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", tab.Index())
	}
}

func TestTableRemoveLastRebasesToZero(t *testing.T) {
	tab := newTestTable(3)
	tab.Advance()
	tab.Advance() // cursor on the last index

	removed := tab.RemoveCurrent()
	if removed == nil {
		t.Fatalf("RemoveCurrent() = nil, want the removed context")
	}
	if tab.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tab.Len())
	}
	if tab.Index() != 0 {
		t.Fatalf("Index() = %d after removing last slot, want 0", tab.Index())
	}
}

func TestTableRemoveMiddleKeepsIndex(t *testing.T) {
	tab := newTestTable(4)
	tab.Advance() // cursor = 1

	keep := tab.At(2)
	tab.RemoveCurrent()
	if tab.Index() != 1 {
		t.Fatalf("Index() = %d, want 1", tab.Index())
	}
	if tab.Current() != keep {
		t.Fatalf("Current() is not the successor of the removed slot")
	}
}

func TestTableCurrentEmpty(t *testing.T) {
	tab := &Table{}
	if tab.Current() != nil {
		t.Fatalf("Current() on empty table = %v, want nil", tab.Current())
	}
	if tab.RemoveCurrent() != nil {
		t.Fatalf("RemoveCurrent() on empty table removed something")
	}
}
