package kernel

// Sched is the round-robin scheduling policy over the process table.
// It owns the guard, the table, and the switcher so it can be built in
// isolation for tests.
type Sched struct {
	guard *Guard
	table Table
	sw    Switcher
}

// NewSched wires a scheduler. The guard and switcher must be non-nil.
func NewSched(g *Guard, sw Switcher) *Sched {
	return &Sched{guard: g, sw: sw}
}

// Guard exposes the kernel-wide mask guard.
func (s *Sched) Guard() *Guard { return s.guard }

// Table exposes the process table for inspection.
func (s *Sched) Table() *Table { return &s.table }

// Adopt registers the calling flow as the reserved bootstrap/idle
// context at index 0. It must be the first context added.
func (s *Sched) Adopt(space AddressSpace) *Context {
	c := &Context{space: space, flow: s.sw.Current()}
	tok := s.guard.Acquire()
	s.table.Append(c)
	s.guard.Release(tok)
	return c
}

// Spawn appends a new runnable context that executes fn when first
// scheduled. fn must leave through the exit syscall; it has no caller
// to return to.
func (s *Sched) Spawn(space AddressSpace, fn func()) *Context {
	c := &Context{space: space, flow: s.sw.Start(fn)}
	tok := s.guard.Acquire()
	s.table.Append(c)
	s.guard.Release(tok)
	return c
}

// remap establishes target's address-space mapping as the active
// translation. It must run immediately before every switch to target;
// the switch assumes the address space already matches.
func (s *Sched) remap(target *Context) {
	if target.space != nil {
		target.space.Activate()
	}
}

// Yield advances the cursor one position round-robin and transfers the
// CPU to the new current context. It returns to the calling context's
// logical flow only when that context is rescheduled.
func (s *Sched) Yield() {
	tok := s.guard.Acquire()

	cur := s.table.Current()
	was := s.table.Index()
	next := s.table.Advance()
	if next != nil && s.table.Index() != was {
		s.remap(next)
		s.sw.Swap(cur, next)
	}

	s.guard.Release(tok)
}

// Exit removes the current context from the table and transfers the
// CPU to whichever context the rebased cursor selects. The guard
// condition is the historical one: the table must hold more than one
// context and the cursor must be above index 1, so indexes 0 and 1 can
// never exit. Unmet conditions make Exit a no-op; there is no error
// channel at this layer.
func (s *Sched) Exit() {
	tok := s.guard.Acquire()

	if s.table.Len() > 1 && s.table.Index() > 1 {
		cur := s.table.RemoveCurrent()
		if next := s.table.Current(); next != nil {
			s.remap(next)
			s.sw.Swap(cur, next)
		}
	}

	s.guard.Release(tok)
}
