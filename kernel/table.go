package kernel

// Table is the process table: an ordered sequence of contexts plus the
// single scheduling cursor shared by the whole kernel. Index 0 is the
// reserved bootstrap/idle context and is never removed by exit.
//
// The table and cursor are one unit of shared mutable state; callers
// mutate them only inside a Guard scope. Every cursor update here is
// modulo the table length, which is what keeps the cursor-in-bounds
// invariant structural rather than something to recover from.
type Table struct {
	ctxs []*Context
	cur  int
}

// Len returns the number of contexts in the table.
func (t *Table) Len() int { return len(t.ctxs) }

// Index returns the scheduling cursor.
func (t *Table) Index() int { return t.cur }

// Current returns the context under the cursor, or nil for an empty
// table.
func (t *Table) Current() *Context {
	if len(t.ctxs) == 0 {
		return nil
	}
	return t.ctxs[t.cur]
}

// At returns the context at index i without moving the cursor.
func (t *Table) At(i int) *Context {
	if i < 0 || i >= len(t.ctxs) {
		return nil
	}
	return t.ctxs[i]
}

// Append adds a context at the end of the table.
func (t *Table) Append(c *Context) {
	t.ctxs = append(t.ctxs, c)
}

// Advance moves the cursor one position forward modulo the table
// length and returns the new current context.
func (t *Table) Advance() *Context {
	if len(t.ctxs) == 0 {
		return nil
	}
	t.cur = (t.cur + 1) % len(t.ctxs)
	return t.ctxs[t.cur]
}

// RemoveCurrent removes the context under the cursor and rebases the
// cursor modulo the new length, so removing the last index lands the
// cursor back on 0. The removed context's storage is not reclaimed.
func (t *Table) RemoveCurrent() *Context {
	if len(t.ctxs) == 0 {
		return nil
	}
	removed := t.ctxs[t.cur]
	t.ctxs = append(t.ctxs[:t.cur], t.ctxs[t.cur+1:]...)
	if len(t.ctxs) > 0 {
		t.cur = t.cur % len(t.ctxs)
	} else {
		t.cur = 0
	}
	return removed
}
