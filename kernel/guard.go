package kernel

// Guard is the kernel's only mutual-exclusion primitive: a scoped
// interrupt disable/restore token. There is a single physical core, so
// correctness comes from excluding interrupt delivery during a guarded
// region, not from blocking other threads.
//
// All kernel entry points run on the one currently-executing context;
// the interrupt/poll front end checks Enabled before delivering, which
// is what makes a masked region a critical section.
type Guard struct {
	enabled bool
}

// Token captures the interrupt-enabled state at Acquire time so that
// Release can restore it exactly. Nested acquisitions compose: an inner
// Release never re-enables interrupts an outer scope still needs masked.
type Token struct {
	enabled bool
}

// NewGuard returns a guard with interrupts masked. Boot enables them
// once kernel construction is complete.
func NewGuard() *Guard {
	return &Guard{}
}

// Acquire captures the current enabled flag, masks interrupts, and
// returns the token for the matching Release.
func (g *Guard) Acquire() Token {
	t := Token{enabled: g.enabled}
	g.enabled = false
	return t
}

// Release restores the interrupt-enabled state captured by tok.
func (g *Guard) Release(tok Token) {
	g.enabled = tok.enabled
}

// Enable unmasks interrupts unconditionally. Called once at the end of
// boot; everything after that goes through Acquire/Release pairs.
func (g *Guard) Enable() {
	g.enabled = true
}

// Enabled reports whether interrupts are currently deliverable.
func (g *Guard) Enabled() bool {
	return g.enabled
}
