package kernel

// AddressSpace is the opaque translation handle carried by a context.
// Activate makes it the CPU's active mapping; the scheduler calls it
// immediately before every switch into the owning context.
type AddressSpace interface {
	Activate()
}

// FlatSpace is the identity mapping used by kernel-only contexts and by
// the bootstrap context before any paging exists.
type FlatSpace struct{}

func (FlatSpace) Activate() {}

// Flow is a context's saved execution state. It is opaque to the whole
// kernel except the Switcher that produced it.
type Flow interface{}

// Context is one schedulable unit of execution: an address-space handle
// plus saved execution state. Contexts are owned exclusively by the
// process table and are never aliased outside it.
type Context struct {
	space AddressSpace
	flow  Flow
}

// Space returns the context's address-space handle.
func (c *Context) Space() AddressSpace { return c.space }

// Switcher is the low-level "swap execution state" primitive. The rest
// of the kernel treats it as opaque, which keeps the scheduler testable
// with a recording fake.
type Switcher interface {
	// Current captures the calling flow so it can be adopted as a
	// context (the bootstrap path).
	Current() Flow

	// Start prepares a suspended flow that will run fn the first time
	// some context switches into it.
	Start(fn func()) Flow

	// Swap is a one-shot asymmetric control transfer: it saves the
	// calling context's state into current and resumes target's saved
	// continuation. It does not return to its caller's continuation;
	// control comes back here only when a later Swap names current as
	// the target again.
	Swap(current, target *Context)
}
