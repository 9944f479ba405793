package kernel

// goFlow is the saved execution state used by the goroutine switcher:
// a goroutine parked on its resume channel.
type goFlow struct {
	resume chan struct{}
}

// goSwitcher implements Switcher with one goroutine per context. Only
// one flow is ever awake at a time; the resume-channel handoff in Swap
// is what serializes every kernel entry onto a single logical CPU.
type goSwitcher struct{}

// NewGoSwitcher returns the production switcher.
func NewGoSwitcher() Switcher {
	return goSwitcher{}
}

func (goSwitcher) Current() Flow {
	return &goFlow{resume: make(chan struct{}, 1)}
}

func (goSwitcher) Start(fn func()) Flow {
	f := &goFlow{resume: make(chan struct{}, 1)}
	go func() {
		<-f.resume
		fn()
		// A context has no continuation to fall back to; it must leave
		// through the exit syscall.
		panic("kernel: context returned")
	}()
	return f
}

func (goSwitcher) Swap(current, target *Context) {
	cur := current.flow.(*goFlow)
	tgt := target.flow.(*goFlow)
	tgt.resume <- struct{}{}
	<-cur.resume
}
