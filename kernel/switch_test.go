package kernel

import (
	"reflect"
	"testing"
	"time"

	"github.com/ixycoder/redox/session"
)

// The goroutine switcher keeps exactly one context awake at a time, so
// the trace slice needs no locking: every append is ordered by the
// resume-channel handoffs.
func TestGoSwitcherRoundRobin(t *testing.T) {
	k := New(Config{
		Switcher: NewGoSwitcher(),
		Session:  session.New(64, 64),
	})

	var trace []string
	done := make(chan []string, 1)

	go func() {
		k.Boot(FlatSpace{})

		k.Spawn(FlatSpace{}, func() {
			for {
				trace = append(trace, "b")
				k.Syscall(Trap{Op: OpYield})
			}
		})
		k.Spawn(FlatSpace{}, func() {
			for i := 0; i < 2; i++ {
				trace = append(trace, "c")
				k.Syscall(Trap{Op: OpYield})
			}
			k.Syscall(Trap{Op: OpExit})
			panic("exit returned")
		})

		for i := 0; i < 5; i++ {
			trace = append(trace, "idle")
			k.Syscall(Trap{Op: OpYield})
		}
		done <- trace
	}()

	select {
	case got := <-done:
		// Rounds of idle,b,c until c exits after its second slice; the
		// exit switches straight to the rebased cursor (idle), so the
		// remaining rounds are idle,b. The idle loop's final yield gives
		// b one last slice before done is signalled.
		want := []string{
			"idle", "b", "c",
			"idle", "b", "c",
			"idle", "b",
			"idle", "b",
			"idle", "b",
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("trace = %v, want %v", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("scheduler wedged: %v", trace)
	}
}

func TestSpawnDoesNotRunUntilScheduled(t *testing.T) {
	k := New(Config{
		Switcher: NewGoSwitcher(),
		Session:  session.New(64, 64),
	})

	ran := make(chan struct{})
	done := make(chan struct{})

	go func() {
		k.Boot(FlatSpace{})
		k.Spawn(FlatSpace{}, func() {
			close(ran)
			for {
				k.Syscall(Trap{Op: OpYield})
			}
		})

		select {
		case <-ran:
			t.Error("spawned context ran before the first switch into it")
		case <-time.After(50 * time.Millisecond):
		}

		k.Syscall(Trap{Op: OpYield})
		<-ran
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("spawned context never scheduled")
	}
}

func TestExitedContextNeverResumes(t *testing.T) {
	k := New(Config{
		Switcher: NewGoSwitcher(),
		Session:  session.New(64, 64),
	})

	resumed := make(chan struct{})
	done := make(chan struct{})

	go func() {
		k.Boot(FlatSpace{})
		k.Spawn(FlatSpace{}, func() { // index 1, never exits
			for {
				k.Syscall(Trap{Op: OpYield})
			}
		})
		k.Spawn(FlatSpace{}, func() { // index 2
			k.Syscall(Trap{Op: OpExit})
			close(resumed)
		})

		// Several full rounds after the exit.
		for i := 0; i < 8; i++ {
			k.Syscall(Trap{Op: OpYield})
		}
		if got := k.Sched().Table().Len(); got != 2 {
			t.Errorf("Len() = %d after exit, want 2", got)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler wedged")
	}

	select {
	case <-resumed:
		t.Fatal("exited context resumed past its exit syscall")
	case <-time.After(50 * time.Millisecond):
	}
}
