package session

import (
	"testing"
	"time"
)

func TestFrameGateAcceptsFirstFrame(t *testing.T) {
	r := NewRegistry()
	s := r.Add()
	g := NewFrameGate(10)

	if !g.ShouldProcess(s, time.Now()) {
		t.Fatal("first frame of a session must be accepted")
	}
}

func TestFrameGateRejectsFastFrames(t *testing.T) {
	r := NewRegistry()
	s := r.Add()
	g := NewFrameGate(10) // 100ms window

	base := time.Now()
	if !g.ShouldProcess(s, base) {
		t.Fatal("first frame rejected")
	}

	// Frames every 10ms inside one window: all rejected.
	for i := 1; i <= 9; i++ {
		at := base.Add(time.Duration(i) * 10 * time.Millisecond)
		if g.ShouldProcess(s, at) {
			t.Fatalf("frame at +%dms accepted inside the window", i*10)
		}
	}

	// The next window boundary is accepted again.
	if !g.ShouldProcess(s, base.Add(100*time.Millisecond)) {
		t.Fatal("frame at the window boundary rejected")
	}
}

func TestFrameGateAcceptsSlowFrames(t *testing.T) {
	r := NewRegistry()
	s := r.Add()
	g := NewFrameGate(10)

	at := time.Now()
	for i := 0; i < 20; i++ {
		if !g.ShouldProcess(s, at) {
			t.Fatalf("frame %d at the allowed rate rejected", i)
		}
		at = at.Add(150 * time.Millisecond)
	}
}

func TestFrameGateRejectionLeavesTimestamp(t *testing.T) {
	r := NewRegistry()
	s := r.Add()
	g := NewFrameGate(10)

	base := time.Now()
	g.ShouldProcess(s, base)
	g.ShouldProcess(s, base.Add(50*time.Millisecond)) // rejected

	// The rejected frame must not have pushed the window forward.
	if !g.ShouldProcess(s, base.Add(100*time.Millisecond)) {
		t.Fatal("rejected frame mutated the gate state")
	}
}

func TestRegistryHandles(t *testing.T) {
	r := NewRegistry()

	a := r.Add()
	b := r.Add()
	if a.Handle == b.Handle {
		t.Fatalf("duplicate handles issued: %d", a.Handle)
	}
	if a.ClientID == b.ClientID {
		t.Fatal("duplicate client ids issued")
	}
	if r.Count() != 2 {
		t.Fatalf("expected 2 live sessions, got %d", r.Count())
	}

	if got, ok := r.Get(a.Handle); !ok || got != a {
		t.Fatal("self-lookup by handle failed")
	}

	r.Remove(a.Handle)
	if _, ok := r.Get(a.Handle); ok {
		t.Fatal("removed session still resolvable")
	}
	if r.Count() != 1 {
		t.Fatalf("expected 1 live session, got %d", r.Count())
	}

	// Removing twice is harmless.
	r.Remove(a.Handle)
}

func TestFinalScore(t *testing.T) {
	r := NewRegistry()
	s := r.Add()

	if _, ok := s.FinalScore(); ok {
		t.Fatal("session without frames must have no final score")
	}

	for _, v := range []int{97, 94, 91} {
		s.RecordScore(v)
	}

	final, ok := s.FinalScore()
	if !ok {
		t.Fatal("expected a final score")
	}
	if final != 94 {
		t.Fatalf("expected mean 94, got %v", final)
	}
}
