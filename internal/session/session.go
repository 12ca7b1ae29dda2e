package session

import (
	"sync"
	"time"

	"AI_PROCTOR/go-backend/internal/scoring"

	"github.com/google/uuid"
)

// Session is the mutable state of one WebSocket connection. It is owned by
// the goroutine serving that connection; the registry only inserts and
// removes whole entries, it never reaches into a session owned by another
// goroutine.
type Session struct {
	Handle    uint64
	ClientID  string
	StartedAt time.Time

	// EmployeeID is bound by the init message. It may never arrive, and a
	// repeated init overwrites it (last write wins).
	EmployeeID string

	lastFrame time.Time

	// Frames counts gate-accepted frames, including ones whose extraction
	// failed.
	Frames int

	// Scores is the append-only history of reported per-frame scores.
	Scores []int

	Scorer *scoring.Scorer
}

// RecordScore appends one frame's reported score to the history.
func (s *Session) RecordScore(score int) {
	s.Scores = append(s.Scores, score)
}

// FinalScore is the mean of the score history. The second return is false
// when no frame was ever scored, in which case there is nothing to report.
func (s *Session) FinalScore() (float64, bool) {
	if len(s.Scores) == 0 {
		return 0, false
	}
	sum := 0
	for _, v := range s.Scores {
		sum += v
	}
	return float64(sum) / float64(len(s.Scores)), true
}

// FrameGate bounds how often the expensive extraction call runs, independent
// of the client's send rate.
type FrameGate struct {
	interval time.Duration
}

func NewFrameGate(maxFPS int) *FrameGate {
	if maxFPS <= 0 {
		maxFPS = 10
	}
	return &FrameGate{interval: time.Second / time.Duration(maxFPS)}
}

// ShouldProcess reports whether a frame arriving at now should be analyzed.
// Acceptance updates the session's last-frame timestamp; a rejected frame
// leaves the session untouched.
func (g *FrameGate) ShouldProcess(s *Session, now time.Time) bool {
	if now.Sub(s.lastFrame) < g.interval {
		return false
	}
	s.lastFrame = now
	return true
}

// Registry tracks the live sessions of the process, keyed by an issued
// integer handle. It is the only structure shared across connection
// goroutines.
type Registry struct {
	mu       sync.RWMutex
	next     uint64
	sessions map[uint64]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uint64]*Session)}
}

// Add creates a session with a fresh handle and registers it.
func (r *Registry) Add() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	s := &Session{
		Handle:    r.next,
		ClientID:  uuid.NewString(),
		StartedAt: time.Now(),
		Scorer:    scoring.NewScorer(),
	}
	r.sessions[s.Handle] = s
	return s
}

func (r *Registry) Remove(handle uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, handle)
}

func (r *Registry) Get(handle uint64) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[handle]
	return s, ok
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
