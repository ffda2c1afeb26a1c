package domain

import (
	"fmt"
	"time"
)

type SessionState string

const (
	StateReceiving    SessionState = "RECEIVING"
	StateTransforming SessionState = "TRANSFORMING"
	StateSending      SessionState = "SENDING"
	StateDone         SessionState = "DONE"
	StateFailed       SessionState = "FAILED"
)

var transitions = map[SessionState][]SessionState{
	StateReceiving:    {StateTransforming, StateFailed},
	StateTransforming: {StateSending, StateFailed},
	StateSending:      {StateDone, StateFailed},
}

// CanTransition reports whether the session may move from s to next.
func (s SessionState) CanTransition(next SessionState) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s SessionState) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// Session is the per-call record. It is owned by one goroutine.
type Session struct {
	ID         string
	Op         Operation
	Metadata   Metadata
	InputPath  string
	OutputPath string
	State      SessionState
	Status     *Status
	Err        error
	StartTime  time.Time
	EndTime    time.Time
	BytesIn    int64
	BytesOut   int64
}

func NewSession(id string, op Operation) *Session {
	return &Session{
		ID:        id,
		Op:        op,
		State:     StateReceiving,
		StartTime: time.Now(),
	}
}

// Transition moves the session to next or returns an error if the move is
// not part of the lifecycle.
func (s *Session) Transition(next SessionState) error {
	if !s.State.CanTransition(next) {
		return fmt.Errorf("invalid session transition %s -> %s", s.State, next)
	}
	s.State = next
	if next.IsTerminal() {
		s.EndTime = time.Now()
	}
	return nil
}

// Paths returns every scratch path the session allocated.
func (s *Session) Paths() []string {
	var paths []string
	if s.InputPath != "" {
		paths = append(paths, s.InputPath)
	}
	if s.OutputPath != "" {
		paths = append(paths, s.OutputPath)
	}
	return paths
}

func (s *Session) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}
