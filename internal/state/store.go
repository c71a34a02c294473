package state

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Phase is the session's load phase.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseLoadFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseLoadFailed:
		return "load failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrAlreadySettled is returned when a phase transition is attempted after
// the session has left PhaseLoading.
var ErrAlreadySettled = errors.New("session already settled")

// Snapshot represents the session data available to the presenter.
type Snapshot struct {
	Phase    Phase
	Words    []string
	LoadErr  error
	LoadedAt time.Time
}

// Ready reports whether the word list is available for searching.
func (s Snapshot) Ready() bool {
	return s.Phase == PhaseReady
}

// Store owns the application state. The phase leaves PhaseLoading exactly
// once; the word list is immutable after MarkReady.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// MarkReady records the loaded word list and enters PhaseReady.
func (s *Store) MarkReady(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Phase != PhaseLoading {
		return fmt.Errorf("mark ready: %w (phase %s)", ErrAlreadySettled, s.snapshot.Phase)
	}
	s.snapshot.Words = words
	s.snapshot.Phase = PhaseReady
	s.snapshot.LoadedAt = time.Now()
	return nil
}

// MarkFailed records the load error and enters PhaseLoadFailed.
func (s *Store) MarkFailed(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Phase != PhaseLoading {
		return fmt.Errorf("mark failed: %w (phase %s)", ErrAlreadySettled, s.snapshot.Phase)
	}
	s.snapshot.LoadErr = err
	s.snapshot.Phase = PhaseLoadFailed
	return nil
}

// Snapshot returns a copy of the current state. Words is shared because it
// is never mutated after MarkReady.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
