// Package state holds kotoba's application state.
//
// # Overview
//
// A session has exactly one word list and one load. The Store records which
// phase the session is in and, once loaded, the words themselves:
//
//	PhaseLoading ──MarkReady──→ PhaseReady
//	     │
//	     └──────MarkFailed──→ PhaseLoadFailed
//
// Both settled phases are terminal. A second transition returns an error
// wrapping ErrAlreadySettled and leaves the state untouched, so a late or
// duplicated load result cannot replace the word list.
//
// # Concurrency Model
//
// The load runs as a Bubble Tea command on its own goroutine while the UI
// update loop reads snapshots. Store guards its fields with a sync.RWMutex.
// Snapshot returns a value copy; the Words slice is shared because nothing
// writes to it after MarkReady.
package state
