package app

import (
	"sync"

	"github.com/pdfship/pdfship/internal/domain"
)

// OpState represents the state of the session-level merge operation.
type OpState int

const (
	OpIdle OpState = iota
	OpRunning
	OpSucceeded
	OpFailed
)

// String returns a human-readable representation of the state.
func (s OpState) String() string {
	switch s {
	case OpIdle:
		return "Idle"
	case OpRunning:
		return "Running"
	case OpSucceeded:
		return "Succeeded"
	case OpFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the state marks a completed run.
func (s OpState) Terminal() bool { return s == OpSucceeded || s == OpFailed }

// opTracker is the single-flight state machine guarding the merge action:
// Idle -> Running -> (Succeeded | Failed), then back to Running on the next
// commit. The terminal states stay observable until then, so the caller can
// detect completion unambiguously.
type opTracker struct {
	mu    sync.RWMutex
	state OpState
}

// Begin transitions to Running. Returns domain.ErrMergeInProgress when a
// run is already outstanding.
func (t *opTracker) Begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == OpRunning {
		return domain.ErrMergeInProgress
	}
	t.state = OpRunning
	return nil
}

// Finish records the outcome of the outstanding run.
func (t *opTracker) Finish(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.state = OpFailed
		return
	}
	t.state = OpSucceeded
}

// State returns the current operation state.
func (t *opTracker) State() OpState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}
