package app

import (
	"errors"
	"testing"

	"github.com/pdfship/pdfship/internal/domain"
)

func TestOpState_String(t *testing.T) {
	tests := []struct {
		state OpState
		want  string
	}{
		{OpIdle, "Idle"},
		{OpRunning, "Running"},
		{OpSucceeded, "Succeeded"},
		{OpFailed, "Failed"},
		{OpState(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestOpTracker_SingleFlight(t *testing.T) {
	var tr opTracker

	if tr.State() != OpIdle {
		t.Fatalf("initial state = %v, want Idle", tr.State())
	}
	if err := tr.Begin(); err != nil {
		t.Fatalf("Begin() = %v", err)
	}
	if tr.State() != OpRunning {
		t.Fatalf("state = %v, want Running", tr.State())
	}

	// A second begin while running must be rejected.
	if err := tr.Begin(); !errors.Is(err, domain.ErrMergeInProgress) {
		t.Fatalf("Begin() while running = %v, want ErrMergeInProgress", err)
	}

	tr.Finish(nil)
	if tr.State() != OpSucceeded {
		t.Fatalf("state = %v, want Succeeded", tr.State())
	}

	// Completed runs allow a fresh begin.
	if err := tr.Begin(); err != nil {
		t.Fatalf("Begin() after success = %v", err)
	}
	tr.Finish(errors.New("boom"))
	if tr.State() != OpFailed {
		t.Fatalf("state = %v, want Failed", tr.State())
	}
	if err := tr.Begin(); err != nil {
		t.Fatalf("Begin() after failure = %v", err)
	}
}
