package ports

import (
	"context"

	"github.com/pdfship/pdfship/internal/domain"
)

// SessionRepository handles session persistence for crash recovery.
// Implementations persist state atomically.
type SessionRepository interface {
	// Load retrieves the last saved session state.
	// Returns a zero state and nil error if no state exists.
	// Returns an error only for actual read failures.
	Load(ctx context.Context) (domain.SessionState, error)

	// Save persists the session state atomically.
	// The implementation should use atomic writes (e.g., write to temp file,
	// then rename) to prevent corruption on crash.
	Save(ctx context.Context, state domain.SessionState) error
}
