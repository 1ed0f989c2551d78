package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfship/pdfship/internal/domain"
)

const sessionFileName = "session.json"

// SessionFileRepository implements ports.SessionRepository using a JSON file.
type SessionFileRepository struct {
	dir string
}

// NewSessionFileRepository creates a repository persisting under dir.
func NewSessionFileRepository(dir string) *SessionFileRepository {
	return &SessionFileRepository{dir: dir}
}

// Load retrieves the last saved session state from disk.
// Returns a zero state and nil error if no session file exists.
func (r *SessionFileRepository) Load(ctx context.Context) (domain.SessionState, error) {
	path := filepath.Join(r.dir, sessionFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.SessionState{}, nil
		}
		return domain.SessionState{}, err
	}

	var state domain.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.SessionState{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return state, nil
}

// Save persists the session state atomically.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (r *SessionFileRepository) Save(ctx context.Context, state domain.SessionState) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	path := filepath.Join(r.dir, sessionFileName)
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Path returns the full path to the session file.
func (r *SessionFileRepository) Path() string {
	return filepath.Join(r.dir, sessionFileName)
}
