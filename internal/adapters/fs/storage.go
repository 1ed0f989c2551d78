// Package fs provides file-system adapters: byte storage with opaque
// locations, the session state file, and the inbox directory watcher.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfship/pdfship/internal/codec"
	"github.com/pdfship/pdfship/internal/domain"
	"github.com/pdfship/pdfship/internal/ports"
)

// inlineScheme prefixes locations whose bytes are carried in the token
// itself, text-encoded. Callers that hand the engine raw bytes instead of a
// path get an inline location, so no staging file is needed.
const inlineScheme = "inline:"

// Storage implements ports.Storage on the local file system.
// Locations are either plain file paths or inline tokens.
type Storage struct {
	outDir string
	logger ports.Logger
}

// NewStorage creates a storage adapter writing outputs under outDir.
func NewStorage(outDir string, logger ports.Logger) *Storage {
	return &Storage{outDir: outDir, logger: logger}
}

// InlineLocation packs raw bytes into a self-contained location token.
func InlineLocation(data []byte) domain.Location {
	return domain.Location(inlineScheme + codec.Encode(data))
}

// ReadAll returns the bytes behind loc: decoded from the token for inline
// locations, read from disk otherwise.
func (s *Storage) ReadAll(ctx context.Context, loc domain.Location) ([]byte, error) {
	if text, ok := strings.CutPrefix(string(loc), inlineScheme); ok {
		return codec.Decode(text)
	}
	data, err := os.ReadFile(string(loc))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", loc, err)
	}
	return data, nil
}

// WriteAll persists data under suggestedName in the output directory and
// returns its location. Uses atomic write (write to temp file, then rename)
// so no partially written output is ever observable.
func (s *Storage) WriteAll(ctx context.Context, data []byte, suggestedName string) (domain.Location, error) {
	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(s.outDir, filepath.Base(suggestedName))
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("rename %s: %w", tmp, err)
	}

	s.logger.Debug("output written",
		ports.String("path", path),
		ports.Int("bytes", len(data)),
	)
	return domain.Location(path), nil
}
