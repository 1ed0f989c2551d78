// Package share provides Sharer adapters for the platform hand-off of a
// merged output. The hand-off is a pure sink; no result flows back into the
// engine.
package share

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfship/pdfship/internal/domain"
	"github.com/pdfship/pdfship/internal/ports"
)

// DirSharer implements ports.Sharer by copying the output into a hand-off
// directory (e.g. a synced or watched export folder).
type DirSharer struct {
	dir    string
	logger ports.Logger
}

// NewDirSharer creates a sharer exporting into dir.
func NewDirSharer(dir string, logger ports.Logger) *DirSharer {
	return &DirSharer{dir: dir, logger: logger}
}

// Share copies the file behind loc into the hand-off directory.
func (d *DirSharer) Share(ctx context.Context, loc domain.Location) error {
	src, err := os.Open(string(loc))
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create share dir: %w", err)
	}

	dest := filepath.Join(d.dir, filepath.Base(string(loc)))
	tmp := dest + ".tmp"
	dst, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	d.logger.Info("output shared", ports.String("dest", dest))
	return nil
}
