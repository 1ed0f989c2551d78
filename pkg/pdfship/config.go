package pdfship

import (
	"fmt"

	"github.com/pdfship/pdfship/internal/session"
)

// Config holds the engine configuration.
type Config struct {
	// OutputDir is where merged documents are written by the default
	// storage adapter. Defaults to the current directory.
	OutputDir string

	// ShareDir, when set, makes the engine copy every merged output into
	// this directory as a platform hand-off.
	ShareDir string

	// MaxTotalPages is the aggregate page ceiling enforced by the
	// constraint gate. Defaults to session.DefaultMaxTotalPages (150).
	MaxTotalPages int
}

// SetDefaults fills in default values for unset fields.
func (c *Config) SetDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.MaxTotalPages == 0 {
		c.MaxTotalPages = session.DefaultMaxTotalPages
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.MaxTotalPages <= 0 {
		return fmt.Errorf("pdfship: MaxTotalPages must be positive, got %d", c.MaxTotalPages)
	}
	return nil
}
