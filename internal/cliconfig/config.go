// Package cliconfig holds CLI configuration for pdfship: defaults, TOML
// file, PDFSHIP_* environment variables, and flag overrides, applied in
// that order of increasing precedence.
package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdfship/pdfship/internal/session"
)

// Config holds CLI configuration for pdfship.
type Config struct {
	// OutputDir is where merged documents are written.
	OutputDir string

	// ShareDir, when set, receives a copy of every merged output.
	ShareDir string

	// StateDir is where session state is persisted for watch mode.
	StateDir string

	// InboxDir is the directory watched for incoming PDFs in watch mode.
	InboxDir string

	// MaxTotalPages is the aggregate page ceiling enforced before a merge.
	MaxTotalPages int

	// SettleDelay is how long an inbox file must stay quiet before it is
	// picked up.
	SettleDelay time.Duration

	// OutputName overrides the derived default output name.
	OutputName string

	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OutputDir:     ".",
		MaxTotalPages: session.DefaultMaxTotalPages,
		SettleDelay:   500 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.StateDir == "" {
		if h, err := os.UserHomeDir(); err == nil {
			c.StateDir = h + "/.pdfship"
		} else {
			c.StateDir = "."
		}
	}
	if c.MaxTotalPages <= 0 {
		return fmt.Errorf("max-pages must be positive")
	}
	if c.SettleDelay <= 0 {
		return fmt.Errorf("settle delay must be positive")
	}
	return nil
}

// Logger builds the CLI's console logger.
func Logger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntFromString parses and sets an int if valid and flag not changed.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = n
	return nil
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBoolFromString parses and sets a bool if valid and flag not changed.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	if b, err := strconv.ParseBool(value); err == nil {
		*dst = b
	}
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}
