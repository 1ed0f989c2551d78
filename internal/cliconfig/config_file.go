package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	OutputDir     string `toml:"output_dir"`
	ShareDir      string `toml:"share_dir"`
	StateDir      string `toml:"state_dir"`
	InboxDir      string `toml:"inbox_dir"`
	MaxTotalPages int    `toml:"max_total_pages"`
	SettleDelay   string `toml:"settle_delay"`
	OutputName    string `toml:"output_name"`
	Verbose       *bool  `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.pdfship/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".pdfship", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("output-dir", fc.OutputDir, &cfg.OutputDir)
	s.setString("share-dir", fc.ShareDir, &cfg.ShareDir)
	s.setString("state-dir", fc.StateDir, &cfg.StateDir)
	s.setString("inbox-dir", fc.InboxDir, &cfg.InboxDir)
	s.setString("name", fc.OutputName, &cfg.OutputName)
	s.setInt("max-pages", fc.MaxTotalPages, &cfg.MaxTotalPages)
	if err := s.setDuration("settle", fc.SettleDelay, &cfg.SettleDelay); err != nil {
		return err
	}
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	return nil
}
