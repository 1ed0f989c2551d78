package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PDFSHIP_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("output-dir", os.Getenv("PDFSHIP_OUTPUT_DIR"), &cfg.OutputDir)
	s.setString("share-dir", os.Getenv("PDFSHIP_SHARE_DIR"), &cfg.ShareDir)
	s.setString("state-dir", os.Getenv("PDFSHIP_STATE_DIR"), &cfg.StateDir)
	s.setString("inbox-dir", os.Getenv("PDFSHIP_INBOX_DIR"), &cfg.InboxDir)
	s.setString("name", os.Getenv("PDFSHIP_OUTPUT_NAME"), &cfg.OutputName)

	if err := s.setIntFromString("max-pages", os.Getenv("PDFSHIP_MAX_TOTAL_PAGES"), &cfg.MaxTotalPages); err != nil {
		return err
	}
	if err := s.setDuration("settle", os.Getenv("PDFSHIP_SETTLE_DELAY"), &cfg.SettleDelay); err != nil {
		return err
	}
	s.setBoolFromString("verbose", os.Getenv("PDFSHIP_VERBOSE"), &cfg.Verbose)

	return nil
}
