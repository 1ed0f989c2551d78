package cliconfig

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want .", cfg.OutputDir)
	}
	if cfg.MaxTotalPages != 150 {
		t.Errorf("MaxTotalPages = %d, want 150", cfg.MaxTotalPages)
	}
	if cfg.SettleDelay != 500*time.Millisecond {
		t.Errorf("SettleDelay = %v, want 500ms", cfg.SettleDelay)
	}
	if cfg.ShareDir != "" || cfg.InboxDir != "" || cfg.OutputName != "" {
		t.Errorf("optional fields not empty: %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"empty output dir backfilled", func(c *Config) { c.OutputDir = "" }, false},
		{"zero max pages", func(c *Config) { c.MaxTotalPages = 0 }, true},
		{"negative max pages", func(c *Config) { c.MaxTotalPages = -10 }, true},
		{"zero settle delay", func(c *Config) { c.SettleDelay = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				if cfg.OutputDir == "" {
					t.Error("OutputDir left empty after Validate")
				}
				if cfg.StateDir == "" {
					t.Error("StateDir left empty after Validate")
				}
			}
		})
	}
}

func TestConfigSetter_RespectsChangedFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = "/from/flag"

	s := newConfigSetter(map[string]bool{"output-dir": true})
	s.setString("output-dir", "/from/file", &cfg.OutputDir)
	s.setInt("max-pages", 99, &cfg.MaxTotalPages)

	if cfg.OutputDir != "/from/flag" {
		t.Errorf("OutputDir = %q, flag value overridden by lower layer", cfg.OutputDir)
	}
	if cfg.MaxTotalPages != 99 {
		t.Errorf("MaxTotalPages = %d, want 99 from unchanged flag", cfg.MaxTotalPages)
	}
}

func TestConfigSetter_IgnoresEmptyValues(t *testing.T) {
	cfg := DefaultConfig()
	s := newConfigSetter(map[string]bool{})

	s.setString("output-dir", "", &cfg.OutputDir)
	s.setInt("max-pages", 0, &cfg.MaxTotalPages)

	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, empty value applied", cfg.OutputDir)
	}
	if cfg.MaxTotalPages != 150 {
		t.Errorf("MaxTotalPages = %d, zero value applied", cfg.MaxTotalPages)
	}
}

func TestConfigSetter_ParseErrors(t *testing.T) {
	cfg := DefaultConfig()
	s := newConfigSetter(map[string]bool{})

	if err := s.setIntFromString("max-pages", "not-a-number", &cfg.MaxTotalPages); err == nil {
		t.Error("setIntFromString(bad) = nil, want error")
	}
	if err := s.setDuration("settle", "soon", &cfg.SettleDelay); err == nil {
		t.Error("setDuration(bad) = nil, want error")
	}
}
