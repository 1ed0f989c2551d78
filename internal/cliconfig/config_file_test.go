package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfigFile(t, `
output_dir = "/data/out"
share_dir = "/data/share"
inbox_dir = "/data/inbox"
max_total_pages = 200
settle_delay = "2s"
output_name = "bundle.pdf"
verbose = true
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() = %v", err)
	}
	if fc.OutputDir != "/data/out" || fc.ShareDir != "/data/share" || fc.InboxDir != "/data/inbox" {
		t.Errorf("dirs = %+v", fc)
	}
	if fc.MaxTotalPages != 200 {
		t.Errorf("MaxTotalPages = %d, want 200", fc.MaxTotalPages)
	}
	if fc.SettleDelay != "2s" {
		t.Errorf("SettleDelay = %q, want 2s", fc.SettleDelay)
	}
	if fc.OutputName != "bundle.pdf" {
		t.Errorf("OutputName = %q", fc.OutputName)
	}
	if fc.Verbose == nil || !*fc.Verbose {
		t.Error("Verbose not parsed as true")
	}
}

func TestLoadFileConfig_Missing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("LoadFileConfig(missing) = nil, want error")
	}
}

func TestLoadFileConfig_Malformed(t *testing.T) {
	path := writeConfigFile(t, "output_dir = [broken")
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("LoadFileConfig(malformed) = nil, want error")
	}
}

func TestApplyFileConfig(t *testing.T) {
	cfg := DefaultConfig()
	vtrue := true
	fc := FileConfig{
		OutputDir:     "/file/out",
		MaxTotalPages: 300,
		SettleDelay:   "1s",
		Verbose:       &vtrue,
	}

	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatalf("ApplyFileConfig() = %v", err)
	}
	if cfg.OutputDir != "/file/out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.MaxTotalPages != 300 {
		t.Errorf("MaxTotalPages = %d, want 300", cfg.MaxTotalPages)
	}
	if cfg.SettleDelay != time.Second {
		t.Errorf("SettleDelay = %v, want 1s", cfg.SettleDelay)
	}
	if !cfg.Verbose {
		t.Error("Verbose not applied")
	}
}

func TestApplyFileConfig_FlagWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = "/flag/out"
	cfg.MaxTotalPages = 10

	fc := FileConfig{OutputDir: "/file/out", MaxTotalPages: 300}
	changed := map[string]bool{"output-dir": true, "max-pages": true}

	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatalf("ApplyFileConfig() = %v", err)
	}
	if cfg.OutputDir != "/flag/out" {
		t.Errorf("OutputDir = %q, file overrode flag", cfg.OutputDir)
	}
	if cfg.MaxTotalPages != 10 {
		t.Errorf("MaxTotalPages = %d, file overrode flag", cfg.MaxTotalPages)
	}
}

func TestApplyFileConfig_BadDuration(t *testing.T) {
	cfg := DefaultConfig()
	fc := FileConfig{SettleDelay: "shortly"}
	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err == nil {
		t.Fatal("ApplyFileConfig(bad duration) = nil, want error")
	}
}
