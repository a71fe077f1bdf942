package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load() = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Fatal("Exists() = true before Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := DefaultConfig()
	cfg.General.Currency = "INR"
	cfg.Budget.ReorderOnPriority = true
	cfg.Server.Addr = "127.0.0.1:9999"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "splitabill", "config.toml"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("config mode = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "splitabill", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[general]\ncurrency = \"EUR\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "EUR" {
		t.Fatalf("currency = %q, want EUR", cfg.General.Currency)
	}
	if cfg.Server.EventsBuffer != 200 {
		t.Fatalf("events buffer = %d, want default 200", cfg.Server.EventsBuffer)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "splitabill", "config.toml")
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	_ = os.WriteFile(path, []byte("[general\n"), 0o600)

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCurrencyEnvOverride(t *testing.T) {
	cfg := DefaultConfig()
	t.Setenv("SPLITABILL_CURRENCY", "")
	if got := Currency(cfg); got != "USD" {
		t.Fatalf("Currency = %q, want USD", got)
	}
	t.Setenv("SPLITABILL_CURRENCY", "GBP")
	if got := Currency(cfg); got != "GBP" {
		t.Fatalf("Currency = %q, want GBP", got)
	}
}
