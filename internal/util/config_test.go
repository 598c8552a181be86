package util

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quill.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigurationOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
model = "tictactoe"
seed = 42
max_runs = 500
invariants = ["XHasNotWon"]
archive_driver = "sqlite3"
archive_dsn = "traces.db"
`)

	cfg := DefaultConfiguration()
	if err := LoadConfiguration(path, &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "tictactoe" {
		t.Errorf("expected model tictactoe, got %s", cfg.Model)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.MaxRuns != 500 {
		t.Errorf("expected max_runs 500, got %d", cfg.MaxRuns)
	}
	// keys absent from the file keep their defaults
	if cfg.MaxSteps != 20 {
		t.Errorf("expected default max_steps 20, got %d", cfg.MaxSteps)
	}
	if len(cfg.Invariants) != 1 || cfg.Invariants[0] != "XHasNotWon" {
		t.Errorf("unexpected invariants %v", cfg.Invariants)
	}
	if cfg.ArchiveDSN != "traces.db" {
		t.Errorf("unexpected archive dsn %s", cfg.ArchiveDSN)
	}
}

func TestLoadConfigurationRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `mdoel = "counter"`)
	cfg := DefaultConfiguration()
	if err := LoadConfiguration(path, &cfg); err == nil {
		t.Fatalf("expected an error for a misspelled key")
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	cfg := DefaultConfiguration()
	if err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.toml"), &cfg); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
