package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Animation.Enabled || cfg.Animation.DurationMs != 280 {
		t.Errorf("unexpected animation defaults: %+v", cfg.Animation)
	}
	if cfg.Shuffle.MinMoves != 30 || cfg.Shuffle.MaxMoves != 60 {
		t.Errorf("unexpected shuffle defaults: %+v", cfg.Shuffle)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
keys:
  top: u
animation:
  enabled: true
  duration_ms: 150
shuffle:
  min_moves: 10
  max_moves: 20
  initial_delay_ms: 100
  move_delay_ms: 50
database:
  path: /tmp/cubik-test.db
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Keys.Top != "u" {
		t.Errorf("top key = %q, want u", cfg.Keys.Top)
	}
	if cfg.Animation.DurationMs != 150 {
		t.Errorf("duration = %d, want 150", cfg.Animation.DurationMs)
	}
	if cfg.Shuffle.MaxMoves != 20 {
		t.Errorf("max moves = %d, want 20", cfg.Shuffle.MaxMoves)
	}
	if cfg.Database.Path != "/tmp/cubik-test.db" {
		t.Errorf("db path = %q", cfg.Database.Path)
	}
}

func TestValidateRejectsMultiCharKey(t *testing.T) {
	cfg := Default()
	cfg.Keys.Top = "up"
	if err := cfg.Validate(); err == nil {
		t.Fatal("multi-character key should be invalid")
	}
}

func TestValidateRejectsInvertedShuffleRange(t *testing.T) {
	cfg := Default()
	cfg.Shuffle.MinMoves = 50
	cfg.Shuffle.MaxMoves = 10
	if err := cfg.Validate(); err == nil {
		t.Fatal("inverted shuffle range should be invalid")
	}
}

func TestKeyBindingsSkipsEmpty(t *testing.T) {
	cfg := Default()
	cfg.Keys.Front = "g"
	bindings := cfg.KeyBindings()
	if len(bindings) != 1 || bindings["front"] != "g" {
		t.Errorf("bindings = %v, want only front=g", bindings)
	}
}
