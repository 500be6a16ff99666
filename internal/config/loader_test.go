package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := ParseBreakout(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseBreakout(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Errorf("embedded YAML and DefaultBreakoutConfig differ:\n yaml: %+v\n code: %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yamlData := "bricks:\n  columns: 4\n  rows: 2\nloop:\n  tick_rate: 30\n"
	if err := os.WriteFile(path, []byte(yamlData), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg.Bricks.Columns != 4 || cfg.Bricks.Rows != 2 {
		t.Errorf("grid = %dx%d, expected 4x2", cfg.Bricks.Columns, cfg.Bricks.Rows)
	}
	if cfg.Loop.TickRate != 30 {
		t.Errorf("tick rate = %d, expected 30", cfg.Loop.TickRate)
	}

	// Keys absent from the file keep their defaults
	if cfg.Paddle.Width != 75 {
		t.Errorf("paddle width = %v, expected default 75", cfg.Paddle.Width)
	}
	if cfg.Bricks.Points != 10 {
		t.Errorf("brick points = %d, expected default 10", cfg.Bricks.Points)
	}
}

func TestLoadBreakoutMissingFile(t *testing.T) {
	_, err := LoadBreakout(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error should carry package prefix, got %q", err)
	}
}

func TestLoadBreakoutBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("bricks: [unterminated"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadBreakout(path); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		want   string
	}{
		{"zero columns", func(c *BreakoutConfig) { c.Bricks.Columns = 0 }, "brick grid"},
		{"negative rows", func(c *BreakoutConfig) { c.Bricks.Rows = -1 }, "brick grid"},
		{"zero paddle width", func(c *BreakoutConfig) { c.Paddle.Width = 0 }, "paddle width"},
		{"paddle wider than board", func(c *BreakoutConfig) { c.Paddle.Width = 1000 }, "paddle width"},
		{"zero radius", func(c *BreakoutConfig) { c.Ball.Radius = 0 }, "ball radius"},
		{"zero tick rate", func(c *BreakoutConfig) { c.Loop.TickRate = 0 }, "tick rate"},
		{"flat bounce angle", func(c *BreakoutConfig) { c.Physics.MaxBounceAngleDeg = 90 }, "bounce angle"},
		{"unknown color", func(c *BreakoutConfig) { c.Ball.Color = "chartreuse" }, "unknown color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestBrickPalette(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	palette := cfg.BrickPalette()

	if len(palette) != cfg.Bricks.Rows {
		t.Fatalf("palette has %d colors, expected %d", len(palette), cfg.Bricks.Rows)
	}
	seen := make(map[any]bool)
	for _, c := range palette {
		seen[c] = true
	}
	if len(seen) != len(palette) {
		t.Error("default row colors should be distinct")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := MarshalBreakout(DefaultBreakoutConfig())
	if err != nil {
		t.Fatalf("MarshalBreakout() failed: %v", err)
	}
	if !strings.Contains(string(data), "tick_rate: 60") {
		t.Errorf("encoded YAML should use yaml tags, got:\n%s", data)
	}
}
