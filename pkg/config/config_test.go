package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chronocam.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Interval != 3 {
		t.Errorf("expected default interval 3, got %d", cfg.Interval)
	}
	if cfg.Driver != "gocv" {
		t.Errorf("expected default driver gocv, got %s", cfg.Driver)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
interval: 10
output: /var/lib/chronocam
device: 1
driver: pattern
log_format: json
summary: /tmp/summary.md
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Interval != 10 || cfg.Output != "/var/lib/chronocam" || cfg.Device != 1 {
		t.Errorf("unexpected capture settings: %+v", cfg)
	}
	if cfg.Driver != "pattern" || cfg.LogFormat != "json" || cfg.Summary != "/tmp/summary.md" {
		t.Errorf("unexpected settings: %+v", cfg)
	}
	// Keys absent from the file keep their defaults.
	if cfg.LogLevel != "info" || cfg.PatternWidth != 640 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero interval", "interval: 0\n"},
		{"negative device", "device: -1\n"},
		{"unknown driver", "driver: dshow\n"},
		{"unknown log level", "log_level: verbose\n"},
		{"unknown log format", "log_format: xml\n"},
		{"bad pattern size", "pattern_width: 0\n"},
		{"malformed yaml", "interval: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFromFile(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
