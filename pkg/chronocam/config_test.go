package chronocam

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/user/chronocam/pkg/config"
)

func TestNewConfigBuilder_Defaults(t *testing.T) {
	cfg := NewConfigBuilder().Build("/home/cam")

	if cfg.Interval != 3*time.Second {
		t.Errorf("expected 3s interval, got %s", cfg.Interval)
	}
	if want := filepath.Join("/home/cam", "chronocam-output"); cfg.OutputDir != want {
		t.Errorf("expected output %s, got %s", want, cfg.OutputDir)
	}
	if cfg.Driver != DriverGoCV || cfg.Device != 0 {
		t.Errorf("unexpected driver settings: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestConfigBuilder_Overrides(t *testing.T) {
	fileCfg := config.Defaults()
	fileCfg.Interval = 60
	fileCfg.Output = "/srv/frames"
	fileCfg.Summary = "/srv/summary.md"

	cfg := FromFile(fileCfg).
		WithIntervalSeconds(5).
		WithDevice(2).
		WithDriver(DriverPattern).
		WithPatternSize(320, 240).
		WithDebug(true, "/tmp/dbg").
		Build("/ignored")

	if cfg.Interval != 5*time.Second {
		t.Errorf("flag should override file interval, got %s", cfg.Interval)
	}
	if cfg.OutputDir != "/srv/frames" {
		t.Errorf("file output should be kept, got %s", cfg.OutputDir)
	}
	if cfg.Device != 2 || cfg.Driver != DriverPattern || cfg.PatternWidth != 320 || cfg.PatternHeight != 240 {
		t.Errorf("unexpected driver settings: %+v", cfg)
	}
	if !cfg.Debug || cfg.DebugDir != "/tmp/dbg" || cfg.SummaryPath != "/srv/summary.md" {
		t.Errorf("unexpected debug settings: %+v", cfg)
	}

	cc := cfg.ToCaptureConfig()
	if cc.Interval != 5*time.Second || cc.OutputDir != "/srv/frames" || cc.Device != 2 {
		t.Errorf("unexpected capture config: %+v", cc)
	}
}

func TestConfig_Validate(t *testing.T) {
	base := NewConfigBuilder().Build("/tmp")

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero interval", func(c *Config) { c.Interval = 0 }},
		{"sub-second interval", func(c *Config) { c.Interval = 500 * time.Millisecond }},
		{"no output", func(c *Config) { c.OutputDir = "" }},
		{"bad driver", func(c *Config) { c.Driver = "dshow" }},
		{"negative device", func(c *Config) { c.Device = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
