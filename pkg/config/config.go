// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/chronocam/pkg/ports"
)

// Config represents the configuration file for chronocam.
// Zero values mean "not set" and are filled from Defaults.
type Config struct {
	// Capture
	Interval int    `yaml:"interval"` // Seconds between frames
	Output   string `yaml:"output"`   // Empty means <cwd>/chronocam-output
	Device   int    `yaml:"device"`

	// Driver
	Driver        string `yaml:"driver"`
	PatternWidth  int    `yaml:"pattern_width"`
	PatternHeight int    `yaml:"pattern_height"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Summary file written when the run ends; empty disables it.
	Summary string `yaml:"summary"`
}

// Supported values.
var (
	Drivers    = []string{"gocv", "v4l2", "pattern"}
	LogFormats = []string{"console", "json"}
)

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Interval: 3,
		Device:   0,

		Driver:        "gocv",
		PatternWidth:  640,
		PatternHeight: 480,

		LogLevel:  "info",
		LogFormat: "console",

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid value.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be a positive number of seconds, got %d", c.Interval)
	}
	if c.Device < 0 {
		return fmt.Errorf("device must not be negative, got %d", c.Device)
	}
	if !contains(Drivers, c.Driver) {
		return fmt.Errorf("unknown driver %q", c.Driver)
	}
	if c.PatternWidth <= 0 || c.PatternHeight <= 0 {
		return fmt.Errorf("pattern size must be positive, got %dx%d", c.PatternWidth, c.PatternHeight)
	}
	if !contains(LogFormats, c.LogFormat) {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if ports.ParseLogLevel(c.LogLevel).String() != c.LogLevel {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
