// Package chronocam provides the runtime configuration of a capture run.
package chronocam

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/user/chronocam/pkg/capture"
	"github.com/user/chronocam/pkg/config"
)

// Driver selects the camera implementation.
type Driver string

const (
	DriverGoCV    Driver = "gocv"
	DriverV4L2    Driver = "v4l2"
	DriverPattern Driver = "pattern"
)

// DefaultOutputName is the directory created under the working directory
// when no output is given.
const DefaultOutputName = "chronocam-output"

// DefaultOutputDir returns <cwd>/chronocam-output.
func DefaultOutputDir(cwd string) string {
	return filepath.Join(cwd, DefaultOutputName)
}

// Config represents the configuration of one capture run.
type Config struct {
	// Capture
	Interval  time.Duration // Sleep between frames (min: 1s)
	OutputDir string        // Archive directory, created before the loop starts
	Device    int           // Capture device index

	// Driver
	Driver        Driver
	PatternWidth  int // Frame size of the pattern driver
	PatternHeight int

	// Debug
	Debug    bool
	DebugDir string

	// SummaryPath is where the Markdown run summary goes; empty disables it.
	SummaryPath string
}

// Validate reports whether the run can start.
func (c Config) Validate() error {
	if c.Interval < time.Second {
		return fmt.Errorf("interval must be at least one second, got %s", c.Interval)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	switch c.Driver {
	case DriverGoCV, DriverV4L2, DriverPattern:
	default:
		return fmt.Errorf("unknown driver %q", c.Driver)
	}
	return c.ToCaptureConfig().Validate()
}

// ToCaptureConfig converts Config to capture.Config.
func (c Config) ToCaptureConfig() capture.Config {
	return capture.Config{
		Device:    c.Device,
		Interval:  c.Interval,
		OutputDir: c.OutputDir,
	}
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with the defaults of the
// configuration file.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: fromFileConfig(config.Defaults())}
}

// FromFile creates a ConfigBuilder seeded from a loaded configuration file.
func FromFile(cfg config.Config) *ConfigBuilder {
	return &ConfigBuilder{config: fromFileConfig(cfg)}
}

func fromFileConfig(cfg config.Config) Config {
	return Config{
		Interval:      time.Duration(cfg.Interval) * time.Second,
		OutputDir:     cfg.Output,
		Device:        cfg.Device,
		Driver:        Driver(cfg.Driver),
		PatternWidth:  cfg.PatternWidth,
		PatternHeight: cfg.PatternHeight,
		Debug:         cfg.Debug,
		DebugDir:      cfg.DebugDir,
		SummaryPath:   cfg.Summary,
	}
}

// Build returns the final Config. An unset output directory resolves
// against cwd.
func (b *ConfigBuilder) Build(cwd string) Config {
	cfg := b.config
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir(cwd)
	}
	return cfg
}

// WithInterval sets the sleep between frames.
func (b *ConfigBuilder) WithInterval(d time.Duration) *ConfigBuilder {
	b.config.Interval = d
	return b
}

// WithIntervalSeconds sets the sleep between frames in whole seconds.
func (b *ConfigBuilder) WithIntervalSeconds(sec int) *ConfigBuilder {
	b.config.Interval = time.Duration(sec) * time.Second
	return b
}

// WithOutputDir sets the archive directory.
func (b *ConfigBuilder) WithOutputDir(dir string) *ConfigBuilder {
	b.config.OutputDir = dir
	return b
}

// WithDevice sets the capture device index.
func (b *ConfigBuilder) WithDevice(device int) *ConfigBuilder {
	b.config.Device = device
	return b
}

// WithDriver sets the camera driver.
func (b *ConfigBuilder) WithDriver(driver Driver) *ConfigBuilder {
	b.config.Driver = driver
	return b
}

// WithPatternSize sets the frame size of the pattern driver.
func (b *ConfigBuilder) WithPatternSize(width, height int) *ConfigBuilder {
	b.config.PatternWidth = width
	b.config.PatternHeight = height
	return b
}

// WithDebug enables the debug sink writing into dir.
func (b *ConfigBuilder) WithDebug(enabled bool, dir string) *ConfigBuilder {
	b.config.Debug = enabled
	if dir != "" {
		b.config.DebugDir = dir
	}
	return b
}

// WithSummary sets the Markdown summary path.
func (b *ConfigBuilder) WithSummary(path string) *ConfigBuilder {
	b.config.SummaryPath = path
	return b
}
