// Package main provides the CLI entry point for chronocam.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/ideamans/go-l10n"

	"github.com/user/chronocam/pkg/adapters/filesink"
	"github.com/user/chronocam/pkg/adapters/ggrenderer"
	"github.com/user/chronocam/pkg/adapters/gocvcamera"
	"github.com/user/chronocam/pkg/adapters/logger"
	"github.com/user/chronocam/pkg/adapters/nullsink"
	"github.com/user/chronocam/pkg/adapters/osfilesystem"
	"github.com/user/chronocam/pkg/adapters/patterncamera"
	"github.com/user/chronocam/pkg/adapters/sysclock"
	"github.com/user/chronocam/pkg/adapters/v4l2camera"
	"github.com/user/chronocam/pkg/capture"
	"github.com/user/chronocam/pkg/chronocam"
	"github.com/user/chronocam/pkg/config"
	"github.com/user/chronocam/pkg/ports"
	"github.com/user/chronocam/pkg/stages/annotate"
	"github.com/user/chronocam/pkg/stages/archive"
	"github.com/user/chronocam/pkg/stages/gate"
	"github.com/user/chronocam/pkg/summarizer"
)

// lowSpaceThreshold triggers a warning about the output volume at startup.
const lowSpaceThreshold = 100 << 20

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Capture CaptureCmd `cmd:"" default:"withargs" help:"Capture timestamped frames at a fixed interval."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// CaptureCmd defines the capture subcommand. Pointer flags override the
// configuration file only when given.
type CaptureCmd struct {
	Config string `short:"c" type:"existingfile" help:"YAML configuration file."`

	// Capture
	Interval *int    `short:"i" help:"Seconds between frames (default: 3)."`
	Output   *string `short:"o" help:"Output directory (default: ./chronocam-output)."`
	Device   *int    `help:"Capture device index (default: 0)."`

	// Driver
	Driver        *string `help:"Camera driver (gocv, v4l2, pattern)."`
	PatternWidth  *int    `help:"Frame width of the pattern driver."`
	PatternHeight *int    `help:"Frame height of the pattern driver."`

	// Debug options
	Debug    bool    `short:"d" help:"Enable debug output."`
	DebugDir *string `help:"Directory for debug output."`

	// Summary
	Summary *string `short:"s" help:"Write a run summary to file (Markdown format)."`

	// Logging options
	LogLevel  *string `short:"l" help:"Log level (debug, info, warn, error)."`
	LogFormat *string `help:"Log format (console, json)."`
	Quiet     bool    `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("chronocam"),
		kong.Description(l10n.T("Timelapse security camera: saves a timestamped JPEG every few seconds.")),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the capture command.
func (cmd *CaptureCmd) Run() error {
	fileCfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		fileCfg = loaded
	}
	if cmd.LogLevel != nil {
		fileCfg.LogLevel = *cmd.LogLevel
	}
	if cmd.LogFormat != nil {
		fileCfg.LogFormat = *cmd.LogFormat
	}
	if err := fileCfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cmd.Quiet, fileCfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	if z, ok := log.(*logger.ZapLogger); ok {
		defer z.Sync()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	cfg := cmd.buildConfig(fileCfg).Build(cwd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	if err := fs.MkdirAll(cfg.OutputDir); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	reportFreeSpace(fs, cfg.OutputDir, log)

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	camera := newCamera(cfg, renderer)

	controller := capture.New(
		camera,
		gate.NewStage(log),
		annotate.NewStage(renderer, log),
		archive.NewStage(renderer, fs, log),
		sysclock.New(),
		sink,
		log.WithComponent("capture"),
	)

	result, runErr := controller.Run(ctx, cfg.ToCaptureConfig())

	if cfg.SummaryPath != "" && result.Session != nil {
		writeSummary(cfg, result.Session, runErr, fs, log)
	}

	return runErr
}

// buildConfig applies CLI overrides on top of the file configuration.
func (cmd *CaptureCmd) buildConfig(fileCfg config.Config) *chronocam.ConfigBuilder {
	builder := chronocam.FromFile(fileCfg)

	if cmd.Interval != nil {
		builder.WithIntervalSeconds(*cmd.Interval)
	}
	if cmd.Output != nil {
		builder.WithOutputDir(*cmd.Output)
	}
	if cmd.Device != nil {
		builder.WithDevice(*cmd.Device)
	}
	if cmd.Driver != nil {
		builder.WithDriver(chronocam.Driver(*cmd.Driver))
	}
	if cmd.PatternWidth != nil || cmd.PatternHeight != nil {
		w, h := fileCfg.PatternWidth, fileCfg.PatternHeight
		if cmd.PatternWidth != nil {
			w = *cmd.PatternWidth
		}
		if cmd.PatternHeight != nil {
			h = *cmd.PatternHeight
		}
		builder.WithPatternSize(w, h)
	}
	if cmd.Debug || cmd.DebugDir != nil {
		dir := ""
		if cmd.DebugDir != nil {
			dir = *cmd.DebugDir
		}
		builder.WithDebug(cmd.Debug || fileCfg.Debug, dir)
	}
	if cmd.Summary != nil {
		builder.WithSummary(*cmd.Summary)
	}

	return builder
}

func newLogger(quiet bool, cfg config.Config) (ports.Logger, error) {
	if quiet {
		return logger.NewNoop(), nil
	}
	level := ports.ParseLogLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		z, err := logger.NewZap(level)
		if err != nil {
			return nil, err
		}
		return z, nil
	}
	return logger.NewConsole(level), nil
}

func newCamera(cfg chronocam.Config, renderer ports.Renderer) ports.Camera {
	switch cfg.Driver {
	case chronocam.DriverV4L2:
		return v4l2camera.New(renderer)
	case chronocam.DriverPattern:
		return patterncamera.New(renderer, cfg.PatternWidth, cfg.PatternHeight)
	default:
		return gocvcamera.New()
	}
}

func reportFreeSpace(probe ports.DiskProbe, dir string, log ports.Logger) {
	usage, err := probe.Usage(dir)
	if err != nil {
		log.Warn("Could not determine free space: %s", err)
		return
	}
	log.Info("Output volume has %s free of %s", humanize.IBytes(usage.Free), humanize.IBytes(usage.Total))
	if usage.Free < lowSpaceThreshold {
		log.Warn("Low disk space on output volume: %s free", humanize.IBytes(usage.Free))
	}
}

func writeSummary(cfg chronocam.Config, session *capture.Session, runErr error, fs ports.FileSystem, log ports.Logger) {
	summary := summarizer.NewBuilder().
		WithSession(session).
		WithDriver(string(cfg.Driver)).
		WithError(runErr).
		Build()

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	if err := summarizer.NewWriter(formatter, fs).Write(cfg.SummaryPath, summary); err != nil {
		log.Warn("Failed to write summary: %s", err)
		return
	}
	log.Info("Summary saved to %s", cfg.SummaryPath)
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("chronocam version %s", version))
	return nil
}
