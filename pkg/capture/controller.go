// Package capture runs the timelapse capture loop.
package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/user/chronocam/pkg/pipeline"
	"github.com/user/chronocam/pkg/ports"
)

// TickResult describes what one iteration did.
type TickResult struct {
	Verdict pipeline.Verdict
	Path    string // Set only when a file was archived
}

// RunResult is returned by Run. Session is set whenever the device was opened.
type RunResult struct {
	Session *Session
}

// Controller drives the camera through the gate, annotate and archive stages.
// It is not safe for concurrent use.
type Controller struct {
	camera        ports.Camera
	gateStage     pipeline.Stage[pipeline.GateInput, pipeline.GateResult]
	annotateStage pipeline.Stage[pipeline.AnnotateInput, pipeline.AnnotateResult]
	archiveStage  pipeline.Stage[pipeline.ArchiveInput, pipeline.ArchiveResult]
	clock         ports.Clock
	sink          ports.DebugSink
	logger        ports.Logger
}

// New creates a new Controller.
func New(
	camera ports.Camera,
	gateStage pipeline.Stage[pipeline.GateInput, pipeline.GateResult],
	annotateStage pipeline.Stage[pipeline.AnnotateInput, pipeline.AnnotateResult],
	archiveStage pipeline.Stage[pipeline.ArchiveInput, pipeline.ArchiveResult],
	clock ports.Clock,
	sink ports.DebugSink,
	logger ports.Logger,
) *Controller {
	return &Controller{
		camera:        camera,
		gateStage:     gateStage,
		annotateStage: annotateStage,
		archiveStage:  archiveStage,
		clock:         clock,
		sink:          sink,
		logger:        logger,
	}
}

// NewSession creates the state for a fresh run.
func (c *Controller) NewSession(cfg Config) *Session {
	return &Session{
		ID:        uuid.New(),
		Device:    cfg.Device,
		Interval:  cfg.Interval,
		OutputDir: cfg.OutputDir,
		StartedAt: c.clock.Now(),
	}
}

// Run opens the camera and ticks until ctx is cancelled or a tick fails.
// Cancellation is a clean stop and returns a nil error.
func (c *Controller) Run(ctx context.Context, cfg Config) (RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return RunResult{}, err
	}

	c.logger.Info("Opening camera %d", cfg.Device)
	if err := c.camera.Open(ctx, cfg.Device); err != nil {
		return RunResult{}, c.fail(fmt.Errorf("%w: %w", pipeline.ErrDeviceUnavailable, err))
	}
	defer c.camera.Close()

	s := c.NewSession(cfg)
	c.logger.Info("Capturing every %s into %s", cfg.Interval, cfg.OutputDir)

	err := c.loop(ctx, s)

	s.EndedAt = c.clock.Now()
	c.saveSession(s)

	if err != nil {
		return RunResult{Session: s}, err
	}
	c.logger.Info("Capture stopped after %d frames", s.Archived)
	return RunResult{Session: s}, nil
}

// loop sleeps one interval after every tick, whatever its verdict.
func (c *Controller) loop(ctx context.Context, s *Session) error {
	for {
		if ctx.Err() != nil {
			c.logger.Info("Interrupted, shutting down...")
			return nil
		}

		if _, err := c.Tick(ctx, s); err != nil {
			if ctx.Err() != nil {
				c.logger.Info("Interrupted, shutting down...")
				return nil
			}
			return err
		}

		if err := c.clock.Sleep(ctx, s.Interval); err != nil {
			if ctx.Err() != nil {
				c.logger.Info("Interrupted, shutting down...")
				return nil
			}
			return c.fail(err)
		}
	}
}

// Tick performs one iteration: read, gate, and for accepted frames annotate
// and archive. It does not sleep the interval.
func (c *Controller) Tick(ctx context.Context, s *Session) (TickResult, error) {
	frame, err := c.camera.ReadFrame(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return TickResult{}, ctx.Err()
		}
		return TickResult{}, c.fail(fmt.Errorf("%w: %w", pipeline.ErrRead, err))
	}
	s.Reads++

	gate, err := c.gateStage.Execute(ctx, pipeline.GateInput{Frame: frame, WarmedUp: s.WarmedUp})
	if err != nil {
		return TickResult{}, c.fail(err)
	}

	switch gate.Verdict {
	case pipeline.VerdictWarmup:
		return c.warmUp(ctx, s, frame)
	case pipeline.VerdictDrop:
		s.Dropped++
		return TickResult{Verdict: pipeline.VerdictDrop}, nil
	}

	ts := c.stamp(s)

	width := c.camera.FrameWidth()
	if width <= 0 {
		width = frame.Width()
	}

	if c.sink.Enabled() {
		if err := c.sink.SaveRawFrame(ts.UnixNano(), cloneRGBA(frame.Image)); err != nil {
			c.logger.Warn("Failed to save debug output: %s", err)
		}
	}

	annotated, err := c.annotateStage.Execute(ctx, pipeline.AnnotateInput{
		Frame:       frame,
		SourceWidth: width,
		Timestamp:   ts,
	})
	if err != nil {
		return TickResult{}, c.fail(err)
	}

	archived, err := c.archiveStage.Execute(ctx, pipeline.ArchiveInput{
		Frame:     annotated.Frame,
		Timestamp: ts,
		OutputDir: s.OutputDir,
	})
	if err != nil {
		return TickResult{}, c.fail(err)
	}

	s.Archived++
	s.Bytes += int64(archived.Bytes)
	s.LastNanos = ts.UnixNano()
	if s.FirstPath == "" {
		s.FirstPath = archived.Path
	}
	s.LastPath = archived.Path

	c.logger.Info("Saved %s", archived.Path)

	return TickResult{Verdict: pipeline.VerdictAccept, Path: archived.Path}, nil
}

func (c *Controller) warmUp(ctx context.Context, s *Session, frame ports.Frame) (TickResult, error) {
	s.WarmupDiscarded++

	if c.sink.Enabled() && frame.Image != nil {
		if err := c.sink.SaveWarmupFrame(frame.Image); err != nil {
			c.logger.Warn("Failed to save debug output: %s", err)
		}
	}

	if err := c.clock.Sleep(ctx, WarmupGrace); err != nil {
		return TickResult{}, err
	}
	s.WarmedUp = true
	c.logger.Info("Camera warmed up")

	return TickResult{Verdict: pipeline.VerdictWarmup}, nil
}

// stamp reads the clock for an accepted frame. The result is always later
// than the previous archived frame so file names stay unique and ordered.
func (c *Controller) stamp(s *Session) pipeline.Timestamp {
	now := c.clock.Now()
	if s.LastNanos != 0 && now.UnixNano() <= s.LastNanos {
		adjusted := time.Unix(0, s.LastNanos+1)
		c.logger.Warn("Clock went backwards, adjusted capture time by %s", adjusted.Sub(now))
		now = adjusted
	}
	return pipeline.NewTimestamp(now)
}

func (c *Controller) saveSession(s *Session) {
	if !c.sink.Enabled() {
		return
	}
	data, err := s.MarshalIndent()
	if err == nil {
		err = c.sink.SaveSessionJSON(data)
	}
	if err != nil {
		c.logger.Warn("Failed to save debug output: %s", err)
	}
}

// fail is the single exit for fatal errors.
func (c *Controller) fail(err error) error {
	switch {
	case errors.Is(err, pipeline.ErrDeviceUnavailable):
		c.logger.Error("Failed to open camera: %s", err)
	case errors.Is(err, pipeline.ErrRead):
		c.logger.Error("Failed to read frame: %s", err)
	case errors.Is(err, pipeline.ErrAnnotation):
		c.logger.Error("Failed to annotate frame: %s", err)
	case errors.Is(err, pipeline.ErrPersist):
		c.logger.Error("Failed to archive frame: %s", err)
	default:
		c.logger.Error("Capture stopped: %s", err)
	}
	return err
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	if src == nil {
		return nil
	}
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}
