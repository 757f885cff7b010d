// Package summarizer provides summary generation for capture sessions.
package summarizer

import (
	"time"

	"github.com/user/chronocam/pkg/capture"
)

// Summary contains all data collected during a capture session.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Session identity and timing
	Session SessionInfo

	// Capture settings
	Settings Settings

	// Frame counters
	Frames FrameInfo

	// Err is the message of the error that ended the run, if any.
	Err string
}

// SessionInfo identifies a session and its run time.
type SessionInfo struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the session ran.
func (s SessionInfo) Duration() time.Duration {
	if s.EndedAt.IsZero() || s.EndedAt.Before(s.StartedAt) {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Settings contains the capture configuration.
type Settings struct {
	Device    int
	Driver    string
	Interval  time.Duration
	OutputDir string
}

// FrameInfo contains what happened to the frames read.
type FrameInfo struct {
	Reads           int
	WarmupDiscarded int
	Dropped         int
	Archived        int
	Bytes           int64
	FirstFile       string
	LastFile        string
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSession copies identity, settings and counters from a finished session.
func (b *Builder) WithSession(s *capture.Session) *Builder {
	if s == nil {
		return b
	}
	b.summary.Session = SessionInfo{
		ID:        s.ID.String(),
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
	b.summary.Settings.Device = s.Device
	b.summary.Settings.Interval = s.Interval
	b.summary.Settings.OutputDir = s.OutputDir
	b.summary.Frames = FrameInfo{
		Reads:           s.Reads,
		WarmupDiscarded: s.WarmupDiscarded,
		Dropped:         s.Dropped,
		Archived:        s.Archived,
		Bytes:           s.Bytes,
		FirstFile:       s.FirstPath,
		LastFile:        s.LastPath,
	}
	return b
}

// WithDriver sets the camera driver name.
func (b *Builder) WithDriver(driver string) *Builder {
	b.summary.Settings.Driver = driver
	return b
}

// WithError records the error that ended the run. A nil error is ignored.
func (b *Builder) WithError(err error) *Builder {
	if err != nil {
		b.summary.Err = err.Error()
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
