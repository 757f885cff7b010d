package capture

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// WarmupGrace is how long the loop waits after discarding the first frame,
// on top of the regular interval.
const WarmupGrace = time.Second

// Config describes one capture run.
type Config struct {
	Device    int
	Interval  time.Duration
	OutputDir string
}

// Validate checks that the run can start.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return errors.New("interval must be positive")
	}
	if c.OutputDir == "" {
		return errors.New("output directory is required")
	}
	if c.Device < 0 {
		return errors.New("device index must not be negative")
	}
	return nil
}

// Session is the mutable state of a run. It is created once by
// Controller.NewSession and changed only by Controller.Tick.
type Session struct {
	ID        uuid.UUID     `json:"id"`
	Device    int           `json:"device"`
	Interval  time.Duration `json:"interval_ns"`
	OutputDir string        `json:"output_dir"`

	// WarmedUp flips to true once, after the first frame was discarded.
	WarmedUp bool `json:"warmed_up"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	Reads           int   `json:"reads"`
	WarmupDiscarded int   `json:"warmup_discarded"`
	Dropped         int   `json:"dropped"`
	Archived        int   `json:"archived"`
	Bytes           int64 `json:"bytes"`

	// LastNanos is the file stem of the most recent archived frame.
	LastNanos int64  `json:"last_nanos"`
	FirstPath string `json:"first_path,omitempty"`
	LastPath  string `json:"last_path,omitempty"`
}

// Duration returns how long the session ran. It is zero until the run ends.
func (s *Session) Duration() time.Duration {
	if s.EndedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// MarshalIndent returns the session as indented JSON.
func (s *Session) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
