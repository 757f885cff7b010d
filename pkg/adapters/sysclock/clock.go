// Package sysclock provides the wall clock used outside tests.
package sysclock

import (
	"context"
	"time"

	"github.com/user/chronocam/pkg/ports"
)

// Clock implements ports.Clock with the time package.
type Clock struct{}

// New creates a new Clock.
func New() *Clock {
	return &Clock{}
}

// Now returns the current local time.
func (c *Clock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d or until ctx is done.
func (c *Clock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ ports.Clock = (*Clock)(nil)
