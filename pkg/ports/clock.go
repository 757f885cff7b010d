package ports

import (
	"context"
	"time"
)

// Clock abstracts wall-clock reads and sleeps so the capture loop
// can be driven deterministically in tests.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time

	// Sleep blocks for d, or until ctx is done in which case ctx.Err() is returned.
	Sleep(ctx context.Context, d time.Duration) error
}
