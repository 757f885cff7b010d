package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/user/chronocam/pkg/ports"
)

// Clock is a manual clock: Sleep advances Now instead of blocking.
type Clock struct {
	mu      sync.Mutex
	current time.Time

	// Step is added to the current time after every Now call, emulating
	// time spent reading and processing.
	Step time.Duration

	// SleepFunc, when set, runs before the clock is advanced. Returning an
	// error aborts the sleep without advancing.
	SleepFunc func(ctx context.Context, d time.Duration) error

	Sleeps []time.Duration
}

// NewClock creates a Clock starting at start.
func NewClock(start time.Time) *Clock {
	return &Clock{current: start}
}

func (m *Clock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.current
	m.current = m.current.Add(m.Step)
	return now
}

func (m *Clock) Sleep(ctx context.Context, d time.Duration) error {
	if m.SleepFunc != nil {
		if err := m.SleepFunc(ctx, d); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sleeps = append(m.Sleeps, d)
	m.current = m.current.Add(d)
	return nil
}

// Set moves the clock to t, which may be earlier than the current time.
func (m *Clock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// GetSleeps returns a copy of the recorded sleep durations.
func (m *Clock) GetSleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.Sleeps...)
}

var _ ports.Clock = (*Clock)(nil)
