package mocks

import (
	"image"
	"sync"

	"github.com/user/chronocam/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	WarmupFrame image.Image
	RawFrames   map[int64]image.Image
	SessionJSON []byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:   enabled,
		RawFrames: make(map[int64]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveWarmupFrame(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WarmupFrame = img
	return nil
}

func (m *DebugSink) SaveRawFrame(nanos int64, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RawFrames[nanos] = img
	return nil
}

func (m *DebugSink) SaveSessionJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionJSON = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
