// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"errors"
	"image"
	"sync"

	"github.com/user/chronocam/pkg/ports"
)

// ErrScriptExhausted is returned by a scripted Camera once all frames were read.
var ErrScriptExhausted = errors.New("camera script exhausted")

// Camera is a mock implementation of ports.Camera.
type Camera struct {
	mu sync.Mutex

	OpenFunc       func(ctx context.Context, device int) error
	ReadFrameFunc  func(ctx context.Context) (ports.Frame, error)
	FrameWidthFunc func() int
	CloseFunc      func() error

	// Script is served in order when ReadFrameFunc is nil.
	Script []ports.Frame

	OpenedDevice int
	Opened       bool
	Closed       bool
	Reads        int
}

// NewScriptedCamera returns a Camera that serves frames of the given widths
// (all 48 pixels tall) and then fails with ErrScriptExhausted.
func NewScriptedCamera(widths ...int) *Camera {
	script := make([]ports.Frame, len(widths))
	for i, w := range widths {
		script[i] = ports.Frame{Image: image.NewRGBA(image.Rect(0, 0, w, 48))}
	}
	return &Camera{Script: script}
}

func (m *Camera) Open(ctx context.Context, device int) error {
	m.mu.Lock()
	m.OpenedDevice = device
	m.Opened = true
	m.mu.Unlock()
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, device)
	}
	return nil
}

func (m *Camera) ReadFrame(ctx context.Context) (ports.Frame, error) {
	m.mu.Lock()
	index := m.Reads
	m.Reads++
	m.mu.Unlock()

	if m.ReadFrameFunc != nil {
		return m.ReadFrameFunc(ctx)
	}
	if index >= len(m.Script) {
		return ports.Frame{}, ErrScriptExhausted
	}
	return m.Script[index], nil
}

func (m *Camera) FrameWidth() int {
	if m.FrameWidthFunc != nil {
		return m.FrameWidthFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.Script {
		if w := f.Width(); w > 0 {
			return w
		}
	}
	return 0
}

func (m *Camera) Close() error {
	m.mu.Lock()
	m.Closed = true
	m.mu.Unlock()
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

var _ ports.Camera = (*Camera)(nil)
