//go:build !linux

// Package v4l2camera reads MJPEG frames straight from a Video4Linux2 device.
package v4l2camera

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/chronocam/pkg/ports"
)

// ErrUnsupported is returned on platforms without Video4Linux2.
var ErrUnsupported = errors.New("v4l2 is only available on linux")

// ErrNotOpen is returned when reading before Open succeeded.
var ErrNotOpen = errors.New("camera is not open")

// Camera is a stub that fails to open.
type Camera struct{}

// New creates a camera that cannot be opened on this platform.
func New(renderer ports.Renderer) *Camera {
	return &Camera{}
}

// DevicePath maps a device index to its node under /dev.
func DevicePath(device int) string {
	return fmt.Sprintf("/dev/video%d", device)
}

// Open always fails.
func (c *Camera) Open(ctx context.Context, index int) error {
	return ErrUnsupported
}

// ReadFrame always fails.
func (c *Camera) ReadFrame(ctx context.Context) (ports.Frame, error) {
	return ports.Frame{}, ErrNotOpen
}

// FrameWidth returns 0.
func (c *Camera) FrameWidth() int { return 0 }

// Close does nothing.
func (c *Camera) Close() error { return nil }

var _ ports.Camera = (*Camera)(nil)
