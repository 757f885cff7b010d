// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
	"image"
)

// Frame is a single picture read from a camera.
// The pixel buffer is drawn on in place and is never shared between ticks.
type Frame struct {
	Image *image.RGBA
}

// Width returns the frame width in pixels, or 0 for an empty frame.
func (f Frame) Width() int {
	if f.Image == nil {
		return 0
	}
	return f.Image.Bounds().Dx()
}

// Height returns the frame height in pixels, or 0 for an empty frame.
func (f Frame) Height() int {
	if f.Image == nil {
		return 0
	}
	return f.Image.Bounds().Dy()
}

// Camera abstracts a live video source.
type Camera interface {
	// Open connects to the device with the given index.
	// It is called exactly once per run.
	Open(ctx context.Context, device int) error

	// ReadFrame blocks until the next frame is available.
	// A driver that delivers no data returns an empty Frame rather than an error;
	// errors are reserved for device failures.
	ReadFrame(ctx context.Context) (Frame, error)

	// FrameWidth reports the width the device is currently configured for.
	FrameWidth() int

	// Close releases the device.
	Close() error
}
