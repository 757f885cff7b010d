//go:build linux

// Package v4l2camera reads MJPEG frames straight from a Video4Linux2 device.
package v4l2camera

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vladimirvivien/go4vl/device"
	"github.com/vladimirvivien/go4vl/v4l2"

	"github.com/user/chronocam/pkg/ports"
)

// ErrNotOpen is returned when reading before Open succeeded.
var ErrNotOpen = errors.New("camera is not open")

// Camera implements ports.Camera on top of go4vl.
type Camera struct {
	renderer ports.Renderer

	mu     sync.Mutex
	dev    *device.Device
	cancel context.CancelFunc
	width  int
}

// New creates an unopened camera. The renderer decodes the MJPEG payloads.
func New(renderer ports.Renderer) *Camera {
	return &Camera{renderer: renderer}
}

// DevicePath maps a device index to its node under /dev.
func DevicePath(device int) string {
	return fmt.Sprintf("/dev/video%d", device)
}

// Open opens /dev/videoN and starts streaming.
func (c *Camera) Open(ctx context.Context, index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dev != nil {
		return nil
	}

	dev, err := device.Open(
		DevicePath(index),
		device.WithBufferSize(1),
		device.WithPixFormat(v4l2.PixFormat{PixelFormat: v4l2.PixelFmtJPEG}),
	)
	if err != nil {
		return fmt.Errorf("open %s: %w", DevicePath(index), err)
	}

	streamCtx, cancel := context.WithCancel(context.Background())
	if err := dev.Start(streamCtx); err != nil {
		cancel()
		dev.Close()
		return fmt.Errorf("start %s: %w", DevicePath(index), err)
	}

	if pf, err := dev.GetPixFormat(); err == nil {
		c.width = int(pf.Width)
	}
	c.dev = dev
	c.cancel = cancel
	return nil
}

// ReadFrame waits for the next buffer. A zero-length buffer yields an empty Frame.
func (c *Camera) ReadFrame(ctx context.Context) (ports.Frame, error) {
	c.mu.Lock()
	dev := c.dev
	c.mu.Unlock()

	if dev == nil {
		return ports.Frame{}, ErrNotOpen
	}

	select {
	case <-ctx.Done():
		return ports.Frame{}, ctx.Err()
	case data, ok := <-dev.GetOutput():
		if !ok {
			return ports.Frame{}, errors.New("stream closed")
		}
		if len(data) == 0 {
			return ports.Frame{}, nil
		}
		img, err := c.renderer.DecodeImage(data, ports.FormatJPEG)
		if err != nil {
			return ports.Frame{}, fmt.Errorf("decode frame: %w", err)
		}
		return ports.Frame{Image: img}, nil
	}
}

// FrameWidth reports the width negotiated with the driver.
func (c *Camera) FrameWidth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

// Close stops streaming and releases the device.
func (c *Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dev == nil {
		return nil
	}
	c.cancel()
	err := c.dev.Close()
	c.dev = nil
	return err
}

var _ ports.Camera = (*Camera)(nil)
