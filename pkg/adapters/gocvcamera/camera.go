// Package gocvcamera reads frames from a capture device through OpenCV.
package gocvcamera

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gocv.io/x/gocv"

	"github.com/user/chronocam/pkg/adapters/ggrenderer"
	"github.com/user/chronocam/pkg/ports"
)

// ErrNotOpen is returned when reading before Open succeeded.
var ErrNotOpen = errors.New("camera is not open")

// Camera implements ports.Camera using gocv.VideoCapture.
type Camera struct {
	mu      sync.Mutex
	capture *gocv.VideoCapture
	mat     gocv.Mat
}

// New creates an unopened camera.
func New() *Camera {
	return &Camera{}
}

// Open opens the device with the given index.
func (c *Camera) Open(ctx context.Context, device int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capture != nil {
		return nil
	}

	capture, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return fmt.Errorf("open device %d: %w", device, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return fmt.Errorf("device %d did not open", device)
	}

	c.capture = capture
	c.mat = gocv.NewMat()
	return nil
}

// ReadFrame grabs the next frame. An empty mat yields an empty Frame.
func (c *Camera) ReadFrame(ctx context.Context) (ports.Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capture == nil {
		return ports.Frame{}, ErrNotOpen
	}
	if err := ctx.Err(); err != nil {
		return ports.Frame{}, err
	}

	if ok := c.capture.Read(&c.mat); !ok {
		return ports.Frame{}, errors.New("device read failed")
	}
	if c.mat.Empty() {
		return ports.Frame{}, nil
	}

	img, err := c.mat.ToImage()
	if err != nil {
		return ports.Frame{}, fmt.Errorf("convert mat: %w", err)
	}
	// ToImage allocates a fresh buffer, so the mat is safe to reuse.
	return ports.Frame{Image: ggrenderer.ToRGBA(img)}, nil
}

// FrameWidth reports the configured capture width.
func (c *Camera) FrameWidth() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capture == nil {
		return 0
	}
	return int(c.capture.Get(gocv.VideoCaptureFrameWidth))
}

// Close releases the device.
func (c *Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capture == nil {
		return nil
	}
	c.mat.Close()
	err := c.capture.Close()
	c.capture = nil
	return err
}

var _ ports.Camera = (*Camera)(nil)
