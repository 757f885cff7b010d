// Package patterncamera provides a synthetic camera that draws test frames.
// It lets the capture loop run on machines without a capture device.
package patterncamera

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/user/chronocam/pkg/ports"
)

// Default frame size.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// ErrNotOpen is returned when reading before Open.
var ErrNotOpen = errors.New("camera is not open")

// Camera implements ports.Camera by drawing a moving test pattern.
type Camera struct {
	renderer ports.Renderer
	width    int
	height   int

	mu     sync.Mutex
	opened bool
	frames int
}

// New creates a pattern camera. Non-positive sizes fall back to the defaults.
func New(renderer ports.Renderer, width, height int) *Camera {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Camera{renderer: renderer, width: width, height: height}
}

// Open accepts any device index.
func (c *Camera) Open(ctx context.Context, device int) error {
	if device < 0 {
		return fmt.Errorf("invalid device index %d", device)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opened = true
	return nil
}

// ReadFrame draws the next pattern frame.
func (c *Camera) ReadFrame(ctx context.Context) (ports.Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.opened {
		return ports.Frame{}, ErrNotOpen
	}
	if err := ctx.Err(); err != nil {
		return ports.Frame{}, err
	}

	n := c.frames
	c.frames++

	canvas := c.renderer.CreateCanvas(c.width, c.height, color.RGBA{R: 32, G: 48, B: 64, A: 255})

	// Eight vertical bars, shifted one bar per frame.
	bars := []color.RGBA{
		{255, 255, 255, 255}, {255, 255, 0, 255}, {0, 255, 255, 255}, {0, 255, 0, 255},
		{255, 0, 255, 255}, {255, 0, 0, 255}, {0, 0, 255, 255}, {0, 0, 0, 255},
	}
	barWidth := c.width / len(bars)
	if barWidth == 0 {
		barWidth = 1
	}
	for i := range bars {
		canvas.DrawRect(i*barWidth, 0, barWidth, c.height, bars[(i+n)%len(bars)])
	}

	// Sweep line so consecutive frames differ visibly.
	x := (n * 16) % c.width
	canvas.DrawLine(x, 0, x, c.height, color.RGBA{R: 255, A: 255}, 3)

	return ports.Frame{Image: canvas.ToImage()}, nil
}

// FrameWidth returns the configured width.
func (c *Camera) FrameWidth() int {
	return c.width
}

// Close marks the camera closed.
func (c *Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opened = false
	return nil
}

var _ ports.Camera = (*Camera)(nil)
