package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image drawing and codec operations.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas with the specified dimensions and background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// CanvasFor wraps an existing pixel buffer so drawing happens in place.
	// It fails when the buffer is nil or its Pix slice does not match its bounds.
	CanvasFor(img *image.RGBA) (Canvas, error)

	// DecodeImage decodes image data into an RGBA buffer.
	DecodeImage(data []byte, format ImageFormat) (*image.RGBA, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)
}

// Canvas provides drawing operations on a pixel buffer.
type Canvas interface {
	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// DrawLine draws a line between two points.
	DrawLine(x1, y1, x2, y2 int, c color.Color, width float64)

	// DrawText draws text with its baseline starting at (x, y).
	DrawText(text string, x, y int, style TextStyle) error

	// MeasureText returns the width and height of the text.
	MeasureText(text string, style TextStyle) (width, height float64, err error)

	// ToImage returns the underlying buffer.
	ToImage() *image.RGBA
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize  float64 // Em size in pixels
	FontPath  string  // TrueType file; empty selects the built-in sans-serif face
	Color     color.Color
	Thickness int // Stroke thickness in pixels (1 = regular)
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)
