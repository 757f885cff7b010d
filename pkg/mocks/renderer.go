package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/chronocam/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	CanvasForFunc    func(img *image.RGBA) (ports.Canvas, error)
	DecodeImageFunc  func(data []byte, format ports.ImageFormat) (*image.RGBA, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)

	// LastCanvas is the canvas returned by the most recent CanvasFor call.
	LastCanvas *Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (m *Renderer) CanvasFor(img *image.RGBA) (ports.Canvas, error) {
	if m.CanvasForFunc != nil {
		return m.CanvasForFunc(img)
	}
	c := &Canvas{img: img}
	m.LastCanvas = c
	return c, nil
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (*image.RGBA, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{0xFF, 0xD8, 0xFF}, nil
}

var _ ports.Renderer = (*Renderer)(nil)

// RectCall records a DrawRect invocation.
type RectCall struct {
	X, Y, W, H int
	Color      color.Color
}

// TextCall records a DrawText invocation.
type TextCall struct {
	Text  string
	X, Y  int
	Style ports.TextStyle
}

// Canvas is a mock implementation of ports.Canvas that records draw calls.
type Canvas struct {
	mu  sync.Mutex
	img *image.RGBA

	DrawTextFunc func(text string, x, y int, style ports.TextStyle) error

	Rects []RectCall
	Texts []TextCall
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rects = append(m.Rects, RectCall{X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Canvas) DrawLine(x1, y1, x2, y2 int, c color.Color, width float64) {}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) error {
	m.mu.Lock()
	m.Texts = append(m.Texts, TextCall{Text: text, X: x, Y: y, Style: style})
	m.mu.Unlock()
	if m.DrawTextFunc != nil {
		return m.DrawTextFunc(text, x, y, style)
	}
	return nil
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64, error) {
	return float64(len(text)) * style.FontSize / 2, style.FontSize, nil
}

func (m *Canvas) ToImage() *image.RGBA {
	return m.img
}

var _ ports.Canvas = (*Canvas)(nil)
