// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/chronocam/pkg/ports"
)

// ErrMalformedBuffer is returned by CanvasFor when the pixel buffer cannot be drawn on.
var ErrMalformedBuffer = errors.New("malformed pixel buffer")

type faceKey struct {
	path string
	size float64
}

// Renderer implements ports.Renderer using the gg library.
// Font faces are cached per path and size.
type Renderer struct {
	mu    sync.Mutex
	sans  *truetype.Font
	faces map[faceKey]font.Face
}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{
		faces: make(map[faceKey]font.Face),
	}
}

// CreateCanvas creates a new drawing canvas.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc, img: dc.Image().(*image.RGBA), r: r}
}

// CanvasFor wraps img so that every draw call modifies it directly.
func (r *Renderer) CanvasFor(img *image.RGBA) (ports.Canvas, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrMalformedBuffer)
	}
	b := img.Bounds()
	if b.Dx() > 0 && b.Dy() > 0 {
		need := img.PixOffset(b.Max.X-1, b.Max.Y-1) + 4
		if img.Stride < b.Dx()*4 || len(img.Pix) < need {
			return nil, fmt.Errorf("%w: %d bytes for %dx%d with stride %d",
				ErrMalformedBuffer, len(img.Pix), b.Dx(), b.Dy(), img.Stride)
		}
	}
	return &Canvas{dc: gg.NewContextForRGBA(img), img: img, r: r}, nil
}

// DecodeImage decodes image data into an RGBA buffer.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (*image.RGBA, error) {
	reader := bytes.NewReader(data)

	var img image.Image
	var err error
	switch format {
	case ports.FormatJPEG:
		img, err = jpeg.Decode(reader)
	case ports.FormatPNG:
		img, err = png.Decode(reader)
	default:
		// Try to auto-detect
		img, _, err = image.Decode(reader)
	}
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ToRGBA returns img as an *image.RGBA anchored at the origin, converting if needed.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// face returns a cached font face for style.
func (r *Renderer) face(style ports.TextStyle) (font.Face, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := faceKey{path: style.FontPath, size: style.FontSize}
	if f, ok := r.faces[key]; ok {
		return f, nil
	}

	var f font.Face
	if style.FontPath != "" {
		loaded, err := gg.LoadFontFace(style.FontPath, style.FontSize)
		if err != nil {
			return nil, fmt.Errorf("load font %s: %w", style.FontPath, err)
		}
		f = loaded
	} else {
		if r.sans == nil {
			parsed, err := truetype.Parse(goregular.TTF)
			if err != nil {
				return nil, fmt.Errorf("parse built-in font: %w", err)
			}
			r.sans = parsed
		}
		f = truetype.NewFace(r.sans, &truetype.Options{Size: style.FontSize, DPI: 72})
	}

	r.faces[key] = f
	return f, nil
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
// gg always anti-aliases, so text and shapes have smooth edges.
type Canvas struct {
	dc  *gg.Context
	img *image.RGBA
	r   *Renderer
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// DrawLine draws a line between two points.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
	c.dc.Stroke()
}

// DrawText draws text with its baseline starting at (x, y).
// Thickness above 1 is produced by overdrawing the glyphs at pixel offsets.
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) error {
	face, err := c.r.face(style)
	if err != nil {
		return err
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(style.Color)

	thickness := style.Thickness
	if thickness < 1 {
		thickness = 1
	}
	for dy := 0; dy < thickness; dy++ {
		for dx := 0; dx < thickness; dx++ {
			c.dc.DrawString(text, float64(x+dx), float64(y-dy))
		}
	}
	return nil
}

// MeasureText returns the width and height of the text.
func (c *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64, error) {
	face, err := c.r.face(style)
	if err != nil {
		return 0, 0, err
	}
	c.dc.SetFontFace(face)
	w, h := c.dc.MeasureString(text)
	return w, h, nil
}

// ToImage returns the canvas buffer.
func (c *Canvas) ToImage() *image.RGBA {
	return c.img
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
