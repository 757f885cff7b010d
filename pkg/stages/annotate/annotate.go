// Package annotate implements the timestamp overlay stage.
package annotate

import (
	"context"
	"fmt"
	"image/color"

	"github.com/user/chronocam/pkg/pipeline"
	"github.com/user/chronocam/pkg/ports"
)

// Overlay geometry. The text origin is the left end of the baseline.
const (
	BannerHeight = 45
	TextX        = 10
	TextY        = 32
)

// Text appearance: plain sans-serif at twice the base size, two pixels thick.
const (
	TextScale     = 2.0
	TextThickness = 2

	// baseFontSize is the pixel em size that corresponds to scale 1.0.
	baseFontSize = 12.0
)

// Style describes how the overlay is painted.
type Style struct {
	BannerColor color.Color
	TextStyle   ports.TextStyle
}

// DefaultStyle returns the black banner with white timestamp text.
func DefaultStyle() Style {
	return Style{
		BannerColor: color.Black,
		TextStyle: ports.TextStyle{
			FontSize:  baseFontSize * TextScale,
			Color:     color.White,
			Thickness: TextThickness,
		},
	}
}

// Stage stamps the capture time onto a frame, drawing directly into its buffer.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
	style    Style
}

// NewStage creates a new annotate stage with the default style.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("annotate"),
		style:    DefaultStyle(),
	}
}

// Execute paints a BannerHeight-tall banner of the source width across the
// top edge and writes the display timestamp on it.
func (s *Stage) Execute(ctx context.Context, input pipeline.AnnotateInput) (pipeline.AnnotateResult, error) {
	canvas, err := s.renderer.CanvasFor(input.Frame.Image)
	if err != nil {
		return pipeline.AnnotateResult{}, fmt.Errorf("%w: %w", pipeline.ErrAnnotation, err)
	}

	canvas.DrawRect(0, 0, input.SourceWidth, BannerHeight, s.style.BannerColor)

	text := input.Timestamp.Display()
	if err := canvas.DrawText(text, TextX, TextY, s.style.TextStyle); err != nil {
		return pipeline.AnnotateResult{}, fmt.Errorf("%w: draw text: %w", pipeline.ErrAnnotation, err)
	}

	s.logger.Debug("Annotated %dx%d frame with %q", input.Frame.Width(), input.Frame.Height(), text)

	return pipeline.AnnotateResult{Frame: input.Frame}, nil
}
