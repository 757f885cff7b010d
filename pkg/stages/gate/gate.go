// Package gate implements the Frame Gate stage.
package gate

import (
	"context"

	"github.com/user/chronocam/pkg/pipeline"
	"github.com/user/chronocam/pkg/ports"
)

// Stage decides whether a freshly read frame may be archived.
// It is stateless; the warm-up flag lives in the capture session.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new gate stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("gate"),
	}
}

// Execute returns VerdictWarmup for any frame read before warm-up completes,
// VerdictDrop for a frame without width and VerdictAccept otherwise.
func (s *Stage) Execute(ctx context.Context, input pipeline.GateInput) (pipeline.GateResult, error) {
	if !input.WarmedUp {
		s.logger.Debug("Discarding warm-up frame (%dx%d)", input.Frame.Width(), input.Frame.Height())
		return pipeline.GateResult{Verdict: pipeline.VerdictWarmup}, nil
	}

	if input.Frame.Width() <= 0 {
		s.logger.Debug("Dropping empty frame")
		return pipeline.GateResult{Verdict: pipeline.VerdictDrop}, nil
	}

	return pipeline.GateResult{Verdict: pipeline.VerdictAccept}, nil
}
