package gate

import (
	"context"
	"image"
	"testing"

	"github.com/user/chronocam/pkg/adapters/logger"
	"github.com/user/chronocam/pkg/pipeline"
	"github.com/user/chronocam/pkg/ports"
)

func frameOf(w, h int) ports.Frame {
	return ports.Frame{Image: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func TestStage_Execute(t *testing.T) {
	tests := []struct {
		name     string
		frame    ports.Frame
		warmedUp bool
		want     pipeline.Verdict
	}{
		{"first valid frame is warm-up", frameOf(640, 480), false, pipeline.VerdictWarmup},
		{"first empty frame is warm-up", frameOf(0, 0), false, pipeline.VerdictWarmup},
		{"nil first frame is warm-up", ports.Frame{}, false, pipeline.VerdictWarmup},
		{"valid frame accepted", frameOf(640, 480), true, pipeline.VerdictAccept},
		{"one pixel wide accepted", frameOf(1, 1), true, pipeline.VerdictAccept},
		{"zero width dropped", frameOf(0, 480), true, pipeline.VerdictDrop},
		{"nil image dropped", ports.Frame{}, true, pipeline.VerdictDrop},
	}

	stage := NewStage(logger.NewNoop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := stage.Execute(context.Background(), pipeline.GateInput{
				Frame:    tt.frame,
				WarmedUp: tt.warmedUp,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Verdict != tt.want {
				t.Errorf("expected %s, got %s", tt.want, result.Verdict)
			}
		})
	}
}

func TestStage_ZeroHeightIsNotDropped(t *testing.T) {
	// Only width decides validity.
	stage := NewStage(logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.GateInput{
		Frame:    frameOf(320, 0),
		WarmedUp: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Verdict != pipeline.VerdictAccept {
		t.Errorf("expected accept, got %s", result.Verdict)
	}
}
