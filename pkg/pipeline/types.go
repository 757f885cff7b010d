package pipeline

import (
	"github.com/user/chronocam/pkg/ports"
)

// =============================================================================
// Gate Stage Types
// =============================================================================

// Verdict is the Frame Gate decision for one frame.
type Verdict int

const (
	// VerdictWarmup discards the first frame of a run.
	VerdictWarmup Verdict = iota
	// VerdictDrop discards a frame without pixels.
	VerdictDrop
	// VerdictAccept passes the frame on to annotation.
	VerdictAccept
)

// String returns the verdict name used in logs and summaries.
func (v Verdict) String() string {
	switch v {
	case VerdictWarmup:
		return "warmup"
	case VerdictDrop:
		return "drop"
	case VerdictAccept:
		return "accept"
	default:
		return "unknown"
	}
}

// GateInput contains the frame to judge and the session warm-up state.
type GateInput struct {
	Frame    ports.Frame
	WarmedUp bool
}

// GateResult contains the gate decision.
type GateResult struct {
	Verdict Verdict
}

// =============================================================================
// Annotate Stage Types
// =============================================================================

// AnnotateInput contains an accepted frame and what to stamp on it.
type AnnotateInput struct {
	Frame       ports.Frame
	SourceWidth int // Width reported by the camera; sizes the banner
	Timestamp   Timestamp
}

// AnnotateResult contains the annotated frame (same buffer as the input).
type AnnotateResult struct {
	Frame ports.Frame
}

// =============================================================================
// Archive Stage Types
// =============================================================================

// ArchiveInput contains an annotated frame and its destination.
type ArchiveInput struct {
	Frame     ports.Frame
	Timestamp Timestamp
	OutputDir string
}

// ArchiveResult describes the written file.
type ArchiveResult struct {
	Path  string
	Bytes int
}
