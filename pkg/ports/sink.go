package ports

import (
	"image"
)

// DebugSink abstracts diagnostic output for frames the archive never sees.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveWarmupFrame saves the frame discarded during warm-up.
	SaveWarmupFrame(img image.Image) error

	// SaveRawFrame saves an accepted frame before annotation, keyed by its capture nanos.
	SaveRawFrame(nanos int64, img image.Image) error

	// SaveSessionJSON saves the final session statistics.
	SaveSessionJSON(data []byte) error
}
