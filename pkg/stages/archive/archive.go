// Package archive implements the stage that persists annotated frames.
package archive

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/chronocam/pkg/pipeline"
	"github.com/user/chronocam/pkg/ports"
)

// DefaultJPEGQuality is the encoder quality used for every archived frame.
const DefaultJPEGQuality = 95

// FileExt is the extension of archived frames.
const FileExt = ".jpg"

// Stage encodes frames as JPEG and writes them under the output directory.
type Stage struct {
	renderer ports.Renderer
	fs       ports.FileSystem
	logger   ports.Logger
}

// NewStage creates a new archive stage.
func NewStage(renderer ports.Renderer, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		fs:       fs,
		logger:   logger.WithComponent("archive"),
	}
}

// FileName returns the archive path for a frame captured at ts.
func FileName(outputDir string, ts pipeline.Timestamp) string {
	return filepath.Join(outputDir, ts.FileStem()+FileExt)
}

// Execute writes the frame to <OutputDir>/<nanos>.jpg.
// The directory is expected to exist already.
func (s *Stage) Execute(ctx context.Context, input pipeline.ArchiveInput) (pipeline.ArchiveResult, error) {
	path := FileName(input.OutputDir, input.Timestamp)

	data, err := s.renderer.EncodeImage(input.Frame.Image, ports.FormatJPEG, DefaultJPEGQuality)
	if err != nil {
		return pipeline.ArchiveResult{}, fmt.Errorf("%w: encode %s: %w", pipeline.ErrPersist, path, err)
	}

	if err := s.fs.WriteFile(path, data); err != nil {
		return pipeline.ArchiveResult{}, fmt.Errorf("%w: write %s: %w", pipeline.ErrPersist, path, err)
	}

	s.logger.Debug("Wrote %d bytes to %s", len(data), path)

	return pipeline.ArchiveResult{Path: path, Bytes: len(data)}, nil
}
