// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/chronocam/pkg/ports"
)

// Sink saves debug output to files under baseDir.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveWarmupFrame saves the discarded warm-up frame as warmup.png.
func (s *Sink) SaveWarmupFrame(img image.Image) error {
	if img == nil {
		return nil
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode warm-up frame: %w", err)
	}
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return err
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, "warmup.png"), data)
}

// SaveRawFrame saves an accepted frame before annotation as raw/<nanos>.png.
func (s *Sink) SaveRawFrame(nanos int64, img image.Image) error {
	dir := filepath.Join(s.baseDir, "raw")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode raw frame: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%d.png", nanos))
	return s.fs.WriteFile(path, data)
}

// SaveSessionJSON saves the session statistics as session.json.
func (s *Sink) SaveSessionJSON(data []byte) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return err
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, "session.json"), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
