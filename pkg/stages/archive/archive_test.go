package archive

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"testing"
	"time"

	"github.com/user/chronocam/pkg/adapters/logger"
	"github.com/user/chronocam/pkg/mocks"
	"github.com/user/chronocam/pkg/pipeline"
	"github.com/user/chronocam/pkg/ports"
)

var testOutputDir = filepath.Join("out")

func testFrame() ports.Frame {
	return ports.Frame{Image: image.NewRGBA(image.Rect(0, 0, 32, 24))}
}

func TestFileName(t *testing.T) {
	ts := pipeline.Timestamp{Time: time.Unix(1700000000, 42)}

	got := FileName(testOutputDir, ts)
	want := filepath.Join(testOutputDir, "1700000000000000042.jpg")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem()
	var gotFormat ports.ImageFormat = -1
	var gotQuality int
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			gotFormat = format
			gotQuality = quality
			return []byte{0xFF, 0xD8, 0xFF, 0xE0}, nil
		},
	}
	stage := NewStage(renderer, fs, logger.NewNoop())

	ts := pipeline.Timestamp{Time: time.Unix(1700000000, 5)}
	result, err := stage.Execute(context.Background(), pipeline.ArchiveInput{
		Frame:     testFrame(),
		Timestamp: ts,
		OutputDir: testOutputDir,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedPath := filepath.Join(testOutputDir, "1700000000000000005.jpg")
	if result.Path != expectedPath {
		t.Errorf("expected path %s, got %s", expectedPath, result.Path)
	}
	if result.Bytes != 4 {
		t.Errorf("expected 4 bytes, got %d", result.Bytes)
	}
	if _, ok := fs.GetFile(expectedPath); !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
	if gotFormat != ports.FormatJPEG {
		t.Errorf("expected JPEG encoding, got %d", gotFormat)
	}
	if gotQuality != DefaultJPEGQuality {
		t.Errorf("expected quality %d, got %d", DefaultJPEGQuality, gotQuality)
	}
}

func TestStage_Execute_MissingDirectory(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.StrictDirs = true
	stage := NewStage(&mocks.Renderer{}, fs, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ArchiveInput{
		Frame:     testFrame(),
		Timestamp: pipeline.Timestamp{Time: time.Unix(1, 0)},
		OutputDir: testOutputDir,
	})
	if !errors.Is(err, pipeline.ErrPersist) {
		t.Fatalf("expected ErrPersist, got %v", err)
	}
	if len(fs.GetAllFiles()) != 0 {
		t.Error("expected no files written")
	}
}

func TestStage_Execute_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, errors.New("encoder exploded")
		},
	}
	stage := NewStage(renderer, fs, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ArchiveInput{
		Frame:     testFrame(),
		Timestamp: pipeline.Timestamp{Time: time.Unix(1, 0)},
		OutputDir: testOutputDir,
	})
	if !errors.Is(err, pipeline.ErrPersist) {
		t.Errorf("expected ErrPersist, got %v", err)
	}
}

func TestStage_Execute_WriteError(t *testing.T) {
	diskFull := errors.New("no space left on device")
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error {
		return diskFull
	}
	stage := NewStage(&mocks.Renderer{}, fs, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ArchiveInput{
		Frame:     testFrame(),
		Timestamp: pipeline.Timestamp{Time: time.Unix(1, 0)},
		OutputDir: testOutputDir,
	})
	if !errors.Is(err, pipeline.ErrPersist) {
		t.Errorf("expected ErrPersist, got %v", err)
	}
	if !errors.Is(err, diskFull) {
		t.Errorf("expected underlying cause to be preserved, got %v", err)
	}
}
