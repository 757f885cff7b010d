package filesink

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/user/chronocam/pkg/mocks"
	"github.com/user/chronocam/pkg/ports"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func pngRenderer() *mocks.Renderer {
	return &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return []byte{0x89, 0x50, 0x4E, 0x47}, nil // PNG header
		},
	}
}

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.Renderer{})

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveWarmupFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.StrictDirs = true
	sink := New(testBaseDir, fs, pngRenderer())

	if err := sink.SaveWarmupFrame(image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("SaveWarmupFrame failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "warmup.png")
	if _, ok := fs.GetFile(expectedPath); !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
}

func TestSink_SaveWarmupFrameNil(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, pngRenderer())

	if err := sink.SaveWarmupFrame(nil); err != nil {
		t.Fatalf("SaveWarmupFrame failed: %v", err)
	}
	if len(fs.GetAllFiles()) != 0 {
		t.Error("expected nothing written for an empty warm-up frame")
	}
}

func TestSink_SaveRawFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.StrictDirs = true
	sink := New(testBaseDir, fs, pngRenderer())

	if err := sink.SaveRawFrame(1700000000000000001, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("SaveRawFrame failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "raw", "1700000000000000001.png")
	if _, ok := fs.GetFile(expectedPath); !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
}

func TestSink_SaveSessionJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.Renderer{})

	data := []byte(`{"archived": 3}`)
	if err := sink.SaveSessionJSON(data); err != nil {
		t.Fatalf("SaveSessionJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "session.json")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_MultipleRawFrames(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, pngRenderer())

	for i := int64(0); i < 10; i++ {
		if err := sink.SaveRawFrame(i, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
			t.Fatalf("SaveRawFrame %d failed: %v", i, err)
		}
	}

	if count := len(fs.GetAllFiles()); count != 10 {
		t.Errorf("expected 10 files, got %d", count)
	}
}
