package osfilesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "test.jpg")
	testData := []byte{0xFF, 0xD8, 0xFF}

	if err := fs.WriteFile(testPath, testData); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(testPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != string(testData) {
		t.Errorf("expected %q, got %q", testData, data)
	}
}

func TestFileSystem_WriteFileRequiresParentDir(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "missing", "frame.jpg")
	err := fs.WriteFile(testPath, []byte("x"))
	if err == nil {
		t.Fatal("expected error when parent directory is missing")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	exists, _ := fs.Exists(filepath.Join(tmpDir, "missing"))
	if exists {
		t.Error("expected WriteFile not to create directories")
	}
}

func TestFileSystem_MkdirAll(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "a", "b", "chronocam-output")
	if err := fs.MkdirAll(testPath); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected directory to exist")
	}

	// Idempotent on an existing directory.
	if err := fs.MkdirAll(testPath); err != nil {
		t.Errorf("second MkdirAll failed: %v", err)
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(testPath, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}

	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}

	exists, err = fs.Exists(filepath.Join(tmpDir, "nonexistent.txt"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected file to not exist")
	}
}

func TestFileSystem_Usage(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	usage, err := fs.Usage(tmpDir)
	if err != nil {
		t.Fatalf("Usage failed: %v", err)
	}
	if usage.Path != tmpDir {
		t.Errorf("expected path %s, got %s", tmpDir, usage.Path)
	}
	if usage.Total == 0 {
		t.Error("expected non-zero total size")
	}
	if usage.Free > usage.Total {
		t.Errorf("free %d exceeds total %d", usage.Free, usage.Total)
	}
}
