package v4l2camera

import (
	"context"
	"errors"
	"testing"
)

func TestDevicePath(t *testing.T) {
	if got := DevicePath(2); got != "/dev/video2" {
		t.Errorf("DevicePath(2) = %q", got)
	}
}

func TestCamera_ReadBeforeOpen(t *testing.T) {
	cam := New(nil)
	if _, err := cam.ReadFrame(context.Background()); !errors.Is(err, ErrNotOpen) {
		t.Errorf("expected ErrNotOpen, got %v", err)
	}
	if cam.FrameWidth() != 0 {
		t.Error("expected zero width before open")
	}
	if err := cam.Close(); err != nil {
		t.Errorf("Close on unopened camera: %v", err)
	}
}
