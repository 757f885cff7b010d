// Package osfilesystem provides a filesystem implementation using the os package.
package osfilesystem

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/user/chronocam/pkg/ports"
)

// FileSystem implements ports.FileSystem and ports.DiskProbe on the local disk.
type FileSystem struct{}

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// ReadFile reads the entire contents of a file.
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file. A missing parent directory is an error.
func (fs *FileSystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// MkdirAll creates a directory and all parent directories.
func (fs *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

// Exists checks if a file or directory exists.
func (fs *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Usage reports total and free bytes of the volume holding path.
func (fs *FileSystem) Usage(path string) (ports.DiskUsage, error) {
	stat, err := disk.Usage(path)
	if err != nil {
		return ports.DiskUsage{}, fmt.Errorf("disk usage %s: %w", path, err)
	}
	return ports.DiskUsage{
		Path:  path,
		Total: stat.Total,
		Free:  stat.Free,
	}, nil
}

// Ensure FileSystem implements the ports
var (
	_ ports.FileSystem = (*FileSystem)(nil)
	_ ports.DiskProbe  = (*FileSystem)(nil)
)
