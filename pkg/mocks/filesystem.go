package mocks

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/user/chronocam/pkg/ports"
)

// FileSystem is an in-memory implementation of ports.FileSystem.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool

	// StrictDirs makes WriteFile fail when the parent directory was never
	// created through MkdirAll, like a real filesystem.
	StrictDirs bool

	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	MkdirAllFunc  func(path string) error
	ExistsFunc    func(path string) (bool, error)
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[path]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("file not found: %s", path)
}

func (m *FileSystem) WriteFile(path string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StrictDirs && !m.dirs[filepath.Dir(path)] {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	m.files[path] = data
	return nil
}

func (m *FileSystem) MkdirAll(path string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		m.dirs[p] = true
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}
	return nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.files[path]; ok {
		return true, nil
	}
	if _, ok := m.dirs[path]; ok {
		return true, nil
	}
	return false, nil
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	return data, ok
}

// GetAllFiles returns all files (for test verification).
func (m *FileSystem) GetAllFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string][]byte)
	for k, v := range m.files {
		result[k] = v
	}
	return result
}

// SortedPaths returns the written file paths in lexicographic order.
func (m *FileSystem) SortedPaths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for k := range m.files {
		paths = append(paths, k)
	}
	sort.Strings(paths)
	return paths
}

var _ ports.FileSystem = (*FileSystem)(nil)

// DiskProbe is a mock implementation of ports.DiskProbe.
type DiskProbe struct {
	UsageFunc func(path string) (ports.DiskUsage, error)
}

func (m *DiskProbe) Usage(path string) (ports.DiskUsage, error) {
	if m.UsageFunc != nil {
		return m.UsageFunc(path)
	}
	return ports.DiskUsage{Path: path, Total: 1 << 40, Free: 1 << 39}, nil
}

var _ ports.DiskProbe = (*DiskProbe)(nil)
