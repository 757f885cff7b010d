package ports

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating or truncating it.
	// The parent directory must already exist.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)
}

// DiskUsage describes the volume holding a path.
type DiskUsage struct {
	Path  string
	Total uint64
	Free  uint64
}

// DiskProbe reports free space for the volume holding a path.
type DiskProbe interface {
	Usage(path string) (DiskUsage, error)
}
