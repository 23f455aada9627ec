package ports

import "time"

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error

	// ListFiles returns the paths of all regular files under dir,
	// including files in subdirectories. No ordering is guaranteed.
	ListFiles(dir string) ([]string, error)

	// ModTime returns the last-modified timestamp of a file. Used as the
	// creation-time fallback when container metadata has none.
	ModTime(path string) (time.Time, error)
}
