package envfile

import (
	"io"
	"os"
)

// FileSystem abstracts file operations for testing.
type FileSystem interface {
	Create(name string) (io.WriteCloser, error)
	ReadFile(name string) ([]byte, error)
}

// RealFileSystem implements FileSystem using the real file system.
type RealFileSystem struct{}

// Create opens name for writing, truncating it if it exists and creating it otherwise.
func (r *RealFileSystem) Create(name string) (io.WriteCloser, error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // intentional: destination from user args
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ReadFile reads the entire file contents.
func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // intentional: destination from user args
}
