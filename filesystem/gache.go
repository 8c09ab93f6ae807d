package filesystem

import (
	"context"
	"io"
	"os"
)

// GacheFs adapts the process-wide provider to the gache.FileSystem interface.
// This allows the gache library to use our swappable filesystem backend.
type GacheFs struct{}

// OpenFile opens a file using the current filesystem backend.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	fs, err := Current(context.Background())
	if err != nil {
		return nil, err
	}
	return fs.OpenFile(name, flag, perm)
}

// MkdirAll creates a directory using the current filesystem backend.
func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	fs, err := Current(context.Background())
	if err != nil {
		return err
	}
	return fs.MkdirAll(path, perm)
}
