package core

import (
	"context"
	"io/fs"
	"os"
)

// File permission constants used across the codebase.
const (
	// PermOwnerRW is for files that only the owner should read or write.
	PermOwnerRW fs.FileMode = 0o600

	// PermFile is for regular output files readable by everyone.
	PermFile fs.FileMode = 0o644
)

// FileSystem abstracts filesystem operations for testability.
// All methods honor context cancellation before touching the disk.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) error
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
	ReadDir(ctx context.Context, dir string) ([]fs.DirEntry, error)
}

// OSFileSystem implements FileSystem using the real filesystem.
type OSFileSystem struct{}

// NewOSFileSystem creates a FileSystem backed by the OS.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the named file from disk.
func (o *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// WriteFile writes data to the named file, creating it if necessary.
func (o *OSFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

// Stat returns file info for the named file.
func (o *OSFileSystem) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(path)
}

// ReadDir reads the named directory and returns its entries.
func (o *OSFileSystem) ReadDir(ctx context.Context, dir string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadDir(dir)
}
