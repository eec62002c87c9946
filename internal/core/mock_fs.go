package core

import (
	"context"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// MockFileSystem is an in-memory FileSystem implementation for tests.
type MockFileSystem struct {
	files map[string][]byte

	// WriteErr, when set, is returned by WriteFile to simulate write failures.
	WriteErr error
}

// NewMockFileSystem creates an empty in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{files: make(map[string][]byte)}
}

// SetFile stores content for a path, overwriting any previous content.
func (m *MockFileSystem) SetFile(p string, data []byte) {
	m.files[path.Clean(p)] = data
}

// GetFile returns the stored content for a path.
func (m *MockFileSystem) GetFile(p string) ([]byte, bool) {
	data, ok := m.files[path.Clean(p)]
	return data, ok
}

// ReadFile returns the stored content for a path.
func (m *MockFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := m.files[path.Clean(p)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return data, nil
}

// WriteFile stores content for a path.
func (m *MockFileSystem) WriteFile(ctx context.Context, p string, data []byte, _ fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.files[path.Clean(p)] = data
	return nil
}

// Stat returns file info for a stored path. Directories exist implicitly
// when any stored file lives beneath them.
func (m *MockFileSystem) Stat(ctx context.Context, p string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean := path.Clean(p)
	if data, ok := m.files[clean]; ok {
		return mockFileInfo{name: path.Base(clean), size: int64(len(data))}, nil
	}
	prefix := clean + "/"
	for stored := range m.files {
		if strings.HasPrefix(stored, prefix) {
			return mockFileInfo{name: path.Base(clean), dir: true}, nil
		}
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

// ReadDir lists the immediate children of a stored directory.
func (m *MockFileSystem) ReadDir(ctx context.Context, dir string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix := path.Clean(dir) + "/"
	seen := make(map[string]bool)
	var entries []fs.DirEntry
	for stored := range m.files {
		if !strings.HasPrefix(stored, prefix) {
			continue
		}
		rest := strings.TrimPrefix(stored, prefix)
		name, isDir := rest, false
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			name, isDir = rest[:i], true
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		entries = append(entries, mockDirEntry{name: name, dir: isDir})
	}
	if len(entries) == 0 {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrNotExist}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i mockFileInfo) Name() string       { return i.name }
func (i mockFileInfo) Size() int64        { return i.size }
func (i mockFileInfo) Mode() fs.FileMode  { return PermOwnerRW }
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.dir }
func (i mockFileInfo) Sys() any           { return nil }

type mockDirEntry struct {
	name string
	dir  bool
}

func (e mockDirEntry) Name() string      { return e.name }
func (e mockDirEntry) IsDir() bool       { return e.dir }
func (e mockDirEntry) Type() fs.FileMode { return 0 }
func (e mockDirEntry) Info() (fs.FileInfo, error) {
	return mockFileInfo{name: e.name, dir: e.dir}, nil
}
