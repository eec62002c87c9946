package core

import (
	"context"
	"errors"
	"io/fs"
	"testing"
)

func TestMockFileSystemReadWrite(t *testing.T) {
	ctx := context.Background()
	mfs := NewMockFileSystem()
	mfs.SetFile("/proj/pom.xml", []byte("<project/>"))

	data, err := mfs.ReadFile(ctx, "/proj/pom.xml")
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "<project/>" {
		t.Errorf("ReadFile() = %q, want %q", data, "<project/>")
	}

	if err := mfs.WriteFile(ctx, "/proj/pom_new.xml", []byte("<x/>"), PermFile); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, ok := mfs.GetFile("/proj/pom_new.xml"); !ok {
		t.Error("WriteFile() did not store the file")
	}
}

func TestMockFileSystemMissingFile(t *testing.T) {
	ctx := context.Background()
	mfs := NewMockFileSystem()

	if _, err := mfs.ReadFile(ctx, "/nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
	}
	if _, err := mfs.Stat(ctx, "/nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat() error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFileSystemStatImplicitDir(t *testing.T) {
	ctx := context.Background()
	mfs := NewMockFileSystem()
	mfs.SetFile("/proj/core/pom.xml", []byte("<project/>"))

	info, err := mfs.Stat(ctx, "/proj/core")
	if err != nil {
		t.Fatalf("Stat() failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat() on implicit directory reported a file")
	}
}

func TestMockFileSystemReadDir(t *testing.T) {
	ctx := context.Background()
	mfs := NewMockFileSystem()
	mfs.SetFile("/proj/pom.xml", []byte("x"))
	mfs.SetFile("/proj/core/pom.xml", []byte("x"))

	entries, err := mfs.ReadDir(ctx, "/proj")
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadDir() returned %d entries, want 2", len(entries))
	}
	// Sorted: core (dir) before pom.xml (file).
	if entries[0].Name() != "core" || !entries[0].IsDir() {
		t.Errorf("first entry = %q dir=%v, want core dir", entries[0].Name(), entries[0].IsDir())
	}
	if entries[1].Name() != "pom.xml" || entries[1].IsDir() {
		t.Errorf("second entry = %q dir=%v, want pom.xml file", entries[1].Name(), entries[1].IsDir())
	}
}

func TestMockFileSystemCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mfs := NewMockFileSystem()
	mfs.SetFile("/proj/pom.xml", []byte("x"))

	if _, err := mfs.ReadFile(ctx, "/proj/pom.xml"); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadFile() error = %v, want context.Canceled", err)
	}
}
