package ust

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/igzzr/unix-sytle-utils/pkg/ust/filesystem"
)

// newMemOps returns operations over a fresh in-memory filesystem.
func newMemOps() (*Ops, *filesystem.MemFileSystem) {
	fsys := filesystem.NewMem()
	return NewOps(fsys), fsys
}

// seedFile writes a file, creating parents, and fails the test on error.
func seedFile(t *testing.T, fsys filesystem.FileSystem, path, content string) {
	t.Helper()
	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("MkdirAll %s failed: %v", dir, err)
		}
	}
	if err := fsys.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile %s failed: %v", path, err)
	}
}

// seedFileAt is seedFile with an explicit modification time.
func seedFileAt(t *testing.T, fsys filesystem.FileSystem, path, content string, mtime time.Time) {
	t.Helper()
	seedFile(t, fsys, path, content)
	if err := fsys.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Chtimes %s failed: %v", path, err)
	}
}

// seedDir creates a directory chain and fails the test on error.
func seedDir(t *testing.T, fsys filesystem.FileSystem, path string) {
	t.Helper()
	if err := fsys.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("MkdirAll %s failed: %v", path, err)
	}
}

// readFile returns a file's content and fails the test on error.
func readFile(t *testing.T, fsys filesystem.FileSystem, path string) string {
	t.Helper()
	f, err := fsys.Open(path)
	if err != nil {
		t.Fatalf("Open %s failed: %v", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll %s failed: %v", path, err)
	}
	return string(data)
}

// exists reports whether path exists on fsys.
func exists(fsys filesystem.FileSystem, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
