// Package filesystem defines the filesystem boundary used by the ust
// operations. Paths are native operating system paths, absolute or
// relative; implementations must not reinterpret them.
package filesystem

import (
	"io"
	"io/fs"
	"time"
)

// ReadFS groups the read-side operations.
type ReadFS interface {
	Open(name string) (fs.File, error)
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}

// WriteFS groups the write-side operations.
//
// There is no RemoveAll: tree removal belongs to the caller, which
// decides the order entries are removed in and where to stop on failure.
type WriteFS interface {
	Create(name string, perm fs.FileMode) (io.WriteCloser, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	Rename(oldpath, newpath string) error
	Chmod(name string, mode fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error
}

// FileSystem combines read and write operations.
type FileSystem interface {
	ReadFS
	WriteFS
}
