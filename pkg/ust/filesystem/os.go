package filesystem

import (
	"io"
	"io/fs"
	"os"
	"time"
)

// OSFileSystem implements FileSystem directly on top of the os package.
type OSFileSystem struct{}

// NewOS returns the operating system filesystem.
func NewOS() *OSFileSystem {
	return &OSFileSystem{}
}

// Open implements ReadFS.
func (*OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// Stat implements ReadFS.
func (*OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Lstat implements ReadFS.
func (*OSFileSystem) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

// ReadDir implements ReadFS.
func (*OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Create implements WriteFS. The file is truncated if it already exists.
func (*OSFileSystem) Create(name string, perm fs.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
}

// WriteFile implements WriteFS.
func (*OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// MkdirAll implements WriteFS.
func (*OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Remove implements WriteFS.
func (*OSFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// Rename implements WriteFS.
func (*OSFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Chmod implements WriteFS.
func (*OSFileSystem) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(name, mode)
}

// Chtimes implements WriteFS.
func (*OSFileSystem) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}
