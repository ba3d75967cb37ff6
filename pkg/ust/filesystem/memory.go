package filesystem

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"syscall"
	"testing/fstest"
	"time"
)

// MemFileSystem is an in-memory FileSystem backed by fstest.MapFile
// entries. It accepts native paths, absolute or relative, and maps both
// forms onto the same tree, which keeps tests independent of the host.
//
// Like the real filesystem it refuses to write into directories that do
// not exist and to remove directories that are not empty.
type MemFileSystem struct {
	files map[string]*fstest.MapFile
}

// NewMem creates an empty in-memory filesystem.
func NewMem() *MemFileSystem {
	return &MemFileSystem{files: make(map[string]*fstest.MapFile)}
}

// NewMemFromMap creates an in-memory filesystem from existing entries.
// Keys are normalized the same way operation paths are.
func NewMemFromMap(files map[string]*fstest.MapFile) *MemFileSystem {
	m := NewMem()
	for name, file := range files {
		m.files[memKey(name)] = file
	}
	return m
}

// memKey normalizes a native path to the internal map key. Absolute and
// relative spellings of the same path share one key.
func memKey(name string) string {
	key := path.Clean(filepath.ToSlash(name))
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		key = "."
	}
	return key
}

func (m *MemFileSystem) mapFS() fstest.MapFS {
	return fstest.MapFS(m.files)
}

// hasChildren reports whether any entry lives below key.
func (m *MemFileSystem) hasChildren(key string) bool {
	if key == "." {
		return len(m.files) > 0
	}
	prefix := key + "/"
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// isDir reports whether key names a directory, explicit or implied by
// entries below it.
func (m *MemFileSystem) isDir(key string) bool {
	if key == "." {
		return true
	}
	if file, ok := m.files[key]; ok {
		return file.Mode.IsDir()
	}
	return m.hasChildren(key)
}

func (m *MemFileSystem) exists(key string) bool {
	if key == "." {
		return true
	}
	if _, ok := m.files[key]; ok {
		return true
	}
	return m.hasChildren(key)
}

// checkParent verifies that the parent of key exists and is a directory.
func (m *MemFileSystem) checkParent(op, name, key string) error {
	parent := path.Dir(key)
	if parent == "." {
		return nil
	}
	if !m.exists(parent) {
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	if !m.isDir(parent) {
		return &fs.PathError{Op: op, Path: name, Err: syscall.ENOTDIR}
	}
	return nil
}

// Open implements ReadFS.
func (m *MemFileSystem) Open(name string) (fs.File, error) {
	return m.mapFS().Open(memKey(name))
}

// Stat implements ReadFS.
func (m *MemFileSystem) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(m.mapFS(), memKey(name))
}

// Lstat implements ReadFS. The in-memory tree has no symlinks, so this
// is identical to Stat.
func (m *MemFileSystem) Lstat(name string) (fs.FileInfo, error) {
	return m.Stat(name)
}

// ReadDir implements ReadFS.
func (m *MemFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(m.mapFS(), memKey(name))
}

// WriteFile implements WriteFS.
func (m *MemFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	key := memKey(name)
	if err := m.checkParent("write", name, key); err != nil {
		return err
	}
	if m.isDir(key) {
		return &fs.PathError{Op: "write", Path: name, Err: syscall.EISDIR}
	}
	m.files[key] = &fstest.MapFile{
		Data:    append([]byte(nil), data...),
		Mode:    perm &^ fs.ModeDir,
		ModTime: time.Now(),
	}
	return nil
}

// Create implements WriteFS. The entry is committed when the writer is
// closed.
func (m *MemFileSystem) Create(name string, perm fs.FileMode) (io.WriteCloser, error) {
	key := memKey(name)
	if err := m.checkParent("create", name, key); err != nil {
		return nil, err
	}
	if m.isDir(key) {
		return nil, &fs.PathError{Op: "create", Path: name, Err: syscall.EISDIR}
	}
	return &memWriter{fs: m, key: key, perm: perm}, nil
}

// MkdirAll implements WriteFS.
func (m *MemFileSystem) MkdirAll(dir string, perm fs.FileMode) error {
	key := memKey(dir)
	if key == "." {
		return nil
	}
	parts := strings.Split(key, "/")
	built := ""
	for _, part := range parts {
		if built == "" {
			built = part
		} else {
			built = built + "/" + part
		}
		if file, ok := m.files[built]; ok {
			if !file.Mode.IsDir() {
				return &fs.PathError{Op: "mkdir", Path: dir, Err: syscall.ENOTDIR}
			}
			continue
		}
		m.files[built] = &fstest.MapFile{
			Mode:    fs.ModeDir | perm,
			ModTime: time.Now(),
		}
	}
	return nil
}

// Remove implements WriteFS. Directories must be empty.
func (m *MemFileSystem) Remove(name string) error {
	key := memKey(name)
	if key == "." {
		return &fs.PathError{Op: "remove", Path: name, Err: syscall.EBUSY}
	}
	if m.hasChildren(key) {
		return &fs.PathError{Op: "remove", Path: name, Err: syscall.ENOTEMPTY}
	}
	if _, ok := m.files[key]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, key)
	return nil
}

// Rename implements WriteFS with POSIX replace semantics: an existing
// destination file is replaced, an existing destination directory must be
// empty.
func (m *MemFileSystem) Rename(oldpath, newpath string) error {
	oldKey, newKey := memKey(oldpath), memKey(newpath)
	if !m.exists(oldKey) {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if oldKey == newKey {
		return nil
	}
	if strings.HasPrefix(newKey, oldKey+"/") {
		return &fs.PathError{Op: "rename", Path: newpath, Err: syscall.EINVAL}
	}
	if m.exists(newKey) {
		switch {
		case m.isDir(newKey) && !m.isDir(oldKey):
			return &fs.PathError{Op: "rename", Path: newpath, Err: syscall.EISDIR}
		case !m.isDir(newKey) && m.isDir(oldKey):
			return &fs.PathError{Op: "rename", Path: newpath, Err: syscall.ENOTDIR}
		case m.isDir(newKey):
			if m.hasChildren(newKey) {
				return &fs.PathError{Op: "rename", Path: newpath, Err: syscall.ENOTEMPTY}
			}
			delete(m.files, newKey)
		default:
			delete(m.files, newKey)
		}
	} else if err := m.checkParent("rename", newpath, newKey); err != nil {
		return err
	}
	if file, ok := m.files[oldKey]; ok {
		m.files[newKey] = file
		delete(m.files, oldKey)
	}
	prefix := oldKey + "/"
	for name, file := range m.files {
		if strings.HasPrefix(name, prefix) {
			m.files[newKey+"/"+name[len(prefix):]] = file
			delete(m.files, name)
		}
	}
	return nil
}

// Chmod implements WriteFS.
func (m *MemFileSystem) Chmod(name string, mode fs.FileMode) error {
	key := memKey(name)
	file, ok := m.files[key]
	if !ok {
		if !m.exists(key) {
			return &fs.PathError{Op: "chmod", Path: name, Err: fs.ErrNotExist}
		}
		file = m.materializeDir(key)
	}
	file.Mode = (file.Mode & fs.ModeType) | (mode & fs.ModePerm)
	return nil
}

// Chtimes implements WriteFS. The in-memory tree records modification
// time only.
func (m *MemFileSystem) Chtimes(name string, atime, mtime time.Time) error {
	key := memKey(name)
	file, ok := m.files[key]
	if !ok {
		if !m.exists(key) {
			return &fs.PathError{Op: "chtimes", Path: name, Err: fs.ErrNotExist}
		}
		file = m.materializeDir(key)
	}
	file.ModTime = mtime
	return nil
}

// materializeDir turns an implied directory into an explicit entry so it
// can carry metadata.
func (m *MemFileSystem) materializeDir(key string) *fstest.MapFile {
	file := &fstest.MapFile{Mode: fs.ModeDir | 0o755, ModTime: time.Now()}
	m.files[key] = file
	return file
}

// memWriter buffers writes and commits the entry on Close.
type memWriter struct {
	fs     *MemFileSystem
	key    string
	perm   fs.FileMode
	buf    bytes.Buffer
	closed bool
}

func (w *memWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fs.ErrClosed
	}
	return w.buf.Write(p)
}

func (w *memWriter) Close() error {
	if w.closed {
		return fs.ErrClosed
	}
	w.closed = true
	w.fs.files[w.key] = &fstest.MapFile{
		Data:    append([]byte(nil), w.buf.Bytes()...),
		Mode:    w.perm &^ fs.ModeDir,
		ModTime: time.Now(),
	}
	return nil
}
