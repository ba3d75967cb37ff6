package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob expands pattern against fsys and returns the matching native paths
// in lexical order. A pattern whose fixed prefix names a missing directory
// matches nothing.
//
// When recursive is false, `**` degrades to `*` so the pattern cannot
// cross directory separators.
func Glob(fsys FileSystem, pattern string, recursive bool) ([]string, error) {
	if !recursive {
		pattern = strings.ReplaceAll(pattern, "**", "*")
	}
	base, pat := doublestar.SplitPattern(filepath.ToSlash(pattern))
	root := filepath.FromSlash(base)
	matches, err := doublestar.Glob(rootedFS{fsys: fsys, base: root}, pat)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(match)))
	}
	sort.Strings(paths)
	return paths, nil
}

// rootedFS adapts a FileSystem to io/fs rooted at base, which is what
// doublestar matches against.
type rootedFS struct {
	fsys FileSystem
	base string
}

func (r rootedFS) join(name string) string {
	if name == "." {
		return r.base
	}
	return filepath.Join(r.base, filepath.FromSlash(name))
}

func (r rootedFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return r.fsys.Open(r.join(name))
}

func (r rootedFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	return r.fsys.ReadDir(r.join(name))
}

func (r rootedFS) Stat(name string) (fs.FileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}
	return r.fsys.Stat(r.join(name))
}
