package ust

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/gammazero/toposort"

	"github.com/igzzr/unix-sytle-utils/pkg/ust/filesystem"
)

// Remove removes src. A plain file needs no flags. Directories are
// refused with ErrIsADirectory unless a directory flag is set: FRMDir and
// FRMEmpty remove a directory that is empty and fail with
// ErrDirectoryNotEmpty otherwise; FRecursive removes the whole tree,
// children before parents. FRMFile restricts the operation to files and
// fails on directories with ErrWrongTargetKind, as do FRMDir and FRMEmpty
// on files.
//
// The first failing entry aborts the remaining ones; entries already
// removed stay removed and are tallied on the returned error. Filesystem
// roots are never removed.
func (o *Ops) Remove(src Source, mode Mode) error {
	stats := &Stats{}
	fail := func(path string, err error) error {
		return wrapOpError("remove", path, "", mode, *stats, err)
	}
	if err := mode.Validate(); err != nil {
		return fail(sourceLabel(src), err)
	}
	if bad := mode & transferOnlyFlags; bad != 0 {
		return fail(sourceLabel(src), fmt.Errorf("%w: %s", ErrUnsupportedFlag, bad))
	}
	paths, err := o.expandSource(src, mode)
	if err != nil {
		return fail(sourceLabel(src), err)
	}
	r := &remover{fsys: o.fsys, mode: mode, stats: stats}
	for _, path := range paths {
		if isFilesystemRoot(path) {
			return fail(path, fmt.Errorf("%w: '%s'", ErrRemoveRoot, path))
		}
		if err := r.removeTree(path); err != nil {
			return fail(path, err)
		}
	}
	return nil
}

type remover struct {
	fsys  filesystem.FileSystem
	mode  Mode
	stats *Stats
}

func (r *remover) removeTree(path string) error {
	info, err := r.fsys.Lstat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		dirOnly := r.mode.Has(FRMDir) || r.mode.Has(FRMEmpty)
		if dirOnly && !r.mode.Has(FRMFile) {
			return fmt.Errorf("%w: '%s' is not a directory", ErrWrongTargetKind, path)
		}
		return r.remove(path)
	}
	switch {
	case r.mode.Has(FRecursive):
		return r.removeRecursive(path)
	case r.mode.Has(FRMDir), r.mode.Has(FRMEmpty):
		entries, err := r.fsys.ReadDir(path)
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			return fmt.Errorf("%w: '%s'", ErrDirectoryNotEmpty, path)
		}
		return r.remove(path)
	case r.mode.Has(FRMFile):
		return fmt.Errorf("%w: '%s' is a directory", ErrWrongTargetKind, path)
	default:
		return fmt.Errorf("%w: '%s'", ErrIsADirectory, path)
	}
}

// removeRecursive removes the tree rooted at root. The tree is collected
// first, ordered children before parents by a topological sort over the
// containment edges, then removed as a flat worklist.
func (r *remover) removeRecursive(root string) error {
	edges := make([]toposort.Edge, 0)
	var collect func(dir string) error
	collect = func(dir string) error {
		entries, err := r.fsys.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			child := filepath.Join(dir, entry.Name())
			// A child must be removed before the directory holding it.
			edges = append(edges, toposort.Edge{child, dir})
			if entry.IsDir() {
				if err := collect(child); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := collect(root); err != nil {
		return err
	}

	sorted, err := toposort.Toposort(edges)
	if err != nil {
		// A containment graph cannot cycle.
		return fmt.Errorf("ordering removal of '%s': %w", root, err)
	}
	removedRoot := false
	for _, v := range sorted {
		path, ok := v.(string)
		if !ok {
			return fmt.Errorf("unexpected type in removal order: %T", v)
		}
		if err := r.remove(path); err != nil {
			return err
		}
		removedRoot = removedRoot || path == root
	}
	if !removedRoot {
		// An empty root never enters the graph.
		return r.remove(root)
	}
	return nil
}

func (r *remover) remove(path string) error {
	if err := r.fsys.Remove(path); err != nil {
		return err
	}
	r.stats.Removed++
	logger := Logger()
	logger.Trace().Str("path", path).Msg("removed")
	return nil
}

// windowsDriveRoot matches drive roots like `C:\` and `C:/`.
var windowsDriveRoot = regexp.MustCompile(`^[a-zA-Z]+:[/\\]+$`)

// isFilesystemRoot reports whether path names a filesystem root.
func isFilesystemRoot(path string) bool {
	if path == "" {
		return false
	}
	clean := filepath.Clean(path)
	if clean == "/" || clean == string(filepath.Separator) {
		return true
	}
	return windowsDriveRoot.MatchString(path) || windowsDriveRoot.MatchString(clean)
}
