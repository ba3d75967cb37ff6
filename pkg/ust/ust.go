// Package ust implements unix-command-like file operations driven by a
// bitmask of behavior flags: Copy and Move with cp/mv conflict handling,
// Remove with rm semantics, and the Grep and CmpFile text and byte
// comparisons.
//
// Operations are synchronous and apply no rollback: when one fails, work
// completed before the failure stays applied and the error reports the
// tally. The package-level functions run against the operating system;
// NewOps binds the same operations to any filesystem.FileSystem.
package ust

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/igzzr/unix-sytle-utils/pkg/ust/filesystem"
)

// Ops binds the operations to a filesystem implementation.
type Ops struct {
	fsys filesystem.FileSystem
}

// NewOps returns operations running against fsys.
func NewOps(fsys filesystem.FileSystem) *Ops {
	return &Ops{fsys: fsys}
}

var std = NewOps(filesystem.NewOS())

// Copy copies src to dest on the operating system filesystem. See Ops.Copy.
func Copy(src Source, dest string, mode Mode) error {
	return std.Copy(src, dest, mode)
}

// Move moves src to dest on the operating system filesystem. See Ops.Move.
func Move(src Source, dest string, mode Mode) error {
	return std.Move(src, dest, mode)
}

// Remove removes src from the operating system filesystem. See Ops.Remove.
func Remove(src Source, mode Mode) error {
	return std.Remove(src, mode)
}

// Grep searches anchor on the operating system filesystem. See Ops.Grep.
func Grep(anchor, pattern string, index int) ([]string, error) {
	return std.Grep(anchor, pattern, index)
}

// GrepRegexp searches anchor with a compiled pattern. See Ops.GrepRegexp.
func GrepRegexp(anchor string, re *regexp.Regexp, index int) ([]string, error) {
	return std.GrepRegexp(anchor, re, index)
}

// CmpFile compares two files on the operating system filesystem. See
// Ops.CmpFile.
func CmpFile(file1, file2 string, bufSize int) (bool, error) {
	return std.CmpFile(file1, file2, bufSize)
}

// rmOnlyFlags have no meaning for Copy and Move.
const rmOnlyFlags = FRMDir | FRMFile | FRMEmpty

// transferOnlyFlags have no meaning for Remove.
const transferOnlyFlags = FForce | FIgnore | FUpdate | FTargetDirectory

// transfer drives Copy and Move. It validates the mask, expands the
// source, resolves the effective destination per path and runs the
// operation for each source path in order. The first failure aborts the
// remaining paths and is returned with the tally so far attached.
func (o *Ops) transfer(op string, src Source, dest string, mode Mode, stats *Stats, run func(path, dest string) error) error {
	fail := func(path string, err error) error {
		return wrapOpError(op, path, dest, mode, *stats, err)
	}
	if err := mode.Validate(); err != nil {
		return fail(sourceLabel(src), err)
	}
	if bad := mode & rmOnlyFlags; bad != 0 {
		return fail(sourceLabel(src), fmt.Errorf("%w: %s", ErrUnsupportedFlag, bad))
	}

	intoDir := mode.Has(FTargetDirectory)
	if intoDir {
		info, err := o.fsys.Stat(dest)
		if err != nil {
			return fail(sourceLabel(src), err)
		}
		if !info.IsDir() {
			return fail(sourceLabel(src), fmt.Errorf("%w: '%s'", ErrNotDirectory, dest))
		}
	} else if endsWithSeparator(dest) {
		// A trailing separator asks for the directory itself: create it
		// and place the sources inside.
		if err := o.fsys.MkdirAll(filepath.Clean(dest), 0o755); err != nil {
			return fail(sourceLabel(src), err)
		}
		intoDir = true
	}

	paths, err := o.expandSource(src, mode)
	if err != nil {
		return fail(sourceLabel(src), err)
	}

	for _, path := range paths {
		effDest := dest
		if intoDir {
			effDest = filepath.Join(filepath.Clean(dest), filepath.Base(path))
		}
		if filepath.Clean(path) == filepath.Clean(effDest) {
			return fail(path, fmt.Errorf("%w: '%s'", ErrSameFile, path))
		}
		if err := o.ensureParent(effDest); err != nil {
			return fail(path, err)
		}
		if err := run(path, effDest); err != nil {
			return fail(path, err)
		}
	}
	return nil
}

// expandSource resolves a source to concrete paths. Only One may carry a
// glob pattern; a pattern matching nothing expands to no paths, making
// the operation a no-op.
func (o *Ops) expandSource(src Source, mode Mode) ([]string, error) {
	one, ok := src.(onePath)
	if !ok || !strings.ContainsAny(string(one), "*?") {
		return src.paths(), nil
	}
	matches, err := filesystem.Glob(o.fsys, string(one), mode.Has(FRecursive))
	if err != nil {
		return nil, err
	}
	logger := Logger()
	logger.Debug().
		Str("pattern", string(one)).
		Int("matches", len(matches)).
		Msg("expanded glob source")
	return matches, nil
}

// ensureParent creates the destination's parent directories.
func (o *Ops) ensureParent(dest string) error {
	dir := filepath.Dir(filepath.Clean(dest))
	if dir == "." || dir == "/" || dir == string(filepath.Separator) {
		return nil
	}
	return o.fsys.MkdirAll(dir, 0o755)
}

func endsWithSeparator(path string) bool {
	return strings.HasSuffix(path, "/") ||
		strings.HasSuffix(path, string(filepath.Separator))
}

// sourceLabel names a source in errors raised before per-path processing
// begins.
func sourceLabel(src Source) string {
	paths := src.paths()
	if len(paths) == 1 {
		return paths[0]
	}
	return strings.Join(paths, ", ")
}
