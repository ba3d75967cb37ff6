package ust

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/igzzr/unix-sytle-utils/pkg/ust/filesystem"
)

// Copy copies src to dest. Directories require FRecursive. An existing
// destination file is resolved per the mask: FIgnore skips it, FUpdate
// overwrites only when the source is strictly newer, FForce overwrites
// unconditionally, and with none of them set the copy fails with
// ErrDestinationExists. FIgnore wins over FUpdate, FUpdate over FForce.
//
// With FTargetDirectory, dest must be an existing directory and every
// source lands under it as dest/base(src). A dest ending in a path
// separator is created as a directory first and filled the same way.
// Missing parent directories of dest are created. Permission bits and
// timestamps carry over to the copies.
func (o *Ops) Copy(src Source, dest string, mode Mode) error {
	stats := &Stats{}
	return o.transfer("copy", src, dest, mode, stats, func(path, effDest string) error {
		c := &copier{fsys: o.fsys, mode: mode, stats: stats}
		return c.copyTree(path, effDest)
	})
}

// conflictAction is the per-file decision for an existing destination.
type conflictAction int

const (
	actWrite conflictAction = iota
	actSkip
	actFail
)

// decide resolves a destination conflict from the mask and both
// modification times. When several conflict flags are set the most
// conservative wins: FIgnore over FUpdate, FUpdate over FForce.
func decide(mode Mode, destExists bool, srcMod, destMod time.Time) conflictAction {
	if !destExists {
		return actWrite
	}
	switch {
	case mode.Has(FIgnore):
		return actSkip
	case mode.Has(FUpdate):
		if srcMod.After(destMod) {
			return actWrite
		}
		return actSkip
	case mode.Has(FForce):
		return actWrite
	}
	return actFail
}

// copier walks a source tree and writes it under a destination path,
// deciding each file against the mask. Move drives the same walk through
// the two hooks, which run after a file lands and after a directory's
// children are done.
type copier struct {
	fsys  filesystem.FileSystem
	mode  Mode
	stats *Stats

	onFileDone func(src string) error
	onDirDone  func(src string) error
}

func (c *copier) copyTree(src, dest string) error {
	info, err := c.fsys.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if !c.mode.Has(FRecursive) {
			return fmt.Errorf("%w: '%s' is a directory", ErrNotRecursive, src)
		}
		return c.copyDir(src, dest, info)
	}
	return c.copyFile(src, dest, info)
}

func (c *copier) copyDir(src, dest string, info fs.FileInfo) error {
	destInfo, err := c.fsys.Stat(dest)
	destExists := err == nil
	if destExists && !destInfo.IsDir() {
		switch decide(c.mode, true, info.ModTime(), destInfo.ModTime()) {
		case actSkip:
			c.stats.Skipped++
			logger := Logger()
			logger.Debug().Str("src", src).Str("dest", dest).
				Msg("skipping directory, destination exists")
			return nil
		case actFail:
			return fmt.Errorf("%w: '%s'", ErrDestinationExists, dest)
		}
		if err := c.fsys.Remove(dest); err != nil {
			return err
		}
		destExists = false
	}
	if !destExists {
		if err := c.fsys.MkdirAll(dest, info.Mode().Perm()); err != nil {
			return err
		}
	}

	entries, err := c.fsys.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		err := c.copyTree(filepath.Join(src, entry.Name()), filepath.Join(dest, entry.Name()))
		if err != nil {
			return err
		}
	}

	atime, mtime := filesystem.Times(info)
	if err := c.fsys.Chtimes(dest, atime, mtime); err != nil {
		return err
	}
	if c.onDirDone != nil {
		return c.onDirDone(src)
	}
	return nil
}

func (c *copier) copyFile(src, dest string, info fs.FileInfo) error {
	destInfo, err := c.fsys.Stat(dest)
	destExists := err == nil
	var destMod time.Time
	if destExists {
		destMod = destInfo.ModTime()
	}

	switch decide(c.mode, destExists, info.ModTime(), destMod) {
	case actSkip:
		c.stats.Skipped++
		logger := Logger()
		logger.Debug().Str("src", src).Str("dest", dest).
			Msg("skipping file, destination exists")
		return nil
	case actFail:
		return fmt.Errorf("%w: '%s'", ErrDestinationExists, dest)
	}

	if destExists {
		if destInfo.IsDir() {
			return fmt.Errorf("%w: '%s'", ErrIsADirectory, dest)
		}
		// Unlink first so read-only destinations can be replaced.
		_ = c.fsys.Remove(dest)
	}
	if err := copyFileContents(c.fsys, src, dest, info); err != nil {
		return err
	}
	c.stats.Copied++
	logger := Logger()
	logger.Debug().Str("src", src).Str("dest", dest).Msg("copied file")

	if c.onFileDone != nil {
		return c.onFileDone(src)
	}
	return nil
}

// copyFileContents streams src to dest and carries over the permission
// bits and timestamps.
func copyFileContents(fsys filesystem.FileSystem, src, dest string, info fs.FileInfo) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := fsys.Create(dest, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := fsys.Chmod(dest, info.Mode().Perm()); err != nil {
		return err
	}
	atime, mtime := filesystem.Times(info)
	return fsys.Chtimes(dest, atime, mtime)
}
