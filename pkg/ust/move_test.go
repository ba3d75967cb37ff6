package ust

import (
	"errors"
	"testing"

	"github.com/igzzr/unix-sytle-utils/pkg/ust/filesystem"
)

// noRenameFS refuses Rename so moves take the copy-then-remove path, the
// way a cross-device move does.
type noRenameFS struct {
	filesystem.FileSystem
}

func (noRenameFS) Rename(oldpath, newpath string) error {
	return errors.New("invalid cross-device link")
}

func TestMoveRename(t *testing.T) {
	t.Run("file to new name", func(t *testing.T) {
		ops, fsys := newMemOps()
		seedFile(t, fsys, "a.txt", "hello")

		if err := ops.Move(One("a.txt"), "b.txt", FNoSet); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if exists(fsys, "a.txt") {
			t.Error("source still present")
		}
		if got := readFile(t, fsys, "b.txt"); got != "hello" {
			t.Errorf("dest content = %q", got)
		}
	})

	t.Run("force replaces existing file", func(t *testing.T) {
		ops, fsys := newMemOps()
		seedFile(t, fsys, "a.txt", "new")
		seedFile(t, fsys, "b.txt", "old")

		if err := ops.Move(One("a.txt"), "b.txt", FForce); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if exists(fsys, "a.txt") {
			t.Error("source still present")
		}
		if got := readFile(t, fsys, "b.txt"); got != "new" {
			t.Errorf("dest content = %q", got)
		}
	})

	t.Run("directory moves whole", func(t *testing.T) {
		ops, fsys := newMemOps()
		seedFile(t, fsys, "src/sub/a.txt", "a")

		// Rename carries the tree, so FRecursive is not needed here.
		if err := ops.Move(One("src"), "dst", FNoSet); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if exists(fsys, "src") {
			t.Error("source tree still present")
		}
		if got := readFile(t, fsys, "dst/sub/a.txt"); got != "a" {
			t.Errorf("dst/sub/a.txt = %q", got)
		}
	})
}

func TestMoveConflictPolicy(t *testing.T) {
	t.Run("no flags fails", func(t *testing.T) {
		ops, fsys := newMemOps()
		seedFile(t, fsys, "a.txt", "new")
		seedFile(t, fsys, "b.txt", "old")

		err := ops.Move(One("a.txt"), "b.txt", FNoSet)
		if !errors.Is(err, ErrDestinationExists) {
			t.Fatalf("Move = %v, want ErrDestinationExists", err)
		}
		if !exists(fsys, "a.txt") {
			t.Error("source removed despite failure")
		}
	})

	t.Run("ignore keeps both", func(t *testing.T) {
		ops, fsys := newMemOps()
		seedFile(t, fsys, "a.txt", "new")
		seedFile(t, fsys, "b.txt", "old")

		if err := ops.Move(One("a.txt"), "b.txt", FIgnore); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if got := readFile(t, fsys, "a.txt"); got != "new" {
			t.Error("skipped source was removed")
		}
		if got := readFile(t, fsys, "b.txt"); got != "old" {
			t.Errorf("dest overwritten: %q", got)
		}
	})

	t.Run("update moves newer source", func(t *testing.T) {
		ops, fsys := newMemOps()
		seedFileAt(t, fsys, "a.txt", "new", newer)
		seedFileAt(t, fsys, "b.txt", "old", older)

		if err := ops.Move(One("a.txt"), "b.txt", FUpdate); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if exists(fsys, "a.txt") {
			t.Error("source still present")
		}
		if got := readFile(t, fsys, "b.txt"); got != "new" {
			t.Errorf("dest content = %q", got)
		}
	})

	t.Run("update keeps older source", func(t *testing.T) {
		ops, fsys := newMemOps()
		seedFileAt(t, fsys, "a.txt", "new", older)
		seedFileAt(t, fsys, "b.txt", "old", newer)

		if err := ops.Move(One("a.txt"), "b.txt", FUpdate); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if !exists(fsys, "a.txt") {
			t.Error("skipped source was removed")
		}
		if got := readFile(t, fsys, "b.txt"); got != "old" {
			t.Errorf("dest overwritten: %q", got)
		}
	})
}

func TestMoveFallback(t *testing.T) {
	t.Run("file across devices", func(t *testing.T) {
		mem := filesystem.NewMem()
		ops := NewOps(noRenameFS{mem})
		seedFileAt(t, mem, "a.txt", "hello", older)

		if err := ops.Move(One("a.txt"), "b.txt", FNoSet); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if exists(mem, "a.txt") {
			t.Error("source still present")
		}
		if got := readFile(t, mem, "b.txt"); got != "hello" {
			t.Errorf("dest content = %q", got)
		}
		info, err := mem.Stat("b.txt")
		if err != nil {
			t.Fatalf("Stat failed: %v", err)
		}
		if !info.ModTime().Equal(older) {
			t.Errorf("mtime = %v, want %v", info.ModTime(), older)
		}
	})

	t.Run("directory needs the recursive flag", func(t *testing.T) {
		mem := filesystem.NewMem()
		ops := NewOps(noRenameFS{mem})
		seedFile(t, mem, "src/a.txt", "a")

		err := ops.Move(One("src"), "dst", FNoSet)
		if !errors.Is(err, ErrNotRecursive) {
			t.Fatalf("Move = %v, want ErrNotRecursive", err)
		}
		if got := readFile(t, mem, "src/a.txt"); got != "a" {
			t.Error("source tree damaged by failed move")
		}
	})

	t.Run("directory tree", func(t *testing.T) {
		mem := filesystem.NewMem()
		ops := NewOps(noRenameFS{mem})
		seedFile(t, mem, "src/a.txt", "a")
		seedFile(t, mem, "src/sub/b.txt", "b")

		if err := ops.Move(One("src"), "dst", FRecursive); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if exists(mem, "src") {
			t.Error("emptied source tree still present")
		}
		if got := readFile(t, mem, "dst/a.txt"); got != "a" {
			t.Errorf("dst/a.txt = %q", got)
		}
		if got := readFile(t, mem, "dst/sub/b.txt"); got != "b" {
			t.Errorf("dst/sub/b.txt = %q", got)
		}
	})

	t.Run("skipped file keeps its directory", func(t *testing.T) {
		ops, fsys := newMemOps()
		seedFileAt(t, fsys, "src/fresh.txt", "src-fresh", newer)
		seedFileAt(t, fsys, "src/stale.txt", "src-stale", older)
		seedFileAt(t, fsys, "dst/fresh.txt", "dst-fresh", older)
		seedFileAt(t, fsys, "dst/stale.txt", "dst-stale", newer)

		if err := ops.Move(One("src"), "dst", FRecursive|FUpdate); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if got := readFile(t, fsys, "dst/fresh.txt"); got != "src-fresh" {
			t.Errorf("dst/fresh.txt = %q", got)
		}
		if got := readFile(t, fsys, "dst/stale.txt"); got != "dst-stale" {
			t.Errorf("dst/stale.txt = %q", got)
		}
		if exists(fsys, "src/fresh.txt") {
			t.Error("moved file left behind")
		}
		if got := readFile(t, fsys, "src/stale.txt"); got != "src-stale" {
			t.Error("skipped file lost")
		}
		if !exists(fsys, "src") {
			t.Error("directory holding a skipped file was removed")
		}
	})
}

func TestMoveErrors(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		ops, _ := newMemOps()
		err := ops.Move(One("missing.txt"), "out.txt", FForce)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Move = %v, want ErrNotFound", err)
		}
		var opErr *OpError
		if !errors.As(err, &opErr) || opErr.Op != "move" {
			t.Errorf("error = %v, want move OpError", err)
		}
	})

	t.Run("source onto itself", func(t *testing.T) {
		ops, fsys := newMemOps()
		seedFile(t, fsys, "a.txt", "a")
		err := ops.Move(One("a.txt"), "a.txt", FForce)
		if !errors.Is(err, ErrSameFile) {
			t.Fatalf("Move = %v, want ErrSameFile", err)
		}
		if got := readFile(t, fsys, "a.txt"); got != "a" {
			t.Error("file damaged by failed move")
		}
	})

	t.Run("tally rides the error", func(t *testing.T) {
		ops, fsys := newMemOps()
		seedFile(t, fsys, "a.txt", "a")
		seedDir(t, fsys, "dest")

		err := ops.Move(List("a.txt", "missing.txt"), "dest", FTargetDirectory)
		var opErr *OpError
		if !errors.As(err, &opErr) {
			t.Fatalf("error is %T, want *OpError", err)
		}
		if opErr.Stats.Renamed != 1 {
			t.Errorf("Stats.Renamed = %d, want 1", opErr.Stats.Renamed)
		}
		if !exists(fsys, "dest/a.txt") {
			t.Error("work before the failure was not kept")
		}
	})
}
