package filesystem

import (
	"io/fs"
	"time"

	"github.com/djherbis/times"
)

// Times reports the access and modification times recorded in info.
// FileInfo values without platform stat data, such as those produced by
// MemFileSystem, fall back to the modification time for both.
func Times(info fs.FileInfo) (atime, mtime time.Time) {
	mtime = info.ModTime()
	if info.Sys() == nil {
		return mtime, mtime
	}
	spec := times.Get(info)
	return spec.AccessTime(), spec.ModTime()
}
