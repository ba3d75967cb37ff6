package ust

// Move moves src to dest. When no per-file conflict decision is needed,
// because the destination is absent or FForce alone makes overwriting
// unconditional, a single rename is attempted first. Otherwise, and when
// the rename fails (a cross-device move, say), the move degrades to copy
// then remove: each source file is removed only after its destination
// write succeeded, files skipped by FIgnore or FUpdate keep their
// sources, and source directories are removed only once emptied.
//
// The fallback follows Copy's rules, so moving a directory through it
// requires FRecursive. Destination resolution, FTargetDirectory and
// parent creation behave exactly as in Copy.
func (o *Ops) Move(src Source, dest string, mode Mode) error {
	stats := &Stats{}
	return o.transfer("move", src, dest, mode, stats, func(path, effDest string) error {
		return o.moveTree(path, effDest, mode, stats)
	})
}

func (o *Ops) moveTree(src, dest string, mode Mode, stats *Stats) error {
	if _, err := o.fsys.Stat(src); err != nil {
		return err
	}
	_, destErr := o.fsys.Stat(dest)
	destExists := destErr == nil

	unconditional := mode.Has(FForce) && !mode.Has(FIgnore) && !mode.Has(FUpdate)
	if !destExists || unconditional {
		if err := o.fsys.Rename(src, dest); err == nil {
			stats.Renamed++
			logger := Logger()
			logger.Debug().Str("src", src).Str("dest", dest).Msg("renamed")
			return nil
		}
		// Rename refused, typically a cross-device move or an
		// incompatible existing destination. Fall through.
	}

	c := &copier{
		fsys:  o.fsys,
		mode:  mode,
		stats: stats,
		onFileDone: func(path string) error {
			if err := o.fsys.Remove(path); err != nil {
				return err
			}
			stats.Removed++
			return nil
		},
		onDirDone: func(path string) error {
			entries, err := o.fsys.ReadDir(path)
			if err != nil {
				return err
			}
			if len(entries) > 0 {
				// Skipped children keep their directory.
				return nil
			}
			if err := o.fsys.Remove(path); err != nil {
				return err
			}
			stats.Removed++
			return nil
		},
	}
	return c.copyTree(src, dest)
}
