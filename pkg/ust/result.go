package ust

import "fmt"

// Stats tallies per-path outcomes of an operation. Tree operations count
// every file and directory they touch; a failed operation reports the
// tally up to the failure through OpError.
type Stats struct {
	Copied  int // files written to their destination
	Skipped int // paths left alone by FIgnore or FUpdate
	Removed int // files and directories removed
	Renamed int // paths moved by rename
}

// IsZero reports whether no work was tallied.
func (s Stats) IsZero() bool {
	return s == Stats{}
}

func (s Stats) String() string {
	return fmt.Sprintf("copied=%d skipped=%d removed=%d renamed=%d",
		s.Copied, s.Skipped, s.Removed, s.Renamed)
}
