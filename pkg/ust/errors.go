package ust

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors reported by the operations. Callers match them with
// errors.Is; every failure returned by an operation wraps exactly one of
// these or an error passed through from the filesystem.
var (
	// ErrInvalidSource reports a source value of an unsupported kind.
	ErrInvalidSource = errors.New("invalid source kind")

	// ErrInvalidFlagMask reports a mask with bits outside the assigned flags.
	ErrInvalidFlagMask = errors.New("invalid flag mask")

	// ErrUnsupportedFlag reports a flag the operation has no meaning for.
	ErrUnsupportedFlag = errors.New("flag not supported by operation")

	// ErrNotRecursive reports a directory source without FRecursive.
	ErrNotRecursive = errors.New("recursive flag not set")

	// ErrDestinationExists reports an existing destination with no flag
	// resolving the conflict.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrDirectoryNotEmpty reports a directory that FRMDir or FRMEmpty
	// refused to remove.
	ErrDirectoryNotEmpty = errors.New("directory not empty")

	// ErrIsADirectory reports a remove of a directory with no directory
	// flag set.
	ErrIsADirectory = errors.New("is a directory")

	// ErrWrongTargetKind reports a path whose kind does not match the
	// requested flags, such as FRMFile on a directory.
	ErrWrongTargetKind = errors.New("wrong target kind")

	// ErrNotDirectory reports an FTargetDirectory destination that is not
	// an existing directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrSameFile reports a copy or move onto the source itself.
	ErrSameFile = errors.New("source and destination are the same file")

	// ErrRemoveRoot reports an attempt to remove a filesystem root.
	ErrRemoveRoot = errors.New("refusing to remove filesystem root")

	// ErrIndexOutOfRange reports a grep match index past the last match.
	ErrIndexOutOfRange = errors.New("match index out of range")
)

// ErrNotFound reports a path that does not exist. It is the io/fs
// not-exist sentinel, so filesystem errors match it without translation.
var ErrNotFound = fs.ErrNotExist

// OpError describes a failed operation. It carries the arguments the
// operation was called with and the per-path tally accumulated before the
// failure; completed work is not rolled back.
type OpError struct {
	Op    string // "copy", "move", "remove", "grep" or "cmp"
	Path  string // source argument being processed
	Dest  string // destination argument, when the operation has one
	Mode  Mode   // flag mask in effect
	Stats Stats  // work completed before the failure
	Err   error  // underlying cause
}

// Error returns a formatted error message.
func (e *OpError) Error() string {
	msg := fmt.Sprintf("failed to %s '%s'", e.Op, e.Path)
	if e.Dest != "" {
		msg += fmt.Sprintf(" to '%s'", e.Dest)
	}
	msg += fmt.Sprintf(": %v (mode: %s)", e.Err, e.Mode)
	if !e.Stats.IsZero() {
		msg += fmt.Sprintf(" [%s]", e.Stats)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// wrapOpError attaches operation context to err unless it already carries
// some.
func wrapOpError(op, path, dest string, mode Mode, stats Stats, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	return &OpError{Op: op, Path: path, Dest: dest, Mode: mode, Stats: stats, Err: err}
}
