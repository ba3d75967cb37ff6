package ust

import (
	"fmt"
	"strings"
)

// Mode is a bitmask of behavior flags. Flags combine with bitwise OR and
// are interpreted per operation; Copy, Move and Remove each reject the
// bits that have no meaning for them.
type Mode int

// FNoSet is the empty mask: no special behavior requested.
const FNoSet Mode = 0

const (
	// FForce overwrites an existing destination.
	FForce Mode = 1 << iota
	// FIgnore skips a path whose destination already exists. It wins
	// over FUpdate and FForce when several are set.
	FIgnore
	// FRecursive descends into directories.
	FRecursive
	// FUpdate overwrites only when the source is strictly newer than
	// the destination.
	FUpdate
	// FTargetDirectory treats the destination as an existing directory
	// and places each source under it, keyed by its base name.
	FTargetDirectory
	// FRMDir removes a directory, which must be empty.
	FRMDir
	// FRMFile removes a file and refuses directories.
	FRMFile
	// FRMEmpty removes a directory only if it is empty.
	FRMEmpty
)

// FReplace is an alias for FForce and shares its bit; the two names are
// interchangeable everywhere.
const FReplace = FForce

// validMask covers every assigned flag bit.
const validMask = FForce | FIgnore | FRecursive | FUpdate | FTargetDirectory |
	FRMDir | FRMFile | FRMEmpty

// allFlags lists the canonical flags in ascending bit order.
var allFlags = []Mode{
	FForce, FIgnore, FRecursive, FUpdate, FTargetDirectory,
	FRMDir, FRMFile, FRMEmpty,
}

var flagNames = map[Mode]string{
	FNoSet:           "F_NOSET",
	FForce:           "F_FORCE",
	FIgnore:          "F_IGNORE",
	FRecursive:       "F_RECURSIVE",
	FUpdate:          "F_UPDATE",
	FTargetDirectory: "F_TARGET_DIRECTORY",
	FRMDir:           "F_RM_DIR",
	FRMFile:          "F_RM_FILE",
	FRMEmpty:         "F_RM_EMPTY",
}

var flagValues = func() map[string]Mode {
	values := make(map[string]Mode, len(flagNames)+1)
	for flag, name := range flagNames {
		values[name] = flag
	}
	values["F_REPLACE"] = FReplace
	return values
}()

// FlagName returns the canonical name of a single flag.
func FlagName(flag Mode) (string, bool) {
	name, ok := flagNames[flag]
	return name, ok
}

// FlagValue returns the flag named by name. Alias names resolve to the
// flag they alias.
func FlagValue(name string) (Mode, bool) {
	flag, ok := flagValues[name]
	return flag, ok
}

// Has reports whether every bit of flag is set in m.
func (m Mode) Has(flag Mode) bool {
	return m&flag == flag && flag != 0
}

// String renders the mask as canonical flag names joined by '|'.
// Unassigned bits render as hex.
func (m Mode) String() string {
	if m == FNoSet {
		return flagNames[FNoSet]
	}
	var parts []string
	for _, flag := range allFlags {
		if m&flag != 0 {
			parts = append(parts, flagNames[flag])
		}
	}
	if unknown := m &^ validMask; unknown != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", int(unknown)))
	}
	return strings.Join(parts, "|")
}

// Validate rejects masks carrying bits outside the assigned flags.
func (m Mode) Validate() error {
	if unknown := m &^ validMask; unknown != 0 {
		return fmt.Errorf("%w: 0x%x", ErrInvalidFlagMask, int(unknown))
	}
	return nil
}
