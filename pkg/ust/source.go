package ust

import (
	"fmt"
	"sort"
)

// Source describes the paths an operation acts on. A Source is one of
// three shapes: One, a single path; List, an ordered sequence processed
// in the order given; or Set, a unique collection processed in lexical
// order. Resolution is pure, the filesystem is only consulted when the
// operation runs.
type Source interface {
	// paths returns the resolved path sequence. Unexported so the three
	// shapes above stay the only implementations.
	paths() []string
}

type onePath string

func (p onePath) paths() []string { return []string{string(p)} }

type pathList []string

func (l pathList) paths() []string { return l }

type pathSet []string

func (s pathSet) paths() []string { return s }

// One returns a single-path source. When used with Copy, Move or Remove,
// a path containing `*` or `?` is expanded as a glob pattern.
func One(path string) Source {
	return onePath(path)
}

// List returns an ordered multi-path source. Paths are taken literally,
// duplicates included.
func List(paths ...string) Source {
	return pathList(append([]string(nil), paths...))
}

// Set returns a unique multi-path source. Duplicates are dropped and the
// paths resolve in lexical order, so runs are deterministic.
func Set(paths ...string) Source {
	seen := make(map[string]struct{}, len(paths))
	unique := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	sort.Strings(unique)
	return pathSet(unique)
}

// SourceOf converts a dynamically typed value into a Source. Supported
// kinds are string, []string, map[string]struct{} and map[string]bool
// (keys mapped to true form the set). Anything else fails with
// ErrInvalidSource.
func SourceOf(v any) (Source, error) {
	switch s := v.(type) {
	case Source:
		return s, nil
	case string:
		return One(s), nil
	case []string:
		return List(s...), nil
	case map[string]struct{}:
		paths := make([]string, 0, len(s))
		for p := range s {
			paths = append(paths, p)
		}
		return Set(paths...), nil
	case map[string]bool:
		paths := make([]string, 0, len(s))
		for p, in := range s {
			if in {
				paths = append(paths, p)
			}
		}
		return Set(paths...), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidSource, v)
	}
}
