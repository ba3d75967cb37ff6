package ust

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Grep compiles pattern as a regular expression and searches the anchor
// line by line. See GrepRegexp for the anchor rule and index semantics.
func (o *Ops) Grep(anchor, pattern string, index int) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, wrapOpError("grep", anchor, "", FNoSet, Stats{}, err)
	}
	return o.GrepRegexp(anchor, re, index)
}

// GrepRegexp returns the lines of the anchor matching re, in input order.
//
// The anchor is resolved as follows: an anchor containing a newline is
// always literal text; otherwise, when it names an existing regular file
// that file's contents are searched, an existing directory fails with
// ErrWrongTargetKind, and anything else is literal text.
//
// A negative index returns every matching line. A non-negative index
// selects the index-th matching line alone and fails with
// ErrIndexOutOfRange past the last match.
func (o *Ops) GrepRegexp(anchor string, re *regexp.Regexp, index int) ([]string, error) {
	fail := func(err error) ([]string, error) {
		return nil, wrapOpError("grep", anchor, "", FNoSet, Stats{}, err)
	}
	lines, err := o.anchorLines(anchor)
	if err != nil {
		return fail(err)
	}

	var matches []string
	for _, line := range lines {
		if re.MatchString(line) {
			matches = append(matches, line)
		}
	}
	logger := Logger()
	logger.Debug().
		Str("pattern", re.String()).
		Int("lines", len(lines)).
		Int("matches", len(matches)).
		Msg("grep")

	if index < 0 {
		return matches, nil
	}
	if index >= len(matches) {
		return fail(fmt.Errorf("%w: index %d with %d matches", ErrIndexOutOfRange, index, len(matches)))
	}
	return []string{matches[index]}, nil
}

// anchorLines resolves the anchor to the lines to search.
func (o *Ops) anchorLines(anchor string) ([]string, error) {
	text := anchor
	if !strings.ContainsRune(anchor, '\n') {
		if info, err := o.fsys.Stat(anchor); err == nil {
			if info.IsDir() {
				return nil, fmt.Errorf("%w: '%s' is a directory", ErrWrongTargetKind, anchor)
			}
			f, err := o.fsys.Open(anchor)
			if err != nil {
				return nil, err
			}
			data, err := io.ReadAll(f)
			_ = f.Close()
			if err != nil {
				return nil, err
			}
			text = string(data)
		}
	}
	return splitLines(text), nil
}

// splitLines splits on newlines, tolerating CRLF endings and a trailing
// newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
