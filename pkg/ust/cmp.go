package ust

import (
	"bytes"
	"io"
	"path/filepath"
)

// DefaultCmpBuffer is the chunk size CmpFile reads with when the caller
// does not choose one.
const DefaultCmpBuffer = 4096

// CmpFile reports whether the two files have identical contents, reading
// both in bufSize-byte chunks and stopping at the first difference. A
// bufSize of zero or less means DefaultCmpBuffer.
//
// Two spellings of the same path compare equal without reading. Files
// whose sizes differ compare unequal without reading. A path that is not
// a regular file compares unequal.
func (o *Ops) CmpFile(file1, file2 string, bufSize int) (bool, error) {
	if bufSize <= 0 {
		bufSize = DefaultCmpBuffer
	}
	fail := func(err error) (bool, error) {
		return false, wrapOpError("cmp", file1, file2, FNoSet, Stats{}, err)
	}

	if filepath.Clean(file1) == filepath.Clean(file2) {
		return true, nil
	}

	info1, err := o.fsys.Stat(file1)
	if err != nil {
		return fail(err)
	}
	info2, err := o.fsys.Stat(file2)
	if err != nil {
		return fail(err)
	}
	if !info1.Mode().IsRegular() || !info2.Mode().IsRegular() {
		return false, nil
	}
	if info1.Size() != info2.Size() {
		return false, nil
	}

	f1, err := o.fsys.Open(file1)
	if err != nil {
		return fail(err)
	}
	defer func() {
		_ = f1.Close()
	}()
	f2, err := o.fsys.Open(file2)
	if err != nil {
		return fail(err)
	}
	defer func() {
		_ = f2.Close()
	}()

	buf1 := make([]byte, bufSize)
	buf2 := make([]byte, bufSize)
	for {
		n1, err1 := io.ReadFull(f1, buf1)
		n2, err2 := io.ReadFull(f2, buf2)
		if err1 == io.ErrUnexpectedEOF {
			err1 = io.EOF
		}
		if err2 == io.ErrUnexpectedEOF {
			err2 = io.EOF
		}
		if err1 != nil && err1 != io.EOF {
			return fail(err1)
		}
		if err2 != nil && err2 != io.EOF {
			return fail(err2)
		}
		if n1 != n2 || !bytes.Equal(buf1[:n1], buf2[:n2]) {
			return false, nil
		}
		if err1 == io.EOF || err2 == io.EOF {
			return err1 == err2, nil
		}
	}
}
