// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package dl loads shared libraries at run time and binds
// their symbols to Go function variables.
// It is used by wsi and vk, neither of which links against
// SDL or Vulkan at build time.
package dl

import (
	"errors"
	"strconv"
	"unicode/utf8"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ErrNotFound means that none of the candidate library
// names could be opened.
var ErrNotFound = errors.New("dl: library not found")

// Lib is a handle to an opened shared library.
type Lib struct {
	h    uintptr
	name string
}

// Name returns the name that was used to open l.
func (l Lib) Name() string { return l.name }

// Valid reports whether l refers to an opened library.
func (l Lib) Valid() bool { return l.h != 0 }

// Bind sets the function pointed to by fptr to call the
// C function at addr.
// It returns false, leaving fptr untouched, if addr is 0.
func Bind(fptr any, addr uintptr) bool {
	if addr == 0 {
		return false
	}
	purego.RegisterFunc(fptr, addr)
	return true
}

// BindSym is like Bind, but looks up the address of name
// in l.
func (l Lib) BindSym(fptr any, name string) bool {
	return Bind(fptr, l.Sym(name))
}

// MustCString is like CString, but panics if s contains a
// NUL byte.
// It is meant for symbol and extension names.
func MustCString(s string) *byte {
	p, err := CString(s)
	if err != nil {
		panic("dl.MustCString called with string containing NUL: " + strconv.Quote(s))
	}
	return p
}

// CStrings returns an array of NUL-terminated copies of ss.
// It returns nil if ss is empty.
// It panics if any string in ss contains a NUL byte.
func CStrings(ss []string) []*byte {
	if len(ss) == 0 {
		return nil
	}
	cs := make([]*byte, len(ss))
	for i, s := range ss {
		cs[i] = MustCString(s)
	}
	return cs
}

// GoString copies the NUL-terminated string at p.
// It returns false if p is nil or the string is not
// valid UTF-8.
func GoString(p *byte) (string, bool) {
	if p == nil {
		return "", false
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	s := string(unsafe.Slice(p, n))
	if !utf8.ValidString(s) {
		return "", false
	}
	return s, true
}

// FixedString converts a NUL-padded byte array, as found in
// C structures, to a Go string.
func FixedString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
