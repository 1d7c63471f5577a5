// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package dl

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// CString returns a NUL-terminated copy of s.
// It fails if s contains a NUL byte.
func CString(s string) (*byte, error) {
	return windows.BytePtrFromString(s)
}

// Open opens the first library in names that can be loaded.
func Open(names ...string) (Lib, error) {
	var last error
	for _, name := range names {
		h, err := windows.LoadLibrary(name)
		if err == nil {
			return Lib{h: uintptr(h), name: name}, nil
		}
		last = err
	}
	if last == nil {
		return Lib{}, ErrNotFound
	}
	return Lib{}, fmt.Errorf("%w: %v", ErrNotFound, last)
}

// Sym returns the address of the named symbol, or 0 if l
// does not define it.
func (l Lib) Sym(name string) uintptr {
	if l.h == 0 {
		return 0
	}
	p, err := windows.GetProcAddress(windows.Handle(l.h), name)
	if err != nil {
		return 0
	}
	return p
}

// Close unloads the library.
// Symbols bound from l must not be called afterwards.
func (l *Lib) Close() {
	if l.h != 0 {
		windows.FreeLibrary(windows.Handle(l.h))
	}
	*l = Lib{}
}
