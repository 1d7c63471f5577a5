// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gviegas/sdlvk/internal/dl"
)

// stubSDL replaces the SDL procs and linked version for the
// duration of the test.
func stubSDL(t *testing.T, linked Version) {
	t.Helper()
	procs, vers := sdl, linkedSDL
	t.Cleanup(func() {
		sdl = procs
		linkedSDL = vers
	})
	sdl = sdlProcs{}
	linkedSDL = linked
}

func TestSysInfoStamp(t *testing.T) {
	for _, linked := range [...]Version{{2, 30, 0}, {2, 0, 22}, {2, 0, 18}} {
		stubSDL(t, linked)
		var calls int
		var have rawSysInfo
		sdl.getWindowWMInfo = func(win uintptr, info *rawSysInfo) int32 {
			calls++
			have = *info
			// Leave garbage behind to check that the next call
			// starts from a zeroed structure.
			info.subsystem = uint32(SysX11)
			info.setSlot(0, 0xdead)
			return 0
		}
		w := &windowSDL{win: 1}
		for i := 0; i < 2; i++ {
			if info, ok := w.SysInfo(); ok || info != (SysInfo{}) {
				t.Fatalf("windowSDL.SysInfo (failed query)\nhave %v, %t\nwant zero, false", info, ok)
			}
			if want := (rawSysInfo{version: negotiateVersion(linked)}); have != want {
				t.Fatalf("SDL_SysWMinfo passed with linked %v\nhave %+v\nwant %+v", linked, have, want)
			}
		}
		if calls != 2 {
			t.Fatalf("SDL_GetWindowWMInfo calls\nhave %d\nwant 2", calls)
		}
	}
}

func TestSysInfoDecode(t *testing.T) {
	stubSDL(t, Version{2, 30, 0})
	sdl.getWindowWMInfo = func(win uintptr, info *rawSysInfo) int32 {
		if win != 0x1234 {
			return 0
		}
		info.subsystem = uint32(SysWayland)
		info.setSlot(0, 0x11)
		info.setSlot(1, 0x22)
		return sdlTrue
	}
	info, ok := (&windowSDL{win: 0x1234}).SysInfo()
	if !ok {
		t.Fatal("windowSDL.SysInfo\nhave false\nwant true")
	}
	want := SysInfo{
		Version:   Version{2, 0, 22},
		Subsystem: SysWayland,
		Wayland:   WaylandInfo{0x11, 0x22},
	}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Fatalf("windowSDL.SysInfo mismatch (-want +have):\n%s", diff)
	}
}

func TestLastError(t *testing.T) {
	msg := []byte("No such window\x00")
	bad := []byte{'a', 0xff, 0}
	for _, x := range [...]struct {
		err  *byte
		want string
		ok   bool
	}{
		{&msg[0], "No such window", true},
		{nil, "", false},
		{&bad[0], "", false},
	} {
		stubSDL(t, Version{2, 30, 0})
		sdl.getError = func() *byte { return x.err }
		s, ok := (&windowSDL{win: 1}).LastError()
		if s != x.want || ok != x.ok {
			t.Errorf("windowSDL.LastError\nhave %q, %t\nwant %q, %t", s, ok, x.want, x.ok)
		}
	}
}

func TestUnloadedSDL(t *testing.T) {
	stubSDL(t, Version{})
	w := &windowSDL{win: 1}
	if info, ok := w.SysInfo(); ok || info != (SysInfo{}) {
		t.Errorf("windowSDL.SysInfo (SDL unloaded)\nhave %v, %t\nwant zero, false", info, ok)
	}
	if s, ok := w.LastError(); ok || s != "" {
		t.Errorf("windowSDL.LastError (SDL unloaded)\nhave %q, %t\nwant \"\", false", s, ok)
	}

	// A closed window does not reach SDL either.
	sdl.getWindowWMInfo = func(uintptr, *rawSysInfo) int32 {
		t.Error("SDL_GetWindowWMInfo called for closed window")
		return sdlTrue
	}
	if _, ok := (&windowSDL{}).SysInfo(); ok {
		t.Error("windowSDL.SysInfo (closed window)\nhave true\nwant false")
	}
}

func TestTitleNUL(t *testing.T) {
	stubSDL(t, Version{2, 30, 0})
	var titles []string
	sdl.createWindow = func(title *byte, x, y, w, h int32, flags uint32) uintptr {
		t.Error("SDL_CreateWindow called with invalid title")
		return 0
	}
	sdl.setWindowTitle = func(win uintptr, title *byte) {
		s, _ := dl.GoString(title)
		titles = append(titles, s)
	}

	if win, err := newWindowSDL(480, 360, "My\x00window"); win != nil || !errors.Is(err, errInvalidTitle) {
		t.Fatalf("newWindowSDL with NUL in title\nhave %v, %v\nwant nil, %v", win, err, errInvalidTitle)
	}

	w := &windowSDL{win: 1, title: "Old"}
	if err := w.SetTitle("Bad\x00title"); !errors.Is(err, errInvalidTitle) {
		t.Fatalf("windowSDL.SetTitle with NUL\nhave %v\nwant %v", err, errInvalidTitle)
	}
	if w.Title() != "Old" {
		t.Fatalf("windowSDL.Title after failed SetTitle\nhave %q\nwant \"Old\"", w.Title())
	}
	if err := w.SetTitle("New"); err != nil {
		t.Fatalf("windowSDL.SetTitle\nhave %v\nwant nil", err)
	}
	if diff := cmp.Diff([]string{"New"}, titles); diff != "" {
		t.Fatalf("SDL_SetWindowTitle calls mismatch (-want +have):\n%s", diff)
	}
}
