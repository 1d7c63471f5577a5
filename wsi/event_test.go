// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

// recorder records handler calls.
type recorder struct {
	calls []string
	wins  []Window
	keys  []keyCall
	sizes [][2]int
}

type keyCall struct {
	Key     Key
	Pressed bool
	Mod     Modifier
}

func (r *recorder) WindowClose(win Window) {
	r.calls = append(r.calls, "close")
	r.wins = append(r.wins, win)
}

func (r *recorder) WindowResize(win Window, newWidth, newHeight int) {
	r.calls = append(r.calls, "resize")
	r.wins = append(r.wins, win)
	r.sizes = append(r.sizes, [2]int{newWidth, newHeight})
}

func (r *recorder) KeyboardIn(win Window) {
	r.calls = append(r.calls, "in")
	r.wins = append(r.wins, win)
}

func (r *recorder) KeyboardOut(win Window) {
	r.calls = append(r.calls, "out")
	r.wins = append(r.wins, win)
}

func (r *recorder) KeyboardKey(key Key, pressed bool, modMask Modifier) {
	r.calls = append(r.calls, "key")
	r.keys = append(r.keys, keyCall{key, pressed, modMask})
}

func (r *recorder) Quit() { r.calls = append(r.calls, "quit") }

// setRecorder installs r as every handler until the test
// ends.
func setRecorder(t *testing.T, r *recorder) {
	SetWindowHandler(r)
	SetKeyboardHandler(r)
	SetQuitHandler(r)
	t.Cleanup(func() {
		SetWindowHandler(nil)
		SetKeyboardHandler(nil)
		SetQuitHandler(nil)
	})
}

func TestRawEventLayout(t *testing.T) {
	var ev rawEvent
	if sz := unsafe.Sizeof(ev); sz != 56 {
		t.Errorf("unsafe.Sizeof(rawEvent{})\nhave %d\nwant 56", sz)
	}
	for _, x := range [...]struct {
		name      string
		have, off uintptr
	}{
		{"windowID", unsafe.Offsetof(ev.windowID), 8},
		{"b", unsafe.Offsetof(ev.b), 12},
		{"i", unsafe.Offsetof(ev.i), 16},
		{"mod", unsafe.Offsetof(ev.mod), 24},
	} {
		if x.have != x.off {
			t.Errorf("offset of %s\nhave %d\nwant %d", x.name, x.have, x.off)
		}
	}
}

func TestHandleEvent(t *testing.T) {
	var r recorder
	setRecorder(t, &r)
	win := &fakeWindow{id: 4242, width: 480, height: 360}
	addWindow(win)
	defer win.Close()

	evs := []rawEvent{
		{typ: sdlWindowEvent, windowID: win.id, b: [4]byte{sdlWindowEventFocusGained}},
		{typ: sdlWindowEvent, windowID: win.id, b: [4]byte{sdlWindowEventSizeChanged}, i: [2]int32{800, 600}},
		{typ: sdlKeyDown, windowID: win.id, b: [4]byte{1}, i: [2]int32{41, 27}},
		{typ: sdlKeyUp, windowID: win.id, i: [2]int32{4, 'a'}, mod: sdlModLShift | sdlModCaps},
		{typ: sdlWindowEvent, windowID: win.id, b: [4]byte{sdlWindowEventFocusLost}},
		{typ: sdlWindowEvent, windowID: win.id, b: [4]byte{sdlWindowEventClose}},
		// Ignored.
		{typ: sdlWindowEvent, windowID: win.id, b: [4]byte{3}},
		{typ: 0x400},
		{typ: sdlQuit},
	}
	for i := range evs {
		handleEvent(&evs[i])
	}

	wantCalls := []string{"in", "resize", "key", "key", "out", "close", "quit"}
	if diff := cmp.Diff(wantCalls, r.calls); diff != "" {
		t.Fatalf("handler calls mismatch (-want +have):\n%s", diff)
	}
	for i, w := range r.wins {
		if w != win {
			t.Errorf("handler window %d\nhave %v\nwant %v", i, w, win)
		}
	}
	if diff := cmp.Diff([][2]int{{800, 600}}, r.sizes); diff != "" {
		t.Errorf("resize mismatch (-want +have):\n%s", diff)
	}
	wantKeys := []keyCall{
		{KeyEsc, true, 0},
		{KeyA, false, ModShift | ModCapsLock},
	}
	if diff := cmp.Diff(wantKeys, r.keys); diff != "" {
		t.Errorf("keys mismatch (-want +have):\n%s", diff)
	}
}

func TestHandleEventUnknownWindow(t *testing.T) {
	var r recorder
	setRecorder(t, &r)
	ev := rawEvent{typ: sdlWindowEvent, windowID: 0xdead, b: [4]byte{sdlWindowEventClose}}
	handleEvent(&ev)
	if len(r.wins) != 1 || r.wins[0] != nil {
		t.Fatalf("WindowClose for unknown window\nhave %v\nwant [nil]", r.wins)
	}
}

func TestHandleEventNoHandlers(t *testing.T) {
	SetWindowHandler(nil)
	SetKeyboardHandler(nil)
	SetQuitHandler(nil)
	for _, ev := range [...]rawEvent{
		{typ: sdlQuit},
		{typ: sdlKeyDown, i: [2]int32{41}},
		{typ: sdlWindowEvent, b: [4]byte{sdlWindowEventSizeChanged}},
		{typ: sdlWindowEvent, b: [4]byte{sdlWindowEventClose}},
	} {
		handleEvent(&ev)
	}
}

func TestModFrom(t *testing.T) {
	for _, x := range [...]struct {
		mod  uint16
		want Modifier
	}{
		{0, 0},
		{sdlModLShift, ModShift},
		{sdlModRShift, ModShift},
		{sdlModLCtrl | sdlModRAlt, ModCtrl | ModAlt},
		{sdlModCaps, ModCapsLock},
		{0x1000, 0}, // KMOD_NUM
	} {
		if m := modFrom(x.mod); m != x.want {
			t.Errorf("modFrom(%#x)\nhave %#x\nwant %#x", x.mod, m, x.want)
		}
	}
}
