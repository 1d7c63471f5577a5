// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

// rawEvent mirrors the parts of SDL_Event used by wsi.
// The window event and keyboard event variants share the
// same leading layout.
type rawEvent struct {
	_         [0]uint64
	typ       uint32
	timestamp uint32
	windowID  uint32
	// Window event ID at b[0].
	// Key state and repeat at b[0] and b[1].
	b [4]byte
	// Window event data1 and data2, or
	// key scancode and keycode.
	i   [2]int32
	mod uint16
	_   [30]byte
}

// SDL event types.
const (
	sdlQuit        = 0x100
	sdlWindowEvent = 0x200
	sdlKeyDown     = 0x300
	sdlKeyUp       = 0x301
)

// SDL window event IDs.
const (
	sdlWindowEventSizeChanged = 6
	sdlWindowEventFocusGained = 12
	sdlWindowEventFocusLost   = 13
	sdlWindowEventClose       = 14
)

// SDL modifier masks.
const (
	sdlModLShift = 0x1
	sdlModRShift = 0x2
	sdlModLCtrl  = 0x40
	sdlModRCtrl  = 0x80
	sdlModLAlt   = 0x100
	sdlModRAlt   = 0x200
	sdlModCaps   = 0x2000
)

// handleEvent routes ev to the registered handlers.
func handleEvent(ev *rawEvent) {
	switch ev.typ {
	case sdlQuit:
		if quitHandler != nil {
			quitHandler.Quit()
		}
	case sdlWindowEvent:
		windowEvent(ev)
	case sdlKeyDown, sdlKeyUp:
		keyEvent(ev)
	}
}

// windowEvent handles SDL_WINDOWEVENT.
func windowEvent(ev *rawEvent) {
	win := windowFromID(ev.windowID)
	switch ev.b[0] {
	case sdlWindowEventSizeChanged:
		newWidth := int(ev.i[0])
		newHeight := int(ev.i[1])
		if w, ok := win.(*windowSDL); ok {
			w.width = newWidth
			w.height = newHeight
		}
		if windowHandler != nil {
			windowHandler.WindowResize(win, newWidth, newHeight)
		}
	case sdlWindowEventClose:
		if windowHandler != nil {
			windowHandler.WindowClose(win)
		}
	case sdlWindowEventFocusGained:
		if keyboardHandler != nil {
			keyboardHandler.KeyboardIn(win)
		}
	case sdlWindowEventFocusLost:
		if keyboardHandler != nil {
			keyboardHandler.KeyboardOut(win)
		}
	}
}

// keyEvent handles SDL_KEYDOWN and SDL_KEYUP.
func keyEvent(ev *rawEvent) {
	if keyboardHandler != nil {
		key := keyFrom(int(ev.i[0]))
		pressed := ev.typ == sdlKeyDown
		keyboardHandler.KeyboardKey(key, pressed, modFrom(ev.mod))
	}
}

// modFrom converts an SDL_Keymod into a Modifier mask.
func modFrom(mod uint16) (m Modifier) {
	if mod&sdlModCaps != 0 {
		m |= ModCapsLock
	}
	if mod&(sdlModLShift|sdlModRShift) != 0 {
		m |= ModShift
	}
	if mod&(sdlModLCtrl|sdlModRCtrl) != 0 {
		m |= ModCtrl
	}
	if mod&(sdlModLAlt|sdlModRAlt) != 0 {
		m |= ModAlt
	}
	return
}
