// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"errors"

	"github.com/gviegas/sdlvk/internal/dl"
)

var errInvalidTitle = errors.New("wsi: title contains NUL byte")

// windowSDL implements Window.
type windowSDL struct {
	win    uintptr // SDL_Window*
	id     uint32
	width  int
	height int
	title  string
	hidden bool
}

// newWindowSDL creates a new window.
func newWindowSDL(width, height int, title string) (Window, error) {
	ctitle, err := dl.CString(title)
	if err != nil {
		return nil, errInvalidTitle
	}
	flags := uint32(sdlWindowVulkan | sdlWindowResizable | sdlWindowHidden)
	win := sdl.createWindow(ctitle, sdlWindowPosUndefined, sdlWindowPosUndefined, int32(width), int32(height), flags)
	if win == 0 {
		msg, _ := lastErrorSDL()
		return nil, errors.New("wsi: SDL_CreateWindow failed: " + msg)
	}
	return &windowSDL{
		win:    win,
		id:     sdl.getWindowID(win),
		width:  width,
		height: height,
		title:  title,
		hidden: true,
	}, nil
}

// Map makes the window visible.
func (w *windowSDL) Map() error {
	if !w.hidden {
		return nil
	}
	sdl.showWindow(w.win)
	w.hidden = false
	return nil
}

// Unmap hides the window.
func (w *windowSDL) Unmap() error {
	if w.hidden {
		return nil
	}
	sdl.hideWindow(w.win)
	w.hidden = true
	return nil
}

// Resize resizes the window.
func (w *windowSDL) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("wsi: width/height less than or equal 0")
	}
	if width == w.width && height == w.height {
		return nil
	}
	sdl.setWindowSize(w.win, int32(width), int32(height))
	w.syncSize()
	return nil
}

// syncSize updates the cached dimensions from SDL.
func (w *windowSDL) syncSize() {
	var width, height int32
	sdl.getWindowSize(w.win, &width, &height)
	w.width = int(width)
	w.height = int(height)
}

// SetTitle sets the window's title.
func (w *windowSDL) SetTitle(title string) error {
	if title != w.title {
		ctitle, err := dl.CString(title)
		if err != nil {
			return errInvalidTitle
		}
		sdl.setWindowTitle(w.win, ctitle)
		w.title = title
	}
	return nil
}

// Close closes the window.
func (w *windowSDL) Close() {
	if w != nil && w.win != 0 {
		closeWindow(w)
		if libSDL.Valid() {
			sdl.destroyWindow(w.win)
		}
		*w = windowSDL{}
	}
}

// Width returns the window's width.
func (w *windowSDL) Width() int { return w.width }

// Height returns the window's height.
func (w *windowSDL) Height() int { return w.height }

// Title returns the window's title.
func (w *windowSDL) Title() string { return w.title }

// ID returns the SDL window ID.
func (w *windowSDL) ID() uint32 { return w.id }

// SysInfo calls SDL_GetWindowWMInfo.
// The raw structure is zeroed and version-stamped on
// every call.
// It fails if the window was closed or SDL was shut down.
func (w *windowSDL) SysInfo() (SysInfo, bool) {
	if w.win == 0 || sdl.getWindowWMInfo == nil {
		return SysInfo{}, false
	}
	raw := rawSysInfo{version: negotiateVersion(linkedSDL)}
	if sdl.getWindowWMInfo(w.win, &raw) != sdlTrue {
		return SysInfo{}, false
	}
	return raw.decode(), true
}

// LastError calls SDL_GetError.
func (w *windowSDL) LastError() (string, bool) {
	return lastErrorSDL()
}

func (w *windowSDL) String() string {
	return "wsi.Window(" + w.title + ")"
}
