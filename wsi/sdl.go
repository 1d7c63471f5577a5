// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gviegas/sdlvk/internal/dl"
)

// SDL constants.
const (
	sdlInitVideo = 0x20

	sdlWindowShown     = 0x4
	sdlWindowHidden    = 0x8
	sdlWindowResizable = 0x20
	sdlWindowVulkan    = 0x10000000

	sdlWindowPosUndefined = 0x1FFF0000

	sdlTrue = 1
)

// sdlLibNames returns the names of the SDL2 shared library
// for the current system, in order of preference.
func sdlLibNames() []string {
	switch runtime.GOOS {
	case "android":
		return []string{"libSDL2.so"}
	case "windows":
		return []string{"SDL2.dll"}
	case "darwin", "ios":
		return []string{"libSDL2-2.0.0.dylib", "libSDL2.dylib"}
	default:
		return []string{"libSDL2-2.0.so.0", "libSDL2-2.0.so", "libSDL2.so"}
	}
}

// sdlProcs holds the SDL2 entry points used by wsi.
type sdlProcs struct {
	init            func(flags uint32) int32
	quit            func()
	getVersion      func(v *Version)
	getError        func() *byte
	setHint         func(name, value *byte) int32
	createWindow    func(title *byte, x, y, w, h int32, flags uint32) uintptr
	destroyWindow   func(win uintptr)
	showWindow      func(win uintptr)
	hideWindow      func(win uintptr)
	setWindowSize   func(win uintptr, w, h int32)
	getWindowSize   func(win uintptr, w, h *int32)
	setWindowTitle  func(win uintptr, title *byte)
	getWindowID     func(win uintptr) uint32
	getWindowWMInfo func(win uintptr, info *rawSysInfo) int32
	pollEvent       func(ev *rawEvent) int32
}

// Handle for the shared object.
var (
	libSDL dl.Lib
	sdl    sdlProcs
)

// Version of the linked library.
var linkedSDL Version

// openSDL opens the shared library and gets function pointers.
// It is not safe to call any of the procs in sdl unless this
// function succeeds.
func openSDL() error {
	if libSDL.Valid() {
		return nil
	}
	l, err := dl.Open(sdlLibNames()...)
	if err != nil {
		return fmt.Errorf("wsi: failed to open SDL2: %w", err)
	}
	var p sdlProcs
	for _, x := range [...]struct {
		fptr any
		name string
	}{
		{&p.init, "SDL_Init"},
		{&p.quit, "SDL_Quit"},
		{&p.getVersion, "SDL_GetVersion"},
		{&p.getError, "SDL_GetError"},
		{&p.setHint, "SDL_SetHint"},
		{&p.createWindow, "SDL_CreateWindow"},
		{&p.destroyWindow, "SDL_DestroyWindow"},
		{&p.showWindow, "SDL_ShowWindow"},
		{&p.hideWindow, "SDL_HideWindow"},
		{&p.setWindowSize, "SDL_SetWindowSize"},
		{&p.getWindowSize, "SDL_GetWindowSize"},
		{&p.setWindowTitle, "SDL_SetWindowTitle"},
		{&p.getWindowID, "SDL_GetWindowID"},
		{&p.getWindowWMInfo, "SDL_GetWindowWMInfo"},
		{&p.pollEvent, "SDL_PollEvent"},
	} {
		if !l.BindSym(x.fptr, x.name) {
			l.Close()
			return fmt.Errorf("wsi: failed to fetch SDL2 symbol %s", x.name)
		}
	}
	libSDL = l
	sdl = p
	return nil
}

// closeSDL closes the shared library.
// It is not safe to call any of the procs in sdl after
// calling this function.
func closeSDL() {
	if libSDL.Valid() {
		libSDL.Close()
		sdl = sdlProcs{}
	}
}

// initSDL initializes the SDL platform.
func initSDL() error {
	if err := openSDL(); err != nil {
		return err
	}
	if sdl.init(sdlInitVideo) != 0 {
		msg, _ := lastErrorSDL()
		closeSDL()
		return errors.New("wsi: SDL_Init failed: " + msg)
	}
	sdl.getVersion(&linkedSDL)
	newWindow = newWindowSDL
	dispatch = dispatchSDL
	setAppName = setAppNameSDL
	platform = SDL
	return nil
}

// deinitSDL closes every window and shuts SDL down.
func deinitSDL() {
	if windowCount > 0 {
		for _, w := range createdWindows {
			if w != nil {
				w.Close()
			}
		}
	}
	if libSDL.Valid() {
		sdl.quit()
	}
	closeSDL()
	initDummy()
}

// lastErrorSDL returns the message from SDL_GetError.
// It fails if SDL is not loaded.
func lastErrorSDL() (string, bool) {
	if sdl.getError == nil {
		return "", false
	}
	return dl.GoString(sdl.getError())
}

// setAppNameSDL sets the SDL_APP_NAME hint.
// Names containing NUL bytes are ignored.
func setAppNameSDL(s string) {
	name, err := dl.CString(s)
	if err != nil {
		return
	}
	sdl.setHint(dl.MustCString("SDL_APP_NAME"), name)
}

// dispatchSDL dispatches queued events.
func dispatchSDL() {
	var ev rawEvent
	for sdl.pollEvent(&ev) != 0 {
		handleEvent(&ev)
	}
}
