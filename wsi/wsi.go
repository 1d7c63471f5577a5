// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package wsi provides window system integration (WSI)
// on top of the SDL2 toolkit.
// SDL2 is loaded at run time. Because a system need not
// have SDL2 nor a window system, WSI is conditionally
// supported.
package wsi

import (
	"errors"
)

// Window is the interface that defines a drawable window.
// The purpose of a window is to provide a surface into
// which a GPU can draw.
type Window interface {
	// Map makes the window visible.
	Map() error

	// Unmap hides the window.
	Unmap() error

	// Resize resizes the window.
	Resize(width, height int) error

	// SetTitle sets the window's title.
	SetTitle(title string) error

	// Close closes the window.
	Close()

	// Width returns the window's width.
	Width() int

	// Height returns the window's height.
	Height() int

	// Title returns the window's title.
	Title() string

	// ID returns the toolkit's identifier for the window.
	ID() uint32

	// SysInfo queries the window system information of
	// the window. It returns false if the query fails,
	// in which case LastError may describe the failure.
	SysInfo() (SysInfo, bool)

	// LastError returns the toolkit's most recent error
	// message. It returns false if the message cannot be
	// retrieved.
	LastError() (string, bool)
}

// ErrMissing means that no wsi implementation is available.
var ErrMissing = errors.New("wsi: no wsi implementation")

// NewWindow creates a new window.
// The window is created hidden.
func NewWindow(width, height int, title string) (Window, error) {
	if windowCount >= MaxWindows {
		return nil, errors.New("wsi: too many windows")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("wsi: width/height less than or equal 0")
	}
	win, err := newWindow(width, height, title)
	if err != nil {
		return nil, err
	}
	addWindow(win)
	return win, nil
}

var newWindow func(int, int, string) (Window, error)

// The maximum number of windows that can exist at any
// given time.
const MaxWindows = 16

// Windows returns all created windows.
// The returned value becomes out of date after calls to
// NewWindow and Window.Close.
func Windows() []Window {
	if windowCount == 0 {
		return nil
	}
	wins := make([]Window, 0, windowCount)
	for i := range createdWindows {
		if createdWindows[i] != nil {
			wins = append(wins, createdWindows[i])
		}
	}
	return wins
}

// addWindow inserts win into createdWindows and
// increments windowCount.
func addWindow(win Window) {
	for i := range createdWindows {
		if createdWindows[i] == nil {
			createdWindows[i] = win
			windowCount++
			return
		}
	}
	panic("wsi.addWindow called with no free slot")
}

// closeWindow removes win from createdWindows and
// decrements windowCount.
// It must be called by implementations on win.Close.
// Note that win must be comparable.
func closeWindow(win Window) {
	for i := range createdWindows {
		if createdWindows[i] == win {
			createdWindows[i] = nil
			windowCount--
			return
		}
	}
}

// windowFromID returns the window in createdWindows whose
// ID matches id, or nil if none does.
func windowFromID(id uint32) Window {
	for _, w := range createdWindows {
		if w != nil && w.ID() == id {
			return w
		}
	}
	return nil
}

var (
	windowCount    int
	createdWindows [MaxWindows]Window
)

// Modifier is the type of modifier flags.
type Modifier int

// Modifier flags.
const (
	ModCapsLock Modifier = 1 << iota
	ModShift
	ModCtrl
	ModAlt
)

// WindowHandler is the interface that defines the methods
// for handling window events.
type WindowHandler interface {
	// WindowClose is called when a window is closed.
	WindowClose(win Window)

	// WindowResize is called when a window is resized.
	WindowResize(win Window, newWidth, newHeight int)
}

// SetWindowHandler sets the global WindowHandler.
func SetWindowHandler(wh WindowHandler) {
	windowHandler = wh
}

var windowHandler WindowHandler

// KeyboardHandler is the interface that defines the methods
// for handling keyboard events.
type KeyboardHandler interface {
	// KeyboardIn is called when focus is gained.
	KeyboardIn(win Window)

	// KeyboardOut is called when focus is lost.
	KeyboardOut(win Window)

	// KeyboardKey is called when a key is pressed/released.
	KeyboardKey(key Key, pressed bool, modMask Modifier)
}

// SetKeyboardHandler sets the global KeyboardHandler.
func SetKeyboardHandler(kh KeyboardHandler) {
	keyboardHandler = kh
}

var keyboardHandler KeyboardHandler

// QuitHandler is the interface that defines the method
// for handling application quit requests.
type QuitHandler interface {
	// Quit is called when the application is asked to
	// terminate (e.g., the last window was closed or the
	// process received SIGINT).
	Quit()
}

// SetQuitHandler sets the global QuitHandler.
func SetQuitHandler(qh QuitHandler) {
	quitHandler = qh
}

var quitHandler QuitHandler

// Dispatch dispatches queued events.
func Dispatch() {
	dispatch()
}

var dispatch func()

// AppName returns the string used to identify the application.
// Its use is platform-specific.
func AppName() string {
	return appName
}

// SetAppName updates the string used to identify the
// application.
// It only affects windows created afterwards.
func SetAppName(s string) {
	setAppName(s)
	appName = s
}

var (
	appName    string
	setAppName func(string)
)

// Platform identifies an underlying platform used to
// implement wsi.
type Platform int

// Platforms.
const (
	// None means that wsi is not available.
	// In this case, calls to NewWindow will
	// always fail, and calls to Dispatch
	// will do nothing.
	None Platform = iota
	// SDL means that wsi is implemented on
	// top of SDL2.
	SDL
)

func (p Platform) String() string {
	switch p {
	case None:
		return "None"
	case SDL:
		return "SDL"
	}
	return "Platform(?)"
}

// PlatformInUse identifies the underlying platform which
// wsi is using.
func PlatformInUse() Platform {
	return platform
}

var platform Platform

// InitError returns the error that caused wsi to fall back
// to the None platform, if any.
func InitError() error {
	return initErr
}

var initErr error

// SubsystemOf returns the window system that backs win.
// It returns SysUnknown if the query fails.
func SubsystemOf(win Window) Subsystem {
	info, ok := win.SysInfo()
	if !ok {
		return SysUnknown
	}
	return info.Subsystem
}

// Shutdown closes every window and releases the underlying
// platform. wsi behaves as None afterwards.
func Shutdown() {
	if platform == SDL {
		deinitSDL()
	}
}
