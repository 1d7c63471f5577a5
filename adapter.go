// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package sdlvk creates Vulkan surfaces from SDL2 windows.
//
// RequiredExtensions tells which instance extensions a
// window needs, and NewSurface builds a surface for the
// window using an instance created with those extensions.
// Neither function retains state between calls.
package sdlvk

import (
	"errors"

	"github.com/gviegas/sdlvk/vk"
	"github.com/gviegas/sdlvk/wsi"
)

// Window is the interface that a window must satisfy to
// be used with this package. wsi.Window satisfies it.
type Window interface {
	// SysInfo queries the window system information.
	SysInfo() (wsi.SysInfo, bool)

	// LastError returns the toolkit's last error message.
	LastError() (string, bool)
}

// Instance is the interface of the surface constructors
// used by NewSurface. *vk.Instance satisfies it.
type Instance interface {
	NewXlibSurface(dpy, win uintptr) (*vk.Surface, error)
	NewWaylandSurface(dpy, sf uintptr) (*vk.Surface, error)
	NewWin32Surface(hinst, hwnd uintptr) (*vk.Surface, error)
	NewAndroidSurface(win uintptr) (*vk.Surface, error)
}

// ExtensionFor returns the surface extension required by
// windows of subsystem s.
// It returns false if s is not supported.
func ExtensionFor(s wsi.Subsystem) (vk.Extension, bool) {
	switch s {
	case wsi.SysX11:
		return vk.ExtXlibSurface, true
	case wsi.SysWayland:
		return vk.ExtWaylandSurface, true
	case wsi.SysWindows:
		return vk.ExtWin32Surface, true
	case wsi.SysAndroid:
		return vk.ExtAndroidSurface, true
	}
	return -1, false
}

// RequiredExtensions returns the instance extensions that
// must be enabled to create a surface for win.
// The set contains VK_KHR_surface and exactly one platform
// surface extension.
func RequiredExtensions(win Window) (vk.ExtensionSet, error) {
	info, err := sysInfo(win)
	if err != nil {
		return vk.ExtensionSet{}, err
	}
	ext, ok := ExtensionFor(info.Subsystem)
	if !ok {
		return vk.ExtensionSet{}, &Error{Kind: PlatformNotSupported}
	}
	return vk.NewExtensionSet(vk.ExtSurface, ext), nil
}

// NewSurface creates a surface for win using inst.
// inst should have been created with the extensions that
// RequiredExtensions returns for win. Otherwise, an error
// of kind MissingExtension is returned.
// Windows whose subsystem has no Vulkan surface extension
// (see ExtensionFor) yield an error of kind
// PlatformNotSupported before any surface constructor is
// called; NewSurface never aborts the process.
// The caller owns the surface and must destroy it before
// inst and win.
func NewSurface(win Window, inst Instance) (*vk.Surface, error) {
	info, err := sysInfo(win)
	if err != nil {
		return nil, err
	}
	if _, ok := ExtensionFor(info.Subsystem); !ok {
		return nil, &Error{Kind: PlatformNotSupported}
	}
	sf, err := newSurface(&info, inst)
	if err != nil {
		return nil, translate(err)
	}
	return sf, nil
}

// newSurface calls the constructor that matches
// info.Subsystem.
func newSurface(info *wsi.SysInfo, inst Instance) (*vk.Surface, error) {
	switch info.Subsystem {
	case wsi.SysX11:
		return inst.NewXlibSurface(info.X11.Display, info.X11.Window)
	case wsi.SysWayland:
		return inst.NewWaylandSurface(info.Wayland.Display, info.Wayland.Surface)
	case wsi.SysWindows:
		return inst.NewWin32Surface(info.Windows.Instance, info.Windows.Window)
	case wsi.SysAndroid:
		return inst.NewAndroidSurface(info.Android.Window)
	}
	panic("sdlvk.newSurface called with unsupported subsystem " + info.Subsystem.String())
}

// translate converts a surface creation error into an
// *Error.
func translate(err error) error {
	var ee *vk.ExtensionError
	switch {
	case errors.As(err, &ee):
		return &Error{Kind: MissingExtension, Name: ee.Name, Err: err}
	case errors.Is(err, vk.ErrNoHostMemory), errors.Is(err, vk.ErrNoDeviceMemory):
		return &Error{Kind: OutOfMemory, Err: err}
	}
	return &Error{Kind: Unknown, Err: err}
}

// sysInfo queries the window system information of win.
func sysInfo(win Window) (wsi.SysInfo, error) {
	info, ok := win.SysInfo()
	if ok {
		return info, nil
	}
	if msg, ok := win.LastError(); ok {
		return wsi.SysInfo{}, &Error{Kind: Generic, Msg: msg}
	}
	return wsi.SysInfo{}, &Error{Kind: Unknown}
}
