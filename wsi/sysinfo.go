// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"fmt"
	"unsafe"
)

// Subsystem identifies the window system that backs a
// window (SDL_SYSWM_TYPE).
type Subsystem uint32

// Subsystems.
const (
	SysUnknown Subsystem = iota
	SysWindows
	SysX11
	SysDirectFB
	SysCocoa
	SysUIKit
	SysWayland
	SysMir
	SysWinRT
	SysAndroid
	SysVivante
	SysOS2
	SysHaiku
	SysKMSDRM
	SysRISCOS
)

var subsystemNames = [...]string{
	SysUnknown:  "Unknown",
	SysWindows:  "Windows",
	SysX11:      "X11",
	SysDirectFB: "DirectFB",
	SysCocoa:    "Cocoa",
	SysUIKit:    "UIKit",
	SysWayland:  "Wayland",
	SysMir:      "Mir",
	SysWinRT:    "WinRT",
	SysAndroid:  "Android",
	SysVivante:  "Vivante",
	SysOS2:      "OS2",
	SysHaiku:    "Haiku",
	SysKMSDRM:   "KMSDRM",
	SysRISCOS:   "RISCOS",
}

func (s Subsystem) String() string {
	if int(s) < len(subsystemNames) {
		return subsystemNames[s]
	}
	return fmt.Sprintf("Subsystem(%d)", uint32(s))
}

// Version is a toolkit version number.
type Version struct {
	Major, Minor, Patch uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Less returns whether v precedes w.
func (v Version) Less(w Version) bool {
	if v.Major != w.Major {
		return v.Major < w.Major
	}
	if v.Minor != w.Minor {
		return v.Minor < w.Minor
	}
	return v.Patch < w.Patch
}

// layoutVersion is the SDL version whose SDL_SysWMinfo
// layout rawSysInfo mirrors.
var layoutVersion = Version{2, 0, 22}

// negotiateVersion returns the version to stamp into
// SDL_SysWMinfo, given the version of the linked library.
// A newer library accepts older stamps, but an older
// library rejects stamps it does not know.
func negotiateVersion(linked Version) Version {
	if linked.Less(layoutVersion) {
		return linked
	}
	return layoutVersion
}

// X11Info holds the native handles of an X11 window.
type X11Info struct {
	Display uintptr // Display*
	Window  uintptr // Window
}

// WaylandInfo holds the native handles of a Wayland window.
type WaylandInfo struct {
	Display uintptr // wl_display*
	Surface uintptr // wl_surface*
}

// WindowsInfo holds the native handles of a Win32 window.
type WindowsInfo struct {
	Window   uintptr // HWND
	HDC      uintptr // HDC
	Instance uintptr // HINSTANCE
}

// AndroidInfo holds the native handles of an Android window.
type AndroidInfo struct {
	Window  uintptr // ANativeWindow*
	Surface uintptr // EGLSurface
}

// SysInfo is the window system information of a window.
// Only the field that matches Subsystem is populated.
type SysInfo struct {
	Version   Version
	Subsystem Subsystem
	X11       X11Info
	Wayland   WaylandInfo
	Windows   WindowsInfo
	Android   AndroidInfo
}

// rawSysInfo mirrors SDL_SysWMinfo.
type rawSysInfo struct {
	_         [0]uintptr
	version   Version
	_         uint8
	subsystem uint32
	info      [64]byte
}

// slot returns the i-th pointer-sized value of the info
// union.
func (r *rawSysInfo) slot(i int) uintptr {
	const n = unsafe.Sizeof(uintptr(0))
	return *(*uintptr)(unsafe.Pointer(&r.info[uintptr(i)*n]))
}

// setSlot sets the i-th pointer-sized value of the info
// union.
func (r *rawSysInfo) setSlot(i int, v uintptr) {
	const n = unsafe.Sizeof(uintptr(0))
	*(*uintptr)(unsafe.Pointer(&r.info[uintptr(i)*n])) = v
}

// decode converts r into a SysInfo.
// Union members of unsupported subsystems are not decoded.
func (r *rawSysInfo) decode() SysInfo {
	info := SysInfo{
		Version:   r.version,
		Subsystem: Subsystem(r.subsystem),
	}
	switch info.Subsystem {
	case SysX11:
		info.X11 = X11Info{r.slot(0), r.slot(1)}
	case SysWayland:
		info.Wayland = WaylandInfo{r.slot(0), r.slot(1)}
	case SysWindows:
		info.Windows = WindowsInfo{r.slot(0), r.slot(1), r.slot(2)}
	case SysAndroid:
		info.Android = AndroidInfo{r.slot(0), r.slot(1)}
	}
	return info
}
