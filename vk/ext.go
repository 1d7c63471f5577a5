// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"unsafe"

	"github.com/gviegas/sdlvk/internal/dl"
)

// Extension identifies a Vulkan extension known to this
// package.
type Extension int

// Instance extensions.
const (
	ExtSurface Extension = iota
	ExtDisplay
	ExtAndroidSurface
	ExtWaylandSurface
	ExtWin32Surface
	ExtXCBSurface
	ExtXlibSurface

	// Device extensions.
	ExtSwapchain

	extN
)

var extNames = [extN]string{
	ExtSurface:        "VK_KHR_surface",
	ExtDisplay:        "VK_KHR_display",
	ExtAndroidSurface: "VK_KHR_android_surface",
	ExtWaylandSurface: "VK_KHR_wayland_surface",
	ExtWin32Surface:   "VK_KHR_win32_surface",
	ExtXCBSurface:     "VK_KHR_xcb_surface",
	ExtXlibSurface:    "VK_KHR_xlib_surface",
	ExtSwapchain:      "VK_KHR_swapchain",
}

// Name returns the extension name as used by the Vulkan API.
func (e Extension) Name() string {
	if e < 0 || e >= extN {
		panic("vk.Extension.Name called with invalid extension")
	}
	return extNames[e]
}

func (e Extension) String() string { return e.Name() }

// IsInstance returns whether e is an instance extension.
func (e Extension) IsInstance() bool { return e < ExtSwapchain }

// ExtensionNamed returns the Extension whose name is name.
func ExtensionNamed(name string) (Extension, bool) {
	for i, s := range extNames {
		if s == name {
			return Extension(i), true
		}
	}
	return -1, false
}

// ExtensionSet is a set of extensions, indexed by Extension.
type ExtensionSet [extN]bool

// NewExtensionSet returns a set containing exts.
func NewExtensionSet(exts ...Extension) (s ExtensionSet) {
	for _, e := range exts {
		s.Add(e)
	}
	return
}

// Add adds e to s.
func (s *ExtensionSet) Add(e Extension) { s[e] = true }

// Has returns whether s contains e.
func (s ExtensionSet) Has(e Extension) bool { return s[e] }

// Len returns the number of extensions in s.
func (s ExtensionSet) Len() (n int) {
	for _, x := range s {
		if x {
			n++
		}
	}
	return
}

// Names returns the names of the extensions in s, in
// Extension order.
func (s ExtensionSet) Names() []string {
	var names []string
	for i, x := range s {
		if x {
			names = append(names, extNames[i])
		}
	}
	return names
}

// Map returns s as a map from extension name to whether the
// extension is required.
// Every known extension is present in the map.
func (s ExtensionSet) Map() map[string]bool {
	m := make(map[string]bool, extN)
	for i, x := range s {
		m[extNames[i]] = x
	}
	return m
}

// InstanceExtensions returns the names of all instance
// extensions advertised by the Vulkan implementation.
func InstanceExtensions() ([]string, error) {
	if err := acquire(); err != nil {
		return nil, err
	}
	defer release()
	return instanceExts()
}

// instanceExts is like InstanceExtensions, but assumes that
// the library is loaded.
func instanceExts() (exts []string, err error) {
	var n uint32
	if err = checkResult(global.enumerateInstanceExtensionProperties(nil, &n, nil)); err != nil {
		return
	}
	if n == 0 {
		return
	}
	props := make([]extensionProperties, n)
	if err = checkResult(global.enumerateInstanceExtensionProperties(nil, &n, unsafe.SliceData(props))); err != nil {
		return
	}
	return extNamesOf(props[:n]), nil
}

// extNamesOf extracts the extension names from props.
func extNamesOf(props []extensionProperties) []string {
	exts := make([]string, len(props))
	for i := range props {
		exts[i] = dl.FixedString(props[i].extensionName[:])
	}
	return exts
}

// checkExts checks that every extension in s is present in
// from. It returns an *ExtensionError identifying the first
// missing extension otherwise.
func checkExts(s ExtensionSet, from []string) error {
extLoop:
	for _, e := range s.Names() {
		for _, f := range from {
			if e == f {
				continue extLoop
			}
		}
		return &ExtensionError{Name: e}
	}
	return nil
}

// cNames returns an array of C strings holding names, or nil
// if names is empty.
func cNames(names []string) **byte {
	cs := dl.CStrings(names)
	if cs == nil {
		return nil
	}
	return &cs[0]
}
