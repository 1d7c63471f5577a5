// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/gviegas/sdlvk/internal/dl"
)

// libNames returns the candidate names of the Vulkan library.
func libNames() []string {
	switch runtime.GOOS {
	case "android":
		return []string{"libvulkan.so"}
	case "windows":
		return []string{"vulkan-1.dll"}
	case "darwin", "ios":
		return []string{"libvulkan.1.dylib", "libvulkan.dylib", "libMoltenVK.dylib"}
	default:
		return []string{"libvulkan.so.1", "libvulkan.so"}
	}
}

// globalProcs holds the procs that can be called without an
// instance.
type globalProcs struct {
	getInstanceProcAddr                  func(inst uintptr, name *byte) uintptr
	enumerateInstanceVersion             func(vers *uint32) int32
	enumerateInstanceExtensionProperties func(layer *byte, n *uint32, props *extensionProperties) int32
	createInstance                       func(info *instanceCreateInfo, alloc unsafe.Pointer, inst *uintptr) int32
}

// The loaded library is shared by all instances.
// It is unloaded when the last reference is released.
var (
	procMu sync.Mutex
	lib    dl.Lib
	global globalProcs
	refs   int
)

// acquire loads the Vulkan library if needed and fetches the
// global procs.
// Every successful call must be paired with a call to release.
func acquire() error {
	procMu.Lock()
	defer procMu.Unlock()
	if refs > 0 {
		refs++
		return nil
	}
	l, err := dl.Open(libNames()...)
	if err != nil {
		log().Debug("vk: library not loaded", "err", err)
		return fmt.Errorf("%w: %v", ErrNotInstalled, err)
	}
	var g globalProcs
	if !l.BindSym(&g.getInstanceProcAddr, "vkGetInstanceProcAddr") {
		l.Close()
		return ErrNotInstalled
	}
	proc := func(fptr any, name string) bool {
		return dl.Bind(fptr, g.getInstanceProcAddr(0, dl.MustCString(name)))
	}
	// vkEnumerateInstanceVersion is absent from 1.0 loaders.
	proc(&g.enumerateInstanceVersion, "vkEnumerateInstanceVersion")
	if !proc(&g.enumerateInstanceExtensionProperties, "vkEnumerateInstanceExtensionProperties") ||
		!proc(&g.createInstance, "vkCreateInstance") {
		l.Close()
		return ErrNotInstalled
	}
	lib = l
	global = g
	refs = 1
	log().Debug("vk: library loaded", "name", l.Name())
	return nil
}

// release drops a reference acquired by acquire.
func release() {
	procMu.Lock()
	defer procMu.Unlock()
	switch refs {
	case 0:
		panic("vk.release called without a matching acquire")
	case 1:
		lib.Close()
		global = globalProcs{}
		log().Debug("vk: library unloaded")
	}
	refs--
}

// instanceProcs holds the instance-level procs of an Instance.
// Procs of extensions that were not enabled are nil.
type instanceProcs struct {
	destroyInstance                        func(inst uintptr, alloc unsafe.Pointer)
	enumeratePhysicalDevices               func(inst uintptr, n *uint32, devs *uintptr) int32
	getPhysicalDeviceProperties            func(pdev uintptr, props *physicalDeviceProperties)
	getPhysicalDeviceQueueFamilyProperties func(pdev uintptr, n *uint32, props *queueFamilyProperties)
	enumerateDeviceExtensionProperties     func(pdev uintptr, layer *byte, n *uint32, props *extensionProperties) int32
	createDevice                           func(pdev uintptr, info *deviceCreateInfo, alloc unsafe.Pointer, dev *uintptr) int32
	getDeviceProcAddr                      func(dev uintptr, name *byte) uintptr

	// VK_KHR_surface.
	destroySurface         func(inst uintptr, sf uint64, alloc unsafe.Pointer)
	getSurfaceSupport      func(pdev uintptr, qfam uint32, sf uint64, supported *uint32) int32
	getSurfaceCapabilities func(pdev uintptr, sf uint64, capab *surfaceCapabilities) int32
	getSurfaceFormats      func(pdev uintptr, sf uint64, n *uint32, fmts *surfaceFormat) int32
	getSurfacePresentModes func(pdev uintptr, sf uint64, n *uint32, modes *uint32) int32

	// Platform surfaces.
	createXlibSurface    func(inst uintptr, info *xlibSurfaceCreateInfo, alloc unsafe.Pointer, sf *uint64) int32
	createWaylandSurface func(inst uintptr, info *waylandSurfaceCreateInfo, alloc unsafe.Pointer, sf *uint64) int32
	createWin32Surface   func(inst uintptr, info *win32SurfaceCreateInfo, alloc unsafe.Pointer, sf *uint64) int32
	createAndroidSurface func(inst uintptr, info *androidSurfaceCreateInfo, alloc unsafe.Pointer, sf *uint64) int32
}

// load fetches the procs of inst.
// exts must be the set of extensions inst was created with.
func (p *instanceProcs) load(inst uintptr, exts ExtensionSet) error {
	proc := func(fptr any, name string) bool {
		return dl.Bind(fptr, global.getInstanceProcAddr(inst, dl.MustCString(name)))
	}
	if !proc(&p.destroyInstance, "vkDestroyInstance") ||
		!proc(&p.enumeratePhysicalDevices, "vkEnumeratePhysicalDevices") ||
		!proc(&p.getPhysicalDeviceProperties, "vkGetPhysicalDeviceProperties") ||
		!proc(&p.getPhysicalDeviceQueueFamilyProperties, "vkGetPhysicalDeviceQueueFamilyProperties") ||
		!proc(&p.enumerateDeviceExtensionProperties, "vkEnumerateDeviceExtensionProperties") ||
		!proc(&p.createDevice, "vkCreateDevice") ||
		!proc(&p.getDeviceProcAddr, "vkGetDeviceProcAddr") {
		return errInitFailed
	}
	if exts.Has(ExtSurface) {
		if !proc(&p.destroySurface, "vkDestroySurfaceKHR") ||
			!proc(&p.getSurfaceSupport, "vkGetPhysicalDeviceSurfaceSupportKHR") ||
			!proc(&p.getSurfaceCapabilities, "vkGetPhysicalDeviceSurfaceCapabilitiesKHR") ||
			!proc(&p.getSurfaceFormats, "vkGetPhysicalDeviceSurfaceFormatsKHR") ||
			!proc(&p.getSurfacePresentModes, "vkGetPhysicalDeviceSurfacePresentModesKHR") {
			return &ExtensionError{Name: ExtSurface.Name()}
		}
	}
	// A missing constructor is reported when the surface is
	// created, not here.
	if exts.Has(ExtXlibSurface) {
		proc(&p.createXlibSurface, "vkCreateXlibSurfaceKHR")
	}
	if exts.Has(ExtWaylandSurface) {
		proc(&p.createWaylandSurface, "vkCreateWaylandSurfaceKHR")
	}
	if exts.Has(ExtWin32Surface) {
		proc(&p.createWin32Surface, "vkCreateWin32SurfaceKHR")
	}
	if exts.Has(ExtAndroidSurface) {
		proc(&p.createAndroidSurface, "vkCreateAndroidSurfaceKHR")
	}
	return nil
}
