// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"fmt"

	"github.com/gviegas/sdlvk/internal/dl"
)

// Instance is a Vulkan instance.
type Instance struct {
	h    uintptr
	vers uint32
	exts ExtensionSet
	fn   instanceProcs
}

// NewInstance creates a new instance with the given instance
// extensions enabled.
// Every extension in exts must be advertised by the Vulkan
// implementation, otherwise an *ExtensionError is returned.
// Device extensions in exts are ignored.
// appName must not contain NUL bytes.
func NewInstance(appName string, exts ExtensionSet) (*Instance, error) {
	name, err := dl.CString(appName)
	if err != nil {
		return nil, fmt.Errorf("vk: invalid application name %q: %w", appName, err)
	}
	if err := acquire(); err != nil {
		return nil, err
	}
	inst, err := newInstance(name, exts)
	if err != nil {
		release()
		return nil, err
	}
	return inst, nil
}

func newInstance(appName *byte, exts ExtensionSet) (*Instance, error) {
	exts[ExtSwapchain] = false
	from, err := instanceExts()
	if err != nil {
		return nil, err
	}
	if err := checkExts(exts, from); err != nil {
		return nil, err
	}

	vers := apiVersion10
	if global.enumerateInstanceVersion != nil {
		if checkResult(global.enumerateInstanceVersion(&vers)) != nil {
			vers = apiVersion10
		}
	}
	if isVariant(vers) {
		// Do not support variants.
		return nil, errDriverCompat
	}
	appInfo := applicationInfo{
		sType:            stApplicationInfo,
		pApplicationName: appName,
		pEngineName:      dl.MustCString("sdlvk"),
		apiVersion:       apiVersion10,
	}
	if vers != apiVersion10 {
		appInfo.apiVersion = apiVersion11
	}
	names := exts.Names()
	info := instanceCreateInfo{
		sType:                   stInstanceCreateInfo,
		pApplicationInfo:        &appInfo,
		enabledExtensionCount:   uint32(len(names)),
		ppEnabledExtensionNames: cNames(names),
	}
	var h uintptr
	if err := checkResult(global.createInstance(&info, nil, &h)); err != nil {
		return nil, err
	}
	inst := &Instance{
		h:    h,
		vers: vers,
		exts: exts,
	}
	if err := inst.fn.load(h, exts); err != nil {
		if inst.fn.destroyInstance != nil {
			inst.fn.destroyInstance(h, nil)
		}
		return nil, err
	}
	log().Debug("vk: instance created", "version", versionString(vers), "extensions", names)
	return inst, nil
}

// Destroy destroys the instance.
// Every object created from i must have been destroyed.
func (i *Instance) Destroy() {
	if i == nil || i.h == 0 {
		return
	}
	i.fn.destroyInstance(i.h, nil)
	*i = Instance{}
	release()
}

// Enabled returns the set of extensions that i was created
// with.
func (i *Instance) Enabled() ExtensionSet { return i.exts }

// Handle returns the VkInstance handle.
func (i *Instance) Handle() uintptr { return i.h }

// Version returns the instance-level API version.
func (i *Instance) Version() (major, minor, patch int) {
	major = versionMajor(i.vers)
	minor = versionMinor(i.vers)
	patch = versionPatch(i.vers)
	return
}
