// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"errors"
	"testing"
	"unsafe"
)

// stubInstance returns an instance whose surface procs are Go
// functions that count their calls.
// Created surfaces have handle 42.
func stubInstance(exts ExtensionSet, creates, destroys *int) *Instance {
	inst := &Instance{h: 1, exts: exts}
	inst.fn.createXlibSurface = func(_ uintptr, info *xlibSurfaceCreateInfo, _ unsafe.Pointer, sf *uint64) int32 {
		*creates++
		*sf = 42
		return 0
	}
	inst.fn.createWaylandSurface = func(_ uintptr, info *waylandSurfaceCreateInfo, _ unsafe.Pointer, sf *uint64) int32 {
		*creates++
		*sf = 42
		return 0
	}
	inst.fn.createWin32Surface = func(_ uintptr, info *win32SurfaceCreateInfo, _ unsafe.Pointer, sf *uint64) int32 {
		*creates++
		*sf = 42
		return 0
	}
	inst.fn.createAndroidSurface = func(_ uintptr, info *androidSurfaceCreateInfo, _ unsafe.Pointer, sf *uint64) int32 {
		*creates++
		*sf = 42
		return 0
	}
	if exts.Has(ExtSurface) {
		inst.fn.destroySurface = func(_ uintptr, sf uint64, _ unsafe.Pointer) {
			if sf == 42 {
				*destroys++
			}
		}
	}
	return inst
}

var surfaceCtors = [...]struct {
	ext Extension
	new func(*Instance) (*Surface, error)
}{
	{ExtXlibSurface, func(i *Instance) (*Surface, error) { return i.NewXlibSurface(1, 2) }},
	{ExtWaylandSurface, func(i *Instance) (*Surface, error) { return i.NewWaylandSurface(1, 2) }},
	{ExtWin32Surface, func(i *Instance) (*Surface, error) { return i.NewWin32Surface(1, 2) }},
	{ExtAndroidSurface, func(i *Instance) (*Surface, error) { return i.NewAndroidSurface(1) }},
}

func TestSurfaceWithoutSurfaceExtension(t *testing.T) {
	for _, x := range surfaceCtors {
		var creates, destroys int
		inst := stubInstance(NewExtensionSet(x.ext), &creates, &destroys)
		sf, err := x.new(inst)
		if sf != nil {
			sf.Destroy()
			t.Errorf("%s without VK_KHR_surface: have surface, want nil", x.ext)
		}
		var ee *ExtensionError
		if !errors.As(err, &ee) || ee.Name != ExtSurface.Name() {
			t.Errorf("%s without VK_KHR_surface: error\nhave %v\nwant *ExtensionError{%s}", x.ext, err, ExtSurface.Name())
		}
		if creates != 0 {
			t.Errorf("%s without VK_KHR_surface: create calls\nhave %d\nwant 0", x.ext, creates)
		}
	}
}

func TestSurfaceWithoutPlatformExtension(t *testing.T) {
	for _, x := range surfaceCtors {
		var creates, destroys int
		inst := stubInstance(NewExtensionSet(ExtSurface), &creates, &destroys)
		sf, err := x.new(inst)
		if sf != nil {
			t.Errorf("%s: have surface, want nil", x.ext)
		}
		var ee *ExtensionError
		if !errors.As(err, &ee) || ee.Name != x.ext.Name() {
			t.Errorf("%s: error\nhave %v\nwant *ExtensionError{%s}", x.ext, err, x.ext.Name())
		}
		if creates != 0 {
			t.Errorf("%s: create calls\nhave %d\nwant 0", x.ext, creates)
		}
	}
}

func TestSurfaceDestroy(t *testing.T) {
	for _, x := range surfaceCtors {
		var creates, destroys int
		inst := stubInstance(NewExtensionSet(ExtSurface, x.ext), &creates, &destroys)
		sf, err := x.new(inst)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", x.ext, err)
		}
		if creates != 1 {
			t.Errorf("%s: create calls\nhave %d\nwant 1", x.ext, creates)
		}
		if h := sf.Handle(); h != 42 {
			t.Errorf("%s: Surface.Handle()\nhave %d\nwant 42", x.ext, h)
		}
		if sf.Instance() != inst {
			t.Errorf("%s: Surface.Instance()\nhave %p\nwant %p", x.ext, sf.Instance(), inst)
		}
		sf.Destroy()
		if destroys != 1 {
			t.Errorf("%s: destroy calls\nhave %d\nwant 1", x.ext, destroys)
		}
		if sf.Handle() != 0 || sf.Instance() != nil {
			t.Errorf("%s: Surface.Destroy(): surface not cleared", x.ext)
		}
		// Calling Destroy again has no effect.
		sf.Destroy()
		if destroys != 1 {
			t.Errorf("%s: destroy calls after second Destroy\nhave %d\nwant 1", x.ext, destroys)
		}
	}
}
