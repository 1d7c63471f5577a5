// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"errors"
	"testing"
	"unsafe"
)

func TestChooseExtent(t *testing.T) {
	fixed := surfaceCapabilities{
		currentExtent:  extent2D{800, 600},
		minImageExtent: extent2D{800, 600},
		maxImageExtent: extent2D{800, 600},
	}
	free := surfaceCapabilities{
		currentExtent:  extent2D{^uint32(0), ^uint32(0)},
		minImageExtent: extent2D{1, 1},
		maxImageExtent: extent2D{4096, 4096},
	}
	minimized := surfaceCapabilities{
		currentExtent: extent2D{0, 0},
	}
	for _, x := range [...]struct {
		capab *surfaceCapabilities
		w, h  int
		err   error
	}{
		{&fixed, 800, 600, nil},
		{&fixed, 801, 600, ErrUnsupportedDimensions},
		{&fixed, 640, 480, ErrUnsupportedDimensions},
		{&free, 640, 480, nil},
		{&free, 4096, 1, nil},
		{&free, 4097, 480, ErrUnsupportedDimensions},
		{&free, 0, 480, ErrUnsupportedDimensions},
		{&free, 640, -1, ErrUnsupportedDimensions},
		{&minimized, 0, 0, ErrUnsupportedDimensions},
		{&minimized, 640, 480, ErrUnsupportedDimensions},
	} {
		ext, err := chooseExtent(x.capab, x.w, x.h)
		if !errors.Is(err, x.err) || (err == nil) != (x.err == nil) {
			t.Errorf("chooseExtent(%v, %d, %d)\nhave %v\nwant %v", *x.capab, x.w, x.h, err, x.err)
			continue
		}
		if err == nil && (int(ext.width) != x.w || int(ext.height) != x.h) {
			t.Errorf("chooseExtent(%v, %d, %d)\nhave %v\nwant {%d %d}", *x.capab, x.w, x.h, ext, x.w, x.h)
		}
	}
}

func TestChooseImageCount(t *testing.T) {
	for _, x := range [...]struct {
		min, max uint32
		n        int
		want     uint32
	}{
		{2, 8, 3, 3},
		{2, 8, 1, 2},
		{2, 8, 0, 2},
		{2, 8, 16, 8},
		{1, 0, 16, 16},
		{3, 3, 2, 3},
	} {
		capab := surfaceCapabilities{minImageCount: x.min, maxImageCount: x.max}
		if n := chooseImageCount(&capab, x.n); n != x.want {
			t.Errorf("chooseImageCount([%d, %d], %d)\nhave %d\nwant %d", x.min, x.max, x.n, n, x.want)
		}
	}
}

func TestChooseFormat(t *testing.T) {
	for _, x := range [...]struct {
		fmts []surfaceFormat
		want surfaceFormat
	}{
		{nil, surfaceFormat{formatB8G8R8A8Unorm, colorSpaceSRGBNonlinear}},
		{[]surfaceFormat{{formatUndefined, 0}}, surfaceFormat{formatB8G8R8A8Unorm, colorSpaceSRGBNonlinear}},
		{
			[]surfaceFormat{{formatR8G8B8A8Unorm, 0}, {formatB8G8R8A8SRGB, 0}},
			surfaceFormat{formatB8G8R8A8SRGB, 0},
		},
		{
			[]surfaceFormat{{formatR8G8B8A8Unorm, 0}, {formatB8G8R8A8Unorm, 0}},
			surfaceFormat{formatB8G8R8A8Unorm, 0},
		},
		{
			[]surfaceFormat{{97, 0}, {formatR8G8B8A8SRGB, 1000104001}},
			surfaceFormat{97, 0},
		},
	} {
		if f := chooseFormat(x.fmts); f != x.want {
			t.Errorf("chooseFormat(%v)\nhave %v\nwant %v", x.fmts, f, x.want)
		}
	}
}

func TestChoosePresentMode(t *testing.T) {
	all := []uint32{presentModeFIFO, presentModeImmediate, presentModeMailbox}
	for _, x := range [...]struct {
		modes []uint32
		vsync bool
		want  uint32
	}{
		{all, true, presentModeFIFO},
		{all, false, presentModeMailbox},
		{[]uint32{presentModeFIFO, presentModeImmediate}, false, presentModeImmediate},
		{[]uint32{presentModeFIFO, presentModeFIFORelaxed}, false, presentModeFIFO},
		{nil, false, presentModeFIFO},
	} {
		if m := choosePresentMode(x.modes, x.vsync); m != x.want {
			t.Errorf("choosePresentMode(%v, %t)\nhave %d\nwant %d", x.modes, x.vsync, m, x.want)
		}
	}
}

func TestChooseCompositeAlpha(t *testing.T) {
	for _, x := range [...]struct {
		supported, want uint32
	}{
		{0x1, 0x1},
		{0x1 | 0x8, 0x1},
		{0x2 | 0x4, 0x2},
		{0x8, 0x8},
		{0, compositeAlphaOpaqueBit},
	} {
		if a := chooseCompositeAlpha(x.supported); a != x.want {
			t.Errorf("chooseCompositeAlpha(%#x)\nhave %#x\nwant %#x", x.supported, a, x.want)
		}
	}
}

// stubSwapchain returns a swapchain with handle 7 whose procs
// report capab and a single format and present mode.
// createSwapchain fails with createRes when it is an error.
func stubSwapchain(capab surfaceCapabilities, createRes int32, creates, destroys *int) *Swapchain {
	inst := &Instance{h: 1}
	inst.fn.getSurfaceCapabilities = func(_ uintptr, _ uint64, c *surfaceCapabilities) int32 {
		*c = capab
		return resSuccess
	}
	inst.fn.getSurfaceFormats = func(_ uintptr, _ uint64, n *uint32, fmts *surfaceFormat) int32 {
		if fmts != nil {
			*fmts = surfaceFormat{formatB8G8R8A8SRGB, colorSpaceSRGBNonlinear}
		}
		*n = 1
		return resSuccess
	}
	inst.fn.getSurfacePresentModes = func(_ uintptr, _ uint64, n *uint32, modes *uint32) int32 {
		if modes != nil {
			*modes = presentModeFIFO
		}
		*n = 1
		return resSuccess
	}
	dev := &Device{pdev: &PhysicalDevice{inst: inst, h: 2}, h: 3}
	dev.fn.createSwapchain = func(_ uintptr, info *swapchainCreateInfo, _ unsafe.Pointer, sc *uint64) int32 {
		*creates++
		if info.oldSwapchain != 7 {
			return resErrUnknown
		}
		if createRes != resSuccess {
			return createRes
		}
		*sc = 8
		return resSuccess
	}
	dev.fn.destroySwapchain = func(_ uintptr, sc uint64, _ unsafe.Pointer) {
		if sc == 7 {
			*destroys++
		}
	}
	sf := &Surface{inst: inst, h: 5}
	return &Swapchain{dev: dev, sf: sf, h: 7}
}

func TestRecreateFailure(t *testing.T) {
	free := surfaceCapabilities{
		minImageCount:           2,
		currentExtent:           extent2D{^uint32(0), ^uint32(0)},
		minImageExtent:          extent2D{1, 1},
		maxImageExtent:          extent2D{4096, 4096},
		supportedCompositeAlpha: compositeAlphaOpaqueBit,
		supportedUsageFlags:     imageUsageColorAttachmentBit | imageUsageTransferDstBit,
	}
	minimized := free
	minimized.maxImageExtent = extent2D{}
	noDst := free
	noDst.supportedUsageFlags = imageUsageColorAttachmentBit

	for _, x := range [...]struct {
		capab     surfaceCapabilities
		createRes int32
		w, h      int
		err       error
		creates   int
	}{
		// Rejected before the current swapchain is retired.
		{minimized, resSuccess, 640, 480, ErrUnsupportedDimensions, 0},
		{free, resSuccess, 0, 480, ErrUnsupportedDimensions, 0},
		{noDst, resSuccess, 640, 480, errNoTransferDst, 0},
		// Rejected by vkCreateSwapchainKHR.
		{free, resErrOutOfHostMemory, 640, 480, ErrNoHostMemory, 1},
		{free, resErrNativeWindowInUse, 640, 480, ErrNativeWindowInUse, 1},
	} {
		var creates, destroys int
		s := stubSwapchain(x.capab, x.createRes, &creates, &destroys)
		err := s.Recreate(x.w, x.h)
		if !errors.Is(err, x.err) {
			t.Errorf("Swapchain.Recreate(%d, %d)\nhave %v\nwant %v", x.w, x.h, err, x.err)
		}
		if creates != x.creates {
			t.Errorf("Swapchain.Recreate(%d, %d): vkCreateSwapchainKHR calls\nhave %d\nwant %d", x.w, x.h, creates, x.creates)
		}
		// The old handle is kept so that Destroy can release it.
		if s.h != 7 || destroys != 0 {
			t.Errorf("Swapchain.Recreate(%d, %d): handle, destroy calls\nhave %d, %d\nwant 7, 0", x.w, x.h, s.h, destroys)
		}
		s.Destroy()
		if destroys != 1 {
			t.Errorf("Swapchain.Destroy: destroy calls\nhave %d\nwant 1", destroys)
		}
	}
}
