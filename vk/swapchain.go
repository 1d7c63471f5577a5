// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"errors"
	"math"
	"unsafe"
)

// SwapchainConfig configures swapchain creation.
type SwapchainConfig struct {
	// ImageCount is the desired number of images.
	// It is clamped to the surface's limits.
	ImageCount int
	// VSync selects FIFO presentation. Otherwise, mailbox or
	// immediate modes are preferred when available.
	VSync bool
}

// Swapchain is a swapchain bound to a Surface.
type Swapchain struct {
	dev    *Device
	sf     *Surface
	cfg    SwapchainConfig
	h      uint64
	format uint32
	extent extent2D
	imgs   []uint64
}

var errNoTransferDst = errors.New("vk: swapchain images cannot be transfer destinations")

// NewSwapchain creates a new swapchain for sf with the given
// dimensions.
// It returns ErrUnsupportedDimensions if width and height are
// not currently acceptable for the surface.
func (d *Device) NewSwapchain(sf *Surface, width, height int, cfg SwapchainConfig) (*Swapchain, error) {
	if sf.inst != d.pdev.inst {
		panic("vk.Device.NewSwapchain called with surface from another instance")
	}
	s := &Swapchain{
		dev: d,
		sf:  sf,
		cfg: cfg,
	}
	if err := s.create(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// Recreate recreates the swapchain with new dimensions.
// Failures detected before vkCreateSwapchainKHR is called,
// such as ErrUnsupportedDimensions or a failed surface query,
// leave the current swapchain valid.
// If vkCreateSwapchainKHR itself or the image query fails,
// the current swapchain is retired regardless. In that case,
// s cannot acquire images anymore and must be recreated or
// destroyed.
func (s *Swapchain) Recreate(width, height int) error {
	return s.create(width, height)
}

// create creates a new VkSwapchainKHR, retiring the current
// one if any.
func (s *Swapchain) create(width, height int) error {
	ifn := &s.dev.pdev.inst.fn
	pdev := s.dev.pdev.h

	var capab surfaceCapabilities
	if err := checkResult(ifn.getSurfaceCapabilities(pdev, s.sf.h, &capab)); err != nil {
		return err
	}
	extent, err := chooseExtent(&capab, width, height)
	if err != nil {
		return err
	}
	if capab.supportedUsageFlags&imageUsageTransferDstBit == 0 {
		return errNoTransferDst
	}

	var n uint32
	if err := checkResult(ifn.getSurfaceFormats(pdev, s.sf.h, &n, nil)); err != nil {
		return err
	}
	fmts := make([]surfaceFormat, n)
	if n > 0 {
		if err := checkResult(ifn.getSurfaceFormats(pdev, s.sf.h, &n, unsafe.SliceData(fmts))); err != nil {
			return err
		}
	}
	if err := checkResult(ifn.getSurfacePresentModes(pdev, s.sf.h, &n, nil)); err != nil {
		return err
	}
	modes := make([]uint32, n)
	if n > 0 {
		if err := checkResult(ifn.getSurfacePresentModes(pdev, s.sf.h, &n, unsafe.SliceData(modes))); err != nil {
			return err
		}
	}
	sfmt := chooseFormat(fmts)

	info := swapchainCreateInfo{
		sType:            stSwapchainCreateInfo,
		surface:          s.sf.h,
		minImageCount:    chooseImageCount(&capab, s.cfg.ImageCount),
		imageFormat:      sfmt.format,
		imageColorSpace:  sfmt.colorSpace,
		imageExtent:      extent,
		imageArrayLayers: 1,
		imageUsage:       imageUsageColorAttachmentBit | imageUsageTransferDstBit,
		imageSharingMode: sharingModeExclusive,
		preTransform:     capab.currentTransform,
		compositeAlpha:   chooseCompositeAlpha(capab.supportedCompositeAlpha),
		presentMode:      choosePresentMode(modes, s.cfg.VSync),
		clipped:          vkTrue,
		oldSwapchain:     s.h,
	}
	var sc uint64
	if err := checkResult(s.dev.fn.createSwapchain(s.dev.h, &info, nil, &sc)); err != nil {
		return err
	}
	if err := checkResult(s.dev.fn.getSwapchainImages(s.dev.h, sc, &n, nil)); err != nil {
		s.dev.fn.destroySwapchain(s.dev.h, sc, nil)
		return err
	}
	imgs := make([]uint64, n)
	if err := checkResult(s.dev.fn.getSwapchainImages(s.dev.h, sc, &n, unsafe.SliceData(imgs))); err != nil {
		s.dev.fn.destroySwapchain(s.dev.h, sc, nil)
		return err
	}
	if s.h != 0 {
		// The retired swapchain may still be in use.
		s.dev.WaitIdle()
		s.dev.fn.destroySwapchain(s.dev.h, s.h, nil)
	}
	s.h = sc
	s.format = sfmt.format
	s.extent = extent
	s.imgs = imgs[:n]
	log().Debug("vk: swapchain created", "width", extent.width, "height", extent.height, "images", n)
	return nil
}

// chooseExtent validates the requested dimensions against the
// surface capabilities.
func chooseExtent(capab *surfaceCapabilities, width, height int) (extent2D, error) {
	if capab.maxImageExtent.width == 0 || capab.maxImageExtent.height == 0 {
		// Minimized windows report a zero maximum extent.
		return extent2D{}, ErrUnsupportedDimensions
	}
	if width <= 0 || height <= 0 || uint64(width) > math.MaxUint32 || uint64(height) > math.MaxUint32 {
		return extent2D{}, ErrUnsupportedDimensions
	}
	ext := extent2D{uint32(width), uint32(height)}
	if capab.currentExtent.width != ^uint32(0) && capab.currentExtent != ext {
		return extent2D{}, ErrUnsupportedDimensions
	}
	if ext.width < capab.minImageExtent.width || ext.width > capab.maxImageExtent.width ||
		ext.height < capab.minImageExtent.height || ext.height > capab.maxImageExtent.height {
		return extent2D{}, ErrUnsupportedDimensions
	}
	return ext, nil
}

// chooseImageCount clamps n to the surface limits.
func chooseImageCount(capab *surfaceCapabilities, n int) uint32 {
	nimg := uint32(max(n, 1))
	if capab.minImageCount > nimg {
		nimg = capab.minImageCount
	} else if capab.maxImageCount != 0 && capab.maxImageCount < nimg {
		nimg = capab.maxImageCount
	}
	return nimg
}

// chooseFormat selects a surface format, preferring 8-bit
// BGRA/RGBA formats in the sRGB color space.
func chooseFormat(fmts []surfaceFormat) surfaceFormat {
	if len(fmts) == 0 || len(fmts) == 1 && fmts[0].format == formatUndefined {
		// Any format is allowed.
		return surfaceFormat{formatB8G8R8A8Unorm, colorSpaceSRGBNonlinear}
	}
	for _, pref := range [...]uint32{
		formatB8G8R8A8SRGB,
		formatR8G8B8A8SRGB,
		formatB8G8R8A8Unorm,
		formatR8G8B8A8Unorm,
	} {
		for _, f := range fmts {
			if f.format == pref && f.colorSpace == colorSpaceSRGBNonlinear {
				return f
			}
		}
	}
	return fmts[0]
}

// choosePresentMode selects a present mode from modes.
// FIFO support is mandatory, so it is the fallback.
func choosePresentMode(modes []uint32, vsync bool) uint32 {
	if vsync {
		return presentModeFIFO
	}
	for _, pref := range [...]uint32{presentModeMailbox, presentModeImmediate} {
		for _, m := range modes {
			if m == pref {
				return m
			}
		}
	}
	return presentModeFIFO
}

// chooseCompositeAlpha selects the lowest supported composite
// alpha bit.
func chooseCompositeAlpha(supported uint32) uint32 {
	calpha := uint32(compositeAlphaOpaqueBit)
	for i := 0; i < 32; i++ {
		if calpha&supported != 0 {
			return calpha
		}
		calpha <<= 1
	}
	return compositeAlphaOpaqueBit
}

// Extent returns the dimensions of the swapchain images.
func (s *Swapchain) Extent() (width, height int) {
	return int(s.extent.width), int(s.extent.height)
}

// ImageCount returns the number of swapchain images.
func (s *Swapchain) ImageCount() int { return len(s.imgs) }

// Acquire acquires the next image, signaling f when it
// becomes available.
// It returns ErrOutOfDate if the swapchain must be recreated
// before presenting. If suboptimal is true, the image can be
// used but the swapchain should be recreated afterwards.
func (s *Swapchain) Acquire(f *Frame) (index int, suboptimal bool, err error) {
	var idx uint32
	res := s.dev.fn.acquireNextImage(s.dev.h, s.h, math.MaxUint64, f.acqSem, 0, &idx)
	switch res {
	case resSuccess:
		return int(idx), false, nil
	case resSuboptimal:
		return int(idx), true, nil
	}
	if err := checkResult(res); err != nil {
		return -1, false, err
	}
	return -1, false, errUnknown
}

// Present presents the image at index once the commands
// submitted through f complete.
// It returns ErrOutOfDate or ErrSuboptimal when the swapchain
// should be recreated.
func (s *Swapchain) Present(f *Frame, index int) error {
	if index < 0 || index >= len(s.imgs) {
		panic("vk.Swapchain.Present called with invalid index")
	}
	idx := uint32(index)
	info := presentInfo{
		sType:              stPresentInfo,
		waitSemaphoreCount: 1,
		pWaitSemaphores:    &f.rendSem,
		swapchainCount:     1,
		pSwapchains:        &s.h,
		pImageIndices:      &idx,
	}
	res := s.dev.fn.queuePresent(s.dev.que, &info)
	if res == resSuboptimal {
		return ErrSuboptimal
	}
	return checkResult(res)
}

// Destroy destroys the swapchain.
// The surface is not destroyed.
func (s *Swapchain) Destroy() {
	if s == nil || s.h == 0 {
		return
	}
	s.dev.fn.destroySwapchain(s.dev.h, s.h, nil)
	*s = Swapchain{}
}
