// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"unsafe"
)

// Go mirrors of the Vulkan structures used by this package.
// Field order and types must match the C declarations so that
// the natural Go layout equals the C layout.
// Native handles owned by other libraries (Display*, HWND,
// wl_surface*, etc.) are kept as uintptr; pointers into Go
// memory use pointer types so that the GC sees them.

// VkStructureType values.
const (
	stApplicationInfo           = 0
	stInstanceCreateInfo        = 1
	stDeviceQueueCreateInfo     = 2
	stDeviceCreateInfo          = 3
	stSubmitInfo                = 4
	stFenceCreateInfo           = 8
	stSemaphoreCreateInfo       = 9
	stCommandPoolCreateInfo     = 39
	stCommandBufferAllocateInfo = 40
	stCommandBufferBeginInfo    = 42
	stImageMemoryBarrier        = 45
	stSwapchainCreateInfo       = 1000001000
	stPresentInfo               = 1000001001
	stXlibSurfaceCreateInfo     = 1000004000
	stXCBSurfaceCreateInfo      = 1000005000
	stWaylandSurfaceCreateInfo  = 1000006000
	stAndroidSurfaceCreateInfo  = 1000008000
	stWin32SurfaceCreateInfo    = 1000009000
)

type applicationInfo struct {
	sType              uint32
	pNext              unsafe.Pointer
	pApplicationName   *byte
	applicationVersion uint32
	pEngineName        *byte
	engineVersion      uint32
	apiVersion         uint32
}

type instanceCreateInfo struct {
	sType                   uint32
	pNext                   unsafe.Pointer
	flags                   uint32
	pApplicationInfo        *applicationInfo
	enabledLayerCount       uint32
	ppEnabledLayerNames     **byte
	enabledExtensionCount   uint32
	ppEnabledExtensionNames **byte
}

type extensionProperties struct {
	extensionName [256]byte
	specVersion   uint32
}

type xlibSurfaceCreateInfo struct {
	sType  uint32
	pNext  unsafe.Pointer
	flags  uint32
	dpy    uintptr
	window uintptr
}

type waylandSurfaceCreateInfo struct {
	sType   uint32
	pNext   unsafe.Pointer
	flags   uint32
	display uintptr
	surface uintptr
}

type win32SurfaceCreateInfo struct {
	sType     uint32
	pNext     unsafe.Pointer
	flags     uint32
	hinstance uintptr
	hwnd      uintptr
}

type androidSurfaceCreateInfo struct {
	sType  uint32
	pNext  unsafe.Pointer
	flags  uint32
	window uintptr
}

// physicalDeviceProperties only declares the leading fields.
// The trailing padding is larger than the remainder of the C
// structure (limits and sparse properties).
type physicalDeviceProperties struct {
	apiVersion    uint32
	driverVersion uint32
	vendorID      uint32
	deviceID      uint32
	deviceType    uint32
	deviceName    [256]byte
	_             [1024]byte
}

type queueFamilyProperties struct {
	queueFlags                  uint32
	queueCount                  uint32
	timestampValidBits          uint32
	minImageTransferGranularity [3]uint32
}

type deviceQueueCreateInfo struct {
	sType            uint32
	pNext            unsafe.Pointer
	flags            uint32
	queueFamilyIndex uint32
	queueCount       uint32
	pQueuePriorities *float32
}

type deviceCreateInfo struct {
	sType                   uint32
	pNext                   unsafe.Pointer
	flags                   uint32
	queueCreateInfoCount    uint32
	pQueueCreateInfos       *deviceQueueCreateInfo
	enabledLayerCount       uint32
	ppEnabledLayerNames     **byte
	enabledExtensionCount   uint32
	ppEnabledExtensionNames **byte
	pEnabledFeatures        unsafe.Pointer
}

type extent2D struct {
	width  uint32
	height uint32
}

type surfaceCapabilities struct {
	minImageCount           uint32
	maxImageCount           uint32
	currentExtent           extent2D
	minImageExtent          extent2D
	maxImageExtent          extent2D
	maxImageArrayLayers     uint32
	supportedTransforms     uint32
	currentTransform        uint32
	supportedCompositeAlpha uint32
	supportedUsageFlags     uint32
}

type surfaceFormat struct {
	format     uint32
	colorSpace uint32
}

type swapchainCreateInfo struct {
	sType                 uint32
	pNext                 unsafe.Pointer
	flags                 uint32
	surface               uint64
	minImageCount         uint32
	imageFormat           uint32
	imageColorSpace       uint32
	imageExtent           extent2D
	imageArrayLayers      uint32
	imageUsage            uint32
	imageSharingMode      uint32
	queueFamilyIndexCount uint32
	pQueueFamilyIndices   *uint32
	preTransform          uint32
	compositeAlpha        uint32
	presentMode           uint32
	clipped               uint32
	oldSwapchain          uint64
}

type presentInfo struct {
	sType              uint32
	pNext              unsafe.Pointer
	waitSemaphoreCount uint32
	pWaitSemaphores    *uint64
	swapchainCount     uint32
	pSwapchains        *uint64
	pImageIndices      *uint32
	pResults           *int32
}

type submitInfo struct {
	sType                uint32
	pNext                unsafe.Pointer
	waitSemaphoreCount   uint32
	pWaitSemaphores      *uint64
	pWaitDstStageMask    *uint32
	commandBufferCount   uint32
	pCommandBuffers      *uintptr
	signalSemaphoreCount uint32
	pSignalSemaphores    *uint64
}

type commandPoolCreateInfo struct {
	sType            uint32
	pNext            unsafe.Pointer
	flags            uint32
	queueFamilyIndex uint32
}

type commandBufferAllocateInfo struct {
	sType              uint32
	pNext              unsafe.Pointer
	commandPool        uint64
	level              uint32
	commandBufferCount uint32
}

type commandBufferBeginInfo struct {
	sType            uint32
	pNext            unsafe.Pointer
	flags            uint32
	pInheritanceInfo unsafe.Pointer
}

// Used for both VkSemaphoreCreateInfo and VkFenceCreateInfo.
type syncCreateInfo struct {
	sType uint32
	pNext unsafe.Pointer
	flags uint32
}

type imageSubresourceRange struct {
	aspectMask     uint32
	baseMipLevel   uint32
	levelCount     uint32
	baseArrayLayer uint32
	layerCount     uint32
}

type imageMemoryBarrier struct {
	sType               uint32
	pNext               unsafe.Pointer
	srcAccessMask       uint32
	dstAccessMask       uint32
	oldLayout           uint32
	newLayout           uint32
	srcQueueFamilyIndex uint32
	dstQueueFamilyIndex uint32
	image               uint64
	subresourceRange    imageSubresourceRange
}

// Enumerants.
const (
	queueGraphicsBit = 0x1

	imageLayoutUndefined          = 0
	imageLayoutTransferDstOptimal = 7
	imageLayoutPresentSrc         = 1000001002

	imageAspectColorBit = 0x1

	accessTransferWriteBit = 0x1000
	accessMemoryReadBit    = 0x8000

	pipelineStageTopOfPipeBit             = 0x1
	pipelineStageColorAttachmentOutputBit = 0x400
	pipelineStageTransferBit              = 0x1000
	pipelineStageBottomOfPipeBit          = 0x2000

	imageUsageTransferDstBit     = 0x2
	imageUsageColorAttachmentBit = 0x10

	sharingModeExclusive = 0

	presentModeImmediate   = 0
	presentModeMailbox     = 1
	presentModeFIFO        = 2
	presentModeFIFORelaxed = 3

	compositeAlphaOpaqueBit = 0x1

	formatUndefined     = 0
	formatR8G8B8A8Unorm = 37
	formatR8G8B8A8SRGB  = 43
	formatB8G8R8A8Unorm = 44
	formatB8G8R8A8SRGB  = 50

	colorSpaceSRGBNonlinear = 0

	commandBufferLevelPrimary        = 0
	commandPoolResetCommandBufferBit = 0x2
	commandBufferOneTimeSubmitBit    = 0x1
	fenceSignaledBit                 = 0x1

	queueFamilyIgnored = ^uint32(0)
	remainingLevels    = ^uint32(0)

	vkTrue  = 1
	vkFalse = 0
)
