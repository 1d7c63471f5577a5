// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"unsafe"

	"github.com/gviegas/sdlvk/internal/dl"
)

// DeviceType is the type of a physical device.
type DeviceType int

// Device types.
const (
	DevOther DeviceType = iota
	DevIntegrated
	DevDiscrete
	DevVirtual
	DevCPU
)

func (t DeviceType) String() string {
	switch t {
	case DevIntegrated:
		return "integrated GPU"
	case DevDiscrete:
		return "discrete GPU"
	case DevVirtual:
		return "virtual GPU"
	case DevCPU:
		return "CPU"
	}
	return "other"
}

// QueueFamily describes a queue family of a physical device.
type QueueFamily struct {
	Index    int
	Count    int
	Graphics bool
}

// PhysicalDevice is a Vulkan physical device.
type PhysicalDevice struct {
	inst  *Instance
	h     uintptr
	name  string
	typ   DeviceType
	vers  uint32
	qfams []QueueFamily
}

// PhysicalDevices returns the physical devices exposed by i.
func (i *Instance) PhysicalDevices() ([]*PhysicalDevice, error) {
	var n uint32
	if err := checkResult(i.fn.enumeratePhysicalDevices(i.h, &n, nil)); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	hs := make([]uintptr, n)
	if err := checkResult(i.fn.enumeratePhysicalDevices(i.h, &n, unsafe.SliceData(hs))); err != nil {
		return nil, err
	}
	devs := make([]*PhysicalDevice, n)
	for j, h := range hs[:n] {
		var props physicalDeviceProperties
		i.fn.getPhysicalDeviceProperties(h, &props)
		var nq uint32
		i.fn.getPhysicalDeviceQueueFamilyProperties(h, &nq, nil)
		qprops := make([]queueFamilyProperties, nq)
		if nq > 0 {
			i.fn.getPhysicalDeviceQueueFamilyProperties(h, &nq, unsafe.SliceData(qprops))
		}
		qfams := make([]QueueFamily, nq)
		for k, qp := range qprops[:nq] {
			qfams[k] = QueueFamily{
				Index:    k,
				Count:    int(qp.queueCount),
				Graphics: qp.queueFlags&queueGraphicsBit != 0,
			}
		}
		devs[j] = &PhysicalDevice{
			inst:  i,
			h:     h,
			name:  dl.FixedString(props.deviceName[:]),
			typ:   DeviceType(props.deviceType),
			vers:  props.apiVersion,
			qfams: qfams,
		}
	}
	return devs, nil
}

// Name returns the device name.
func (d *PhysicalDevice) Name() string { return d.name }

// Type returns the device type.
func (d *PhysicalDevice) Type() DeviceType { return d.typ }

// Version returns the API version supported by the device.
func (d *PhysicalDevice) Version() (major, minor, patch int) {
	major = versionMajor(d.vers)
	minor = versionMinor(d.vers)
	patch = versionPatch(d.vers)
	return
}

// QueueFamilies returns the queue families of the device.
func (d *PhysicalDevice) QueueFamilies() []QueueFamily { return d.qfams }

// Extensions returns the names of all device extensions
// advertised for d.
func (d *PhysicalDevice) Extensions() (exts []string, err error) {
	fn := &d.inst.fn
	var n uint32
	if err = checkResult(fn.enumerateDeviceExtensionProperties(d.h, nil, &n, nil)); err != nil {
		return
	}
	if n == 0 {
		return
	}
	props := make([]extensionProperties, n)
	if err = checkResult(fn.enumerateDeviceExtensionProperties(d.h, nil, &n, unsafe.SliceData(props))); err != nil {
		return
	}
	return extNamesOf(props[:n]), nil
}

// CanPresent returns whether the queue family qfam of d can
// present to sf.
func (d *PhysicalDevice) CanPresent(qfam int, sf *Surface) (bool, error) {
	if sf.inst != d.inst {
		panic("vk.PhysicalDevice.CanPresent called with surface from another instance")
	}
	var ok uint32
	if err := checkResult(d.inst.fn.getSurfaceSupport(d.h, uint32(qfam), sf.h, &ok)); err != nil {
		return false, err
	}
	return ok == vkTrue, nil
}

// SelectDevice selects a physical device that has a graphics
// queue family able to present to sf.
// Hardware-accelerated devices are preferred.
// It returns ErrNoDevice if none suffices.
func (i *Instance) SelectDevice(sf *Surface) (*PhysicalDevice, int, error) {
	devs, err := i.PhysicalDevices()
	if err != nil {
		return nil, -1, err
	}
	var (
		best   *PhysicalDevice
		qfam   = -1
		weight = 0
	)
	for _, d := range devs {
		if isVariant(d.vers) {
			// Do not support variants.
			continue
		}
		fam := -1
		for _, q := range d.qfams {
			if !q.Graphics {
				continue
			}
			if ok, err := d.CanPresent(q.Index, sf); err == nil && ok {
				fam = q.Index
				break
			}
		}
		if fam == -1 {
			continue
		}
		exts, err := d.Extensions()
		if err != nil || checkExts(NewExtensionSet(ExtSwapchain), exts) != nil {
			continue
		}
		wgt := deviceWeight(d.typ)
		if wgt > weight {
			best, qfam, weight = d, fam, wgt
		}
	}
	if best == nil {
		return nil, -1, ErrNoDevice
	}
	log().Debug("vk: device selected", "name", best.name, "type", best.typ, "queue", qfam)
	return best, qfam, nil
}

// deviceWeight ranks device types for selection.
func deviceWeight(t DeviceType) int {
	switch t {
	case DevDiscrete:
		return 4
	case DevIntegrated:
		return 3
	case DevVirtual:
		return 2
	}
	return 1
}

// Device is a Vulkan logical device with a single queue.
type Device struct {
	pdev *PhysicalDevice
	h    uintptr
	qfam uint32
	que  uintptr
	fn   deviceProcs
}

// deviceProcs holds the device-level procs of a Device.
type deviceProcs struct {
	destroyDevice          func(dev uintptr, alloc unsafe.Pointer)
	getDeviceQueue         func(dev uintptr, qfam, index uint32, que *uintptr)
	deviceWaitIdle         func(dev uintptr) int32
	queueSubmit            func(que uintptr, n uint32, info *submitInfo, fence uint64) int32
	queuePresent           func(que uintptr, info *presentInfo) int32
	createSwapchain        func(dev uintptr, info *swapchainCreateInfo, alloc unsafe.Pointer, sc *uint64) int32
	destroySwapchain       func(dev uintptr, sc uint64, alloc unsafe.Pointer)
	getSwapchainImages     func(dev uintptr, sc uint64, n *uint32, imgs *uint64) int32
	acquireNextImage       func(dev uintptr, sc uint64, timeout uint64, sem uint64, fence uint64, index *uint32) int32
	createCommandPool      func(dev uintptr, info *commandPoolCreateInfo, alloc unsafe.Pointer, pool *uint64) int32
	destroyCommandPool     func(dev uintptr, pool uint64, alloc unsafe.Pointer)
	allocateCommandBuffers func(dev uintptr, info *commandBufferAllocateInfo, cbs *uintptr) int32
	beginCommandBuffer     func(cb uintptr, info *commandBufferBeginInfo) int32
	endCommandBuffer       func(cb uintptr) int32
	resetCommandBuffer     func(cb uintptr, flags uint32) int32
	cmdPipelineBarrier     func(cb uintptr, srcStage, dstStage, depFlags, memCount uint32, mem unsafe.Pointer, bufCount uint32, buf unsafe.Pointer, imgCount uint32, img *imageMemoryBarrier)
	cmdClearColorImage     func(cb uintptr, img uint64, layout uint32, color *[4]float32, n uint32, ranges *imageSubresourceRange)
	createSemaphore        func(dev uintptr, info *syncCreateInfo, alloc unsafe.Pointer, sem *uint64) int32
	destroySemaphore       func(dev uintptr, sem uint64, alloc unsafe.Pointer)
	createFence            func(dev uintptr, info *syncCreateInfo, alloc unsafe.Pointer, fence *uint64) int32
	destroyFence           func(dev uintptr, fence uint64, alloc unsafe.Pointer)
	waitForFences          func(dev uintptr, n uint32, fences *uint64, waitAll uint32, timeout uint64) int32
	resetFences            func(dev uintptr, n uint32, fences *uint64) int32
}

// load fetches the procs of dev.
func (p *deviceProcs) load(fn *instanceProcs, dev uintptr) error {
	proc := func(fptr any, name string) bool {
		return dl.Bind(fptr, fn.getDeviceProcAddr(dev, dl.MustCString(name)))
	}
	if !proc(&p.destroyDevice, "vkDestroyDevice") ||
		!proc(&p.getDeviceQueue, "vkGetDeviceQueue") ||
		!proc(&p.deviceWaitIdle, "vkDeviceWaitIdle") ||
		!proc(&p.queueSubmit, "vkQueueSubmit") ||
		!proc(&p.createCommandPool, "vkCreateCommandPool") ||
		!proc(&p.destroyCommandPool, "vkDestroyCommandPool") ||
		!proc(&p.allocateCommandBuffers, "vkAllocateCommandBuffers") ||
		!proc(&p.beginCommandBuffer, "vkBeginCommandBuffer") ||
		!proc(&p.endCommandBuffer, "vkEndCommandBuffer") ||
		!proc(&p.resetCommandBuffer, "vkResetCommandBuffer") ||
		!proc(&p.cmdPipelineBarrier, "vkCmdPipelineBarrier") ||
		!proc(&p.cmdClearColorImage, "vkCmdClearColorImage") ||
		!proc(&p.createSemaphore, "vkCreateSemaphore") ||
		!proc(&p.destroySemaphore, "vkDestroySemaphore") ||
		!proc(&p.createFence, "vkCreateFence") ||
		!proc(&p.destroyFence, "vkDestroyFence") ||
		!proc(&p.waitForFences, "vkWaitForFences") ||
		!proc(&p.resetFences, "vkResetFences") {
		return errInitFailed
	}
	if !proc(&p.queuePresent, "vkQueuePresentKHR") ||
		!proc(&p.createSwapchain, "vkCreateSwapchainKHR") ||
		!proc(&p.destroySwapchain, "vkDestroySwapchainKHR") ||
		!proc(&p.getSwapchainImages, "vkGetSwapchainImagesKHR") ||
		!proc(&p.acquireNextImage, "vkAcquireNextImageKHR") {
		return &ExtensionError{Name: ExtSwapchain.Name()}
	}
	return nil
}

// NewDevice creates a logical device with one queue from the
// queue family qfam and VK_KHR_swapchain enabled.
func (d *PhysicalDevice) NewDevice(qfam int) (*Device, error) {
	if qfam < 0 || qfam >= len(d.qfams) {
		panic("vk.PhysicalDevice.NewDevice called with invalid queue family")
	}
	exts, err := d.Extensions()
	if err != nil {
		return nil, err
	}
	if err := checkExts(NewExtensionSet(ExtSwapchain), exts); err != nil {
		return nil, err
	}
	prio := float32(1)
	queInfo := deviceQueueCreateInfo{
		sType:            stDeviceQueueCreateInfo,
		queueFamilyIndex: uint32(qfam),
		queueCount:       1,
		pQueuePriorities: &prio,
	}
	info := deviceCreateInfo{
		sType:                   stDeviceCreateInfo,
		queueCreateInfoCount:    1,
		pQueueCreateInfos:       &queInfo,
		enabledExtensionCount:   1,
		ppEnabledExtensionNames: cNames([]string{ExtSwapchain.Name()}),
	}
	var h uintptr
	if err := checkResult(d.inst.fn.createDevice(d.h, &info, nil, &h)); err != nil {
		return nil, err
	}
	dev := &Device{
		pdev: d,
		h:    h,
		qfam: uint32(qfam),
	}
	if err := dev.fn.load(&d.inst.fn, h); err != nil {
		if dev.fn.destroyDevice != nil {
			dev.fn.destroyDevice(h, nil)
		}
		return nil, err
	}
	dev.fn.getDeviceQueue(h, dev.qfam, 0, &dev.que)
	return dev, nil
}

// PhysicalDevice returns the physical device of d.
func (d *Device) PhysicalDevice() *PhysicalDevice { return d.pdev }

// QueueFamily returns the index of the queue family in use.
func (d *Device) QueueFamily() int { return int(d.qfam) }

// Queue returns the VkQueue handle of the device's only
// queue.
func (d *Device) Queue() uintptr { return d.que }

// WaitIdle blocks until the device is idle.
func (d *Device) WaitIdle() error {
	return checkResult(d.fn.deviceWaitIdle(d.h))
}

// Destroy destroys the device.
// Every object created from d must have been destroyed.
func (d *Device) Destroy() {
	if d == nil || d.h == 0 {
		return
	}
	d.fn.destroyDevice(d.h, nil)
	*d = Device{}
}
