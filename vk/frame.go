// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"math"
)

// Frame holds the per-frame command buffer and
// synchronization primitives used to clear and present a
// swapchain image.
type Frame struct {
	dev     *Device
	pool    uint64
	cb      uintptr
	acqSem  uint64
	rendSem uint64
	fence   uint64
}

// NewFrame creates a new Frame.
func (d *Device) NewFrame() (f *Frame, err error) {
	f = &Frame{dev: d}
	defer func() {
		if err != nil {
			f.Destroy()
			f = nil
		}
	}()
	poolInfo := commandPoolCreateInfo{
		sType:            stCommandPoolCreateInfo,
		flags:            commandPoolResetCommandBufferBit,
		queueFamilyIndex: d.qfam,
	}
	if err = checkResult(d.fn.createCommandPool(d.h, &poolInfo, nil, &f.pool)); err != nil {
		return
	}
	allocInfo := commandBufferAllocateInfo{
		sType:              stCommandBufferAllocateInfo,
		commandPool:        f.pool,
		level:              commandBufferLevelPrimary,
		commandBufferCount: 1,
	}
	if err = checkResult(d.fn.allocateCommandBuffers(d.h, &allocInfo, &f.cb)); err != nil {
		return
	}
	semInfo := syncCreateInfo{sType: stSemaphoreCreateInfo}
	if err = checkResult(d.fn.createSemaphore(d.h, &semInfo, nil, &f.acqSem)); err != nil {
		return
	}
	if err = checkResult(d.fn.createSemaphore(d.h, &semInfo, nil, &f.rendSem)); err != nil {
		return
	}
	// Created signaled so that the first Wait does not block.
	fenceInfo := syncCreateInfo{
		sType: stFenceCreateInfo,
		flags: fenceSignaledBit,
	}
	err = checkResult(d.fn.createFence(d.h, &fenceInfo, nil, &f.fence))
	return
}

// Wait blocks until the last submission of f completes.
func (f *Frame) Wait() error {
	return checkResult(f.dev.fn.waitForFences(f.dev.h, 1, &f.fence, vkTrue, math.MaxUint64))
}

// Clear records commands that clear the swapchain image at
// index to color and transition it for presentation.
// Wait must have been called since the last Submit.
func (f *Frame) Clear(sc *Swapchain, index int, color [4]float32) error {
	if index < 0 || index >= len(sc.imgs) {
		panic("vk.Frame.Clear called with invalid index")
	}
	fn := &f.dev.fn
	if err := checkResult(fn.resetCommandBuffer(f.cb, 0)); err != nil {
		return err
	}
	begin := commandBufferBeginInfo{
		sType: stCommandBufferBeginInfo,
		flags: commandBufferOneTimeSubmitBit,
	}
	if err := checkResult(fn.beginCommandBuffer(f.cb, &begin)); err != nil {
		return err
	}
	rng := imageSubresourceRange{
		aspectMask: imageAspectColorBit,
		levelCount: 1,
		layerCount: 1,
	}
	toDst := imageMemoryBarrier{
		sType:               stImageMemoryBarrier,
		dstAccessMask:       accessTransferWriteBit,
		oldLayout:           imageLayoutUndefined,
		newLayout:           imageLayoutTransferDstOptimal,
		srcQueueFamilyIndex: queueFamilyIgnored,
		dstQueueFamilyIndex: queueFamilyIgnored,
		image:               sc.imgs[index],
		subresourceRange:    rng,
	}
	fn.cmdPipelineBarrier(f.cb, pipelineStageTransferBit, pipelineStageTransferBit, 0, 0, nil, 0, nil, 1, &toDst)
	fn.cmdClearColorImage(f.cb, sc.imgs[index], imageLayoutTransferDstOptimal, &color, 1, &rng)
	toPres := toDst
	toPres.srcAccessMask = accessTransferWriteBit
	toPres.dstAccessMask = accessMemoryReadBit
	toPres.oldLayout = imageLayoutTransferDstOptimal
	toPres.newLayout = imageLayoutPresentSrc
	fn.cmdPipelineBarrier(f.cb, pipelineStageTransferBit, pipelineStageBottomOfPipeBit, 0, 0, nil, 0, nil, 1, &toPres)
	return checkResult(fn.endCommandBuffer(f.cb))
}

// Submit submits the commands recorded by Clear.
// Execution waits for the image acquired through f and
// signals the semaphore that Present waits on.
func (f *Frame) Submit() error {
	fn := &f.dev.fn
	if err := checkResult(fn.resetFences(f.dev.h, 1, &f.fence)); err != nil {
		return err
	}
	stage := uint32(pipelineStageTransferBit)
	info := submitInfo{
		sType:                stSubmitInfo,
		waitSemaphoreCount:   1,
		pWaitSemaphores:      &f.acqSem,
		pWaitDstStageMask:    &stage,
		commandBufferCount:   1,
		pCommandBuffers:      &f.cb,
		signalSemaphoreCount: 1,
		pSignalSemaphores:    &f.rendSem,
	}
	return checkResult(fn.queueSubmit(f.dev.que, 1, &info, f.fence))
}

// Destroy destroys the frame.
// The device must not be executing commands from f.
func (f *Frame) Destroy() {
	if f == nil || f.dev == nil {
		return
	}
	d := f.dev
	if f.fence != 0 {
		d.fn.destroyFence(d.h, f.fence, nil)
	}
	if f.rendSem != 0 {
		d.fn.destroySemaphore(d.h, f.rendSem, nil)
	}
	if f.acqSem != 0 {
		d.fn.destroySemaphore(d.h, f.acqSem, nil)
	}
	if f.pool != 0 {
		// Frees f.cb as well.
		d.fn.destroyCommandPool(d.h, f.pool, nil)
	}
	*f = Frame{}
}
