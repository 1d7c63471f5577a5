// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package vk provides the subset of the Vulkan API needed to
// create presentable surfaces from native window handles and
// to drive a swapchain.
// The Vulkan library is loaded at run time; no Vulkan headers
// or libraries are required at build time.
package vk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// ErrNotInstalled means that the Vulkan library is not
// present in the system.
var ErrNotInstalled = errors.New("vk: missing Vulkan library")

// ErrNoDevice means that no suitable device could be found.
var ErrNoDevice = errors.New("vk: no suitable device found")

// ErrNoHostMemory means that host memory could not be
// allocated.
var ErrNoHostMemory = errors.New("vk: out of host memory")

// ErrNoDeviceMemory means that device memory could not be
// allocated.
var ErrNoDeviceMemory = errors.New("vk: out of device memory")

// ErrUnsupportedDimensions means that the requested swapchain
// extent lies outside of what the surface currently supports.
// This usually happens when the window is resized between the
// size query and swapchain creation, and is expected to go
// away on a later attempt.
var ErrUnsupportedDimensions = errors.New("vk: unsupported swapchain dimensions")

// ErrOutOfDate means that the swapchain no longer matches the
// surface and must be recreated.
var ErrOutOfDate = errors.New("vk: swapchain out of date")

// ErrSuboptimal means that the swapchain can still be used,
// but no longer matches the surface exactly.
var ErrSuboptimal = errors.New("vk: swapchain suboptimal")

// ExtensionError is returned when an operation requires an
// extension that is either not advertised by the Vulkan
// implementation or was not enabled when creating the object.
type ExtensionError struct {
	Name string
}

func (e *ExtensionError) Error() string {
	return "vk: missing extension " + e.Name
}

// VkResult codes.
const (
	resSuccess                  = 0
	resNotReady                 = 1
	resTimeout                  = 2
	resIncomplete               = 5
	resErrOutOfHostMemory       = -1
	resErrOutOfDeviceMemory     = -2
	resErrInitFailed            = -3
	resErrDeviceLost            = -4
	resErrMemoryMapFailed       = -5
	resErrLayerNotPresent       = -6
	resErrExtensionNotPresent   = -7
	resErrFeatureNotPresent     = -8
	resErrIncompatibleDriver    = -9
	resErrTooManyObjects        = -10
	resErrFormatNotSupported    = -11
	resErrFragmentedPool        = -12
	resErrUnknown               = -13
	resErrOutOfPoolMemory       = -1000069000
	resErrInvalidExternalHandle = -1000072003
	resErrFragmentation         = -1000161000
	resErrSurfaceLost           = -1000000000
	resErrNativeWindowInUse     = -1000000001
	resSuboptimal               = 1000001003
	resErrOutOfDate             = -1000001004
	resErrIncompatibleDisplay   = -1000003001
)

// checkResult returns an error derived from a VkResult value.
// If such value does not indicate an error, it returns nil instead.
func checkResult(res int32) error {
	if res >= 0 {
		// Not an error: VK_ERROR_* values are all negative.
		return nil
	}
	switch res {
	case resErrOutOfHostMemory:
		return ErrNoHostMemory
	case resErrOutOfDeviceMemory:
		return ErrNoDeviceMemory
	case resErrInitFailed:
		return errInitFailed
	case resErrDeviceLost:
		return errDeviceLost
	case resErrMemoryMapFailed:
		return errMMapFailed
	case resErrLayerNotPresent:
		return errNoLayer
	case resErrExtensionNotPresent:
		return errNoExtension
	case resErrFeatureNotPresent:
		return errNoFeature
	case resErrIncompatibleDriver:
		return errDriverCompat
	case resErrTooManyObjects:
		return errTooManyObjects
	case resErrFormatNotSupported:
		return errUnsupportedFormat
	case resErrFragmentedPool:
		return errFragmentedPool
	case resErrOutOfPoolMemory:
		return errNoPoolMemory
	case resErrInvalidExternalHandle:
		return errExternalHandle
	case resErrFragmentation:
		return errFragmentation
	case resErrSurfaceLost:
		return errSurfaceLost
	case resErrNativeWindowInUse:
		return ErrNativeWindowInUse
	case resErrOutOfDate:
		return ErrOutOfDate
	case resErrIncompatibleDisplay:
		return errDisplayCompat
	}
	return fmt.Errorf("%w (VkResult %d)", errUnknown, res)
}

// ErrNativeWindowInUse means that the native window is already
// bound to another surface or graphics API.
var ErrNativeWindowInUse = errors.New("vk: native window in use")

// Common Vulkan errors (VK_ERROR_*).
var (
	errInitFailed        = errors.New("vk: initialization failed")
	errDeviceLost        = errors.New("vk: device lost")
	errMMapFailed        = errors.New("vk: memory map failed")
	errNoLayer           = errors.New("vk: layer not present")
	errNoExtension       = errors.New("vk: extension not present")
	errNoFeature         = errors.New("vk: feature not present")
	errDriverCompat      = errors.New("vk: incompatible driver")
	errTooManyObjects    = errors.New("vk: too many objects")
	errUnsupportedFormat = errors.New("vk: format not supported")
	errFragmentedPool    = errors.New("vk: fragmented pool")
	errUnknown           = errors.New("vk: unknown error")
	errNoPoolMemory      = errors.New("vk: out of pool memory")
	errExternalHandle    = errors.New("vk: invalid external handle")
	errFragmentation     = errors.New("vk: fragmentation")
	errSurfaceLost       = errors.New("vk: surface lost")
	errDisplayCompat     = errors.New("vk: incompatible display")
)

// API versions.
var (
	apiVersion10 = makeVersion(1, 0, 0)
	apiVersion11 = makeVersion(1, 1, 0)
)

// makeVersion is VK_MAKE_API_VERSION with variant 0.
func makeVersion(major, minor, patch int) uint32 {
	return uint32(major)<<22 | uint32(minor)<<12 | uint32(patch)
}

// versionMajor extracts the major version number from v.
func versionMajor(v uint32) int { return int(v >> 22 & 0x7f) }

// versionMinor extracts the minor version number from v.
func versionMinor(v uint32) int { return int(v >> 12 & 0x3ff) }

// versionPatch extracts the patch version number from v.
func versionPatch(v uint32) int { return int(v & 0xfff) }

// isVariant returns whether version v identifies a variant
// implementation of the Vulkan API.
func isVariant(v uint32) bool { return v>>29 != 0 }

// nopHandler discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() { logger.Store(slog.New(nopHandler{})) }

// SetLogger sets the logger used for diagnostics.
// The package produces no output by default.
// Passing nil restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

func log() *slog.Logger { return logger.Load() }

// versionString formats v as "major.minor.patch".
func versionString(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", versionMajor(v), versionMinor(v), versionPatch(v))
}
