// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vk

// Surface is a presentable surface bound to a native window.
// It must be destroyed before the Instance that created it,
// and the native window must outlive it.
type Surface struct {
	inst *Instance
	h    uint64
}

// NewXlibSurface creates a surface from an Xlib Display* and
// Window.
// The instance must have been created with ExtSurface and
// ExtXlibSurface.
func (i *Instance) NewXlibSurface(dpy, win uintptr) (*Surface, error) {
	if err := i.checkSurfaceExt(ExtXlibSurface, i.fn.createXlibSurface != nil); err != nil {
		return nil, err
	}
	info := xlibSurfaceCreateInfo{
		sType:  stXlibSurfaceCreateInfo,
		dpy:    dpy,
		window: win,
	}
	var sf uint64
	if err := checkResult(i.fn.createXlibSurface(i.h, &info, nil, &sf)); err != nil {
		return nil, err
	}
	return &Surface{inst: i, h: sf}, nil
}

// NewWaylandSurface creates a surface from a wl_display* and
// wl_surface*.
// The instance must have been created with ExtSurface and
// ExtWaylandSurface.
func (i *Instance) NewWaylandSurface(dpy, sf uintptr) (*Surface, error) {
	if err := i.checkSurfaceExt(ExtWaylandSurface, i.fn.createWaylandSurface != nil); err != nil {
		return nil, err
	}
	info := waylandSurfaceCreateInfo{
		sType:   stWaylandSurfaceCreateInfo,
		display: dpy,
		surface: sf,
	}
	var h uint64
	if err := checkResult(i.fn.createWaylandSurface(i.h, &info, nil, &h)); err != nil {
		return nil, err
	}
	return &Surface{inst: i, h: h}, nil
}

// NewWin32Surface creates a surface from a HINSTANCE and HWND.
// The instance must have been created with ExtSurface and
// ExtWin32Surface.
func (i *Instance) NewWin32Surface(hinst, hwnd uintptr) (*Surface, error) {
	if err := i.checkSurfaceExt(ExtWin32Surface, i.fn.createWin32Surface != nil); err != nil {
		return nil, err
	}
	info := win32SurfaceCreateInfo{
		sType:     stWin32SurfaceCreateInfo,
		hinstance: hinst,
		hwnd:      hwnd,
	}
	var sf uint64
	if err := checkResult(i.fn.createWin32Surface(i.h, &info, nil, &sf)); err != nil {
		return nil, err
	}
	return &Surface{inst: i, h: sf}, nil
}

// NewAndroidSurface creates a surface from an ANativeWindow*.
// The instance must have been created with ExtSurface and
// ExtAndroidSurface.
func (i *Instance) NewAndroidSurface(win uintptr) (*Surface, error) {
	if err := i.checkSurfaceExt(ExtAndroidSurface, i.fn.createAndroidSurface != nil); err != nil {
		return nil, err
	}
	info := androidSurfaceCreateInfo{
		sType:  stAndroidSurfaceCreateInfo,
		window: win,
	}
	var sf uint64
	if err := checkResult(i.fn.createAndroidSurface(i.h, &info, nil, &sf)); err != nil {
		return nil, err
	}
	return &Surface{inst: i, h: sf}, nil
}

// checkSurfaceExt fails unless i was created with both
// ExtSurface and the platform extension e. bound reports
// whether the constructor for e was loaded.
func (i *Instance) checkSurfaceExt(e Extension, bound bool) error {
	if !i.exts[ExtSurface] || i.fn.destroySurface == nil {
		return &ExtensionError{Name: ExtSurface.Name()}
	}
	if !i.exts[e] || !bound {
		return &ExtensionError{Name: e.Name()}
	}
	return nil
}

// Destroy destroys the surface.
func (s *Surface) Destroy() {
	if s == nil || s.inst == nil {
		return
	}
	s.inst.fn.destroySurface(s.inst.h, s.h, nil)
	*s = Surface{}
}

// Handle returns the VkSurfaceKHR handle.
func (s *Surface) Handle() uint64 { return s.h }

// Instance returns the instance that created s.
func (s *Surface) Instance() *Instance { return s.inst }
