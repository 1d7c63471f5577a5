// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Sdlvkdemo opens an SDL2 window, creates a Vulkan surface
// for it and clears the swapchain images until the window
// is closed or Escape is pressed.
//
// The configuration is read from the file named by
// $SDLVK_CONFIG, or from sdlvkdemo.yaml in the working
// directory.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gviegas/sdlvk"
	"github.com/gviegas/sdlvk/cmd/sdlvkdemo/internal/config"
	"github.com/gviegas/sdlvk/vk"
	"github.com/gviegas/sdlvk/wsi"
)

// Number of frames in flight.
const nFrame = 2

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sdlvkdemo:", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	vk.SetLogger(log)
	if err := run(cfg, log); err != nil {
		log.Error("sdlvkdemo failed", "err", err)
		os.Exit(1)
	}
}

// handler tracks the events that the render loop cares
// about.
type handler struct {
	quit    bool
	resized bool
}

func (h *handler) WindowClose(wsi.Window)            { h.quit = true }
func (h *handler) WindowResize(wsi.Window, int, int) { h.resized = true }
func (h *handler) KeyboardIn(wsi.Window)             {}
func (h *handler) KeyboardOut(wsi.Window)            {}
func (h *handler) Quit()                             { h.quit = true }

func (h *handler) KeyboardKey(key wsi.Key, pressed bool, _ wsi.Modifier) {
	if key == wsi.KeyEsc && pressed {
		h.quit = true
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	defer wsi.Shutdown()
	wsi.SetAppName(cfg.Title)
	win, err := wsi.NewWindow(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return err
	}
	defer win.Close()

	exts, err := sdlvk.RequiredExtensions(win)
	if err != nil {
		return err
	}
	log.Info("window created", "subsystem", wsi.SubsystemOf(win), "extensions", exts.Names())
	inst, err := vk.NewInstance(cfg.Title, exts)
	if err != nil {
		return err
	}
	defer inst.Destroy()

	sf, err := sdlvk.NewSurface(win, inst)
	if err != nil {
		return err
	}
	defer sf.Destroy()

	pdev, qfam, err := inst.SelectDevice(sf)
	if err != nil {
		return err
	}
	log.Info("device selected", "name", pdev.Name(), "type", pdev.Type(), "queue_family", qfam)
	dev, err := pdev.NewDevice(qfam)
	if err != nil {
		return err
	}
	defer dev.Destroy()

	var frames [nFrame]*vk.Frame
	var sc *vk.Swapchain
	defer func() {
		dev.WaitIdle()
		for _, f := range frames {
			f.Destroy()
		}
		sc.Destroy()
	}()
	for i := range frames {
		if frames[i], err = dev.NewFrame(); err != nil {
			return err
		}
	}

	var h handler
	wsi.SetWindowHandler(&h)
	wsi.SetKeyboardHandler(&h)
	wsi.SetQuitHandler(&h)
	if err := win.Map(); err != nil {
		return err
	}

	scCfg := vk.SwapchainConfig{ImageCount: cfg.ImageCount, VSync: cfg.VSync}
	recreate := true
	cur := 0
	for {
		wsi.Dispatch()
		if h.quit {
			return nil
		}
		if h.resized {
			h.resized = false
			recreate = true
		}

		if recreate {
			width, height := win.Width(), win.Height()
			if sc == nil {
				sc, err = dev.NewSwapchain(sf, width, height, scCfg)
			} else {
				err = sc.Recreate(width, height)
			}
			switch {
			case errors.Is(err, vk.ErrUnsupportedDimensions):
				// The window changed size again or is minimized.
				log.Debug("swapchain dimensions not supported, retrying", "width", width, "height", height)
				time.Sleep(10 * time.Millisecond)
				continue
			case err != nil:
				return err
			}
			recreate = false
		}

		f := frames[cur]
		if err := f.Wait(); err != nil {
			return err
		}
		idx, suboptimal, err := sc.Acquire(f)
		switch {
		case errors.Is(err, vk.ErrOutOfDate):
			recreate = true
			continue
		case err != nil:
			return err
		}
		if suboptimal {
			recreate = true
		}
		if err := f.Clear(sc, idx, cfg.ClearColor); err != nil {
			return err
		}
		if err := f.Submit(); err != nil {
			return err
		}
		switch err := sc.Present(f, idx); {
		case errors.Is(err, vk.ErrOutOfDate), errors.Is(err, vk.ErrSuboptimal):
			recreate = true
		case err != nil:
			return err
		}
		cur = (cur + 1) % nFrame
	}
}
