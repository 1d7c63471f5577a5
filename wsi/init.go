// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"os"
	"runtime"
)

func init() {
	// SDL requires video calls to happen on the main thread.
	runtime.LockOSThread()
	if _, ok := os.LookupEnv("SDLVK_NO_WSI"); ok {
		initDummy()
		return
	}
	if err := initSDL(); err != nil {
		initErr = err
		initDummy()
	}
}
