// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"fmt"
)

func initDummy() {
	newWindow = newWindowDummy
	dispatch = dispatchDummy
	setAppName = setAppNameDummy
	platform = None
}

func newWindowDummy(int, int, string) (Window, error) {
	if initErr != nil {
		return nil, fmt.Errorf("%w (%v)", ErrMissing, initErr)
	}
	return nil, ErrMissing
}

func dispatchDummy()         {}
func setAppNameDummy(string) {}
