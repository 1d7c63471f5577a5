// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"testing"
)

func TestKeyFrom(t *testing.T) {
	for _, x := range [...]struct {
		code int
		want Key
	}{
		{-1, KeyUnknown},
		{0, KeyUnknown},
		{4, KeyA},
		{29, KeyZ},
		{30, Key1},
		{39, Key0},
		{41, KeyEsc},
		{44, KeySpace},
		{50, KeyUnknown},
		{58, KeyF1},
		{69, KeyF12},
		{82, KeyUp},
		{98, KeyPad0},
		{115, KeyF24},
		{224, KeyLCtrl},
		{231, KeyRMeta},
		{232, KeyUnknown},
		{512, KeyUnknown},
	} {
		if k := keyFrom(x.code); k != x.want {
			t.Errorf("keyFrom(%d)\nhave %d\nwant %d", x.code, k, x.want)
		}
	}
}

func TestKeymapUnique(t *testing.T) {
	seen := make(map[Key]int)
	for code, k := range keymap {
		if k == KeyUnknown {
			continue
		}
		if prev, ok := seen[k]; ok {
			t.Errorf("Key %d mapped from both %d and %d", k, prev, code)
		}
		seen[k] = code
	}
}
