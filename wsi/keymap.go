// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

// Key is the type of keyboard keys.
type Key int

// Keyboard keys.
const (
	KeyUnknown Key = iota
	KeyGrave
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyMinus
	KeyEqual
	KeyBackspace
	KeyTab
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyLBracket
	KeyRBracket
	KeyBackslash
	KeyCapsLock
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeySemicolon
	KeyApostrophe
	KeyReturn
	KeyLShift
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyComma
	KeyDot
	KeySlash
	KeyRShift
	KeyLCtrl
	KeyLAlt
	KeyLMeta
	KeySpace
	KeyRMeta
	KeyRAlt
	KeyRCtrl
	KeyEsc
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySysrq
	KeyScrollLock
	KeyPause
	KeyPadNumLock
	KeyPadSlash
	KeyPadStar
	KeyPadMinus
	KeyPadPlus
	KeyPad1
	KeyPad2
	KeyPad3
	KeyPad4
	KeyPad5
	KeyPad6
	KeyPad7
	KeyPad8
	KeyPad9
	KeyPad0
	KeyPadDot
	KeyPadEnter
	KeyPadEqual
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
)

// keyFrom returns the Key value that represents an
// SDL_Scancode.
func keyFrom(code int) Key {
	if code < 0 || code >= len(keymap) {
		return KeyUnknown
	}
	return keymap[code]
}

// keymap is indexed by SDL_Scancode.
var keymap = [...]Key{
	4:   KeyA,
	5:   KeyB,
	6:   KeyC,
	7:   KeyD,
	8:   KeyE,
	9:   KeyF,
	10:  KeyG,
	11:  KeyH,
	12:  KeyI,
	13:  KeyJ,
	14:  KeyK,
	15:  KeyL,
	16:  KeyM,
	17:  KeyN,
	18:  KeyO,
	19:  KeyP,
	20:  KeyQ,
	21:  KeyR,
	22:  KeyS,
	23:  KeyT,
	24:  KeyU,
	25:  KeyV,
	26:  KeyW,
	27:  KeyX,
	28:  KeyY,
	29:  KeyZ,
	30:  Key1,
	31:  Key2,
	32:  Key3,
	33:  Key4,
	34:  Key5,
	35:  Key6,
	36:  Key7,
	37:  Key8,
	38:  Key9,
	39:  Key0,
	40:  KeyReturn,
	41:  KeyEsc,
	42:  KeyBackspace,
	43:  KeyTab,
	44:  KeySpace,
	45:  KeyMinus,
	46:  KeyEqual,
	47:  KeyLBracket,
	48:  KeyRBracket,
	49:  KeyBackslash,
	51:  KeySemicolon,
	52:  KeyApostrophe,
	53:  KeyGrave,
	54:  KeyComma,
	55:  KeyDot,
	56:  KeySlash,
	57:  KeyCapsLock,
	58:  KeyF1,
	59:  KeyF2,
	60:  KeyF3,
	61:  KeyF4,
	62:  KeyF5,
	63:  KeyF6,
	64:  KeyF7,
	65:  KeyF8,
	66:  KeyF9,
	67:  KeyF10,
	68:  KeyF11,
	69:  KeyF12,
	70:  KeySysrq,
	71:  KeyScrollLock,
	72:  KeyPause,
	73:  KeyInsert,
	74:  KeyHome,
	75:  KeyPageUp,
	76:  KeyDelete,
	77:  KeyEnd,
	78:  KeyPageDown,
	79:  KeyRight,
	80:  KeyLeft,
	81:  KeyDown,
	82:  KeyUp,
	83:  KeyPadNumLock,
	84:  KeyPadSlash,
	85:  KeyPadStar,
	86:  KeyPadMinus,
	87:  KeyPadPlus,
	88:  KeyPadEnter,
	89:  KeyPad1,
	90:  KeyPad2,
	91:  KeyPad3,
	92:  KeyPad4,
	93:  KeyPad5,
	94:  KeyPad6,
	95:  KeyPad7,
	96:  KeyPad8,
	97:  KeyPad9,
	98:  KeyPad0,
	99:  KeyPadDot,
	103: KeyPadEqual,
	104: KeyF13,
	105: KeyF14,
	106: KeyF15,
	107: KeyF16,
	108: KeyF17,
	109: KeyF18,
	110: KeyF19,
	111: KeyF20,
	112: KeyF21,
	113: KeyF22,
	114: KeyF23,
	115: KeyF24,
	224: KeyLCtrl,
	225: KeyLShift,
	226: KeyLAlt,
	227: KeyLMeta,
	228: KeyRCtrl,
	229: KeyRShift,
	230: KeyRAlt,
	231: KeyRMeta,
}
