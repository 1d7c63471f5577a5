// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package sdlvk

// ErrorKind identifies the kind of an Error.
type ErrorKind int

// Error kinds.
const (
	// Unknown means that the window system information
	// query failed without a retrievable message, or that
	// surface creation failed for a reason that has no
	// kind of its own.
	Unknown ErrorKind = iota
	// PlatformNotSupported means that the window's
	// subsystem has no matching Vulkan surface extension.
	PlatformNotSupported
	// OutOfMemory means that surface creation failed due
	// to resource exhaustion.
	OutOfMemory
	// MissingExtension means that the instance lacks the
	// surface extension that the platform requires.
	MissingExtension
	// Generic means that the window system information
	// query failed with a retrievable message.
	Generic
)

func (k ErrorKind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case PlatformNotSupported:
		return "PlatformNotSupported"
	case OutOfMemory:
		return "OutOfMemory"
	case MissingExtension:
		return "MissingExtension"
	case Generic:
		return "Generic"
	}
	return "ErrorKind(?)"
}

// Error is the error type returned by RequiredExtensions
// and NewSurface.
type Error struct {
	Kind ErrorKind
	// Name is the extension name when Kind is
	// MissingExtension.
	Name string
	// Msg is the toolkit's message when Kind is Generic.
	Msg string
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	var s string
	switch e.Kind {
	case PlatformNotSupported:
		s = "sdlvk: platform not supported"
	case OutOfMemory:
		s = "sdlvk: out of memory"
	case MissingExtension:
		s = "sdlvk: missing extension " + e.Name
	case Generic:
		s = "sdlvk: " + e.Msg
	default:
		s = "sdlvk: unknown error"
	}
	if e.Err != nil {
		s += " (" + e.Err.Error() + ")"
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
// Name and Msg are compared only when set in target, so
// that the sentinel values match any error of their kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind != e.Kind {
		return false
	}
	return (t.Name == "" || t.Name == e.Name) && (t.Msg == "" || t.Msg == e.Msg)
}

// Sentinel errors, for use with errors.Is.
var (
	ErrUnknown              = &Error{Kind: Unknown}
	ErrPlatformNotSupported = &Error{Kind: PlatformNotSupported}
	ErrOutOfMemory          = &Error{Kind: OutOfMemory}
	ErrMissingExtension     = &Error{Kind: MissingExtension}
	ErrGeneric              = &Error{Kind: Generic}
)
