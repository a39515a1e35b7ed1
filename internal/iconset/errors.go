package iconset

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure
type Kind int

const (
	// IOFailure covers directory creation, file creation and close
	IOFailure Kind = iota + 1
	// EncodeFailure covers PNG and ICO encoding
	EncodeFailure
	// RenderFailure covers rasterization errors
	RenderFailure
)

func (k Kind) String() string {
	switch k {
	case IOFailure:
		return "io failure"
	case EncodeFailure:
		return "encode failure"
	case RenderFailure:
		return "render failure"
	default:
		return "unknown failure"
	}
}

// Error is returned by every generator operation
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind carried by err, or 0 if it has none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsIOFailure reports whether err is a filesystem failure
func IsIOFailure(err error) bool {
	return KindOf(err) == IOFailure
}

// IsEncodeFailure reports whether err is an encoding failure
func IsEncodeFailure(err error) bool {
	return KindOf(err) == EncodeFailure
}
