package solver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLockMode is returned by ParseLockMode for names other than
// "angle" and "height".
var ErrUnknownLockMode = errors.New("unknown lock mode")

// LockMode selects the observation the solver must never overwrite.
// Distance is not lockable.
type LockMode int

const (
	AngleLocked LockMode = iota
	HeightLocked
)

// DefaultLockMode is used when nothing else selects a mode.
const DefaultLockMode = AngleLocked

// ParseLockMode accepts "angle" or "height" in any case. An empty name
// resolves to DefaultLockMode.
func ParseLockMode(name string) (LockMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultLockMode, nil
	case "angle":
		return AngleLocked, nil
	case "height":
		return HeightLocked, nil
	}
	return DefaultLockMode, fmt.Errorf("%w: %q", ErrUnknownLockMode, name)
}

// Field returns the protected field.
func (l LockMode) Field() Field {
	if l == HeightLocked {
		return Height
	}
	return Angle
}

// Locks reports whether f is protected under l.
func (l LockMode) Locks(f Field) bool {
	return f != NoField && l.Field() == f
}

// Toggle switches between the two modes.
func (l LockMode) Toggle() LockMode {
	if l == HeightLocked {
		return AngleLocked
	}
	return HeightLocked
}

func (l LockMode) String() string {
	return l.Field().String()
}
