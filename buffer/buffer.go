// Package buffer bridges Go strings and booleans to the fixed-width,
// NUL-terminated conventions of the Swiss Ephemeris C API.
//
// Every text parameter of the native library is a char array of AS_MAXCH
// bytes that the library may overwrite in place. Max models that array.
// A Max is created immediately before a native call and decoded right
// after it; it is never kept across calls.
package buffer

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// MaxCh is the length of every native string buffer (AS_MAXCH in swephexp.h).
const MaxCh = 256

// Native boolean values (MY_TRUE and MY_FALSE in sweodef.h).
const (
	True  int32 = 1
	False int32 = 0
)

var (
	// ErrTooLong is returned when a string does not fit into a Max
	// together with its terminating NUL byte.
	ErrTooLong = errors.New("buffer: string exceeds native buffer capacity")

	// ErrEmbeddedNUL is returned when a string contains a NUL byte, which the
	// native library would read as the end of the string.
	ErrEmbeddedNUL = errors.New("buffer: string contains NUL byte")
)

// Max is a fixed native string buffer of MaxCh bytes.
type Max [MaxCh]byte

// New returns a zero-filled buffer.
func New() Max {
	return Max{}
}

// FromString copies s left-aligned into a zero-filled buffer. The tail of
// the buffer stays zero, so the copy is always NUL terminated.
func FromString(s string) (Max, error) {
	var b Max
	if len(s) > MaxCh-1 {
		return b, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLong, len(s), MaxCh-1)
	}
	if _, err := unix.ByteSliceFromString(s); err != nil {
		return b, ErrEmbeddedNUL
	}
	copy(b[:], s)
	return b, nil
}

// MustFromString is like FromString but panics on error.
// Use it only for constant inputs.
func MustFromString(s string) Max {
	b, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// String decodes the whole buffer, trailing zero bytes included.
// Use Text to get only the logical content.
func String(b Max) string {
	return string(b[:])
}

// Text decodes the buffer up to the first NUL byte.
func (b *Max) Text() string {
	return unix.ByteSliceToString(b[:])
}

// Ptr returns a pointer to the first byte, for passing to the native tiers.
func (b *Max) Ptr() *byte {
	return &b[0]
}

// FromPtr decodes a NUL-terminated string owned by the native library,
// such as the static storage returned by swe_house_name. A nil pointer
// decodes to the empty string.
func FromPtr(p *byte) string {
	if p == nil {
		return ""
	}
	return unix.BytePtrToString(p)
}

// Bool maps a Go bool to the native TRUE/FALSE integers.
func Bool(b bool) int32 {
	if b {
		return True
	}
	return False
}
