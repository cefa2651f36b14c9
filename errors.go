package swisseph

import (
	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/internal/status"
)

// Error is a failed native call. It carries the C function name, the
// status code and the decoded serr message, which is never empty.
type Error = status.Error

// Errors that can be returned by this package.
var (
	// ErrNative matches every *Error.
	ErrNative = status.ErrNative

	// ErrBelowHorizon is returned by VisLimitMag when the object is below the horizon.
	ErrBelowHorizon = status.ErrBelowHorizon

	// ErrCircumpolar is returned by RiseTrans when the body does not rise or set.
	ErrCircumpolar = status.ErrCircumpolar

	// ErrInvalidDate is returned by DateConversion for a date that does not exist
	// in the requested calendar.
	ErrInvalidDate = status.ErrInvalidDate

	// ErrTooLong is returned when a text argument does not fit into a native buffer.
	ErrTooLong = buffer.ErrTooLong

	// ErrEmbeddedNUL is returned when a text argument contains a NUL byte.
	ErrEmbeddedNUL = buffer.ErrEmbeddedNUL
)

// Status codes shared by most native calls.
const (
	OK  = status.OK
	ERR = status.ERR
)
