// Package status classifies Swiss Ephemeris return codes.
//
// Native calls return a signed status code with three bands: OK, the
// generic ERR failure, and positive values that are still successes but
// carry extra meaning (flag echoes or warnings). Anything below OK is a
// failure, and only then is the serr buffer guaranteed to be meaningful.
package status

import (
	"errors"
	"fmt"
)

// Status band boundaries (OK and ERR in sweodef.h).
const (
	OK  int32 = 0
	ERR int32 = -1
)

// Codes with a meaning beyond generic failure.
const (
	// BelowHorizon is returned by swe_vis_limit_mag when the object is
	// below the horizon.
	BelowHorizon int32 = -2
	// Circumpolar is returned by swe_rise_trans when the body does not
	// rise or set.
	Circumpolar int32 = -2
)

// Errors from native calls
var (
	ErrNative       = errors.New("swisseph: native call failed")
	ErrBelowHorizon = errors.New("swisseph: object below horizon")
	ErrCircumpolar  = errors.New("swisseph: body does not rise or set")
	ErrInvalidDate  = errors.New("swisseph: invalid calendar date")
)

// Error is a failed native call.
type Error struct {
	// Op is the C function that failed.
	Op string
	// Code is the status code returned by the native library.
	Code int32
	// Message is the decoded serr buffer, or a synthesised message when
	// the library left it empty.
	Message string

	sentinel error
}

func (e *Error) Error() string {
	return fmt.Sprintf("swisseph: %s: %s (code %d)", e.Op, e.Message, e.Code)
}

// Is reports whether target is ErrNative or the sentinel for this code.
func (e *Error) Is(target error) bool {
	if target == ErrNative {
		return true
	}
	return e.sentinel != nil && target == e.sentinel
}

// Failed reports whether code is in the failure band.
func Failed(code int32) bool {
	return code < OK
}

// Warning reports whether code is a success carrying a positive value.
func Warning(code int32) bool {
	return code > OK
}

// Check returns nil for codes at or above OK and an *Error otherwise.
// serr is the decoded native message; it may be empty.
func Check(op string, code int32, serr string) error {
	if !Failed(code) {
		return nil
	}
	return New(op, code, serr)
}

// New builds an *Error for a failed call regardless of its code.
func New(op string, code int32, serr string) *Error {
	if serr == "" {
		serr = fmt.Sprintf("%s failed", op)
	}
	e := &Error{Op: op, Code: code, Message: serr}
	switch {
	case op == "swe_vis_limit_mag" && code == BelowHorizon:
		e.sentinel = ErrBelowHorizon
	case (op == "swe_rise_trans" || op == "swe_rise_trans_true_hor") && code == Circumpolar:
		e.sentinel = ErrCircumpolar
	}
	return e
}

// Invalid builds an *Error that also matches ErrInvalidDate.
func Invalid(op string, code int32, serr string) *Error {
	e := New(op, code, serr)
	e.sentinel = ErrInvalidDate
	return e
}
