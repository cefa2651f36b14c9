package swisseph

import (
	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/internal/status"
)

// Result holds the status code and output payload of a native call.
//
// On success Code is at or above OK. Several entry points return the
// calculation flags actually used, an eclipse type bitmask or a vision
// mode in Code, so a positive value is not an error; compare it with what
// was requested to detect a degraded result, and read Message for the
// native explanation. On failure the returned error is an *Error and
// Result carries only the failing Code.
type Result[T any] struct {
	Code int32
	Data T

	// Message is what the native library left in its error buffer on
	// success, such as a notice that it fell back to another ephemeris.
	// It is empty for calls without an error buffer.
	Message string
}

// Warning reports whether Code is a positive status.
func (r Result[T]) Warning() bool {
	return status.Warning(r.Code)
}

// check classifies code for op. serr may be nil for calls without an
// error buffer.
func check[T any](op string, code int32, serr *buffer.Max, data T) (Result[T], error) {
	var msg string
	if serr != nil {
		msg = serr.Text()
	}
	if err := status.Check(op, code, msg); err != nil {
		return Result[T]{Code: code}, err
	}
	return Result[T]{Code: code, Data: data, Message: msg}, nil
}

// Star is the result of a call that takes an object name which the native
// library may rewrite, for example "Spica" becoming "Spica,alVir".
type Star[T any] struct {
	Code int32
	// Name is the name as rewritten by the native library.
	Name string
	Data T

	// Message is the native notice left on success, as in Result.
	Message string
}

func checkStar[T any](op string, code int32, name, serr *buffer.Max, data T) (Star[T], error) {
	if err := status.Check(op, code, serr.Text()); err != nil {
		return Star[T]{Code: code}, err
	}
	return Star[T]{Code: code, Name: name.Text(), Data: data, Message: serr.Text()}, nil
}

// Nodes holds the nodes and apsides of a body. Each array has the layout
// of a swe_calc position.
type Nodes struct {
	Code       int32
	Ascending  [6]float64
	Descending [6]float64
	Perihelion [6]float64
	Aphelion   [6]float64
}

// OrbitDistance holds the maximum, minimum and true distance of a body.
type OrbitDistance struct {
	Code int32
	Max  float64
	Min  float64
	True float64
}

// MoonNode is the time of a lunar node crossing with the Moon's position.
type MoonNode struct {
	JD  float64
	Lon float64
	Lat float64
}

// EclipseLocal holds the times (tret) and attributes (attr) of a local
// eclipse or occultation. Code is the eclipse type bitmask.
type EclipseLocal struct {
	Code int32
	Tret [10]float64
	Attr [20]float64
}

// EclipseWhere holds the geographic position (geopos) and attributes of
// the central line of an eclipse or occultation.
type EclipseWhere struct {
	Code   int32
	GeoPos [10]float64
	Attr   [20]float64
}

// FileData describes an ephemeris file opened by the native library.
type FileData struct {
	// Path is empty when no file of that kind has been used.
	Path  string
	Start float64
	End   float64
	// DENum is the JPL ephemeris number the file was derived from.
	DENum int32
}

// Date is a calendar date with the time as fractional hours.
type Date struct {
	Year  int32
	Month int32
	Day   int32
	Hour  float64
}

// DateTime is a calendar date with separate time fields.
type DateTime struct {
	Year   int32
	Month  int32
	Day    int32
	Hour   int32
	Minute int32
	Second float64
}

// SplitDegrees is an angle split by SplitDeg.
type SplitDegrees struct {
	Deg      int32
	Min      int32
	Sec      int32
	Fraction float64
	// Sign is the sign (or zodiac sign / nakshatra with the
	// corresponding split flags).
	Sign int32
}
