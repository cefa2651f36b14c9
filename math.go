package swisseph

import (
	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/typed"
)

// Degnorm normalizes x to [0, 360).
func Degnorm(x float64) float64 { return typed.SweDegnorm(x) }

// Radnorm normalizes x to [0, 2π).
func Radnorm(x float64) float64 { return typed.SweRadnorm(x) }

// DegMidp returns the midpoint of two angles in degrees.
func DegMidp(x1, x0 float64) float64 { return typed.SweDegMidp(x1, x0) }

// RadMidp returns the midpoint of two angles in radians.
func RadMidp(x1, x0 float64) float64 { return typed.SweRadMidp(x1, x0) }

// Difdegn returns p1 - p2 normalized to [0, 360).
func Difdegn(p1, p2 float64) float64 { return typed.SweDifdegn(p1, p2) }

// Difdeg2n returns p1 - p2 normalized to [-180, 180).
func Difdeg2n(p1, p2 float64) float64 { return typed.SweDifdeg2n(p1, p2) }

// Difrad2n returns p1 - p2 normalized to [-π, π).
func Difrad2n(p1, p2 float64) float64 { return typed.SweDifrad2n(p1, p2) }

// Centisec is an angle or time in 1/100 arc seconds.
type Centisec int32

// Csnorm normalizes p to [0, 360°).
func Csnorm(p Centisec) Centisec { return Centisec(typed.SweCsnorm(int32(p))) }

// Difcsn returns p1 - p2 normalized to [0, 360°).
func Difcsn(p1, p2 Centisec) Centisec { return Centisec(typed.SweDifcsn(int32(p1), int32(p2))) }

// Difcs2n returns p1 - p2 normalized to [-180°, 180°).
func Difcs2n(p1, p2 Centisec) Centisec { return Centisec(typed.SweDifcs2n(int32(p1), int32(p2))) }

// Csroundsec rounds x to whole seconds, but never up to the next sign.
func Csroundsec(x Centisec) Centisec { return Centisec(typed.SweCsroundsec(int32(x))) }

// D2l rounds x to the nearest integer.
func D2l(x float64) int32 { return typed.SweD2l(x) }

// SplitDeg splits an angle into degrees, minutes and seconds.
func SplitDeg(ddeg float64, flags SplitFlag) SplitDegrees {
	var s SplitDegrees
	typed.SweSplitDeg(ddeg, int32(flags), &s.Deg, &s.Min, &s.Sec, &s.Fraction, &s.Sign)
	return s
}

// CsToTimeStr formats t as a time "hh:mm:ss" using sep as separator.
// With suppressZero a zero seconds field is left out.
func CsToTimeStr(t Centisec, sep byte, suppressZero bool) string {
	a := buffer.New()
	return buffer.FromPtr(typed.SweCs2timestr(int32(t), int32(sep), suppressZero, a.Ptr()))
}

// CsToLonLatStr formats t as a longitude or latitude, with pchar for
// positive and mchar for negative values, e.g. 'E' and 'W'.
func CsToLonLatStr(t Centisec, pchar, mchar byte) string {
	a := buffer.New()
	return buffer.FromPtr(typed.SweCs2lonlatstr(int32(t), pchar, mchar, a.Ptr()))
}

// CsToDegStr formats t as degrees within a zodiac sign.
func CsToDegStr(t Centisec) string {
	a := buffer.New()
	return buffer.FromPtr(typed.SweCs2degstr(int32(t), a.Ptr()))
}
