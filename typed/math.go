package typed

import "github.com/jgrowl/swisseph-go/raw"

// SweDegnorm is raw.SweDegnorm with Go types.
func SweDegnorm(x float64) float64 { return float64(raw.SweDegnorm(raw.Double(x))) }

// SweRadnorm is raw.SweRadnorm with Go types.
func SweRadnorm(x float64) float64 { return float64(raw.SweRadnorm(raw.Double(x))) }

// SweDegMidp is raw.SweDegMidp with Go types.
func SweDegMidp(x1, x0 float64) float64 {
	return float64(raw.SweDegMidp(raw.Double(x1), raw.Double(x0)))
}

// SweRadMidp is raw.SweRadMidp with Go types.
func SweRadMidp(x1, x0 float64) float64 {
	return float64(raw.SweRadMidp(raw.Double(x1), raw.Double(x0)))
}

// SweDifdegn is raw.SweDifdegn with Go types.
func SweDifdegn(p1, p2 float64) float64 {
	return float64(raw.SweDifdegn(raw.Double(p1), raw.Double(p2)))
}

// SweDifdeg2n is raw.SweDifdeg2n with Go types.
func SweDifdeg2n(p1, p2 float64) float64 {
	return float64(raw.SweDifdeg2n(raw.Double(p1), raw.Double(p2)))
}

// SweDifrad2n is raw.SweDifrad2n with Go types.
func SweDifrad2n(p1, p2 float64) float64 {
	return float64(raw.SweDifrad2n(raw.Double(p1), raw.Double(p2)))
}

// SweCsnorm is raw.SweCsnorm with Go types.
func SweCsnorm(p int32) int32 { return int32(raw.SweCsnorm(raw.Centisec(p))) }

// SweDifcsn is raw.SweDifcsn with Go types.
func SweDifcsn(p1, p2 int32) int32 { return int32(raw.SweDifcsn(raw.Centisec(p1), raw.Centisec(p2))) }

// SweDifcs2n is raw.SweDifcs2n with Go types.
func SweDifcs2n(p1, p2 int32) int32 { return int32(raw.SweDifcs2n(raw.Centisec(p1), raw.Centisec(p2))) }

// SweCsroundsec is raw.SweCsroundsec with Go types.
func SweCsroundsec(x int32) int32 { return int32(raw.SweCsroundsec(raw.Centisec(x))) }

// SweD2l is raw.SweD2l with Go types.
func SweD2l(x float64) int32 { return int32(raw.SweD2l(raw.Double(x))) }

// SweSplitDeg is raw.SweSplitDeg with Go types.
func SweSplitDeg(ddeg float64, roundflag int32, ideg, imin, isec *int32, dsecfr *float64, isgn *int32) {
	raw.SweSplitDeg(raw.Double(ddeg), raw.Int32(roundflag), i32(ideg), i32(imin), i32(isec), d(dsecfr), i32(isgn))
}

// SweCs2timestr is raw.SweCs2timestr with Go types.
func SweCs2timestr(t, sep int32, suppressZero bool, a *byte) *byte {
	return s(raw.SweCs2timestr(raw.Centisec(t), raw.Int(sep), asBool(suppressZero), c(a)))
}

// SweCs2lonlatstr is raw.SweCs2lonlatstr with Go types.
func SweCs2lonlatstr(t int32, pchar, mchar byte, sp *byte) *byte {
	return s(raw.SweCs2lonlatstr(raw.Centisec(t), raw.Char(pchar), raw.Char(mchar), c(sp)))
}

// SweCs2degstr is raw.SweCs2degstr with Go types.
func SweCs2degstr(t int32, a *byte) *byte { return s(raw.SweCs2degstr(raw.Centisec(t), c(a))) }
