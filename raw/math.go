package raw

/*
#include <swephexp.h>

// The AS_BOOL and centisec parameters are funnelled through plain C types
// so the Go side does not depend on how sweodef.h spells them.
static void go_swe_set_interpolate_nut(int b) { swe_set_interpolate_nut(b); }
static int32 go_swe_csnorm(int32 p) { return swe_csnorm(p); }
static int32 go_swe_difcsn(int32 p1, int32 p2) { return swe_difcsn(p1, p2); }
static int32 go_swe_difcs2n(int32 p1, int32 p2) { return swe_difcs2n(p1, p2); }
static int32 go_swe_csroundsec(int32 x) { return swe_csroundsec(x); }
static char *go_swe_cs2timestr(int32 t, int sep, int suppress, char *a) { return swe_cs2timestr(t, sep, suppress, a); }
static char *go_swe_cs2lonlatstr(int32 t, char p, char m, char *s) { return swe_cs2lonlatstr(t, p, m, s); }
static char *go_swe_cs2degstr(int32 t, char *a) { return swe_cs2degstr(t, a); }
*/
import "C"

// SweSetInterpolateNut calls swe_set_interpolate_nut.
func SweSetInterpolateNut(doInterpolate AsBool) {
	C.go_swe_set_interpolate_nut(C.int(doInterpolate))
}

// SweDegnorm calls swe_degnorm.
func SweDegnorm(x Double) Double {
	return Double(C.swe_degnorm(C.double(x)))
}

// SweRadnorm calls swe_radnorm.
func SweRadnorm(x Double) Double {
	return Double(C.swe_radnorm(C.double(x)))
}

// SweDegMidp calls swe_deg_midp.
func SweDegMidp(x1, x0 Double) Double {
	return Double(C.swe_deg_midp(C.double(x1), C.double(x0)))
}

// SweRadMidp calls swe_rad_midp.
func SweRadMidp(x1, x0 Double) Double {
	return Double(C.swe_rad_midp(C.double(x1), C.double(x0)))
}

// SweDifdegn calls swe_difdegn.
func SweDifdegn(p1, p2 Double) Double {
	return Double(C.swe_difdegn(C.double(p1), C.double(p2)))
}

// SweDifdeg2n calls swe_difdeg2n.
func SweDifdeg2n(p1, p2 Double) Double {
	return Double(C.swe_difdeg2n(C.double(p1), C.double(p2)))
}

// SweDifrad2n calls swe_difrad2n.
func SweDifrad2n(p1, p2 Double) Double {
	return Double(C.swe_difrad2n(C.double(p1), C.double(p2)))
}

// SweCsnorm calls swe_csnorm.
func SweCsnorm(p Centisec) Centisec {
	return Centisec(C.go_swe_csnorm(C.int32(p)))
}

// SweDifcsn calls swe_difcsn.
func SweDifcsn(p1, p2 Centisec) Centisec {
	return Centisec(C.go_swe_difcsn(C.int32(p1), C.int32(p2)))
}

// SweDifcs2n calls swe_difcs2n.
func SweDifcs2n(p1, p2 Centisec) Centisec {
	return Centisec(C.go_swe_difcs2n(C.int32(p1), C.int32(p2)))
}

// SweCsroundsec calls swe_csroundsec.
func SweCsroundsec(x Centisec) Centisec {
	return Centisec(C.go_swe_csroundsec(C.int32(x)))
}

// SweD2l rounds x to the nearest integer.
func SweD2l(x Double) Int32 {
	return Int32(C.swe_d2l(C.double(x)))
}

// SweSplitDeg splits ddeg into degrees, minutes, seconds and fraction.
func SweSplitDeg(ddeg Double, roundflag Int32, ideg, imin, isec *Int32, dsecfr *Double, isgn *Int32) {
	C.swe_split_deg(C.double(ddeg), C.int32(roundflag), ci32(ideg), ci32(imin), ci32(isec), cd(dsecfr), ci32(isgn))
}

// SweCs2timestr formats t as a time into a (AS_MAXCH bytes) and returns a.
func SweCs2timestr(t Centisec, sep Int, suppressZero AsBool, a *Char) *Char {
	return gc(C.go_swe_cs2timestr(C.int32(t), C.int(sep), C.int(suppressZero), cc(a)))
}

// SweCs2lonlatstr calls swe_cs2lonlatstr.
func SweCs2lonlatstr(t Centisec, pchar, mchar Char, s *Char) *Char {
	return gc(C.go_swe_cs2lonlatstr(C.int32(t), C.char(pchar), C.char(mchar), cc(s)))
}

// SweCs2degstr calls swe_cs2degstr.
func SweCs2degstr(t Centisec, a *Char) *Char {
	return gc(C.go_swe_cs2degstr(C.int32(t), cc(a)))
}
