package raw

/*
#include <swephexp.h>
*/
import "C"

// The star argument of the fixed star functions is read and rewritten in
// place: it must address AS_MAXCH bytes holding a NUL terminated name.

// SweFixstar calls swe_fixstar.
func SweFixstar(star *Char, tjd Double, iflag Int32, xx *Double, serr *Char) Int32 {
	return Int32(C.swe_fixstar(cc(star), C.double(tjd), C.int32(iflag), cd(xx), cc(serr)))
}

// SweFixstarUt calls swe_fixstar_ut.
func SweFixstarUt(star *Char, tjdUt Double, iflag Int32, xx *Double, serr *Char) Int32 {
	return Int32(C.swe_fixstar_ut(cc(star), C.double(tjdUt), C.int32(iflag), cd(xx), cc(serr)))
}

// SweFixstarMag calls swe_fixstar_mag.
func SweFixstarMag(star *Char, mag *Double, serr *Char) Int32 {
	return Int32(C.swe_fixstar_mag(cc(star), cd(mag), cc(serr)))
}

// SweFixstar2 calls swe_fixstar2.
func SweFixstar2(star *Char, tjd Double, iflag Int32, xx *Double, serr *Char) Int32 {
	return Int32(C.swe_fixstar2(cc(star), C.double(tjd), C.int32(iflag), cd(xx), cc(serr)))
}

// SweFixstar2Ut calls swe_fixstar2_ut.
func SweFixstar2Ut(star *Char, tjdUt Double, iflag Int32, xx *Double, serr *Char) Int32 {
	return Int32(C.swe_fixstar2_ut(cc(star), C.double(tjdUt), C.int32(iflag), cd(xx), cc(serr)))
}

// SweFixstar2Mag calls swe_fixstar2_mag.
func SweFixstar2Mag(star *Char, mag *Double, serr *Char) Int32 {
	return Int32(C.swe_fixstar2_mag(cc(star), cd(mag), cc(serr)))
}
