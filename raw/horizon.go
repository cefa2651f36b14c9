package raw

/*
#include <swephexp.h>
*/
import "C"

// SweRefrac calls swe_refrac.
func SweRefrac(inalt, atpress, attemp Double, calcFlag Int32) Double {
	return Double(C.swe_refrac(C.double(inalt), C.double(atpress), C.double(attemp), C.int32(calcFlag)))
}

// SweRefracExtended writes four doubles into dret.
func SweRefracExtended(inalt, geoalt, atpress, attemp, lapseRate Double, calcFlag Int32, dret *Double) Double {
	return Double(C.swe_refrac_extended(C.double(inalt), C.double(geoalt), C.double(atpress), C.double(attemp),
		C.double(lapseRate), C.int32(calcFlag), cd(dret)))
}

// SweAzalt converts xin (three doubles) to azimuth and altitude in xaz (three doubles).
func SweAzalt(tjdUt Double, calcFlag Int32, geopos *Double, atpress, attemp Double, xin, xaz *Double) {
	C.swe_azalt(C.double(tjdUt), C.int32(calcFlag), cd(geopos), C.double(atpress), C.double(attemp), cd(xin), cd(xaz))
}

// SweAzaltRev calls swe_azalt_rev.
func SweAzaltRev(tjdUt Double, calcFlag Int32, geopos, xin, xout *Double) {
	C.swe_azalt_rev(C.double(tjdUt), C.int32(calcFlag), cd(geopos), cd(xin), cd(xout))
}

// SweRiseTrans returns -2 when the body is circumpolar. tret holds 10 doubles.
func SweRiseTrans(tjdUt Double, ipl Int32, starname *Char, epheflag, rsmi Int32, geopos *Double,
	atpress, attemp Double, tret *Double, serr *Char) Int32 {
	return Int32(C.swe_rise_trans(C.double(tjdUt), C.int32(ipl), cc(starname), C.int32(epheflag), C.int32(rsmi),
		cd(geopos), C.double(atpress), C.double(attemp), cd(tret), cc(serr)))
}

// SweRiseTransTrueHor calls swe_rise_trans_true_hor.
func SweRiseTransTrueHor(tjdUt Double, ipl Int32, starname *Char, epheflag, rsmi Int32, geopos *Double,
	atpress, attemp, horhgt Double, tret *Double, serr *Char) Int32 {
	return Int32(C.swe_rise_trans_true_hor(C.double(tjdUt), C.int32(ipl), cc(starname), C.int32(epheflag),
		C.int32(rsmi), cd(geopos), C.double(atpress), C.double(attemp), C.double(horhgt), cd(tret), cc(serr)))
}

// SweCotrans rotates xpo (three doubles) by eps degrees into xpn.
func SweCotrans(xpo, xpn *Double, eps Double) {
	C.swe_cotrans(cd(xpo), cd(xpn), C.double(eps))
}

// SweCotransSp rotates position and speed (six doubles).
func SweCotransSp(xpo, xpn *Double, eps Double) {
	C.swe_cotrans_sp(cd(xpo), cd(xpn), C.double(eps))
}
