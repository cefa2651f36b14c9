package raw

/*
#include <swephexp.h>
*/
import "C"

// Eclipse and occultation searches. As input, geopos holds longitude,
// latitude and altitude (three doubles). The *_where functions write it
// instead and need ten doubles. attr holds 20 doubles and tret 10.

// SweSolEclipseWhere calls swe_sol_eclipse_where.
func SweSolEclipseWhere(tjd Double, ifl Int32, geopos, attr *Double, serr *Char) Int32 {
	return Int32(C.swe_sol_eclipse_where(C.double(tjd), C.int32(ifl), cd(geopos), cd(attr), cc(serr)))
}

// SweSolEclipseHow calls swe_sol_eclipse_how.
func SweSolEclipseHow(tjd Double, ifl Int32, geopos, attr *Double, serr *Char) Int32 {
	return Int32(C.swe_sol_eclipse_how(C.double(tjd), C.int32(ifl), cd(geopos), cd(attr), cc(serr)))
}

// SweSolEclipseWhenLoc calls swe_sol_eclipse_when_loc.
func SweSolEclipseWhenLoc(tjdStart Double, ifl Int32, geopos, tret, attr *Double, backward Int32, serr *Char) Int32 {
	return Int32(C.swe_sol_eclipse_when_loc(C.double(tjdStart), C.int32(ifl), cd(geopos), cd(tret), cd(attr),
		C.int32(backward), cc(serr)))
}

// SweSolEclipseWhenGlob calls swe_sol_eclipse_when_glob.
func SweSolEclipseWhenGlob(tjdStart Double, ifl, ifltype Int32, tret *Double, backward Int32, serr *Char) Int32 {
	return Int32(C.swe_sol_eclipse_when_glob(C.double(tjdStart), C.int32(ifl), C.int32(ifltype), cd(tret),
		C.int32(backward), cc(serr)))
}

// SweLunOccultWhere calls swe_lun_occult_where.
func SweLunOccultWhere(tjd Double, ipl Int32, starname *Char, ifl Int32, geopos, attr *Double, serr *Char) Int32 {
	return Int32(C.swe_lun_occult_where(C.double(tjd), C.int32(ipl), cc(starname), C.int32(ifl), cd(geopos),
		cd(attr), cc(serr)))
}

// SweLunOccultWhenLoc calls swe_lun_occult_when_loc.
func SweLunOccultWhenLoc(tjdStart Double, ipl Int32, starname *Char, ifl Int32, geopos, tret, attr *Double,
	backward Int32, serr *Char) Int32 {
	return Int32(C.swe_lun_occult_when_loc(C.double(tjdStart), C.int32(ipl), cc(starname), C.int32(ifl),
		cd(geopos), cd(tret), cd(attr), C.int32(backward), cc(serr)))
}

// SweLunOccultWhenGlob calls swe_lun_occult_when_glob.
func SweLunOccultWhenGlob(tjdStart Double, ipl Int32, starname *Char, ifl, ifltype Int32, tret *Double,
	backward Int32, serr *Char) Int32 {
	return Int32(C.swe_lun_occult_when_glob(C.double(tjdStart), C.int32(ipl), cc(starname), C.int32(ifl),
		C.int32(ifltype), cd(tret), C.int32(backward), cc(serr)))
}

// SweLunEclipseHow calls swe_lun_eclipse_how.
func SweLunEclipseHow(tjdUt Double, ifl Int32, geopos, attr *Double, serr *Char) Int32 {
	return Int32(C.swe_lun_eclipse_how(C.double(tjdUt), C.int32(ifl), cd(geopos), cd(attr), cc(serr)))
}

// SweLunEclipseWhen calls swe_lun_eclipse_when.
func SweLunEclipseWhen(tjdStart Double, ifl, ifltype Int32, tret *Double, backward Int32, serr *Char) Int32 {
	return Int32(C.swe_lun_eclipse_when(C.double(tjdStart), C.int32(ifl), C.int32(ifltype), cd(tret),
		C.int32(backward), cc(serr)))
}

// SweLunEclipseWhenLoc calls swe_lun_eclipse_when_loc.
func SweLunEclipseWhenLoc(tjdStart Double, ifl Int32, geopos, tret, attr *Double, backward Int32, serr *Char) Int32 {
	return Int32(C.swe_lun_eclipse_when_loc(C.double(tjdStart), C.int32(ifl), cd(geopos), cd(tret), cd(attr),
		C.int32(backward), cc(serr)))
}
