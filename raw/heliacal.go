package raw

/*
#include <swephexp.h>
*/
import "C"

// Heliacal functions take geopos (three doubles), datm (four doubles:
// pressure, temperature, humidity, meteorological range) and dobs (six
// doubles describing the observer). objectName is AS_MAXCH bytes.

// SweHeliacalUt calls swe_heliacal_ut.
func SweHeliacalUt(tjdStartUt Double, geopos, datm, dobs *Double, objectName *Char, typeEvent, iflag Int32,
	dret *Double, serr *Char) Int32 {
	return Int32(C.swe_heliacal_ut(C.double(tjdStartUt), cd(geopos), cd(datm), cd(dobs), cc(objectName),
		C.int32(typeEvent), C.int32(iflag), cd(dret), cc(serr)))
}

// SweHeliacalPhenoUt writes 30 doubles into darr.
func SweHeliacalPhenoUt(tjdUt Double, geopos, datm, dobs *Double, objectName *Char, typeEvent, helflag Int32,
	darr *Double, serr *Char) Int32 {
	return Int32(C.swe_heliacal_pheno_ut(C.double(tjdUt), cd(geopos), cd(datm), cd(dobs), cc(objectName),
		C.int32(typeEvent), C.int32(helflag), cd(darr), cc(serr)))
}

// SweVisLimitMag returns -2 when the object is below the horizon.
func SweVisLimitMag(tjdUt Double, geopos, datm, dobs *Double, objectName *Char, helflag Int32,
	dret *Double, serr *Char) Int32 {
	return Int32(C.swe_vis_limit_mag(C.double(tjdUt), cd(geopos), cd(datm), cd(dobs), cc(objectName),
		C.int32(helflag), cd(dret), cc(serr)))
}

// SweHeliacalAngle calls swe_heliacal_angle.
func SweHeliacalAngle(tjdUt Double, dgeo, datm, dobs *Double, helflag Int32, mag, aziObj, aziSun, aziMoon,
	altMoon Double, dret *Double, serr *Char) Int32 {
	return Int32(C.swe_heliacal_angle(C.double(tjdUt), cd(dgeo), cd(datm), cd(dobs), C.int32(helflag),
		C.double(mag), C.double(aziObj), C.double(aziSun), C.double(aziMoon), C.double(altMoon), cd(dret), cc(serr)))
}

// SweTopoArcusVisionis calls swe_topo_arcus_visionis.
func SweTopoArcusVisionis(tjdUt Double, dgeo, datm, dobs *Double, helflag Int32, mag, aziObj, altObj, aziSun,
	aziMoon, altMoon Double, dret *Double, serr *Char) Int32 {
	return Int32(C.swe_topo_arcus_visionis(C.double(tjdUt), cd(dgeo), cd(datm), cd(dobs), C.int32(helflag),
		C.double(mag), C.double(aziObj), C.double(altObj), C.double(aziSun), C.double(aziMoon), C.double(altMoon),
		cd(dret), cc(serr)))
}
