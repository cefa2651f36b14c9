package typed

import "github.com/jgrowl/swisseph-go/raw"

// SweHeliacalUt is raw.SweHeliacalUt with Go types.
func SweHeliacalUt(tjdStartUt float64, geopos, datm, dobs *float64, objectName *byte, typeEvent, iflag int32,
	dret *float64, serr *byte) int32 {
	return int32(raw.SweHeliacalUt(raw.Double(tjdStartUt), d(geopos), d(datm), d(dobs), c(objectName),
		raw.Int32(typeEvent), raw.Int32(iflag), d(dret), c(serr)))
}

// SweHeliacalPhenoUt is raw.SweHeliacalPhenoUt with Go types.
func SweHeliacalPhenoUt(tjdUt float64, geopos, datm, dobs *float64, objectName *byte, typeEvent, helflag int32,
	darr *float64, serr *byte) int32 {
	return int32(raw.SweHeliacalPhenoUt(raw.Double(tjdUt), d(geopos), d(datm), d(dobs), c(objectName),
		raw.Int32(typeEvent), raw.Int32(helflag), d(darr), c(serr)))
}

// SweVisLimitMag is raw.SweVisLimitMag with Go types.
func SweVisLimitMag(tjdUt float64, geopos, datm, dobs *float64, objectName *byte, helflag int32,
	dret *float64, serr *byte) int32 {
	return int32(raw.SweVisLimitMag(raw.Double(tjdUt), d(geopos), d(datm), d(dobs), c(objectName),
		raw.Int32(helflag), d(dret), c(serr)))
}

// SweHeliacalAngle is raw.SweHeliacalAngle with Go types.
func SweHeliacalAngle(tjdUt float64, dgeo, datm, dobs *float64, helflag int32, mag, aziObj, aziSun, aziMoon,
	altMoon float64, dret *float64, serr *byte) int32 {
	return int32(raw.SweHeliacalAngle(raw.Double(tjdUt), d(dgeo), d(datm), d(dobs), raw.Int32(helflag),
		raw.Double(mag), raw.Double(aziObj), raw.Double(aziSun), raw.Double(aziMoon), raw.Double(altMoon),
		d(dret), c(serr)))
}

// SweTopoArcusVisionis is raw.SweTopoArcusVisionis with Go types.
func SweTopoArcusVisionis(tjdUt float64, dgeo, datm, dobs *float64, helflag int32, mag, aziObj, altObj, aziSun,
	aziMoon, altMoon float64, dret *float64, serr *byte) int32 {
	return int32(raw.SweTopoArcusVisionis(raw.Double(tjdUt), d(dgeo), d(datm), d(dobs), raw.Int32(helflag),
		raw.Double(mag), raw.Double(aziObj), raw.Double(altObj), raw.Double(aziSun), raw.Double(aziMoon),
		raw.Double(altMoon), d(dret), c(serr)))
}
