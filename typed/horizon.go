package typed

import "github.com/jgrowl/swisseph-go/raw"

// SweRefrac is raw.SweRefrac with Go types.
func SweRefrac(inalt, atpress, attemp float64, calcFlag int32) float64 {
	return float64(raw.SweRefrac(raw.Double(inalt), raw.Double(atpress), raw.Double(attemp), raw.Int32(calcFlag)))
}

// SweRefracExtended is raw.SweRefracExtended with Go types.
func SweRefracExtended(inalt, geoalt, atpress, attemp, lapseRate float64, calcFlag int32, dret *float64) float64 {
	return float64(raw.SweRefracExtended(raw.Double(inalt), raw.Double(geoalt), raw.Double(atpress),
		raw.Double(attemp), raw.Double(lapseRate), raw.Int32(calcFlag), d(dret)))
}

// SweAzalt is raw.SweAzalt with Go types.
func SweAzalt(tjdUt float64, calcFlag int32, geopos *float64, atpress, attemp float64, xin, xaz *float64) {
	raw.SweAzalt(raw.Double(tjdUt), raw.Int32(calcFlag), d(geopos), raw.Double(atpress), raw.Double(attemp), d(xin), d(xaz))
}

// SweAzaltRev is raw.SweAzaltRev with Go types.
func SweAzaltRev(tjdUt float64, calcFlag int32, geopos, xin, xout *float64) {
	raw.SweAzaltRev(raw.Double(tjdUt), raw.Int32(calcFlag), d(geopos), d(xin), d(xout))
}

// SweRiseTrans is raw.SweRiseTrans with Go types.
func SweRiseTrans(tjdUt float64, ipl int32, starname *byte, epheflag, rsmi int32, geopos *float64,
	atpress, attemp float64, tret *float64, serr *byte) int32 {
	return int32(raw.SweRiseTrans(raw.Double(tjdUt), raw.Int32(ipl), c(starname), raw.Int32(epheflag),
		raw.Int32(rsmi), d(geopos), raw.Double(atpress), raw.Double(attemp), d(tret), c(serr)))
}

// SweRiseTransTrueHor is raw.SweRiseTransTrueHor with Go types.
func SweRiseTransTrueHor(tjdUt float64, ipl int32, starname *byte, epheflag, rsmi int32, geopos *float64,
	atpress, attemp, horhgt float64, tret *float64, serr *byte) int32 {
	return int32(raw.SweRiseTransTrueHor(raw.Double(tjdUt), raw.Int32(ipl), c(starname), raw.Int32(epheflag),
		raw.Int32(rsmi), d(geopos), raw.Double(atpress), raw.Double(attemp), raw.Double(horhgt), d(tret), c(serr)))
}

// SweCotrans is raw.SweCotrans with Go types.
func SweCotrans(xpo, xpn *float64, eps float64) { raw.SweCotrans(d(xpo), d(xpn), raw.Double(eps)) }

// SweCotransSp is raw.SweCotransSp with Go types.
func SweCotransSp(xpo, xpn *float64, eps float64) { raw.SweCotransSp(d(xpo), d(xpn), raw.Double(eps)) }
