package swisseph

import (
	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/typed"
)

// Refrac converts between true and apparent altitude. dir is TrueToApp or
// AppToTrue; atpress is in hPa and attemp in degrees Celsius.
func Refrac(inalt, atpress, attemp float64, dir int32) float64 {
	return typed.SweRefrac(inalt, atpress, attemp, dir)
}

// RefracExtended is Refrac for an observer at altitude geoalt above sea
// level. Data holds true altitude, apparent altitude, refraction and dip
// of the horizon; the returned value is the converted altitude.
func RefracExtended(inalt, geoalt, atpress, attemp, lapseRate float64, dir int32) (float64, [4]float64) {
	var dret [4]float64
	alt := typed.SweRefracExtended(inalt, geoalt, atpress, attemp, lapseRate, dir, &dret[0])
	return alt, dret
}

// Azalt converts ecliptic or equatorial coordinates xin to azimuth, true
// altitude and apparent altitude. mode is EclToHor or EquToHor.
func Azalt(tjdUt float64, mode int32, geopos [3]float64, atpress, attemp float64, xin [3]float64) [3]float64 {
	var xaz [3]float64
	typed.SweAzalt(tjdUt, mode, &geopos[0], atpress, attemp, &xin[0], &xaz[0])
	return xaz
}

// AzaltRev converts azimuth and true altitude back to ecliptic or
// equatorial coordinates. mode is HorToEcl or HorToEqu.
func AzaltRev(tjdUt float64, mode int32, geopos [3]float64, azimuth, altitude float64) [2]float64 {
	xin := [2]float64{azimuth, altitude}
	var xout [3]float64
	typed.SweAzaltRev(tjdUt, mode, &geopos[0], &xin[0], &xout[0])
	return [2]float64{xout[0], xout[1]}
}

// RiseTrans finds the next rising, setting or transit of ipl, or of star
// when it is not empty, after tjdUt. The event time is Data.
//
// A body that does not rise or set on that day fails with an error
// matching ErrCircumpolar.
func RiseTrans(tjdUt float64, ipl Planet, star string, flags Flag, mode RiseTransMode, geopos [3]float64,
	atpress, attemp float64) (Star[float64], error) {
	name, err := starBuffer("swe_rise_trans", star)
	if err != nil {
		return Star[float64]{}, err
	}
	var tret [10]float64
	serr := buffer.New()
	code := typed.SweRiseTrans(tjdUt, int32(ipl), name.Ptr(), int32(flags), int32(mode), &geopos[0],
		atpress, attemp, &tret[0], serr.Ptr())
	return checkStar("swe_rise_trans", code, &name, &serr, tret[0])
}

// RiseTransTrueHor is RiseTrans for a horizon of altitude horhgt degrees.
func RiseTransTrueHor(tjdUt float64, ipl Planet, star string, flags Flag, mode RiseTransMode, geopos [3]float64,
	atpress, attemp, horhgt float64) (Star[float64], error) {
	name, err := starBuffer("swe_rise_trans_true_hor", star)
	if err != nil {
		return Star[float64]{}, err
	}
	var tret [10]float64
	serr := buffer.New()
	code := typed.SweRiseTransTrueHor(tjdUt, int32(ipl), name.Ptr(), int32(flags), int32(mode), &geopos[0],
		atpress, attemp, horhgt, &tret[0], serr.Ptr())
	return checkStar("swe_rise_trans_true_hor", code, &name, &serr, tret[0])
}

// Cotrans rotates polar coordinates (lon, lat, dist) by eps degrees.
// A negative eps converts ecliptic to equatorial coordinates.
func Cotrans(xpo [3]float64, eps float64) [3]float64 {
	var xpn [3]float64
	typed.SweCotrans(&xpo[0], &xpn[0], eps)
	return xpn
}

// CotransSp is Cotrans for a position with speeds.
func CotransSp(xpo [6]float64, eps float64) [6]float64 {
	var xpn [6]float64
	typed.SweCotransSp(&xpo[0], &xpn[0], eps)
	return xpn
}
