package swisseph

import (
	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/typed"
)

// The heliacal functions describe the observer with three arrays:
//
//	geopos: longitude, latitude, altitude above sea level in meters
//	datm:   pressure (hPa), temperature (°C), relative humidity (%),
//	        meteorological range (km) or extinction coefficient if < 1
//	dobs:   age (years), Snellen ratio, binocular flag (0/1), and with
//	        HelOpticalParams: telescope magnification, aperture, transmission
//
// Zeroed datm and dobs entries are replaced by defaults in the native code.

// HeliacalUt finds the next heliacal event of an object after tjdStartUt.
// Data[0] is the start of visibility, Data[1] the optimum and Data[2] the
// end of visibility.
func HeliacalUt(tjdStartUt float64, geopos [3]float64, datm [4]float64, dobs [6]float64, object string,
	event HeliacalEvent, flags HelFlag) (Result[[50]float64], error) {
	name, err := starBuffer("swe_heliacal_ut", object)
	if err != nil {
		return Result[[50]float64]{}, err
	}
	var dret [50]float64
	serr := buffer.New()
	code := typed.SweHeliacalUt(tjdStartUt, &geopos[0], &datm[0], &dobs[0], name.Ptr(), int32(event),
		int32(flags), &dret[0], serr.Ptr())
	return check("swe_heliacal_ut", code, &serr, dret)
}

// HeliacalPhenoUt returns the visibility details of an object at tjdUt.
// Data[0:30] is laid out as documented for swe_heliacal_pheno_ut.
func HeliacalPhenoUt(tjdUt float64, geopos [3]float64, datm [4]float64, dobs [6]float64, object string,
	event HeliacalEvent, flags HelFlag) (Result[[50]float64], error) {
	name, err := starBuffer("swe_heliacal_pheno_ut", object)
	if err != nil {
		return Result[[50]float64]{}, err
	}
	var darr [50]float64
	serr := buffer.New()
	code := typed.SweHeliacalPhenoUt(tjdUt, &geopos[0], &datm[0], &dobs[0], name.Ptr(), int32(event),
		int32(flags), &darr[0], serr.Ptr())
	return check("swe_heliacal_pheno_ut", code, &serr, darr)
}

// VisLimitMag returns the limiting visual magnitude in Data[0] and the
// altitudes and azimuths of object, Sun and Moon in Data[1:7]. Code is
// one of PhotopicVision, ScotopicVision or MixedopicVision.
//
// An object below the horizon fails with an error matching ErrBelowHorizon.
func VisLimitMag(tjdUt float64, geopos [3]float64, datm [4]float64, dobs [6]float64, object string,
	flags HelFlag) (Result[[8]float64], error) {
	name, err := starBuffer("swe_vis_limit_mag", object)
	if err != nil {
		return Result[[8]float64]{}, err
	}
	// Newer native versions write past index 7.
	var dret [10]float64
	serr := buffer.New()
	code := typed.SweVisLimitMag(tjdUt, &geopos[0], &datm[0], &dobs[0], name.Ptr(), int32(flags), &dret[0], serr.Ptr())
	return check("swe_vis_limit_mag", code, &serr, [8]float64(dret[:8]))
}

// HeliacalAngle returns the arcus visionis and related angles for an
// object of magnitude mag.
func HeliacalAngle(tjdUt float64, geopos [3]float64, datm [4]float64, dobs [6]float64, flags HelFlag,
	mag, aziObj, aziSun, aziMoon, altMoon float64) (Result[[3]float64], error) {
	var dret [3]float64
	serr := buffer.New()
	code := typed.SweHeliacalAngle(tjdUt, &geopos[0], &datm[0], &dobs[0], int32(flags), mag, aziObj, aziSun,
		aziMoon, altMoon, &dret[0], serr.Ptr())
	return check("swe_heliacal_angle", code, &serr, dret)
}

// TopoArcusVisionis returns the topocentric arcus visionis of an object.
func TopoArcusVisionis(tjdUt float64, geopos [3]float64, datm [4]float64, dobs [6]float64, flags HelFlag,
	mag, aziObj, altObj, aziSun, aziMoon, altMoon float64) (Result[float64], error) {
	var tav float64
	serr := buffer.New()
	code := typed.SweTopoArcusVisionis(tjdUt, &geopos[0], &datm[0], &dobs[0], int32(flags), mag, aziObj, altObj,
		aziSun, aziMoon, altMoon, &tav, serr.Ptr())
	return check("swe_topo_arcus_visionis", code, &serr, tav)
}
