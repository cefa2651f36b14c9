package swisseph

import (
	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/internal/status"
	"github.com/jgrowl/swisseph-go/typed"
)

// The eclipse functions return the eclipse type as an EclipseType bitmask
// in Code. A Code of 0 from SolEclipseWhere, SolEclipseHow,
// LunOccultWhere and LunEclipseHow means there is no eclipse at that time.
//
// Occultation functions take either a planet or, when star is not empty,
// a fixed star name; the rewritten star name is returned in Name.

func eclipseLocal(op string, code int32, serr *buffer.Max, r EclipseLocal) (EclipseLocal, error) {
	if err := status.Check(op, code, serr.Text()); err != nil {
		return EclipseLocal{Code: code}, err
	}
	r.Code = code
	return r, nil
}

func eclipseWhere(op string, code int32, serr *buffer.Max, r EclipseWhere) (EclipseWhere, error) {
	if err := status.Check(op, code, serr.Text()); err != nil {
		return EclipseWhere{Code: code}, err
	}
	r.Code = code
	return r, nil
}

// SolEclipseWhere returns where the central line of a solar eclipse is at
// universal time tjdUt.
func SolEclipseWhere(tjdUt float64, flags Flag) (EclipseWhere, error) {
	var r EclipseWhere
	serr := buffer.New()
	code := typed.SweSolEclipseWhere(tjdUt, int32(flags), &r.GeoPos[0], &r.Attr[0], serr.Ptr())
	return eclipseWhere("swe_sol_eclipse_where", code, &serr, r)
}

// SolEclipseHow returns the attributes of a solar eclipse at a place.
func SolEclipseHow(tjdUt float64, flags Flag, geopos [3]float64) (Result[[20]float64], error) {
	var attr [20]float64
	serr := buffer.New()
	code := typed.SweSolEclipseHow(tjdUt, int32(flags), &geopos[0], &attr[0], serr.Ptr())
	return check("swe_sol_eclipse_how", code, &serr, attr)
}

// SolEclipseWhenLoc finds the next solar eclipse visible at geopos.
func SolEclipseWhenLoc(tjdStart float64, flags Flag, geopos [3]float64, backward bool) (EclipseLocal, error) {
	var r EclipseLocal
	serr := buffer.New()
	code := typed.SweSolEclipseWhenLoc(tjdStart, int32(flags), &geopos[0], &r.Tret[0], &r.Attr[0], backward, serr.Ptr())
	return eclipseLocal("swe_sol_eclipse_when_loc", code, &serr, r)
}

// SolEclipseWhenGlob finds the next solar eclipse of type ecltype anywhere
// on Earth. Pass 0 as ecltype for any type.
func SolEclipseWhenGlob(tjdStart float64, flags Flag, ecltype EclipseType, backward bool) (Result[[10]float64], error) {
	var tret [10]float64
	serr := buffer.New()
	code := typed.SweSolEclipseWhenGlob(tjdStart, int32(flags), int32(ecltype), &tret[0], backward, serr.Ptr())
	return check("swe_sol_eclipse_when_glob", code, &serr, tret)
}

// LunOccultWhere returns where the central line of an occultation of ipl
// or star by the Moon is at tjdUt.
func LunOccultWhere(tjdUt float64, ipl Planet, star string, flags Flag) (Star[EclipseWhere], error) {
	name, err := starBuffer("swe_lun_occult_where", star)
	if err != nil {
		return Star[EclipseWhere]{}, err
	}
	var r EclipseWhere
	serr := buffer.New()
	code := typed.SweLunOccultWhere(tjdUt, int32(ipl), name.Ptr(), int32(flags), &r.GeoPos[0], &r.Attr[0], serr.Ptr())
	r.Code = code
	return checkStar("swe_lun_occult_where", code, &name, &serr, r)
}

// LunOccultWhenLoc finds the next occultation of ipl or star visible at geopos.
func LunOccultWhenLoc(tjdStart float64, ipl Planet, star string, flags Flag, geopos [3]float64,
	backward bool) (Star[EclipseLocal], error) {
	name, err := starBuffer("swe_lun_occult_when_loc", star)
	if err != nil {
		return Star[EclipseLocal]{}, err
	}
	var r EclipseLocal
	serr := buffer.New()
	code := typed.SweLunOccultWhenLoc(tjdStart, int32(ipl), name.Ptr(), int32(flags), &geopos[0], &r.Tret[0],
		&r.Attr[0], backward, serr.Ptr())
	r.Code = code
	return checkStar("swe_lun_occult_when_loc", code, &name, &serr, r)
}

// LunOccultWhenGlob finds the next occultation of ipl or star anywhere on Earth.
func LunOccultWhenGlob(tjdStart float64, ipl Planet, star string, flags Flag, ecltype EclipseType,
	backward bool) (Star[[10]float64], error) {
	name, err := starBuffer("swe_lun_occult_when_glob", star)
	if err != nil {
		return Star[[10]float64]{}, err
	}
	var tret [10]float64
	serr := buffer.New()
	code := typed.SweLunOccultWhenGlob(tjdStart, int32(ipl), name.Ptr(), int32(flags), int32(ecltype), &tret[0],
		backward, serr.Ptr())
	return checkStar("swe_lun_occult_when_glob", code, &name, &serr, tret)
}

// LunEclipseHow returns the attributes of a lunar eclipse at tjdUt.
// geopos is only used for the altitude of the Moon in Data[4:7].
func LunEclipseHow(tjdUt float64, flags Flag, geopos [3]float64) (Result[[20]float64], error) {
	var attr [20]float64
	serr := buffer.New()
	code := typed.SweLunEclipseHow(tjdUt, int32(flags), &geopos[0], &attr[0], serr.Ptr())
	return check("swe_lun_eclipse_how", code, &serr, attr)
}

// LunEclipseWhen finds the next lunar eclipse of type ecltype.
func LunEclipseWhen(tjdStart float64, flags Flag, ecltype EclipseType, backward bool) (Result[[10]float64], error) {
	var tret [10]float64
	serr := buffer.New()
	code := typed.SweLunEclipseWhen(tjdStart, int32(flags), int32(ecltype), &tret[0], backward, serr.Ptr())
	return check("swe_lun_eclipse_when", code, &serr, tret)
}

// LunEclipseWhenLoc finds the next lunar eclipse visible at geopos.
func LunEclipseWhenLoc(tjdStart float64, flags Flag, geopos [3]float64, backward bool) (EclipseLocal, error) {
	var r EclipseLocal
	serr := buffer.New()
	code := typed.SweLunEclipseWhenLoc(tjdStart, int32(flags), &geopos[0], &r.Tret[0], &r.Attr[0], backward, serr.Ptr())
	return eclipseLocal("swe_lun_eclipse_when_loc", code, &serr, r)
}
