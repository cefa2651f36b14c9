package swisseph

import (
	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/internal/status"
	"github.com/jgrowl/swisseph-go/typed"
)

// Calc computes the position of body ipl at ephemeris time tjd.
//
// Data holds longitude, latitude, distance and their daily speeds, or
// the equivalents selected by flags (equatorial, cartesian, radians).
// Code is the set of flags actually used; it differs from flags when the
// native library fell back to another ephemeris.
func Calc(tjd float64, ipl Planet, flags Flag) (Result[[6]float64], error) {
	var xx [6]float64
	serr := buffer.New()
	code := typed.SweCalc(tjd, int32(ipl), int32(flags), &xx[0], serr.Ptr())
	return check("swe_calc", code, &serr, xx)
}

// CalcUt is Calc for a universal time tjdUt.
func CalcUt(tjdUt float64, ipl Planet, flags Flag) (Result[[6]float64], error) {
	var xx [6]float64
	serr := buffer.New()
	code := typed.SweCalcUt(tjdUt, int32(ipl), int32(flags), &xx[0], serr.Ptr())
	return check("swe_calc_ut", code, &serr, xx)
}

// CalcPctr computes ipl as seen from the center body center.
func CalcPctr(tjd float64, ipl, center Planet, flags Flag) (Result[[6]float64], error) {
	var xx [6]float64
	serr := buffer.New()
	code := typed.SweCalcPctr(tjd, int32(ipl), int32(center), int32(flags), &xx[0], serr.Ptr())
	return check("swe_calc_pctr", code, &serr, xx)
}

// NodAps computes the nodes and apsides of ipl at ephemeris time tjdEt.
func NodAps(tjdEt float64, ipl Planet, flags Flag, method NodeMethod) (Nodes, error) {
	var r Nodes
	serr := buffer.New()
	code := typed.SweNodAps(tjdEt, int32(ipl), int32(flags), int32(method),
		&r.Ascending[0], &r.Descending[0], &r.Perihelion[0], &r.Aphelion[0], serr.Ptr())
	if err := status.Check("swe_nod_aps", code, serr.Text()); err != nil {
		return Nodes{Code: code}, err
	}
	r.Code = code
	return r, nil
}

// NodApsUt is NodAps for a universal time.
func NodApsUt(tjdUt float64, ipl Planet, flags Flag, method NodeMethod) (Nodes, error) {
	var r Nodes
	serr := buffer.New()
	code := typed.SweNodApsUt(tjdUt, int32(ipl), int32(flags), int32(method),
		&r.Ascending[0], &r.Descending[0], &r.Perihelion[0], &r.Aphelion[0], serr.Ptr())
	if err := status.Check("swe_nod_aps_ut", code, serr.Text()); err != nil {
		return Nodes{Code: code}, err
	}
	r.Code = code
	return r, nil
}

// OrbitalElements returns the osculating orbital elements of ipl. Only the
// first 17 values are defined by the native library; the rest is reserved.
func OrbitalElements(tjdEt float64, ipl Planet, flags Flag) (Result[[50]float64], error) {
	var dret [50]float64
	serr := buffer.New()
	code := typed.SweGetOrbitalElements(tjdEt, int32(ipl), int32(flags), &dret[0], serr.Ptr())
	return check("swe_get_orbital_elements", code, &serr, dret)
}

// OrbitMaxMinTrueDistance returns the maximum, minimum and current
// distance of ipl from the Sun (or the Earth for geocentric flags).
func OrbitMaxMinTrueDistance(tjdEt float64, ipl Planet, flags Flag) (OrbitDistance, error) {
	var r OrbitDistance
	serr := buffer.New()
	code := typed.SweOrbitMaxMinTrueDistance(tjdEt, int32(ipl), int32(flags), &r.Max, &r.Min, &r.True, serr.Ptr())
	if err := status.Check("swe_orbit_max_min_true_distance", code, serr.Text()); err != nil {
		return OrbitDistance{Code: code}, err
	}
	r.Code = code
	return r, nil
}

// Pheno returns phase angle, phase, elongation, apparent diameter and
// apparent magnitude of ipl in Data[0:5].
func Pheno(tjd float64, ipl Planet, flags Flag) (Result[[20]float64], error) {
	var attr [20]float64
	serr := buffer.New()
	code := typed.SwePheno(tjd, int32(ipl), int32(flags), &attr[0], serr.Ptr())
	return check("swe_pheno", code, &serr, attr)
}

// PhenoUt is Pheno for a universal time.
func PhenoUt(tjdUt float64, ipl Planet, flags Flag) (Result[[20]float64], error) {
	var attr [20]float64
	serr := buffer.New()
	code := typed.SwePhenoUt(tjdUt, int32(ipl), int32(flags), &attr[0], serr.Ptr())
	return check("swe_pheno_ut", code, &serr, attr)
}

// crossing turns the Julian day returned by a crossing search into an
// error when it lies before the start of the search.
func crossing(op string, jd, start float64, serr *buffer.Max) (float64, error) {
	if jd < start {
		return jd, status.New(op, status.ERR, serr.Text())
	}
	return jd, nil
}

// Solcross returns the first time after tjdEt at which the Sun reaches
// ecliptic longitude x2cross.
func Solcross(x2cross, tjdEt float64, flags Flag) (float64, error) {
	serr := buffer.New()
	jd := typed.SweSolcross(x2cross, tjdEt, int32(flags), serr.Ptr())
	return crossing("swe_solcross", jd, tjdEt, &serr)
}

// SolcrossUt is Solcross for universal time.
func SolcrossUt(x2cross, tjdUt float64, flags Flag) (float64, error) {
	serr := buffer.New()
	jd := typed.SweSolcrossUt(x2cross, tjdUt, int32(flags), serr.Ptr())
	return crossing("swe_solcross_ut", jd, tjdUt, &serr)
}

// Mooncross returns the first time after tjdEt at which the Moon reaches
// ecliptic longitude x2cross.
func Mooncross(x2cross, tjdEt float64, flags Flag) (float64, error) {
	serr := buffer.New()
	jd := typed.SweMooncross(x2cross, tjdEt, int32(flags), serr.Ptr())
	return crossing("swe_mooncross", jd, tjdEt, &serr)
}

// MooncrossUt is Mooncross for universal time.
func MooncrossUt(x2cross, tjdUt float64, flags Flag) (float64, error) {
	serr := buffer.New()
	jd := typed.SweMooncrossUt(x2cross, tjdUt, int32(flags), serr.Ptr())
	return crossing("swe_mooncross_ut", jd, tjdUt, &serr)
}

// MooncrossNode returns the next crossing of the Moon through one of its
// nodes after tjdEt, with the Moon's longitude and latitude at that time.
func MooncrossNode(tjdEt float64, flags Flag) (MoonNode, error) {
	var n MoonNode
	serr := buffer.New()
	n.JD = typed.SweMooncrossNode(tjdEt, int32(flags), &n.Lon, &n.Lat, serr.Ptr())
	if _, err := crossing("swe_mooncross_node", n.JD, tjdEt, &serr); err != nil {
		return MoonNode{JD: n.JD}, err
	}
	return n, nil
}

// MooncrossNodeUt is MooncrossNode for universal time.
func MooncrossNodeUt(tjdUt float64, flags Flag) (MoonNode, error) {
	var n MoonNode
	serr := buffer.New()
	n.JD = typed.SweMooncrossNodeUt(tjdUt, int32(flags), &n.Lon, &n.Lat, serr.Ptr())
	if _, err := crossing("swe_mooncross_node_ut", n.JD, tjdUt, &serr); err != nil {
		return MoonNode{JD: n.JD}, err
	}
	return n, nil
}

// HelioCross returns the time at which ipl reaches heliocentric longitude
// x2cross, searching forward from tjdEt, or backward when backward is set.
func HelioCross(ipl Planet, x2cross, tjdEt float64, flags Flag, backward bool) (Result[float64], error) {
	var jd float64
	serr := buffer.New()
	code := typed.SweHelioCross(int32(ipl), x2cross, tjdEt, int32(flags), direction(backward), &jd, serr.Ptr())
	return check("swe_helio_cross", code, &serr, jd)
}

// HelioCrossUt is HelioCross for universal time.
func HelioCrossUt(ipl Planet, x2cross, tjdUt float64, flags Flag, backward bool) (Result[float64], error) {
	var jd float64
	serr := buffer.New()
	code := typed.SweHelioCrossUt(int32(ipl), x2cross, tjdUt, int32(flags), direction(backward), &jd, serr.Ptr())
	return check("swe_helio_cross_ut", code, &serr, jd)
}

func direction(backward bool) int32 {
	if backward {
		return -1
	}
	return 1
}
