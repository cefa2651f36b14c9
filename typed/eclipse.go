package typed

import "github.com/jgrowl/swisseph-go/raw"

// SweSolEclipseWhere is raw.SweSolEclipseWhere with Go types.
func SweSolEclipseWhere(tjd float64, ifl int32, geopos, attr *float64, serr *byte) int32 {
	return int32(raw.SweSolEclipseWhere(raw.Double(tjd), raw.Int32(ifl), d(geopos), d(attr), c(serr)))
}

// SweSolEclipseHow is raw.SweSolEclipseHow with Go types.
func SweSolEclipseHow(tjd float64, ifl int32, geopos, attr *float64, serr *byte) int32 {
	return int32(raw.SweSolEclipseHow(raw.Double(tjd), raw.Int32(ifl), d(geopos), d(attr), c(serr)))
}

// SweSolEclipseWhenLoc is raw.SweSolEclipseWhenLoc with Go types.
func SweSolEclipseWhenLoc(tjdStart float64, ifl int32, geopos, tret, attr *float64, backward bool, serr *byte) int32 {
	return int32(raw.SweSolEclipseWhenLoc(raw.Double(tjdStart), raw.Int32(ifl), d(geopos), d(tret), d(attr),
		raw.Int32(asBool(backward)), c(serr)))
}

// SweSolEclipseWhenGlob is raw.SweSolEclipseWhenGlob with Go types.
func SweSolEclipseWhenGlob(tjdStart float64, ifl, ifltype int32, tret *float64, backward bool, serr *byte) int32 {
	return int32(raw.SweSolEclipseWhenGlob(raw.Double(tjdStart), raw.Int32(ifl), raw.Int32(ifltype), d(tret),
		raw.Int32(asBool(backward)), c(serr)))
}

// SweLunOccultWhere is raw.SweLunOccultWhere with Go types.
func SweLunOccultWhere(tjd float64, ipl int32, starname *byte, ifl int32, geopos, attr *float64, serr *byte) int32 {
	return int32(raw.SweLunOccultWhere(raw.Double(tjd), raw.Int32(ipl), c(starname), raw.Int32(ifl), d(geopos),
		d(attr), c(serr)))
}

// SweLunOccultWhenLoc is raw.SweLunOccultWhenLoc with Go types.
func SweLunOccultWhenLoc(tjdStart float64, ipl int32, starname *byte, ifl int32, geopos, tret, attr *float64,
	backward bool, serr *byte) int32 {
	return int32(raw.SweLunOccultWhenLoc(raw.Double(tjdStart), raw.Int32(ipl), c(starname), raw.Int32(ifl),
		d(geopos), d(tret), d(attr), raw.Int32(asBool(backward)), c(serr)))
}

// SweLunOccultWhenGlob is raw.SweLunOccultWhenGlob with Go types.
func SweLunOccultWhenGlob(tjdStart float64, ipl int32, starname *byte, ifl, ifltype int32, tret *float64,
	backward bool, serr *byte) int32 {
	return int32(raw.SweLunOccultWhenGlob(raw.Double(tjdStart), raw.Int32(ipl), c(starname), raw.Int32(ifl),
		raw.Int32(ifltype), d(tret), raw.Int32(asBool(backward)), c(serr)))
}

// SweLunEclipseHow is raw.SweLunEclipseHow with Go types.
func SweLunEclipseHow(tjdUt float64, ifl int32, geopos, attr *float64, serr *byte) int32 {
	return int32(raw.SweLunEclipseHow(raw.Double(tjdUt), raw.Int32(ifl), d(geopos), d(attr), c(serr)))
}

// SweLunEclipseWhen is raw.SweLunEclipseWhen with Go types.
func SweLunEclipseWhen(tjdStart float64, ifl, ifltype int32, tret *float64, backward bool, serr *byte) int32 {
	return int32(raw.SweLunEclipseWhen(raw.Double(tjdStart), raw.Int32(ifl), raw.Int32(ifltype), d(tret),
		raw.Int32(asBool(backward)), c(serr)))
}

// SweLunEclipseWhenLoc is raw.SweLunEclipseWhenLoc with Go types.
func SweLunEclipseWhenLoc(tjdStart float64, ifl int32, geopos, tret, attr *float64, backward bool, serr *byte) int32 {
	return int32(raw.SweLunEclipseWhenLoc(raw.Double(tjdStart), raw.Int32(ifl), d(geopos), d(tret), d(attr),
		raw.Int32(asBool(backward)), c(serr)))
}
