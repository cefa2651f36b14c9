package typed

import "github.com/jgrowl/swisseph-go/raw"

// SweCalc is raw.SweCalc with Go types.
func SweCalc(tjd float64, ipl, iflag int32, xx *float64, serr *byte) int32 {
	return int32(raw.SweCalc(raw.Double(tjd), raw.Int(ipl), raw.Int32(iflag), d(xx), c(serr)))
}

// SweCalcUt is raw.SweCalcUt with Go types.
func SweCalcUt(tjdUt float64, ipl, iflag int32, xx *float64, serr *byte) int32 {
	return int32(raw.SweCalcUt(raw.Double(tjdUt), raw.Int32(ipl), raw.Int32(iflag), d(xx), c(serr)))
}

// SweCalcPctr is raw.SweCalcPctr with Go types.
func SweCalcPctr(tjd float64, ipl, iplctr, iflag int32, xxret *float64, serr *byte) int32 {
	return int32(raw.SweCalcPctr(raw.Double(tjd), raw.Int32(ipl), raw.Int32(iplctr), raw.Int32(iflag), d(xxret), c(serr)))
}

// SweNodAps is raw.SweNodAps with Go types.
func SweNodAps(tjdEt float64, ipl, iflag, method int32, xnasc, xndsc, xperi, xaphe *float64, serr *byte) int32 {
	return int32(raw.SweNodAps(raw.Double(tjdEt), raw.Int32(ipl), raw.Int32(iflag), raw.Int32(method),
		d(xnasc), d(xndsc), d(xperi), d(xaphe), c(serr)))
}

// SweNodApsUt is raw.SweNodApsUt with Go types.
func SweNodApsUt(tjdUt float64, ipl, iflag, method int32, xnasc, xndsc, xperi, xaphe *float64, serr *byte) int32 {
	return int32(raw.SweNodApsUt(raw.Double(tjdUt), raw.Int32(ipl), raw.Int32(iflag), raw.Int32(method),
		d(xnasc), d(xndsc), d(xperi), d(xaphe), c(serr)))
}

// SweGetOrbitalElements is raw.SweGetOrbitalElements with Go types.
func SweGetOrbitalElements(tjdEt float64, ipl, iflag int32, dret *float64, serr *byte) int32 {
	return int32(raw.SweGetOrbitalElements(raw.Double(tjdEt), raw.Int32(ipl), raw.Int32(iflag), d(dret), c(serr)))
}

// SweOrbitMaxMinTrueDistance is raw.SweOrbitMaxMinTrueDistance with Go types.
func SweOrbitMaxMinTrueDistance(tjdEt float64, ipl, iflag int32, dmax, dmin, dtrue *float64, serr *byte) int32 {
	return int32(raw.SweOrbitMaxMinTrueDistance(raw.Double(tjdEt), raw.Int32(ipl), raw.Int32(iflag),
		d(dmax), d(dmin), d(dtrue), c(serr)))
}

// SwePheno is raw.SwePheno with Go types.
func SwePheno(tjd float64, ipl, iflag int32, attr *float64, serr *byte) int32 {
	return int32(raw.SwePheno(raw.Double(tjd), raw.Int32(ipl), raw.Int32(iflag), d(attr), c(serr)))
}

// SwePhenoUt is raw.SwePhenoUt with Go types.
func SwePhenoUt(tjdUt float64, ipl, iflag int32, attr *float64, serr *byte) int32 {
	return int32(raw.SwePhenoUt(raw.Double(tjdUt), raw.Int32(ipl), raw.Int32(iflag), d(attr), c(serr)))
}

// SweSolcross is raw.SweSolcross with Go types.
func SweSolcross(x2cross, jdEt float64, flag int32, serr *byte) float64 {
	return float64(raw.SweSolcross(raw.Double(x2cross), raw.Double(jdEt), raw.Int32(flag), c(serr)))
}

// SweSolcrossUt is raw.SweSolcrossUt with Go types.
func SweSolcrossUt(x2cross, jdUt float64, flag int32, serr *byte) float64 {
	return float64(raw.SweSolcrossUt(raw.Double(x2cross), raw.Double(jdUt), raw.Int32(flag), c(serr)))
}

// SweMooncross is raw.SweMooncross with Go types.
func SweMooncross(x2cross, jdEt float64, flag int32, serr *byte) float64 {
	return float64(raw.SweMooncross(raw.Double(x2cross), raw.Double(jdEt), raw.Int32(flag), c(serr)))
}

// SweMooncrossUt is raw.SweMooncrossUt with Go types.
func SweMooncrossUt(x2cross, jdUt float64, flag int32, serr *byte) float64 {
	return float64(raw.SweMooncrossUt(raw.Double(x2cross), raw.Double(jdUt), raw.Int32(flag), c(serr)))
}

// SweMooncrossNode is raw.SweMooncrossNode with Go types.
func SweMooncrossNode(jdEt float64, flag int32, xlon, xlat *float64, serr *byte) float64 {
	return float64(raw.SweMooncrossNode(raw.Double(jdEt), raw.Int32(flag), d(xlon), d(xlat), c(serr)))
}

// SweMooncrossNodeUt is raw.SweMooncrossNodeUt with Go types.
func SweMooncrossNodeUt(jdUt float64, flag int32, xlon, xlat *float64, serr *byte) float64 {
	return float64(raw.SweMooncrossNodeUt(raw.Double(jdUt), raw.Int32(flag), d(xlon), d(xlat), c(serr)))
}

// SweHelioCross is raw.SweHelioCross with Go types.
func SweHelioCross(ipl int32, x2cross, jdEt float64, iflag, dir int32, jdCross *float64, serr *byte) int32 {
	return int32(raw.SweHelioCross(raw.Int32(ipl), raw.Double(x2cross), raw.Double(jdEt), raw.Int32(iflag),
		raw.Int32(dir), d(jdCross), c(serr)))
}

// SweHelioCrossUt is raw.SweHelioCrossUt with Go types.
func SweHelioCrossUt(ipl int32, x2cross, jdUt float64, iflag, dir int32, jdCross *float64, serr *byte) int32 {
	return int32(raw.SweHelioCrossUt(raw.Int32(ipl), raw.Double(x2cross), raw.Double(jdUt), raw.Int32(iflag),
		raw.Int32(dir), d(jdCross), c(serr)))
}

// SweFixstar is raw.SweFixstar with Go types.
func SweFixstar(star *byte, tjd float64, iflag int32, xx *float64, serr *byte) int32 {
	return int32(raw.SweFixstar(c(star), raw.Double(tjd), raw.Int32(iflag), d(xx), c(serr)))
}

// SweFixstarUt is raw.SweFixstarUt with Go types.
func SweFixstarUt(star *byte, tjdUt float64, iflag int32, xx *float64, serr *byte) int32 {
	return int32(raw.SweFixstarUt(c(star), raw.Double(tjdUt), raw.Int32(iflag), d(xx), c(serr)))
}

// SweFixstarMag is raw.SweFixstarMag with Go types.
func SweFixstarMag(star *byte, mag *float64, serr *byte) int32 {
	return int32(raw.SweFixstarMag(c(star), d(mag), c(serr)))
}

// SweFixstar2 is raw.SweFixstar2 with Go types.
func SweFixstar2(star *byte, tjd float64, iflag int32, xx *float64, serr *byte) int32 {
	return int32(raw.SweFixstar2(c(star), raw.Double(tjd), raw.Int32(iflag), d(xx), c(serr)))
}

// SweFixstar2Ut is raw.SweFixstar2Ut with Go types.
func SweFixstar2Ut(star *byte, tjdUt float64, iflag int32, xx *float64, serr *byte) int32 {
	return int32(raw.SweFixstar2Ut(c(star), raw.Double(tjdUt), raw.Int32(iflag), d(xx), c(serr)))
}

// SweFixstar2Mag is raw.SweFixstar2Mag with Go types.
func SweFixstar2Mag(star *byte, mag *float64, serr *byte) int32 {
	return int32(raw.SweFixstar2Mag(c(star), d(mag), c(serr)))
}
