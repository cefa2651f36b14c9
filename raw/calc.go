package raw

/*
#include <swephexp.h>
*/
import "C"

// SweCalc computes body ipl at ephemeris time tjd. xx must hold six doubles.
func SweCalc(tjd Double, ipl Int, iflag Int32, xx *Double, serr *Char) Int32 {
	return Int32(C.swe_calc(C.double(tjd), C.int(ipl), C.int32(iflag), cd(xx), cc(serr)))
}

// SweCalcUt computes body ipl at universal time tjdUt. xx must hold six doubles.
func SweCalcUt(tjdUt Double, ipl Int32, iflag Int32, xx *Double, serr *Char) Int32 {
	return Int32(C.swe_calc_ut(C.double(tjdUt), C.int32(ipl), C.int32(iflag), cd(xx), cc(serr)))
}

// SweCalcPctr computes ipl as seen from the center body iplctr.
func SweCalcPctr(tjd Double, ipl, iplctr, iflag Int32, xxret *Double, serr *Char) Int32 {
	return Int32(C.swe_calc_pctr(C.double(tjd), C.int32(ipl), C.int32(iplctr), C.int32(iflag), cd(xxret), cc(serr)))
}

// SweNodAps computes nodes and apsides. Each output holds six doubles.
func SweNodAps(tjdEt Double, ipl, iflag, method Int32, xnasc, xndsc, xperi, xaphe *Double, serr *Char) Int32 {
	return Int32(C.swe_nod_aps(C.double(tjdEt), C.int32(ipl), C.int32(iflag), C.int32(method),
		cd(xnasc), cd(xndsc), cd(xperi), cd(xaphe), cc(serr)))
}

// SweNodApsUt calls swe_nod_aps_ut.
func SweNodApsUt(tjdUt Double, ipl, iflag, method Int32, xnasc, xndsc, xperi, xaphe *Double, serr *Char) Int32 {
	return Int32(C.swe_nod_aps_ut(C.double(tjdUt), C.int32(ipl), C.int32(iflag), C.int32(method),
		cd(xnasc), cd(xndsc), cd(xperi), cd(xaphe), cc(serr)))
}

// SweGetOrbitalElements writes at least 50 doubles into dret.
func SweGetOrbitalElements(tjdEt Double, ipl, iflag Int32, dret *Double, serr *Char) Int32 {
	return Int32(C.swe_get_orbital_elements(C.double(tjdEt), C.int32(ipl), C.int32(iflag), cd(dret), cc(serr)))
}

// SweOrbitMaxMinTrueDistance calls swe_orbit_max_min_true_distance.
func SweOrbitMaxMinTrueDistance(tjdEt Double, ipl, iflag Int32, dmax, dmin, dtrue *Double, serr *Char) Int32 {
	return Int32(C.swe_orbit_max_min_true_distance(C.double(tjdEt), C.int32(ipl), C.int32(iflag),
		cd(dmax), cd(dmin), cd(dtrue), cc(serr)))
}

// SwePheno writes the phenomena of ipl into attr (20 doubles).
func SwePheno(tjd Double, ipl, iflag Int32, attr *Double, serr *Char) Int32 {
	return Int32(C.swe_pheno(C.double(tjd), C.int32(ipl), C.int32(iflag), cd(attr), cc(serr)))
}

// SwePhenoUt calls swe_pheno_ut.
func SwePhenoUt(tjdUt Double, ipl, iflag Int32, attr *Double, serr *Char) Int32 {
	return Int32(C.swe_pheno_ut(C.double(tjdUt), C.int32(ipl), C.int32(iflag), cd(attr), cc(serr)))
}

// SweSolcross returns the time the Sun crosses longitude x2cross after jdEt.
func SweSolcross(x2cross, jdEt Double, flag Int32, serr *Char) Double {
	return Double(C.swe_solcross(C.double(x2cross), C.double(jdEt), C.int32(flag), cc(serr)))
}

// SweSolcrossUt calls swe_solcross_ut.
func SweSolcrossUt(x2cross, jdUt Double, flag Int32, serr *Char) Double {
	return Double(C.swe_solcross_ut(C.double(x2cross), C.double(jdUt), C.int32(flag), cc(serr)))
}

// SweMooncross calls swe_mooncross.
func SweMooncross(x2cross, jdEt Double, flag Int32, serr *Char) Double {
	return Double(C.swe_mooncross(C.double(x2cross), C.double(jdEt), C.int32(flag), cc(serr)))
}

// SweMooncrossUt calls swe_mooncross_ut.
func SweMooncrossUt(x2cross, jdUt Double, flag Int32, serr *Char) Double {
	return Double(C.swe_mooncross_ut(C.double(x2cross), C.double(jdUt), C.int32(flag), cc(serr)))
}

// SweMooncrossNode returns the next Moon node crossing and its position.
func SweMooncrossNode(jdEt Double, flag Int32, xlon, xlat *Double, serr *Char) Double {
	return Double(C.swe_mooncross_node(C.double(jdEt), C.int32(flag), cd(xlon), cd(xlat), cc(serr)))
}

// SweMooncrossNodeUt calls swe_mooncross_node_ut.
func SweMooncrossNodeUt(jdUt Double, flag Int32, xlon, xlat *Double, serr *Char) Double {
	return Double(C.swe_mooncross_node_ut(C.double(jdUt), C.int32(flag), cd(xlon), cd(xlat), cc(serr)))
}

// SweHelioCross writes the heliocentric crossing time of ipl into jdCross.
func SweHelioCross(ipl Int32, x2cross, jdEt Double, iflag, dir Int32, jdCross *Double, serr *Char) Int32 {
	return Int32(C.swe_helio_cross(C.int32(ipl), C.double(x2cross), C.double(jdEt), C.int32(iflag),
		C.int32(dir), cd(jdCross), cc(serr)))
}

// SweHelioCrossUt calls swe_helio_cross_ut.
func SweHelioCrossUt(ipl Int32, x2cross, jdUt Double, iflag, dir Int32, jdCross *Double, serr *Char) Int32 {
	return Int32(C.swe_helio_cross_ut(C.int32(ipl), C.double(x2cross), C.double(jdUt), C.int32(iflag),
		C.int32(dir), cd(jdCross), cc(serr)))
}
