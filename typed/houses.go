package typed

import "github.com/jgrowl/swisseph-go/raw"

// The house system is passed as its character code, e.g. 'P' or 'G'.

// SweHouses is raw.SweHouses with Go types.
func SweHouses(tjdUt, geolat, geolon float64, hsys int32, cusps, ascmc *float64) int32 {
	return int32(raw.SweHouses(raw.Double(tjdUt), raw.Double(geolat), raw.Double(geolon), raw.Int(hsys), d(cusps), d(ascmc)))
}

// SweHousesEx is raw.SweHousesEx with Go types.
func SweHousesEx(tjdUt float64, iflag int32, geolat, geolon float64, hsys int32, cusps, ascmc *float64) int32 {
	return int32(raw.SweHousesEx(raw.Double(tjdUt), raw.Int32(iflag), raw.Double(geolat), raw.Double(geolon),
		raw.Int(hsys), d(cusps), d(ascmc)))
}

// SweHousesEx2 is raw.SweHousesEx2 with Go types.
func SweHousesEx2(tjdUt float64, iflag int32, geolat, geolon float64, hsys int32,
	cusps, ascmc, cuspSpeed, ascmcSpeed *float64, serr *byte) int32 {
	return int32(raw.SweHousesEx2(raw.Double(tjdUt), raw.Int32(iflag), raw.Double(geolat), raw.Double(geolon),
		raw.Int(hsys), d(cusps), d(ascmc), d(cuspSpeed), d(ascmcSpeed), c(serr)))
}

// SweHousesArmc is raw.SweHousesArmc with Go types.
func SweHousesArmc(armc, geolat, eps float64, hsys int32, cusps, ascmc *float64) int32 {
	return int32(raw.SweHousesArmc(raw.Double(armc), raw.Double(geolat), raw.Double(eps), raw.Int(hsys), d(cusps), d(ascmc)))
}

// SweHousesArmcEx2 is raw.SweHousesArmcEx2 with Go types.
func SweHousesArmcEx2(armc, geolat, eps float64, hsys int32, cusps, ascmc, cuspSpeed, ascmcSpeed *float64, serr *byte) int32 {
	return int32(raw.SweHousesArmcEx2(raw.Double(armc), raw.Double(geolat), raw.Double(eps), raw.Int(hsys),
		d(cusps), d(ascmc), d(cuspSpeed), d(ascmcSpeed), c(serr)))
}

// SweHousePos is raw.SweHousePos with Go types.
func SweHousePos(armc, geolat, eps float64, hsys int32, xpin *float64, serr *byte) float64 {
	return float64(raw.SweHousePos(raw.Double(armc), raw.Double(geolat), raw.Double(eps), raw.Int(hsys), d(xpin), c(serr)))
}

// SweHouseName is raw.SweHouseName with Go types.
func SweHouseName(hsys int32) *byte { return s(raw.SweHouseName(raw.Int(hsys))) }

// SweGauquelinSector is raw.SweGauquelinSector with Go types.
func SweGauquelinSector(tUt float64, ipl int32, starname *byte, iflag, imeth int32, geopos *float64,
	atpress, attemp float64, dgsect *float64, serr *byte) int32 {
	return int32(raw.SweGauquelinSector(raw.Double(tUt), raw.Int32(ipl), c(starname), raw.Int32(iflag),
		raw.Int32(imeth), d(geopos), raw.Double(atpress), raw.Double(attemp), d(dgsect), c(serr)))
}
