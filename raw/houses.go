package raw

/*
#include <swephexp.h>
*/
import "C"

// House functions take the house system as a character code in an int.
// cusps must hold 13 doubles, or 37 when hsys is 'G' (Gauquelin sectors).
// ascmc must hold 10 doubles.

// SweHouses calls swe_houses.
func SweHouses(tjdUt, geolat, geolon Double, hsys Int, cusps, ascmc *Double) Int {
	return Int(C.swe_houses(C.double(tjdUt), C.double(geolat), C.double(geolon), C.int(hsys), cd(cusps), cd(ascmc)))
}

// SweHousesEx calls swe_houses_ex.
func SweHousesEx(tjdUt Double, iflag Int32, geolat, geolon Double, hsys Int, cusps, ascmc *Double) Int {
	return Int(C.swe_houses_ex(C.double(tjdUt), C.int32(iflag), C.double(geolat), C.double(geolon),
		C.int(hsys), cd(cusps), cd(ascmc)))
}

// SweHousesEx2 additionally writes the speeds of cusps and ascmc.
func SweHousesEx2(tjdUt Double, iflag Int32, geolat, geolon Double, hsys Int,
	cusps, ascmc, cuspSpeed, ascmcSpeed *Double, serr *Char) Int {
	return Int(C.swe_houses_ex2(C.double(tjdUt), C.int32(iflag), C.double(geolat), C.double(geolon),
		C.int(hsys), cd(cusps), cd(ascmc), cd(cuspSpeed), cd(ascmcSpeed), cc(serr)))
}

// SweHousesArmc calls swe_houses_armc.
func SweHousesArmc(armc, geolat, eps Double, hsys Int, cusps, ascmc *Double) Int {
	return Int(C.swe_houses_armc(C.double(armc), C.double(geolat), C.double(eps), C.int(hsys), cd(cusps), cd(ascmc)))
}

// SweHousesArmcEx2 calls swe_houses_armc_ex2.
func SweHousesArmcEx2(armc, geolat, eps Double, hsys Int, cusps, ascmc, cuspSpeed, ascmcSpeed *Double, serr *Char) Int {
	return Int(C.swe_houses_armc_ex2(C.double(armc), C.double(geolat), C.double(eps), C.int(hsys),
		cd(cusps), cd(ascmc), cd(cuspSpeed), cd(ascmcSpeed), cc(serr)))
}

// SweHousePos returns the house position of the point xpin (two doubles).
func SweHousePos(armc, geolat, eps Double, hsys Int, xpin *Double, serr *Char) Double {
	return Double(C.swe_house_pos(C.double(armc), C.double(geolat), C.double(eps), C.int(hsys), cd(xpin), cc(serr)))
}

// SweHouseName returns a pointer into static native storage.
func SweHouseName(hsys Int) *Char {
	return gc(C.swe_house_name(C.int(hsys)))
}

// SweGauquelinSector calls swe_gauquelin_sector.
func SweGauquelinSector(tUt Double, ipl Int32, starname *Char, iflag, imeth Int32, geopos *Double,
	atpress, attemp Double, dgsect *Double, serr *Char) Int32 {
	return Int32(C.swe_gauquelin_sector(C.double(tUt), C.int32(ipl), cc(starname), C.int32(iflag), C.int32(imeth),
		cd(geopos), C.double(atpress), C.double(attemp), cd(dgsect), cc(serr)))
}
