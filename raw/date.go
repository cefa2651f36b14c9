package raw

/*
#include <swephexp.h>
*/
import "C"

// SweJulday converts a calendar date to a Julian day number.
func SweJulday(year, month, day Int, hour Double, gregflag Int) Double {
	return Double(C.swe_julday(C.int(year), C.int(month), C.int(day), C.double(hour), C.int(gregflag)))
}

// SweRevjul converts a Julian day number back to a calendar date.
func SweRevjul(jd Double, gregflag Int, jyear, jmon, jday *Int, jut *Double) {
	C.swe_revjul(C.double(jd), C.int(gregflag), ci(jyear), ci(jmon), ci(jday), cd(jut))
}

// SweDateConversion validates a date. c is 'g' (Gregorian) or 'j' (Julian).
func SweDateConversion(y, m, d Int, utime Double, c Char, tjd *Double) Int32 {
	return Int32(C.swe_date_conversion(C.int(y), C.int(m), C.int(d), C.double(utime), C.char(c), cd(tjd)))
}

// SweUtcToJd writes ET and UT1 Julian days into dret (two doubles).
func SweUtcToJd(iyear, imonth, iday, ihour, imin Int32, dsec Double, gregflag Int32, dret *Double, serr *Char) Int32 {
	return Int32(C.swe_utc_to_jd(C.int32(iyear), C.int32(imonth), C.int32(iday), C.int32(ihour), C.int32(imin),
		C.double(dsec), C.int32(gregflag), cd(dret), cc(serr)))
}

// SweJdetToUtc calls swe_jdet_to_utc.
func SweJdetToUtc(tjdEt Double, gregflag Int32, iyear, imonth, iday, ihour, imin *Int32, dsec *Double) {
	C.swe_jdet_to_utc(C.double(tjdEt), C.int32(gregflag), ci32(iyear), ci32(imonth), ci32(iday),
		ci32(ihour), ci32(imin), cd(dsec))
}

// SweJdut1ToUtc calls swe_jdut1_to_utc.
func SweJdut1ToUtc(tjdUt Double, gregflag Int32, iyear, imonth, iday, ihour, imin *Int32, dsec *Double) {
	C.swe_jdut1_to_utc(C.double(tjdUt), C.int32(gregflag), ci32(iyear), ci32(imonth), ci32(iday),
		ci32(ihour), ci32(imin), cd(dsec))
}

// SweUtcTimeZone shifts a civil time by dTimezone hours.
func SweUtcTimeZone(iyear, imonth, iday, ihour, imin Int32, dsec, dTimezone Double,
	iyearOut, imonthOut, idayOut, ihourOut, iminOut *Int32, dsecOut *Double) {
	C.swe_utc_time_zone(C.int32(iyear), C.int32(imonth), C.int32(iday), C.int32(ihour), C.int32(imin),
		C.double(dsec), C.double(dTimezone),
		ci32(iyearOut), ci32(imonthOut), ci32(idayOut), ci32(ihourOut), ci32(iminOut), cd(dsecOut))
}

// SweDayOfWeek returns 0 for Monday through 6 for Sunday.
func SweDayOfWeek(jd Double) Int {
	return Int(C.swe_day_of_week(C.double(jd)))
}

// SweDeltat calls swe_deltat.
func SweDeltat(tjd Double) Double {
	return Double(C.swe_deltat(C.double(tjd)))
}

// SweDeltatEx calls swe_deltat_ex.
func SweDeltatEx(tjd Double, iflag Int32, serr *Char) Double {
	return Double(C.swe_deltat_ex(C.double(tjd), C.int32(iflag), cc(serr)))
}

// SweTimeEqu calls swe_time_equ.
func SweTimeEqu(tjd Double, te *Double, serr *Char) Int32 {
	return Int32(C.swe_time_equ(C.double(tjd), cd(te), cc(serr)))
}

// SweLmtToLat calls swe_lmt_to_lat.
func SweLmtToLat(tjdLmt, geolon Double, tjdLat *Double, serr *Char) Int32 {
	return Int32(C.swe_lmt_to_lat(C.double(tjdLmt), C.double(geolon), cd(tjdLat), cc(serr)))
}

// SweLatToLmt calls swe_lat_to_lmt.
func SweLatToLmt(tjdLat, geolon Double, tjdLmt *Double, serr *Char) Int32 {
	return Int32(C.swe_lat_to_lmt(C.double(tjdLat), C.double(geolon), cd(tjdLmt), cc(serr)))
}

// SweSidtime calls swe_sidtime.
func SweSidtime(tjdUt Double) Double {
	return Double(C.swe_sidtime(C.double(tjdUt)))
}

// SweSidtime0 calls swe_sidtime0.
func SweSidtime0(tjdUt, eps, nut Double) Double {
	return Double(C.swe_sidtime0(C.double(tjdUt), C.double(eps), C.double(nut)))
}
