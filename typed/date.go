package typed

import "github.com/jgrowl/swisseph-go/raw"

// SweJulday is raw.SweJulday with Go types.
func SweJulday(year, month, day int32, hour float64, gregflag int32) float64 {
	return float64(raw.SweJulday(raw.Int(year), raw.Int(month), raw.Int(day), raw.Double(hour), raw.Int(gregflag)))
}

// SweRevjul is raw.SweRevjul with Go types.
func SweRevjul(jd float64, gregflag int32, jyear, jmon, jday *int32, jut *float64) {
	raw.SweRevjul(raw.Double(jd), raw.Int(gregflag), i(jyear), i(jmon), i(jday), d(jut))
}

// SweDateConversion is raw.SweDateConversion with Go types.
func SweDateConversion(y, m, dd int32, utime float64, cal byte, tjd *float64) int32 {
	return int32(raw.SweDateConversion(raw.Int(y), raw.Int(m), raw.Int(dd), raw.Double(utime), raw.Char(cal), d(tjd)))
}

// SweUtcToJd is raw.SweUtcToJd with Go types.
func SweUtcToJd(iyear, imonth, iday, ihour, imin int32, dsec float64, gregflag int32, dret *float64, serr *byte) int32 {
	return int32(raw.SweUtcToJd(raw.Int32(iyear), raw.Int32(imonth), raw.Int32(iday), raw.Int32(ihour),
		raw.Int32(imin), raw.Double(dsec), raw.Int32(gregflag), d(dret), c(serr)))
}

// SweJdetToUtc is raw.SweJdetToUtc with Go types.
func SweJdetToUtc(tjdEt float64, gregflag int32, iyear, imonth, iday, ihour, imin *int32, dsec *float64) {
	raw.SweJdetToUtc(raw.Double(tjdEt), raw.Int32(gregflag), i32(iyear), i32(imonth), i32(iday), i32(ihour),
		i32(imin), d(dsec))
}

// SweJdut1ToUtc is raw.SweJdut1ToUtc with Go types.
func SweJdut1ToUtc(tjdUt float64, gregflag int32, iyear, imonth, iday, ihour, imin *int32, dsec *float64) {
	raw.SweJdut1ToUtc(raw.Double(tjdUt), raw.Int32(gregflag), i32(iyear), i32(imonth), i32(iday), i32(ihour),
		i32(imin), d(dsec))
}

// SweUtcTimeZone is raw.SweUtcTimeZone with Go types.
func SweUtcTimeZone(iyear, imonth, iday, ihour, imin int32, dsec, dTimezone float64,
	iyearOut, imonthOut, idayOut, ihourOut, iminOut *int32, dsecOut *float64) {
	raw.SweUtcTimeZone(raw.Int32(iyear), raw.Int32(imonth), raw.Int32(iday), raw.Int32(ihour), raw.Int32(imin),
		raw.Double(dsec), raw.Double(dTimezone),
		i32(iyearOut), i32(imonthOut), i32(idayOut), i32(ihourOut), i32(iminOut), d(dsecOut))
}

// SweDayOfWeek is raw.SweDayOfWeek with Go types.
func SweDayOfWeek(jd float64) int32 { return int32(raw.SweDayOfWeek(raw.Double(jd))) }

// SweDeltat is raw.SweDeltat with Go types.
func SweDeltat(tjd float64) float64 { return float64(raw.SweDeltat(raw.Double(tjd))) }

// SweDeltatEx is raw.SweDeltatEx with Go types.
func SweDeltatEx(tjd float64, iflag int32, serr *byte) float64 {
	return float64(raw.SweDeltatEx(raw.Double(tjd), raw.Int32(iflag), c(serr)))
}

// SweTimeEqu is raw.SweTimeEqu with Go types.
func SweTimeEqu(tjd float64, te *float64, serr *byte) int32 {
	return int32(raw.SweTimeEqu(raw.Double(tjd), d(te), c(serr)))
}

// SweLmtToLat is raw.SweLmtToLat with Go types.
func SweLmtToLat(tjdLmt, geolon float64, tjdLat *float64, serr *byte) int32 {
	return int32(raw.SweLmtToLat(raw.Double(tjdLmt), raw.Double(geolon), d(tjdLat), c(serr)))
}

// SweLatToLmt is raw.SweLatToLmt with Go types.
func SweLatToLmt(tjdLat, geolon float64, tjdLmt *float64, serr *byte) int32 {
	return int32(raw.SweLatToLmt(raw.Double(tjdLat), raw.Double(geolon), d(tjdLmt), c(serr)))
}

// SweSidtime is raw.SweSidtime with Go types.
func SweSidtime(tjdUt float64) float64 { return float64(raw.SweSidtime(raw.Double(tjdUt))) }

// SweSidtime0 is raw.SweSidtime0 with Go types.
func SweSidtime0(tjdUt, eps, nut float64) float64 {
	return float64(raw.SweSidtime0(raw.Double(tjdUt), raw.Double(eps), raw.Double(nut)))
}
