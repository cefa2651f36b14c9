package swisseph

import (
	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/internal/status"
	"github.com/jgrowl/swisseph-go/typed"
)

// Julday returns the Julian day number of a date; hour is fractional
// universal time. It does not check that the date exists; use
// DateConversion for that.
func Julday(year, month, day int32, hour float64, cal Calendar) float64 {
	return typed.SweJulday(year, month, day, hour, int32(cal))
}

// Revjul converts a Julian day number back to a calendar date.
func Revjul(jd float64, cal Calendar) Date {
	var d Date
	typed.SweRevjul(jd, int32(cal), &d.Year, &d.Month, &d.Day, &d.Hour)
	return d
}

// DateConversion validates a date and returns its Julian day number. A date
// that does not exist in cal fails with an error matching ErrInvalidDate;
// Data still holds the Julian day the native library computed.
func DateConversion(year, month, day int32, hour float64, cal Calendar) (Result[float64], error) {
	var tjd float64
	code := typed.SweDateConversion(year, month, day, hour, cal.code(), &tjd)
	if status.Failed(code) {
		return Result[float64]{Code: code, Data: tjd}, status.Invalid("swe_date_conversion", code, "")
	}
	return Result[float64]{Code: code, Data: tjd}, nil
}

// UtcToJd converts a UTC date to Julian days. Data[0] is ephemeris time,
// Data[1] is UT1.
func UtcToJd(dt DateTime, cal Calendar) (Result[[2]float64], error) {
	var dret [2]float64
	serr := buffer.New()
	code := typed.SweUtcToJd(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, int32(cal), &dret[0], serr.Ptr())
	return check("swe_utc_to_jd", code, &serr, dret)
}

// JdetToUtc converts an ephemeris time Julian day to a UTC date.
func JdetToUtc(tjdEt float64, cal Calendar) DateTime {
	var dt DateTime
	typed.SweJdetToUtc(tjdEt, int32(cal), &dt.Year, &dt.Month, &dt.Day, &dt.Hour, &dt.Minute, &dt.Second)
	return dt
}

// Jdut1ToUtc converts a UT1 Julian day to a UTC date.
func Jdut1ToUtc(tjdUt float64, cal Calendar) DateTime {
	var dt DateTime
	typed.SweJdut1ToUtc(tjdUt, int32(cal), &dt.Year, &dt.Month, &dt.Day, &dt.Hour, &dt.Minute, &dt.Second)
	return dt
}

// UtcTimeZone converts between local time and UTC. To convert local time
// to UTC pass the zone offset in hours; to convert UTC to local time pass
// its negation.
func UtcTimeZone(dt DateTime, timezone float64) DateTime {
	var out DateTime
	typed.SweUtcTimeZone(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, timezone,
		&out.Year, &out.Month, &out.Day, &out.Hour, &out.Minute, &out.Second)
	return out
}

// DayOfWeek returns 0 for Monday through 6 for Sunday.
func DayOfWeek(jd float64) int32 {
	return typed.SweDayOfWeek(jd)
}

// Deltat returns delta T (ET - UT) in days for a universal time.
func Deltat(tjd float64) float64 {
	return typed.SweDeltat(tjd)
}

// DeltatEx is Deltat consistent with the given ephemeris flag. warning is
// set when the ephemeris requested is not available and another one was
// used to derive the tidal acceleration.
func DeltatEx(tjd float64, flags Flag) (dt float64, warning string) {
	serr := buffer.New()
	dt = typed.SweDeltatEx(tjd, int32(flags), serr.Ptr())
	return dt, serr.Text()
}

// TimeEqu returns the equation of time (LAT - LMT) in days.
func TimeEqu(tjdUt float64) (Result[float64], error) {
	var te float64
	serr := buffer.New()
	code := typed.SweTimeEqu(tjdUt, &te, serr.Ptr())
	return check("swe_time_equ", code, &serr, te)
}

// LmtToLat converts local mean time to local apparent time.
func LmtToLat(tjdLmt, geolon float64) (Result[float64], error) {
	var lat float64
	serr := buffer.New()
	code := typed.SweLmtToLat(tjdLmt, geolon, &lat, serr.Ptr())
	return check("swe_lmt_to_lat", code, &serr, lat)
}

// LatToLmt converts local apparent time to local mean time.
func LatToLmt(tjdLat, geolon float64) (Result[float64], error) {
	var lmt float64
	serr := buffer.New()
	code := typed.SweLatToLmt(tjdLat, geolon, &lmt, serr.Ptr())
	return check("swe_lat_to_lmt", code, &serr, lmt)
}

// Sidtime returns Greenwich sidereal time in hours.
func Sidtime(tjdUt float64) float64 {
	return typed.SweSidtime(tjdUt)
}

// Sidtime0 is Sidtime with a given obliquity and nutation in longitude.
func Sidtime0(tjdUt, eps, nut float64) float64 {
	return typed.SweSidtime0(tjdUt, eps, nut)
}
