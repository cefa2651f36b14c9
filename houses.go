package swisseph

import (
	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/internal/status"
	"github.com/jgrowl/swisseph-go/typed"
)

// HouseSystem is the character code selecting a house system.
type HouseSystem byte

const (
	Placidus        HouseSystem = 'P'
	Koch            HouseSystem = 'K'
	Porphyry        HouseSystem = 'O'
	Regiomontanus   HouseSystem = 'R'
	Campanus        HouseSystem = 'C'
	Equal           HouseSystem = 'A'
	EqualMC         HouseSystem = 'D'
	Equal1          HouseSystem = 'N'
	WholeSign       HouseSystem = 'W'
	Alcabitius      HouseSystem = 'B'
	Carter          HouseSystem = 'F'
	Gauquelin       HouseSystem = 'G'
	Horizon         HouseSystem = 'H'
	Sunshine        HouseSystem = 'I'
	SunshineTreindl HouseSystem = 'i'
	Savard          HouseSystem = 'J'
	PullenSD        HouseSystem = 'L'
	Morinus         HouseSystem = 'M'
	PullenSR        HouseSystem = 'Q'
	Sripati         HouseSystem = 'S'
	Topocentric     HouseSystem = 'T'
	Krusinski       HouseSystem = 'U'
	Vehlow          HouseSystem = 'V'
	Meridian        HouseSystem = 'X'
	APC             HouseSystem = 'Y'
)

// String returns the code as a one character string.
func (h HouseSystem) String() string {
	return string(rune(h))
}

// canonical maps 'g' to 'G': the native library upper-cases every code
// except 'i', so both select Gauquelin sectors and need the large array.
func (h HouseSystem) canonical() HouseSystem {
	if h == 'g' {
		return Gauquelin
	}
	return h
}

// HouseCusps is either StandardCusps or GauquelinCusps.
type HouseCusps interface {
	// Len is the number of cusps, excluding the unused index 0.
	Len() int
	// Cusp returns cusp i, 1 based.
	Cusp(i int) float64

	houseCusps()
}

// StandardCusps holds cusps 1 to 12 at indices 1 to 12. Index 0 is unused.
type StandardCusps [13]float64

// GauquelinCusps holds the 36 Gauquelin sectors at indices 1 to 36.
// Index 0 is unused.
type GauquelinCusps [37]float64

func (c StandardCusps) Len() int            { return len(c) - 1 }
func (c StandardCusps) Cusp(i int) float64  { return c[i] }
func (StandardCusps) houseCusps()           {}
func (c GauquelinCusps) Len() int           { return len(c) - 1 }
func (c GauquelinCusps) Cusp(i int) float64 { return c[i] }
func (GauquelinCusps) houseCusps()          {}

// HouseResult is the output of the house functions.
//
// Cusps holds StandardCusps for every house system except Gauquelin,
// which yields GauquelinCusps. CuspSpeeds has the same shape as Cusps and
// is only set by HousesEx2 and HousesArmcEx2, like AscmcSpeeds.
//
// Unlike Result, a HouseResult keeps its data when the call fails. Inside
// the polar circle Placidus and Koch return ERR but still fill
// every array with Porphyry cusps; the error then carries Code ERR and,
// for the Ex2 variants, the native explanation.
type HouseResult struct {
	Code        int32
	Cusps       HouseCusps
	Ascmc       [10]float64
	CuspSpeeds  HouseCusps
	AscmcSpeeds [10]float64
}

// cuspCall allocates cusp storage of the shape selected by hsys and hands
// pointers to it to call. speeds is nil unless withSpeeds is set.
func cuspCall(hsys HouseSystem, withSpeeds bool, call func(cusps, speeds *float64) int32) (int32, HouseCusps, HouseCusps) {
	if hsys.canonical() == Gauquelin {
		var cusps, speeds GauquelinCusps
		if !withSpeeds {
			return call(&cusps[0], nil), cusps, nil
		}
		code := call(&cusps[0], &speeds[0])
		return code, cusps, speeds
	}
	var cusps, speeds StandardCusps
	if !withSpeeds {
		return call(&cusps[0], nil), cusps, nil
	}
	code := call(&cusps[0], &speeds[0])
	return code, cusps, speeds
}

func houseResult(op string, code int32, serr *buffer.Max, r HouseResult) (HouseResult, error) {
	var msg string
	if serr != nil {
		msg = serr.Text()
	}
	r.Code = code
	return r, status.Check(op, code, msg)
}

// Houses computes house cusps and angles for a date and place.
func Houses(tjdUt, geolat, geolon float64, hsys HouseSystem) (HouseResult, error) {
	hsys = hsys.canonical()
	var r HouseResult
	code, cusps, _ := cuspCall(hsys, false, func(c, _ *float64) int32 {
		return typed.SweHouses(tjdUt, geolat, geolon, int32(hsys), c, &r.Ascmc[0])
	})
	r.Cusps = cusps
	return houseResult("swe_houses", code, nil, r)
}

// HousesEx is Houses with calculation flags, e.g. FlagSidereal.
func HousesEx(tjdUt float64, flags Flag, geolat, geolon float64, hsys HouseSystem) (HouseResult, error) {
	hsys = hsys.canonical()
	var r HouseResult
	code, cusps, _ := cuspCall(hsys, false, func(c, _ *float64) int32 {
		return typed.SweHousesEx(tjdUt, int32(flags), geolat, geolon, int32(hsys), c, &r.Ascmc[0])
	})
	r.Cusps = cusps
	return houseResult("swe_houses_ex", code, nil, r)
}

// HousesEx2 is HousesEx that also returns the speeds of cusps and angles.
func HousesEx2(tjdUt float64, flags Flag, geolat, geolon float64, hsys HouseSystem) (HouseResult, error) {
	hsys = hsys.canonical()
	var r HouseResult
	serr := buffer.New()
	code, cusps, speeds := cuspCall(hsys, true, func(c, cs *float64) int32 {
		return typed.SweHousesEx2(tjdUt, int32(flags), geolat, geolon, int32(hsys), c, &r.Ascmc[0], cs,
			&r.AscmcSpeeds[0], serr.Ptr())
	})
	r.Cusps, r.CuspSpeeds = cusps, speeds
	return houseResult("swe_houses_ex2", code, &serr, r)
}

// HousesArmc computes houses from the ARMC and obliquity eps instead of a date.
func HousesArmc(armc, geolat, eps float64, hsys HouseSystem) (HouseResult, error) {
	hsys = hsys.canonical()
	var r HouseResult
	code, cusps, _ := cuspCall(hsys, false, func(c, _ *float64) int32 {
		return typed.SweHousesArmc(armc, geolat, eps, int32(hsys), c, &r.Ascmc[0])
	})
	r.Cusps = cusps
	return houseResult("swe_houses_armc", code, nil, r)
}

// HousesArmcEx2 is HousesArmc that also returns speeds.
func HousesArmcEx2(armc, geolat, eps float64, hsys HouseSystem) (HouseResult, error) {
	hsys = hsys.canonical()
	var r HouseResult
	serr := buffer.New()
	code, cusps, speeds := cuspCall(hsys, true, func(c, cs *float64) int32 {
		return typed.SweHousesArmcEx2(armc, geolat, eps, int32(hsys), c, &r.Ascmc[0], cs, &r.AscmcSpeeds[0], serr.Ptr())
	})
	r.Cusps, r.CuspSpeeds = cusps, speeds
	return houseResult("swe_houses_armc_ex2", code, &serr, r)
}

// HousePos returns the house position (1.0 to 12.999, or 1 to 36.999 for
// Gauquelin) of a point with ecliptic longitude lon and latitude lat.
// The native function has no status code; a message in its error buffer
// is reported as a failure with code ERR.
func HousePos(armc, geolat, eps float64, hsys HouseSystem, lon, lat float64) (float64, error) {
	xpin := [2]float64{lon, lat}
	serr := buffer.New()
	pos := typed.SweHousePos(armc, geolat, eps, int32(hsys), &xpin[0], serr.Ptr())
	if msg := serr.Text(); msg != "" {
		return pos, status.New("swe_house_pos", status.ERR, msg)
	}
	return pos, nil
}

// HouseName returns the display name of a house system. Unknown codes
// fall back to Placidus, as in the native library.
func HouseName(hsys HouseSystem) string {
	return buffer.FromPtr(typed.SweHouseName(int32(hsys)))
}

// GauquelinSector returns the Gauquelin sector position of a planet, or of
// a fixed star when star is not empty. Star.Name is the star name as
// rewritten by the native library.
func GauquelinSector(tUt float64, ipl Planet, star string, flags Flag, method int32, geopos [3]float64,
	atpress, attemp float64) (Star[float64], error) {
	name, err := starBuffer("swe_gauquelin_sector", star)
	if err != nil {
		return Star[float64]{}, err
	}
	var sector float64
	serr := buffer.New()
	code := typed.SweGauquelinSector(tUt, int32(ipl), name.Ptr(), int32(flags), method, &geopos[0],
		atpress, attemp, &sector, serr.Ptr())
	return checkStar("swe_gauquelin_sector", code, &name, &serr, sector)
}
