package swisseph

import (
	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/typed"
)

// Version returns the version of the native library, e.g. "2.10.03".
func Version() string {
	v := buffer.New()
	return buffer.FromPtr(typed.SweVersion(v.Ptr()))
}

// LibraryPath returns the path of the executable or shared library the
// native code was loaded from.
func LibraryPath() string {
	p := buffer.New()
	return buffer.FromPtr(typed.SweGetLibraryPath(p.Ptr()))
}

// PlanetName returns the name the native library uses for ipl. Asteroid
// names are looked up in seasnam.txt when it is on the ephemeris path.
func PlanetName(ipl Planet) string {
	n := buffer.New()
	return buffer.FromPtr(typed.SweGetPlanetName(int32(ipl), n.Ptr()))
}

// Ephemeris file slots for CurrentFileData.
const (
	FilePlanet   int32 = 0
	FileMoon     int32 = 1
	FileAsteroid int32 = 2
	FileOther    int32 = 3
	FileStars    int32 = 4
)

// CurrentFileData describes the ephemeris file last used in slot ifno.
// It reflects native state left behind by earlier calculations.
func CurrentFileData(ifno int32) FileData {
	var fd FileData
	fd.Path = buffer.FromPtr(typed.SweGetCurrentFileData(ifno, &fd.Start, &fd.End, &fd.DENum))
	return fd
}

// AstroModels returns the astronomical models in use as a comma separated
// list of model numbers, and a readable description of them.
func AstroModels(flags Flag) (models, description string) {
	samod := buffer.New()
	// The description lists every model on its own line and does not fit
	// into a single AS_MAXCH buffer.
	var sdet [8 * buffer.MaxCh]byte
	typed.SweGetAstroModels(samod.Ptr(), &sdet[0], int32(flags))
	return samod.Text(), buffer.FromPtr(&sdet[0])
}

// TidAcc returns the tidal acceleration currently in effect, in arcsec per
// century squared.
func TidAcc() float64 {
	return typed.SweGetTidAcc()
}

// Ayanamsa returns the ayanamsa of the current sidereal mode at ephemeris
// time tjdEt.
func Ayanamsa(tjdEt float64) float64 {
	return typed.SweGetAyanamsa(tjdEt)
}

// AyanamsaUt is Ayanamsa for universal time.
func AyanamsaUt(tjdUt float64) float64 {
	return typed.SweGetAyanamsaUt(tjdUt)
}

// AyanamsaEx returns the ayanamsa computed with the given ephemeris flags.
// Code is the ephemeris flag actually used.
func AyanamsaEx(tjdEt float64, flags Flag) (Result[float64], error) {
	var daya float64
	serr := buffer.New()
	code := typed.SweGetAyanamsaEx(tjdEt, int32(flags), &daya, serr.Ptr())
	return check("swe_get_ayanamsa_ex", code, &serr, daya)
}

// AyanamsaExUt is AyanamsaEx for universal time.
func AyanamsaExUt(tjdUt float64, flags Flag) (Result[float64], error) {
	var daya float64
	serr := buffer.New()
	code := typed.SweGetAyanamsaExUt(tjdUt, int32(flags), &daya, serr.Ptr())
	return check("swe_get_ayanamsa_ex_ut", code, &serr, daya)
}

// AyanamsaName returns the name of a sidereal mode, or "" for an unknown one.
func AyanamsaName(mode SiderealMode) string {
	return buffer.FromPtr(typed.SweGetAyanamsaName(int32(mode)))
}
