// Package raw is the unprocessed cgo surface of the Swiss Ephemeris C library.
//
// Every exported function corresponds to exactly one C entry point and
// takes the C-width types declared below. Output parameters are raw
// pointers that must address enough storage for what the C function
// writes (for example six doubles for swe_calc_ut, AS_MAXCH bytes for every
// serr buffer). Nothing is checked. Use package typed for Go-native
// parameter types, or package swisseph for allocation and error handling.
//
// # Installation
//
// Before using this package, build the native library:
//
//	go run github.com/jgrowl/swisseph-go/cmd/swisseph-install@latest
//
// This downloads the Swiss Ephemeris sources, compiles them into a static
// library and places it, with its headers, next to this package in the
// module cache where cgo can find it.
//
// # Build Errors
//
// Linker errors about missing swe_ symbols, or a missing swephexp.h, mean
// the native library is not installed. Run the install command above.
//
// # Global State
//
// The C library keeps process-wide state (ephemeris path, open files,
// sidereal mode, tidal acceleration). Calls are not reentrant and must not
// be made concurrently.
package raw

/*
#cgo CFLAGS: -I${SRCDIR}/include

// Platform-specific static libraries
// The install command places these in the module cache at build time
#cgo darwin,arm64 LDFLAGS: ${SRCDIR}/lib/darwin_arm64/libswe.a -lm
#cgo darwin,amd64 LDFLAGS: ${SRCDIR}/lib/darwin_amd64/libswe.a -lm
#cgo linux,arm64 LDFLAGS: ${SRCDIR}/lib/linux_arm64/libswe.a -lm -ldl
#cgo linux,amd64 LDFLAGS: ${SRCDIR}/lib/linux_amd64/libswe.a -lm -ldl

#include <swephexp.h>
*/
import "C"
import "unsafe"

// C-width scalar types used by the raw signatures.
type (
	// Int is a C int.
	Int int32
	// Int32 is the int32 typedef from sweodef.h.
	Int32 int32
	// Double is a C double.
	Double float64
	// Char is a C char. Only its address is ever passed to C.
	Char byte
	// Centisec is the centisec typedef: an angle or time in 1/100 arc second.
	Centisec int32
	// AsBool is the AS_BOOL typedef.
	AsBool int32
)

func cd(p *Double) *C.double {
	return (*C.double)(unsafe.Pointer(p))
}

func cc(p *Char) *C.char {
	return (*C.char)(unsafe.Pointer(p))
}

func ci32(p *Int32) *C.int32 {
	return (*C.int32)(unsafe.Pointer(p))
}

func ci(p *Int) *C.int {
	return (*C.int)(unsafe.Pointer(p))
}

func gc(p *C.char) *Char {
	return (*Char)(unsafe.Pointer(p))
}

// SweClose releases all open ephemeris files and resets cached state.
func SweClose() {
	C.swe_close()
}

// SweSetEphePath sets the ephemeris search path. path must be NUL terminated.
func SweSetEphePath(path *Char) {
	C.swe_set_ephe_path(cc(path))
}

// SweSetJplFile sets the JPL ephemeris file name. fname must be NUL terminated.
func SweSetJplFile(fname *Char) {
	C.swe_set_jpl_file(cc(fname))
}

// SweSetTopo calls swe_set_topo.
func SweSetTopo(geolon, geolat, geoalt Double) {
	C.swe_set_topo(C.double(geolon), C.double(geolat), C.double(geoalt))
}

// SweSetSidMode calls swe_set_sid_mode.
func SweSetSidMode(sidMode Int32, t0, ayanT0 Double) {
	C.swe_set_sid_mode(C.int32(sidMode), C.double(t0), C.double(ayanT0))
}

// SweSetTidAcc calls swe_set_tid_acc.
func SweSetTidAcc(tAcc Double) {
	C.swe_set_tid_acc(C.double(tAcc))
}

// SweGetTidAcc calls swe_get_tid_acc.
func SweGetTidAcc() Double {
	return Double(C.swe_get_tid_acc())
}

// SweSetDeltaTUserdef calls swe_set_delta_t_userdef.
func SweSetDeltaTUserdef(dt Double) {
	C.swe_set_delta_t_userdef(C.double(dt))
}

// SweSetLapseRate calls swe_set_lapse_rate.
func SweSetLapseRate(lapseRate Double) {
	C.swe_set_lapse_rate(C.double(lapseRate))
}

// SweSetAstroModels calls swe_set_astro_models.
func SweSetAstroModels(samod *Char, iflag Int32) {
	C.swe_set_astro_models(cc(samod), C.int32(iflag))
}

// SweGetAstroModels calls swe_get_astro_models.
func SweGetAstroModels(samod, sdet *Char, iflag Int32) {
	C.swe_get_astro_models(cc(samod), cc(sdet), C.int32(iflag))
}

// SweVersion writes the version into s (AS_MAXCH bytes) and returns s.
func SweVersion(s *Char) *Char {
	return gc(C.swe_version(cc(s)))
}

// SweGetLibraryPath writes the path of the running executable or library into s.
func SweGetLibraryPath(s *Char) *Char {
	return gc(C.swe_get_library_path(cc(s)))
}

// SweGetPlanetName calls swe_get_planet_name.
func SweGetPlanetName(ipl Int, spname *Char) *Char {
	return gc(C.swe_get_planet_name(C.int(ipl), cc(spname)))
}

// SweGetCurrentFileData returns a pointer into static native storage.
func SweGetCurrentFileData(ifno Int, tfstart, tfend *Double, denum *Int) *Char {
	return gc(C.swe_get_current_file_data(C.int(ifno), cd(tfstart), cd(tfend), ci(denum)))
}

// SweGetAyanamsa calls swe_get_ayanamsa.
func SweGetAyanamsa(tjdEt Double) Double {
	return Double(C.swe_get_ayanamsa(C.double(tjdEt)))
}

// SweGetAyanamsaUt calls swe_get_ayanamsa_ut.
func SweGetAyanamsaUt(tjdUt Double) Double {
	return Double(C.swe_get_ayanamsa_ut(C.double(tjdUt)))
}

// SweGetAyanamsaEx calls swe_get_ayanamsa_ex.
func SweGetAyanamsaEx(tjdEt Double, iflag Int32, daya *Double, serr *Char) Int32 {
	return Int32(C.swe_get_ayanamsa_ex(C.double(tjdEt), C.int32(iflag), cd(daya), cc(serr)))
}

// SweGetAyanamsaExUt calls swe_get_ayanamsa_ex_ut.
func SweGetAyanamsaExUt(tjdUt Double, iflag Int32, daya *Double, serr *Char) Int32 {
	return Int32(C.swe_get_ayanamsa_ex_ut(C.double(tjdUt), C.int32(iflag), cd(daya), cc(serr)))
}

// SweGetAyanamsaName returns a pointer into static native storage.
func SweGetAyanamsaName(isidmode Int32) *Char {
	return gc(C.swe_get_ayanamsa_name(C.int32(isidmode)))
}
