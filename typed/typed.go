// Package typed mirrors package raw with Go-native parameter types.
//
// Scalars are int32, float64 and bool; output parameters are still caller
// supplied pointers (*float64, *int32, *byte) that must address as much
// storage as the underlying C function writes. Booleans are encoded as the
// native MY_TRUE and MY_FALSE. Apart from those conversions every function
// forwards straight to its raw counterpart without checking anything.
//
// Text arguments are pointers to the first byte of a NUL terminated
// buffer, usually a buffer.Max.
package typed

import (
	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/raw"
)

func d(p *float64) *raw.Double { return (*raw.Double)(p) }
func c(p *byte) *raw.Char      { return (*raw.Char)(p) }
func i32(p *int32) *raw.Int32  { return (*raw.Int32)(p) }
func i(p *int32) *raw.Int      { return (*raw.Int)(p) }
func s(p *raw.Char) *byte      { return (*byte)(p) }

func asBool(b bool) raw.AsBool { return raw.AsBool(buffer.Bool(b)) }

// SweClose is raw.SweClose with Go types.
func SweClose() { raw.SweClose() }

// SweSetEphePath is raw.SweSetEphePath with Go types.
func SweSetEphePath(path *byte) { raw.SweSetEphePath(c(path)) }

// SweSetJplFile is raw.SweSetJplFile with Go types.
func SweSetJplFile(fname *byte) { raw.SweSetJplFile(c(fname)) }

// SweSetTopo is raw.SweSetTopo with Go types.
func SweSetTopo(geolon, geolat, geoalt float64) {
	raw.SweSetTopo(raw.Double(geolon), raw.Double(geolat), raw.Double(geoalt))
}

// SweSetSidMode is raw.SweSetSidMode with Go types.
func SweSetSidMode(sidMode int32, t0, ayanT0 float64) {
	raw.SweSetSidMode(raw.Int32(sidMode), raw.Double(t0), raw.Double(ayanT0))
}

// SweSetTidAcc is raw.SweSetTidAcc with Go types.
func SweSetTidAcc(tAcc float64) { raw.SweSetTidAcc(raw.Double(tAcc)) }

// SweGetTidAcc is raw.SweGetTidAcc with Go types.
func SweGetTidAcc() float64 { return float64(raw.SweGetTidAcc()) }

// SweSetDeltaTUserdef is raw.SweSetDeltaTUserdef with Go types.
func SweSetDeltaTUserdef(dt float64) { raw.SweSetDeltaTUserdef(raw.Double(dt)) }

// SweSetInterpolateNut is raw.SweSetInterpolateNut with Go types.
func SweSetInterpolateNut(doInterpolate bool) { raw.SweSetInterpolateNut(asBool(doInterpolate)) }

// SweSetLapseRate is raw.SweSetLapseRate with Go types.
func SweSetLapseRate(lapseRate float64) { raw.SweSetLapseRate(raw.Double(lapseRate)) }

// SweSetAstroModels is raw.SweSetAstroModels with Go types.
func SweSetAstroModels(samod *byte, iflag int32) { raw.SweSetAstroModels(c(samod), raw.Int32(iflag)) }

// SweGetAstroModels is raw.SweGetAstroModels with Go types.
func SweGetAstroModels(samod, sdet *byte, iflag int32) {
	raw.SweGetAstroModels(c(samod), c(sdet), raw.Int32(iflag))
}

// SweVersion is raw.SweVersion with Go types.
func SweVersion(sv *byte) *byte { return s(raw.SweVersion(c(sv))) }

// SweGetLibraryPath is raw.SweGetLibraryPath with Go types.
func SweGetLibraryPath(sp *byte) *byte { return s(raw.SweGetLibraryPath(c(sp))) }

// SweGetPlanetName is raw.SweGetPlanetName with Go types.
func SweGetPlanetName(ipl int32, spname *byte) *byte {
	return s(raw.SweGetPlanetName(raw.Int(ipl), c(spname)))
}

// SweGetCurrentFileData is raw.SweGetCurrentFileData with Go types.
func SweGetCurrentFileData(ifno int32, tfstart, tfend *float64, denum *int32) *byte {
	return s(raw.SweGetCurrentFileData(raw.Int(ifno), d(tfstart), d(tfend), i(denum)))
}

// SweGetAyanamsa is raw.SweGetAyanamsa with Go types.
func SweGetAyanamsa(tjdEt float64) float64 { return float64(raw.SweGetAyanamsa(raw.Double(tjdEt))) }

// SweGetAyanamsaUt is raw.SweGetAyanamsaUt with Go types.
func SweGetAyanamsaUt(tjdUt float64) float64 { return float64(raw.SweGetAyanamsaUt(raw.Double(tjdUt))) }

// SweGetAyanamsaEx is raw.SweGetAyanamsaEx with Go types.
func SweGetAyanamsaEx(tjdEt float64, iflag int32, daya *float64, serr *byte) int32 {
	return int32(raw.SweGetAyanamsaEx(raw.Double(tjdEt), raw.Int32(iflag), d(daya), c(serr)))
}

// SweGetAyanamsaExUt is raw.SweGetAyanamsaExUt with Go types.
func SweGetAyanamsaExUt(tjdUt float64, iflag int32, daya *float64, serr *byte) int32 {
	return int32(raw.SweGetAyanamsaExUt(raw.Double(tjdUt), raw.Int32(iflag), d(daya), c(serr)))
}

// SweGetAyanamsaName is raw.SweGetAyanamsaName with Go types.
func SweGetAyanamsaName(isidmode int32) *byte { return s(raw.SweGetAyanamsaName(raw.Int32(isidmode))) }
