// Package swisseph provides Go bindings for the Swiss Ephemeris C library.
//
// The bindings come in three tiers:
//
//   - package raw: one cgo function per C entry point, C-width types, raw
//     pointers, no checks.
//   - package typed: the same functions with int32, float64 and bool
//     parameters; output storage is still supplied by the caller.
//   - this package: output storage is allocated internally, status codes
//     are classified and failures are returned as *Error values.
//
// # Installation
//
// Before using this package, build the native library:
//
//	go run github.com/jgrowl/swisseph-go/cmd/swisseph-install@latest
//
// # Basic Usage
//
//	if err := swisseph.Configure(swisseph.WithEphePath("/usr/share/sweph")); err != nil {
//	    log.Fatal(err)
//	}
//	defer swisseph.Close()
//
//	jd := swisseph.Julday(2002, 1, 1, 0, swisseph.Gregorian)
//	res, err := swisseph.CalcUt(jd, swisseph.Sun, swisseph.FlagSpeed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("longitude", res.Data[0])
//
// # Status Codes
//
// Every native call that reports status returns an int32 code. Codes below
// OK are failures and come back as an error. Codes at or above OK are
// successes and are kept in Result.Code: several functions use positive
// values to echo the flags actually used or to report a degraded result,
// so callers that care should compare Code against what they asked for.
//
// # Global State
//
// The native library keeps process-wide state: the ephemeris search path,
// open ephemeris files, the JPL file, the topocentric observer, sidereal
// mode, tidal acceleration, user delta T, nutation interpolation, the lapse
// rate and the astro models. This state persists across calls and changes
// the results of later, unrelated calls. The functions that modify it are
// grouped in config.go and should run before any calculation that depends
// on them. Close releases open files; it is safe to call more than once.
//
// # Thread Safety
//
// Nothing in this module is safe for concurrent use. The native library
// does no locking. Serialize all calls, including calls made through the
// raw and typed packages.
package swisseph
