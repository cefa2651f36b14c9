package swisseph

import (
	"fmt"

	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/typed"
)

// Fixed star names are looked up in sefstars.txt on the ephemeris path.
// A name can be a traditional name ("Aldebaran"), a Bayer designation
// with a leading comma (",alTau") or a sequence number ("5"). The native
// library writes the full catalogue name back, which is returned as
// Star.Name.

func starBuffer(op, name string) (buffer.Max, error) {
	b, err := buffer.FromString(name)
	if err != nil {
		return b, fmt.Errorf("swisseph: %s: object name: %w", op, err)
	}
	return b, nil
}

// Fixstar computes the position of a fixed star at ephemeris time tjd.
func Fixstar(star string, tjd float64, flags Flag) (Star[[6]float64], error) {
	name, err := starBuffer("swe_fixstar", star)
	if err != nil {
		return Star[[6]float64]{}, err
	}
	var xx [6]float64
	serr := buffer.New()
	code := typed.SweFixstar(name.Ptr(), tjd, int32(flags), &xx[0], serr.Ptr())
	return checkStar("swe_fixstar", code, &name, &serr, xx)
}

// FixstarUt is Fixstar for universal time.
func FixstarUt(star string, tjdUt float64, flags Flag) (Star[[6]float64], error) {
	name, err := starBuffer("swe_fixstar_ut", star)
	if err != nil {
		return Star[[6]float64]{}, err
	}
	var xx [6]float64
	serr := buffer.New()
	code := typed.SweFixstarUt(name.Ptr(), tjdUt, int32(flags), &xx[0], serr.Ptr())
	return checkStar("swe_fixstar_ut", code, &name, &serr, xx)
}

// FixstarMag returns the visual magnitude of a fixed star.
func FixstarMag(star string) (Star[float64], error) {
	name, err := starBuffer("swe_fixstar_mag", star)
	if err != nil {
		return Star[float64]{}, err
	}
	var mag float64
	serr := buffer.New()
	code := typed.SweFixstarMag(name.Ptr(), &mag, serr.Ptr())
	return checkStar("swe_fixstar_mag", code, &name, &serr, mag)
}

// Fixstar2 is Fixstar using the sorted, cached star catalogue. It is
// faster when many stars are computed.
func Fixstar2(star string, tjd float64, flags Flag) (Star[[6]float64], error) {
	name, err := starBuffer("swe_fixstar2", star)
	if err != nil {
		return Star[[6]float64]{}, err
	}
	var xx [6]float64
	serr := buffer.New()
	code := typed.SweFixstar2(name.Ptr(), tjd, int32(flags), &xx[0], serr.Ptr())
	return checkStar("swe_fixstar2", code, &name, &serr, xx)
}

// Fixstar2Ut is Fixstar2 for universal time.
func Fixstar2Ut(star string, tjdUt float64, flags Flag) (Star[[6]float64], error) {
	name, err := starBuffer("swe_fixstar2_ut", star)
	if err != nil {
		return Star[[6]float64]{}, err
	}
	var xx [6]float64
	serr := buffer.New()
	code := typed.SweFixstar2Ut(name.Ptr(), tjdUt, int32(flags), &xx[0], serr.Ptr())
	return checkStar("swe_fixstar2_ut", code, &name, &serr, xx)
}

// Fixstar2Mag is FixstarMag using the cached catalogue.
func Fixstar2Mag(star string) (Star[float64], error) {
	name, err := starBuffer("swe_fixstar2_mag", star)
	if err != nil {
		return Star[float64]{}, err
	}
	var mag float64
	serr := buffer.New()
	code := typed.SweFixstar2Mag(name.Ptr(), &mag, serr.Ptr())
	return checkStar("swe_fixstar2_mag", code, &name, &serr, mag)
}
