package swisseph

import (
	"fmt"

	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/config"
	"github.com/jgrowl/swisseph-go/typed"
)

// This file holds the configuration group: every function that changes
// process-wide native state. Call them before the calculations that depend
// on them. Settings stay in effect until changed again; Close releases
// open files but keeps the other settings.

// Close releases all open ephemeris files and cached data. It may be
// called any number of times. After Close, SetEphePath or SetJPLFile must
// be called again before calculations that need ephemeris files.
func Close() {
	typed.SweClose()
}

// SetEphePath sets the directories searched for ephemeris files, separated
// by ':' (';' on Windows). An empty path selects the compiled-in default.
// It closes files opened from a previous path.
func SetEphePath(path string) error {
	b, err := buffer.FromString(path)
	if err != nil {
		return fmt.Errorf("swisseph: ephemeris path: %w", err)
	}
	typed.SweSetEphePath(b.Ptr())
	return nil
}

// SetJPLFile selects the JPL ephemeris file used with FlagJPL. The file is
// searched on the ephemeris path.
func SetJPLFile(fname string) error {
	b, err := buffer.FromString(fname)
	if err != nil {
		return fmt.Errorf("swisseph: JPL file: %w", err)
	}
	typed.SweSetJplFile(b.Ptr())
	return nil
}

// SetTopo sets the observer used with FlagTopocentric. geoalt is in
// meters above sea level.
func SetTopo(geolon, geolat, geoalt float64) {
	typed.SweSetTopo(geolon, geolat, geoalt)
}

// SetSidMode selects the ayanamsa used with FlagSidereal. t0 and ayanT0
// are only used with SidmUser.
func SetSidMode(mode SiderealMode, t0, ayanT0 float64) {
	typed.SweSetSidMode(int32(mode), t0, ayanT0)
}

// SetTidAcc overrides the tidal acceleration used for delta T. Pass
// TidalAutomatic to return to the value of the ephemeris in use.
func SetTidAcc(tAcc float64) {
	typed.SweSetTidAcc(tAcc)
}

// SetDeltaTUserdef forces delta T to dt days. Pass DeltaTAutomatic to
// return to the computed value.
func SetDeltaTUserdef(dt float64) {
	typed.SweSetDeltaTUserdef(dt)
}

// SetInterpolateNut enables interpolation of nutation, which is faster
// and slightly less precise.
func SetInterpolateNut(interpolate bool) {
	typed.SweSetInterpolateNut(interpolate)
}

// SetLapseRate sets the atmospheric lapse rate in K/m used by the
// refraction and heliacal functions.
func SetLapseRate(lapseRate float64) {
	typed.SweSetLapseRate(lapseRate)
}

// SetAstroModels selects the astronomical models, given as a comma
// separated list of model numbers in the order of the SE_MODEL_ indices.
func SetAstroModels(models string, flags Flag) error {
	b, err := buffer.FromString(models)
	if err != nil {
		return fmt.Errorf("swisseph: astro models: %w", err)
	}
	typed.SweSetAstroModels(b.Ptr(), int32(flags))
	return nil
}

// settings is the configuration group collected from Options.
type settings struct {
	close       bool
	ephePath    *string
	jplFile     *string
	topo        *[3]float64
	sidMode     *SiderealMode
	sidT0       float64
	sidAyanT0   float64
	tidAcc      *float64
	deltaT      *float64
	interpolate *bool
	lapseRate   *float64
	astroModels *string
	astroFlags  Flag
}

// Option sets one part of the native configuration in Configure.
type Option func(*settings)

// WithClose closes open files before anything else is applied.
func WithClose() Option {
	return func(s *settings) {
		s.close = true
	}
}

// WithEphePath sets the ephemeris search path.
func WithEphePath(path string) Option {
	return func(s *settings) {
		s.ephePath = &path
	}
}

// WithJPLFile selects the JPL ephemeris file.
func WithJPLFile(fname string) Option {
	return func(s *settings) {
		s.jplFile = &fname
	}
}

// WithTopo sets the topocentric observer.
func WithTopo(geolon, geolat, geoalt float64) Option {
	return func(s *settings) {
		s.topo = &[3]float64{geolon, geolat, geoalt}
	}
}

// WithSidereal sets the sidereal mode.
func WithSidereal(mode SiderealMode, t0, ayanT0 float64) Option {
	return func(s *settings) {
		s.sidMode = &mode
		s.sidT0 = t0
		s.sidAyanT0 = ayanT0
	}
}

// WithTidalAcceleration overrides the tidal acceleration.
func WithTidalAcceleration(tAcc float64) Option {
	return func(s *settings) {
		s.tidAcc = &tAcc
	}
}

// WithDeltaT forces a fixed delta T in days.
func WithDeltaT(dt float64) Option {
	return func(s *settings) {
		s.deltaT = &dt
	}
}

// WithInterpolatedNutation enables or disables nutation interpolation.
func WithInterpolatedNutation(interpolate bool) Option {
	return func(s *settings) {
		s.interpolate = &interpolate
	}
}

// WithLapseRate sets the atmospheric lapse rate.
func WithLapseRate(lapseRate float64) Option {
	return func(s *settings) {
		s.lapseRate = &lapseRate
	}
}

// WithAstroModels selects the astronomical models.
func WithAstroModels(models string, flags Flag) Option {
	return func(s *settings) {
		s.astroModels = &models
		s.astroFlags = flags
	}
}

// Configure applies opts to the native library. Options are applied in
// a fixed order regardless of the order given: close, ephemeris path,
// JPL file, observer, sidereal mode, tidal acceleration, delta T, nutation
// interpolation, lapse rate, astro models. Settings not mentioned keep
// their current value.
//
// Text options are checked before anything is applied, so an error leaves
// the native state unchanged.
func Configure(opts ...Option) error {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	for _, p := range []*string{s.ephePath, s.jplFile, s.astroModels} {
		if p == nil {
			continue
		}
		if _, err := buffer.FromString(*p); err != nil {
			return fmt.Errorf("swisseph: configure: %w", err)
		}
	}

	if s.close {
		Close()
	}
	if s.ephePath != nil {
		if err := SetEphePath(*s.ephePath); err != nil {
			return err
		}
	}
	if s.jplFile != nil {
		if err := SetJPLFile(*s.jplFile); err != nil {
			return err
		}
	}
	if s.topo != nil {
		SetTopo(s.topo[0], s.topo[1], s.topo[2])
	}
	if s.sidMode != nil {
		SetSidMode(*s.sidMode, s.sidT0, s.sidAyanT0)
	}
	if s.tidAcc != nil {
		SetTidAcc(*s.tidAcc)
	}
	if s.deltaT != nil {
		SetDeltaTUserdef(*s.deltaT)
	}
	if s.interpolate != nil {
		SetInterpolateNut(*s.interpolate)
	}
	if s.lapseRate != nil {
		SetLapseRate(*s.lapseRate)
	}
	if s.astroModels != nil {
		if err := SetAstroModels(*s.astroModels, s.astroFlags); err != nil {
			return err
		}
	}
	return nil
}

// Options converts a settings document into Configure options.
func Options(cfg *config.Settings) []Option {
	if cfg == nil {
		return nil
	}
	var opts []Option
	if cfg.Close {
		opts = append(opts, WithClose())
	}
	if cfg.EphePath != nil {
		opts = append(opts, WithEphePath(*cfg.EphePath))
	}
	if cfg.JPLFile != nil {
		opts = append(opts, WithJPLFile(*cfg.JPLFile))
	}
	if t := cfg.Topo; t != nil {
		opts = append(opts, WithTopo(t.Lon, t.Lat, t.Alt))
	}
	if sid := cfg.Sidereal; sid != nil {
		opts = append(opts, WithSidereal(SiderealMode(sid.Mode), sid.T0, sid.AyanT0))
	}
	if cfg.TidalAcceleration != nil {
		opts = append(opts, WithTidalAcceleration(*cfg.TidalAcceleration))
	}
	if cfg.DeltaT != nil {
		opts = append(opts, WithDeltaT(*cfg.DeltaT))
	}
	if cfg.InterpolateNutation != nil {
		opts = append(opts, WithInterpolatedNutation(*cfg.InterpolateNutation))
	}
	if cfg.LapseRate != nil {
		opts = append(opts, WithLapseRate(*cfg.LapseRate))
	}
	if cfg.AstroModels != nil {
		opts = append(opts, WithAstroModels(*cfg.AstroModels, Flag(cfg.AstroFlags)))
	}
	return opts
}

// ConfigureFrom validates cfg and applies it with Configure.
func ConfigureFrom(cfg *config.Settings) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return Configure(Options(cfg)...)
}
