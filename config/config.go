// Package config reads the native configuration of the ephemeris from a
// YAML document.
//
//	ephe_path: /usr/share/sweph
//	jpl_file: de441.eph
//	topo: {lon: 8.55, lat: 47.37, alt: 400}
//	sidereal: {mode: 1, t0: 0, ayan_t0: 0}
//	tidal_acceleration: -25.8
//	delta_t: 0.0008
//	interpolate_nutation: true
//	lapse_rate: 0.0065
//	astro_models: "1,9,9,8,4,4,4"
//	astro_flags: 2
//
// Every field is optional. Fields that are left out keep the library's
// current setting. Apply a document with swisseph.ConfigureFrom.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jgrowl/swisseph-go/buffer"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid settings")

// Settings is the configuration document.
type Settings struct {
	// Close releases open ephemeris files before the rest is applied.
	Close bool `yaml:"close,omitempty"`

	EphePath *string `yaml:"ephe_path,omitempty"`
	JPLFile  *string `yaml:"jpl_file,omitempty"`

	Topo     *Topo     `yaml:"topo,omitempty"`
	Sidereal *Sidereal `yaml:"sidereal,omitempty"`

	TidalAcceleration   *float64 `yaml:"tidal_acceleration,omitempty"`
	DeltaT              *float64 `yaml:"delta_t,omitempty"`
	InterpolateNutation *bool    `yaml:"interpolate_nutation,omitempty"`
	LapseRate           *float64 `yaml:"lapse_rate,omitempty"`

	AstroModels *string `yaml:"astro_models,omitempty"`
	AstroFlags  int32   `yaml:"astro_flags,omitempty"`
}

// Topo is a topocentric observer. Alt is in meters.
type Topo struct {
	Lon float64 `yaml:"lon"`
	Lat float64 `yaml:"lat"`
	Alt float64 `yaml:"alt"`
}

// Sidereal selects an ayanamsa. T0 and AyanT0 only matter for the user
// defined mode.
type Sidereal struct {
	Mode   int32   `yaml:"mode"`
	T0     float64 `yaml:"t0"`
	AyanT0 float64 `yaml:"ayan_t0"`
}

// Parse decodes a document. Unknown keys are rejected.
func Parse(data []byte) (*Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		// An empty document leaves everything unset.
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return &s, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return s, nil
}

// Marshal encodes s as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Validate reports settings the native library cannot take. A nil
// Settings is valid.
func (s *Settings) Validate() error {
	if s == nil {
		return nil
	}
	for _, f := range []struct {
		name string
		v    *string
	}{
		{"ephe_path", s.EphePath},
		{"jpl_file", s.JPLFile},
		{"astro_models", s.AstroModels},
	} {
		if f.v == nil {
			continue
		}
		if _, err := buffer.FromString(*f.v); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, f.name, err)
		}
	}
	if t := s.Topo; t != nil {
		if t.Lat < -90 || t.Lat > 90 {
			return fmt.Errorf("%w: topo latitude %g out of range", ErrInvalid, t.Lat)
		}
		if t.Lon < -180 || t.Lon > 180 {
			return fmt.Errorf("%w: topo longitude %g out of range", ErrInvalid, t.Lon)
		}
	}
	if sid := s.Sidereal; sid != nil && sid.Mode < 0 {
		return fmt.Errorf("%w: sidereal mode %d is negative", ErrInvalid, sid.Mode)
	}
	if s.LapseRate != nil && *s.LapseRate < 0 {
		return fmt.Errorf("%w: lapse rate %g is negative", ErrInvalid, *s.LapseRate)
	}
	return nil
}
