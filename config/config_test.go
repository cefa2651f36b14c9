package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrowl/swisseph-go/buffer"
)

const sample = `
ephe_path: /usr/share/sweph
jpl_file: de441.eph
topo: {lon: 8.55, lat: 47.37, alt: 400}
sidereal: {mode: 1, t0: 0, ayan_t0: 0}
tidal_acceleration: -25.8
delta_t: 0.0008
interpolate_nutation: true
lapse_rate: 0.0065
astro_models: "1,9,9,8,4,4,4"
astro_flags: 2
`

func TestParseSample(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.NotNil(t, s.EphePath)
	assert.Equal(t, "/usr/share/sweph", *s.EphePath)
	require.NotNil(t, s.JPLFile)
	assert.Equal(t, "de441.eph", *s.JPLFile)
	assert.Equal(t, &Topo{Lon: 8.55, Lat: 47.37, Alt: 400}, s.Topo)
	assert.Equal(t, &Sidereal{Mode: 1}, s.Sidereal)
	require.NotNil(t, s.TidalAcceleration)
	assert.Equal(t, -25.8, *s.TidalAcceleration)
	require.NotNil(t, s.InterpolateNutation)
	assert.True(t, *s.InterpolateNutation)
	assert.Equal(t, int32(2), s.AstroFlags)
	assert.False(t, s.Close)
	require.NoError(t, s.Validate())
}

func TestParseRoundTrip(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)
	out, err := s.Marshal()
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
	assert.Nil(t, s.EphePath)
	assert.Nil(t, s.DeltaT)
}

func TestParseZeroIsNotUnset(t *testing.T) {
	s, err := Parse([]byte("delta_t: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, s.DeltaT)
	assert.Zero(t, *s.DeltaT)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("ephe_pth: /tmp\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ephe_pth")
}

func TestValidate(t *testing.T) {
	long := strings.Repeat("x", buffer.MaxCh)
	ok := strings.Repeat("x", buffer.MaxCh-1)
	neg := -1.0

	tests := []struct {
		name    string
		s       *Settings
		wantErr error
	}{
		{"nil", nil, nil},
		{"empty", &Settings{}, nil},
		{"path at limit", &Settings{EphePath: &ok}, nil},
		{"path too long", &Settings{EphePath: &long}, buffer.ErrTooLong},
		{"jpl file too long", &Settings{JPLFile: &long}, buffer.ErrTooLong},
		{"models too long", &Settings{AstroModels: &long}, buffer.ErrTooLong},
		{"latitude", &Settings{Topo: &Topo{Lat: 91}}, ErrInvalid},
		{"longitude", &Settings{Topo: &Topo{Lon: -181}}, ErrInvalid},
		{"sidereal mode", &Settings{Sidereal: &Sidereal{Mode: -1}}, ErrInvalid},
		{"lapse rate", &Settings{LapseRate: &neg}, ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, s.LapseRate)
	assert.Equal(t, 0.0065, *s.LapseRate)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
