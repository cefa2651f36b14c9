package swisseph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jgrowl/swisseph-go/raw"
)

// Planet is a body number understood by the calculation functions.
// Asteroids, planetary moons and fictitious bodies are encoded as offsets;
// see Asteroid and PlanetaryMoon.
type Planet int32

const (
	// EclNut selects obliquity and nutation instead of a body.
	EclNut Planet = raw.SE_ECL_NUT

	Sun     Planet = raw.SE_SUN
	Moon    Planet = raw.SE_MOON
	Mercury Planet = raw.SE_MERCURY
	Venus   Planet = raw.SE_VENUS
	Mars    Planet = raw.SE_MARS
	Jupiter Planet = raw.SE_JUPITER
	Saturn  Planet = raw.SE_SATURN
	Uranus  Planet = raw.SE_URANUS
	Neptune Planet = raw.SE_NEPTUNE
	Pluto   Planet = raw.SE_PLUTO

	MeanNode Planet = raw.SE_MEAN_NODE
	TrueNode Planet = raw.SE_TRUE_NODE
	// MeanApogee is the mean lunar apogee (Lilith).
	MeanApogee Planet = raw.SE_MEAN_APOG
	// OscuApogee is the osculating lunar apogee.
	OscuApogee Planet = raw.SE_OSCU_APOG
	Earth      Planet = raw.SE_EARTH
	Chiron     Planet = raw.SE_CHIRON
	Pholus     Planet = raw.SE_PHOLUS
	Ceres      Planet = raw.SE_CERES
	Pallas     Planet = raw.SE_PALLAS
	Juno       Planet = raw.SE_JUNO
	Vesta      Planet = raw.SE_VESTA
	// IntpApogee is the interpolated lunar apogee.
	IntpApogee Planet = raw.SE_INTP_APOG
	// IntpPerigee is the interpolated lunar perigee.
	IntpPerigee Planet = raw.SE_INTP_PERG

	Cupido   Planet = raw.SE_CUPIDO
	Hades    Planet = raw.SE_HADES
	Zeus     Planet = raw.SE_ZEUS
	Kronos   Planet = raw.SE_KRONOS
	Apollon  Planet = raw.SE_APOLLON
	Admetos  Planet = raw.SE_ADMETOS
	Vulkanus Planet = raw.SE_VULKANUS
	Poseidon Planet = raw.SE_POSEIDON
	Isis     Planet = raw.SE_ISIS
)

// Asteroid returns the body number of the minor planet with catalogue number n.
func Asteroid(n int32) Planet {
	return Planet(raw.SE_AST_OFFSET + n)
}

// PlanetaryMoon returns the body number for a planetary moon, e.g. 9501 for Io.
func PlanetaryMoon(n int32) Planet {
	return Planet(raw.SE_PLMOON_OFFSET + n)
}

// IsAsteroid reports whether p was built with Asteroid.
func (p Planet) IsAsteroid() bool {
	return p > raw.SE_AST_OFFSET
}

// String returns the Go name of the body. Use PlanetName for the name the
// native library reports.
func (p Planet) String() string {
	switch p {
	case EclNut:
		return "EclNut"
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	case Pluto:
		return "Pluto"
	case MeanNode:
		return "MeanNode"
	case TrueNode:
		return "TrueNode"
	case MeanApogee:
		return "MeanApogee"
	case OscuApogee:
		return "OscuApogee"
	case Earth:
		return "Earth"
	case Chiron:
		return "Chiron"
	case Pholus:
		return "Pholus"
	case Ceres:
		return "Ceres"
	case Pallas:
		return "Pallas"
	case Juno:
		return "Juno"
	case Vesta:
		return "Vesta"
	case IntpApogee:
		return "IntpApogee"
	case IntpPerigee:
		return "IntpPerigee"
	case Cupido:
		return "Cupido"
	case Hades:
		return "Hades"
	case Zeus:
		return "Zeus"
	case Kronos:
		return "Kronos"
	case Apollon:
		return "Apollon"
	case Admetos:
		return "Admetos"
	case Vulkanus:
		return "Vulkanus"
	case Poseidon:
		return "Poseidon"
	case Isis:
		return "Isis"
	}
	if p.IsAsteroid() {
		return "Asteroid(" + strconv.Itoa(int(p-raw.SE_AST_OFFSET)) + ")"
	}
	return "Planet(" + strconv.Itoa(int(p)) + ")"
}

// ParsePlanet returns the body named s, matched case-insensitively against
// String, or the body with number s.
func ParsePlanet(s string) (Planet, error) {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return Planet(n), nil
	}
	for p := EclNut; p <= Isis; p++ {
		if strings.EqualFold(p.String(), s) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("swisseph: unknown body %q", s)
}

// Calendar selects the calendar of the date functions.
type Calendar int32

const (
	Julian    Calendar = raw.SE_JUL_CAL
	Gregorian Calendar = raw.SE_GREG_CAL
)

// String returns the string representation of the calendar.
func (c Calendar) String() string {
	switch c {
	case Julian:
		return "Julian"
	case Gregorian:
		return "Gregorian"
	default:
		return "Unknown"
	}
}

// code returns the character swe_date_conversion expects.
func (c Calendar) code() byte {
	if c == Julian {
		return 'j'
	}
	return 'g'
}
