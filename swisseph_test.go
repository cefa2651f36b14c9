package swisseph

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/config"
)

// jd2002 is 2002-01-01 00:00 UT.
const jd2002 = 2452275.5

// zurich is longitude, latitude and altitude of an observer in Zurich.
var zurich = [3]float64{8.55, 47.37, 400}

// ephePath points at a directory with the Swiss Ephemeris data files.
// Tests that need them are skipped when it is unset.
func ephePath(t *testing.T) string {
	t.Helper()
	p := os.Getenv("SE_EPHE_PATH")
	if p == "" {
		t.Skip("SE_EPHE_PATH not set")
	}
	return p
}

func TestJulday(t *testing.T) {
	jd := Julday(2002, 1, 1, 0, Gregorian)
	assert.Equal(t, jd2002, jd)
	assert.Equal(t, jd, Julday(2002, 1, 1, 0, Gregorian), "same input, same output")

	d := Revjul(jd, Gregorian)
	assert.Equal(t, Date{Year: 2002, Month: 1, Day: 1}, d)

	// Julian calendar is 13 days behind in 2002.
	assert.Equal(t, jd+13, Julday(2002, 1, 1, 0, Julian))
}

func TestDateConversion(t *testing.T) {
	res, err := DateConversion(2002, 1, 1, 12, Gregorian)
	require.NoError(t, err)
	assert.Equal(t, jd2002+0.5, res.Data)

	res, err = DateConversion(2002, 2, 30, 0, Gregorian)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.ErrorIs(t, err, ErrNative)
	assert.Equal(t, ERR, res.Code)
	assert.NotZero(t, res.Data)

	var nerr *Error
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, "swe_date_conversion", nerr.Op)
	assert.NotEmpty(t, nerr.Message)
}

func TestDayOfWeek(t *testing.T) {
	// 2002-01-01 was a Tuesday; Monday is 0.
	assert.Equal(t, int32(1), DayOfWeek(jd2002))
}

func TestUtcToJd(t *testing.T) {
	dt := DateTime{Year: 2002, Month: 1, Day: 1, Hour: 12}
	res, err := UtcToJd(dt, Gregorian)
	require.NoError(t, err)
	assert.Greater(t, res.Data[0], res.Data[1], "ET is ahead of UT1")
	// UT1 stays within a second of UTC.
	assert.InDelta(t, jd2002+0.5, res.Data[1], 2e-5)

	back := Jdut1ToUtc(res.Data[1], Gregorian)
	hour := float64(back.Hour) + float64(back.Minute)/60 + back.Second/3600
	assert.InDelta(t, jd2002+0.5, Julday(back.Year, back.Month, back.Day, hour, Gregorian), 1e-6)
}

func TestCalcUtMoshier(t *testing.T) {
	res, err := CalcUt(jd2002, Sun, FlagMoshier|FlagSpeed)
	require.NoError(t, err)
	assert.InDelta(t, 280.5, res.Data[0], 0.5)
	assert.InDelta(t, 1.0, res.Data[3], 0.05, "daily motion")
	assert.Equal(t, FlagMoshier, Flag(res.Code).Ephemeris())
}

func TestCalcFallbackMessage(t *testing.T) {
	require.NoError(t, SetEphePath(t.TempDir()))
	t.Cleanup(func() {
		Close()
		_ = SetEphePath(os.Getenv("SE_EPHE_PATH"))
	})

	res, err := CalcUt(jd2002, Sun, FlagSwissEph)
	require.NoError(t, err)
	assert.Equal(t, FlagMoshier, Flag(res.Code).Ephemeris(), "no files, so Moshier is used")
	assert.Contains(t, res.Message, "Moshier")

	res, err = CalcUt(jd2002, Sun, FlagMoshier)
	require.NoError(t, err)
	assert.Empty(t, res.Message)
}

func TestCalcUnknownBody(t *testing.T) {
	res, err := Calc(jd2002, Planet(30), FlagMoshier)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNative)
	assert.Equal(t, ERR, res.Code)
	assert.Zero(t, res.Data)

	var nerr *Error
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, "swe_calc", nerr.Op)
	assert.NotEmpty(t, nerr.Message)
	assert.Contains(t, err.Error(), "swe_calc")
}

func TestHouseName(t *testing.T) {
	assert.Equal(t, "Placidus", HouseName(Placidus))
	assert.Equal(t, "Placidus", HouseName(1), "unknown code falls back to Placidus")
	assert.Contains(t, HouseName(Gauquelin), "Gauquelin")
	assert.Contains(t, HouseName(Koch), "Koch")
}

func TestHousesShape(t *testing.T) {
	res, err := Houses(jd2002, 47.37, 8.55, Placidus)
	require.NoError(t, err)
	cusps, ok := res.Cusps.(StandardCusps)
	require.True(t, ok, "got %T", res.Cusps)
	assert.Equal(t, 12, cusps.Len())
	assert.InDelta(t, res.Ascmc[Asc], cusps.Cusp(1), 1e-9)
	assert.InDelta(t, res.Ascmc[MC], cusps.Cusp(10), 1e-9)
	assert.Nil(t, res.CuspSpeeds)

	for _, hsys := range []HouseSystem{Gauquelin, 'g'} {
		res, err = Houses(jd2002, 47.37, 8.55, hsys)
		require.NoError(t, err)
		g, ok := res.Cusps.(GauquelinCusps)
		require.True(t, ok, "%c: got %T", hsys, res.Cusps)
		assert.Equal(t, 36, g.Len())
	}
}

func TestHousesEx2Speeds(t *testing.T) {
	res, err := HousesEx2(jd2002, FlagMoshier, 47.37, 8.55, Koch)
	require.NoError(t, err)
	require.IsType(t, StandardCusps{}, res.CuspSpeeds)
	assert.Greater(t, res.AscmcSpeeds[ARMC], 300.0, "ARMC moves about 361 degrees a day")

	res, err = HousesEx2(jd2002, FlagMoshier, 47.37, 8.55, Gauquelin)
	require.NoError(t, err)
	assert.IsType(t, GauquelinCusps{}, res.Cusps)
	assert.IsType(t, GauquelinCusps{}, res.CuspSpeeds)
}

func TestHousesPolarCircleKeepsPorphyryCusps(t *testing.T) {
	porphyry, err := Houses(jd2002, 70, 25, Porphyry)
	require.NoError(t, err)

	res, err := Houses(jd2002, 70, 25, Placidus)
	assert.ErrorIs(t, err, ErrNative)
	assert.Equal(t, int32(ERR), res.Code)
	cusps, ok := res.Cusps.(StandardCusps)
	require.True(t, ok, "got %T", res.Cusps)
	for i := 1; i <= cusps.Len(); i++ {
		assert.NotZero(t, cusps.Cusp(i), "cusp %d", i)
		assert.InDelta(t, porphyry.Cusps.Cusp(i), cusps.Cusp(i), 1e-9, "cusp %d", i)
	}
	assert.InDelta(t, porphyry.Ascmc[Asc], res.Ascmc[Asc], 1e-9)

	res, err = HousesEx2(jd2002, FlagMoshier, 70, 25, Koch)
	var nerr *Error
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, int32(ERR), nerr.Code)
	assert.Contains(t, nerr.Message, "Porphyry")
	require.IsType(t, StandardCusps{}, res.Cusps)
	assert.NotZero(t, res.Cusps.Cusp(1))
	assert.NotNil(t, res.CuspSpeeds)
}

func TestHousePos(t *testing.T) {
	res, err := Houses(jd2002, 47.37, 8.55, Porphyry)
	require.NoError(t, err)
	c := res.Cusps.(StandardCusps)
	eps := 23.4377

	mid := DegMidp(c.Cusp(2), c.Cusp(1))
	pos, err := HousePos(res.Ascmc[ARMC], 47.37, eps, Porphyry, mid, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, pos, 0.05)
}

func TestCloseTwice(t *testing.T) {
	require.NotPanics(t, func() {
		Close()
		Close()
	})
}

func TestStatePersistsAcrossClose(t *testing.T) {
	require.NoError(t, SetEphePath(""))
	first, err := CalcUt(jd2002, Moon, FlagMoshier)
	require.NoError(t, err)
	second, err := CalcUt(jd2002, Moon, FlagMoshier)
	require.NoError(t, err)
	assert.Equal(t, first.Data, second.Data)

	Close()
	require.NoError(t, SetEphePath(""))
	third, err := CalcUt(jd2002, Moon, FlagMoshier)
	require.NoError(t, err)
	assert.Equal(t, first.Data, third.Data)
}

func TestTextArgumentsTooLong(t *testing.T) {
	long := strings.Repeat("x", buffer.MaxCh)

	_, err := Fixstar(long, jd2002, FlagMoshier)
	assert.ErrorIs(t, err, ErrTooLong)
	assert.False(t, errors.Is(err, ErrNative), "rejected before the native call")

	_, err = RiseTrans(jd2002, Sun, long, FlagMoshier, CalcRise, zurich, 0, 0)
	assert.ErrorIs(t, err, ErrTooLong)

	assert.ErrorIs(t, SetEphePath(long), ErrTooLong)
	assert.ErrorIs(t, SetJPLFile("de\x00441.eph"), ErrEmbeddedNUL)
}

func TestConfigureRejectsBeforeApplying(t *testing.T) {
	SetSidMode(SidmFaganBradley, 0, 0)
	before := AyanamsaUt(jd2002)

	long := strings.Repeat("x", buffer.MaxCh)
	err := Configure(WithSidereal(SidmLahiri, 0, 0), WithJPLFile(long))
	require.ErrorIs(t, err, ErrTooLong)
	assert.Equal(t, before, AyanamsaUt(jd2002), "sidereal mode unchanged")
}

func TestConfigureFrom(t *testing.T) {
	defer func() {
		SetSidMode(SidmFaganBradley, 0, 0)
		SetDeltaTUserdef(DeltaTAutomatic)
		Close()
	}()

	cfg, err := config.Parse([]byte("ephe_path: \"\"\nsidereal: {mode: 1}\ndelta_t: 0.001\n"))
	require.NoError(t, err)
	require.NoError(t, ConfigureFrom(cfg))

	assert.Equal(t, 0.001, Deltat(jd2002))

	res, err := CalcUt(jd2002, Sun, FlagMoshier|FlagSidereal)
	require.NoError(t, err)
	ayan := AyanamsaUt(jd2002)
	trop, err := CalcUt(jd2002, Sun, FlagMoshier)
	require.NoError(t, err)
	assert.InDelta(t, Degnorm(trop.Data[0]-ayan), res.Data[0], 0.02)

	bad := &config.Settings{Topo: &config.Topo{Lat: 100}}
	assert.ErrorIs(t, ConfigureFrom(bad), config.ErrInvalid)
	assert.NoError(t, ConfigureFrom(nil))
}

func TestPlanetName(t *testing.T) {
	assert.Equal(t, "Sun", PlanetName(Sun))
	assert.Equal(t, "Mars", PlanetName(Mars))
	assert.Equal(t, "Mars", Mars.String())
}

func TestVersion(t *testing.T) {
	v := Version()
	require.NotEmpty(t, v)
	assert.Regexp(t, `^\d+\.\d+`, v)
}

func TestMath(t *testing.T) {
	assert.InDelta(t, 10.0, Degnorm(370), 1e-12)
	assert.InDelta(t, 350.0, Degnorm(-10), 1e-12)
	assert.InDelta(t, -20.0, Difdeg2n(350, 10), 1e-12)
	assert.InDelta(t, 5.0, DegMidp(355, 15), 1e-12)
	assert.Equal(t, Centisec(100), Csnorm(360*360000+100))
	assert.Equal(t, int32(3), D2l(2.6))

	s := SplitDeg(123.5125, SplitRoundSec|SplitZodiacal)
	assert.Equal(t, SplitDegrees{Deg: 3, Min: 30, Sec: 45, Sign: 4}, SplitDegrees{
		Deg: s.Deg, Min: s.Min, Sec: s.Sec, Sign: s.Sign,
	})

	assert.Equal(t, "12:30:00", CsToTimeStr(12*360000+30*6000, ':', false))
}

func TestCotransRoundTrip(t *testing.T) {
	ecl := [3]float64{123.4, 5.6, 1}
	equ := Cotrans(ecl, -23.44)
	back := Cotrans(equ, 23.44)
	assert.InDelta(t, ecl[0], back[0], 1e-9)
	assert.InDelta(t, ecl[1], back[1], 1e-9)
}

func TestRiseTransCircumpolar(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping rise and set search in short mode")
	}
	// Midsummer north of the arctic circle.
	jd := Julday(2002, 6, 21, 0, Gregorian)
	_, err := RiseTrans(jd, Sun, "", FlagMoshier, CalcRise, [3]float64{15, 78, 0}, 1013.25, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircumpolar)
	assert.ErrorIs(t, err, ErrNative)

	res, err := RiseTrans(jd, Sun, "", FlagMoshier, CalcRise, zurich, 1013.25, 10)
	require.NoError(t, err)
	assert.InDelta(t, jd, res.Data, 1)
}

func TestSolcross(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping crossing search in short mode")
	}
	// Vernal equinox 2002 was on March 20.
	jd, err := SolcrossUt(0, jd2002, FlagMoshier)
	require.NoError(t, err)
	d := Revjul(jd, Gregorian)
	assert.Equal(t, Date{Year: 2002, Month: 3, Day: 20}, Date{Year: d.Year, Month: d.Month, Day: d.Day})
}

func TestLunEclipseWhen(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping eclipse search in short mode")
	}
	res, err := LunEclipseWhen(jd2002, FlagMoshier, 0, false)
	require.NoError(t, err)
	assert.True(t, EclipseType(res.Code).Has(EclipsePenumbral) || EclipseType(res.Code).Has(EclipsePartial) ||
		EclipseType(res.Code).Has(EclipseTotal))
	assert.Greater(t, res.Data[0], jd2002)
}

func TestFixstar(t *testing.T) {
	path := ephePath(t)
	require.NoError(t, SetEphePath(path))
	defer Close()

	res, err := FixstarUt("Spica", jd2002, FlagSwissEph)
	if err != nil && strings.Contains(err.Error(), "sefstars") {
		t.Skip(err)
	}
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Name, "Spica,"), "name rewritten to %q", res.Name)
	assert.InDelta(t, 204, res.Data[0], 1)

	_, err = FixstarUt("NoSuchStarAnywhere", jd2002, FlagSwissEph)
	assert.ErrorIs(t, err, ErrNative)
}

func TestParsePlanet(t *testing.T) {
	for in, want := range map[string]Planet{
		"sun":      Sun,
		"MeanNode": MeanNode,
		"isis":     Isis,
		"10":       MeanNode,
		"10001":    Asteroid(1),
	} {
		got, err := ParsePlanet(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParsePlanet("vulcan")
	assert.Error(t, err)
}

func TestVisLimitMag(t *testing.T) {
	_, err := VisLimitMag(jd2002, zurich, [4]float64{}, [6]float64{}, strings.Repeat("v", buffer.MaxCh), 0)
	assert.ErrorIs(t, err, ErrTooLong)

	path := ephePath(t)
	require.NoError(t, SetEphePath(path))
	defer Close()

	res, err := VisLimitMag(jd2002+0.75, zurich, [4]float64{1013.25, 15, 40, 0}, [6]float64{36, 1}, "venus", 0)
	if err != nil {
		// Venus may be below the horizon at that hour.
		require.ErrorIs(t, err, ErrBelowHorizon)
		return
	}
	assert.Less(t, res.Data[0], 10.0)
}
