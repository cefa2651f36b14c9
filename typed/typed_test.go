package typed

import (
	"testing"

	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/raw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJuldayRoundTrip(t *testing.T) {
	jd := SweJulday(2002, 1, 1, 0.0, raw.SE_GREG_CAL)
	assert.Equal(t, 2452275.5, jd)

	var y, m, dd int32
	var ut float64
	SweRevjul(jd, raw.SE_GREG_CAL, &y, &m, &dd, &ut)
	assert.Equal(t, [3]int32{2002, 1, 1}, [3]int32{y, m, dd})
	assert.Zero(t, ut)
}

func TestCalcUt(t *testing.T) {
	path := buffer.MustFromString("/users/ephe")
	SweSetEphePath(path.Ptr())
	defer SweClose()

	var xx [6]float64
	serr := buffer.New()
	ret := SweCalcUt(2452275.5, raw.SE_SUN, raw.SEFLG_SPEED|raw.SEFLG_MOSEPH, &xx[0], serr.Ptr())
	require.GreaterOrEqual(t, ret, int32(raw.OK), serr.Text())
	assert.InDelta(t, 280.0, xx[0], 1.5)
}

func TestDateConversionRejectsBadDate(t *testing.T) {
	var tjd float64
	assert.Equal(t, int32(raw.ERR), SweDateConversion(2002, 2, 30, 0, 'g', &tjd))
	assert.Equal(t, int32(raw.OK), SweDateConversion(2002, 1, 1, 0, 'g', &tjd))
	assert.Equal(t, 2452275.5, tjd)
}

func TestHouseName(t *testing.T) {
	assert.Equal(t, "Placidus", buffer.FromPtr(SweHouseName('P')))
	assert.Contains(t, buffer.FromPtr(SweHouseName('G')), "Gauquelin")
}

func TestCs2degstr(t *testing.T) {
	a := buffer.New()
	p := SweCs2degstr(360000*12+30*6000, a.Ptr())
	assert.Equal(t, a.Text(), buffer.FromPtr(p))
	assert.NotEmpty(t, a.Text())
}

func TestSplitDeg(t *testing.T) {
	var deg, min, sec, sgn int32
	var frac float64
	SweSplitDeg(12.5, raw.SE_SPLIT_DEG_ROUND_SEC, &deg, &min, &sec, &frac, &sgn)
	assert.Equal(t, int32(12), deg)
	assert.Equal(t, int32(30), min)
	assert.Equal(t, int32(0), sec)
	assert.Equal(t, int32(1), sgn)
}
