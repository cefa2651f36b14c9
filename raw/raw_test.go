package raw

import (
	"testing"

	"github.com/jgrowl/swisseph-go/buffer"
	"github.com/jgrowl/swisseph-go/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ephePath(t *testing.T) {
	t.Helper()
	p := buffer.MustFromString("/users/ephe")
	SweSetEphePath((*Char)(p.Ptr()))
	t.Cleanup(SweClose)
}

// TestHeaderAgreesWithGoConstants guards the values other packages hardcode.
func TestHeaderAgreesWithGoConstants(t *testing.T) {
	assert.Equal(t, buffer.MaxCh, int(AS_MAXCH))
	assert.Equal(t, status.OK, int32(OK))
	assert.Equal(t, status.ERR, int32(ERR))
	assert.Equal(t, buffer.True, int32(MY_TRUE))
	assert.Equal(t, buffer.False, int32(MY_FALSE))
}

func TestSweJulday(t *testing.T) {
	ephePath(t)

	jd := SweJulday(2002, 1, 1, 0.0, SE_GREG_CAL)
	assert.Equal(t, Double(2452275.5), jd)

	var y, m, d Int
	var ut Double
	SweRevjul(jd, SE_GREG_CAL, &y, &m, &d, &ut)
	assert.Equal(t, []Int{2002, 1, 1}, []Int{y, m, d})
	assert.Zero(t, ut)
}

func TestSweCalcUt(t *testing.T) {
	ephePath(t)

	var xx [6]Double
	serr := buffer.New()
	jd := SweJulday(2002, 1, 1, 0.0, SE_GREG_CAL)

	ret := SweCalcUt(jd, SE_SUN, SEFLG_SPEED|SEFLG_MOSEPH, &xx[0], (*Char)(serr.Ptr()))
	require.GreaterOrEqual(t, ret, Int32(OK), serr.Text())

	// The Sun sits early in Capricorn on the first of January.
	assert.InDelta(t, 280.0, float64(xx[0]), 1.5)
	assert.InDelta(t, 1.0, float64(xx[3]), 0.05)
}

func TestSweCalcUtRejectsUnknownBody(t *testing.T) {
	ephePath(t)

	var xx [6]Double
	serr := buffer.New()
	ret := SweCalcUt(2452275.5, -12345, SEFLG_MOSEPH, &xx[0], (*Char)(serr.Ptr()))
	assert.Equal(t, Int32(ERR), ret)
	assert.NotEmpty(t, serr.Text())
}

func TestSweHouseName(t *testing.T) {
	assert.Equal(t, "Placidus", buffer.FromPtr((*byte)(SweHouseName('P'))))
}

func TestSweVersion(t *testing.T) {
	s := buffer.New()
	p := SweVersion((*Char)(s.Ptr()))
	assert.Equal(t, s.Text(), buffer.FromPtr((*byte)(p)))
	assert.NotEmpty(t, s.Text())
}

func TestSweDegnorm(t *testing.T) {
	assert.InDelta(t, 10.0, float64(SweDegnorm(370)), 1e-12)
	assert.InDelta(t, 350.0, float64(SweDegnorm(-10)), 1e-12)
}
