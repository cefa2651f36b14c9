package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBands(t *testing.T) {
	tests := []struct {
		code    int32
		failed  bool
		warning bool
	}{
		{ERR, true, false},
		{-2, true, false},
		{-99, true, false},
		{OK, false, false},
		{1, false, true},
		{258, false, true},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.failed, Failed(tc.code), "Failed(%d)", tc.code)
		assert.Equal(t, tc.warning, Warning(tc.code), "Warning(%d)", tc.code)
	}
}

func TestCheckSuccess(t *testing.T) {
	for _, code := range []int32{OK, 2, 258, 1 << 20} {
		assert.NoError(t, Check("swe_calc_ut", code, "ignored"))
	}
}

func TestCheckFailureCarriesMessage(t *testing.T) {
	err := Check("swe_calc_ut", ERR, "SwissEph file 'sepl_18.se1' not found")
	require.Error(t, err)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "swe_calc_ut", e.Op)
	assert.Equal(t, ERR, e.Code)
	assert.Equal(t, "SwissEph file 'sepl_18.se1' not found", e.Message)
	assert.ErrorIs(t, err, ErrNative)
	assert.NotErrorIs(t, err, ErrBelowHorizon)
	assert.Contains(t, err.Error(), "code -1")
}

func TestCheckFailureNeverEmpty(t *testing.T) {
	for _, code := range []int32{ERR, -2, -7} {
		err := Check("swe_houses", code, "")
		var e *Error
		require.True(t, errors.As(err, &e))
		assert.NotEmpty(t, e.Message)
	}
}

func TestBelowHorizonSentinel(t *testing.T) {
	err := Check("swe_vis_limit_mag", BelowHorizon, "")
	assert.ErrorIs(t, err, ErrBelowHorizon)
	assert.ErrorIs(t, err, ErrNative)

	err = Check("swe_calc", BelowHorizon, "")
	assert.NotErrorIs(t, err, ErrBelowHorizon)
}

func TestInvalid(t *testing.T) {
	err := Invalid("swe_date_conversion", ERR, "")
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.ErrorIs(t, err, ErrNative)
}

func TestCircumpolarSentinel(t *testing.T) {
	for _, op := range []string{"swe_rise_trans", "swe_rise_trans_true_hor"} {
		err := Check(op, Circumpolar, "")
		assert.ErrorIs(t, err, ErrCircumpolar, op)
		assert.NotErrorIs(t, err, ErrBelowHorizon, op)
	}
	assert.NotErrorIs(t, Check("swe_rise_trans", ERR, "boom"), ErrCircumpolar)
}
