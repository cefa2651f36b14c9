package buffer

import (
	"bytes"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsZeroFilled(t *testing.T) {
	b := New()
	require.Len(t, b, MaxCh)
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d is %d, want 0", i, c)
		}
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "Spica", "/users/ephe", "Aldebaran,alTau", strings.Repeat("x", MaxCh-1)} {
		b, err := FromString(s)
		require.NoError(t, err, "input %q", s)
		assert.Equal(t, s, strings.TrimRight(String(b), "\x00"))
		assert.Equal(t, s, b.Text())
	}
}

func TestFromStringRoundTripQuick(t *testing.T) {
	f := func(raw []byte) bool {
		raw = bytes.ReplaceAll(raw, []byte{0}, nil)
		if len(raw) > MaxCh-1 {
			raw = raw[:MaxCh-1]
		}
		s := string(raw)
		b, err := FromString(s)
		if err != nil {
			return false
		}
		return strings.TrimRight(String(b), "\x00") == s
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestStringKeepsTrailingZeros(t *testing.T) {
	b := MustFromString("abc")
	s := String(b)
	assert.Len(t, s, MaxCh)
	assert.Equal(t, "abc", s[:3])
	assert.Equal(t, strings.Repeat("\x00", MaxCh-3), s[3:])
}

func TestFromStringTooLong(t *testing.T) {
	_, err := FromString(strings.Repeat("x", MaxCh))
	require.ErrorIs(t, err, ErrTooLong)

	_, err = FromString(strings.Repeat("x", MaxCh+100))
	require.ErrorIs(t, err, ErrTooLong)
}

func TestFromStringEmbeddedNUL(t *testing.T) {
	_, err := FromString("se\x00pl")
	require.ErrorIs(t, err, ErrEmbeddedNUL)
}

func TestMustFromStringPanics(t *testing.T) {
	assert.Panics(t, func() { MustFromString(strings.Repeat("x", MaxCh)) })
	assert.NotPanics(t, func() { MustFromString("Placidus") })
}

func TestTextStopsAtNUL(t *testing.T) {
	b := MustFromString("Koch")
	b[10] = 'z'
	assert.Equal(t, "Koch", b.Text())
}

func TestPtrAddressesFirstByte(t *testing.T) {
	b := MustFromString("Moon")
	p := b.Ptr()
	assert.Equal(t, byte('M'), *p)
	*p = 'N'
	assert.Equal(t, "Noon", b.Text())
}

func TestFromPtr(t *testing.T) {
	assert.Equal(t, "", FromPtr(nil))

	b := MustFromString("Equal")
	assert.Equal(t, "Equal", FromPtr(b.Ptr()))
}

func TestBool(t *testing.T) {
	assert.Equal(t, True, Bool(true))
	assert.Equal(t, False, Bool(false))
	assert.NotEqual(t, Bool(true), Bool(false))
}
