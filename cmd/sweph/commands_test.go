package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestJulday(t *testing.T) {
	code, out, _ := runArgs(t, "julday", "2002", "1", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "2452275.500000\n", out)

	code, out, _ = runArgs(t, "julday", "-julian", "2002", "1", "1", "12")
	require.Equal(t, 0, code)
	assert.Equal(t, "2452289.000000\n", out)
}

func TestJuldayInvalidDate(t *testing.T) {
	code, _, errOut := runArgs(t, "julday", "2002", "2", "30")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "swe_date_conversion")
}

func TestRevjul(t *testing.T) {
	code, out, _ := runArgs(t, "revjul", "2452275.75")
	require.Equal(t, 0, code)
	assert.Equal(t, "2002-01-01  6:00:00\n", out)

	code, out, _ = runArgs(t, "revjul", "2452276.4999999")
	require.Equal(t, 0, code)
	assert.Equal(t, "2002-01-02  0:00:00\n", out, "rounds into the next day")
}

func TestSplitDay(t *testing.T) {
	for _, tc := range []struct {
		jd   float64
		noon float64
		sec  int32
	}{
		{2452275.5, 2452276, 0},
		{2452275.75, 2452276, 6 * 3600},
		{2452276.4999999, 2452277, 0},
		{2452276.49, 2452276, 85536},
	} {
		noon, sec := splitDay(tc.jd)
		assert.Equal(t, tc.noon, noon, "jd %v", tc.jd)
		assert.Equal(t, tc.sec, sec, "jd %v", tc.jd)
	}
}

func TestHouseName(t *testing.T) {
	code, out, _ := runArgs(t, "housename", "P")
	require.Equal(t, 0, code)
	assert.Equal(t, "Placidus\n", out)

	code, _, errOut := runArgs(t, "housename", "PP")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "one letter")
}

func TestHouses(t *testing.T) {
	code, out, _ := runArgs(t, "houses", "2452275.5", "47.37", "8.55", "G")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Name, 36 sectors and 4 angles.
	assert.Len(t, lines, 1+36+4)
	assert.Contains(t, lines[0], "Gauquelin")
}

func TestCalcMoshier(t *testing.T) {
	code, out, errOut := runArgs(t, "calc", "-ut", "-flags", "260", "2452275.5", "sun")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "280.")

	code, _, errOut = runArgs(t, "calc", "2452275.5", "vulcan")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown body")
}

func TestUsage(t *testing.T) {
	code, _, errOut := runArgs(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "usage: sweph")

	code, _, errOut = runArgs(t, "orbit")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown command")

	code, _, errOut = runArgs(t, "julday", "2002")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "julday [-julian]")
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topo: {lon: 8.55, lat: 95, alt: 400}\n"), 0o644))
	code, _, errOut := runArgs(t, "-config", path, "version")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "latitude")

	require.NoError(t, os.WriteFile(path, []byte("ephe_path: \"\"\ninterpolate_nutation: false\n"), 0o644))
	code, out, _ := runArgs(t, "-config", path, "version")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Swiss Ephemeris")
}

func TestEvalLine(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.False(t, evalLine("julday 2002 1 1", &out, &errOut))
	assert.Equal(t, "2452275.500000\n", out.String())

	assert.False(t, evalLine("", &out, &errOut))
	assert.False(t, evalLine("nope", &out, &errOut))
	assert.Contains(t, errOut.String(), "unknown command")

	assert.True(t, evalLine(":quit", &out, &errOut))
	assert.True(t, evalLine("  :EXIT ", &out, &errOut))
}

func TestComplete(t *testing.T) {
	assert.ElementsMatch(t, []string{"housename", "houses"}, complete("hou"))
	assert.Equal(t, []string{":quit"}, complete(":q"))
}
