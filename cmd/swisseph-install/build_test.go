package main

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("/* "+n+" */\n"), 0o644))
	}
}

func TestFindSourcesSkipsPrograms(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir,
		"sweph.c", "swedate.c", "swehouse.c", "swecl.c",
		"sweasp.c", "swetest.c", "swevents.c", "swephgen4.c", "swemini.c",
		"swephexp.h", "README.md")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "contrib.c"), 0o755))

	files, err := findSources(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"swecl.c", "swedate.c", "swehouse.c", "sweph.c"}, files)

	files, err = findSources(dir, []string{" swecl", "swedate"})
	require.NoError(t, err)
	assert.Equal(t, []string{"swehouse.c", "sweph.c"}, files)
}

func TestFindSourcesEmpty(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "swetest.c")
	_, err := findSources(dir, nil)
	assert.ErrorContains(t, err, "no C sources")

	_, err = findSources(filepath.Join(dir, "missing"), nil)
	assert.Error(t, err)
}

func TestFindHeaders(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "sweodef.h")
	_, err := findHeaders(dir)
	assert.ErrorContains(t, err, "swephexp.h")

	touch(t, dir, "swephexp.h")
	headers, err := findHeaders(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "sweodef.h"), filepath.Join(dir, "swephexp.h")}, headers)
}

type compressor interface {
	io.Writer
	Close() error
}

func gzipped(w io.Writer) (compressor, error) { return gzip.NewWriter(w), nil }
func zstded(w io.Writer) (compressor, error)  { return zstd.NewWriter(w) }

func tarball(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	return tarballWith(t, gzipped, entries)
}

func tarballWith(t *testing.T, compress func(io.Writer) (compressor, error), entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := compress(&buf)
	require.NoError(t, err)
	tw := tar.NewWriter(zw)
	for name, body := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0o644,
			Size:     int64(len(body)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestUntar(t *testing.T) {
	data := tarball(t, map[string]string{
		"swisseph-2.10.03/sweph.c":    "int x;\n",
		"swisseph-2.10.03/swephexp.h": "#define SE_SUN 0\n",
		"swisseph-2.10.03/doc/readme": "docs\n",
	})
	dir := t.TempDir()
	root, err := untar(bytes.NewReader(data), ".tar.gz", dir)
	require.NoError(t, err)
	assert.Equal(t, "swisseph-2.10.03", root)

	got, err := os.ReadFile(filepath.Join(dir, root, "sweph.c"))
	require.NoError(t, err)
	assert.Equal(t, "int x;\n", string(got))
	assert.FileExists(t, filepath.Join(dir, root, "doc", "readme"))
}

func TestUntarRejectsEscapingPaths(t *testing.T) {
	data := tarball(t, map[string]string{"../evil.c": "int y;\n"})
	_, err := untar(bytes.NewReader(data), ".tar.gz", t.TempDir())
	assert.ErrorContains(t, err, "escapes")
}

func TestUntarRejectsGarbage(t *testing.T) {
	_, err := untar(bytes.NewReader([]byte("not gzip")), ".tar.gz", t.TempDir())
	assert.Error(t, err)

	_, err = untar(bytes.NewReader(nil), "sources.zip", t.TempDir())
	assert.ErrorContains(t, err, "unsupported archive")
}

func TestUnpackSourceZstd(t *testing.T) {
	data := tarballWith(t, zstded, map[string]string{
		"swisseph-2.10.03/swecl.c": "int z;\n",
	})
	archive := filepath.Join(t.TempDir(), "swisseph.tar.zst")
	require.NoError(t, os.WriteFile(archive, data, 0o644))
	require.True(t, isArchive(archive))

	src, err := unpackSource(archive, t.TempDir())
	require.NoError(t, err)
	files, err := findSources(src, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"swecl.c"}, files)
}

func TestIsArchive(t *testing.T) {
	for _, p := range []string{"a.tar.gz", "a.tgz", "a.tar.zst", "a.tzst"} {
		assert.True(t, isArchive(p), p)
	}
	for _, p := range []string{"src", "a.zip", "a.tar"} {
		assert.False(t, isArchive(p), p)
	}
}

func TestBuild(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping compiler run in short mode")
	}
	for _, tool := range []string{"cc", "ar"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not available", tool)
		}
	}

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.c"), []byte("int swe_a(void) { return 1; }\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "b.c"), []byte("int swe_b(void) { return 2; }\n"), 0o644))

	lib, err := build(builder{cc: "cc", ar: "ar"}, src, []string{"a.c", "b.c"}, filepath.Join(t.TempDir(), "obj"))
	require.NoError(t, err)
	assert.Equal(t, libName, filepath.Base(lib))
	assert.FileExists(t, lib)

	_, err = build(builder{cc: "cc", ar: "ar"}, src, []string{"missing.c"}, t.TempDir())
	assert.ErrorContains(t, err, "missing.c")
}

func TestInstallRaw(t *testing.T) {
	src := t.TempDir()
	touch(t, src, libName, "swephexp.h", "sweodef.h")
	dest := t.TempDir()

	err := installRaw(dest, "linux_amd64", filepath.Join(src, libName),
		[]string{filepath.Join(src, "swephexp.h"), filepath.Join(src, "sweodef.h")}, "test")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dest, "lib", "linux_amd64", libName))
	assert.FileExists(t, filepath.Join(dest, "include", "swephexp.h"))
	assert.FileExists(t, filepath.Join(dest, "include", "sweodef.h"))
}
