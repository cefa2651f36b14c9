package main

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const repo = "aloistr/swisseph"

// fetchSource downloads the source tarball of version and unpacks it into
// dir. It returns the directory holding the C files.
func fetchSource(version, dir string) (string, error) {
	downloadURL := fmt.Sprintf("https://github.com/%s/archive/refs/tags/%s.tar.gz", repo, version)
	fmt.Printf("URL: %s\n", downloadURL)

	resp, err := http.Get(downloadURL)
	if err != nil {
		return "", fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed: HTTP %d\n\nPossible issues:\n  - Tag %s doesn't exist\n  - Network connectivity issues", resp.StatusCode, version)
	}

	root, err := untar(resp.Body, ".tar.gz", dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, root), nil
}

// unpackSource unpacks a local source archive into dir. It returns the
// directory holding the C files.
func unpackSource(archive, dir string) (string, error) {
	f, err := os.Open(archive)
	if err != nil {
		return "", fmt.Errorf("failed to open source archive: %w", err)
	}
	defer f.Close()

	root, err := untar(f, archive, dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, root), nil
}

// isArchive reports whether path names a compressed tarball untar can read.
func isArchive(path string) bool {
	for _, ext := range []string{".tar.gz", ".tgz", ".tar.zst", ".tzst"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// decompress wraps r in the decoder matching the extension of name.
func decompress(r io.Reader, name string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".tzst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case strings.HasSuffix(name, ".gz"), strings.HasSuffix(name, ".tgz"):
		return gzip.NewReader(r)
	}
	return nil, fmt.Errorf("unsupported archive %q (want .tar.gz or .tar.zst)", name)
}

// untar unpacks a compressed tar stream into dir and returns the name of
// its single top-level directory. name selects the decompressor.
func untar(r io.Reader, name, dir string) (string, error) {
	zr, err := decompress(r, name)
	if err != nil {
		return "", fmt.Errorf("failed to read archive: %w", err)
	}
	defer zr.Close()

	var root string
	tr := tar.NewReader(zr)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read archive: %w", err)
		}

		name := filepath.Clean(filepath.FromSlash(hdr.Name))
		if filepath.IsAbs(name) || name == ".." || strings.HasPrefix(name, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("archive entry %q escapes the target directory", hdr.Name)
		}
		if top, _, _ := strings.Cut(filepath.ToSlash(name), "/"); root == "" && top != "" {
			root = top
		}

		target := filepath.Join(dir, name)
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return "", err
			}
		case tar.TypeReg:
			if err := writeEntry(target, tr); err != nil {
				return "", err
			}
		}
	}
	if root == "" {
		return "", errors.New("archive is empty")
	}
	return root, nil
}

func writeEntry(target string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
