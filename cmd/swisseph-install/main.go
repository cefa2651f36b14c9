// Command swisseph-install builds the Swiss Ephemeris C library and installs
// it where package raw links it from.
//
//	go run github.com/jgrowl/swisseph-go/cmd/swisseph-install@latest
//
// The upstream sources are downloaded (or taken from -src), compiled into a
// static libswe.a and copied, with the public headers, into the module
// cache copy of this module. A second copy goes to ~/.swisseph for builds
// that cannot use the module cache.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	modulePath     = "github.com/jgrowl/swisseph-go"
	defaultVersion = "v2.10.03"
	libName        = "libswe.a"
)

type options struct {
	version string
	src     string
	cc      string
	ar      string
	exclude []string
	dest    string
	keep    bool
}

func main() {
	var opts options
	var exclude string
	flag.StringVar(&opts.version, "version", defaultVersion, "Upstream tag to build (e.g., v2.10.03)")
	flag.StringVar(&opts.src, "src", "", "Local source directory or .tar.gz/.tar.zst archive; skips the download")
	flag.StringVar(&opts.cc, "cc", envOr("CC", "cc"), "C compiler")
	flag.StringVar(&opts.ar, "ar", envOr("AR", "ar"), "Archiver")
	flag.StringVar(&exclude, "exclude", "", "Comma separated extra source stems to skip")
	flag.StringVar(&opts.dest, "dest", "", "Install into this raw package directory instead of the module cache")
	flag.BoolVar(&opts.keep, "keep", false, "Keep the build directory")
	flag.Parse()

	if exclude != "" {
		opts.exclude = strings.Split(exclude, ",")
	}

	if err := install(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func install(opts options) error {
	platform := fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH)
	switch platform {
	case "darwin_arm64", "darwin_amd64", "linux_arm64", "linux_amd64":
	default:
		return fmt.Errorf("unsupported platform: %s\n\nSupported platforms:\n  - darwin_arm64 (macOS Apple Silicon)\n  - darwin_amd64 (macOS Intel)\n  - linux_arm64 (Linux ARM64)\n  - linux_amd64 (Linux x86_64)", platform)
	}

	for _, tool := range []string{opts.cc, opts.ar} {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%s not found: %w\n\nInstall a C toolchain or pass -cc and -ar", tool, err)
		}
	}

	work, err := os.MkdirTemp("", "swisseph-build-")
	if err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}
	if opts.keep {
		fmt.Printf("Build directory: %s\n", work)
	} else {
		defer os.RemoveAll(work)
	}

	srcDir := opts.src
	switch {
	case srcDir == "":
		fmt.Printf("Downloading Swiss Ephemeris %s...\n", opts.version)
		srcDir, err = fetchSource(opts.version, filepath.Join(work, "src"))
	case isArchive(srcDir):
		fmt.Printf("Unpacking %s...\n", srcDir)
		srcDir, err = unpackSource(srcDir, filepath.Join(work, "src"))
	}
	if err != nil {
		return err
	}

	sources, err := findSources(srcDir, opts.exclude)
	if err != nil {
		return err
	}
	fmt.Printf("Compiling %d files with %s...\n", len(sources), opts.cc)
	lib, err := build(builder{cc: opts.cc, ar: opts.ar}, srcDir, sources, filepath.Join(work, "obj"))
	if err != nil {
		return err
	}
	headers, err := findHeaders(srcDir)
	if err != nil {
		return err
	}

	if opts.dest != "" {
		return installRaw(opts.dest, platform, lib, headers, "destination")
	}

	// Find Go module cache directory
	modCacheDir, err := getModuleCacheDir()
	if err != nil {
		fmt.Printf("Warning: could not find module cache: %v\n", err)
	} else if err := installRaw(filepath.Join(modCacheDir, "raw"), platform, lib, headers, "module cache"); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}

	// Also install to standard location as backup
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	home := filepath.Join(homeDir, ".swisseph")
	if err := installRaw(home, platform, lib, headers, "home directory"); err != nil {
		return err
	}

	info, err := os.Stat(lib)
	if err != nil {
		return err
	}
	fmt.Printf("\n✓ Successfully built Swiss Ephemeris %s (%.1f MB)\n", opts.version, float64(info.Size())/(1024*1024))
	fmt.Println("\nIf the module cache could not be written, build with:")
	fmt.Printf("  CGO_CFLAGS=-I%s CGO_LDFLAGS=%s\n",
		filepath.Join(home, "include"), filepath.Join(home, "lib", platform, libName))
	return nil
}

// installRaw copies the library to <dir>/lib/<platform> and the headers to
// <dir>/include, the layout package raw expects.
func installRaw(dir, platform, lib string, headers []string, location string) error {
	if err := installFile(filepath.Join(dir, "lib", platform), lib, location); err != nil {
		return err
	}
	for _, h := range headers {
		if err := installFile(filepath.Join(dir, "include"), h, location); err != nil {
			return err
		}
	}
	fmt.Printf("Installed to %s: %s\n", location, dir)
	return nil
}

func installFile(dir, src, location string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", location, err)
	}
	if err := os.WriteFile(filepath.Join(dir, filepath.Base(src)), data, 0644); err != nil {
		return fmt.Errorf("failed to write to %s: %w", location, err)
	}
	return nil
}

func getModuleCacheDir() (string, error) {
	cmd := exec.Command("go", "list", "-m", "-f", "{{.Dir}}", modulePath)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("go list failed: %w", err)
	}

	dir := strings.TrimSpace(string(output))
	if dir == "" {
		return "", fmt.Errorf("module not found in cache")
	}

	return dir, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
