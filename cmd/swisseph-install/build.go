package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// mainStems are upstream sources with their own main function.
var mainStems = []string{"sweasp", "swetest", "swevents", "swephgen4", "swemini"}

// cflags are passed to every compile. TLSOFF keeps the library state
// process-wide; goroutines move between OS threads, so thread-local
// state would appear to reset at random.
var cflags = []string{"-O2", "-fPIC", "-DTLSOFF", "-w"}

type builder struct {
	cc string
	ar string
}

// findSources lists the library's C files in dir in lexical order,
// skipping programs and the stems in exclude.
func findSources(dir string, exclude []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources: %w", err)
	}
	skip := make(map[string]bool)
	for _, s := range mainStems {
		skip[s] = true
	}
	for _, s := range exclude {
		skip[strings.TrimSpace(s)] = true
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".c" {
			continue
		}
		if skip[strings.TrimSuffix(name, ".c")] {
			continue
		}
		files = append(files, name)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no C sources in %s", dir)
	}
	sort.Strings(files)
	return files, nil
}

// findHeaders lists the header files in dir. swephexp.h must be among them.
func findHeaders(dir string) ([]string, error) {
	headers, err := filepath.Glob(filepath.Join(dir, "*.h"))
	if err != nil {
		return nil, err
	}
	for _, h := range headers {
		if filepath.Base(h) == "swephexp.h" {
			sort.Strings(headers)
			return headers, nil
		}
	}
	return nil, fmt.Errorf("swephexp.h not found in %s", dir)
}

// build compiles sources from srcDir into objDir and archives them. It
// returns the path of the static library.
func build(b builder, srcDir string, sources []string, objDir string) (string, error) {
	if err := os.MkdirAll(objDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	objects := make([]string, 0, len(sources))
	for _, src := range sources {
		obj := filepath.Join(objDir, strings.TrimSuffix(src, ".c")+".o")
		args := append(append([]string{}, cflags...), "-I", srcDir, "-c", filepath.Join(srcDir, src), "-o", obj)
		if err := run(b.cc, args...); err != nil {
			return "", fmt.Errorf("failed to compile %s: %w", src, err)
		}
		objects = append(objects, obj)
	}

	lib := filepath.Join(objDir, libName)
	if err := os.Remove(lib); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if err := run(b.ar, append([]string{"rcs", lib}, objects...)...); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", libName, err)
	}
	return lib, nil
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%w\n%s", err, out)
		}
		return err
	}
	return nil
}
