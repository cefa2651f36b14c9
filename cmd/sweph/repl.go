package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	historyFile = ".sweph_history"
	prompt      = "sweph> "
	banner      = "Swiss Ephemeris REPL. Ctrl+C cancels input, Ctrl+D exits. Type :help for commands."
	replHelp    = `
REPL commands:
  :help            Show this help
  :quit / :exit    Exit the REPL

Every other line is run as a sweph command, e.g.
  julday 2002 1 1
  calc -ut 2452275.5 sun
`
)

func runREPL(stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(complete)

	// Load history (best-effort)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(stdout)
			break
		}
		if err != nil {
			// Ctrl+C aborts the current input.
			continue
		}
		if exit := evalLine(line, stdout, stderr); exit {
			break
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}

	// Persist history (best-effort)
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

// evalLine runs one REPL line and reports whether the session should end.
func evalLine(line string, stdout, stderr io.Writer) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case ":quit", ":exit":
		return true
	case ":help", "help":
		fmt.Fprint(stdout, replHelp)
		fmt.Fprint(stdout, usage)
		return false
	case "repl":
		fmt.Fprintln(stderr, "already in the REPL")
		return false
	}
	if err := dispatch(fields[0], fields[1:], stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return false
}

func complete(line string) []string {
	var out []string
	for _, c := range []string{":help", ":quit", ":exit"} {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	for name := range commands {
		if strings.HasPrefix(name, line) {
			out = append(out, name)
		}
	}
	return out
}
