// Command sweph is a small command line front end to the Swiss Ephemeris.
//
//	sweph [-config sweph.yaml] <command> [arguments]
//
// Run sweph help for the list of commands, or sweph repl for an
// interactive session.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	swisseph "github.com/jgrowl/swisseph-go"
	"github.com/jgrowl/swisseph-go/config"
)

const usage = `usage: sweph [-config file] <command> [arguments]

commands:
  version                         library version and path
  julday [-julian] Y M D [HOUR]   Julian day of a calendar date
  revjul [-julian] JD             calendar date of a Julian day
  calc [-ut] [-flags N] JD BODY   position of a body
  houses [-flags N] JD LAT LON [HSYS]
                                  house cusps and angles
  housename HSYS                  name of a house system
  star [-ut] [-flags N] NAME JD   position of a fixed star
  repl                            interactive session
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sweph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	cfgPath := fs.String("config", "", "YAML settings applied before the command")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		if err := swisseph.ConfigureFrom(cfg); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	defer swisseph.Close()

	name, rest := fs.Arg(0), fs.Args()[1:]
	if name == "repl" {
		return runREPL(stdout, stderr)
	}
	if name == "help" {
		fmt.Fprint(stdout, usage)
		return 0
	}
	if err := dispatch(name, rest, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
