package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	swisseph "github.com/jgrowl/swisseph-go"
)

var errUsage = errors.New("usage")

type command func(args []string, w io.Writer) error

var commands = map[string]command{
	"version":   cmdVersion,
	"julday":    cmdJulday,
	"revjul":    cmdRevjul,
	"calc":      cmdCalc,
	"houses":    cmdHouses,
	"housename": cmdHouseName,
	"star":      cmdStar,
}

func dispatch(name string, args []string, w io.Writer) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", name)
	}
	return cmd(args, w)
}

// flagSet returns a flag set that reports errors instead of exiting, so
// the same commands work inside the REPL.
func flagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(args []string) ([]int32, error) {
	out := make([]int32, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", a)
		}
		out[i] = int32(v)
	}
	return out, nil
}

func calendar(julian bool) swisseph.Calendar {
	if julian {
		return swisseph.Julian
	}
	return swisseph.Gregorian
}

func cmdVersion(args []string, w io.Writer) error {
	fmt.Fprintf(w, "Swiss Ephemeris %s\n", swisseph.Version())
	if p := swisseph.LibraryPath(); p != "" {
		fmt.Fprintf(w, "library: %s\n", p)
	}
	return nil
}

func cmdJulday(args []string, w io.Writer) error {
	fs := flagSet("julday", w)
	julian := fs.Bool("julian", false, "Julian calendar")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 3 || fs.NArg() > 4 {
		return fmt.Errorf("%w: julday [-julian] YEAR MONTH DAY [HOUR]", errUsage)
	}
	ymd, err := parseInts(fs.Args()[:3])
	if err != nil {
		return err
	}
	var hour float64
	if fs.NArg() == 4 {
		h, err := parseFloats(fs.Args()[3:])
		if err != nil {
			return err
		}
		hour = h[0]
	}
	res, err := swisseph.DateConversion(ymd[0], ymd[1], ymd[2], hour, calendar(*julian))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%.6f\n", res.Data)
	return nil
}

func cmdRevjul(args []string, w io.Writer) error {
	fs := flagSet("revjul", w)
	julian := fs.Bool("julian", false, "Julian calendar")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: revjul [-julian] JD", errUsage)
	}
	jd, err := parseFloats(fs.Args())
	if err != nil {
		return err
	}
	day, sec := splitDay(jd[0])
	d := swisseph.Revjul(day, calendar(*julian))
	cs := swisseph.Centisec(sec * 100)
	fmt.Fprintf(w, "%04d-%02d-%02d %s\n", d.Year, d.Month, d.Day, swisseph.CsToTimeStr(cs, ':', false))
	return nil
}

// splitDay splits jd into the Julian day number at noon of its civil day
// and the seconds since midnight, rounded. A time that rounds up to
// midnight moves to the following day.
func splitDay(jd float64) (noon float64, sec int32) {
	noon = math.Floor(jd + 0.5)
	s := math.Round((jd + 0.5 - noon) * 86400)
	if s >= 86400 {
		noon++
		s = 0
	}
	return noon, int32(s)
}

func cmdCalc(args []string, w io.Writer) error {
	fs := flagSet("calc", w)
	ut := fs.Bool("ut", false, "JD is universal time")
	flags := fs.Int("flags", int(swisseph.FlagDefaultEph|swisseph.FlagSpeed), "calculation flags")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: calc [-ut] [-flags N] JD BODY", errUsage)
	}
	jd, err := parseFloats(fs.Args()[:1])
	if err != nil {
		return err
	}
	body, err := swisseph.ParsePlanet(fs.Arg(1))
	if err != nil {
		return err
	}

	calc := swisseph.Calc
	if *ut {
		calc = swisseph.CalcUt
	}
	res, err := calc(jd[0], body, swisseph.Flag(*flags))
	if err != nil {
		return err
	}
	if res.Code != int32(*flags) {
		fmt.Fprintf(w, "note: flags used %d, requested %d\n", res.Code, *flags)
	}
	printPosition(w, swisseph.PlanetName(body), res.Data)
	return nil
}

func printPosition(w io.Writer, name string, xx [6]float64) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tlon\tlat\tdist\tlon/day\tlat/day\tdist/day\n", name)
	fmt.Fprintf(tw, "\t%.6f\t%.6f\t%.8f\t%.6f\t%.6f\t%.8f\n", xx[0], xx[1], xx[2], xx[3], xx[4], xx[5])
	tw.Flush()
}

func cmdHouses(args []string, w io.Writer) error {
	fs := flagSet("houses", w)
	flags := fs.Int("flags", 0, "calculation flags, e.g. sidereal")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 3 || fs.NArg() > 4 {
		return fmt.Errorf("%w: houses [-flags N] JD LAT LON [HSYS]", errUsage)
	}
	v, err := parseFloats(fs.Args()[:3])
	if err != nil {
		return err
	}
	hsys := swisseph.Placidus
	if fs.NArg() == 4 {
		if hsys, err = houseSystem(fs.Arg(3)); err != nil {
			return err
		}
	}

	res, err := swisseph.HousesEx(v[0], swisseph.Flag(*flags), v[1], v[2], hsys)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", swisseph.HouseName(hsys))
	for i := 1; i <= res.Cusps.Len(); i++ {
		fmt.Fprintf(tw, "%d\t%.6f\n", i, res.Cusps.Cusp(i))
	}
	fmt.Fprintf(tw, "Asc\t%.6f\n", res.Ascmc[swisseph.Asc])
	fmt.Fprintf(tw, "MC\t%.6f\n", res.Ascmc[swisseph.MC])
	fmt.Fprintf(tw, "ARMC\t%.6f\n", res.Ascmc[swisseph.ARMC])
	fmt.Fprintf(tw, "Vertex\t%.6f\n", res.Ascmc[swisseph.Vertex])
	return tw.Flush()
}

func houseSystem(s string) (swisseph.HouseSystem, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("house system must be one letter, got %q", s)
	}
	return swisseph.HouseSystem(s[0]), nil
}

func cmdHouseName(args []string, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: housename HSYS", errUsage)
	}
	hsys, err := houseSystem(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(w, swisseph.HouseName(hsys))
	return nil
}

func cmdStar(args []string, w io.Writer) error {
	fs := flagSet("star", w)
	ut := fs.Bool("ut", false, "JD is universal time")
	flags := fs.Int("flags", int(swisseph.FlagDefaultEph|swisseph.FlagSpeed), "calculation flags")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: star [-ut] [-flags N] NAME JD", errUsage)
	}
	jd, err := parseFloats(fs.Args()[1:])
	if err != nil {
		return err
	}

	fixstar := swisseph.Fixstar2
	if *ut {
		fixstar = swisseph.Fixstar2Ut
	}
	res, err := fixstar(fs.Arg(0), jd[0], swisseph.Flag(*flags))
	if err != nil {
		return err
	}
	printPosition(w, res.Name, res.Data)
	return nil
}
