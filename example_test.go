package swisseph_test

import (
	"errors"
	"fmt"

	swisseph "github.com/jgrowl/swisseph-go"
)

func ExampleJulday() {
	jd := swisseph.Julday(2002, 1, 1, 0, swisseph.Gregorian)
	fmt.Println(jd)

	d := swisseph.Revjul(jd, swisseph.Gregorian)
	fmt.Println(d.Year, d.Month, d.Day)
	// Output:
	// 2.4522755e+06
	// 2002 1 1
}

func ExampleHouses() {
	jd := swisseph.Julday(2002, 1, 1, 12, swisseph.Gregorian)
	res, err := swisseph.Houses(jd, 47.37, 8.55, swisseph.Gauquelin)
	if err != nil {
		fmt.Println(err)
		return
	}
	switch c := res.Cusps.(type) {
	case swisseph.GauquelinCusps:
		fmt.Println("sectors:", c.Len())
	case swisseph.StandardCusps:
		fmt.Println("houses:", c.Len())
	}
	// Output: sectors: 36
}

func ExampleHouseName() {
	fmt.Println(swisseph.HouseName(swisseph.Placidus))
	fmt.Println(swisseph.HouseName(swisseph.Koch))
	// Output:
	// Placidus
	// Koch
}

func ExampleDateConversion() {
	_, err := swisseph.DateConversion(2002, 2, 30, 0, swisseph.Gregorian)
	fmt.Println(errors.Is(err, swisseph.ErrInvalidDate))
	// Output: true
}

func ExampleConfigure() {
	err := swisseph.Configure(
		swisseph.WithEphePath(""),
		swisseph.WithSidereal(swisseph.SidmLahiri, 0, 0),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer swisseph.Close()
	defer swisseph.SetSidMode(swisseph.SidmFaganBradley, 0, 0)

	fmt.Println(swisseph.AyanamsaName(swisseph.SidmLahiri))
	// Output: Lahiri
}
