package units_test

import (
	"fmt"

	"github.com/quantcalc/units"
)

func Example() {
	env, _ := units.DefaultEnvironment()
	factorizer := units.NewDefaultFactorizer()

	run := func(src string) {
		q, _ := units.ParseQuery(src)
		out, err := units.RunQuery(env, factorizer, q)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(out)
	}

	run("1 meter -> foot")
	run("sqrt(4 m^2)")
	run("5 feet -> [foot, inch]")
	run("100 degC -> degF")

	// Output:
	// 3.2808398950… foot (length)
	// 2 length
	// 5 foot, 0 inch (length)
	// 212 °F (temperature)
}

func ExampleEnvironment_Lookup() {
	env, _ := units.DefaultEnvironment()

	// Prefix peeling and plural stripping compose with the unit table.
	km, _ := env.Lookup("kilometers")
	fmt.Println(km)

	// Output:
	// 1000 m
}
