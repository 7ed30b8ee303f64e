package units

// BuiltinDefs returns the definitions table installed by DefaultEnvironment:
// base dimensions, SI and customary units, prefixes, named quantities, and
// temperature scales, each expressed as an Expr the loader evaluates. It is
// built directly as Go values rather than parsed text so the module never
// has to round-trip its own bootstrap data through the query parser.
func BuiltinDefs() []RawDef {
	lit := func(i string) Expr { return Literal{IntPart: i} }
	id := func(n string) Expr { return Ident{Name: n} }
	bin := func(op byte, l, r Expr) Expr { return Binary{Op: op, L: l, R: r} }
	ratio := func(n, d string) Expr { return bin('/', lit(n), lit(d)) }
	mul := func(args ...Expr) Expr { return Mul{Args: args} }
	pow := func(base Expr, exp string) Expr { return bin('^', base, lit(exp)) }

	return []RawDef{
		// Base dimensions, named by their base-unit symbols so raw
		// diagnostic output reads "2 m" rather than "2 length". The
		// human-readable quantity names live in the alias table below.
		{"m", DimensionDef{"m"}},
		{"kg", DimensionDef{"kg"}},
		{"s", DimensionDef{"s"}},
		{"A", DimensionDef{"A"}},
		{"K", DimensionDef{"K"}},
		{"mol", DimensionDef{"mol"}},
		{"cd", DimensionDef{"cd"}},
		{"rad", DimensionDef{"rad"}},
		{"USD", DimensionDef{"USD"}},

		{"kelvin", UnitDef{id("K")}},

		// Prefixes, tried in this declared order by the resolver's step 5.
		{"yotta", PrefixDef{pow(lit("10"), "24")}},
		{"zetta", PrefixDef{pow(lit("10"), "21")}},
		{"exa", PrefixDef{pow(lit("10"), "18")}},
		{"peta", PrefixDef{pow(lit("10"), "15")}},
		{"tera", PrefixDef{pow(lit("10"), "12")}},
		{"giga", SPrefixDef{pow(lit("10"), "9")}},
		{"mega", SPrefixDef{pow(lit("10"), "6")}},
		{"kilo", SPrefixDef{pow(lit("10"), "3")}},
		{"hecto", PrefixDef{pow(lit("10"), "2")}},
		{"deca", PrefixDef{lit("10")}},
		{"deci", PrefixDef{ratio("1", "10")}},
		{"centi", SPrefixDef{ratio("1", "100")}},
		{"milli", SPrefixDef{pow(ratio("1", "10"), "3")}},
		{"micro", SPrefixDef{pow(ratio("1", "10"), "6")}},
		{"nano", SPrefixDef{pow(ratio("1", "10"), "9")}},
		{"pico", SPrefixDef{pow(ratio("1", "10"), "12")}},
		{"femto", SPrefixDef{pow(ratio("1", "10"), "15")}},
		{"atto", PrefixDef{pow(ratio("1", "10"), "18")}},
		{"k", SPrefixDef{pow(lit("10"), "3")}},
		{"M", SPrefixDef{pow(lit("10"), "6")}},
		{"G", SPrefixDef{pow(lit("10"), "9")}},
		{"c", SPrefixDef{ratio("1", "100")}},
		{"d", PrefixDef{ratio("1", "10")}},
		{"n", PrefixDef{pow(ratio("1", "10"), "9")}},
		{"p", PrefixDef{pow(ratio("1", "10"), "12")}},
		{"u", PrefixDef{pow(ratio("1", "10"), "6")}},
		{"µ", PrefixDef{pow(ratio("1", "10"), "6")}},

		// Unit aliases.
		{"meter", UnitDef{id("m")}},
		{"meters", UnitDef{id("m")}},
		{"metre", UnitDef{id("m")}},
		{"metres", UnitDef{id("m")}},
		{"gram", UnitDef{mul(ratio("1", "1000"), id("kg"))}},
		{"second", UnitDef{id("s")}},
		{"seconds", UnitDef{id("s")}},
		{"sec", UnitDef{id("s")}},
		{"minute", UnitDef{mul(lit("60"), id("s"))}},
		{"minutes", UnitDef{id("minute")}},
		{"min", UnitDef{id("minute")}},
		{"hour", UnitDef{mul(lit("60"), id("minute"))}},
		{"hours", UnitDef{id("hour")}},
		{"hr", UnitDef{id("hour")}},
		{"day", UnitDef{mul(lit("24"), id("hour"))}},
		{"days", UnitDef{id("day")}},
		{"week", UnitDef{mul(lit("7"), id("day"))}},
		{"weeks", UnitDef{id("week")}},
		{"ampere", UnitDef{id("A")}},
		{"amperes", UnitDef{id("A")}},
		{"amp", UnitDef{id("A")}},
		{"amps", UnitDef{id("A")}},
		{"mole", UnitDef{id("mol")}},
		{"moles", UnitDef{id("mol")}},
		{"candela", UnitDef{id("cd")}},
		{"candelas", UnitDef{id("cd")}},
		{"radian", UnitDef{id("rad")}},
		{"radians", UnitDef{id("rad")}},
		{"dollar", UnitDef{id("USD")}},
		{"dollars", UnitDef{id("USD")}},

		// Non-SI length units. "feet" does not end in "s" and cannot be
		// derived by the plural-strip step, so it is given its own entry.
		{"foot", UnitDef{mul(ratio("381", "1250"), id("m"))}},
		{"feet", UnitDef{id("foot")}},
		{"ft", UnitDef{id("foot")}},
		{"inch", UnitDef{mul(id("foot"), ratio("1", "12"))}},
		{"inches", UnitDef{id("inch")}},
		{"in", UnitDef{id("inch")}},
		{"yard", UnitDef{mul(lit("3"), id("foot"))}},
		{"yards", UnitDef{id("yard")}},
		{"yd", UnitDef{id("yard")}},
		{"mile", UnitDef{mul(lit("5280"), id("foot"))}},
		{"miles", UnitDef{id("mile")}},
		{"mi", UnitDef{id("mile")}},
		{"pound", UnitDef{mul(ratio("45359237", "100000000"), id("kg"))}},
		{"pounds", UnitDef{id("pound")}},
		{"lb", UnitDef{id("pound")}},
		{"ounce", UnitDef{mul(id("pound"), ratio("1", "16"))}},
		{"ounces", UnitDef{id("ounce")}},
		{"oz", UnitDef{id("ounce")}},

		// Derived SI units, each reverse-installed as the preferred display
		// name for its vector when its coefficient evaluates to exactly 1.
		{"newton", UnitDef{mul(id("kg"), id("m"), pow(id("s"), "-2"))}},
		{"newtons", UnitDef{id("newton")}},
		{"N", UnitDef{id("newton")}},
		{"pascal", UnitDef{bin('/', id("newton"), pow(id("m"), "2"))}},
		{"pascals", UnitDef{id("pascal")}},
		{"Pa", UnitDef{id("pascal")}},
		{"joule", UnitDef{mul(id("newton"), id("m"))}},
		{"joules", UnitDef{id("joule")}},
		{"J", UnitDef{id("joule")}},
		{"watt", UnitDef{bin('/', id("joule"), id("s"))}},
		{"watts", UnitDef{id("watt")}},
		{"W", UnitDef{id("watt")}},
		{"coulomb", UnitDef{mul(id("A"), id("s"))}},
		{"coulombs", UnitDef{id("coulomb")}},
		{"C", UnitDef{id("coulomb")}},
		{"volt", UnitDef{bin('/', id("watt"), id("A"))}},
		{"volts", UnitDef{id("volt")}},
		{"V", UnitDef{id("volt")}},
		{"ohm", UnitDef{bin('/', id("volt"), id("A"))}},
		{"ohms", UnitDef{id("ohm")}},
		{"siemens", UnitDef{bin('/', lit("1"), id("ohm"))}},
		{"farad", UnitDef{bin('/', id("coulomb"), id("volt"))}},
		{"farads", UnitDef{id("farad")}},
		{"F", UnitDef{id("farad")}},
		{"weber", UnitDef{mul(id("volt"), id("s"))}},
		{"webers", UnitDef{id("weber")}},
		{"Wb", UnitDef{id("weber")}},
		{"henry", UnitDef{bin('/', id("weber"), id("A"))}},
		{"henries", UnitDef{id("henry")}},
		{"H", UnitDef{id("henry")}},
		{"tesla", UnitDef{bin('/', id("weber"), pow(id("m"), "2"))}},
		{"teslas", UnitDef{id("tesla")}},
		{"T", UnitDef{id("tesla")}},

		// Absolute temperature-scale constants backing the degC/degF/etc.
		// suffix table; exact values chosen so the six conversions compose
		// correctly.
		{"zerocelsius", UnitDef{mul(ratio("27315", "100"), id("kelvin"))}},
		{"zerofahrenheit", UnitDef{mul(ratio("45967", "180"), id("kelvin"))}},
		{"degrankine", UnitDef{mul(ratio("5", "9"), id("kelvin"))}},
		{"reaumur_absolute", UnitDef{mul(ratio("5", "4"), id("kelvin"))}},
		{"zeroromer", UnitDef{mul(ratio("36241", "140"), id("kelvin"))}},
		{"romer_absolute", UnitDef{mul(ratio("40", "21"), id("kelvin"))}},
		{"zerodelisle", UnitDef{mul(ratio("37315", "100"), id("kelvin"))}},
		{"delisle_absolute", UnitDef{mul(Unary{Op: '-', X: ratio("2", "3")}, id("kelvin"))}},
		{"newton_absolute", UnitDef{mul(ratio("100", "33"), id("kelvin"))}},

		// Quantities: canonical aliases used when rendering a derived
		// vector that has no reverse-installed unit name of its own.
		{"length", QuantityDef{id("m")}},
		{"mass", QuantityDef{id("kg")}},
		{"time", QuantityDef{id("s")}},
		{"temperature", QuantityDef{id("K")}},
		{"current", QuantityDef{id("A")}},
		{"angle", QuantityDef{id("rad")}},
		{"force", QuantityDef{id("newton")}},
		{"energy", QuantityDef{id("joule")}},
		{"power", QuantityDef{id("watt")}},
		{"pressure", QuantityDef{id("pascal")}},
		{"charge", QuantityDef{id("coulomb")}},
		{"voltage", QuantityDef{id("volt")}},
		{"resistance", QuantityDef{id("ohm")}},
		{"conductance", QuantityDef{id("siemens")}},
		{"capacitance", QuantityDef{id("farad")}},
		{"inductance", QuantityDef{id("henry")}},
		{"flux", QuantityDef{id("weber")}},
		{"flux_density", QuantityDef{id("tesla")}},
		{"velocity", QuantityDef{bin('/', id("m"), id("s"))}},
		{"acceleration", QuantityDef{bin('/', id("m"), pow(id("s"), "2"))}},
		{"area", QuantityDef{pow(id("m"), "2")}},
		{"volume", QuantityDef{pow(id("m"), "3")}},
		{"frequency", QuantityDef{bin('/', lit("1"), id("s"))}},
	}
}

// DefaultEnvironment builds an Environment from BuiltinDefs, returning any
// diagnostics produced while loading (cycles, lookup failures, and
// conflicting quantities never abort the load; they are reported here
// instead).
func DefaultEnvironment() (*Environment, []string) {
	env := NewEnvironment()
	diags := env.Load(BuiltinDefs())
	return env, diags
}
