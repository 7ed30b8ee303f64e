package units

// temperatureScale names the zero-constant and scale-unit pair a
// temperature suffix evaluates through: value*scale + zero.
type temperatureScale struct {
	zero  string
	scale string
}

// temperatureScales is the fixed table of recognized suffixes. Every name
// referenced here must be installed by the environment's definitions; a
// missing name is a malformed-definitions condition, not a recoverable
// runtime error.
var temperatureScales = map[string]temperatureScale{
	"C":  {zero: "zerocelsius", scale: "kelvin"},
	"F":  {zero: "zerofahrenheit", scale: "degrankine"},
	"Re": {zero: "zerocelsius", scale: "reaumur_absolute"},
	"Ro": {zero: "zeroromer", scale: "romer_absolute"},
	"De": {zero: "zerodelisle", scale: "delisle_absolute"},
	"N":  {zero: "zerocelsius", scale: "newton_absolute"},
}
