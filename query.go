package units

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/exp/slices"
)

// Query is the top-level input to the query layer: a bare expression, a
// unit conversion, or a factorization request.
type Query interface {
	queryNode()
}

// ExprQuery is a bare expression, or a bare identifier that doubles as a
// definition-lookup request when it names a defined unit.
type ExprQuery struct{ E Expr }

// ConvertQuery is a conversion a → To.
type ConvertQuery struct {
	Top Expr
	To  Conversion
}

// FactorizeQuery asks for a factorization of E against the alias table.
type FactorizeQuery struct{ E Expr }

// ErrorQuery carries a parse-time error message through to the caller.
type ErrorQuery struct{ Msg string }

func (ExprQuery) queryNode()      {}
func (ConvertQuery) queryNode()   {}
func (FactorizeQuery) queryNode() {}
func (ErrorQuery) queryNode()     {}

// Conversion is the right-hand side of a ConvertQuery.
type Conversion interface {
	conversionNode()
}

// ExprConversion converts to the unit vector of an expression, printing
// the result symbolically using the expression's written unit names.
type ExprConversion struct{ E Expr }

// ListConversion converts to a list of named units, "feet+inches" style.
type ListConversion struct{ Units []string }

// TemperatureConversion converts to one of the six temperature scales.
type TemperatureConversion struct{ Scale string }

func (ExprConversion) conversionNode()        {}
func (ListConversion) conversionNode()        {}
func (TemperatureConversion) conversionNode() {}

// temperatureDisplay is the printed suffix name for each scale, distinct
// from the internal Suffix.Scale keys so that the accented forms used by
// Ré/Rø render correctly.
var temperatureDisplay = map[string]string{
	"C": "C", "F": "F", "Re": "Ré", "Ro": "Rø", "De": "De", "N": "N",
}

// RunQuery dispatches a Query against env: evaluating a bare expression,
// running a conversion and rendering its target form, or factorizing an
// expression's vector against the named-quantity table.
func RunQuery(env *Environment, factorizer Factorizer, q Query) (string, error) {
	switch query := q.(type) {
	case ErrorQuery:
		return "", fmt.Errorf("%s", query.Msg)
	case ExprQuery:
		if ident, ok := query.E.(Ident); ok {
			if _, has := env.Definitions[ident.Name]; has {
				return definitionLookup(env, ident.Name)
			}
		}
		v, err := Eval(env, query.E)
		if err != nil {
			return "", err
		}
		return ShowValue(env, v), nil
	case FactorizeQuery:
		return runFactorize(env, factorizer, query.E)
	case ConvertQuery:
		return runConvert(env, query.Top, query.To)
	default:
		return "", fmt.Errorf("unrecognized query %T", q)
	}
}

func definitionLookup(env *Environment, name string) (string, error) {
	for {
		def, ok := env.Definitions[name]
		if !ok {
			break
		}
		ident, ok := def.(Ident)
		if !ok {
			break
		}
		if _, has := env.Definitions[ident.Name]; !has {
			break
		}
		name = ident.Name
	}
	def := env.Definitions[name]
	res, err := env.Lookup(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Definition: %s = %s = %s", name, def.String(), ShowValue(env, NumberValue{res})), nil
}

func runConvert(env *Environment, top Expr, to Conversion) (string, error) {
	switch conv := to.(type) {
	case ExprConversion:
		return convertExpr(env, top, conv.E)
	case ListConversion:
		return convertList(env, top, conv.Units)
	case TemperatureConversion:
		return convertTemperature(env, top, conv.Scale)
	default:
		return "", fmt.Errorf("unrecognized conversion %T", to)
	}
}

func convertExpr(env *Environment, topExpr, bottomExpr Expr) (string, error) {
	topVal, err := Eval(env, topExpr)
	if err != nil {
		return "", err
	}
	bottomVal, err := Eval(env, bottomExpr)
	if err != nil {
		return "", err
	}
	bottomName, err := EvalUnitName(env, bottomExpr)
	if err != nil {
		return "", err
	}
	top, ok := topVal.(NumberValue)
	if !ok {
		return "", fmt.Errorf("Conversion of non-numbers is not defined")
	}
	bottom, ok := bottomVal.(NumberValue)
	if !ok {
		return "", fmt.Errorf("Conversion of non-numbers is not defined")
	}
	if !top.Number.Units.Equal(bottom.Number.Units) {
		return "", conformanceErr(env, top.Number, bottom.Number)
	}
	raw, err := top.Number.Div(bottom.Number)
	if err != nil {
		return "", fmt.Errorf("Division by zero: %s / %s", ShowValue(env, top), ShowValue(env, bottom))
	}
	return showConversion(env, raw, bottom.Number, bottomName), nil
}

func showConversion(env *Environment, raw, bottom Number, bottomName Vector) string {
	numberPart := RenderRat(raw.Mag)

	var top, frac []string
	for _, name := range bottomName.Keys() {
		exp := bottomName[name]
		if exp < 0 {
			frac = append(frac, fmtTerm(name, -exp))
		} else {
			top = append(top, fmtTerm(name, exp))
		}
	}
	unitTop := ""
	if len(top) > 0 {
		unitTop = " " + strings.Join(top, " ")
	}
	unitFrac := ""
	if len(frac) > 0 {
		unitFrac = " / " + strings.Join(frac, " ")
	}
	reduced := Reduced(env, bottom.Units)
	return fmt.Sprintf("%s%s%s (%s)", numberPart, unitTop, unitFrac, reduced)
}

func fmtTerm(name string, exp int) string {
	if exp != 1 {
		return fmt.Sprintf("%s^%d", name, exp)
	}
	return name
}

func conformanceErr(env *Environment, top, bottom Number) error {
	topU := NewNumber(ratOne(), top.Units)
	bottomU := NewNumber(ratOne(), bottom.Units)
	left := ShowValue(env, NumberValue{topU})
	right := ShowValue(env, NumberValue{bottomU})

	var b strings.Builder
	const width = 12
	if env.ShortOutput {
		fmt.Fprintf(&b, "Conformance error [ %s || %s ]\n", left, right)
	} else {
		fmt.Fprintf(&b, "Conformance error\n%*s: %s\n%*s: %s\n", width, "Left side", left, width, "Right side", right)
	}

	product := topU.Mul(bottomU)
	if product.Units.IsEmpty() {
		fmt.Fprintf(&b, "%*s: Reciprocal conversion, invert one side\n", width, "Suggestions")
	} else {
		diff, err := topU.Div(bottomU)
		if err != nil {
			diff = topU
		}
		recip, desc := Describe(env, diff.Units.Neg())
		word := "multiply"
		if recip {
			word = "divide"
		}
		fmt.Fprintf(&b, "%*s: %s left side by %s\n", width, "Suggestions", word, strings.TrimSpace(desc))

		recip2, desc2 := Describe(env, diff.Units)
		word2 := "multiply"
		if recip2 {
			word2 = "divide"
		}
		fmt.Fprintf(&b, "%*s  %s right side by %s\n", width, "", word2, strings.TrimSpace(desc2))
	}
	return fmt.Errorf("%s", strings.TrimRight(b.String(), "\n"))
}

func convertList(env *Environment, topExpr Expr, names []string) (string, error) {
	topVal, err := Eval(env, topExpr)
	if err != nil {
		return "", err
	}
	top, ok := topVal.(NumberValue)
	if !ok {
		return "", fmt.Errorf("Cannot convert <%s> to a unit list", ShowValue(env, topVal))
	}
	if len(names) == 0 {
		return "", fmt.Errorf("Expected non-empty unit list")
	}
	units := make([]Number, len(names))
	for i, name := range names {
		u, err := env.Lookup(name)
		if err != nil {
			return "", fmt.Errorf("Unit %s does not exist", name)
		}
		units[i] = u
	}
	first := units[0]
	for _, u := range units[1:] {
		if !first.Units.Equal(u.Units) {
			return "", fmt.Errorf("Units in unit list must conform: <%s> ; <%s>", ShowValue(env, NumberValue{first}), ShowValue(env, NumberValue{u}))
		}
	}
	if !top.Number.Units.Equal(first.Units) {
		return "", conformanceErr(env, top.Number, first)
	}

	value := new(big.Rat).Set(top.Number.Mag)
	outputs := make([]*big.Rat, len(units))
	for i, u := range units {
		res := new(big.Rat).Quo(value, u.Mag)
		if i == len(units)-1 {
			outputs[i] = res
			continue
		}
		div := floorRat(res)
		outputs[i] = new(big.Rat).SetInt(div)
		value.Sub(value, new(big.Rat).Mul(u.Mag, new(big.Rat).SetInt(div)))
	}

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s %s", RenderRat(outputs[i]), name)
	}
	out := strings.Join(parts, ", ")
	if alias, ok := env.AliasFor(top.Number.Units); ok {
		out += " (" + alias + ")"
	}
	return out, nil
}

func floorRat(r *big.Rat) *big.Int {
	return new(big.Int).Div(r.Num(), r.Denom())
}

func convertTemperature(env *Environment, topExpr Expr, scale string) (string, error) {
	scaleDef, ok := temperatureScales[scale]
	if !ok {
		return "", fmt.Errorf("unrecognized temperature scale %q", scale)
	}
	topVal, err := Eval(env, topExpr)
	if err != nil {
		return "", err
	}
	top, ok := topVal.(NumberValue)
	if !ok {
		return "", fmt.Errorf("Cannot convert <%s> to °%s", ShowValue(env, topVal), temperatureDisplay[scale])
	}
	bottom, err := env.Lookup(scaleDef.scale)
	if err != nil {
		panic(fmt.Sprintf("missing %s unit in definitions", scaleDef.scale))
	}
	if !top.Number.Units.Equal(bottom.Units) {
		return "", conformanceErr(env, top.Number, bottom)
	}
	zero, err := env.Lookup(scaleDef.zero)
	if err != nil {
		panic(fmt.Sprintf("missing %s constant in definitions", scaleDef.zero))
	}
	diff, err := top.Number.Sub(zero)
	if err != nil {
		return "", err
	}
	res, err := diff.Div(bottom)
	if err != nil {
		return "", err
	}
	name := Singleton("°"+temperatureDisplay[scale], 1)
	return showConversion(env, res, bottom, name), nil
}

func runFactorize(env *Environment, factorizer Factorizer, e Expr) (string, error) {
	v, err := Eval(env, e)
	if err != nil {
		return "", err
	}
	num, ok := v.(NumberValue)
	if !ok {
		return "", fmt.Errorf("Cannot find derivatives of <%s>", ShowValue(env, v))
	}

	names := make(map[string]Vector, len(env.Aliases))
	for key, name := range env.Aliases {
		names[name] = vectorFromKey(key)
	}

	results := factorizer.Factorize(num.Number.Units, names)

	rendered := make([]string, 0, len(results))
	seen := map[string]bool{}
	for _, res := range results {
		counts := map[string]int{}
		for _, n := range res.Names {
			counts[n]++
		}
		var terms []string
		for n := range counts {
			terms = append(terms, n)
		}
		slices.Sort(terms)
		parts := make([]string, len(terms))
		for i, n := range terms {
			if c := counts[n]; c > 1 {
				parts[i] = fmt.Sprintf("%s^%d", n, c)
			} else {
				parts[i] = n
			}
		}
		line := strings.Join(parts, " ")
		if seen[line] {
			continue
		}
		seen[line] = true
		rendered = append(rendered, line)
	}

	const maxShown = 10
	shown := rendered
	truncated := false
	if len(shown) > maxShown {
		shown = shown[:maxShown]
		truncated = true
	}
	out := strings.Join(shown, ";  ")
	if truncated {
		out += ";  ..."
	}
	return "Factorizations: " + out, nil
}
