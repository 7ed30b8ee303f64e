package units

import (
	"fmt"
	"strings"
)

// Describe renders a unit vector as a human-readable expression using the
// alias table, falling back to a square-root-of-alias or inverse-alias
// form before partitioning positive and negative exponents into separate
// terms. It returns whether the rendering is of the vector's reciprocal,
// and the rendered text itself.
func Describe(env *Environment, v Vector) (recip bool, text string) {
	if name, ok := env.AliasFor(v); ok {
		return false, name
	}
	if v.DivisibleBy(2) {
		if name, ok := env.AliasFor(v.Root(2)); ok {
			return false, name + "^2"
		}
	}
	if name, ok := env.AliasFor(v.Neg()); ok {
		return true, name
	}

	var buf strings.Builder
	found := false
	type fracTerm struct {
		dim string
		pow int
	}
	var frac []fracTerm

	for _, dim := range v.Keys() {
		pow := v[dim]
		if pow < 0 {
			frac = append(frac, fracTerm{dim, -pow})
			continue
		}
		found = true
		writeDimTerm(&buf, env, dim, pow)
	}

	if len(frac) > 0 {
		if !found {
			recip = true
		} else {
			buf.WriteString(" /")
		}
		for _, fe := range frac {
			writeDimTerm(&buf, env, fe.dim, fe.pow)
		}
	}

	s := buf.String()
	if len(s) > 0 {
		s = s[1:] // strip the leading separator space
	}
	return recip, s
}

func writeDimTerm(buf *strings.Builder, env *Environment, dim string, pow int) {
	if name, ok := env.AliasFor(Singleton(dim, pow)); ok {
		buf.WriteString(" " + name)
		return
	}
	if name, ok := env.AliasFor(Singleton(dim, 1)); ok {
		buf.WriteString(" " + name)
	} else {
		buf.WriteString(" '" + dim + "'")
	}
	if pow != 1 {
		fmt.Fprintf(buf, "^%d", pow)
	}
}

// ShowValue renders a Value for diagnostics and bare-expression results:
// a Number renders as "<numeral> <name>", preferring the reverse-SI name
// for its vector and falling back to Describe, and a Timestamp renders
// via its own String method.
func ShowValue(env *Environment, v Value) string {
	switch tv := v.(type) {
	case NumberValue:
		numeral := RenderRat(tv.Number.Mag)
		if tv.Number.IsDimensionless() {
			return numeral
		}
		if name, ok := env.ReverseFor(tv.Number.Units); ok {
			return numeral + " " + name
		}
		_, text := Describe(env, tv.Number.Units)
		if text == "" {
			return tv.Number.String()
		}
		return numeral + " " + text
	case TimestampValue:
		return tv.Timestamp.String()
	default:
		return v.String()
	}
}

// Reduced renders v the way the query layer's "(<reduced>)" suffix does:
// Describe's text, prefixed "1 / " when Describe reports a reciprocal
// rendering.
func Reduced(env *Environment, v Vector) string {
	recip, text := Describe(env, v)
	if recip {
		return "1 / " + text
	}
	return text
}
