package units

import (
	"fmt"
	"strings"
)

// Def is one raw definition the loader accepts.
type Def interface {
	defNode()
}

// DimensionDef declares name as a new base dimension.
type DimensionDef struct{ Name string }

// UnitDef defines name as the evaluation of Expr.
type UnitDef struct{ Expr Expr }

// PrefixDef defines name as a prefix magnitude, not installed as a unit.
type PrefixDef struct{ Expr Expr }

// SPrefixDef defines name as a prefix magnitude also installed as a unit
// symbol.
type SPrefixDef struct{ Expr Expr }

// QuantityDef defines name as the alias of the vector Expr evaluates to.
type QuantityDef struct{ Expr Expr }

// ErrorDef carries a load-time error message for name, surfaced as a
// diagnostic rather than raised.
type ErrorDef struct{ Msg string }

func (DimensionDef) defNode() {}
func (UnitDef) defNode()      {}
func (PrefixDef) defNode()    {}
func (SPrefixDef) defNode()   {}
func (QuantityDef) defNode()  {}
func (ErrorDef) defNode()     {}

// RawDef pairs a name with its Def. Declaration order matters: it is the
// tie-breaker the loader falls back on whenever dependency order alone
// doesn't determine which of two independent definitions is visited
// first, which keeps repeated loads of the same input deterministic.
type RawDef struct {
	Name string
	Def  Def
}

// namespace classifies a RawDef's name into one of three independent
// keyspaces, so a unit and a prefix (or a quantity) may share a name
// without colliding.
type namespace int

const (
	nsUnit namespace = iota
	nsPrefix
	nsQuantity
)

type nameKey struct {
	ns   namespace
	name string
}

func classify(d Def) namespace {
	switch d.(type) {
	case PrefixDef, SPrefixDef:
		return nsPrefix
	case QuantityDef:
		return nsQuantity
	default:
		return nsUnit
	}
}

// Loader performs the dependency-ordered, cycle-tolerant evaluation of a
// definitions list into an Environment, using a three-color depth-first
// topological sort so that a definition is only evaluated once every
// name it references has already been resolved. Environment.Load builds
// one with its working maps initialized; the zero value is not usable.
type Loader struct {
	input    map[nameKey]RawDef
	order    []nameKey
	unmarked map[nameKey]bool
	temp     map[nameKey]bool
	sorted   []nameKey
	diags    []string
}

// Load populates env from defs and returns the diagnostic messages
// produced along the way (lookup failures, cycles, malformed
// definitions, conflicting quantities). A single bad definition never
// aborts the load; the remaining definitions still get a chance to
// resolve.
func (env *Environment) Load(defs []RawDef) []string {
	l := &Loader{
		input:    make(map[nameKey]RawDef, len(defs)),
		unmarked: make(map[nameKey]bool, len(defs)),
		temp:     make(map[nameKey]bool),
	}
	for _, rd := range defs {
		key := nameKey{ns: classify(rd.Def), name: rd.Name}
		l.input[key] = rd
		if !l.unmarked[key] {
			l.unmarked[key] = true
			l.order = append(l.order, key)
		}
	}

	// Dependency ordering: iterate candidates in the caller's declared
	// order rather than Go's randomized map order, so that independent
	// (no-edge) definitions keep their relative position. This is a
	// deliberate strengthening of the resolver's determinism guarantee
	// beyond what an unordered-set-based topological sort provides.
	for _, key := range l.order {
		if l.unmarked[key] {
			l.visit(key)
		}
	}

	for _, key := range l.sorted {
		rd := l.input[key]
		l.interpret(env, key.name, rd.Def)
	}

	return l.diags
}

func (l *Loader) visit(key nameKey) {
	if l.temp[key] {
		l.diags = append(l.diags, fmt.Sprintf("Unit %s has a dependency cycle", key.name))
		return
	}
	if !l.unmarked[key] {
		return
	}
	l.temp[key] = true
	if rd, ok := l.input[key]; ok {
		switch d := rd.Def.(type) {
		case PrefixDef:
			l.walk(d.Expr)
		case SPrefixDef:
			l.walk(d.Expr)
		case UnitDef:
			l.walk(d.Expr)
		case QuantityDef:
			l.walk(d.Expr)
		}
	}
	delete(l.unmarked, key)
	delete(l.temp, key)
	l.sorted = append(l.sorted, key)
}

// lookup mirrors the 4.D ladder over the loader's working map (not yet
// the environment): exact Unit, then Prefix, then Quantity, then plural
// strip, then prefix peel.
func (l *Loader) lookup(name string) bool {
	if key := (nameKey{nsUnit, name}); l.hasKey(key) {
		l.visit(key)
		return true
	}
	if key := (nameKey{nsPrefix, name}); l.hasKey(key) {
		l.visit(key)
		return true
	}
	if key := (nameKey{nsQuantity, name}); l.hasKey(key) {
		l.visit(key)
		return true
	}
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		if l.lookup(name[:len(name)-1]) {
			return true
		}
	}
	for _, key := range l.order {
		if key.ns != nsPrefix {
			continue
		}
		if strings.HasPrefix(name, key.name) && len(name) > len(key.name) {
			if l.lookup(name[len(key.name):]) {
				l.visit(key)
				return true
			}
		}
	}
	return false
}

func (l *Loader) hasKey(key nameKey) bool {
	_, ok := l.input[key]
	return ok
}

func (l *Loader) walk(e Expr) {
	switch n := e.(type) {
	case Ident:
		if !l.lookup(n.Name) {
			l.diags = append(l.diags, fmt.Sprintf("Lookup failed: %s", n.Name))
		}
	case Binary:
		l.walk(n.L)
		l.walk(n.R)
	case Unary:
		l.walk(n.X)
	case Suffix:
		l.walk(n.X)
	case Mul:
		for _, a := range n.Args {
			l.walk(a)
		}
	case Call:
		for _, a := range n.Args {
			l.walk(a)
		}
	default:
		// Quoted, Literal, DateLiteral, Equals, and ErrorExpr introduce
		// no dependency edges.
	}
}

func (l *Loader) interpret(env *Environment, name string, def Def) {
	switch d := def.(type) {
	case DimensionDef:
		env.AddDimension(d.Name)
	case UnitDef:
		v, err := Eval(env, d.Expr)
		if err != nil {
			l.diags = append(l.diags, fmt.Sprintf("Unit %s is malformed: %s", name, err))
			return
		}
		num, ok := v.(NumberValue)
		if !ok {
			l.diags = append(l.diags, fmt.Sprintf("Unit %s is not a number", name))
			return
		}
		if num.Number.Mag.Cmp(ratOne()) == 0 {
			env.SetReverse(name, num.Number.Units)
		}
		env.Definitions[name] = d.Expr
		env.Units[name] = num.Number
	case PrefixDef:
		v, err := Eval(env, d.Expr)
		if err != nil {
			l.diags = append(l.diags, fmt.Sprintf("Prefix %s is malformed: %s", name, err))
			return
		}
		num, ok := v.(NumberValue)
		if !ok {
			l.diags = append(l.diags, fmt.Sprintf("Prefix %s is not a number", name))
			return
		}
		env.Prefixes = append(env.Prefixes, PrefixEntry{Name: name, Value: num.Number})
	case SPrefixDef:
		v, err := Eval(env, d.Expr)
		if err != nil {
			l.diags = append(l.diags, fmt.Sprintf("Prefix %s is malformed: %s", name, err))
			return
		}
		num, ok := v.(NumberValue)
		if !ok {
			l.diags = append(l.diags, fmt.Sprintf("Prefix %s is not a number", name))
			return
		}
		env.Prefixes = append(env.Prefixes, PrefixEntry{Name: name, Value: num.Number})
		env.Units[name] = num.Number
	case QuantityDef:
		v, err := Eval(env, d.Expr)
		if err != nil {
			l.diags = append(l.diags, fmt.Sprintf("Quantity %s is malformed: %s", name, err))
			return
		}
		num, ok := v.(NumberValue)
		if !ok {
			l.diags = append(l.diags, fmt.Sprintf("Quantity %s is not a number", name))
			return
		}
		old, overwrote := env.SetAlias(name, num.Number.Units)
		if _, has := env.Definitions[name]; !has {
			env.Definitions[name] = d.Expr
		}
		if overwrote {
			l.diags = append(l.diags, fmt.Sprintf("Warning: Conflicting quantities %s and %s", name, old))
		}
	case ErrorDef:
		l.diags = append(l.diags, fmt.Sprintf("Def %s: %s", name, d.Msg))
	}
}
