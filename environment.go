package units

import (
	"fmt"
	"strings"
)

// reverseSIUnits is the fixed set of derived SI unit names eligible for
// installation into Environment.Reverse as a vector's preferred display
// name.
var reverseSIUnits = map[string]bool{
	"newton": true, "pascal": true, "joule": true, "watt": true,
	"coulomb": true, "volt": true, "ohm": true, "siemens": true,
	"farad": true, "weber": true, "henry": true, "tesla": true,
}

// PrefixEntry is one (name, magnitude) pair in Environment.Prefixes,
// tried in insertion order by Lookup's prefix-peel step.
type PrefixEntry struct {
	Name  string
	Value Number
}

// Environment is the read-only table set a query is evaluated against,
// built once by the loader and then shared across every subsequent
// Lookup/Eval/RunQuery call.
type Environment struct {
	Dimensions []string
	Units      map[string]Number
	Aliases    map[string]string // vector key -> canonical alias name
	Reverse    map[string]string // vector key -> preferred SI name
	Prefixes   []PrefixEntry
	Definitions map[string]Expr
	ShortOutput bool
	DatePatterns []string
	DateBridge DateBridge

	dimSet      map[string]bool
	aliasByName map[string]string // alias name -> vector key
}

// NewEnvironment returns an empty Environment ready for (*Environment).Load.
func NewEnvironment() *Environment {
	return &Environment{
		Units:       map[string]Number{},
		Aliases:     map[string]string{},
		Reverse:     map[string]string{},
		Definitions: map[string]Expr{},
		DateBridge:  DefaultDateBridge,
		dimSet:      map[string]bool{},
		aliasByName: map[string]string{},
	}
}

// vectorKey returns a canonical string key for a Vector, suitable for use
// as a map key since Vector itself (a map) is not comparable.
func vectorKey(v Vector) string {
	keys := v.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s^%d", k, v[k])
	}
	return strings.Join(parts, ",")
}

// AddDimension appends name to the ordered dimension list, if not already
// present.
func (env *Environment) AddDimension(name string) {
	if env.dimSet[name] {
		return
	}
	env.dimSet[name] = true
	env.Dimensions = append(env.Dimensions, name)
}

// IsDimension reports whether name is a registered base dimension.
func (env *Environment) IsDimension(name string) bool {
	return env.dimSet[name]
}

// SetAlias installs name as the alias of vector v, returning the prior
// alias name if this overwrites one (used by the loader to detect
// "conflicting quantities").
func (env *Environment) SetAlias(name string, v Vector) (previous string, overwrote bool) {
	key := vectorKey(v)
	previous, overwrote = env.Aliases[key]
	env.Aliases[key] = name
	env.aliasByName[name] = key
	return previous, overwrote
}

// AliasFor returns the canonical alias name for v, if any.
func (env *Environment) AliasFor(v Vector) (string, bool) {
	name, ok := env.Aliases[vectorKey(v)]
	return name, ok
}

// ReverseFor returns the preferred SI name for v, if any.
func (env *Environment) ReverseFor(v Vector) (string, bool) {
	name, ok := env.Reverse[vectorKey(v)]
	return name, ok
}

// SetReverse installs name as the preferred SI rendering of v, if name is
// in the fixed reverse-SI set.
func (env *Environment) SetReverse(name string, v Vector) {
	if reverseSIUnits[name] {
		env.Reverse[vectorKey(v)] = name
	}
}

// Lookup resolves name through a fixed ladder: base dimension, direct
// unit table, alias, trailing-"s" plural strip, then ordered prefix peel.
// The steps are tried in that order and the first match wins, which
// keeps resolution deterministic even when a shorter name could also be
// read as a prefixed form of a longer one.
func (env *Environment) Lookup(name string) (Number, error) {
	return env.lookup(name)
}

func (env *Environment) lookup(name string) (Number, error) {
	// 1. Exact base-dimension match.
	if env.IsDimension(name) {
		return NewNumber(ratOne(), Singleton(name, 1)), nil
	}
	// 2. Direct unit-table hit.
	if u, ok := env.Units[name]; ok {
		return u, nil
	}
	// 3. Value of some alias.
	if key, ok := env.aliasByName[name]; ok {
		v := vectorFromKey(key)
		return NewNumber(ratOne(), v), nil
	}
	// 4. Trailing-"s" plural strip.
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		if n, err := env.lookup(name[:len(name)-1]); err == nil {
			return n, nil
		}
	}
	// 5. Prefix peel, in insertion order.
	for _, p := range env.Prefixes {
		if strings.HasPrefix(name, p.Name) && len(name) > len(p.Name) {
			rest := name[len(p.Name):]
			if n, err := env.lookup(rest); err == nil {
				return n.Mul(p.Value), nil
			}
		}
	}
	return Number{}, fmt.Errorf("Unknown unit %q", name)
}

func vectorFromKey(key string) Vector {
	v := NewVector()
	if key == "" {
		return v
	}
	for _, part := range strings.Split(key, ",") {
		i := strings.LastIndex(part, "^")
		if i < 0 {
			continue
		}
		dim := part[:i]
		var exp int
		fmt.Sscanf(part[i+1:], "%d", &exp)
		if exp != 0 {
			v[dim] = exp
		}
	}
	return v
}
