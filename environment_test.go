package units

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestEnvironmentLookupDimension(t *testing.T) {
	env := NewEnvironment()
	env.AddDimension("length")
	n, err := env.Lookup("length")
	if err != nil {
		t.Fatalf("Lookup(length): %v", err)
	}
	assertNumberEqual(t, n, NewNumber(ratOne(), Singleton("length", 1)), "Lookup(length)")
}

func TestEnvironmentLookupUnitTable(t *testing.T) {
	env := NewEnvironment()
	env.AddDimension("length")
	env.Units["meter"] = NewNumber(ratOne(), Singleton("length", 1))
	n, err := env.Lookup("meter")
	if err != nil {
		t.Fatalf("Lookup(meter): %v", err)
	}
	assertNumberEqual(t, n, NewNumber(ratOne(), Singleton("length", 1)), "Lookup(meter)")
}

func TestEnvironmentLookupAliasReverse(t *testing.T) {
	env := NewEnvironment()
	env.SetAlias("length", Singleton("length", 1))
	n, err := env.Lookup("length")
	if err != nil {
		t.Fatalf("Lookup(length) via alias: %v", err)
	}
	assertNumberEqual(t, n, NewNumber(ratOne(), Singleton("length", 1)), "Lookup(length) via alias")
}

func TestEnvironmentLookupPluralStrip(t *testing.T) {
	env := NewEnvironment()
	env.AddDimension("length")
	env.Units["foot"] = NewNumber(big.NewRat(3048, 10000), Singleton("length", 1))
	n, err := env.Lookup("foots")
	if err != nil {
		t.Fatalf("Lookup(foots): %v", err)
	}
	assertNumberEqual(t, n, env.Units["foot"], "Lookup(foots)")
}

func TestEnvironmentLookupPrefixPeel(t *testing.T) {
	env := NewEnvironment()
	env.AddDimension("length")
	env.Units["meter"] = NewNumber(ratOne(), Singleton("length", 1))
	env.Prefixes = append(env.Prefixes, PrefixEntry{Name: "kilo", Value: Scalar(big.NewRat(1000, 1))})
	n, err := env.Lookup("kilometer")
	if err != nil {
		t.Fatalf("Lookup(kilometer): %v", err)
	}
	assertNumberEqual(t, n, NewNumber(big.NewRat(1000, 1), Singleton("length", 1)), "Lookup(kilometer)")
}

func TestEnvironmentLookupNotFound(t *testing.T) {
	env := NewEnvironment()
	if _, err := env.Lookup("unobtainium"); err == nil {
		t.Fatal("expected lookup of an unknown name to fail")
	}
}

func TestEnvironmentSetAliasReportsOverwrite(t *testing.T) {
	env := NewEnvironment()
	_, overwrote := env.SetAlias("length", Singleton("length", 1))
	if overwrote {
		t.Fatal("first SetAlias should not report an overwrite")
	}
	prev, overwrote := env.SetAlias("distance", Singleton("length", 1))
	if !overwrote || prev != "length" {
		t.Fatalf("second SetAlias of the same vector should report overwriting %q, got overwrote=%v prev=%q", "length", overwrote, prev)
	}
}

func TestEnvironmentSetReverseOnlyFixedSINames(t *testing.T) {
	env := NewEnvironment()
	env.SetReverse("joule", Singleton("energy", 1))
	if _, ok := env.ReverseFor(Singleton("energy", 1)); !ok {
		t.Fatal("expected joule to be installed as a reverse SI name")
	}
	env2 := NewEnvironment()
	env2.SetReverse("not-an-si-unit", Singleton("length", 1))
	if _, ok := env2.ReverseFor(Singleton("length", 1)); ok {
		t.Fatal("expected a non-SI name not to be installed as a reverse name")
	}
}

func TestVectorKeyRoundTrip(t *testing.T) {
	v := Vector{"length": 2, "time": -1, "mass": -3}
	got := vectorFromKey(vectorKey(v))
	assertVectorEqual(t, got, v, "vectorFromKey(vectorKey(v))")
}

func TestVectorKeyRoundTripEmpty(t *testing.T) {
	v := NewVector()
	got := vectorFromKey(vectorKey(v))
	assertVectorEqual(t, got, v, "vectorFromKey(vectorKey(empty))")
}

// TestEnvironmentDeclaredOrderMatchesAcrossLoads compares the full
// Dimensions slice produced by two independent loads of the same raw
// definitions, using go-cmp rather than a field-by-field loop: the
// slice holds declaration order so plain cmp.Diff (order-sensitive) is
// the right comparator here, unlike Vector/Number equality which have
// their own equality semantics and get a dedicated Equal method instead.
func TestEnvironmentDeclaredOrderMatchesAcrossLoads(t *testing.T) {
	defs := []RawDef{
		{Name: "length", Def: DimensionDef{"length"}},
		{Name: "mass", Def: DimensionDef{"mass"}},
		{Name: "time", Def: DimensionDef{"time"}},
	}
	env1 := NewEnvironment()
	env1.Load(defs)
	env2 := NewEnvironment()
	env2.Load(defs)

	if diff := cmp.Diff(env1.Dimensions, env2.Dimensions); diff != "" {
		t.Errorf("Dimensions mismatch across independent loads (-env1 +env2):\n%s", diff)
	}

	// Alias names don't carry a meaningful order of their own (they're
	// keyed by vector, not declaration position), so the comparison
	// ignores slice order here via cmpopts.SortSlices.
	names1 := aliasNames(env1)
	names2 := aliasNames(env2)
	sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(names1, names2, sortStrings); diff != "" {
		t.Errorf("alias name sets differ across independent loads (-env1 +env2):\n%s", diff)
	}
}

func aliasNames(env *Environment) []string {
	names := make([]string, 0, len(env.Aliases))
	for _, name := range env.Aliases {
		names = append(names, name)
	}
	return names
}
