package units

import "testing"

func TestDescribeDirectAlias(t *testing.T) {
	env := testEnv(t)
	recip, text := Describe(env, Singleton("m", 1))
	if recip {
		t.Fatal("expected m^1 not to be described as a reciprocal")
	}
	if text != "length" {
		t.Errorf("Describe(m) = %q, want %q", text, "length")
	}
}

func TestDescribeSquareRootAlias(t *testing.T) {
	env := testEnv(t)
	// kg^2 has no direct alias, but kg itself does ("mass"), so Describe
	// falls back to the square-root-alias branch rather than the direct
	// one that "area" (m^2) would take.
	recip, text := Describe(env, Singleton("kg", 2))
	if recip {
		t.Fatal("expected kg^2 not to be described as a reciprocal")
	}
	if text != "mass^2" {
		t.Errorf("Describe(kg^2) = %q, want %q", text, "mass^2")
	}
}

func TestDescribeInverseAlias(t *testing.T) {
	env := testEnv(t)
	recip, text := Describe(env, Singleton("m", -1))
	if !recip {
		t.Fatal("expected m^-1 to be described as a reciprocal of length")
	}
	if text != "length" {
		t.Errorf("Describe(m^-1) = %q, want %q", text, "length")
	}
}

func TestDescribePartitionedPositiveAndNegative(t *testing.T) {
	env := testEnv(t)
	v := Vector{"zzz-unaliased-pos": 1, "zzz-unaliased-neg": -1}
	recip, text := Describe(env, v)
	if recip {
		t.Fatal("expected a mixed positive/negative vector not to be reported as a pure reciprocal")
	}
	if text == "" {
		t.Fatal("expected non-empty description")
	}
	if text[0] == ' ' {
		t.Errorf("Describe result has a leading space: %q", text)
	}
}

func TestShowValueDimensionlessOmitsUnitText(t *testing.T) {
	env := testEnv(t)
	v := NumberValue{Scalar(ratOne())}
	got := ShowValue(env, v)
	if got != "1" {
		t.Errorf("ShowValue(1) = %q, want %q", got, "1")
	}
}

func TestReducedPrefixesReciprocal(t *testing.T) {
	env := testEnv(t)
	text := Reduced(env, Singleton("m", -1))
	if text != "1 / length" {
		t.Errorf("Reduced(m^-1) = %q, want %q", text, "1 / length")
	}
}
