package units

import (
	"math/big"
	"testing"
)

func TestRatFromLiteral(t *testing.T) {
	cases := []struct {
		name, intPart, fracPart, expPart string
		want                             *big.Rat
	}{
		{"integer", "5", "", "", big.NewRat(5, 1)},
		{"negative", "-5", "", "", big.NewRat(-5, 1)},
		{"fraction", "1", "5", "", big.NewRat(15, 10)},
		{"exponent", "1", "", "2", big.NewRat(100, 1)},
		{"negative exponent", "1", "", "-2", big.NewRat(1, 100)},
		{"signed plus", "+3", "", "", big.NewRat(3, 1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := RatFromLiteral(c.intPart, c.fracPart, c.expPart)
			if err != nil {
				t.Fatalf("RatFromLiteral(%q,%q,%q) error: %v", c.intPart, c.fracPart, c.expPart, err)
			}
			if got.Cmp(c.want) != 0 {
				t.Errorf("RatFromLiteral(%q,%q,%q) = %v, want %v", c.intPart, c.fracPart, c.expPart, got, c.want)
			}
		})
	}
}

func TestRenderRatTerminating(t *testing.T) {
	got := RenderRat(big.NewRat(5, 2))
	if got != "2.5" {
		t.Errorf("RenderRat(5/2) = %q, want %q", got, "2.5")
	}
}

func TestRenderRatNonTerminating(t *testing.T) {
	got := RenderRat(big.NewRat(1, 3))
	want := "0.3333333333…"
	if got != want {
		t.Errorf("RenderRat(1/3) = %q, want %q", got, want)
	}
}

func TestRenderRatMeterToFoot(t *testing.T) {
	got := RenderRat(big.NewRat(10000, 3048))
	want := "3.2808398950…"
	if got != want {
		t.Errorf("RenderRat(10000/3048) = %q, want %q", got, want)
	}
}

func TestIntegerRootPerfectSquare(t *testing.T) {
	root, ok := IntegerRoot(big.NewRat(4, 1), 2)
	if !ok {
		t.Fatal("expected 4 to be a perfect square")
	}
	if root.Cmp(big.NewRat(2, 1)) != 0 {
		t.Errorf("IntegerRoot(4, 2) = %v, want 2", root)
	}
}

func TestIntegerRootNonPerfect(t *testing.T) {
	_, ok := IntegerRoot(big.NewRat(3, 1), 2)
	if ok {
		t.Fatal("expected 3 not to be a perfect square")
	}
}

func TestIntegerRootRational(t *testing.T) {
	root, ok := IntegerRoot(big.NewRat(9, 4), 2)
	if !ok {
		t.Fatal("expected 9/4 to be a perfect square")
	}
	if root.Cmp(big.NewRat(3, 2)) != 0 {
		t.Errorf("IntegerRoot(9/4, 2) = %v, want 3/2", root)
	}
}
