package units

import (
	"fmt"
	"math/big"
)

// Number is a dimensioned number: an exact rational magnitude paired with
// a unit vector.
type Number struct {
	Mag   *big.Rat
	Units Vector
}

// ratOne returns a fresh 1/1 rational; callers must not share the
// pointer since big.Rat is mutated in place by its own methods.
func ratOne() *big.Rat {
	return big.NewRat(1, 1)
}

// NewNumber builds a Number from a magnitude and vector, defensively
// cloning the vector so callers cannot mutate it out from under the
// Number afterward.
func NewNumber(mag *big.Rat, u Vector) Number {
	return Number{Mag: mag, Units: u.Clone()}
}

// Scalar is a dimensionless Number of the given magnitude.
func Scalar(mag *big.Rat) Number {
	return Number{Mag: mag, Units: NewVector()}
}

// IsDimensionless reports whether n carries no unit vector.
func (n Number) IsDimensionless() bool {
	return n.Units.IsEmpty()
}

// Add returns n + o. Fails unless the two share a unit vector.
func (n Number) Add(o Number) (Number, error) {
	if !n.Units.Equal(o.Units) {
		return Number{}, fmt.Errorf("Addition of units with mismatched units is not meaningful")
	}
	return NewNumber(new(big.Rat).Add(n.Mag, o.Mag), n.Units), nil
}

// Sub returns n - o. Fails unless the two share a unit vector.
func (n Number) Sub(o Number) (Number, error) {
	if !n.Units.Equal(o.Units) {
		return Number{}, fmt.Errorf("Subtraction of units with mismatched units is not meaningful")
	}
	return NewNumber(new(big.Rat).Sub(n.Mag, o.Mag), n.Units), nil
}

// Mul returns n * o: magnitudes multiply, vectors add.
func (n Number) Mul(o Number) Number {
	return NewNumber(new(big.Rat).Mul(n.Mag, o.Mag), n.Units.Add(o.Units))
}

// Div returns n / o: magnitudes divide, vectors subtract. Fails on
// division by zero.
func (n Number) Div(o Number) (Number, error) {
	if o.Mag.Sign() == 0 {
		return Number{}, fmt.Errorf("Division by zero")
	}
	return NewNumber(new(big.Rat).Quo(n.Mag, o.Mag), n.Units.Sub(o.Units)), nil
}

// Neg returns -n.
func (n Number) Neg() Number {
	return NewNumber(new(big.Rat).Neg(n.Mag), n.Units)
}

// Recip returns 1/n. Fails when n's magnitude is zero.
func (n Number) Recip() (Number, error) {
	if n.Mag.Sign() == 0 {
		return Number{}, fmt.Errorf("Division by zero")
	}
	return NewNumber(new(big.Rat).Inv(n.Mag), n.Units.Neg()), nil
}

// Pow returns n^k. exponent must be a dimensionless Number whose rational
// value is an integer; fractional or unit-bearing exponents are rejected.
func (n Number) Pow(exponent Number) (Number, error) {
	if !exponent.IsDimensionless() {
		return Number{}, fmt.Errorf("Exponent must be dimensionless")
	}
	if !exponent.Mag.IsInt() {
		return Number{}, fmt.Errorf("Exponent must be an integer")
	}
	k := exponent.Mag.Num().Int64()
	return n.PowInt(int(k))
}

// PowInt raises n to an integer power k, including negative k.
func (n Number) PowInt(k int) (Number, error) {
	if k == 0 {
		return Scalar(big.NewRat(1, 1)), nil
	}
	abs := k
	if abs < 0 {
		abs = -abs
	}
	mag := new(big.Rat).SetInt64(1)
	base := new(big.Rat).Set(n.Mag)
	for i := 0; i < abs; i++ {
		mag.Mul(mag, base)
	}
	if k < 0 {
		if mag.Sign() == 0 {
			return Number{}, fmt.Errorf("Division by zero")
		}
		mag.Inv(mag)
	}
	return NewNumber(mag, n.Units.Scale(k)), nil
}

// Root returns the exact r-th root of n. Every exponent in n's unit
// vector must be divisible by r, and n's magnitude must be a perfect
// r-th power.
func (n Number) Root(r int) (Number, error) {
	if r == 0 {
		return Number{}, fmt.Errorf("Non-integer root")
	}
	if !n.Units.DivisibleBy(r) {
		return Number{}, fmt.Errorf("Non-integer root")
	}
	root, ok := IntegerRoot(n.Mag, r)
	if !ok {
		return Number{}, fmt.Errorf("%v is not a perfect root", n.Mag.RatString())
	}
	return NewNumber(root, n.Units.Root(r)), nil
}

// Equal reports whether n and o have equal magnitude and unit vector.
func (n Number) Equal(o Number) bool {
	return n.Mag.Cmp(o.Mag) == 0 && n.Units.Equal(o.Units)
}

// String renders n as "<numeral> <dim1>^<e1> <dim2>^<e2> ...", in
// lexicographic dimension order, for use in diagnostic text. It does not
// consult the alias table; see describe.go for user-facing rendering.
func (n Number) String() string {
	s := RenderRat(n.Mag)
	for _, dim := range n.Units.Keys() {
		e := n.Units[dim]
		if e == 1 {
			s += " " + dim
		} else {
			s += fmt.Sprintf(" %s^%d", dim, e)
		}
	}
	return s
}
