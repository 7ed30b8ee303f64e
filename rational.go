package units

import (
	"fmt"
	"math/big"
	"strings"
)

// defaultDecimalDigits is how many fractional digits the numeral renderer
// produces before falling back to an ellipsis for a non-terminating
// decimal expansion. The rational backend itself never loses precision;
// this bound only affects display.
const defaultDecimalDigits = 10

// RatFromLiteral assembles an exact rational from the three pieces a
// parser delivers for a literal: integer digits (optionally signed),
// optional fractional digits, and an optional signed base-10 exponent.
// None of the string arguments are validated beyond being parseable
// decimal integers; a malformed literal is a parser bug, not a runtime
// condition this function recovers from.
func RatFromLiteral(intPart, fracPart, expPart string) (*big.Rat, error) {
	if intPart == "" {
		intPart = "0"
	}
	neg := false
	digits := intPart
	switch digits[0] {
	case '-':
		neg = true
		digits = digits[1:]
	case '+':
		digits = digits[1:]
	}

	num := new(big.Int)
	if _, ok := num.SetString(digits, 10); !ok {
		return nil, fmt.Errorf("invalid integer literal %q", intPart)
	}
	den := big.NewInt(1)

	if fracPart != "" {
		fnum := new(big.Int)
		if _, ok := fnum.SetString(fracPart, 10); !ok {
			return nil, fmt.Errorf("invalid fractional literal %q", fracPart)
		}
		fden := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(fracPart))), nil)
		num.Mul(num, fden)
		num.Add(num, fnum)
		den.Mul(den, fden)
	}

	if neg {
		num.Neg(num)
	}

	r := new(big.Rat).SetFrac(num, den)

	if expPart != "" {
		exp := new(big.Int)
		if _, ok := exp.SetString(expPart, 10); !ok {
			return nil, fmt.Errorf("invalid exponent literal %q", expPart)
		}
		ten := big.NewInt(10)
		if exp.Sign() >= 0 {
			scale := new(big.Int).Exp(ten, exp, nil)
			r.Mul(r, new(big.Rat).SetInt(scale))
		} else {
			neg := new(big.Int).Neg(exp)
			scale := new(big.Int).Exp(ten, neg, nil)
			r.Quo(r, new(big.Rat).SetInt(scale))
		}
	}

	return r, nil
}

// RenderRat renders an exact rational as a decimal numeral, truncated to
// defaultDecimalDigits fractional digits with a trailing ellipsis when the
// expansion does not terminate within that bound.
func RenderRat(r *big.Rat) string {
	return renderRatDigits(r, defaultDecimalDigits)
}

func renderRatDigits(r *big.Rat, digits int) string {
	neg := r.Sign() < 0
	num := new(big.Int).Abs(r.Num())
	den := new(big.Int).Abs(r.Denom())

	intPart := new(big.Int)
	rem := new(big.Int)
	intPart.QuoRem(num, den, rem)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intPart.String())

	if rem.Sign() == 0 {
		return b.String()
	}

	b.WriteByte('.')
	ten := big.NewInt(10)
	for i := 0; i < digits && rem.Sign() != 0; i++ {
		rem.Mul(rem, ten)
		digit := new(big.Int)
		digit.QuoRem(rem, den, rem)
		b.WriteString(digit.String())
	}
	if rem.Sign() != 0 {
		b.WriteString("…")
	}
	return b.String()
}

// IsInteger reports whether r has denominator 1.
func IsInteger(r *big.Rat) bool {
	return r.IsInt()
}

// AsInt64 returns r as an int64, requiring that r be an integer in range.
func AsInt64(r *big.Rat) (int64, bool) {
	if !r.IsInt() {
		return 0, false
	}
	if !r.Num().IsInt64() {
		return 0, false
	}
	return r.Num().Int64(), true
}

// IntegerRoot returns the exact integer r-th root of q, if q is a perfect
// r-th power of an integer ratio; ok is false otherwise.
func IntegerRoot(q *big.Rat, r int) (root *big.Rat, ok bool) {
	if r <= 0 {
		return nil, false
	}
	num, nOK := nthRootBigInt(new(big.Int).Abs(q.Num()), r)
	if !nOK {
		return nil, false
	}
	den, dOK := nthRootBigInt(q.Denom(), r)
	if !dOK {
		return nil, false
	}
	if q.Sign() < 0 {
		if r%2 == 0 {
			return nil, false
		}
		num.Neg(num)
	}
	return new(big.Rat).SetFrac(num, den), true
}

// nthRootBigInt returns the exact integer r-th root of a non-negative n,
// or ok=false if n is not a perfect r-th power.
func nthRootBigInt(n *big.Int, r int) (*big.Int, bool) {
	if n.Sign() == 0 {
		return big.NewInt(0), true
	}
	if r == 1 {
		return new(big.Int).Set(n), true
	}
	// Newton's method in big integers, then verify exactly.
	x := new(big.Int).Set(n)
	rBig := big.NewInt(int64(r))
	rMinus1 := big.NewInt(int64(r - 1))
	guess := new(big.Int).Rsh(n, uint(n.BitLen()/r+1))
	if guess.Sign() == 0 {
		guess.SetInt64(1)
	}
	for i := 0; i < 200; i++ {
		// next = ((r-1)*guess + n/guess^(r-1)) / r
		pow := new(big.Int).Exp(guess, rMinus1, nil)
		if pow.Sign() == 0 {
			break
		}
		term := new(big.Int).Quo(x, pow)
		next := new(big.Int).Mul(rMinus1, guess)
		next.Add(next, term)
		next.Quo(next, rBig)
		if next.Cmp(guess) == 0 {
			break
		}
		guess = next
	}
	for _, cand := range []*big.Int{guess, new(big.Int).Add(guess, big.NewInt(1)), new(big.Int).Sub(guess, big.NewInt(1))} {
		if cand.Sign() < 0 {
			continue
		}
		check := new(big.Int).Exp(cand, rBig, nil)
		if check.Cmp(n) == 0 {
			return cand, true
		}
	}
	return nil, false
}
