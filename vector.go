package units

import "golang.org/x/exp/slices"

// Vector is a signed-exponent map over base-dimension names. A Vector is
// always kept canonical: no entry is ever stored with a zero exponent.
type Vector map[string]int

// NewVector returns an empty, canonical vector.
func NewVector() Vector {
	return Vector{}
}

// Singleton returns the one-dimension vector {name: exp}, pruned to empty
// if exp is zero.
func Singleton(name string, exp int) Vector {
	v := Vector{}
	if exp != 0 {
		v[name] = exp
	}
	return v
}

// Clone returns a copy so callers can mutate without aliasing the original.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for k, e := range v {
		out[k] = e
	}
	return out
}

// IsEmpty reports whether v has no dimensions, i.e. is dimensionless.
func (v Vector) IsEmpty() bool {
	return len(v) == 0
}

// Keys returns the dimension names of v in lexicographic order, the
// deterministic iteration order required throughout the evaluator and
// describer.
func (v Vector) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Add returns the elementwise sum of two vectors with zero-pruning.
func (v Vector) Add(o Vector) Vector {
	out := make(Vector, len(v)+len(o))
	for k, e := range v {
		out[k] = e
	}
	for k, e := range o {
		out[k] += e
	}
	return out.prune()
}

// Sub returns the elementwise difference v - o with zero-pruning.
func (v Vector) Sub(o Vector) Vector {
	out := make(Vector, len(v)+len(o))
	for k, e := range v {
		out[k] = e
	}
	for k, e := range o {
		out[k] -= e
	}
	return out.prune()
}

// Neg returns the elementwise negation of v.
func (v Vector) Neg() Vector {
	out := make(Vector, len(v))
	for k, e := range v {
		out[k] = -e
	}
	return out
}

// Scale multiplies every exponent by k, pruning any that become zero.
func (v Vector) Scale(k int) Vector {
	out := make(Vector, len(v))
	for dim, e := range v {
		if p := e * k; p != 0 {
			out[dim] = p
		}
	}
	return out
}

// DivisibleBy reports whether every exponent in v is divisible by r.
// r must be nonzero.
func (v Vector) DivisibleBy(r int) bool {
	for _, e := range v {
		if e%r != 0 {
			return false
		}
	}
	return true
}

// Root divides every exponent by r. Callers must check DivisibleBy(r)
// first.
func (v Vector) Root(r int) Vector {
	out := make(Vector, len(v))
	for dim, e := range v {
		if q := e / r; q != 0 {
			out[dim] = q
		}
	}
	return out
}

// Equal reports whether v and o describe the same dimension, independent
// of map iteration order.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for k, e := range v {
		if oe, ok := o[k]; !ok || oe != e {
			return false
		}
	}
	return true
}

// Positive returns the subset of v with strictly positive exponents.
func (v Vector) Positive() Vector {
	out := Vector{}
	for k, e := range v {
		if e > 0 {
			out[k] = e
		}
	}
	return out
}

// Negative returns the subset of v with strictly negative exponents.
func (v Vector) Negative() Vector {
	out := Vector{}
	for k, e := range v {
		if e < 0 {
			out[k] = e
		}
	}
	return out
}

func (v Vector) prune() Vector {
	for k, e := range v {
		if e == 0 {
			delete(v, k)
		}
	}
	return v
}
