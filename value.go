package units

import "fmt"

// Value is the tagged union of {dimensioned number, absolute timestamp}.
// Only NumberValue and TimestampValue implement it; the interface exists
// purely to dispatch the operator table, never to allow silent coercion
// between the two kinds.
type Value interface {
	isValue()
	String() string
}

// NumberValue wraps a Number as a Value.
type NumberValue struct{ Number Number }

func (NumberValue) isValue()         {}
func (v NumberValue) String() string { return v.Number.String() }

// TimestampValue wraps a Timestamp as a Value.
type TimestampValue struct{ Timestamp Timestamp }

func (TimestampValue) isValue()         {}
func (v TimestampValue) String() string { return v.Timestamp.String() }

// opError wraps an operator-site failure with both operands rendered in
// raw dimension form ("2 m", not the alias table's "2 length"), so the
// message pinpoints the mismatched vectors themselves.
func opError(err error, op string, l, r Value) error {
	return fmt.Errorf("%w: <%s> %s <%s>", err, l.String(), op, r.String())
}

// ValueAdd implements the "+" operator's dispatch over Value's two kinds:
// number+number adds magnitudes (erroring on a dimension mismatch), and
// number+timestamp (in either order) advances a timestamp by a duration.
func ValueAdd(env *Environment, l, r Value) (Value, error) {
	switch lv := l.(type) {
	case NumberValue:
		switch rv := r.(type) {
		case NumberValue:
			sum, err := lv.Number.Add(rv.Number)
			if err != nil {
				return nil, opError(err, "+", l, r)
			}
			return NumberValue{sum}, nil
		case TimestampValue:
			return dateAddNumber(env.DateBridge, rv.Timestamp, lv.Number)
		}
	case TimestampValue:
		if rv, ok := r.(NumberValue); ok {
			return dateAddNumber(env.DateBridge, lv.Timestamp, rv.Number)
		}
		return nil, opError(fmt.Errorf("Operation is not defined"), "+", l, r)
	}
	return nil, opError(fmt.Errorf("Operation is not defined"), "+", l, r)
}

// ValueSub implements the "-" operator's dispatch over Value's two kinds.
func ValueSub(env *Environment, l, r Value) (Value, error) {
	switch lv := l.(type) {
	case NumberValue:
		if rv, ok := r.(NumberValue); ok {
			diff, err := lv.Number.Sub(rv.Number)
			if err != nil {
				return nil, opError(err, "-", l, r)
			}
			return NumberValue{diff}, nil
		}
		return nil, opError(fmt.Errorf("Operation is not defined"), "-", l, r)
	case TimestampValue:
		switch rv := r.(type) {
		case NumberValue:
			neg := rv.Number.Neg()
			return dateAddNumber(env.DateBridge, lv.Timestamp, neg)
		case TimestampValue:
			d := lv.Timestamp.Instant.Sub(rv.Timestamp.Instant)
			return NumberValue{env.DateBridge.FromDuration(d)}, nil
		}
	}
	return nil, opError(fmt.Errorf("Operation is not defined"), "-", l, r)
}

// ValueMul implements the "*" row: only defined for two Numbers.
func ValueMul(env *Environment, l, r Value) (Value, error) {
	lv, lok := l.(NumberValue)
	rv, rok := r.(NumberValue)
	if !lok || !rok {
		return nil, opError(fmt.Errorf("Operation is not defined"), "*", l, r)
	}
	return NumberValue{lv.Number.Mul(rv.Number)}, nil
}

// ValueDiv implements the "/" row: only defined for two Numbers.
func ValueDiv(env *Environment, l, r Value) (Value, error) {
	lv, lok := l.(NumberValue)
	rv, rok := r.(NumberValue)
	if !lok || !rok {
		return nil, opError(fmt.Errorf("Operation is not defined"), "/", l, r)
	}
	q, err := lv.Number.Div(rv.Number)
	if err != nil {
		return nil, opError(err, "/", l, r)
	}
	return NumberValue{q}, nil
}

// ValuePow implements the "^" row: only defined for two Numbers.
func ValuePow(env *Environment, l, r Value) (Value, error) {
	lv, lok := l.(NumberValue)
	rv, rok := r.(NumberValue)
	if !lok || !rok {
		return nil, opError(fmt.Errorf("Operation is not defined"), "^", l, r)
	}
	p, err := lv.Number.Pow(rv.Number)
	if err != nil {
		return nil, opError(err, "^", l, r)
	}
	return NumberValue{p}, nil
}

// ValueNeg implements unary negation: only defined for a Number.
func ValueNeg(env *Environment, v Value) (Value, error) {
	nv, ok := v.(NumberValue)
	if !ok {
		return nil, fmt.Errorf("Operation is not defined: -<%s>", ShowValue(env, v))
	}
	return NumberValue{nv.Number.Neg()}, nil
}

func dateAddNumber(bridge DateBridge, t Timestamp, n Number) (Value, error) {
	d, err := bridge.ToDuration(n)
	if err != nil {
		return nil, err
	}
	return TimestampValue{Timestamp{Instant: t.Instant.Add(d), OffsetSeconds: t.OffsetSeconds}}, nil
}
