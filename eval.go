package units

import "fmt"

// Eval reduces an expression tree to a Value against env, resolving
// identifiers through Lookup and dispatching operators to the matching
// Value arithmetic.
func Eval(env *Environment, e Expr) (Value, error) {
	switch n := e.(type) {
	case Literal:
		return evalLiteral(n)
	case Ident:
		return evalIdent(env, n)
	case Quoted:
		return NumberValue{NewNumber(ratOne(), Singleton(n.Name, 1))}, nil
	case DateLiteral:
		ts, err := env.DateBridge.Decode(n.Raw, env.DatePatterns)
		if err != nil {
			return nil, err
		}
		return TimestampValue{ts}, nil
	case Unary:
		return evalUnary(env, n)
	case Binary:
		return evalBinary(env, n)
	case Mul:
		return evalMul(env, n)
	case Equals:
		return Eval(env, n.R)
	case Suffix:
		return evalSuffix(env, n)
	case Call:
		return evalCall(env, n)
	case ErrorExpr:
		return nil, fmt.Errorf("%s", n.Msg)
	default:
		return nil, fmt.Errorf("unrecognized expression node %T", e)
	}
}

func evalLiteral(n Literal) (Value, error) {
	r, err := RatFromLiteral(n.IntPart, n.FracPart, n.ExpPart)
	if err != nil {
		return nil, err
	}
	return NumberValue{Scalar(r)}, nil
}

func evalIdent(env *Environment, n Ident) (Value, error) {
	if n.Name == "now" {
		return TimestampValue{env.DateBridge.Now()}, nil
	}
	num, err := env.Lookup(n.Name)
	if err != nil {
		return nil, err
	}
	return NumberValue{num}, nil
}

func evalUnary(env *Environment, n Unary) (Value, error) {
	v, err := Eval(env, n.X)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case '-':
		return ValueNeg(env, v)
	case '+':
		if _, ok := v.(NumberValue); !ok {
			return nil, fmt.Errorf("Operation is not defined: +<%s>", ShowValue(env, v))
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unrecognized unary operator %q", n.Op)
	}
}

func evalBinary(env *Environment, n Binary) (Value, error) {
	l, err := Eval(env, n.L)
	if err != nil {
		return nil, err
	}
	r, err := Eval(env, n.R)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case '+':
		return ValueAdd(env, l, r)
	case '-':
		return ValueSub(env, l, r)
	case '*':
		return ValueMul(env, l, r)
	case '/':
		return ValueDiv(env, l, r)
	case '^':
		return ValuePow(env, l, r)
	default:
		return nil, fmt.Errorf("unrecognized binary operator %q", n.Op)
	}
}

func evalMul(env *Environment, n Mul) (Value, error) {
	acc := Value(NumberValue{Scalar(ratOne())})
	for _, arg := range n.Args {
		v, err := Eval(env, arg)
		if err != nil {
			return nil, err
		}
		acc, err = ValueMul(env, acc, v)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func evalSuffix(env *Environment, n Suffix) (Value, error) {
	scale, ok := temperatureScales[n.Scale]
	if !ok {
		return nil, fmt.Errorf("unrecognized temperature scale %q", n.Scale)
	}
	operand, err := Eval(env, n.X)
	if err != nil {
		return nil, err
	}
	num, ok := operand.(NumberValue)
	if !ok || !num.Number.IsDimensionless() {
		return nil, fmt.Errorf("Temperature suffix requires a dimensionless operand")
	}
	// A missing scale unit or zero constant means the definitions file
	// itself is broken, not that the query is bad.
	scaleUnit, err := env.Lookup(scale.scale)
	if err != nil {
		panic(fmt.Sprintf("missing %s unit in definitions", scale.scale))
	}
	zero, err := env.Lookup(scale.zero)
	if err != nil {
		panic(fmt.Sprintf("missing %s constant in definitions", scale.zero))
	}
	scaled := num.Number.Mul(scaleUnit)
	result, err := scaled.Add(zero)
	if err != nil {
		return nil, err
	}
	return NumberValue{result}, nil
}

func evalCall(env *Environment, n Call) (Value, error) {
	if n.Name != "sqrt" {
		return nil, fmt.Errorf("Function not found: %s", n.Name)
	}
	if len(n.Args) != 1 {
		return nil, fmt.Errorf("sqrt expects exactly 1 argument, got %d", len(n.Args))
	}
	v, err := Eval(env, n.Args[0])
	if err != nil {
		return nil, err
	}
	num, ok := v.(NumberValue)
	if !ok {
		return nil, fmt.Errorf("sqrt argument must be a number")
	}
	if !num.Number.Units.DivisibleBy(2) {
		return nil, fmt.Errorf("sqrt requires every unit exponent to be even")
	}
	root, err := num.Number.Root(2)
	if err != nil {
		return nil, err
	}
	return NumberValue{root}, nil
}
