package units

import "fmt"

// EvalUnitName is a second pass over an expression tree, independent of
// Eval: it produces the signed-exponent map of the right-hand side of a
// symbolic conversion over names exactly as written, without resolving
// them through Lookup. The representation is a Vector, but keyed by
// written names rather than base-dimension names.
func EvalUnitName(env *Environment, e Expr) (Vector, error) {
	switch n := e.(type) {
	case Equals:
		ident, ok := n.L.(Ident)
		if !ok {
			return nil, fmt.Errorf("Expected identifier, got %s", n.L.String())
		}
		return Singleton(ident.Name, 1), nil
	case Call:
		return nil, fmt.Errorf("Calls are not allowed in the right hand side of conversions")
	case Ident:
		return Singleton(n.Name, 1), nil
	case Quoted:
		return Singleton(n.Name, 1), nil
	case Literal:
		if n.FracPart == "" && n.ExpPart == "" && (n.IntPart == "1" || n.IntPart == "-1") {
			return NewVector(), nil
		}
		return nil, fmt.Errorf("Constants are not allowed in the right hand side of conversions")
	case Binary:
		return evalUnitNameBinary(env, n)
	case Mul:
		acc, err := EvalUnitName(env, n.Args[0])
		if err != nil {
			return nil, err
		}
		for _, arg := range n.Args[1:] {
			b, err := EvalUnitName(env, arg)
			if err != nil {
				return nil, err
			}
			acc = acc.Add(b)
		}
		return acc, nil
	case Unary:
		return EvalUnitName(env, n.X)
	case Suffix:
		return nil, fmt.Errorf("Temperature conversions must not be compound units")
	case DateLiteral:
		return nil, fmt.Errorf("Dates are not allowed in the right hand side of conversions")
	case ErrorExpr:
		return nil, fmt.Errorf("%s", n.Msg)
	default:
		return nil, fmt.Errorf("unrecognized expression node %T", e)
	}
}

func evalUnitNameBinary(env *Environment, n Binary) (Vector, error) {
	switch n.Op {
	case '/':
		left, err := EvalUnitName(env, n.L)
		if err != nil {
			return nil, err
		}
		right, err := EvalUnitName(env, n.R)
		if err != nil {
			return nil, err
		}
		return left.Add(right.Neg()), nil
	case '^':
		res, err := Eval(env, n.R)
		if err != nil {
			return nil, err
		}
		num, ok := res.(NumberValue)
		if !ok {
			return nil, fmt.Errorf("Exponents must be numbers")
		}
		if !num.Number.IsDimensionless() {
			return nil, fmt.Errorf("Exponents must be dimensionless")
		}
		if !num.Number.Mag.IsInt() {
			return nil, fmt.Errorf("Exponents must be integers")
		}
		k := int(num.Number.Mag.Num().Int64())
		left, err := EvalUnitName(env, n.L)
		if err != nil {
			return nil, err
		}
		return left.Scale(k), nil
	case '+', '-':
		left, err := EvalUnitName(env, n.L)
		if err != nil {
			return nil, err
		}
		right, err := EvalUnitName(env, n.R)
		if err != nil {
			return nil, err
		}
		if !left.Equal(right) {
			return nil, fmt.Errorf("Add of values with differing dimensions is not meaningful")
		}
		return left, nil
	default:
		return nil, fmt.Errorf("unrecognized operator %q in conversion right hand side", n.Op)
	}
}
