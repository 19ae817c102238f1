package engine

// Coercing entry points: package-level counterparts of the Value methods
// that accept either a *Value or a bare numeric literal on either side.
// Normalization happens once, at entry; beyond that single step no type
// inspection occurs. Non-commutative forms compute the literal on the
// side it was written: Sub(3, x) is leaf(3) - x, not x - leaf(3).

// Wrap normalizes x into a *Value. A *Value passes through unchanged; any
// Go numeric type becomes a fresh leaf. Anything else returns an
// *OperandError.
func Wrap(x any) (*Value, error) {
	return wrapOperand("wrap", x)
}

// wrapOperand is Wrap with the rejecting operation's name attached to the
// error.
func wrapOperand(op string, x any) (*Value, error) {
	if v, ok := x.(*Value); ok {
		return v, nil
	}
	if f, ok := toFloat(x); ok {
		return New(f), nil
	}
	return nil, &OperandError{Op: op, Operand: x}
}

// toFloat converts any Go numeric type to float64.
func toFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Add returns a + b, wrapping bare numerics into leaves.
func Add(a, b any) (*Value, error) {
	av, err := wrapOperand("add", a)
	if err != nil {
		return nil, err
	}
	bv, err := wrapOperand("add", b)
	if err != nil {
		return nil, err
	}
	return av.Add(bv), nil
}

// Sub returns a - b, wrapping bare numerics into leaves. The literal
// stays on its written side: Sub(3, x) computes leaf(3) - x.
func Sub(a, b any) (*Value, error) {
	av, err := wrapOperand("sub", a)
	if err != nil {
		return nil, err
	}
	bv, err := wrapOperand("sub", b)
	if err != nil {
		return nil, err
	}
	return av.Sub(bv), nil
}

// Mul returns a * b, wrapping bare numerics into leaves.
func Mul(a, b any) (*Value, error) {
	av, err := wrapOperand("mul", a)
	if err != nil {
		return nil, err
	}
	bv, err := wrapOperand("mul", b)
	if err != nil {
		return nil, err
	}
	return av.Mul(bv), nil
}

// Div returns a / b, wrapping bare numerics into leaves. The literal
// stays on its written side: Div(3, x) computes leaf(3) / x. Division by
// zero is not guarded; see Value.Div.
func Div(a, b any) (*Value, error) {
	av, err := wrapOperand("div", a)
	if err != nil {
		return nil, err
	}
	bv, err := wrapOperand("div", b)
	if err != nil {
		return nil, err
	}
	return av.Div(bv), nil
}

// Pow returns base raised to exponent. The base may be a *Value or a
// numeric literal; the exponent must be a plain numeric constant. A
// *Value exponent (or any non-numeric type) returns an *ExponentError:
// value-to-the-power-of-value is not supported.
func Pow(base, exponent any) (*Value, error) {
	bv, err := wrapOperand("pow", base)
	if err != nil {
		return nil, err
	}
	p, ok := toFloat(exponent)
	if !ok {
		return nil, &ExponentError{Exponent: exponent}
	}
	return bv.Pow(p), nil
}

// Neg returns -a, wrapping a bare numeric into a leaf.
func Neg(a any) (*Value, error) {
	av, err := wrapOperand("neg", a)
	if err != nil {
		return nil, err
	}
	return av.Neg(), nil
}

// ReLU returns max(0, a), wrapping a bare numeric into a leaf.
func ReLU(a any) (*Value, error) {
	av, err := wrapOperand("relu", a)
	if err != nil {
		return nil, err
	}
	return av.ReLU(), nil
}
