package engine

// Op identifies the operation that produced a Value and selects the local
// derivative rule applied during the backward pass. Derived operations
// (Neg, Sub, Div) are expressed in terms of these primitives and carry no
// tag of their own.
type Op int

const (
	// OpNone marks a leaf value with no operands.
	OpNone Op = iota
	// OpAdd marks a + b.
	OpAdd
	// OpMul marks a * b.
	OpMul
	// OpPow marks a raised to a constant power; the exponent is stored on
	// the value itself.
	OpPow
	// OpReLU marks max(0, a).
	OpReLU
)

// String returns the display form used by graph renderers. Pow renders as
// the bare operator; the exponent lives on the Value.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "**"
	case OpReLU:
		return "ReLU"
	default:
		return ""
	}
}
