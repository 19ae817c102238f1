// Package engine implements scalar reverse-mode automatic differentiation.
//
// A Value is a node in an append-only expression DAG. Every arithmetic or
// activation call produces a new node that records its operands and the
// operation that produced it; calling Backward on a node then propagates
// ∂(node)/∂(x) into every value x that participated in the computation.
//
// Architecture:
//   - Value: scalar node holding forward data, accumulated gradient,
//     operand references and an operation tag
//   - Op: tag selecting the local derivative rule (no per-node closures)
//   - Backward: topological sort + reverse walk applying the chain rule
//
// Usage:
//
//	x := engine.New(-2.0)
//	y := engine.New(3.0)
//	z := x.Mul(y).Add(x.ReLU())
//
//	z.Backward()
//	fmt.Println(x.Grad()) // dz/dx = 3.0
//	fmt.Println(y.Grad()) // dz/dy = -2.0
//
// Gradients accumulate across backward passes and are never reset by the
// engine itself; callers (typically a parameter collection such as
// nn.Module) zero them between independent passes.
package engine

import (
	"fmt"
	"math"
)

// Value is a scalar node in an expression graph.
//
// A Value records how it was derived: leaf values have no operands and
// carry OpNone; derived values reference one or two operand nodes and the
// operation that combined them. The graph is a DAG, not a tree: a node may
// appear as an operand of any number of downstream nodes, and the backward
// pass visits it exactly once regardless.
//
// The forward data of a derived value is fixed at construction. SetData
// exists only so optimizers can update leaf parameters between passes.
type Value struct {
	data  float64
	grad  float64
	prev  []*Value // operands, fixed at construction; nil for leaves
	op    Op
	pow   float64 // exponent, set when op == OpPow
	label string
}

// New creates a leaf value.
//
// No validation is performed on data: NaN and Inf are accepted and
// propagate through arithmetic with ordinary floating-point semantics.
func New(data float64) *Value {
	return &Value{data: data}
}

// NewWithLabel creates a leaf value carrying a display name.
// The label never affects computation; it exists for debugging and
// graph rendering.
func NewWithLabel(data float64, label string) *Value {
	return &Value{data: data, label: label}
}

// Data returns the forward-computed scalar result.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the scalar data.
//
// Intended for optimizers updating leaf parameters between backward
// passes. Calling it on an interior node desynchronizes the node from its
// operands; derived values are not recomputed.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient ∂(root)/∂(v) from the most recent
// backward pass (or passes: gradients are additive until reset).
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad overwrites the gradient accumulator.
//
// Intended for the parameter-collection layer resetting gradients to zero
// between backward passes; the engine never resets gradients itself.
func (v *Value) SetGrad(grad float64) {
	v.grad = grad
}

// Label returns the display name, or "" if none was set.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the display name.
func (v *Value) SetLabel(label string) {
	v.label = label
}

// Operation returns the tag of the operation that produced this value.
// Leaf values return OpNone.
func (v *Value) Operation() Op {
	return v.op
}

// Exponent returns the exponent of a Pow node. Zero for all other tags.
func (v *Value) Exponent() float64 {
	return v.pow
}

// Operands returns a copy of the operand list. Leaf values return nil.
// The returned slice is a read-only view for graph inspection; mutating
// it does not affect the graph.
func (v *Value) Operands() []*Value {
	if v.prev == nil {
		return nil
	}
	out := make([]*Value, len(v.prev))
	copy(out, v.prev)
	return out
}

// String returns a debug representation of the value.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(data=%g, grad=%g, label=%q)", v.data, v.grad, v.label)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
}

// Add returns a new value holding v + other.
//
// Backward rule: d(a+b)/da = 1, d(a+b)/db = 1, so the output gradient
// flows unchanged to both operands.
func (v *Value) Add(other *Value) *Value {
	return &Value{
		data: v.data + other.data,
		prev: []*Value{v, other},
		op:   OpAdd,
	}
}

// Mul returns a new value holding v * other.
//
// Backward rule: d(a*b)/da = b, d(a*b)/db = a.
func (v *Value) Mul(other *Value) *Value {
	return &Value{
		data: v.data * other.data,
		prev: []*Value{v, other},
		op:   OpMul,
	}
}

// Pow returns a new value holding v raised to the constant power p.
//
// The exponent is a plain number, never another Value; raising a value to
// a value-valued power is not supported. p may be negative or fractional.
//
// Backward rule: d(a^p)/da = p * a^(p-1).
func (v *Value) Pow(p float64) *Value {
	return &Value{
		data: math.Pow(v.data, p),
		prev: []*Value{v},
		op:   OpPow,
		pow:  p,
	}
}

// ReLU returns a new value holding max(0, v).
//
// Backward rule: d(relu(a))/da = 1 if a > 0, else 0. The test is strictly
// greater-than: at exactly zero the gradient is 0.
func (v *Value) ReLU() *Value {
	data := 0.0
	if v.data > 0 {
		data = v.data
	}
	return &Value{
		data: data,
		prev: []*Value{v},
		op:   OpReLU,
	}
}

// Neg returns -v, implemented as v * -1.
func (v *Value) Neg() *Value {
	return v.Mul(New(-1))
}

// Sub returns v - other, implemented as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Div returns v / other, implemented as v * other^-1.
//
// Division by zero is not guarded: other.Data() == 0 produces ±Inf (or
// NaN), consistent with floating-point semantics. Callers wanting an
// explicit error must check the divisor themselves.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}
