// Copyright 2025 The GoGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine exposes the scalar reverse-mode autodiff engine.
//
// A Value is a node in an expression DAG. Building expressions records the
// graph; Backward propagates the output gradient to every participating
// value.
//
//	x := engine.New(-2.0)
//	y := engine.New(3.0)
//	z := x.Mul(y).Add(x.ReLU())
//	z.Backward()
//	// x.Grad() == 3.0, y.Grad() == -2.0
package engine

import "github.com/gograd-ml/gograd/internal/engine"

// Value is a scalar node in an expression graph.
type Value = engine.Value

// Op identifies the operation that produced a Value.
type Op = engine.Op

// Operation tags.
const (
	OpNone = engine.OpNone
	OpAdd  = engine.OpAdd
	OpMul  = engine.OpMul
	OpPow  = engine.OpPow
	OpReLU = engine.OpReLU
)

// Common errors.
var (
	ErrInvalidOperand  = engine.ErrInvalidOperand
	ErrInvalidExponent = engine.ErrInvalidExponent
)

// OperandError reports an operand that is neither a *Value nor a numeric
// literal.
type OperandError = engine.OperandError

// ExponentError reports a non-numeric exponent passed to Pow.
type ExponentError = engine.ExponentError

// New creates a leaf value.
func New(data float64) *Value {
	return engine.New(data)
}

// NewWithLabel creates a leaf value carrying a display name.
func NewWithLabel(data float64, label string) *Value {
	return engine.NewWithLabel(data, label)
}

// Wrap normalizes a *Value or numeric literal into a *Value.
func Wrap(x any) (*Value, error) {
	return engine.Wrap(x)
}

// Add returns a + b, wrapping bare numerics into leaves.
func Add(a, b any) (*Value, error) {
	return engine.Add(a, b)
}

// Sub returns a - b, wrapping bare numerics into leaves.
func Sub(a, b any) (*Value, error) {
	return engine.Sub(a, b)
}

// Mul returns a * b, wrapping bare numerics into leaves.
func Mul(a, b any) (*Value, error) {
	return engine.Mul(a, b)
}

// Div returns a / b, wrapping bare numerics into leaves.
func Div(a, b any) (*Value, error) {
	return engine.Div(a, b)
}

// Pow returns base raised to a numeric constant exponent.
func Pow(base, exponent any) (*Value, error) {
	return engine.Pow(base, exponent)
}

// Neg returns -a, wrapping a bare numeric into a leaf.
func Neg(a any) (*Value, error) {
	return engine.Neg(a)
}

// ReLU returns max(0, a), wrapping a bare numeric into a leaf.
func ReLU(a any) (*Value, error) {
	return engine.ReLU(a)
}
