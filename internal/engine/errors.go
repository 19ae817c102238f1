package engine

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidOperand  = errors.New("operand is not a Value or numeric literal")
	ErrInvalidExponent = errors.New("exponent is not a numeric constant")
)

// OperandError reports an operand that is neither a *Value nor a type
// convertible to a numeric literal. It wraps ErrInvalidOperand for
// errors.Is matching.
type OperandError struct {
	Op      string // operation that rejected the operand, e.g. "add"
	Operand any    // the offending operand
}

// Error implements the error interface.
func (e *OperandError) Error() string {
	return fmt.Sprintf("%s: operand of type %T is not a Value or numeric literal", e.Op, e.Operand)
}

// Unwrap returns ErrInvalidOperand.
func (e *OperandError) Unwrap() error {
	return ErrInvalidOperand
}

// ExponentError reports a non-numeric exponent passed to Pow. It wraps
// ErrInvalidExponent for errors.Is matching.
type ExponentError struct {
	Exponent any // the offending exponent
}

// Error implements the error interface.
func (e *ExponentError) Error() string {
	return fmt.Sprintf("pow: exponent of type %T is not a numeric constant", e.Exponent)
}

// Unwrap returns ErrInvalidExponent.
func (e *ExponentError) Unwrap() error {
	return ErrInvalidExponent
}
