package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds raised by tensor operations. Use errors.Is to test for a kind and
// errors.As to recover the structured details.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrBroadcast     = errors.New("broadcast failure")
	ErrInvalidAxis   = errors.New("invalid axis")
)

// ShapeMismatchError is returned when the operand shapes of an operation are
// incompatible.
type ShapeMismatchError struct {
	Op  OpKind // Operation that rejected the operands
	Lhs Shape  // Shape of the receiver
	Rhs Shape  // Shape of the other operand
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch during [%s] operation: shape %v of self does not match shape %v of other",
		e.Op, e.Lhs, e.Rhs)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// BroadcastError is returned when a shape cannot be broadcast into a target
// shape.
type BroadcastError struct {
	From Shape
	To   Shape
}

// Error implements the error interface.
func (e *BroadcastError) Error() string {
	return fmt.Sprintf("broadcast error: could not broadcast shape %v into shape %v", e.From, e.To)
}

// Is reports whether target is ErrBroadcast.
func (e *BroadcastError) Is(target error) bool {
	return target == ErrBroadcast
}

// AxisError is returned when an axis argument is out of range, repeated, or
// does not form a valid permutation.
type AxisError struct {
	Op     OpKind
	Axis   int    // Offending axis as given by the caller
	NDim   int    // Rank of the operand
	Reason string // "out of range", "duplicate", ...
}

// Error implements the error interface.
func (e *AxisError) Error() string {
	return fmt.Sprintf("invalid axis during [%s] operation: axis %d for %dD tensor: %s", e.Op, e.Axis, e.NDim, e.Reason)
}

// Is reports whether target is ErrInvalidAxis.
func (e *AxisError) Is(target error) bool {
	return target == ErrInvalidAxis
}
