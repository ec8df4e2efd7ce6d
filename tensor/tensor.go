// Copyright 2026 The matchbox Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is an immutable node of a computation graph.
//
// Example:
//
//	x, _ := ctx.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, true)
//	y := x.MulScalar(2).ReLU()
//	fmt.Println(y.Op()) // ReLU activation
type Tensor = tensor.Tensor

// Context creates tensors: it owns the backend and the identity allocator.
type Context = tensor.Context

// ContextOption configures a Context.
type ContextOption = tensor.ContextOption

// IDAllocator hands out unique tensor identities. Safe for concurrent use.
type IDAllocator = tensor.IDAllocator

// Operator vocabulary

// OpKind names an operation.
type OpKind = tensor.OpKind

// Operation kinds.
const (
	OpAdd       OpKind = tensor.OpAdd
	OpSub       OpKind = tensor.OpSub
	OpMul       OpKind = tensor.OpMul
	OpDiv       OpKind = tensor.OpDiv
	OpMatMul    OpKind = tensor.OpMatMul
	OpScalarMul OpKind = tensor.OpScalarMul
	OpPow       OpKind = tensor.OpPow
	OpSum       OpKind = tensor.OpSum
	OpMean      OpKind = tensor.OpMean
	OpTranspose OpKind = tensor.OpTranspose
	OpBroadcast OpKind = tensor.OpBroadcast
	OpSigmoid   OpKind = tensor.OpSigmoid
	OpReLU      OpKind = tensor.OpReLU
)

// Operator records how a derived tensor was produced. Implementations are
// *BinaryOp, *ScalarOp, *DimsOp and *UnaryOp.
type Operator = tensor.Operator

// BinaryOp is a tensor-tensor operation.
type BinaryOp = tensor.BinaryOp

// ScalarOp is a tensor-scalar operation.
type ScalarOp = tensor.ScalarOp

// DimsOp is a unary operation with an axes or shape argument.
type DimsOp = tensor.DimsOp

// UnaryOp is a pure unary operation.
type UnaryOp = tensor.UnaryOp

// Errors

// ShapeMismatchError reports incompatible operand shapes.
type ShapeMismatchError = tensor.ShapeMismatchError

// BroadcastError reports a shape that cannot be broadcast into a target.
type BroadcastError = tensor.BroadcastError

// AxisError reports an invalid axis argument.
type AxisError = tensor.AxisError

// Error kinds. Use errors.Is.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrBroadcast     = tensor.ErrBroadcast
	ErrInvalidAxis   = tensor.ErrInvalidAxis
)

// Construction

// NewContext creates a Context computing with backend b.
//
// Example:
//
//	ctx := tensor.NewContext(cpu.New(cpu.Config{}))
func NewContext(b Backend, opts ...ContextOption) *Context {
	return tensor.NewContext(b, opts...)
}

// WithIDAllocator makes a Context draw identities from a shared allocator,
// keeping IDs unique across contexts.
//
// Example:
//
//	ids := tensor.NewIDAllocator()
//	cpuCtx := tensor.NewContext(cpu.New(cpu.Config{}), tensor.WithIDAllocator(ids))
func WithIDAllocator(a *IDAllocator) ContextOption {
	return tensor.WithIDAllocator(a)
}

// NewIDAllocator creates an allocator whose first identity is 1.
func NewIDAllocator() *IDAllocator {
	return tensor.NewIDAllocator()
}

// ParseOpKind returns the OpKind with the given name.
func ParseOpKind(s string) (OpKind, bool) {
	return tensor.ParseOpKind(s)
}

// Graph traversal

// Walk visits the tree rooted at root in pre-order. Returning false from fn
// skips the node's operands.
func Walk(root *Tensor, fn func(node *Tensor, depth int) bool) {
	tensor.Walk(root, fn)
}

// TopologicalOrder returns every distinct node reachable from root, operands
// first and root last.
func TopologicalOrder(root *Tensor) []*Tensor {
	return tensor.TopologicalOrder(root)
}

// Leaves returns the distinct leaves reachable from root.
func Leaves(root *Tensor) []*Tensor {
	return tensor.Leaves(root)
}
