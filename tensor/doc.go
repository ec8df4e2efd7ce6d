// Copyright 2026 The matchbox Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides immutable float64 tensors that record the
// computation graph producing them.
//
// # Overview
//
// Every Tensor is a node of a directed acyclic graph:
//   - Leaves are created directly (FromSlice, Randn, RandUniform, Full, ...)
//   - Derived tensors keep a reference to the Operator that produced them
//     and, through it, to their operands
//   - Each tensor has a unique ID and a requires-grad flag that derived
//     tensors inherit from their operands
//
// Tensors are never modified after construction. Operations return new
// tensors and leave their operands untouched.
//
// # Basic Usage
//
//	import (
//	    "github.com/matchbox-ml/matchbox/backend/cpu"
//	    "github.com/matchbox-ml/matchbox/tensor"
//	)
//
//	func main() {
//	    ctx := tensor.NewContext(cpu.New(cpu.Config{Seed: 42}))
//
//	    a, _ := ctx.FromSlice([]float64{1, 2, -2, 1}, tensor.Shape{2, 2}, true)
//	    b, _ := ctx.FromSlice([]float64{2, -5, 1, 6}, tensor.Shape{2, 2}, false)
//
//	    c, err := a.Add(b) // [3, -3, -1, 7]
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    c.PrintTree(os.Stdout)
//	}
//
// Output:
//
//	tensor id: 3, use grad: true, shape: [2 2] with op: Add
//	    tensor id: 1, use grad: true, shape: [2 2]
//	    tensor id: 2, use grad: false, shape: [2 2]
//
// # Shapes
//
// Element-wise operations (Add, Sub, Mul, Div) require identical shapes.
// There is no implicit broadcasting: expand an operand with BroadcastTo
// first. MatMul contracts the last two axes of operands of equal rank with
// identical batch dimensions.
//
// # Errors
//
// Shape problems are reported as *ShapeMismatchError, *BroadcastError or
// *AxisError. Test for a kind with errors.Is against ErrShapeMismatch,
// ErrBroadcast or ErrInvalidAxis. Failures of the backend during leaf
// construction are returned wrapped and keep their own identity.
//
// # Concurrency
//
// Tensors are immutable and safe to share between goroutines. A Context may
// be used concurrently: identities come from an atomic counter.
package tensor
