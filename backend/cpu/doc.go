// Copyright 2026 The matchbox Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - gonum/floats kernels for element-wise arithmetic
//   - gonum/mat matrix multiplication, batched over leading axes
//   - gonum/stat/distuv sampling from a seeded PCG source
//
// # Basic Usage
//
//	import (
//	    "github.com/matchbox-ml/matchbox/backend/cpu"
//	    "github.com/matchbox-ml/matchbox/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New(cpu.Config{Seed: 42})
//	    ctx := tensor.NewContext(backend)
//
//	    w, _ := ctx.Randn(tensor.Shape{784, 128}, true)
//	    b, _ := ctx.RandUniform(-0.1, 0.1, tensor.Shape{128}, true)
//	}
//
// # Randomness
//
// A zero Seed draws a random seed. Backends created with the same non-zero
// seed produce the same sequence of random tensors, provided tensors are
// requested in the same order. The generator is guarded by a mutex, so a
// Backend may be shared between goroutines.
package cpu
