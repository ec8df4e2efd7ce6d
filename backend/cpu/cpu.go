// Copyright 2026 The matchbox Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/matchbox-ml/matchbox/internal/backend/cpu"
	"github.com/matchbox-ml/matchbox/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend computes every operation in pure Go, using gonum for
// vector kernels, matrix multiplication and random sampling.
type Backend = internalcpu.CPUBackend

// Config configures a Backend.
type Config = internalcpu.Config

// ErrInvalidDistribution is returned by the random constructors when the
// distribution parameters are rejected.
var ErrInvalidDistribution = internalcpu.ErrInvalidDistribution

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/matchbox-ml/matchbox/backend/cpu"
//	    "github.com/matchbox-ml/matchbox/tensor"
//	)
//
//	func main() {
//	    ctx := tensor.NewContext(cpu.New(cpu.Config{Seed: 42}))
//	    x, _ := ctx.Zeros(tensor.Shape{2, 3}, false)
//	}
func New(cfg Config) *Backend {
	return internalcpu.New(cfg)
}
