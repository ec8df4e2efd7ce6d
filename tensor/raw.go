// Copyright 2026 The matchbox Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// RawTensor is the dense row-major float64 storage behind a Tensor.
//
// RawTensor provides:
//   - Shape and stride information via Shape(), Strides()
//   - Read access via Values() and At()
//   - Summary statistics via Mean() and exact comparison via Equal()
//
// Most users should use Tensor instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	v := raw.At(1, 2) // 6
type RawTensor = tensor.RawTensor

// NewRaw copies data into a RawTensor of the given shape.
//
// This is a low-level function. Most users should use Context.FromSlice.
func NewRaw(shape Shape, data []float64) (*RawTensor, error) {
	return tensor.NewRaw(shape, append([]float64(nil), data...))
}
