package cpu

import (
	"fmt"

	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// Transpose permutes the tensor's dimensions: output axis i is input axis
// axes[i]. axes must be a full permutation.
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim || seen[ax] {
			panic(fmt.Sprintf("transpose: invalid permutation %v for %dD tensor", axes, ndim))
		}
		seen[ax] = true
	}

	outShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		outShape[i] = shape[ax]
	}

	src := tensor.RawData(x)
	dst := make([]float64, len(src))
	inStrides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	for o := range dst {
		rem := o
		srcIdx := 0
		for i := 0; i < ndim; i++ {
			coord := rem / outStrides[i]
			rem %= outStrides[i]
			srcIdx += coord * inStrides[axes[i]]
		}
		dst[o] = src[srcIdx]
	}

	return newResult("transpose", outShape, dst)
}

// Expand broadcasts the tensor to a new shape.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	xShape := x.Shape()
	if !xShape.CanBroadcastTo(newShape) {
		panic(fmt.Sprintf("expand: cannot expand shape %v to %v", xShape, newShape))
	}

	src := tensor.RawData(x)
	dst := make([]float64, newShape.NumElements())
	outStrides := newShape.ComputeStrides()
	inStrides := broadcastStrides(xShape, newShape)
	for o := range dst {
		dst[o] = src[sourceIndex(o, outStrides, inStrides)]
	}

	return newResult("expand", newShape.Clone(), dst)
}

// broadcastStrides computes strides for reading inShape as if it had
// outShape. Padded and size-1 dimensions get stride 0.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()
	strides := make([]int, outDim)
	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}
	return strides
}

// sourceIndex maps a flat output index to the flat input index.
func sourceIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
