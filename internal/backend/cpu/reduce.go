package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// Sum sums tensor elements over the given axes, removing them from the shape.
//
// Example:
//
//	x := [[1, 2, 3], [4, 5, 6]]   // shape [2, 3]
//	backend.Sum(x, []int{0})      // [5, 7, 9], shape [3]
//	backend.Sum(x, []int{0, 1})   // 21, shape []
func (cpu *CPUBackend) Sum(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	out, outShape, _ := sumAxes("sum", x, axes)
	return newResult("sum", outShape, out)
}

// Mean averages tensor elements over the given axes, removing them from the
// shape. Reducing over a zero-sized axis yields NaN.
func (cpu *CPUBackend) Mean(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	out, outShape, count := sumAxes("mean", x, axes)
	divisor := float64(count)
	for i := range out {
		out[i] /= divisor
	}
	return newResult("mean", outShape, out)
}

// sumAxes reduces x by summation over axes. It returns the payload, the
// result shape and the number of input elements folded into each output.
func sumAxes(op string, x *tensor.RawTensor, axes []int) ([]float64, tensor.Shape, int) {
	shape := x.Shape()
	ndim := len(shape)

	reduced := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim || reduced[ax] {
			panic(fmt.Sprintf("%s: invalid axes %v for %dD tensor", op, axes, ndim))
		}
		reduced[ax] = true
	}

	// keepShape has reduced axes set to 1: its row-major offsets equal those
	// of the output shape with the axes removed.
	keepShape := shape.Clone()
	outShape := make(tensor.Shape, 0, ndim)
	count := 1
	for d := 0; d < ndim; d++ {
		if reduced[d] {
			keepShape[d] = 1
			count *= shape[d]
		} else {
			outShape = append(outShape, shape[d])
		}
	}

	data := tensor.RawData(x)
	out := make([]float64, outShape.NumElements())

	// Full reduction
	if len(outShape) == 0 {
		out[0] = floats.Sum(data)
		return out, outShape, count
	}

	strides := shape.ComputeStrides()
	keepStrides := keepShape.ComputeStrides()
	for i, v := range data {
		outIdx := 0
		temp := i
		for d := 0; d < ndim; d++ {
			coord := temp / strides[d]
			temp %= strides[d]
			if !reduced[d] {
				outIdx += coord * keepStrides[d]
			}
		}
		out[outIdx] += v
	}

	return out, outShape, count
}
