package cpu

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/matchbox-ml/matchbox/internal/parallel"
	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// MulScalar multiplies each element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	src := tensor.RawData(x)
	dst := make([]float64, len(src))
	parallel.For(len(dst), cpu.par, func(start, end int) {
		floats.ScaleTo(dst[start:end], scalar, src[start:end])
	})
	return newResult("mulscalar", x.Shape(), dst)
}

// Pow raises each element to exponent.
func (cpu *CPUBackend) Pow(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	return cpu.unary("pow", x, func(v float64) float64 {
		return math.Pow(v, exponent)
	})
}
