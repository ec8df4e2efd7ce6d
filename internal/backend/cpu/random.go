package cpu

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// ErrInvalidDistribution is returned when sampling parameters are rejected.
var ErrInvalidDistribution = errors.New("invalid distribution parameters")

// RandNormal fills a tensor with samples from N(mean, std²).
func (cpu *CPUBackend) RandNormal(shape tensor.Shape, mean, std float64) (*tensor.RawTensor, error) {
	if !isFinite(mean) || !isFinite(std) || std <= 0 {
		return nil, fmt.Errorf("%w: normal(mean=%v, std=%v)", ErrInvalidDistribution, mean, std)
	}
	dist := distuv.Normal{Mu: mean, Sigma: std, Src: cpu.src}
	return sample("randnormal", shape, dist.Rand)
}

// RandUniform fills a tensor with samples from the uniform distribution on
// [low, high). The range must be non-empty and finite.
func (cpu *CPUBackend) RandUniform(shape tensor.Shape, low, high float64) (*tensor.RawTensor, error) {
	if !isFinite(low) || !isFinite(high) || low >= high {
		return nil, fmt.Errorf("%w: uniform[%v, %v)", ErrInvalidDistribution, low, high)
	}
	dist := distuv.Uniform{Min: low, Max: high, Src: cpu.src}
	return sample("randuniform", shape, dist.Rand)
}

// sample draws shape.NumElements() values from draw.
func sample(op string, shape tensor.Shape, draw func() float64) (*tensor.RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = draw()
	}

	raw, err := tensor.NewRaw(shape, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return raw, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
