package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/matchbox-ml/matchbox/internal/parallel"
	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// MatMul performs matrix multiplication over the last two axes.
//
//	2D:      (M, K) @ (K, N) -> (M, N)
//	batched: (B..., M, K) @ (B..., K, N) -> (B..., M, N)
//
// Each matrix of the batch is multiplied with gonum/mat, writing straight into
// the result buffer. Batches are distributed across workers.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	nd := len(aShape)
	if nd < 2 || len(bShape) != nd || !aShape[:nd-2].Equal(bShape[:nd-2]) || aShape[nd-1] != bShape[nd-2] {
		panic(fmt.Sprintf("matmul: shape mismatch %v @ %v", aShape, bShape))
	}

	m, k, n := aShape[nd-2], aShape[nd-1], bShape[nd-1]
	batch := aShape[:nd-2].NumElements()

	outShape := append(aShape[:nd-2].Clone(), m, n)
	out := make([]float64, batch*m*n)

	// gonum rejects zero-sized matrices; the result is then empty or all zeros.
	if m == 0 || n == 0 || k == 0 {
		return newResult("matmul", outShape, out)
	}

	aData, bData := tensor.RawData(a), tensor.RawData(b)
	batchCfg := parallel.Config{Workers: cpu.par.Workers, MinChunkSize: 1}
	parallel.Each(batch, batchCfg, func(i int) {
		am := mat.NewDense(m, k, aData[i*m*k:(i+1)*m*k])
		bm := mat.NewDense(k, n, bData[i*k*n:(i+1)*k*n])
		cm := mat.NewDense(m, n, out[i*m*n:(i+1)*m*n])
		cm.Mul(am, bm)
	})

	return newResult("matmul", outShape, out)
}
