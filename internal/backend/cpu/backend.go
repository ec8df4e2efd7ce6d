// Package cpu implements the CPU backend on top of gonum.
package cpu

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/matchbox-ml/matchbox/internal/parallel"
	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// Config configures a CPUBackend.
type Config struct {
	// Seed initializes the random number generator. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	// Workers bounds the goroutines used by large kernels. Zero uses one per
	// CPU; one runs every kernel on the calling goroutine.
	Workers int `yaml:"workers"`
}

// CPUBackend implements tensor operations on CPU.
//
// Kernels are pure functions of their inputs; the only mutable state is the
// random number generator, which is safe for concurrent use.
type CPUBackend struct {
	src *lockedSource
	par parallel.Config
}

// Compile-time check that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// New creates a new CPU backend.
func New(cfg Config) *CPUBackend {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64() //nolint:gosec // G404: ML uses math/rand intentionally
	}
	par := parallel.DefaultConfig()
	if cfg.Workers > 0 {
		par.Workers = cfg.Workers
	}
	return &CPUBackend{
		src: &lockedSource{src: rand.NewPCG(seed, seed>>1|1)},
		par: par,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// FromSlice copies data into a new tensor of the given shape.
func (cpu *CPUBackend) FromSlice(data []float64, shape tensor.Shape) (*tensor.RawTensor, error) {
	raw, err := tensor.NewRaw(shape, append([]float64(nil), data...))
	if err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	return raw, nil
}

// newResult wraps a freshly computed payload. The tensor layer validates
// shapes before calling a kernel, so failure here is an internal bug.
func newResult(op string, shape tensor.Shape, data []float64) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, data)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return raw
}

// lockedSource serializes access to a rand.Source.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

// Uint64 implements rand.Source.
func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}
