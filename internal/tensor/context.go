package tensor

// Context owns the state every tensor construction needs: the Backend that
// computes array payloads and the IDAllocator that names graph nodes.
//
// Derived tensors are built by the Context of their receiver. Tensors from
// different contexts may be combined, but identities are only unique within
// one allocator; share an allocator via WithIDAllocator when that matters.
//
// Example:
//
//	ctx := tensor.NewContext(cpu.New(cpu.Config{Seed: 42}))
//	a, _ := ctx.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, true)
//	b, _ := ctx.Randn(tensor.Shape{2, 2}, false)
//	c, err := a.Add(b)
type Context struct {
	backend Backend
	ids     *IDAllocator
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithIDAllocator makes the Context draw identities from a.
// Passing nil has no effect.
func WithIDAllocator(a *IDAllocator) ContextOption {
	return func(c *Context) {
		if a != nil {
			c.ids = a
		}
	}
}

// NewContext creates a Context computing with backend b and a private
// IDAllocator.
func NewContext(b Backend, opts ...ContextOption) *Context {
	c := &Context{
		backend: b,
		ids:     NewIDAllocator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Backend returns the computation backend.
func (c *Context) Backend() Backend {
	return c.backend
}

// IDs returns the identity allocator.
func (c *Context) IDs() *IDAllocator {
	return c.ids
}

// New wraps raw and its provenance into a freshly identified Tensor.
//
// New performs no validation: it is the constructor every operation uses to
// finalize a result, and op must already be consistent with raw's shape.
// Leaves pass a nil op.
func (c *Context) New(raw *RawTensor, op Operator, requiresGrad bool) *Tensor {
	return &Tensor{
		id:           c.ids.Next(),
		raw:          raw,
		requiresGrad: requiresGrad,
		op:           op,
		ctx:          c,
	}
}
