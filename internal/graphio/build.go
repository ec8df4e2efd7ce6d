package graphio

import (
	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// BuildOption configures Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	values     bool
	leavesOnly bool
}

// WithValues includes node payloads in the document and stamps a checksum.
// With leavesOnly set, only leaf payloads are exported; derived values can be
// recomputed by Replay.
func WithValues(leavesOnly bool) BuildOption {
	return func(o *buildOptions) {
		o.values = true
		o.leavesOnly = leavesOnly
	}
}

// Build flattens the graph rooted at root into a Document.
func Build(root *tensor.Tensor, opts ...BuildOption) *Document {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	order := tensor.TopologicalOrder(root)
	doc := &Document{
		Format:  FormatName,
		Version: FormatVersion,
		Root:    root.ID(),
		Nodes:   make([]Node, 0, len(order)),
	}

	for _, t := range order {
		node := Node{
			ID:           t.ID(),
			Shape:        []int(t.Shape()),
			RequiresGrad: t.RequiresGrad(),
		}
		if op := t.Op(); op != nil {
			describeOp(&node, op)
		}
		if o.values && (!o.leavesOnly || t.IsLeaf()) {
			node.Values = t.Values()
		}
		doc.Nodes = append(doc.Nodes, node)
	}

	if o.values {
		doc.Checksum = ComputeChecksum(doc.Nodes)
	}
	return doc
}

// describeOp records the operator of a derived tensor on node.
func describeOp(node *Node, op tensor.Operator) {
	node.Op = op.Kind().String()
	for _, operand := range op.Operands() {
		node.Operands = append(node.Operands, operand.ID())
	}

	switch op := op.(type) {
	case *tensor.ScalarOp:
		scalar := op.Scalar()
		node.Scalar = &scalar
	case *tensor.DimsOp:
		node.Dims = op.Dims()
	}
}
