package graphio

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// Replay rebuilds the graph described by doc in ctx and returns its root.
//
// Leaves are created from their exported values, so doc must have been built
// WithValues (leaves with no elements need none). Derived nodes are
// recomputed by applying their operation; exported derived values are
// ignored. Each rebuilt node must reproduce its recorded shape and gradient
// flag. Rebuilt tensors receive fresh IDs from ctx.
func Replay(ctx *tensor.Context, doc *Document) (*tensor.Tensor, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	built := make(map[uint64]*tensor.Tensor, len(doc.Nodes))
	for i := range doc.Nodes {
		n := &doc.Nodes[i]

		var (
			t   *tensor.Tensor
			err error
		)
		if n.IsLeaf() {
			t, err = replayLeaf(ctx, n)
		} else {
			t, err = replayOp(n, built)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "replay node %d", n.ID)
		}

		if !t.Shape().Equal(n.Shape) {
			return nil, &ValidationError{
				Type:    "shape_mismatch",
				Node:    n.ID,
				Details: fmt.Sprintf("recorded shape %v, replayed shape %v", n.Shape, t.Shape()),
			}
		}
		if t.RequiresGrad() != n.RequiresGrad {
			return nil, &ValidationError{
				Type:    "grad_mismatch",
				Node:    n.ID,
				Details: fmt.Sprintf("recorded requires_grad %t, replayed %t", n.RequiresGrad, t.RequiresGrad()),
			}
		}
		built[n.ID] = t
	}

	return built[doc.Root], nil
}

func replayLeaf(ctx *tensor.Context, n *Node) (*tensor.Tensor, error) {
	shape := tensor.Shape(n.Shape)
	if n.Values == nil && shape.NumElements() != 0 {
		return nil, ErrMissingValues
	}
	return ctx.FromSlice(n.Values, shape, n.RequiresGrad)
}

func replayOp(n *Node, built map[uint64]*tensor.Tensor) (*tensor.Tensor, error) {
	kind, _ := tensor.ParseOpKind(n.Op) // checked by Validate
	x := built[n.Operands[0]]

	switch kind {
	case tensor.OpAdd:
		return x.Add(built[n.Operands[1]])
	case tensor.OpSub:
		return x.Sub(built[n.Operands[1]])
	case tensor.OpMul:
		return x.Mul(built[n.Operands[1]])
	case tensor.OpDiv:
		return x.Div(built[n.Operands[1]])
	case tensor.OpMatMul:
		return x.MatMul(built[n.Operands[1]])
	case tensor.OpScalarMul:
		return x.MulScalar(*n.Scalar), nil
	case tensor.OpPow:
		return x.Pow(*n.Scalar), nil
	case tensor.OpSum:
		return x.Sum(n.Dims...)
	case tensor.OpMean:
		return x.Mean(n.Dims...)
	case tensor.OpTranspose:
		return x.Transpose(n.Dims...)
	case tensor.OpBroadcast:
		return x.BroadcastTo(tensor.Shape(n.Dims))
	case tensor.OpSigmoid:
		return x.Sigmoid(), nil
	case tensor.OpReLU:
		return x.ReLU(), nil
	default:
		return nil, fmt.Errorf("unsupported operation %s", kind)
	}
}
