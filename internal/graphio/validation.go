package graphio

import (
	"fmt"

	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// MaxNodes limits the number of nodes accepted from a document.
const MaxNodes = 1_000_000

// Validate checks the structural consistency of the document:
//   - format and version are supported
//   - IDs are non-zero and unique
//   - every operand refers to an earlier node
//   - operations are known and have the expected operands and arguments
//   - exported values match their node's shape
//   - the root is the last node
//   - the checksum, if any, matches
func (d *Document) Validate() error {
	if d.Format != FormatName {
		return fmt.Errorf("%w: format %q", ErrInvalidFormat, d.Format)
	}
	if d.Version != FormatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, d.Version)
	}
	if len(d.Nodes) == 0 {
		return &ValidationError{Type: "empty_graph", Details: "document has no nodes"}
	}
	if len(d.Nodes) > MaxNodes {
		return &ValidationError{
			Type:    "too_many_nodes",
			Details: fmt.Sprintf("got %d, max %d", len(d.Nodes), MaxNodes),
		}
	}

	seen := make(map[uint64]bool, len(d.Nodes))
	for i := range d.Nodes {
		n := &d.Nodes[i]
		if n.ID == 0 {
			return &ValidationError{Type: "invalid_id", Details: fmt.Sprintf("node at index %d has id 0", i)}
		}
		if seen[n.ID] {
			return &ValidationError{Type: "duplicate_id", Node: n.ID, Details: "id appears more than once"}
		}
		if err := validateNode(n, seen); err != nil {
			return err
		}
		seen[n.ID] = true
	}

	if last := d.Nodes[len(d.Nodes)-1].ID; last != d.Root {
		if !seen[d.Root] {
			return &ValidationError{Type: "missing_root", Node: d.Root, Details: "root is not in the node list"}
		}
		return &ValidationError{
			Type:    "root_not_last",
			Node:    d.Root,
			Details: fmt.Sprintf("last node is %d", last),
		}
	}

	return ValidateChecksum(d)
}

// validateNode checks a single node against the nodes listed before it.
func validateNode(n *Node, earlier map[uint64]bool) error {
	if err := tensor.Shape(n.Shape).Validate(); err != nil {
		return &ValidationError{Type: "invalid_shape", Node: n.ID, Details: err.Error()}
	}
	if n.Values != nil && len(n.Values) != tensor.Shape(n.Shape).NumElements() {
		return &ValidationError{
			Type:    "values_mismatch",
			Node:    n.ID,
			Details: fmt.Sprintf("shape %v requires %d values, got %d", n.Shape, tensor.Shape(n.Shape).NumElements(), len(n.Values)),
		}
	}

	if n.IsLeaf() {
		if len(n.Operands) != 0 || n.Scalar != nil || len(n.Dims) != 0 {
			return &ValidationError{Type: "leaf_has_op_args", Node: n.ID, Details: "leaf nodes carry no operands or arguments"}
		}
		return nil
	}

	kind, ok := tensor.ParseOpKind(n.Op)
	if !ok {
		return &ValidationError{Type: "unknown_op", Node: n.ID, Details: fmt.Sprintf("operation %q", n.Op)}
	}
	if len(n.Operands) != kind.Arity() {
		return &ValidationError{
			Type:    "operand_count",
			Node:    n.ID,
			Details: fmt.Sprintf("%s takes %d operands, got %d", kind, kind.Arity(), len(n.Operands)),
		}
	}
	for _, id := range n.Operands {
		if !earlier[id] {
			return &ValidationError{
				Type:    "unknown_operand",
				Node:    n.ID,
				Details: fmt.Sprintf("operand %d is not listed before this node", id),
			}
		}
	}

	takesScalar := kind == tensor.OpScalarMul || kind == tensor.OpPow
	takesDims := kind == tensor.OpSum || kind == tensor.OpMean || kind == tensor.OpTranspose || kind == tensor.OpBroadcast
	if takesScalar != (n.Scalar != nil) {
		return &ValidationError{Type: "scalar_argument", Node: n.ID, Details: fmt.Sprintf("%s: scalar present = %t", kind, n.Scalar != nil)}
	}
	if !takesDims && len(n.Dims) != 0 {
		return &ValidationError{Type: "unexpected_dims", Node: n.ID, Details: fmt.Sprintf("%s takes no dims", kind)}
	}

	return nil
}
