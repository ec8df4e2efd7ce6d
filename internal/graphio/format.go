// Package graphio exports computation graphs to YAML documents and replays
// them.
//
// A Document lists every distinct node reachable from a root tensor in
// topological order: each node appears after all of its operands and the
// root is the last node.
//
// Example document:
//
//	format: matchbox-graph
//	version: 1
//	root: 3
//	nodes:
//	  - id: 1
//	    shape: [2, 2]
//	    requires_grad: true
//	  - id: 2
//	    shape: [2, 2]
//	    requires_grad: false
//	  - id: 3
//	    shape: [2, 2]
//	    requires_grad: true
//	    op: Add
//	    operands: [1, 2]
package graphio

// Format constants.
const (
	FormatName    = "matchbox-graph"
	FormatVersion = 1
)

// Document is the serialized form of a computation graph.
type Document struct {
	Format   string `yaml:"format"`             // Always FormatName
	Version  int    `yaml:"version"`            // Format version
	Root     uint64 `yaml:"root"`               // ID of the root node
	Nodes    []Node `yaml:"nodes"`              // Topologically ordered, root last
	Checksum string `yaml:"checksum,omitempty"` // SHA-256 of node payloads, hex (only with values)
}

// Node describes one tensor of the graph.
type Node struct {
	ID           uint64    `yaml:"id"`
	Shape        []int     `yaml:"shape,flow"`
	RequiresGrad bool      `yaml:"requires_grad"`
	Op           string    `yaml:"op,omitempty"`            // Operation name; empty for leaves
	Operands     []uint64  `yaml:"operands,flow,omitempty"` // Operand IDs in declared order
	Scalar       *float64  `yaml:"scalar,omitempty"`        // ScalarMul factor or Pow exponent
	Dims         []int     `yaml:"dims,flow,omitempty"`     // Axes, permutation or target shape
	Values       []float64 `yaml:"values,flow,omitempty"`   // Row-major payload (optional)
}

// IsLeaf reports whether the node was created directly.
func (n *Node) IsLeaf() bool {
	return n.Op == ""
}
