package tensor

import (
	"fmt"
	"io"
	"strings"
)

// treeIndent is the indentation added per level by PrintTree.
const treeIndent = 4

// PrintTree writes the computation tree rooted at t to w, one line per node:
//
//	tensor id: 3, use grad: true, shape: [2 2] with op: Add
//	    tensor id: 1, use grad: true, shape: [2 2]
//	    tensor id: 2, use grad: false, shape: [2 2]
//
// Operands are visited in declared order. A node shared by several paths is
// printed once per path.
func (t *Tensor) PrintTree(w io.Writer) error {
	var err error
	Walk(t, func(node *Tensor, depth int) bool {
		if err != nil {
			return false
		}
		line := fmt.Sprintf("%stensor id: %d, use grad: %t, shape: %v",
			strings.Repeat(" ", depth*treeIndent), node.id, node.requiresGrad, node.raw.shape)
		if node.op != nil {
			line += " with op: " + node.op.String()
		}
		_, err = fmt.Fprintln(w, line)
		return err == nil
	})
	return err
}

// TreeString returns the output of PrintTree as a string.
func (t *Tensor) TreeString() string {
	var sb strings.Builder
	_ = t.PrintTree(&sb) // strings.Builder never fails
	return sb.String()
}

// Walk visits the tree rooted at root in pre-order, calling fn with each node
// and its depth (0 for root). Operands are visited in declared order. If fn
// returns false, the node's operands are skipped.
//
// Walk does not deduplicate shared nodes; use TopologicalOrder for a visit of
// each distinct node.
func Walk(root *Tensor, fn func(node *Tensor, depth int) bool) {
	walk(root, 0, fn)
}

func walk(node *Tensor, depth int, fn func(*Tensor, int) bool) {
	if !fn(node, depth) || node.op == nil {
		return
	}
	for _, operand := range node.op.Operands() {
		walk(operand, depth+1, fn)
	}
}

// TopologicalOrder returns every distinct node reachable from root, each
// operand before the tensors derived from it; root is last. Nodes are keyed
// by pointer identity.
//
// A backward pass walks this slice in reverse.
func TopologicalOrder(root *Tensor) []*Tensor {
	s := &topoSorter{visited: make(map[*Tensor]bool)}
	s.visit(root)
	return s.order
}

// topoSorter holds depth-first traversal state for TopologicalOrder.
type topoSorter struct {
	visited map[*Tensor]bool
	order   []*Tensor // post-order
}

func (s *topoSorter) visit(node *Tensor) {
	if s.visited[node] {
		return
	}
	s.visited[node] = true
	if node.op != nil {
		for _, operand := range node.op.Operands() {
			s.visit(operand)
		}
	}
	s.order = append(s.order, node)
}

// Leaves returns the distinct leaf tensors reachable from root, in the order
// they are first reached.
func Leaves(root *Tensor) []*Tensor {
	var leaves []*Tensor
	for _, node := range TopologicalOrder(root) {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	}
	return leaves
}
