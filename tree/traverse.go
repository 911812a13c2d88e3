package tree

import (
	"errors"
	"fmt"
)

// Edge is a transient traversal result: a node, its parent, and its index in
// the parent's children list.
type Edge struct {
	Node   *Node
	Parent *Node
	Index  int
}

// Traverse walks the tree under root in pre-order, invoking visit for every
// node except root itself. Children are visited in stored order, each one
// immediately followed by its own subtree. If visit returns true the walk
// stops and no further nodes are visited; Traverse then reports true.
func Traverse(root *Node, visit func(Edge) bool) bool {
	for i, child := range root.children {
		if visit(Edge{Node: child, Parent: root, Index: i}) {
			return true
		}
		if Traverse(child, visit) {
			return true
		}
	}
	return false
}

// Count returns the number of nodes a full traversal under root visits.
// The root itself is not counted.
func Count(root *Node) int {
	count := 0
	Traverse(root, func(Edge) bool {
		count++
		return false
	})
	return count
}

var ErrIndexOutOfRange = errors.New("tree: node index out of range")

// NodeAt returns the k-th edge of a full pre-order traversal, 0-indexed.
func NodeAt(root *Node, k int) (Edge, error) {
	if k < 0 {
		return Edge{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, k)
	}
	var result Edge
	found := false
	i := 0
	Traverse(root, func(edge Edge) bool {
		if i == k {
			result = edge
			found = true
			return true
		}
		i++
		return false
	})
	if !found {
		return Edge{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, k, i)
	}
	return result, nil
}
