package fuzzing

import (
	"github.com/zeu5/tree-diff-fuzz/entropy"
	"github.com/zeu5/tree-diff-fuzz/tree"
)

// GenerateTree builds a random tree carrying exactly size non-root nodes
// below the returned root (tree.Count(root) == size). The branching factor
// is governed by Entropy.Distribute: size is partitioned into chunks, each
// chunk becoming one child subtree of that many total nodes. Given the same
// seed, size, and deviation the shape is deterministic; tags depend on the
// factory's allocator.
func GenerateTree(e *entropy.Entropy, factory *tree.Factory, size, deviation int) *tree.Node {
	root := factory.CreateIdentity(0)
	return factory.CreateNode(root, factory.DefaultProps(), generateChildren(e, factory, size, deviation, root.Tag))
}

// generateChildren produces sibling subtrees totalling exactly total nodes.
func generateChildren(e *entropy.Entropy, factory *tree.Factory, total, deviation int, parent tree.Tag) []*tree.Node {
	if total <= 0 {
		return nil
	}
	chunks := e.Distribute(total, deviation)
	children := make([]*tree.Node, 0, len(chunks))
	for _, chunk := range chunks {
		identity := factory.CreateIdentity(parent)
		descendants := generateChildren(e, factory, chunk-1, deviation, identity.Tag)
		children = append(children, factory.CreateNode(identity, factory.DefaultProps(), descendants))
	}
	return children
}
