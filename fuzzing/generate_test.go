package fuzzing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeu5/tree-diff-fuzz/entropy"
	"github.com/zeu5/tree-diff-fuzz/tree"
)

func newTestFactory() *tree.Factory {
	return tree.NewFactory(1, tree.NewTagAllocator())
}

func TestGenerateSizeFidelity(t *testing.T) {
	e := entropy.New(1)
	f := newTestFactory()
	for size := 1; size <= 100; size++ {
		root := GenerateTree(e, f, size, 3)
		assert.Equal(t, size, tree.Count(root), "non-root node count for size %d", size)
	}
}

func TestGenerateSingleLeaf(t *testing.T) {
	e := entropy.New(2)
	f := newTestFactory()

	root := GenerateTree(e, f, 1, 3)
	assert.Len(t, root.Children(), 1)
	assert.Empty(t, root.Children()[0].Children(), "size 1 yields a single leaf")
}

func TestGenerateSizeFive(t *testing.T) {
	e := entropy.New(3)
	f := newTestFactory()

	root := GenerateTree(e, f, 5, 3)
	assert.Equal(t, 5, tree.Count(root), "exactly 5 non-root nodes")
}

func TestGenerateEmpty(t *testing.T) {
	e := entropy.New(4)
	f := newTestFactory()

	root := GenerateTree(e, f, 0, 3)
	assert.Empty(t, root.Children())
	assert.Equal(t, 0, tree.Count(root))
}

func TestGenerateDeterministicShape(t *testing.T) {
	for _, seed := range []uint64{5, 77, 901} {
		a := GenerateTree(entropy.New(seed), newTestFactory(), 64, 3)
		b := GenerateTree(entropy.New(seed), newTestFactory(), 64, 3)

		assert.Equal(t, TreeShape(a), TreeShape(b), "seed %d must reproduce the shape", seed)

		// per-node payloads match too, even though tags differ
		aProps := collectProps(a)
		bProps := collectProps(b)
		assert.Equal(t, aProps, bProps, "seed %d must reproduce the payloads", seed)
	}
}

func TestGenerateDistinctSeedsDistinctShapes(t *testing.T) {
	shapes := make(map[string]bool)
	for seed := uint64(0); seed < 20; seed++ {
		root := GenerateTree(entropy.New(seed), newTestFactory(), 64, 3)
		shapes[TreeShape(root)] = true
	}
	assert.Greater(t, len(shapes), 1, "different seeds should explore different shapes")
}

func TestGenerateParentLinks(t *testing.T) {
	e := entropy.New(6)
	f := newTestFactory()

	root := GenerateTree(e, f, 30, 3)
	tree.Traverse(root, func(edge tree.Edge) bool {
		assert.Equal(t, edge.Parent.Tag(), edge.Node.Identity().Parent, "identity records its creation parent")
		return false
	})
}

func collectProps(root *tree.Node) []string {
	props := []string{root.Props().String()}
	tree.Traverse(root, func(e tree.Edge) bool {
		props = append(props, e.Node.Props().String())
		return false
	})
	return props
}
