package fuzzing

import (
	"fmt"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/zeu5/tree-diff-fuzz/entropy"
	"github.com/zeu5/tree-diff-fuzz/tree"
)

// findRandomNode picks a uniformly random non-root edge. The draw excludes
// traversal index 0 so the root's position is never selected; a tree with
// fewer than two non-root nodes has no valid target.
func findRandomNode(e *entropy.Entropy, root *tree.Node) (tree.Edge, error) {
	count := tree.Count(root)
	if count < 2 {
		return tree.Edge{}, fmt.Errorf("%w: %d nodes", ErrTreeTooSmall, count)
	}
	return tree.NodeAt(root, e.UniformInt(1, count-1))
}

// AlterTree applies one mutation to a randomly chosen non-root node and
// splices the result back through copy-on-write path replacement. The
// returned root shares every subtree off the root-to-target path with the
// input tree; the input tree remains valid and unchanged.
func AlterTree(e *entropy.Entropy, root *tree.Node, mutation Mutation) (*tree.Node, error) {
	edge, err := findRandomNode(e, root)
	if err != nil {
		return nil, err
	}
	return root.CloneTree(edge.Node.Tag(), func(node *tree.Node) (*tree.Node, error) {
		return mutation(e, node)
	})
}

// AlterTreeAny picks one mutation uniformly at random and applies it.
func AlterTreeAny(e *entropy.Entropy, root *tree.Node, mutations []Mutation) (*tree.Node, error) {
	if len(mutations) == 0 {
		return nil, ErrNoMutations
	}
	return AlterTree(e, root, mutations[e.UniformInt(0, len(mutations)-1)])
}

// AlterTreeWeighted picks a mutation with probability proportional to its
// weight. The sampler draws from the run's entropy source so a seeded run
// stays reproducible.
func AlterTreeWeighted(e *entropy.Entropy, root *tree.Node, mutations []Mutation, weights []float64) (*tree.Node, error) {
	if len(mutations) == 0 {
		return nil, ErrNoMutations
	}
	if len(weights) != len(mutations) {
		return nil, fmt.Errorf("fuzzing: %d weights for %d mutations", len(weights), len(mutations))
	}
	sampler := sampleuv.NewWeighted(weights, e.Source())
	i, ok := sampler.Take()
	if !ok {
		return nil, fmt.Errorf("fuzzing: no mutation has sampleable weight")
	}
	return AlterTree(e, root, mutations[i])
}
