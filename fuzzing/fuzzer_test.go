package fuzzing

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeu5/tree-diff-fuzz/entropy"
	"github.com/zeu5/tree-diff-fuzz/tree"
)

func TestEndToEndReorderScenario(t *testing.T) {
	e := entropy.New(2023)
	f := newTestFactory()

	root := GenerateTree(e, f, 10, 3)
	require.Equal(t, 10, tree.Count(root))

	mutated, err := AlterTree(e, root, ShuffleChildren)
	require.NoError(t, err)

	// same identities, before and after
	assert.True(t, tagMultiSet(root).Eq(tagMultiSet(mutated)), "mutation must not add or drop identities")

	// child order differs at no node but the mutated target
	reordered := 0
	byTag := map[tree.Tag]*tree.Node{root.Tag(): root}
	tree.Traverse(root, func(edge tree.Edge) bool {
		byTag[edge.Node.Tag()] = edge.Node
		return false
	})
	checkOrder := func(n *tree.Node) {
		old := byTag[n.Tag()]
		require.NotNil(t, old)
		require.Len(t, old.Children(), len(n.Children()))
		for i := range n.Children() {
			if old.Children()[i].Tag() != n.Children()[i].Tag() {
				reordered++
				break
			}
		}
	}
	checkOrder(mutated)
	tree.Traverse(mutated, func(edge tree.Edge) bool {
		checkOrder(edge.Node)
		return false
	})
	assert.LessOrEqual(t, reordered, 1, "only the mutated node may change child order")

	// the before tree is fully intact and shares off-path structure
	for _, invariant := range DefaultInvariants() {
		assert.NoError(t, invariant.Check(root, mutated, 1), invariant.Name)
	}
}

func TestFuzzerRun(t *testing.T) {
	fuzzer := NewFuzzer(&FuzzerConfig{
		Iterations: 25,
		Mutations:  3,
		TreeSize:   20,
		Deviation:  3,
		Seed:       99,
	}, NoopDiffer{}, nil)

	require.NoError(t, fuzzer.Run())
	records := fuzzer.Records()
	require.Len(t, records, 25)

	for _, record := range records {
		assert.Equal(t, 20, record.NodeCount)
		assert.Equal(t, 3, record.Mutations)
		assert.Empty(t, record.Violations, "iteration %d (seed %d)", record.Iteration, record.Seed)
		assert.Empty(t, record.DiffError)
	}
}

func TestFuzzerReproducible(t *testing.T) {
	config := &FuzzerConfig{
		Iterations: 10,
		Mutations:  2,
		TreeSize:   15,
		Deviation:  3,
		Seed:       7,
	}
	a := NewFuzzer(config, NoopDiffer{}, nil)
	b := NewFuzzer(config, NoopDiffer{}, nil)
	require.NoError(t, a.Run())
	require.NoError(t, b.Run())

	ra, rb := a.Records(), b.Records()
	require.Len(t, rb, len(ra))
	for i := range ra {
		assert.Equal(t, ra[i].Seed, rb[i].Seed)
		assert.Equal(t, ra[i].Shape, rb[i].Shape, "iteration %d must reproduce the same tree", i)
		assert.Equal(t, ra[i].Depth, rb[i].Depth)
	}
}

func TestFuzzerRecordsDifferRejections(t *testing.T) {
	rejecting := DifferFunc(func(before, after *tree.Node) error {
		return assert.AnError
	})
	fuzzer := NewFuzzer(&FuzzerConfig{
		Iterations: 3,
		Mutations:  1,
		TreeSize:   10,
		Deviation:  3,
		Seed:       5,
	}, rejecting, nil)

	require.NoError(t, fuzzer.Run(), "differ rejections are recorded, not fatal")
	for _, record := range fuzzer.Records() {
		assert.NotEmpty(t, record.DiffError)
	}
}

func TestFuzzerRejectsTinyTrees(t *testing.T) {
	fuzzer := NewFuzzer(&FuzzerConfig{
		Iterations: 1,
		Mutations:  1,
		TreeSize:   1,
		Deviation:  3,
		Seed:       1,
	}, NoopDiffer{}, nil)

	assert.ErrorIs(t, fuzzer.Run(), ErrTreeTooSmall)
}

func TestFuzzerWritesTraces(t *testing.T) {
	dir := t.TempDir()
	fuzzer := NewFuzzer(&FuzzerConfig{
		Iterations:   4,
		Mutations:    1,
		TreeSize:     10,
		Deviation:    3,
		Seed:         3,
		Run:          2,
		RecordTraces: true,
		SavePath:     dir,
	}, NoopDiffer{}, nil)

	require.NoError(t, fuzzer.Run())

	bs, err := os.ReadFile(path.Join(dir, "traces", "run_2.jsonl"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(bs)), "\n")
	assert.Len(t, lines, 4, "one JSONL record per iteration")
	assert.Contains(t, lines[0], `"seed":3`)
}
