package fuzzing

import (
	"fmt"

	"github.com/zeu5/tree-diff-fuzz/entropy"
	"github.com/zeu5/tree-diff-fuzz/tree"
)

type FuzzerConfig struct {
	// Iterations is the number of (before, after) pairs to produce.
	Iterations int
	// Mutations is the number of mutation steps applied per iteration.
	Mutations int
	// TreeSize is the non-root node count of each generated tree. It must
	// be at least 2 so mutation always has a valid target.
	TreeSize int
	// Deviation bounds the child-group size variance during generation.
	Deviation int
	// Seed is the base seed; iteration i derives its own seed as Seed+i.
	Seed uint64
	// Run distinguishes trace files of repeated runs.
	Run int

	RecordTraces bool
	SavePath     string
}

// Fuzzer generates before/after tree pairs and feeds them to the differ
// under test, checking structural invariants along the way.
type Fuzzer struct {
	Config     *FuzzerConfig
	Differ     Differ
	Mutations  []Mutation
	Invariants []Invariant

	factory *tree.Factory
	records []*IterationRecord
}

// NewFuzzer wires a fuzzer with its own factory and tag allocator. A nil
// mutations slice selects the full default catalog.
func NewFuzzer(config *FuzzerConfig, differ Differ, mutations []Mutation) *Fuzzer {
	factory := tree.NewFactory(1, tree.NewTagAllocator())
	if mutations == nil {
		mutations = DefaultMutations(factory)
	}
	return &Fuzzer{
		Config:     config,
		Differ:     differ,
		Mutations:  mutations,
		Invariants: DefaultInvariants(),
		factory:    factory,
		records:    make([]*IterationRecord, 0, config.Iterations),
	}
}

// Records returns the per-iteration records of the run so far.
func (f *Fuzzer) Records() []*IterationRecord {
	return f.records
}

// Run executes the configured number of iterations. Invariant violations and
// differ rejections are recorded, not fatal; only harness misuse (a tree too
// small to mutate, an empty mutation list) aborts the run.
func (f *Fuzzer) Run() error {
	if f.Config.TreeSize < 2 {
		return fmt.Errorf("%w: configured size %d", ErrTreeTooSmall, f.Config.TreeSize)
	}
	for i := 0; i < f.Config.Iterations; i++ {
		record, err := f.runIteration(i)
		if err != nil {
			return fmt.Errorf("iteration %d (seed %d): %w", i, f.Config.Seed+uint64(i), err)
		}
		f.records = append(f.records, record)
		if f.Config.RecordTraces {
			if err := recordIteration(f.Config.SavePath, f.Config.Run, record); err != nil {
				return err
			}
		}
	}
	fmt.Println(Summary(f.records))
	return nil
}

func (f *Fuzzer) runIteration(iteration int) (*IterationRecord, error) {
	seed := f.Config.Seed + uint64(iteration)
	e := entropy.New(seed)

	before := GenerateTree(e, f.factory, f.Config.TreeSize, f.Config.Deviation)
	beforePrint := Fingerprint(before)

	after := before
	for step := 0; step < f.Config.Mutations; step++ {
		next, err := AlterTreeAny(e, after, f.Mutations)
		if err != nil {
			return nil, err
		}
		after = next
	}

	record := &IterationRecord{
		Iteration: iteration,
		Seed:      seed,
		NodeCount: tree.Count(before),
		Depth:     treeDepth(before),
		Shape:     TreeShape(before),
		Mutations: f.Config.Mutations,
	}

	if err := f.Differ.Diff(before, after); err != nil {
		record.DiffError = err.Error()
	}
	for _, invariant := range f.Invariants {
		if err := invariant.Check(before, after, f.Config.Mutations); err != nil {
			record.Violations = append(record.Violations, fmt.Sprintf("%s: %v", invariant.Name, err))
		}
	}
	if Fingerprint(before) != beforePrint {
		record.Violations = append(record.Violations, "before-unchanged: input tree was modified in place")
	}
	return record, nil
}
