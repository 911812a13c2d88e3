package fuzzing

import (
	"errors"

	"github.com/zeu5/tree-diff-fuzz/entropy"
	"github.com/zeu5/tree-diff-fuzz/tree"
)

// Mutation transforms one node into a perturbed clone. Implementations must
// be pure: the input node and everything it references stay untouched.
type Mutation func(*entropy.Entropy, *tree.Node) (*tree.Node, error)

var (
	// ErrTreeTooSmall is returned when a tree has no valid non-root target.
	// Callers must generate trees with at least 2 nodes before mutating.
	ErrTreeTooSmall = errors.New("fuzzing: tree has no non-root target")

	// ErrNoMutations is returned when selecting among zero mutations.
	ErrNoMutations = errors.New("fuzzing: empty mutation list")
)

// Differ is the diffing engine under test. The harness only supplies
// (before, after) pairs; what a correct diff looks like is the differ's
// concern, not the harness's.
type Differ interface {
	Diff(before, after *tree.Node) error
}

// DifferFunc adapts a plain function to the Differ interface.
type DifferFunc func(before, after *tree.Node) error

func (f DifferFunc) Diff(before, after *tree.Node) error {
	return f(before, after)
}

// NoopDiffer accepts every pair. Used to exercise the harness alone.
type NoopDiffer struct{}

var _ Differ = NoopDiffer{}

func (NoopDiffer) Diff(before, after *tree.Node) error {
	return nil
}
