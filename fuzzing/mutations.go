package fuzzing

import (
	"github.com/zeu5/tree-diff-fuzz/entropy"
	"github.com/zeu5/tree-diff-fuzz/tree"
)

// attributeFlipProbability is the chance each catalog attribute is touched
// by one PerturbViewProps or PerturbLayoutStyles invocation. Each draw is
// independent; a single invocation may touch zero or many attributes.
const attributeFlipProbability = 0.1

// layoutValueMax bounds the random values assigned to numeric layout keys.
const layoutValueMax = 1024

func choose[T any](e *entropy.Entropy, a, b T) T {
	if e.Boolean(0.5) {
		return a
	}
	return b
}

// ShuffleChildren reorders a node's children uniformly at random. Every
// child is cloned first so the shuffled list never aliases the original's;
// shuffling 0 or 1 children is a no-op reorder. The node's own props are
// unchanged.
func ShuffleChildren(e *entropy.Entropy, node *tree.Node) (*tree.Node, error) {
	children := make([]*tree.Node, len(node.Children()))
	for i, child := range node.Children() {
		children[i] = child.Clone(tree.Fragment{})
	}
	entropy.Shuffle(e, children)
	return node.Clone(tree.Fragment{Children: children}), nil
}

// PerturbViewProps returns a mutation flipping generic view attributes.
// Each attribute of the fixed catalog is independently touched with 10%
// probability and then set to one of two alternatives by a fair coin. The
// node's children are unchanged.
func PerturbViewProps(factory *tree.Factory) Mutation {
	return func(e *entropy.Entropy, node *tree.Node) (*tree.Node, error) {
		props, err := factory.CloneProps(node.Props(), nil)
		if err != nil {
			return nil, err
		}

		if e.Boolean(attributeFlipProbability) {
			props.NativeID = choose(e, "42", "")
		}
		if e.Boolean(attributeFlipProbability) {
			props.BackgroundColor = choose(e, tree.ColorClear, tree.ColorWhite)
		}
		if e.Boolean(attributeFlipProbability) {
			props.ForegroundColor = choose(e, tree.ColorClear, tree.ColorBlack)
		}
		if e.Boolean(attributeFlipProbability) {
			props.ShadowColor = choose(e, tree.ColorClear, tree.ColorBlack)
		}
		if e.Boolean(attributeFlipProbability) {
			props.Accessible = e.Boolean(0.5)
		}
		if e.Boolean(attributeFlipProbability) {
			props.ZIndex = choose(e, 1, 0)
		}
		if e.Boolean(attributeFlipProbability) {
			props.PointerEvents = choose(e, tree.PointerEventsAuto, tree.PointerEventsNone)
		}
		if e.Boolean(attributeFlipProbability) {
			props.Transform = choose(e, tree.TransformIdentity(), tree.TransformPerspective(42))
		}

		return node.Clone(tree.Fragment{Props: &props}), nil
	}
}

// PerturbLayoutStyles returns a mutation perturbing layout attributes
// through an untyped overlay. The flow direction is set with 50%
// probability; each numeric layout key is independently set with 10%
// probability to a random value in [0, 1024]. The node's children are
// unchanged.
func PerturbLayoutStyles(factory *tree.Factory) Mutation {
	return func(e *entropy.Entropy, node *tree.Node) (*tree.Node, error) {
		overlay := tree.RawProps{}

		if e.Boolean(0.5) {
			overlay["flexDirection"] = choose(e, tree.FlexDirectionRow, tree.FlexDirectionColumn)
		}
		for _, key := range tree.LayoutKeys {
			if e.Boolean(attributeFlipProbability) {
				overlay[key] = e.UniformInt(0, layoutValueMax)
			}
		}

		props, err := factory.CloneProps(node.Props(), overlay)
		if err != nil {
			return nil, err
		}
		return node.Clone(tree.Fragment{Props: &props}), nil
	}
}

// DefaultMutations is the full primitive catalog wired to one factory.
func DefaultMutations(factory *tree.Factory) []Mutation {
	return []Mutation{
		ShuffleChildren,
		PerturbViewProps(factory),
		PerturbLayoutStyles(factory),
	}
}
