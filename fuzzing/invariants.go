package fuzzing

import (
	"fmt"

	"github.com/zeu5/tree-diff-fuzz/tree"
	"github.com/zeu5/tree-diff-fuzz/util"
)

// Invariant is a named check over one (before, after) pair. steps is the
// number of mutations that produced after from before.
type Invariant struct {
	Name  string
	Check func(before, after *tree.Node, steps int) error
}

// DefaultInvariants covers the structural guarantees every mutation run
// must preserve.
func DefaultInvariants() []Invariant {
	return []Invariant{
		IdentitiesPreserved(),
		SharedStructure(),
	}
}

// IdentitiesPreserved checks that mutations never add or drop nodes: the
// multiset of tags is the same in both trees.
func IdentitiesPreserved() Invariant {
	return Invariant{
		Name: "identities-preserved",
		Check: func(before, after *tree.Node, steps int) error {
			if !tagMultiSet(before).Eq(tagMultiSet(after)) {
				return fmt.Errorf("tag multisets differ between before and after")
			}
			return nil
		},
	}
}

// SharedStructure checks that mutations went through copy-on-write path
// replacement: a run of steps mutations may rebuild at most
// steps * (depth + fanout) nodes (the path plus the re-cloned children of
// one target); every other node must be shared by reference.
func SharedStructure() Invariant {
	return Invariant{
		Name: "shared-structure",
		Check: func(before, after *tree.Node, steps int) error {
			byTag := make(map[tree.Tag]*tree.Node)
			byTag[before.Tag()] = before
			tree.Traverse(before, func(e tree.Edge) bool {
				byTag[e.Node.Tag()] = e.Node
				return false
			})

			rebuilt := 0
			var unknown error
			tree.Traverse(after, func(e tree.Edge) bool {
				old, ok := byTag[e.Node.Tag()]
				if !ok {
					unknown = fmt.Errorf("node %d does not exist in the before tree", e.Node.Tag())
					return true
				}
				if old != e.Node {
					rebuilt++
				}
				return false
			})
			if unknown != nil {
				return unknown
			}

			if bound := steps * (treeDepth(before) + maxFanout(before)); rebuilt > bound {
				return fmt.Errorf("%d nodes rebuilt by %d mutations, copy-on-write bound is %d", rebuilt, steps, bound)
			}
			return nil
		},
	}
}

func tagMultiSet(root *tree.Node) util.MultiSet[tree.Tag] {
	tags := util.NewMultiSet[tree.Tag]()
	tree.Traverse(root, func(e tree.Edge) bool {
		tags.Add(e.Node.Tag())
		return false
	})
	return tags
}

func maxFanout(root *tree.Node) int {
	max := len(root.Children())
	tree.Traverse(root, func(e tree.Edge) bool {
		if n := len(e.Node.Children()); n > max {
			max = n
		}
		return false
	})
	return max
}
