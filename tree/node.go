package tree

import (
	"errors"
	"fmt"
)

// Node is an immutable snapshot of one element in a hierarchy. A node is
// never modified after construction; clones share every part that is not
// overridden, so two tree versions may reference the same *Node and a
// pointer comparison tells whether a subtree is shared.
type Node struct {
	identity Identity
	props    Props
	children []*Node
}

func (n *Node) Identity() Identity {
	return n.identity
}

func (n *Node) Tag() Tag {
	return n.identity.Tag
}

func (n *Node) Props() Props {
	return n.props
}

// Children returns the node's ordered children. The returned slice is the
// node's own; callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// Fragment carries the parts of a node a clone overrides. Nil fields keep
// the original's value.
type Fragment struct {
	Props    *Props
	Children []*Node
}

// Clone returns a new node with the same identity, overriding only what the
// fragment carries. Anything not overridden is shared with the original.
func (n *Node) Clone(fragment Fragment) *Node {
	clone := &Node{
		identity: n.identity,
		props:    n.props,
		children: n.children,
	}
	if fragment.Props != nil {
		clone.props = *fragment.Props
	}
	if fragment.Children != nil {
		clone.children = fragment.Children
	}
	return clone
}

var ErrTagNotFound = errors.New("tree: tag not found")

// CloneTree rebuilds the path from n down to the node carrying the target
// tag. The transform is applied to the target node; each ancestor is then
// re-cloned with its children list routing through the replacement. Every
// subtree off the path is shared by reference with the original tree, and
// the original tree remains valid and unchanged.
func (n *Node) CloneTree(target Tag, transform func(*Node) (*Node, error)) (*Node, error) {
	path, ok := n.pathTo(target)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTagNotFound, target)
	}

	current, err := transform(path[len(path)-1])
	if err != nil {
		return nil, err
	}

	for i := len(path) - 2; i >= 0; i-- {
		parent := path[i]
		children := make([]*Node, len(parent.children))
		copy(children, parent.children)
		for j, child := range parent.children {
			if child == path[i+1] {
				children[j] = current
				break
			}
		}
		current = parent.Clone(Fragment{Children: children})
	}
	return current, nil
}

// pathTo returns the chain of nodes from n to the node carrying the target
// tag, inclusive at both ends.
func (n *Node) pathTo(target Tag) ([]*Node, bool) {
	if n.identity.Tag == target {
		return []*Node{n}, true
	}
	for _, child := range n.children {
		if path, ok := child.pathTo(target); ok {
			return append([]*Node{n}, path...), true
		}
	}
	return nil, false
}
