package tree

import "sync/atomic"

// Tag is the stable identity key of a node. Tags are allocated once,
// monotonically, and never reused or recycled, so a tag locates "the same
// logical node" across any number of tree versions.
type Tag int64

// SurfaceID identifies the surface a tree belongs to.
type SurfaceID int32

// Identity records where a node was created: its tag, its surface, and the
// tag of the node it was created under (0 for top-level nodes).
type Identity struct {
	Tag     Tag
	Surface SurfaceID
	Parent  Tag
}

// firstTag leaves room below for reserved tags.
const firstTag = 1000

// TagAllocator hands out monotonically increasing tags. It is safe for
// concurrent use, so parallel fuzz runs may share one or hold one each.
type TagAllocator struct {
	next atomic.Int64
}

func NewTagAllocator() *TagAllocator {
	a := &TagAllocator{}
	a.next.Store(firstTag)
	return a
}

func (a *TagAllocator) Next() Tag {
	return Tag(a.next.Add(1) - 1)
}
