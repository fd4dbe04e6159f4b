package memtree

import (
	"cmp"
	"slices"

	"github.com/alexhholmes/memtree/internal/base"
)

// Node is a read-only view of one tree node, as returned by Search and Root.
//
// A view is only valid until the next Insert on its tree: the node it names
// may be split and its slot reused.
type Node[K cmp.Ordered] struct {
	tree *Tree[K]
	id   base.NodeID
}

func (n Node[K]) node() *base.Node[K] {
	return n.tree.nodes.Get(n.id)
}

// Keys returns a copy of the node's keys in ascending order.
func (n Node[K]) Keys() []K {
	return slices.Clone(n.node().Keys)
}

// NumKeys returns the number of keys held by the node.
func (n Node[K]) NumKeys() int {
	return len(n.node().Keys)
}

// IsLeaf returns true if this is a leaf Node
func (n Node[K]) IsLeaf() bool {
	return n.node().IsLeaf()
}

// NumChildren returns 0 for a leaf, NumKeys()+1 otherwise.
func (n Node[K]) NumChildren() int {
	return len(n.node().Children)
}

// Child returns a view of the i-th child. It panics if i is out of range.
func (n Node[K]) Child(i int) Node[K] {
	return n.tree.view(n.node().Children[i])
}

// Contains reports whether key is one of this node's own keys.
func (n Node[K]) Contains(key K) bool {
	_, found := slices.BinarySearch(n.node().Keys, key)
	return found
}
