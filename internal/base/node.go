package base

import (
	"cmp"
	"fmt"

	"github.com/alexhholmes/memtree/internal/algo"
)

// NodeID is a handle to a Node stored in an arena. The zero value refers to
// no node.
type NodeID uint32

// InvalidID is the handle of a missing node (empty tree, leaf child slot).
const InvalidID NodeID = 0

// Node represents a B-tree Node of minimum degree Degree.
//
// It must at all times maintain the invariant that either
//   - Leaf and len(Children) == 0
//   - !Leaf and len(Children) == len(Keys) + 1
//
// and that len(Keys) <= 2*Degree - 1.
type Node[K cmp.Ordered] struct {
	Degree   int
	Leaf     bool // Explicit flag: true for leaf nodes, false for branch nodes
	Keys     []K
	Children []NodeID
}

// NewNode allocates an empty Node with room for a full key run.
func NewNode[K cmp.Ordered](degree int, leaf bool) *Node[K] {
	n := &Node[K]{
		Degree: degree,
		Leaf:   leaf,
		Keys:   make([]K, 0, 2*degree-1),
	}
	if !leaf {
		n.Children = make([]NodeID, 0, 2*degree)
	}
	return n
}

// Capacity returns the maximum number of keys the Node can hold.
func (n *Node[K]) Capacity() int {
	return 2*n.Degree - 1
}

// MinKeys returns the minimum number of keys of a non-root Node.
func (n *Node[K]) MinKeys() int {
	return n.Degree - 1
}

// IsFull checks if a Node holds Capacity keys
func (n *Node[K]) IsFull() bool {
	return len(n.Keys) == n.Capacity()
}

// IsLeaf returns true if this is a leaf Node
func (n *Node[K]) IsLeaf() bool {
	return n.Leaf
}

// InsertKey inserts key before the first existing key that is >= key and
// returns the index it landed at.
func (n *Node[K]) InsertKey(key K) int {
	if n.IsFull() {
		panic(fmt.Sprintf("insert into full node (%d keys)", len(n.Keys)))
	}

	i := algo.LowerBound(n.Keys, key)
	n.Keys = append(n.Keys, key)
	copy(n.Keys[i+1:], n.Keys[i:])
	n.Keys[i] = key
	return i
}

// RemoveKey removes the key at index, pulling all subsequent keys back.
func (n *Node[K]) RemoveKey(index int) K {
	if index < 0 || index >= len(n.Keys) {
		panic(fmt.Sprintf("remove key %d out of range [0,%d)", index, len(n.Keys)))
	}

	key := n.Keys[index]
	copy(n.Keys[index:], n.Keys[index+1:])
	var zero K
	n.Keys[len(n.Keys)-1] = zero
	n.Keys = n.Keys[:len(n.Keys)-1]
	return key
}

// InsertChildAt inserts a child handle at index, pushing all subsequent
// children forward.
func (n *Node[K]) InsertChildAt(index int, id NodeID) {
	n.Children = append(n.Children, InvalidID)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = id
}

// RemoveChild removes the child handle at index.
func (n *Node[K]) RemoveChild(index int) NodeID {
	id := n.Children[index]
	copy(n.Children[index:], n.Children[index+1:])
	n.Children[len(n.Children)-1] = InvalidID
	n.Children = n.Children[:len(n.Children)-1]
	return id
}

// Split divides a full Node into its median key and two fresh halves. Keys
// [0, t-1) go left, keys (t-1, 2t-1) go right; a branch hands its first t
// children to the left half and the remaining t to the right half. The
// receiver is left untouched and should be discarded by the caller.
func (n *Node[K]) Split() (K, *Node[K], *Node[K]) {
	if !n.IsFull() {
		panic(fmt.Sprintf("split of non-full node (%d of %d keys)", len(n.Keys), n.Capacity()))
	}

	mid := n.Degree - 1
	median := n.Keys[mid]

	left := NewNode[K](n.Degree, n.Leaf)
	right := NewNode[K](n.Degree, n.Leaf)
	left.Keys = append(left.Keys, n.Keys[:mid]...)
	right.Keys = append(right.Keys, n.Keys[mid+1:]...)

	if !n.Leaf {
		left.Children = append(left.Children, n.Children[:n.Degree]...)
		right.Children = append(right.Children, n.Children[n.Degree:]...)
	}

	return median, left, right
}

// Locate returns the index of the first key >= key and whether that key
// equals key. The node must hold at least one key.
func (n *Node[K]) Locate(key K) (int, bool) {
	if len(n.Keys) == 0 {
		panic("search on empty node")
	}
	return algo.FindKey(n.Keys, key)
}

// ChildIndex returns the index of the child to descend into for key.
func (n *Node[K]) ChildIndex(key K) int {
	return algo.FindChildIndex(n.Keys, key)
}

// Reset clears the Node for reuse, keeping slice capacity.
func (n *Node[K]) Reset() {
	var zero K
	for i := range n.Keys {
		n.Keys[i] = zero
	}
	n.Keys = n.Keys[:0]
	n.Children = n.Children[:0]
	n.Leaf = false
}
