package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLeaf(degree int, keys ...int) *Node[int] {
	n := NewNode[int](degree, true)
	n.Keys = append(n.Keys, keys...)
	return n
}

func TestNodeInsertKeyOrdering(t *testing.T) {
	n := NewNode[int](3, true)

	assert.Equal(t, 0, n.InsertKey(2))
	assert.Equal(t, 0, n.InsertKey(1))
	assert.Equal(t, 2, n.InsertKey(3))
	assert.Equal(t, []int{1, 2, 3}, n.Keys)
}

func TestNodeInsertKeyDuplicates(t *testing.T) {
	n := makeLeaf(3, 1, 5, 9)

	// Equal keys land at the leftmost equal position and are never merged
	pos := n.InsertKey(5)
	assert.Equal(t, 1, pos)
	assert.Equal(t, []int{1, 5, 5, 9}, n.Keys)
}

func TestNodeInsertKeyFullPanics(t *testing.T) {
	n := makeLeaf(2, 1, 2, 3)
	require.True(t, n.IsFull())

	assert.Panics(t, func() { n.InsertKey(4) })
}

func TestNodeRemoveKey(t *testing.T) {
	n := makeLeaf(3, 10, 20, 30)

	assert.Equal(t, 20, n.RemoveKey(1))
	assert.Equal(t, []int{10, 30}, n.Keys)
	assert.Equal(t, 10, n.RemoveKey(0))
	assert.Equal(t, []int{30}, n.Keys)

	assert.Panics(t, func() { n.RemoveKey(1) })
	assert.Panics(t, func() { n.RemoveKey(-1) })
}

func TestNodeCapacity(t *testing.T) {
	for _, degree := range []int{2, 3, 5, 32} {
		n := NewNode[int](degree, true)
		assert.Equal(t, 2*degree-1, n.Capacity())
		assert.Equal(t, degree-1, n.MinKeys())
		assert.False(t, n.IsFull())

		for i := 0; i < n.Capacity(); i++ {
			n.InsertKey(i)
		}
		assert.True(t, n.IsFull())
	}
}

func TestNodeSplitLeaf(t *testing.T) {
	n := makeLeaf(3, 1, 2, 3, 4, 5)

	median, left, right := n.Split()
	assert.Equal(t, 3, median)
	assert.Equal(t, []int{1, 2}, left.Keys)
	assert.Equal(t, []int{4, 5}, right.Keys)
	assert.True(t, left.IsLeaf())
	assert.True(t, right.IsLeaf())
	assert.Equal(t, 3, left.Degree)
	assert.Equal(t, 3, right.Degree)
	assert.Empty(t, left.Children)
	assert.Empty(t, right.Children)

	// Receiver is not mutated
	assert.Equal(t, []int{1, 2, 3, 4, 5}, n.Keys)
}

func TestNodeSplitBranch(t *testing.T) {
	n := NewNode[int](2, false)
	n.Keys = append(n.Keys, 10, 20, 30)
	n.Children = append(n.Children, 1, 2, 3, 4)

	median, left, right := n.Split()
	assert.Equal(t, 20, median)
	assert.Equal(t, []int{10}, left.Keys)
	assert.Equal(t, []int{30}, right.Keys)
	assert.Equal(t, []NodeID{1, 2}, left.Children)
	assert.Equal(t, []NodeID{3, 4}, right.Children)
	assert.False(t, left.IsLeaf())
	assert.False(t, right.IsLeaf())
}

func TestNodeSplitNonFullPanics(t *testing.T) {
	n := makeLeaf(3, 1, 2, 3)
	assert.Panics(t, func() { n.Split() })
}

func TestNodeChildren(t *testing.T) {
	n := NewNode[int](3, false)
	n.InsertChildAt(0, 7)
	n.InsertChildAt(1, 9)
	n.InsertChildAt(1, 8)
	assert.Equal(t, []NodeID{7, 8, 9}, n.Children)

	assert.Equal(t, NodeID(8), n.RemoveChild(1))
	assert.Equal(t, []NodeID{7, 9}, n.Children)
}

func TestNodeLocate(t *testing.T) {
	n := makeLeaf(3, 2, 4, 6)

	idx, found := n.Locate(4)
	assert.True(t, found)
	assert.Equal(t, 1, idx)

	idx, found = n.Locate(5)
	assert.False(t, found)
	assert.Equal(t, 2, idx)

	idx, found = n.Locate(7)
	assert.False(t, found)
	assert.Equal(t, 3, idx)

	assert.Equal(t, 0, n.ChildIndex(2))
	assert.Equal(t, 3, n.ChildIndex(100))

	empty := NewNode[int](3, true)
	assert.Panics(t, func() { empty.Locate(1) })
}

func TestNodeReset(t *testing.T) {
	n := NewNode[int](2, false)
	n.Keys = append(n.Keys, 1)
	n.Children = append(n.Children, 1, 2)

	n.Reset()
	assert.Empty(t, n.Keys)
	assert.Empty(t, n.Children)
	assert.False(t, n.Leaf)
	assert.Equal(t, 3, cap(n.Keys))
}
