package memtree

import (
	"cmp"

	"github.com/alexhholmes/memtree/internal/base"
)

// path represents one level in the cursor's navigation path from root to the
// current key. On the top of the stack index is the current key of that node.
// Below the top, index is the child the cursor descended into, which is also
// the key that follows that subtree in order.
type path struct {
	id    base.NodeID
	index int
}

// Cursor provides ordered iteration over the keys of a Tree.
//
// Like Node views, a Cursor is invalidated by Insert.
type Cursor[K cmp.Ordered] struct {
	tree  *Tree[K]
	stack []path // Navigation path from root to current node
	key   K      // Cached current key
	valid bool   // Is cursor positioned on valid key?
}

// Cursor returns an unpositioned cursor over t.
func (t *Tree[K]) Cursor() *Cursor[K] {
	return &Cursor[K]{
		tree:  t,
		stack: make([]path, 0, t.height),
	}
}

// First positions the cursor at the smallest key.
func (c *Cursor[K]) First() (K, bool) {
	c.stack = c.stack[:0]
	c.valid = false

	if c.tree.root == base.InvalidID {
		var zero K
		return zero, false
	}

	c.descendLeft(c.tree.root)
	return c.settle()
}

// Seek positions the cursor at the first key >= key.
func (c *Cursor[K]) Seek(key K) (K, bool) {
	c.stack = c.stack[:0]
	c.valid = false

	if c.tree.root == base.InvalidID {
		var zero K
		return zero, false
	}

	// Always descend: with duplicates an equal key may also sit in the
	// subtree left of a match.
	id := c.tree.root
	for {
		n := c.tree.nodes.Get(id)
		i := n.ChildIndex(key)
		c.stack = append(c.stack, path{id: id, index: i})
		if n.IsLeaf() {
			break
		}
		id = n.Children[i]
	}

	return c.settle()
}

// Next advances the cursor to the following key in order.
func (c *Cursor[K]) Next() (K, bool) {
	if !c.valid {
		var zero K
		return zero, false
	}

	top := &c.stack[len(c.stack)-1]
	n := c.tree.nodes.Get(top.id)
	top.index++

	if !n.IsLeaf() {
		// Successor of a branch key is the leftmost key right of it
		c.descendLeft(n.Children[top.index])
	}

	return c.settle()
}

// Key returns the current key. Only meaningful while Valid.
func (c *Cursor[K]) Key() K {
	return c.key
}

// Valid reports whether the cursor is positioned on a key.
func (c *Cursor[K]) Valid() bool {
	return c.valid
}

// descendLeft pushes the path from id down to its leftmost leaf.
func (c *Cursor[K]) descendLeft(id base.NodeID) {
	for {
		n := c.tree.nodes.Get(id)
		c.stack = append(c.stack, path{id: id, index: 0})
		if n.IsLeaf() {
			return
		}
		id = n.Children[0]
	}
}

// settle pops exhausted nodes until the top of the stack points at a key,
// and caches it.
func (c *Cursor[K]) settle() (K, bool) {
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		n := c.tree.nodes.Get(top.id)
		if top.index < len(n.Keys) {
			c.key = n.Keys[top.index]
			c.valid = true
			return c.key, true
		}
		c.stack = c.stack[:len(c.stack)-1]
	}

	var zero K
	c.key = zero
	c.valid = false
	return zero, false
}

// Ascend calls fn for every key in ascending order until fn returns false.
func (t *Tree[K]) Ascend(fn func(key K) bool) {
	c := t.Cursor()
	for k, ok := c.First(); ok; k, ok = c.Next() {
		if !fn(k) {
			return
		}
	}
}

// AscendGreaterOrEqual calls fn for every key >= pivot in ascending order
// until fn returns false.
func (t *Tree[K]) AscendGreaterOrEqual(pivot K, fn func(key K) bool) {
	c := t.Cursor()
	for k, ok := c.Seek(pivot); ok; k, ok = c.Next() {
		if !fn(k) {
			return
		}
	}
}
