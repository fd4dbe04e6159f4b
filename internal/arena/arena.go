// Package arena stores b-tree nodes in a flat pool addressed by integer
// handles, so tree code can hold a handle to the current node and its parent
// at the same time without nested ownership.
package arena

import (
	"cmp"
	"fmt"

	"github.com/alexhholmes/memtree/internal/base"
)

// Arena owns every node of one tree. Slot 0 is reserved so that
// base.InvalidID never names a live node.
//
// Pointers returned by Get are only valid until the next Alloc, which may
// grow the backing slice. Re-fetch by NodeID after allocating.
type Arena[K cmp.Ordered] struct {
	nodes    []base.Node[K]
	live     []bool
	freelist Freelist
}

// New creates an empty arena.
func New[K cmp.Ordered]() *Arena[K] {
	return &Arena[K]{
		nodes: make([]base.Node[K], 1),
		live:  make([]bool, 1),
	}
}

// Alloc moves n into the arena and returns its handle. Freed slots are
// reused before the pool grows.
func (a *Arena[K]) Alloc(n *base.Node[K]) base.NodeID {
	if id := a.freelist.Allocate(); id != base.InvalidID {
		a.nodes[id] = *n
		a.live[id] = true
		return id
	}

	a.nodes = append(a.nodes, *n)
	a.live = append(a.live, true)
	return base.NodeID(len(a.nodes) - 1)
}

// Get returns the node stored at id. Referencing a freed or unknown slot is
// a programming error.
func (a *Arena[K]) Get(id base.NodeID) *base.Node[K] {
	if int(id) >= len(a.nodes) || !a.live[id] {
		panic(fmt.Sprintf("arena: reference to dead node %d", id))
	}
	return &a.nodes[id]
}

// Free releases the slot at id. The node it held must no longer be
// reachable from the tree.
func (a *Arena[K]) Free(id base.NodeID) {
	if int(id) >= len(a.nodes) || !a.live[id] {
		panic(fmt.Sprintf("arena: double free of node %d", id))
	}
	a.nodes[id].Reset()
	a.live[id] = false
	a.freelist.Free(id)
}

// Len returns the number of live nodes.
func (a *Arena[K]) Len() int {
	return len(a.nodes) - 1 - a.freelist.Len()
}

// Slots returns the number of slots ever allocated, live or free.
func (a *Arena[K]) Slots() int {
	return len(a.nodes) - 1
}
