package memtree

import (
	"fmt"

	"github.com/alexhholmes/memtree/internal/base"
)

// bounds holds the key range a subtree must stay within. A nil bound is open.
type bounds[K any] struct {
	lo, hi *K
}

// Verify walks the whole tree and checks its structural invariants:
//   - keys in every node are in non-decreasing order
//   - every key of children[i] lies between keys[i-1] and keys[i]
//   - non-root nodes hold between t-1 and 2t-1 keys, the root 1 to 2t-1
//   - internal nodes have exactly len(keys)+1 children
//   - all leaves are at the same depth, equal to Height
//   - the number of keys and nodes matches what the tree recorded
//
// It returns an error wrapping ErrInvariant describing the first violation.
func (t *Tree[K]) Verify() error {
	if t.root == base.InvalidID {
		if t.length != 0 || t.height != 0 {
			return fmt.Errorf("%w: empty tree records len %d height %d", ErrInvariant, t.length, t.height)
		}
		return nil
	}

	var keys, nodes int
	if err := t.verifyNode(t.root, bounds[K]{}, 1, &keys, &nodes); err != nil {
		return err
	}

	if keys != t.length {
		return fmt.Errorf("%w: counted %d keys, recorded %d", ErrInvariant, keys, t.length)
	}
	if nodes != t.nodes.Len() {
		return fmt.Errorf("%w: %d reachable nodes, %d allocated", ErrInvariant, nodes, t.nodes.Len())
	}
	return nil
}

func (t *Tree[K]) verifyNode(id base.NodeID, b bounds[K], depth int, keys, nodes *int) error {
	n := t.nodes.Get(id)
	*nodes++
	*keys += len(n.Keys)

	if n.Degree != t.degree {
		return fmt.Errorf("%w: node %d has degree %d, tree has %d", ErrInvariant, id, n.Degree, t.degree)
	}

	minKeys := n.MinKeys()
	if id == t.root {
		minKeys = 1
	}
	if len(n.Keys) < minKeys || len(n.Keys) > n.Capacity() {
		return fmt.Errorf("%w: node %d at depth %d has %d keys, want [%d,%d]",
			ErrInvariant, id, depth, len(n.Keys), minKeys, n.Capacity())
	}

	for i := 1; i < len(n.Keys); i++ {
		if n.Keys[i] < n.Keys[i-1] {
			return fmt.Errorf("%w: node %d keys out of order at %d: %v < %v",
				ErrInvariant, id, i, n.Keys[i], n.Keys[i-1])
		}
	}
	if b.lo != nil && n.Keys[0] < *b.lo {
		return fmt.Errorf("%w: node %d key %v below separator %v", ErrInvariant, id, n.Keys[0], *b.lo)
	}
	if last := n.Keys[len(n.Keys)-1]; b.hi != nil && last > *b.hi {
		return fmt.Errorf("%w: node %d key %v above separator %v", ErrInvariant, id, last, *b.hi)
	}

	if n.IsLeaf() {
		if len(n.Children) != 0 {
			return fmt.Errorf("%w: leaf %d has %d children", ErrInvariant, id, len(n.Children))
		}
		if depth != t.height {
			return fmt.Errorf("%w: leaf %d at depth %d, height is %d", ErrInvariant, id, depth, t.height)
		}
		return nil
	}

	if len(n.Children) != len(n.Keys)+1 {
		return fmt.Errorf("%w: node %d has %d keys and %d children",
			ErrInvariant, id, len(n.Keys), len(n.Children))
	}

	for i, child := range n.Children {
		cb := b
		if i > 0 {
			cb.lo = &n.Keys[i-1]
		}
		if i < len(n.Keys) {
			cb.hi = &n.Keys[i]
		}
		if err := t.verifyNode(child, cb, depth+1, keys, nodes); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree[K]) verifyIfEnabled() {
	if !t.checkInvariants {
		return
	}
	if err := t.Verify(); err != nil {
		t.logger.Error("invariant check failed", "error", err, "len", t.length, "height", t.height)
		panic(err)
	}
}
