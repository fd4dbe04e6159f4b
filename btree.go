// Package memtree implements an in-memory B-tree ordered index.
//
// A Tree of minimum degree t keeps every node except the root between t-1 and
// 2t-1 keys. Insertion splits any full node before descending into it, so the
// leaf that finally receives the key always has room and no split ever has to
// propagate back up. The root is grown (split into two children under a new
// single-key root) at the start of an insertion when it is full; this is the
// only way the tree gets taller.
//
// Equal keys are kept, never merged, and placed in front of existing equal
// keys. There is no deletion.
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must guard it with their own lock.
package memtree

import (
	"cmp"
	"fmt"

	"github.com/alexhholmes/memtree/internal/arena"
	"github.com/alexhholmes/memtree/internal/base"
	"github.com/alexhholmes/memtree/internal/cache"
)

// Tree is an in-memory B-tree of ordered keys.
type Tree[K cmp.Ordered] struct {
	degree int
	root   base.NodeID     // InvalidID while the tree is empty
	nodes  *arena.Arena[K] // Owns every node reachable from root
	length int
	height int

	cache           *cache.Cache[K] // nil unless WithSearchCache
	logger          Logger
	checkInvariants bool
}

// New creates an empty Tree with the given minimum degree.
//
// New(2), for example, will create a 2-3-4 tree (each node contains 1-3 keys
// and 2-4 children). A degree below 2 panics.
func New[K cmp.Ordered](degree int, options ...Option) *Tree[K] {
	if degree < 2 {
		panic(fmt.Sprintf("bad degree %d", degree))
	}

	// Apply options
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	t := &Tree[K]{
		degree:          degree,
		nodes:           arena.New[K](),
		logger:          opts.logger,
		checkInvariants: opts.checkInvariants,
	}

	if opts.searchCacheSize > 0 {
		c, err := cache.New[K](opts.searchCacheSize)
		if err != nil {
			t.logger.Warn("search cache disabled", "size", opts.searchCacheSize, "error", err)
		} else {
			t.cache = c
		}
	}

	return t
}

// Degree returns the minimum degree t the tree was created with.
func (t *Tree[K]) Degree() int {
	return t.degree
}

// Len returns the number of keys in the tree, duplicates included.
func (t *Tree[K]) Len() int {
	return t.length
}

// Height returns the number of levels in the tree; 0 when empty.
func (t *Tree[K]) Height() int {
	return t.height
}

// Root returns a view of the root node, or false if the tree is empty.
func (t *Tree[K]) Root() (Node[K], bool) {
	if t.root == base.InvalidID {
		return Node[K]{}, false
	}
	return t.view(t.root), true
}

// Search returns the node holding key, or false if key was never inserted.
func (t *Tree[K]) Search(key K) (Node[K], bool) {
	if t.root == base.InvalidID {
		return Node[K]{}, false
	}

	if t.cache != nil {
		if id, ok := t.cache.Get(key); ok {
			return t.view(id), true
		}
	}

	for id := t.root; ; {
		n := t.nodes.Get(id)
		i, found := n.Locate(key)
		if found {
			if t.cache != nil {
				t.cache.Put(key, id)
			}
			return t.view(id), true
		}
		if n.IsLeaf() {
			return Node[K]{}, false
		}
		id = n.Children[i]
	}
}

// Has reports whether key is in the tree.
func (t *Tree[K]) Has(key K) bool {
	_, ok := t.Search(key)
	return ok
}

// Insert adds key to the tree. Existing equal keys are kept.
func (t *Tree[K]) Insert(key K) {
	// The tree is empty, so initialize a new leaf root.
	if t.root == base.InvalidID {
		root := base.NewNode[K](t.degree, true)
		root.InsertKey(key)
		t.root = t.nodes.Alloc(root)
		t.length = 1
		t.height = 1
		t.verifyIfEnabled()
		return
	}

	// The tree root is full, so grow the tree by one level before descending.
	if t.nodes.Get(t.root).IsFull() {
		t.growRoot()
	}

	id := t.root
	for {
		n := t.nodes.Get(id)
		if n.IsLeaf() {
			break
		}

		i := n.ChildIndex(key)
		child := n.Children[i]
		if t.nodes.Get(child).IsFull() {
			// The promoted median may change which child covers key, so
			// re-derive the index on the now larger parent.
			t.splitChild(id, i)
			continue
		}
		id = child
	}

	t.nodes.Get(id).InsertKey(key)
	t.length++
	t.verifyIfEnabled()
}

// growRoot moves the root's keys into two new children, keeping only the
// median in the root. Children of an internal root are divided the same way.
func (t *Tree[K]) growRoot() {
	root := t.nodes.Get(t.root)
	mid := t.degree - 1

	left := base.NewNode[K](t.degree, root.IsLeaf())
	right := base.NewNode[K](t.degree, root.IsLeaf())

	var median K
	for i, n := 0, root.Capacity(); i < n; i++ {
		key := root.RemoveKey(0)
		switch {
		case i < mid:
			left.InsertKey(key)
		case i > mid:
			right.InsertKey(key)
		default:
			median = key
		}
	}

	if !root.IsLeaf() {
		left.Children = append(left.Children, root.Children[:t.degree]...)
		right.Children = append(right.Children, root.Children[t.degree:]...)
	}

	leftID := t.nodes.Alloc(left)
	rightID := t.nodes.Alloc(right)

	// Alloc may have grown the arena, so re-fetch the root
	root = t.nodes.Get(t.root)
	root.Keys = append(root.Keys[:0], median)
	root.Children = append(root.Children[:0], leftID, rightID)
	root.Leaf = false

	t.height++
	t.purgeCache()
	t.logger.Info("root grown", "height", t.height, "len", t.length)
}

// splitChild splits the full child at index i of parent in place: the child
// is replaced by its two halves and its median moves into parent.
func (t *Tree[K]) splitChild(parentID base.NodeID, i int) {
	parent := t.nodes.Get(parentID)
	childID := parent.RemoveChild(i)

	median, left, right := t.nodes.Get(childID).Split()
	t.nodes.Free(childID)
	leftID := t.nodes.Alloc(left)
	rightID := t.nodes.Alloc(right)

	parent = t.nodes.Get(parentID)
	pos := parent.InsertKey(median)
	parent.InsertChildAt(pos, leftID)
	parent.InsertChildAt(pos+1, rightID)

	t.purgeCache()
}

func (t *Tree[K]) purgeCache() {
	if t.cache != nil {
		t.cache.Purge()
	}
}

func (t *Tree[K]) view(id base.NodeID) Node[K] {
	return Node[K]{tree: t, id: id}
}

// Stats describes the shape of a tree and its search cache.
type Stats struct {
	Len    int
	Height int
	Nodes  int

	CacheHits   uint64
	CacheMisses uint64
	CachePurges uint64
}

// Stats returns tree statistics
func (t *Tree[K]) Stats() Stats {
	s := Stats{
		Len:    t.length,
		Height: t.height,
		Nodes:  t.nodes.Len(),
	}
	if t.cache != nil {
		cs := t.cache.Stats()
		s.CacheHits, s.CacheMisses, s.CachePurges = cs.Hits, cs.Misses, cs.Purges
	}
	return s
}
