package memtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/alexhholmes/memtree/internal/base"
	"github.com/alexhholmes/memtree/internal/cache"
)

// Checksum returns an xxhash of the in-order key sequence. Two trees holding
// the same keys have the same checksum regardless of degree or insertion
// order.
func (t *Tree[K]) Checksum() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)
	t.Ascend(func(key K) bool {
		buf = cache.AppendKey(buf[:0], key)
		_, _ = d.Write(buf)
		return true
	})
	return d.Sum64()
}

// Levels returns the keys of every node, grouped by depth from the root and
// ordered left to right within a level.
func (t *Tree[K]) Levels() [][][]K {
	if t.root == base.InvalidID {
		return nil
	}

	var levels [][][]K
	frontier := []base.NodeID{t.root}
	for len(frontier) > 0 {
		var next []base.NodeID
		level := make([][]K, 0, len(frontier))
		for _, id := range frontier {
			n := t.nodes.Get(id)
			level = append(level, append([]K(nil), n.Keys...))
			next = append(next, n.Children...)
		}
		levels = append(levels, level)
		frontier = next
	}
	return levels
}

// Fprint writes the tree one level per line, each node as its bracketed key
// list, e.g.
//
//	[3 6]
//	[1 2] [4 5] [7 8 9]
func (t *Tree[K]) Fprint(w io.Writer) error {
	for _, level := range t.Levels() {
		nodes := make([]string, len(level))
		for i, keys := range level {
			nodes[i] = fmt.Sprint(keys)
		}
		if _, err := fmt.Fprintln(w, strings.Join(nodes, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree[K]) String() string {
	var sb strings.Builder
	_ = t.Fprint(&sb)
	return sb.String()
}
