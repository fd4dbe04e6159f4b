package cache

import (
	"cmp"
	"fmt"

	"github.com/elastic/go-freelru"

	"github.com/alexhholmes/memtree/internal/base"
)

// Cache remembers which node a previously found key lives in. Entries are
// only valid until the tree moves keys between nodes, so the owner must call
// Purge on every split.
type Cache[K cmp.Ordered] struct {
	lru *freelru.LRU[K, base.NodeID]

	// Stats
	hits   uint64
	misses uint64
	purges uint64
}

type Stats struct {
	Hits   uint64
	Misses uint64
	Purges uint64
}

// New creates a search cache holding at most size entries.
func New[K cmp.Ordered](size uint32) (*Cache[K], error) {
	lru, err := freelru.New[K, base.NodeID](size, HashKey[K])
	if err != nil {
		return nil, fmt.Errorf("create search cache: %w", err)
	}
	return &Cache[K]{lru: lru}, nil
}

// Get returns the node recorded for key.
// Returns (id, true) on cache hit, (InvalidID, false) on miss.
func (c *Cache[K]) Get(key K) (base.NodeID, bool) {
	id, ok := c.lru.Get(key)
	if !ok {
		c.misses++
		return base.InvalidID, false
	}
	c.hits++
	return id, true
}

// Put records that key was found in node id.
func (c *Cache[K]) Put(key K, id base.NodeID) {
	c.lru.Add(key, id)
}

// Purge drops every entry.
func (c *Cache[K]) Purge() {
	if c.lru.Len() == 0 {
		return
	}
	c.lru.Purge()
	c.purges++
}

// Len returns the current number of cached entries
func (c *Cache[K]) Len() int {
	return c.lru.Len()
}

// Stats returns cache statistics
func (c *Cache[K]) Stats() Stats {
	return Stats{
		Hits:   c.hits,
		Misses: c.misses,
		Purges: c.purges,
	}
}
