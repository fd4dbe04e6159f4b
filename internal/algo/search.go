// Package algo contains the key search primitives used for traversing and
// editing a b-tree node.
package algo

import (
	"cmp"
	"sort"
)

const searchThreshold = 32

// LowerBound returns the first index whose key is >= key, or len(keys) if
// every key is smaller. Equal keys are skipped over from the right, so a new
// key inserted at the returned index lands before existing equal keys.
func LowerBound[K cmp.Ordered](keys []K, key K) int {
	if len(keys) < searchThreshold {
		i := 0
		for i < len(keys) && key > keys[i] {
			i++
		}
		return i
	}

	return sort.Search(len(keys), func(i int) bool {
		return keys[i] >= key
	})
}

// FindKey returns the lower bound of key and whether the key at that index
// equals key.
func FindKey[K cmp.Ordered](keys []K, key K) (int, bool) {
	i := LowerBound(keys, key)
	return i, i < len(keys) && keys[i] == key
}

// FindChildIndex returns the index of the child pointer to follow for key in
// a branch node holding keys: the first index where key <= keys[i], else the
// last child.
func FindChildIndex[K cmp.Ordered](keys []K, key K) int {
	return LowerBound(keys, key)
}
