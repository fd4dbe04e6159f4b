package memtree

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorEmptyTree(t *testing.T) {
	t.Parallel()

	c := New[int](3).Cursor()

	_, ok := c.First()
	assert.False(t, ok)
	assert.False(t, c.Valid())

	_, ok = c.Seek(10)
	assert.False(t, ok)

	_, ok = c.Next()
	assert.False(t, ok)
}

func TestCursorForwardIteration(t *testing.T) {
	t.Parallel()

	for _, degree := range []int{2, 3, 8} {
		tree := New[int](degree)
		keys := rand.New(rand.NewSource(int64(degree))).Perm(777)
		insertAll(tree, keys...)

		c := tree.Cursor()
		var got []int
		for k, ok := c.First(); ok; k, ok = c.Next() {
			assert.True(t, c.Valid())
			assert.Equal(t, k, c.Key())
			got = append(got, k)
		}
		assert.False(t, c.Valid())

		slices.Sort(keys)
		assert.Equal(t, keys, got, "degree %d", degree)

		// Exhausted cursor stays exhausted
		_, ok := c.Next()
		assert.False(t, ok)
	}
}

func TestCursorSeek(t *testing.T) {
	t.Parallel()

	tree := New[int](3)
	for i := 0; i < 100; i++ {
		tree.Insert(i * 10)
	}

	tests := []struct {
		name  string
		seek  int
		want  int
		valid bool
	}{
		{name: "before_first", seek: -5, want: 0, valid: true},
		{name: "exact_first", seek: 0, want: 0, valid: true},
		{name: "exact_middle", seek: 500, want: 500, valid: true},
		{name: "between_keys", seek: 501, want: 510, valid: true},
		{name: "exact_last", seek: 990, want: 990, valid: true},
		{name: "past_last", seek: 991, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tree.Cursor()
			k, ok := c.Seek(tt.seek)
			require.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, k)
			}
		})
	}
}

func TestCursorSeekThenNext(t *testing.T) {
	t.Parallel()

	tree := New[int](2)
	keys := rand.New(rand.NewSource(1)).Perm(300)
	insertAll(tree, keys...)

	for _, pivot := range []int{0, 1, 57, 150, 298, 299} {
		var got []int
		tree.AscendGreaterOrEqual(pivot, func(k int) bool {
			got = append(got, k)
			return true
		})
		assert.Equal(t, seq(pivot, 299), got, "pivot %d", pivot)
	}
}

func TestCursorSeekDuplicates(t *testing.T) {
	t.Parallel()

	tree := New[int](2)
	for i := 0; i < 20; i++ {
		tree.Insert(5)
	}
	insertAll(tree, 1, 2, 8, 9)

	// Seek lands on the first of the equal keys
	var got []int
	tree.AscendGreaterOrEqual(5, func(k int) bool {
		got = append(got, k)
		return true
	})
	require.Len(t, got, 22)
	assert.Equal(t, 5, got[0])
	assert.Equal(t, 5, got[19])
	assert.Equal(t, []int{8, 9}, got[20:])
}

func TestAscendStopsEarly(t *testing.T) {
	t.Parallel()

	tree := New[int](3)
	insertAll(tree, seq(1, 50)...)

	var got []int
	tree.Ascend(func(k int) bool {
		got = append(got, k)
		return k < 10
	})
	assert.Equal(t, seq(1, 10), got)
}
