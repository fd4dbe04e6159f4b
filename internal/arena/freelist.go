package arena

import (
	"github.com/alexhholmes/memtree/internal/base"
)

// Freelist tracks arena slots whose node has been consumed and can be handed
// out again. Slots are reused last-freed first, so a split that frees one
// slot and allocates two reuses the freed slot for its left half.
type Freelist struct {
	freed []base.NodeID
}

// Allocate returns a free NodeID, or base.InvalidID if none available.
func (f *Freelist) Allocate() base.NodeID {
	if len(f.freed) == 0 {
		return base.InvalidID
	}

	id := f.freed[len(f.freed)-1]
	f.freed = f.freed[:len(f.freed)-1]
	return id
}

// Free adds a NodeID to the free list
func (f *Freelist) Free(id base.NodeID) {
	f.freed = append(f.freed, id)
}

// Len returns the number of reusable slots.
func (f *Freelist) Len() int {
	return len(f.freed)
}
