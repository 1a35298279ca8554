package sekai

import "math"

// Handle is the externally visible identity of an entity. Handles come from
// a monotonic counter starting at 1 and are never reused, so the zero Handle
// never names a live entity.
type Handle uint64

// Entities allocates identities: a never-reused Handle paired with a
// recyclable Index. The handle-to-index map is the single source of truth
// for liveness; a freed handle is gone from the map, so it can never resolve
// to an index that has since been handed to another entity.
//
// The zero value allocates over the full MaxSlots domain.
type Entities struct {
	indices    map[Handle]Index
	handles    Column[Handle] // index -> handle
	freed      Bitset         // indices available for reuse
	nextIndex  Index          // next never-used index
	lastHandle Handle         // last issued handle, 0 before the first
}

// NewEntities returns an allocator whose indices stay below capacity.
func NewEntities(capacity int) *Entities {
	return &Entities{
		indices: make(map[Handle]Index),
		handles: Column[Handle]{mask: *NewBitset(capacity)},
		freed:   *NewBitset(capacity),
	}
}

// Allocate issues a new handle and an index for it. The lowest freed index
// is reused first; otherwise the index counter advances. Allocate panics with
// ErrCapacityExhausted, leaving the allocator untouched, when either the
// index domain or the handle counter is used up.
func (e *Entities) Allocate() (Handle, Index) {
	index, recycled := e.freed.First()
	if !recycled && int(e.nextIndex) >= e.handles.Domain() {
		capacityPanic("no entity index left to allocate (capacity %d)", e.handles.Domain())
	}
	if e.lastHandle == math.MaxUint64 {
		capacityPanic("no entity handle left to allocate")
	}

	if recycled {
		e.freed.Remove(index)
	} else {
		index = e.nextIndex
		e.nextIndex++
	}
	e.lastHandle++
	h := e.lastHandle
	if e.indices == nil {
		e.indices = make(map[Handle]Index)
	}
	e.indices[h] = index
	e.handles.Insert(index, h)
	return h, index
}

// Free releases h and returns the index it occupied so the caller can clear
// any columns keyed by it. Freeing an unknown or already freed handle
// returns false and changes nothing.
func (e *Entities) Free(h Handle) (Index, bool) {
	index, ok := e.indices[h]
	if !ok {
		return 0, false
	}
	delete(e.indices, h)
	e.handles.Remove(index)
	e.freed.Insert(index)
	return index, true
}

// Get translates a live handle to its index.
func (e *Entities) Get(h Handle) (Index, bool) {
	index, ok := e.indices[h]
	return index, ok
}

// Contains reports whether h is live.
func (e *Entities) Contains(h Handle) bool {
	_, ok := e.indices[h]
	return ok
}

// Handle returns the handle currently occupying index.
func (e *Entities) Handle(index Index) (Handle, bool) {
	return e.handles.Get(index)
}

// Handles returns the index-keyed handle column, for use as a query term.
// It must not be modified.
func (e *Entities) Handles() *Column[Handle] {
	return &e.handles
}

// Len returns the number of live entities.
func (e *Entities) Len() int {
	return len(e.indices)
}

// Capacity returns the size of the index domain.
func (e *Entities) Capacity() int {
	return e.handles.Domain()
}

// Each calls fn for every live entity in ascending index order.
func (e *Entities) Each(fn func(Handle, Index)) {
	e.handles.Each(func(i Index, h *Handle) {
		fn(*h, i)
	})
}

// Reset frees every entity and rewinds the index counter. The handle counter
// keeps running, so handles issued before the reset stay dead.
func (e *Entities) Reset() {
	clear(e.indices)
	e.handles.Clear()
	e.freed.Clear()
	e.nextIndex = 0
}
