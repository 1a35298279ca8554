package sekai

import (
	"context"

	"github.com/pkg/errors"
)

// World owns the entity allocator, the columns attached to it, an event bus
// and the options they were built with. Everything shares one address-space
// domain, set with WithCapacity.
//
// A World is not safe for concurrent use. Work that touches disjoint columns
// may run in parallel through RunParallel.
type World struct {
	entities *Entities
	columns  columnRegistry
	events   EventBus
	log      *Logger
	opts     options
}

// NewWorld creates an empty World.
func NewWorld(opts ...Option) *World {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &World{
		entities: NewEntities(o.capacity),
		log:      o.logger,
		opts:     o,
	}
}

// NewColumn creates a column in w's domain and attaches it, so despawned
// entities are cleared from it automatically.
func NewColumn[T any](w *World) *Column[T] {
	c := NewDetachedColumn[T](w.opts.capacity)
	id := w.columns.add(c)
	w.log.LogAttach(context.Background(), id, true)
	return c
}

// Attach registers an existing column with w and returns its ID. The column
// must have been built over w's domain.
func (w *World) Attach(c attachable) (int, error) {
	if c.Domain() != w.opts.capacity {
		return -1, errors.Wrapf(ErrDomainMismatch, "column capacity %d, world capacity %d", c.Domain(), w.opts.capacity)
	}
	id := w.columns.add(c)
	w.log.LogAttach(context.Background(), id, true)
	return id, nil
}

// Detach stops clearing the column with the given ID on despawn.
func (w *World) Detach(id int) bool {
	ok := w.columns.remove(id)
	if ok {
		w.log.LogAttach(context.Background(), id, false)
	}
	return ok
}

// Capacity returns the world's address-space domain.
func (w *World) Capacity() int {
	return w.opts.capacity
}

// Entities returns the world's identity allocator.
func (w *World) Entities() *Entities {
	return w.entities
}

// Events returns the world's event bus.
func (w *World) Events() *EventBus {
	return &w.events
}

// Logger returns the world's logger.
func (w *World) Logger() *Logger {
	return w.log
}

// Spawn allocates an entity and publishes Spawned.
func (w *World) Spawn() (Handle, Index) {
	h, i := w.entities.Allocate()
	Publish(&w.events, Spawned{Handle: h, Index: i})
	return h, i
}

// Lookup translates a handle to its index. It returns false for handles
// that were never issued or have been despawned.
func (w *World) Lookup(h Handle) (Index, bool) {
	return w.entities.Get(h)
}

// Despawn frees h, removes its index from every attached column and
// publishes Despawned. It reports false, doing nothing, if h is not live.
func (w *World) Despawn(h Handle) bool {
	i, ok := w.entities.Free(h)
	if !ok {
		return false
	}
	w.columns.each(func(c attachable) {
		c.discard(i)
	})
	w.log.LogDespawn(context.Background(), h, i, w.columns.size())
	Publish(&w.events, Despawned{Handle: h, Index: i})
	return true
}

// Reset despawns every entity without publishing events and clears every
// attached column. Handles issued before the reset stay dead.
func (w *World) Reset() {
	n := w.entities.Len()
	w.entities.Reset()
	w.columns.each(func(c attachable) {
		c.reset()
	})
	w.log.LogReset(context.Background(), n, w.columns.size())
}
