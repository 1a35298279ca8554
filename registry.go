package sekai

// attachable is a column the World clears when an entity is despawned.
type attachable interface {
	discard(i Index)
	reset()
	Domain() int
}

// columnRegistry is the list of columns owned by a World. Slots of detached
// columns are recycled through a free list; each column is present at most
// once.
type columnRegistry struct {
	items   []attachable
	ids     map[attachable]int
	freeIDs []int
}

// add registers c and returns its ID, or the existing ID if c is already
// registered.
func (r *columnRegistry) add(c attachable) int {
	if r.ids == nil {
		r.ids = make(map[attachable]int)
	}
	if id, ok := r.ids[c]; ok {
		return id
	}
	var id int
	if len(r.freeIDs) > 0 {
		id = r.freeIDs[len(r.freeIDs)-1]
		r.freeIDs = r.freeIDs[:len(r.freeIDs)-1]
		r.items[id] = c
	} else {
		r.items = append(r.items, c)
		id = len(r.items) - 1
	}
	r.ids[c] = id
	return id
}

// remove unregisters the column with the given ID and reports whether it
// was registered.
func (r *columnRegistry) remove(id int) bool {
	if id < 0 || id >= len(r.items) || r.items[id] == nil {
		return false
	}
	delete(r.ids, r.items[id])
	r.items[id] = nil
	r.freeIDs = append(r.freeIDs, id)
	return true
}

// each calls fn for every registered column.
func (r *columnRegistry) each(fn func(attachable)) {
	for _, c := range r.items {
		if c != nil {
			fn(c)
		}
	}
}

// size returns the number of registered columns.
func (r *columnRegistry) size() int {
	return len(r.ids)
}
