// Package sekai stores per-entity data in sparse columns keyed by a shared
// slot index, and finds the entities holding a given set of columns by
// intersecting three-level radix bitmaps.
//
// An Entities allocator pairs a never-reused Handle with a recyclable Index.
// A Column[T] keeps a presence Bitset and a dense slice addressed by Index.
// Queries over one to four columns walk the intersection of their bitsets
// block by block, skipping any 256-slot region that is empty in one of them:
//
//	w := sekai.NewWorld()
//	pos := sekai.NewColumn[Position](w)
//	vel := sekai.NewColumn[Velocity](w)
//
//	_, i := w.Spawn()
//	pos.Insert(i, Position{})
//	vel.Insert(i, Velocity{X: 1})
//
//	q, err := sekai.NewQuery2[Position, Velocity](pos, vel)
//	if err != nil {
//	    return err
//	}
//	for q.Next() {
//	    p, v := q.Get()
//	    p.X += v.X
//	}
//
// Terms wrapped with Maybe do not narrow a query and yield nil where absent.
//
// A World is single-threaded. Systems declaring disjoint column access can
// run concurrently through World.RunParallel.
package sekai

//go:generate go run ./cmd/generate
