// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/sekai"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := sekai.NewWorld(sekai.WithCapacity(numEntities))
		c1 := sekai.NewColumn[comp1](w)
		c2 := sekai.NewColumn[comp2](w)
		query, err := sekai.NewQuery2[comp1, comp2](c1, c2)
		if err != nil {
			panic(err)
		}
		handles := make([]sekai.Handle, 0, numEntities)

		for range iters {
			for range numEntities {
				h, i := w.Spawn()
				c1.Insert(i, comp1{})
				c2.Insert(i, comp2{V: 1, W: 1})
				handles = append(handles, h)
			}
			query.Reset()
			for query.Next() {
				a, b := query.Get()
				a.V += b.V
				a.W += b.W
			}
			for _, h := range handles {
				w.Despawn(h)
			}
			handles = handles[:0]
		}
	}
}
