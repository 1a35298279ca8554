// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 1000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := sekai.NewWorld()
		c1 := sekai.NewColumn[comp1](w)
		c2 := sekai.NewColumn[comp2](w)
		c3 := sekai.NewColumn[comp3](w)
		c4 := sekai.NewColumn[comp4](w)
		for range numEntities {
			_, i := w.Spawn()
			c1.Insert(i, comp1{})
			c2.Insert(i, comp2{V: 1, W: 1})
			if i%2 == 0 {
				c3.Insert(i, comp3{})
			}
			if i%3 == 0 {
				c4.Insert(i, comp4{})
			}
		}
		query, err := sekai.NewQuery4[comp1, comp2, comp3, comp4](c1, c2, c3, sekai.Maybe(c4))
		if err != nil {
			panic(err)
		}

		for range iters {
			query.Reset()
			for query.Next() {
				a, b, _, d := query.Get()
				a.V += b.V
				a.W += b.W
				if d != nil {
					d.V++
				}
			}
		}
	}
}
