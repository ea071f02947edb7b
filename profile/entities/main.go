// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/mossveil/stockpile"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

func (c comp1) IsEmpty() bool { return c.V == 0 && c.W == 0 }

type comp2 struct {
	V int64
	W int64
}

func (c comp2) IsEmpty() bool { return c.V == 0 && c.W == 0 }

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		schema := stockpile.Factory.NewSchema()
		c1 := stockpile.RegisterComponent[comp1](schema)
		c2 := stockpile.RegisterComponent[comp2](schema)
		reg := stockpile.Factory.NewRegistry(schema, stockpile.Config{MaxEntities: numEntities + 1})

		for i := 0; i < iters; i++ {
			for n := 0; n < numEntities; n++ {
				reg.CreateWith(
					c1.Wrap(&comp1{V: 1, W: 1}),
					c2.Wrap(&comp2{V: 2, W: 2}),
				)
			}
			for _, e := range reg.All(c1.Tag()) {
				a, _ := c1.Get(reg, e)
				b, _ := c2.Get(reg, e)
				a.V += b.V
				a.W += b.W
			}
			for _, e := range reg.Snapshot(c1.Tag()) {
				reg.DestroyNow(e)
			}
		}
		reg.Dealloc()
	}
}
