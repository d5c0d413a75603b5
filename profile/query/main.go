// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"github.com/pkg/profile"
	"github.com/plus3/tessera/ecs"
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
	rounds := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := ecs.NewWorld()
		for i := range numEntities {
			e := w.Spawn()
			ecs.Set(e, comp1{V: int64(i)})
			if i%2 == 0 {
				ecs.Set(e, comp2{V: int64(i)})
			}
		}

		view := ecs.NewView2[comp1, comp2](w)
		for range iters {
			view.Each(func(_ ecs.EntityID, a *comp1, b *comp2) {
				a.V += b.V
				a.W += b.W
			})
		}
	}
}
