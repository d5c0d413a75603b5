package ecs_test

import (
	"testing"

	"github.com/plus3/tessera/ecs"
)

func BenchmarkSpawn(b *testing.B) {
	w := ecs.NewWorld()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := w.Spawn()
		ecs.Set(e, Position{X: 1.0, Y: 2.0})
		ecs.Set(e, Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkGet(b *testing.B) {
	w := ecs.NewWorld()
	e := w.Spawn()
	ecs.Set(e, Position{X: 1.0, Y: 2.0})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.Get[Position](e)
	}
}

func BenchmarkSet(b *testing.B) {
	w := ecs.NewWorld()
	e := w.Spawn()
	ecs.Set(e, Position{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.Set(e, Position{X: float32(i)})
	}
}

func BenchmarkAddRemove(b *testing.B) {
	w := ecs.NewWorld()
	e := w.Spawn()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.Set(e, Velocity{DX: 0.5})
		ecs.Remove[Velocity](e)
	}
}

func BenchmarkDestroy(b *testing.B) {
	w := ecs.NewWorld()
	entities := make([]ecs.Entity, b.N)
	for i := 0; i < b.N; i++ {
		entities[i] = w.Spawn()
		ecs.Set(entities[i], Position{X: 1.0, Y: 2.0})
		ecs.Set(entities[i], Velocity{DX: 0.5, DY: 0.5})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		entities[i].Destroy()
	}
}

func BenchmarkViewSingle(b *testing.B) {
	w := ecs.NewWorld()
	for i := 0; i < 10000; i++ {
		ecs.Set(w.Spawn(), Position{X: float32(i)})
	}
	view := ecs.NewView[Position](w)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		view.Each(func(_ ecs.EntityID, p *Position) {
			p.X++
		})
	}
}

func BenchmarkView2Join(b *testing.B) {
	w := ecs.NewWorld()
	for i := 0; i < 10000; i++ {
		e := w.Spawn()
		ecs.Set(e, Position{X: float32(i)})
		if i%10 == 0 {
			ecs.Set(e, Velocity{DX: 1})
		}
	}
	view := ecs.NewView2[Position, Velocity](w)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		view.Each(func(_ ecs.EntityID, p *Position, v *Velocity) {
			p.X += v.DX
		})
	}
}

func BenchmarkQuery2Execute(b *testing.B) {
	w := ecs.NewWorld()
	for i := 0; i < 10000; i++ {
		e := w.Spawn()
		ecs.Set(e, Position{X: float32(i)})
		if i%10 == 0 {
			ecs.Set(e, Velocity{DX: 1})
		}
	}
	q := ecs.NewQuery2[Position, Velocity](w)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Execute()
	}
}

func BenchmarkSort(b *testing.B) {
	w := ecs.NewWorld()
	entities := make([]ecs.Entity, 1024)
	for i := range entities {
		entities[i] = w.Spawn()
		ecs.Set(entities[i], Score((i*2654435761)%4096))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// The set clears the sorted hint, so every iteration pays for a
		// full sort instead of short-circuiting.
		ecs.Set(entities[i%len(entities)], Score(i%4096))
		ecs.Sort(w, func(a, b Score) bool { return a < b })
	}
}
