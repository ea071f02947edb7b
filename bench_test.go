package stockpile

import (
	"fmt"
	"testing"
)

func benchWorld(maxEntities int) testWorld {
	return newTestWorld(maxEntities)
}

func BenchmarkCreate(b *testing.B) {
	sizes := []int{1000, 10000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dK", size/1000), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				w := benchWorld(size + 1)
				w.reg.Alloc()
				b.StartTimer()
				for j := 0; j < size; j++ {
					w.reg.Create()
				}
			}
		})
	}
}

func BenchmarkAddComponent(b *testing.B) {
	const size = 1000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		w := benchWorld(size + 1)
		ids := make([]EntityID, size)
		for j := range ids {
			ids[j], _ = w.reg.Create()
		}
		b.StartTimer()
		for _, id := range ids {
			w.health.Attach(w.reg, id, &Health{Current: 10, Max: 10})
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	const size = 1000
	w := benchWorld(size + 1)
	for j := 0; j < size; j++ {
		w.reg.CreateWith(w.health.Wrap(&Health{Current: 10, Max: 10}))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, id := range w.reg.All(w.health.Tag()) {
			hp, _ := w.health.Get(w.reg, id)
			hp.Current++
		}
	}
}

func BenchmarkDestroy(b *testing.B) {
	const size = 1000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		w := benchWorld(size + 1)
		for j := 0; j < size; j++ {
			w.reg.CreateWith(
				w.position.Wrap(&Position{X: 1, Y: 1}),
				w.health.Wrap(&Health{Current: 10, Max: 10}),
			)
		}
		snap := w.reg.Snapshot(w.health.Tag())
		b.StartTimer()
		for _, id := range snap {
			w.reg.DestroyNow(id)
		}
	}
}
