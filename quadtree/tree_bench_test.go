package quadtree

import "testing"

func BenchmarkInsert(b *testing.B) {
	bounds := NewRect(0, 0, 1000, 1000)
	pts := randomPoints(b.N, bounds, 1)
	qt := New(bounds, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		qt.Insert(pts[i])
	}
}

func BenchmarkQueryWindow(b *testing.B) {
	bounds := NewRect(0, 0, 1000, 1000)
	qt := New(bounds, nil)
	for _, p := range randomPoints(100_000, bounds, 2) {
		qt.Insert(p)
	}
	windows := randomPoints(1024, bounds, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := windows[i%len(windows)]
		qt.Query(NewRect(w.X, w.Y, 25, 25))
	}
}

func BenchmarkQueryCircle(b *testing.B) {
	bounds := NewRect(0, 0, 1000, 1000)
	qt := New(bounds, nil)
	for _, p := range randomPoints(100_000, bounds, 4) {
		qt.Insert(p)
	}
	centers := randomPoints(1024, bounds, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := centers[i%len(centers)]
		qt.QueryCircle(NewCircle(c.X, c.Y, 25))
	}
}
