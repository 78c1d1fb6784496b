package quadtree

import (
	"math/rand"
	"testing"
)

func randomPoints(n int, bounds Rect, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Point, n)
	for i := range out {
		out[i] = Pt(
			bounds.X-bounds.W+rng.Float64()*2*bounds.W,
			bounds.Y-bounds.H+rng.Float64()*2*bounds.H,
		)
	}
	return out
}

func pointCounts(pts []Point) map[Point]int {
	m := make(map[Point]int, len(pts))
	for _, p := range pts {
		m[p]++
	}
	return m
}

func samePoints(t *testing.T, got, want []Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("point count: got %d want %d", len(got), len(want))
	}
	gm, wm := pointCounts(got), pointCounts(want)
	for p, n := range wm {
		if gm[p] != n {
			t.Errorf("point %v: got %d occurrences want %d", p, gm[p], n)
		}
	}
}

func nodeCount(qt *Tree) int {
	n := 0
	qt.Walk(func(Rect, []Point) bool {
		n++
		return true
	})
	return n
}

func TestInsertOutsideBounds(t *testing.T) {
	qt := New(NewRect(0, 0, 100, 100), nil)
	if qt.Insert(Pt(200, 0)) {
		t.Error("point outside root bounds must be refused")
	}
	if qt.Insert(Pt(100, 0)) {
		t.Error("point on the exclusive upper edge must be refused")
	}
	if qt.Len() != 0 {
		t.Errorf("Len after refused inserts: got %d want 0", qt.Len())
	}
}

func TestSubdivideScenario(t *testing.T) {
	cfg := &Config{Capacity: 1}
	qt := New(NewRect(0, 0, 100, 100), cfg)

	if !qt.Insert(Pt(10, 10)) {
		t.Fatal("first insert refused")
	}
	if n := nodeCount(qt); n != 1 {
		t.Fatalf("tree must stay a single leaf after first insert, have %d nodes", n)
	}

	if !qt.Insert(Pt(20, 20)) {
		t.Fatal("second insert refused")
	}
	if n := nodeCount(qt); n != 5 {
		t.Fatalf("tree must have root plus four children after overflow, have %d nodes", n)
	}

	// both points land in the +x+y child, which is 50x50 around (50,50)
	var neBounds Rect
	var nePts []Point
	i := 0
	qt.Walk(func(b Rect, pts []Point) bool {
		if i == 1 { // first child after the root, construction order NE first
			neBounds = b
			nePts = append([]Point(nil), pts...)
		}
		i++
		return true
	})
	if neBounds != NewRect(50, 50, 50, 50) {
		t.Errorf("NE child bounds: got %+v", neBounds)
	}
	samePoints(t, nePts, []Point{Pt(20, 20)})

	samePoints(t, qt.Query(qt.Bounds()), []Point{Pt(10, 10), Pt(20, 20)})

	if got := qt.Query(NewRect(-50, -50, 10, 10)); len(got) != 0 {
		t.Errorf("query in the wrong quadrant: got %d points want 0", len(got))
	}
}

func TestConservation(t *testing.T) {
	bounds := NewRect(0, 0, 500, 500)
	qt := New(bounds, nil)
	pts := randomPoints(2000, bounds, 42)
	for _, p := range pts {
		if !qt.Insert(p) {
			t.Fatalf("insert refused for in-bounds point %v", p)
		}
	}
	if qt.Len() != len(pts) {
		t.Fatalf("Len: got %d want %d", qt.Len(), len(pts))
	}
	samePoints(t, qt.Query(bounds), pts)
}

func TestDuplicatePoints(t *testing.T) {
	const n = 10
	cfg := &Config{Capacity: 2, MaxDepth: 6}
	qt := New(NewRect(0, 0, 100, 100), cfg)
	for i := 0; i < n; i++ {
		if !qt.Insert(Pt(33, 33)) {
			t.Fatalf("duplicate insert %d refused", i)
		}
	}
	if qt.Len() != n {
		t.Fatalf("Len: got %d want %d", qt.Len(), n)
	}
	got := qt.Query(NewRect(33, 33, 1, 1))
	if len(got) != n {
		t.Fatalf("query around duplicates: got %d occurrences want %d", len(got), n)
	}
}

func TestMaxDepthCutoff(t *testing.T) {
	const n = 200
	cfg := &Config{Capacity: 1, MaxDepth: 3}
	qt := New(NewRect(0, 0, 64, 64), cfg)
	p := Pt(1, 1)
	for i := 0; i < n; i++ {
		if !qt.Insert(p) {
			t.Fatalf("insert %d refused at depth cutoff", i)
		}
	}
	maxDepthNodes := 0
	qt.Walk(func(b Rect, pts []Point) bool {
		if len(pts) > cfg.Capacity {
			// only a cutoff leaf may exceed capacity
			if b.W != 64/8.0 {
				t.Errorf("overfull node at half-width %v, want cutoff depth width %v", b.W, 64/8.0)
			}
			maxDepthNodes++
		}
		return true
	})
	if maxDepthNodes != 1 {
		t.Errorf("overfull cutoff leaves: got %d want 1", maxDepthNodes)
	}
	samePoints(t, qt.Query(qt.Bounds()), repeatPoint(p, n))
}

func repeatPoint(p Point, n int) []Point {
	out := make([]Point, n)
	for i := range out {
		out[i] = p
	}
	return out
}

func TestLayeredStorage(t *testing.T) {
	cfg := &Config{Capacity: 2}
	qt := New(NewRect(0, 0, 100, 100), cfg)
	pts := []Point{Pt(10, 10), Pt(-10, 10), Pt(60, 60)}
	for _, p := range pts {
		if !qt.Insert(p) {
			t.Fatalf("insert refused for %v", p)
		}
	}
	// root keeps its pre-subdivision buffer
	first := true
	qt.Walk(func(b Rect, buffered []Point) bool {
		if first {
			first = false
			samePoints(t, buffered, pts[:2])
		}
		return true
	})
	samePoints(t, qt.Query(qt.Bounds()), pts)
}

func TestSharedEdgeSingleOwner(t *testing.T) {
	// a point on the vertical center line belongs to exactly one child
	cfg := &Config{Capacity: 1}
	qt := New(NewRect(0, 0, 100, 100), cfg)
	for i := 0; i < 2; i++ {
		if !qt.Insert(Pt(0, 10)) {
			t.Fatalf("insert %d refused", i)
		}
	}
	samePoints(t, qt.Query(qt.Bounds()), []Point{Pt(0, 10), Pt(0, 10)})
}
