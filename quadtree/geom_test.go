package quadtree

import "testing"

func TestRectContainsHalfOpen(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(0, 0), true},
		{"inside", Pt(5, -5), true},
		{"lower left corner", Pt(-10, -10), true},
		{"left edge", Pt(-10, 0), true},
		{"bottom edge", Pt(0, -10), true},
		{"right edge", Pt(10, 0), false},
		{"top edge", Pt(0, 10), false},
		{"upper right corner", Pt(10, 10), false},
		{"outside", Pt(11, 0), false},
	}
	for _, c := range cases {
		if got := r.ContainsPoint(c.p); got != c.want {
			t.Errorf("%s: ContainsPoint(%v)=%v want %v", c.name, c.p, got, c.want)
		}
	}
}

func TestDegenerateRectContainsNothing(t *testing.T) {
	r := NewRect(5, 5, 0, 0)
	if r.ContainsPoint(Pt(5, 5)) {
		t.Error("zero-extent rect must not contain its own center")
	}
}

func TestRectIntersects(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	cases := []struct {
		name string
		o    Rect
		want bool
	}{
		{"self", r, true},
		{"contained", NewRect(0, 0, 1, 1), true},
		{"containing", NewRect(0, 0, 100, 100), true},
		{"overlap corner", NewRect(15, 15, 10, 10), true},
		{"touching right edge", NewRect(20, 0, 10, 10), false},
		{"touching top edge", NewRect(0, 20, 10, 10), false},
		{"disjoint", NewRect(50, 50, 10, 10), false},
	}
	for _, c := range cases {
		if got := r.Intersects(c.o); got != c.want {
			t.Errorf("%s: Intersects=%v want %v", c.name, got, c.want)
		}
		if got := c.o.Intersects(r); got != c.want {
			t.Errorf("%s (flipped): Intersects=%v want %v", c.name, got, c.want)
		}
	}
}

func TestQuadrantsTileParent(t *testing.T) {
	parent := NewRect(3, -7, 16, 8)
	var area float64
	for i := 0; i < 4; i++ {
		q := parent.quadrant(i)
		if q.W != parent.W/2 || q.H != parent.H/2 {
			t.Errorf("quadrant %d half-extents: got (%v,%v) want (%v,%v)", i, q.W, q.H, parent.W/2, parent.H/2)
		}
		area += 4 * q.W * q.H
		for j := 0; j < i; j++ {
			if parent.quadrant(j).Intersects(q) {
				t.Errorf("quadrants %d and %d overlap", j, i)
			}
		}
	}
	if want := 4 * parent.W * parent.H; area != want {
		t.Errorf("quadrant area sum: got %v want %v", area, want)
	}
	// every corner of every quadrant stays on the parent's lattice
	for i := 0; i < 4; i++ {
		q := parent.quadrant(i)
		if q.X-q.W < parent.X-parent.W || q.X+q.W > parent.X+parent.W ||
			q.Y-q.H < parent.Y-parent.H || q.Y+q.H > parent.Y+parent.H {
			t.Errorf("quadrant %d escapes parent bounds", i)
		}
	}
}

func TestCircleContains(t *testing.T) {
	c := NewCircle(0, 0, 5)
	if !c.ContainsPoint(Pt(3, 4)) {
		t.Error("point at exact radius must be contained (closed boundary)")
	}
	if c.ContainsPoint(Pt(3.01, 4)) {
		t.Error("point past the radius must not be contained")
	}
	zero := NewCircle(2, 2, 0)
	if !zero.ContainsPoint(Pt(2, 2)) {
		t.Error("zero-radius circle must contain its center")
	}
	if zero.ContainsPoint(Pt(2, 2.0001)) {
		t.Error("zero-radius circle must contain only its center")
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	cases := []struct {
		name string
		c    Circle
		want bool
	}{
		{"center inside", NewCircle(0, 0, 1), true},
		{"rect inside circle", NewCircle(0, 0, 100), true},
		{"overlapping edge", NewCircle(12, 0, 3), true},
		{"near corner outside", NewCircle(13, 13, 4), false},
		{"near corner inside", NewCircle(13, 13, 5), true},
		{"disjoint", NewCircle(50, 0, 5), false},
	}
	for _, c := range cases {
		if got := c.c.IntersectsRect(r); got != c.want {
			t.Errorf("%s: IntersectsRect=%v want %v", c.name, got, c.want)
		}
	}
}
