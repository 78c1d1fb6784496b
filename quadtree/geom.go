package quadtree

import "math"

// Point is an immutable 2-D coordinate pair. Points carry no identity
// beyond their coordinates; duplicates are stored independently.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect is an axis-aligned rectangle described by its center (X, Y) and
// half-extents: W is center to left/right side, H is center to
// top/bottom side.
type Rect struct {
	X float64 // x of center
	Y float64 // y of center
	W float64 // half-width
	H float64 // half-height
}

// NewRect returns the rect centered at (x, y) with half-extents w, h.
func NewRect(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// ContainsPoint reports whether p lies inside r. Lower edges are
// inclusive and upper edges exclusive, so a point on an edge shared by
// two rects qualifies in exactly one of them. A zero-extent rect
// contains nothing.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X-r.W && p.X < r.X+r.W &&
		p.Y >= r.Y-r.H && p.Y < r.Y+r.H
}

// Intersects reports whether r and o overlap, including the case where
// one fully contains the other. Rects that only touch at an edge do
// not overlap: the shared edge belongs to one side under the half-open
// rule.
func (r Rect) Intersects(o Rect) bool {
	return !(o.X-o.W >= r.X+r.W || o.X+o.W <= r.X-r.W ||
		o.Y-o.H >= r.Y+r.H || o.Y+o.H <= r.Y-r.H)
}

// IntersectsRect implements Area.
func (r Rect) IntersectsRect(o Rect) bool { return r.Intersects(o) }

// quadrant returns the i-th equal subdivision of r, in the fixed child
// order NE, NW, SE, SW.
func (r Rect) quadrant(i int) Rect {
	hw := r.W / 2
	hh := r.H / 2
	switch i {
	case 0:
		return Rect{X: r.X + hw, Y: r.Y + hh, W: hw, H: hh}
	case 1:
		return Rect{X: r.X - hw, Y: r.Y + hh, W: hw, H: hh}
	case 2:
		return Rect{X: r.X + hw, Y: r.Y - hh, W: hw, H: hh}
	default:
		return Rect{X: r.X - hw, Y: r.Y - hh, W: hw, H: hh}
	}
}

// Circle is a query window described by its center (X, Y) and radius.
type Circle struct {
	X float64
	Y float64
	R float64
}

// NewCircle returns the circle centered at (x, y) with radius r.
func NewCircle(x, y, r float64) Circle { return Circle{X: x, Y: y, R: r} }

// ContainsPoint reports whether p lies inside or on c. Containment is
// closed, so a zero-radius circle contains exactly its center.
func (c Circle) ContainsPoint(p Point) bool {
	dx := p.X - c.X
	dy := p.Y - c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// IntersectsRect reports whether c overlaps r, by clamping the circle
// center onto r and comparing the residual distance against the
// radius.
func (c Circle) IntersectsRect(r Rect) bool {
	dx := math.Abs(c.X-r.X) - r.W
	if dx < 0 {
		dx = 0
	}
	dy := math.Abs(c.Y-r.Y) - r.H
	if dy < 0 {
		dy = 0
	}
	return dx*dx+dy*dy <= c.R*c.R
}

// Area is a query window: any shape that can test point membership and
// rectangle overlap. Rect and Circle implement it.
type Area interface {
	ContainsPoint(Point) bool
	IntersectsRect(Rect) bool
}
