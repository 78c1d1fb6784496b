// Package gen provides seeded point generation for benchmarks.
package gen

import (
	"math/rand"

	"github.com/ic-timon/quadix/quadtree"
)

// UniformPoints returns n points uniformly distributed over bounds.
func UniformPoints(n int, bounds quadtree.Rect, seed int64) []quadtree.Point {
	rng := rand.New(rand.NewSource(seed))
	out := make([]quadtree.Point, n)
	for i := range out {
		out[i] = quadtree.Pt(
			bounds.X-bounds.W+rng.Float64()*2*bounds.W,
			bounds.Y-bounds.H+rng.Float64()*2*bounds.H,
		)
	}
	return out
}

// ClusteredPoints returns n points drawn from k gaussian clusters.
// Dense clusters drive deep subdivision and exercise the MaxDepth
// cutoff.
func ClusteredPoints(n, k int, bounds quadtree.Rect, seed int64) []quadtree.Point {
	if k < 1 {
		k = 1
	}
	rng := rand.New(rand.NewSource(seed))
	centers := UniformPoints(k, bounds, seed+1)
	sigmaX := bounds.W / 50
	sigmaY := bounds.H / 50
	out := make([]quadtree.Point, n)
	for i := range out {
		c := centers[rng.Intn(k)]
		out[i] = quadtree.Pt(
			clampOpen(c.X+rng.NormFloat64()*sigmaX, bounds.X-bounds.W, bounds.X+bounds.W),
			clampOpen(c.Y+rng.NormFloat64()*sigmaY, bounds.Y-bounds.H, bounds.Y+bounds.H),
		)
	}
	return out
}

// clampOpen clamps v into [lo, hi); the upper world edge is exclusive.
func clampOpen(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v >= hi {
		return lo + (hi-lo)*(1-1e-12)
	}
	return v
}
