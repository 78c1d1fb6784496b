package quadtree

import (
	"runtime"
	"sync"
)

// Grid tiles a world rect into nx by ny cells, one Tree per cell.
// Inserts route to the unique containing cell; queries fan out to the
// cells overlapping the window in parallel and merge the results.
// Reads may run concurrently; mutation stays single-writer, as with
// Tree.
type Grid struct {
	cfg    *Config
	bounds Rect
	nx, ny int
	cells  []*Tree
	pool   *cellPool
}

// NewGrid creates a grid over bounds with nx by ny cells. Dimensions
// below 1 are clamped to 1. Uses default config if cfg is nil.
func NewGrid(bounds Rect, nx, ny int, cfg *Config) *Grid {
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	cfg = cfg.OrDefault()
	// cells use the grid's pool, never their own
	cellCfg := *cfg
	cellCfg.QueryPoolWorkers = 0

	g := &Grid{
		cfg:    cfg,
		bounds: bounds,
		nx:     nx,
		ny:     ny,
		cells:  make([]*Tree, 0, nx*ny),
	}
	cw := bounds.W / float64(nx) // cell half-width
	ch := bounds.H / float64(ny) // cell half-height
	x0 := bounds.X - bounds.W
	y0 := bounds.Y - bounds.H
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			cx := x0 + cw*float64(2*ix+1)
			cy := y0 + ch*float64(2*iy+1)
			g.cells = append(g.cells, New(Rect{X: cx, Y: cy, W: cw, H: ch}, &cellCfg))
		}
	}
	nWorkers := nx * ny
	if n := runtime.NumCPU(); nWorkers > n {
		nWorkers = n
	}
	g.pool = newCellPool(nWorkers, 64)
	return g
}

// Bounds returns the world boundary.
func (g *Grid) Bounds() Rect { return g.bounds }

// Len returns the number of stored points across all cells.
func (g *Grid) Len() int {
	total := 0
	for _, c := range g.cells {
		total += c.Len()
	}
	return total
}

// Insert stores p in its containing cell, returning false when p lies
// outside the world bounds.
func (g *Grid) Insert(p Point) bool {
	if !g.bounds.ContainsPoint(p) {
		return false
	}
	ix := cellIndex(p.X, g.bounds.X-g.bounds.W, g.bounds.W/float64(g.nx), g.nx)
	iy := cellIndex(p.Y, g.bounds.Y-g.bounds.H, g.bounds.H/float64(g.ny), g.ny)
	if g.cells[iy*g.nx+ix].Insert(p) {
		return true
	}
	// float rounding can land an edge point one cell off the
	// arithmetic route; fall back to the half-open containment test
	for _, c := range g.cells {
		if c.Insert(p) {
			return true
		}
	}
	return false
}

// cellIndex maps a coordinate to its cell along one axis. half is the
// cell half-extent, lo the world's lower edge.
func cellIndex(v, lo, half float64, n int) int {
	i := int((v - lo) / (2 * half))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return i
}

// Query returns every stored point inside r across all cells.
func (g *Grid) Query(r Rect) []Point {
	pts, _ := g.QueryStats(r)
	return pts
}

// QueryCircle returns every stored point inside c across all cells.
func (g *Grid) QueryCircle(c Circle) []Point {
	pts, _ := g.QueryStats(c)
	return pts
}

// QueryStats fans the query out to the cells overlapping the window in
// parallel and merges results in cell order. Stats sums node visits
// over all queried cells.
func (g *Grid) QueryStats(a Area) ([]Point, Stats) {
	found := make([][]Point, len(g.cells))
	visits := make([]int, len(g.cells))
	var wg sync.WaitGroup
	for i, cell := range g.cells {
		if !a.IntersectsRect(cell.Bounds()) {
			continue
		}
		wg.Add(1)
		g.pool.Submit(cellJob{
			cellIdx: i,
			area:    a,
			cell:    cell,
			found:   found,
			visits:  visits,
			wg:      &wg,
		})
	}
	wg.Wait()
	var out []Point
	var st Stats
	for i := range found {
		out = append(out, found[i]...)
		st.NodesVisited += visits[i]
	}
	return out, st
}

// Close shuts down the fan-out pool.
func (g *Grid) Close() {
	g.pool.Close()
}
