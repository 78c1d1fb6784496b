package quadtree

// Stats carries per-query traversal diagnostics.
type Stats struct {
	NodesVisited int // nodes touched during traversal, pruned ones included
}

// Query returns every stored point inside r: a node's own points
// first, then its children in construction order.
func (t *Tree) Query(r Rect) []Point {
	pts, _ := t.QueryStats(r)
	return pts
}

// QueryCircle returns every stored point inside c.
func (t *Tree) QueryCircle(c Circle) []Point {
	pts, _ := t.QueryStats(c)
	return pts
}

// QueryStats runs a windowed query and additionally reports traversal
// diagnostics. Subtrees whose bounds miss the window are pruned
// without descending.
func (t *Tree) QueryStats(a Area) ([]Point, Stats) {
	if t.pool != nil {
		return t.pool.query(a)
	}
	return t.queryImpl(a)
}

// queryImpl is the pool-independent traversal, called by pool workers
// directly to avoid re-entering the pool.
func (t *Tree) queryImpl(a Area) ([]Point, Stats) {
	var st Stats
	found := t.root.query(a, nil, &st)
	return found, st
}

func (n *node) query(a Area, found []Point, st *Stats) []Point {
	st.NodesVisited++
	if !a.IntersectsRect(n.bounds) {
		return found
	}
	for _, p := range n.points {
		if a.ContainsPoint(p) {
			found = append(found, p)
		}
	}
	if n.children != nil {
		for i := range n.children {
			found = n.children[i].query(a, found, st)
		}
	}
	return found
}
