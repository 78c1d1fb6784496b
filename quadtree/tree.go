package quadtree

// node is the recursive structural unit. A leaf buffers up to Capacity
// points; past that it subdivides exactly once into four children
// tiling its bounds and stays internal forever. Points buffered before
// the split remain at the node, layered in front of the children.
type node struct {
	bounds   Rect
	depth    int
	points   []Point
	children *[4]node // nil until subdivision
}

// Tree is a point quadtree over a fixed root boundary. Insert mutates
// and must stay single-writer; queries are read-only and may run
// concurrently once mutation has stopped.
type Tree struct {
	cfg   *Config
	root  node
	count int
	pool  *queryPool
}

// New creates a tree over bounds. Uses default config if cfg is nil.
func New(bounds Rect, cfg *Config) *Tree {
	cfg = cfg.OrDefault()
	t := &Tree{
		cfg:  cfg,
		root: node{bounds: bounds, points: make([]Point, 0, cfg.Capacity)},
	}
	if cfg.QueryPoolWorkers > 0 {
		t.pool = newQueryPool(t, cfg.QueryPoolWorkers, 64)
	}
	return t
}

// Config returns the current configuration.
func (t *Tree) Config() *Config { return t.cfg }

// Bounds returns the root boundary.
func (t *Tree) Bounds() Rect { return t.root.bounds }

// Len returns the number of stored points.
func (t *Tree) Len() int { return t.count }

// Insert stores p. Returns false without mutation when p lies outside
// the root bounds. Inserting the same point twice stores it twice.
func (t *Tree) Insert(p Point) bool {
	if !t.root.insert(p, t.cfg) {
		return false
	}
	t.count++
	return true
}

// Close stops the query worker pool if one was configured. The tree
// itself needs no teardown.
func (t *Tree) Close() {
	if t.pool != nil {
		t.pool.Close()
	}
}

func (n *node) insert(p Point, cfg *Config) bool {
	if !n.bounds.ContainsPoint(p) {
		return false
	}
	if n.children == nil {
		if len(n.points) < cfg.Capacity || n.depth >= cfg.MaxDepth {
			n.points = append(n.points, p)
			return true
		}
		n.subdivide(cfg)
	}
	for i := range n.children {
		if n.children[i].insert(p, cfg) {
			return true
		}
	}
	// unreachable while the children tile the bounds; refuse rather
	// than panic
	return false
}

// subdivide splits the bounds into four equal quadrants (NE, NW, SE,
// SW) and marks the node internal. Called at most once per node; the
// node's own buffer is left in place.
func (n *node) subdivide(cfg *Config) {
	var ch [4]node
	for i := range ch {
		ch[i] = node{
			bounds: n.bounds.quadrant(i),
			depth:  n.depth + 1,
			points: make([]Point, 0, cfg.Capacity),
		}
	}
	n.children = &ch
}
