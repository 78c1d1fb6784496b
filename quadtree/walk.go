package quadtree

// Walk visits every node pre-order, root first, handing fn the node's
// bounds and its directly buffered points. The slice is the node's own
// buffer and must not be retained or modified. Returning false skips
// the node's subtree.
func (t *Tree) Walk(fn func(bounds Rect, pts []Point) bool) {
	t.root.walk(fn)
}

func (n *node) walk(fn func(Rect, []Point) bool) {
	if !fn(n.bounds, n.points) {
		return
	}
	if n.children != nil {
		for i := range n.children {
			n.children[i].walk(fn)
		}
	}
}
