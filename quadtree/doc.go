// Package quadtree provides a point quadtree: a recursive 2-D spatial
// index that partitions its region into four quadrants on overflow and
// answers rectangle- and circle-windowed point queries.
//
// Quick start:
//
//	qt := quadtree.New(quadtree.NewRect(0, 0, 100, 100), nil)
//	qt.Insert(quadtree.Pt(10, 10))
//	pts := qt.Query(quadtree.NewRect(0, 0, 25, 25))
package quadtree
