package poisson

import (
	"gonum.org/v1/gonum/spatial/kdtree"
)

// Index holds every point accepted so far, organised for fast
// "is anything near this" queries. It's insertion only - once a point
// is in the distribution it never leaves.
//
// Internally this is a gonum k-d tree; we deliberately keep the surface
// tiny (insert, proximity, walk) so the backing structure could change
// without anyone noticing.
type Index struct {
	tree *kdtree.Tree
	size int
}

// NewIndex returns a new empty Index
func NewIndex() *Index {
	return &Index{}
}

// Len returns how many points we've accepted
func (x *Index) Len() int {
	return x.size
}

// Insert adds the given point to the index
func (x *Index) Insert(p Point) {
	if x.tree == nil {
		x.tree = kdtree.New(kdtree.Points{kdtree.Point(p)}, false)
	} else {
		x.tree.Insert(kdtree.Point(p), false)
	}
	x.size++
}

// AnyWithin returns whether any indexed point sits within squared
// distance r2 of the given point. An empty index has nothing near
// anything, so always answers false.
func (x *Index) AnyWithin(p Point, r2 float64) bool {
	if x.tree == nil {
		return false
	}
	_, d := x.tree.Nearest(kdtree.Point(p))
	return d <= r2
}

// Nearest returns the closest indexed point to p along with the squared
// distance to it. An empty index returns (nil, 0); check the Point
// before trusting the distance.
func (x *Index) Nearest(p Point) (Point, float64) {
	if x.tree == nil {
		return nil, 0
	}
	c, d := x.tree.Nearest(kdtree.Point(p))
	return Point(c.(kdtree.Point)), d
}

// Do calls fn for every indexed point, in no particular order,
// stopping early if fn returns true.
func (x *Index) Do(fn func(Point) bool) {
	if x.tree == nil {
		return
	}
	x.tree.Do(func(c kdtree.Comparable, _ *kdtree.Bounding, _ int) bool {
		return fn(Point(c.(kdtree.Point)))
	})
}

// Points returns all indexed points as a slice, in no particular order.
func (x *Index) Points() []Point {
	ps := make([]Point, 0, x.size)
	x.Do(func(p Point) bool {
		ps = append(ps, p)
		return false
	})
	return ps
}
