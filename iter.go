package poisson

import (
	"math"
)

// Iterator walks the points of a distribution one pull at a time.
// It owns three things for its whole life: the random stream, the
// active list (points still worth spawning around) and the index of
// everything accepted so far. Nothing here is shared or locked -
// an Iterator is strictly single-caller.
//
// Generation ends when the active list empties; after that Next
// returns nil forever. Stopping early is always fine, there's nothing
// to clean up.
type Iterator struct {
	dims     int
	radius   float64
	samples  int
	validate Validate

	rng     Source
	sampled *Index
	active  []Point
}

// newIterator builds an iterator from a checked configuration and an
// already seeded source.
func newIterator(p *Poisson, rng Source) *Iterator {
	// Seed the active list with a synthetic point near the origin so
	// the first pull has something to spawn around. This point is
	// *not* indexed and never emitted - its exclusion zone leaves a
	// deliberate void in the output. That's intended, not a bug.
	first := make(Point, p.dims)
	for i := range first {
		first[i] = (0.5 - rng.Float64()) * p.radius
	}

	return &Iterator{
		dims:     p.dims,
		radius:   p.radius,
		samples:  p.samples,
		validate: p.validate,
		rng:      rng,
		sampled:  NewIndex(),
		active:   []Point{first},
	}
}

// Next returns the next accepted point, or nil once the space is full.
// Every returned point passes the domain predicate and sits at least
// radius away from every previously returned point.
func (it *Iterator) Next() Point {
	r2 := it.radius * it.radius

	for len(it.active) > 0 {
		// spawn around a random active point
		i := it.rng.Intn(len(it.active))

		for s := 0; s < it.samples; s++ {
			cand := it.around(it.active[i])

			if it.validate(cand) && !it.sampled.AnyWithin(cand, r2) {
				it.active = append(it.active, cand)
				it.sampled.Insert(cand)
				return cand
			}
		}

		// nothing fits around this one anymore; drop it from the
		// active list (it stays indexed - it's still part of the
		// output) and try another
		it.active[i] = it.active[len(it.active)-1]
		it.active = it.active[:len(it.active)-1]
	}

	return nil
}

// around returns a candidate at distance [radius, 2*radius) from p in
// a direction uniform over the unit hypersphere. We draw one standard
// normal per dimension and normalise - that's direction-uniform in any
// dimension, no trig required.
func (it *Iterator) around(p Point) Point {
	dist := it.radius * (1.0 + it.rng.Float64())

	cand := make(Point, it.dims)
	mag := 0.0
	for i := range cand {
		v := it.rng.NormFloat64()
		cand[i] = v
		mag += v * v
	}

	scale := dist / math.Sqrt(mag)
	for i := range cand {
		cand[i] = p[i] + cand[i]*scale
	}
	return cand
}

// Collect drains the iterator and returns every remaining point in
// emission order.
func (it *Iterator) Collect() []Point {
	ps := []Point{}
	for p := it.Next(); p != nil; p = it.Next() {
		ps = append(ps, p)
	}
	return ps
}

// Sampled returns the spatial index over the points accepted so far.
// After the iterator is exhausted this is the index of the whole
// distribution. The synthetic starting point is never in here.
func (it *Iterator) Sampled() *Index {
	return it.sampled
}
