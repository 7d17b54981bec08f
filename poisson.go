// Package poisson generates Poisson-disk point distributions; sets of
// points in an N dimensional space where no two points sit closer than
// a configured radius, packed about as densely as that allows.
//
// This is Bridson's "fast poisson disk sampling" - we keep an active
// list of points worth spawning around, throw candidate darts into the
// annulus [r, 2r) about a randomly chosen one, and keep candidates that
// land in the domain away from everything accepted so far. Generation
// is lazy: nothing is computed until someone pulls the next point.
package poisson

import (
	"github.com/pkg/errors"
)

// Point is a position in N dimensional space; simply its coordinates,
// one per dimension. Points have no identity beyond where they are.
type Point []float64

const (
	// DefaultRadius is the minimum separation used when none is given
	DefaultRadius = 0.1

	// DefaultSamples is how many candidate darts we throw around each
	// active point before giving up on it. Higher fills space a touch
	// better, lower is faster.
	DefaultSamples = 30
)

// Validate decides whether a candidate point is inside the domain.
// Any state it needs (domain bounds, masks, whatever) it carries
// itself - a closure is the function plus its payload.
type Validate func(Point) bool

// unitBox accepts points whose every coordinate lies in [0, 1).
// This is the default domain in any dimension.
func unitBox(p Point) bool {
	for _, v := range p {
		if v < 0 || v >= 1 {
			return false
		}
	}
	return true
}

// Poisson describes the distribution we want: how many dimensions,
// the exclusion radius, how hard to try around each point, the domain
// and (optionally) a fixed seed.
//
// A zero or default Poisson samples the unit box [0,1)^dims with
// radius 0.1 and is non-deterministic; chain the With* setters to
// taste. Settings are snapshotted when an Iterator is built, mutating
// the Poisson afterwards doesn't disturb live iterators.
type Poisson struct {
	dims     int
	radius   float64
	samples  int
	seed     *uint64
	validate Validate
	source   Source
}

// New returns a Poisson distribution over the given number of
// dimensions with default settings.
func New(dims int) *Poisson {
	return &Poisson{
		dims:     dims,
		radius:   DefaultRadius,
		samples:  DefaultSamples,
		validate: unitBox,
	}
}

// New2D returns a two dimensional distribution with default settings
func New2D() *Poisson {
	return New(2)
}

// New3D returns a three dimensional distribution with default settings
func New3D() *Poisson {
	return New(3)
}

// New4D returns a four dimensional distribution with default settings.
// Consider a larger radius - the unit box gets roomy in higher
// dimensions and generation slows down accordingly.
func New4D() *Poisson {
	return New(4)
}

// WithRadius sets the minimum distance allowed between any two points
func (p *Poisson) WithRadius(radius float64) *Poisson {
	p.SetRadius(radius)
	return p
}

// WithSamples sets how many candidates we generate around each active
// point before discarding it. This is *not* the number of points you
// get out - it's the per-point effort cap.
func (p *Poisson) WithSamples(samples int) *Poisson {
	p.SetSamples(samples)
	return p
}

// WithSeed pins the internal random stream so the same distribution
// comes out every time. Without a seed each run is seeded from entropy
// and results differ run to run.
func (p *Poisson) WithSeed(seed uint64) *Poisson {
	p.SetSeed(seed)
	return p
}

// WithValidate replaces the domain predicate. The default accepts the
// unit box [0,1)^dims; pass whatever shape you like - a candidate is
// only kept if fn says so.
func (p *Poisson) WithValidate(fn Validate) *Poisson {
	p.SetValidate(fn)
	return p
}

// WithSource swaps in a custom (already seeded) random Source.
// When set it is used as given and WithSeed is ignored - seeding a
// custom source is the caller's business. Note a Source is a stateful
// stream: hand each generation run its own if you want repeatability.
func (p *Poisson) WithSource(src Source) *Poisson {
	p.SetSource(src)
	return p
}

// SetRadius sets the minimum distance allowed between any two points.
// See WithRadius.
func (p *Poisson) SetRadius(radius float64) {
	p.radius = radius
}

// SetSamples sets the per-point candidate cap. See WithSamples.
func (p *Poisson) SetSamples(samples int) {
	p.samples = samples
}

// SetSeed pins the internal random stream. See WithSeed.
func (p *Poisson) SetSeed(seed uint64) {
	p.seed = &seed
}

// SetValidate replaces the domain predicate. See WithValidate.
func (p *Poisson) SetValidate(fn Validate) {
	p.validate = fn
}

// SetSource swaps in a custom random Source. See WithSource.
func (p *Poisson) SetSource(src Source) {
	p.source = src
}

// Check returns an error if the configuration can't produce a
// well-defined distribution. The iterator assumes these hold and does
// not re-check them.
func (p *Poisson) Check() error {
	if p.dims < 1 {
		return errors.Errorf("poisson: dims must be >= 1, have %d", p.dims)
	}
	if p.radius <= 0 {
		return errors.Errorf("poisson: radius must be > 0, have %v", p.radius)
	}
	if p.samples < 1 {
		return errors.Errorf("poisson: samples must be >= 1, have %d", p.samples)
	}
	if p.validate == nil {
		return errors.New("poisson: validate func is nil")
	}
	return nil
}

// Iter returns an iterator over the points of this distribution.
// Each call starts generation afresh; with a seed set every iterator
// yields the identical sequence, without one each draws new entropy
// (and entropy failure is returned, not papered over).
func (p *Poisson) Iter() (*Iterator, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	rng := p.source
	if rng == nil {
		if p.seed != nil {
			rng = NewSource(*p.seed)
		} else {
			var err error
			rng, err = NewEntropySource()
			if err != nil {
				return nil, err
			}
		}
	}
	return newIterator(p, rng), nil
}

// Generate runs the distribution to exhaustion and returns every point
// in emission order.
func (p *Poisson) Generate() ([]Point, error) {
	it, err := p.Iter()
	if err != nil {
		return nil, err
	}
	return it.Collect(), nil
}

// Index runs the distribution to exhaustion and returns only the
// spatial index over the accepted points - for callers that want
// proximity structure rather than an ordered list.
func (p *Poisson) Index() (*Index, error) {
	it, err := p.Iter()
	if err != nil {
		return nil, err
	}
	for it.Next() != nil {
	}
	return it.Sampled(), nil
}

// Equal reports whether two distributions will generate identical
// output. Only seeded distributions can promise that, so two Poissons
// are equal only when both carry an explicit seed and all generation
// parameters match. An unseeded Poisson is not equal to anything -
// itself included - since even its own next run is unpredictable.
// The same goes for anything carrying a custom Source: a source is a
// stateful stream, so its next run depends on how much has already
// been drawn from it. Validation funcs aren't comparable in Go and
// are not considered.
func (p *Poisson) Equal(o *Poisson) bool {
	if o == nil || p.seed == nil || o.seed == nil {
		return false
	}
	if p.source != nil || o.source != nil {
		return false
	}
	return *p.seed == *o.seed &&
		p.dims == o.dims &&
		p.radius == o.radius &&
		p.samples == o.samples
}
