package trifract

import (
	"math/rand"
	"time"
)

// Rand is the source of randomness used when perturbing midpoints.
type Rand interface {
	// Uniform returns a value drawn uniformly from [lo, hi].
	Uniform(lo, hi float64) float64
}

// Supported random sources.
const (
	SourceMath   = "math"
	SourceMinStd = "minstd"
)

type mathRand struct {
	r *rand.Rand
}

// NewRand returns a Rand backed by math/rand.
// A zero seed selects a time based seed.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*m.r.Float64()
}

// minStd is the Park-Miller minimal standard generator (a=16807, m=2^31-1).
// Its output is stable across Go releases, which makes it suitable for
// reproducing a picture from a seed.
type minStd struct {
	a, m  int
	state int
	div   float64
}

// NewMinStd returns a Park-Miller Rand. A zero seed selects a time based seed.
func NewMinStd(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p := &minStd{
		a:   16807,
		m:   0x7fffffff,
		div: 1.0 / 0x7fffffff,
	}
	p.state = int(seed % int64(p.m))
	if p.state < 0 {
		p.state += p.m
	}
	if p.state == 0 {
		p.state = 1
	}
	return p
}

func (p *minStd) next() float64 {
	lo := p.a * (p.state & 0xffff)
	hi := p.a * (p.state >> 16)
	lo += (hi & 0x7fff) << 16

	if lo > p.m {
		lo &= p.m
		lo++
	}
	lo += hi >> 15
	if lo > p.m {
		lo &= p.m
		lo++
	}
	p.state = lo
	return float64(p.state) * p.div
}

func (p *minStd) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*p.next()
}

// newSource resolves the random source named in the configuration.
func newSource(name string, seed int64) Rand {
	if name == SourceMinStd {
		return NewMinStd(seed)
	}
	return NewRand(seed)
}
