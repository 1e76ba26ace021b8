package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Uniform returns a value drawn uniformly from [lo, hi)
func Uniform(sampler Sampler, lo, hi float64) float64 {
	return lo + (hi-lo)*sampler.Get1D()
}

// SampleInUnitDisk draws (u, v) uniformly in [-1,1]² until u²+v² <= 1
func SampleInUnitDisk(sampler Sampler) (u, v float64) {
	for {
		u = Uniform(sampler, -1, 1)
		v = Uniform(sampler, -1, 1)
		if u*u+v*v <= 1 {
			return u, v
		}
	}
}

// SampleInUnitBall draws a point uniformly in [-1,1]³ until its length is at most 1
func SampleInUnitBall(sampler Sampler) Vec3 {
	for {
		p := NewVec3(Uniform(sampler, -1, 1), Uniform(sampler, -1, 1), Uniform(sampler, -1, 1))
		if p.LengthSquared() <= 1 {
			return p
		}
	}
}

// SampleUnitVector returns a random unit vector from a rejection-sampled ball point.
// The origin itself is rejected so the result is always normalizable.
func SampleUnitVector(sampler Sampler) Vec3 {
	for {
		p := SampleInUnitBall(sampler)
		if p.LengthSquared() > 0 {
			return p.Normalize()
		}
	}
}
