package gm

import (
	"math"
	"math/rand/v2"
)

// Random wraps a seedable source so scenes can be laid out reproducibly.
// The zero value is not usable, create one using NewRandom.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a value in [0, 1).
func (r *Random) Float64() float64 {
	return r.rng.Float64()
}

// Centered returns a value in [-0.5, 0.5).
func (r *Random) Centered() float64 {
	return r.rng.Float64() - 0.5
}

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](r *Random, min, max S) S {
	return S(r.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle(r *Random) Rad {
	return Rad(RandomIn(r, 0, 2*math.Pi))
}
