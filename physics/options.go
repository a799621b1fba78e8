package physics

import (
	"github.com/oliverbestmann/tumble/gm"
)

// DefaultGravity accelerates bodies downwards, in pixels per second squared.
var DefaultGravity = gm.Vec{Y: 1000}

const (
	DefaultElasticity = 0.6
	DefaultFriction   = 0.2
	DefaultDensity    = 0.001
	DefaultDamping    = 0.6
	DefaultIterations = 10
)

// BodyOptions configures the material of a body. Zero values select the defaults.
type BodyOptions struct {
	// Static bodies do not move and are not affected by gravity.
	Static bool

	Elasticity float64
	Friction   float64

	// Density is the mass per square pixel.
	Density float64
}

func (o BodyOptions) withDefaults() BodyOptions {
	if o.Elasticity == 0 {
		o.Elasticity = DefaultElasticity
	}

	if o.Friction == 0 {
		o.Friction = DefaultFriction
	}

	if o.Density == 0 {
		o.Density = DefaultDensity
	}

	return o
}

type WorldOptions struct {
	// Gravity defaults to DefaultGravity if zero.
	Gravity gm.Vec

	// Damping is the fraction of velocity a body keeps after one second.
	Damping float64

	// Iterations of the constraint solver per step.
	Iterations int

	// Decomposer splits concave outlines into convex parts. If nil,
	// concave outlines can not be turned into bodies.
	Decomposer Decomposer
}

// DefaultWorldOptions returns the options with ear clipping enabled.
func DefaultWorldOptions() WorldOptions {
	return WorldOptions{
		Gravity:    DefaultGravity,
		Damping:    DefaultDamping,
		Iterations: DefaultIterations,
		Decomposer: EarClipping{},
	}
}

func (o WorldOptions) withDefaults() WorldOptions {
	if o.Gravity == gm.VecZero {
		o.Gravity = DefaultGravity
	}

	if o.Damping <= 0 || o.Damping > 1 {
		o.Damping = DefaultDamping
	}

	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}

	return o
}
