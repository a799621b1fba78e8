package physics

import (
	"time"
)

// DefaultStepInterval is the fixed simulation step.
const DefaultStepInterval = time.Second / 60

// DefaultMaxSteps limits the number of steps run by a single Advance call.
const DefaultMaxSteps = 8

// Runner advances a World in fixed steps, driven by the host clock.
//
// Time that could not be simulated because of MaxSteps is dropped, so
// a slow host slows down the simulation instead of spiraling.
type Runner struct {
	World *World

	StepInterval time.Duration
	MaxSteps     int

	// Steps counts the fixed steps executed so far.
	Steps   uint64
	Elapsed time.Duration

	// Stopped runners ignore calls to Advance.
	Stopped bool

	// BeforeStep is called before every fixed step with the step in seconds.
	BeforeStep func(dt float64)

	overstep time.Duration
}

func NewRunner(world *World) *Runner {
	return &Runner{
		World:        world,
		StepInterval: DefaultStepInterval,
		MaxSteps:     DefaultMaxSteps,
	}
}

// Advance accumulates delta and runs as many fixed steps as fit. It returns the
// number of steps executed.
func (r *Runner) Advance(delta time.Duration) int {
	if r.Stopped || delta <= 0 {
		return 0
	}

	step := r.StepInterval
	if step <= 0 {
		step = DefaultStepInterval
	}

	r.overstep += delta

	var steps int
	for r.overstep >= step {
		if r.MaxSteps > 0 && steps >= r.MaxSteps {
			r.overstep = 0
			break
		}

		r.overstep -= step

		if r.BeforeStep != nil {
			r.BeforeStep(step.Seconds())
		}

		r.World.Step(step.Seconds())

		r.Elapsed += step
		r.Steps += 1
		steps += 1
	}

	return steps
}

// Stop prevents any further steps.
func (r *Runner) Stop() {
	r.Stopped = true
}
