package physics

import (
	"log/slog"
	"slices"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/tumble/gm"
)

// World wraps a chipmunk space. It also implements Builder, so shape factories
// can create bodies using the decomposer configured for this world.
type World struct {
	space      *cp.Space
	decomposer Decomposer
	bodies     []*Body
}

var _ Builder = (*World)(nil)

func NewWorld(opts WorldOptions) *World {
	decomposer := opts.Decomposer
	opts = opts.withDefaults()

	space := cp.NewSpace()
	space.SetGravity(cpVecOf(opts.Gravity))
	space.SetDamping(opts.Damping)
	space.Iterations = uint(opts.Iterations)

	return &World{
		space:      space,
		decomposer: decomposer,
	}
}

// Add attaches the bodies to the simulation. Bodies that are already part of
// the world are ignored.
func (w *World) Add(bodies ...*Body) {
	for _, body := range bodies {
		if body == nil || body.Attached() {
			continue
		}

		body.attach(w.space)
		w.bodies = append(w.bodies, body)
	}
}

// Remove detaches the bodies from the simulation.
func (w *World) Remove(bodies ...*Body) {
	for _, body := range bodies {
		if body == nil || !body.Attached() {
			continue
		}

		body.detach(w.space)
		w.bodies = slices.DeleteFunc(w.bodies, func(other *Body) bool { return other == body })
	}
}

// Bodies returns all bodies in insertion order. The slice must not be modified.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// BodyAt returns the dynamic body closest to point, within maxDistance.
func (w *World) BodyAt(point gm.Vec, maxDistance float64) *Body {
	info := w.space.PointQueryNearest(cpVecOf(point), maxDistance, cp.SHAPE_FILTER_ALL)
	if info.Shape == nil {
		return nil
	}

	body, _ := info.Shape.Body().UserData.(*Body)
	if body == nil || body.IsStatic() {
		return nil
	}

	return body
}

// Space exposes the underlying chipmunk space.
func (w *World) Space() *cp.Space {
	return w.space
}

// Clear removes all bodies from the world.
func (w *World) Clear() {
	for _, body := range slices.Clone(w.bodies) {
		w.Remove(body)
	}
}

// Walls adds static boundaries just outside of the rectangle (0, 0, width, height):
// a floor, a left and a right wall and optionally a ceiling.
func (w *World) Walls(width, height, thickness float64, ceiling bool) []*Body {
	opts := BodyOptions{Static: true, Friction: 0.8, Elasticity: 0.2}

	half := thickness / 2

	walls := []*Body{
		// floor
		w.Rectangle(gm.Vec{X: width / 2, Y: height + half}, width+2*thickness, thickness, opts),

		// left and right
		w.Rectangle(gm.Vec{X: -half, Y: height / 2}, thickness, height*3, opts),
		w.Rectangle(gm.Vec{X: width + half, Y: height / 2}, thickness, height*3, opts),
	}

	if ceiling {
		walls = append(walls, w.Rectangle(gm.Vec{X: width / 2, Y: -half}, width+2*thickness, thickness, opts))
	}

	w.Add(walls...)

	slog.Debug("Added boundaries",
		slog.Float64("width", width),
		slog.Float64("height", height),
		slog.Bool("ceiling", ceiling),
	)

	return walls
}
