package shapes

import (
	"log/slog"
	"math"

	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
)

// Factory creates bodies through a physics.Builder and records their look in a Store.
// Bodies are returned detached and still need to be added to a world.
type Factory struct {
	bodies physics.Builder
	store  *Store
}

func NewFactory(bodies physics.Builder, store *Store) *Factory {
	if store == nil {
		store = NewStore()
	}

	return &Factory{bodies: bodies, store: store}
}

func (f *Factory) Store() *Store {
	return f.store
}

func (f *Factory) record(body *physics.Body, record Record) *physics.Body {
	f.store.Set(body, record)
	return body
}

// fromVerticesOr builds a body from a concave outline, or a circle
// if the outline can not be turned into a body.
func (f *Factory) fromVerticesOr(pos gm.Vec, outline []gm.Vec, opts physics.BodyOptions, fallbackRadius float64, kind Kind) *physics.Body {
	body := f.bodies.FromVertices(pos, [][]gm.Vec{outline}, opts, true)
	if body != nil {
		return body
	}

	slog.Debug("Using bounding circle as collision shape",
		slog.String("kind", kind.String()),
		slog.Int("vertices", len(outline)),
		slog.Float64("radius", fallbackRadius),
	)

	return f.bodies.Circle(pos, fallbackRadius, opts)
}

// compound merges the parts and moves the result to pos. If no part could
// be created, a circle of fallbackRadius is used.
func (f *Factory) compound(pos gm.Vec, angle gm.Rad, opts physics.BodyOptions, fallbackRadius float64, parts ...*physics.Body) *physics.Body {
	body := f.bodies.Compound(parts, opts)
	if body == nil {
		slog.Debug("Using bounding circle for empty compound", slog.Float64("radius", fallbackRadius))
		body = f.bodies.Circle(gm.VecZero, fallbackRadius, opts)
	}

	body.SetPosition(pos)
	body.SetAngle(angle)
	return body
}

// labelMaterial is the bouncier and grippier material of the flat label shapes.
func labelMaterial(opts physics.BodyOptions) physics.BodyOptions {
	if opts.Elasticity == 0 {
		opts.Elasticity = 0.4
	}

	if opts.Friction == 0 {
		opts.Friction = 0.4
	}

	return opts
}

// minSize is the smallest extent of a collider. Smaller, negative or NaN
// sizes would give a body without mass.
const minSize = 1.0

func clampSize(value float64) float64 {
	if math.IsNaN(value) || value < minSize {
		return minSize
	}

	return value
}

func positiveOr(value, fallback float64) float64 {
	if value > 0 {
		return value
	}

	return fallback
}

func stringOr(value, fallback string) string {
	if value != "" {
		return value
	}

	return fallback
}
