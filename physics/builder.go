package physics

import (
	"log/slog"

	"github.com/oliverbestmann/tumble/gm"
)

// Builder creates detached bodies from simple geometric descriptions.
type Builder interface {
	Circle(pos gm.Vec, radius float64, opts BodyOptions) *Body
	Rectangle(pos gm.Vec, width, height float64, opts BodyOptions) *Body

	// FromVertices creates a body at pos from outline loops given relative to pos.
	// Concave outlines are only supported if decompose is set. Returns nil if no
	// body could be created.
	FromVertices(pos gm.Vec, loops [][]gm.Vec, opts BodyOptions, decompose bool) *Body

	// Compound merges the colliders of the given bodies into a single body. Each
	// part is placed at its position and angle relative to the origin of the compound,
	// which starts out at zero.
	Compound(parts []*Body, opts BodyOptions) *Body
}

func (w *World) Circle(pos gm.Vec, radius float64, opts BodyOptions) *Body {
	body := NewBody([]ToShape{CircleShape{Radius: radius}}, opts)
	body.SetPosition(pos)
	return body
}

func (w *World) Rectangle(pos gm.Vec, width, height float64, opts BodyOptions) *Body {
	body := NewBody([]ToShape{BoxShape(gm.Vec{X: width, Y: height})}, opts)
	body.SetPosition(pos)
	return body
}

func (w *World) FromVertices(pos gm.Vec, loops [][]gm.Vec, opts BodyOptions, decompose bool) *Body {
	var pieces [][]gm.Vec

	for _, loop := range loops {
		if len(loop) < 3 {
			continue
		}

		if IsConvex(loop) {
			pieces = append(pieces, loop)
			continue
		}

		if !decompose || w.decomposer == nil {
			slog.Debug("Concave outline without decomposition", slog.Int("vertices", len(loop)))
			return nil
		}

		convex, ok := w.decomposer.Decompose(loop)
		if !ok {
			slog.Debug("Failed to decompose outline", slog.Int("vertices", len(loop)))
			return nil
		}

		pieces = append(pieces, convex...)
	}

	if len(pieces) == 0 {
		return nil
	}

	var parts []ToShape
	for _, piece := range pieces {
		parts = append(parts, PolygonShape{Points: piece})
	}

	body := NewBody(parts, opts)
	body.SetPosition(pos)
	return body
}

func (w *World) Compound(parts []*Body, opts BodyOptions) *Body {
	var shapes []ToShape

	for _, part := range parts {
		if part == nil {
			continue
		}

		tr := gm.IdentityAffine().Translate(part.Position()).Rotate(part.Angle())

		for _, shape := range part.Parts() {
			shapes = append(shapes, transformShape(shape, tr))
		}
	}

	if len(shapes) == 0 {
		return nil
	}

	return NewBody(shapes, opts)
}

func transformShape(shape ToShape, tr gm.Affine) ToShape {
	switch shape := shape.(type) {
	case CircleShape:
		shape.Offset = tr.Transform(shape.Offset)
		return shape

	case PolygonShape:
		points := make([]gm.Vec, len(shape.Points))
		for idx, point := range shape.Points {
			points[idx] = tr.Transform(point)
		}

		return PolygonShape{Points: points, Radius: shape.Radius}

	default:
		return shape.Translate(tr.Translation)
	}
}
