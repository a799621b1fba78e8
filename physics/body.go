package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/tumble/gm"
)

// Body is a rigid body made of one or more colliders. A body is created detached
// and becomes part of the simulation once added to a World. Until then, the
// setters only record the initial state.
type Body struct {
	parts []ToShape
	opts  BodyOptions

	position        gm.Vec
	angle           gm.Rad
	velocity        gm.Vec
	angularVelocity float64

	space  *cp.Space
	body   *cp.Body
	shapes []*cp.Shape
}

// NewBody creates a detached body from the given colliders.
// The colliders are given in the local space of the body.
func NewBody(parts []ToShape, opts BodyOptions) *Body {
	return &Body{
		parts: parts,
		opts:  opts.withDefaults(),
	}
}

// Parts returns the colliders of this body in local space.
func (b *Body) Parts() []ToShape {
	return b.parts
}

func (b *Body) Options() BodyOptions {
	return b.opts
}

func (b *Body) IsStatic() bool {
	return b.opts.Static
}

// Attached reports whether the body is part of a World.
func (b *Body) Attached() bool {
	return b.body != nil
}

func (b *Body) Position() gm.Vec {
	if b.body != nil {
		return vecOf(b.body.Position())
	}

	return b.position
}

func (b *Body) Angle() gm.Rad {
	if b.body != nil {
		return gm.Rad(b.body.Angle())
	}

	return b.angle
}

// Velocity is measured in pixels per second.
func (b *Body) Velocity() gm.Vec {
	if b.body != nil {
		return vecOf(b.body.Velocity())
	}

	return b.velocity
}

// AngularVelocity is measured in radians per second.
func (b *Body) AngularVelocity() float64 {
	if b.body != nil {
		return b.body.AngularVelocity()
	}

	return b.angularVelocity
}

// Mass returns the mass of the body, or zero for detached or static bodies.
func (b *Body) Mass() float64 {
	if b.body == nil || b.opts.Static {
		return 0
	}

	return b.body.Mass()
}

func (b *Body) SetPosition(pos gm.Vec) {
	b.position = pos

	if b.body != nil {
		b.body.SetPosition(cpVecOf(pos))
		b.reindexStatic()
	}
}

func (b *Body) SetAngle(angle gm.Rad) {
	b.angle = angle

	if b.body != nil {
		b.body.SetAngle(float64(angle))
		b.reindexStatic()
	}
}

// static shapes are not moved by the solver, their bounding boxes are only
// refreshed when reindexed explicitly.
func (b *Body) reindexStatic() {
	if !b.opts.Static || b.space == nil {
		return
	}

	for _, shape := range b.shapes {
		b.space.ReindexShape(shape)
	}
}

func (b *Body) SetVelocity(velocity gm.Vec) {
	b.velocity = velocity

	if b.body != nil && !b.opts.Static {
		b.body.SetVelocity(velocity.X, velocity.Y)
	}
}

func (b *Body) SetAngularVelocity(velocity float64) {
	b.angularVelocity = velocity

	if b.body != nil && !b.opts.Static {
		b.body.SetAngularVelocity(velocity)
	}
}

// WorldToLocal converts a point from world space into the local space of the body.
func (b *Body) WorldToLocal(point gm.Vec) gm.Vec {
	if b.body != nil {
		return vecOf(b.body.WorldToLocal(cpVecOf(point)))
	}

	return gm.IdentityAffine().
		Translate(b.position).
		Rotate(b.angle).
		Inverse().
		Transform(point)
}

// Bounds returns an axis aligned bounding box of the colliders in world space.
func (b *Body) Bounds() gm.Rect {
	tr := gm.IdentityAffine().Translate(b.Position()).Rotate(b.Angle())

	r := gm.EmptyRect
	for _, part := range b.parts {
		switch part := part.(type) {
		case CircleShape:
			center := tr.Transform(part.Offset)
			r = r.Union(gm.RectWithCenterAndSize(center, gm.VecSplat(2*part.Radius)))

		case PolygonShape:
			for _, point := range part.Points {
				r = r.Extend(tr.Transform(point))
			}
		}
	}

	return r
}

func (b *Body) attach(space *cp.Space) {
	if b.body != nil {
		return
	}

	var body *cp.Body
	if b.opts.Static {
		body = cp.NewStaticBody()
	} else {
		body = cp.NewBody(0, 0)
	}

	body.UserData = b
	body.SetPosition(cpVecOf(b.position))
	body.SetAngle(float64(b.angle))

	space.AddBody(body)

	for _, part := range b.parts {
		shape := space.AddShape(part.MakeShape(body))
		shape.SetElasticity(b.opts.Elasticity)
		shape.SetFriction(b.opts.Friction)

		if !b.opts.Static {
			shape.SetDensity(b.opts.Density)
		}

		b.shapes = append(b.shapes, shape)
	}

	b.body = body
	b.space = space

	if !b.opts.Static {
		body.SetVelocity(b.velocity.X, b.velocity.Y)
		body.SetAngularVelocity(b.angularVelocity)
	}
}

func (b *Body) detach(space *cp.Space) {
	if b.body == nil {
		return
	}

	// keep the last known state so the body can be inspected or re-added later
	b.position = vecOf(b.body.Position())
	b.angle = gm.Rad(b.body.Angle())
	b.velocity = vecOf(b.body.Velocity())
	b.angularVelocity = b.body.AngularVelocity()

	for _, shape := range b.shapes {
		space.RemoveShape(shape)
	}

	space.RemoveBody(b.body)

	b.body = nil
	b.space = nil
	b.shapes = nil
}
