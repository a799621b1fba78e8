package physics

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/tumble/gm"
)

// DefaultStiffness is the fraction of the distance to the pointer the grab point
// is moved towards per call to Move.
const DefaultStiffness = 0.2

// MouseDrag lets a pointer grab and pull dynamic bodies using a pivot joint.
type MouseDrag struct {
	world *World

	// Stiffness in (0, 1].
	Stiffness float64

	// GrabRadius is the maximum distance to a body for a grab to succeed.
	GrabRadius float64

	mouse  *cp.Body
	joint  *cp.Constraint
	target gm.Vec
	body   *Body
}

func NewMouseDrag(world *World) *MouseDrag {
	mouse := cp.NewKinematicBody()
	world.space.AddBody(mouse)

	return &MouseDrag{
		world:      world,
		Stiffness:  DefaultStiffness,
		GrabRadius: 5,
		mouse:      mouse,
	}
}

// Grabbed returns the body currently dragged, or nil.
func (d *MouseDrag) Grabbed() *Body {
	return d.body
}

// Press tries to grab a body at the given point.
func (d *MouseDrag) Press(point gm.Vec) bool {
	d.Release()

	d.target = point
	d.mouse.SetPosition(cpVecOf(point))
	d.mouse.SetVelocity(0, 0)

	body := d.world.BodyAt(point, d.GrabRadius)
	if body == nil {
		return false
	}

	anchor := body.WorldToLocal(point)

	joint := cp.NewPivotJoint2(d.mouse, body.body, cp.Vector{}, cpVecOf(anchor))
	joint.SetMaxForce(50000 * math.Max(1, body.Mass()))
	joint.SetErrorBias(math.Pow(1-d.stiffness(), 60))

	d.joint = d.world.space.AddConstraint(joint)
	d.body = body

	return true
}

// Move updates the pointer position.
func (d *MouseDrag) Move(point gm.Vec) {
	d.target = point
}

// Update moves the grab point towards the pointer. Call it once per fixed step.
func (d *MouseDrag) Update(dt float64) {
	current := vecOf(d.mouse.Position())
	next := current.Lerp(d.target, d.stiffness())

	if dt > 0 {
		velocity := next.Sub(current).Mul(1 / dt)
		d.mouse.SetVelocity(velocity.X, velocity.Y)
	}

	d.mouse.SetPosition(cpVecOf(next))
}

// Release lets go of the body currently dragged.
func (d *MouseDrag) Release() {
	if d.joint != nil {
		d.world.space.RemoveConstraint(d.joint)
	}

	d.joint = nil
	d.body = nil
}

func (d *MouseDrag) stiffness() float64 {
	if d.Stiffness <= 0 || d.Stiffness > 1 {
		return DefaultStiffness
	}

	return d.Stiffness
}
