package canvas

import (
	"github.com/oliverbestmann/tumble/gm"
)

// State is the part of a Context that is pushed by Save.
type State struct {
	Transform gm.Affine
	Blend     Blend
	Shadow    Shadow
}

// Pen implements the transform stack and path building of a Context.
// Backends embed a Pen and implement the drawing operations on top of the
// device space Path it builds.
type Pen struct {
	state State
	stack []State

	path       Path
	start      gm.Vec
	current    gm.Vec
	hasCurrent bool
}

func NewPen() Pen {
	return Pen{state: State{Transform: gm.IdentityAffine()}}
}

func (p *Pen) State() State {
	return p.state
}

// Depth returns the number of saved states.
func (p *Pen) Depth() int {
	return len(p.stack)
}

func (p *Pen) Save() {
	p.stack = append(p.stack, p.state)
}

func (p *Pen) Restore() {
	if len(p.stack) == 0 {
		return
	}

	p.state = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *Pen) Transform() gm.Affine {
	return p.state.Transform
}

func (p *Pen) SetTransform(tr gm.Affine) {
	p.state.Transform = tr
}

func (p *Pen) Translate(offset gm.Vec) {
	p.state.Transform = p.state.Transform.Translate(offset)
}

func (p *Pen) Rotate(angle gm.Rad) {
	p.state.Transform = p.state.Transform.Rotate(angle)
}

func (p *Pen) Scale(scale gm.Vec) {
	p.state.Transform = p.state.Transform.Scale(scale)
}

func (p *Pen) SetBlend(blend Blend) {
	p.state.Blend = blend
}

func (p *Pen) SetShadow(shadow Shadow) {
	p.state.Shadow = shadow
}

// Path returns the current path in device space.
func (p *Pen) Path() *Path {
	return &p.path
}

func (p *Pen) BeginPath() {
	p.path.Reset()
	p.hasCurrent = false
}

func (p *Pen) MoveTo(point gm.Vec) {
	p.start = p.state.Transform.Transform(point)
	p.current = p.start
	p.hasCurrent = true

	p.push(SegmentMoveTo, p.start)
}

func (p *Pen) LineTo(point gm.Vec) {
	if !p.hasCurrent {
		p.MoveTo(point)
		return
	}

	p.current = p.state.Transform.Transform(point)
	p.push(SegmentLineTo, p.current)
}

func (p *Pen) QuadTo(control, point gm.Vec) {
	p.ensureCurrent(control)

	tr := p.state.Transform
	p.current = tr.Transform(point)
	p.push(SegmentQuadTo, tr.Transform(control), p.current)
}

func (p *Pen) CubicTo(firstControl, secondControl, point gm.Vec) {
	p.ensureCurrent(firstControl)

	tr := p.state.Transform
	p.current = tr.Transform(point)
	p.push(SegmentCubicTo, tr.Transform(firstControl), tr.Transform(secondControl), p.current)
}

func (p *Pen) Arc(center gm.Vec, radius float64, start, end gm.Rad, direction Direction) {
	p.Ellipse(center, gm.VecSplat(radius), 0, start, end, direction)
}

func (p *Pen) Ellipse(center gm.Vec, radii gm.Vec, rotation, start, end gm.Rad, direction Direction) {
	if radii.X < 0 || radii.Y < 0 {
		return
	}

	local := gm.IdentityAffine().Translate(center).Rotate(rotation)
	tr := p.state.Transform.Mul(local)

	first := tr.Transform(gm.Polar(start, radii.X, radii.Y))
	if p.hasCurrent {
		p.current = first
		p.push(SegmentLineTo, first)
	} else {
		p.start = first
		p.current = first
		p.hasCurrent = true
		p.push(SegmentMoveTo, first)
	}

	sweep := ArcSweep(start, end, direction)
	points := arcCubics(radii, start, sweep)
	for idx := 0; idx+2 < len(points); idx += 3 {
		c1 := tr.Transform(points[idx])
		c2 := tr.Transform(points[idx+1])
		p.current = tr.Transform(points[idx+2])
		p.push(SegmentCubicTo, c1, c2, p.current)
	}
}

func (p *Pen) Rect(rect gm.Rect) {
	p.MoveTo(rect.Min)
	p.LineTo(gm.Vec{X: rect.Max.X, Y: rect.Min.Y})
	p.LineTo(rect.Max)
	p.LineTo(gm.Vec{X: rect.Min.X, Y: rect.Max.Y})
	p.ClosePath()
}

func (p *Pen) ClosePath() {
	if !p.hasCurrent {
		return
	}

	p.path.Segments = append(p.path.Segments, Segment{Kind: SegmentClose})
	p.current = p.start
}

func (p *Pen) ensureCurrent(point gm.Vec) {
	if !p.hasCurrent {
		p.MoveTo(point)
	}
}

func (p *Pen) push(kind SegmentKind, points ...gm.Vec) {
	segment := Segment{Kind: kind}
	copy(segment.Points[:], points)
	p.path.Segments = append(p.path.Segments, segment)
}
