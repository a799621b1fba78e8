package canvas

import (
	"unicode/utf8"

	"github.com/oliverbestmann/tumble/gm"
)

type OpKind uint8

const (
	OpArc OpKind = iota
	OpEllipse
	OpFill
	OpStroke
	OpClip
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpArc:
		return "arc"
	case OpEllipse:
		return "ellipse"
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpClip:
		return "clip"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is a single recorded drawing operation.
type Op struct {
	Kind OpKind

	// Transform active when the operation was issued.
	Transform gm.Affine

	// Path is a copy of the current device space path for fill, stroke and clip.
	Path Path

	Paint  Paint
	Rule   FillRule
	Stroke StrokeStyle
	Blend  Blend
	Shadow Shadow

	// Center, Radii, Start, End and Direction describe arcs in local units.
	Center    gm.Vec
	Radii     gm.Vec
	Start     gm.Rad
	End       gm.Rad
	Direction Direction

	Text      string
	Position  gm.Vec
	TextStyle TextStyle
}

// Recorder is a Context that renders nothing but keeps a list of all
// operations issued. Text is measured with a fixed advance per rune.
type Recorder struct {
	Pen
	Ops []Op
}

var _ Context = (*Recorder)(nil)

// GlyphAdvance is the advance of a single rune relative to the font size.
const GlyphAdvance = 0.6

func NewRecorder() *Recorder {
	return &Recorder{Pen: NewPen()}
}

func (r *Recorder) Reset() {
	r.Pen = NewPen()
	r.Ops = nil
}

// OfKind returns all recorded operations of the given kind.
func (r *Recorder) OfKind(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}

	return ops
}

// Texts returns the text of all FillText calls.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, op := range r.OfKind(OpText) {
		texts = append(texts, op.Text)
	}

	return texts
}

func (r *Recorder) Arc(center gm.Vec, radius float64, start, end gm.Rad, direction Direction) {
	r.record(Op{
		Kind:      OpArc,
		Center:    center,
		Radii:     gm.VecSplat(radius),
		Start:     start,
		End:       end,
		Direction: direction,
	})

	r.Pen.Arc(center, radius, start, end, direction)
}

func (r *Recorder) Ellipse(center gm.Vec, radii gm.Vec, rotation, start, end gm.Rad, direction Direction) {
	r.record(Op{
		Kind:      OpEllipse,
		Center:    center,
		Radii:     radii,
		Start:     start,
		End:       end,
		Direction: direction,
	})

	r.Pen.Ellipse(center, radii, rotation, start, end, direction)
}

func (r *Recorder) Fill(paint Paint, rule FillRule) {
	r.record(Op{Kind: OpFill, Path: r.Path().Clone(), Paint: paint, Rule: rule})
}

func (r *Recorder) Stroke(paint Paint, style StrokeStyle) {
	r.record(Op{Kind: OpStroke, Path: r.Path().Clone(), Paint: paint, Stroke: style})
}

func (r *Recorder) Clip() {
	r.record(Op{Kind: OpClip, Path: r.Path().Clone()})
}

func (r *Recorder) FillText(text string, pos gm.Vec, style TextStyle) {
	r.record(Op{Kind: OpText, Text: text, Position: pos, TextStyle: style})
}

func (r *Recorder) MeasureText(text string, font Font) float64 {
	return float64(utf8.RuneCountInString(text)) * font.Size * GlyphAdvance
}

func (r *Recorder) record(op Op) {
	state := r.State()
	op.Transform = state.Transform
	op.Blend = state.Blend
	op.Shadow = state.Shadow
	r.Ops = append(r.Ops, op)
}
