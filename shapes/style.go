package shapes

import (
	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
)

const defaultTextColor = color.FallbackText

// Style holds the paint parameters shared by most kinds.
type Style struct {
	// Fill is a css color.
	Fill string

	// Outline is a css color, empty for no outline.
	Outline      string
	OutlineWidth float64

	Text      string
	Font      string
	TextColor string

	// Rotation is added to the angle of the body when painting.
	Rotation gm.Rad
}

// StyleOptions override the style defaults of a kind. Zero values keep the default.
type StyleOptions struct {
	Fill string

	// Outline is set to an empty string to remove a default outline.
	Outline      Opt[string]
	OutlineWidth float64

	// Text is set to an empty string to remove the default label.
	Text      Opt[string]
	Font      string
	TextColor string

	Rotation gm.Rad
}

// apply merges the options over the defaults. If no text color is known
// afterwards, a darker variant of the fill is used.
func (o StyleOptions) apply(style Style) Style {
	if o.Fill != "" {
		style.Fill = o.Fill
	}

	style.Outline = o.Outline.OrValue(style.Outline)

	if o.OutlineWidth > 0 {
		style.OutlineWidth = o.OutlineWidth
	}

	style.Text = o.Text.OrValue(style.Text)

	if o.Font != "" {
		style.Font = o.Font
	}

	if o.TextColor != "" {
		style.TextColor = o.TextColor
	}

	if style.TextColor == "" {
		style.TextColor = color.DarkerText(style.Fill, color.DefaultDarken)
	}

	if o.Rotation != 0 {
		style.Rotation = o.Rotation
	}

	return style
}

func (s Style) fill(ctx canvas.Context, rule canvas.FillRule) {
	fillWith(ctx, s.Fill, rule)
}

func (s Style) stroke(ctx canvas.Context) {
	strokeWith(ctx, s.Outline, s.OutlineWidth)
}

// textStyle returns a centered text style. ok is false if the text color is not valid.
func (s Style) textStyle() (style canvas.TextStyle, ok bool) {
	textColor, ok := color.Parse(s.TextColor)
	if !ok {
		return canvas.TextStyle{}, false
	}

	return canvas.CenteredText(canvas.ParseFont(s.Font), textColor), true
}

// label draws the text of the style centered at pos.
func (s Style) label(ctx canvas.Context, pos gm.Vec) {
	if s.Text == "" {
		return
	}

	style, ok := s.textStyle()
	if !ok {
		return
	}

	ctx.FillText(s.Text, pos, style)
}
