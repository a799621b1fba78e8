package canvas

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oliverbestmann/tumble/color"
)

const (
	WeightNormal = 400
	WeightBold   = 700
)

// Font describes a font the way a css font shorthand does.
type Font struct {
	Family string
	Size   float64
	Weight int
	Italic bool
}

var DefaultFont = Font{Family: "sans-serif", Size: 16, Weight: WeightNormal}

// ParseFont parses a css like font shorthand such as "900 44px Inter" or
// "bold 26px sans-serif". Parts that are not understood are ignored and
// missing parts fall back to DefaultFont.
func ParseFont(value string) Font {
	font := DefaultFont

	fields := strings.Fields(value)
	for idx, field := range fields {
		lower := strings.ToLower(field)

		switch lower {
		case "normal":
			font.Weight = WeightNormal
			continue
		case "bold":
			font.Weight = WeightBold
			continue
		case "bolder":
			font.Weight = 900
			continue
		case "lighter":
			font.Weight = 300
			continue
		case "italic", "oblique":
			font.Italic = true
			continue
		}

		if weight, err := strconv.Atoi(lower); err == nil {
			if weight >= 1 && weight <= 1000 {
				font.Weight = weight
			}

			continue
		}

		if size, ok := parseSize(lower); ok {
			font.Size = size

			// everything after the size is the family name
			if rest := fields[idx+1:]; len(rest) > 0 {
				font.Family = strings.Trim(strings.Join(rest, " "), `"'`)
			}

			break
		}
	}

	return font
}

func parseSize(value string) (float64, bool) {
	// line heights like 44px/1.2 are ignored
	value, _, _ = strings.Cut(value, "/")

	number, ok := strings.CutSuffix(value, "px")
	if !ok {
		return 0, false
	}

	size, err := strconv.ParseFloat(number, 64)
	if err != nil || size <= 0 {
		return 0, false
	}

	return size, true
}

func (f Font) Bold() bool {
	return f.Weight >= 600
}

// LineHeight is the distance between two lines of stacked text.
func (f Font) LineHeight() float64 {
	return f.Size * 1.1
}

func (f Font) String() string {
	var prefix string
	if f.Italic {
		prefix = "italic "
	}

	return fmt.Sprintf("%s%d %gpx %s", prefix, f.Weight, f.Size, f.Family)
}

type TextAlign uint8

const (
	AlignStart TextAlign = iota
	AlignCenter
	AlignEnd
)

type TextBaseline uint8

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineMiddle
	BaselineTop
	BaselineBottom
)

type TextStyle struct {
	Font     Font
	Color    color.Color
	Align    TextAlign
	Baseline TextBaseline
}

// CenteredText returns a style that centers text at the drawing position.
func CenteredText(font Font, c color.Color) TextStyle {
	return TextStyle{
		Font:     font,
		Color:    c,
		Align:    AlignCenter,
		Baseline: BaselineMiddle,
	}
}

// AlignOffset returns the horizontal offset to apply to the pen for a text with the given width.
func (s TextStyle) AlignOffset(width float64) float64 {
	switch s.Align {
	case AlignCenter:
		return -width / 2
	case AlignEnd:
		return -width
	default:
		return 0
	}
}

// BaselineOffset returns the vertical offset from the drawing position to the
// alphabetic baseline, given the ascent and descent of the font.
func (s TextStyle) BaselineOffset(ascent, descent float64) float64 {
	switch s.Baseline {
	case BaselineMiddle:
		return (ascent - descent) / 2
	case BaselineTop:
		return ascent
	case BaselineBottom:
		return -descent
	default:
		return 0
	}
}
