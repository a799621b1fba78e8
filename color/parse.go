package color

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([0-9.]+)\s*)?\)$`)

var named = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"teal":    "#008080",
	"navy":    "#000080",
	"indigo":  "#4b0082",
	"violet":  "#ee82ee",
	"gold":    "#ffd700",
	"brown":   "#a52a2a",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
}

// Parse reads a css like color value. Supported are hex colors (#rgb, #rrggbb
// and #rrggbbaa), rgb() and rgba() functions, a small table of named colors
// and the keywords "transparent" and "none".
func Parse(value string) (Color, bool) {
	value = strings.ToLower(strings.TrimSpace(value))

	switch value {
	case "":
		return Color{}, false

	case "transparent", "none":
		return Transparent, true
	}

	if hex, ok := named[value]; ok {
		value = hex
	}

	if strings.HasPrefix(value, "#") {
		return parseHex(value)
	}

	if match := rgbPattern.FindStringSubmatch(value); match != nil {
		r, _ := strconv.Atoi(match[1])
		g, _ := strconv.Atoi(match[2])
		b, _ := strconv.Atoi(match[3])

		c := RGB255(uint8(min(r, 255)), uint8(min(g, 255)), uint8(min(b, 255)))

		if match[4] != "" {
			alpha, err := strconv.ParseFloat(match[4], 32)
			if err != nil {
				return Color{}, false
			}

			c.A = clamp(float32(alpha), 0, 1)
		}

		return c, true
	}

	return Color{}, false
}

// MustParse is like Parse but panics if the value can not be parsed.
func MustParse(value string) Color {
	c, ok := Parse(value)
	if !ok {
		panic("invalid color: " + value)
	}

	return c
}

func parseHex(value string) (Color, bool) {
	alpha := float32(1)

	if len(value) == 9 {
		a, err := strconv.ParseUint(value[7:], 16, 8)
		if err != nil {
			return Color{}, false
		}

		alpha = float32(a) / 255
		value = value[:7]
	}

	parsed, err := colorful.Hex(value)
	if err != nil {
		return Color{}, false
	}

	r, g, b := parsed.RGB255()
	return RGB255(r, g, b).WithAlpha(alpha), true
}
