package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/oliverbestmann/tumble/gm"
)

// FallbackText is the derived text color for backgrounds that are not understood.
const FallbackText = "#0B1220"

// DefaultDarken is the amount used by shape factories when deriving a text color.
const DefaultDarken = 0.7

// rgbChannels only needs the leading channels, anything after them is ignored.
var rgbChannels = regexp.MustCompile(`rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)

var darkNamed = map[string]string{
	"red":     "#8B0000",
	"green":   "#006400",
	"blue":    "#00008B",
	"yellow":  "#B8860B",
	"orange":  "#8B4513",
	"purple":  "#4B0082",
	"pink":    "#8B008B",
	"cyan":    "#008B8B",
	"teal":    "#008080",
	"indigo":  "#4B0082",
	"violet":  "#8A2BE2",
	"emerald": "#006400",
	"lime":    "#556B2F",
	"amber":   "#B8860B",
	"sky":     "#0066CC",
	"fuscia":  "#8B008B",
	"white":   "#333333",
	"black":   "#000000",
	"gray":    "#333333",
	"grey":    "#333333",
}

// DarkerText derives a readable text color from a background color.
//
// Hex input yields lowercase #rrggbb output, rgb() and rgba() input yields rgb(r, g, b).
// Each channel is scaled to floor(c * (1 - amount)). Named colors map to a
// fixed table, everything else yields FallbackText. The function is pure.
func DarkerText(background string, amount float64) string {
	factor := 1 - gm.Clamp(amount, 0, 1)

	darken := func(c uint8) uint8 {
		return uint8(math.Max(0, math.Floor(float64(c)*factor)))
	}

	switch {
	case strings.HasPrefix(background, "#"):
		r, g, b, ok := hexChannels(background)
		if !ok {
			return FallbackText
		}

		dark := colorful.Color{
			R: float64(darken(r)) / 255,
			G: float64(darken(g)) / 255,
			B: float64(darken(b)) / 255,
		}

		return dark.Hex()

	case strings.HasPrefix(background, "rgb"):
		match := rgbChannels.FindStringSubmatch(strings.ToLower(strings.TrimSpace(background)))
		if match == nil {
			break
		}

		var channels [3]uint8
		for idx := range channels {
			value, _ := strconv.Atoi(match[idx+1])
			channels[idx] = uint8(min(value, 255))
		}

		return fmt.Sprintf("rgb(%d, %d, %d)",
			darken(channels[0]), darken(channels[1]), darken(channels[2]))
	}

	if dark, ok := darkNamed[strings.ToLower(background)]; ok {
		return dark
	}

	return FallbackText
}

func hexChannels(value string) (r, g, b uint8, ok bool) {
	// drop an alpha channel, it does not influence the text color
	switch len(value) {
	case 5:
		value = value[:4]
	case 9:
		value = value[:7]
	}

	parsed, err := colorful.Hex(value)
	if err != nil {
		return 0, 0, 0, false
	}

	r, g, b = parsed.RGB255()
	return r, g, b, true
}
