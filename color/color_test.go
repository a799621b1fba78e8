package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Color
	}{
		{"#ff0000", RGB(1, 0, 0)},
		{"#F00", RGB(1, 0, 0)},
		{"#00000080", RGBA(0, 0, 0, 128.0/255)},
		{"rgb(0, 255, 0)", RGB(0, 1, 0)},
		{"rgba(0,0,255,0.5)", RGBA(0, 0, 1, 0.5)},
		{"white", White},
		{"  Black ", Black},
		{"transparent", Transparent},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			c, ok := Parse(tc.input)
			require.True(t, ok)
			require.InDelta(t, tc.want.R, c.R, 1e-3)
			require.InDelta(t, tc.want.G, c.G, 1e-3)
			require.InDelta(t, tc.want.B, c.B, 1e-3)
			require.InDelta(t, tc.want.A, c.A, 1e-3)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "#12", "hsl(0, 0%, 0%)", "not-a-color"} {
		_, ok := Parse(input)
		require.False(t, ok, input)
	}
}

func TestDarkerText(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"#FFFFFF", "#4c4c4c"},
		{"#22C55E", "#0a3b1c"},
		{"#fff", "#4c4c4c"},
		{"rgb(255, 100, 10)", "rgb(76, 30, 3)"},
		{"rgba(10, 20, 30, 0.5)", "rgb(3, 6, 9)"},
		{"rgb(10,20,30 / 50%)", "rgb(3, 6, 9)"},
		{"rgb(100, 200, 50) trailing", "rgb(30, 60, 15)"},
		{"red", "#8B0000"},
		{"White", "#333333"},
		{"sky", "#0066CC"},
		{"papayawhip", FallbackText},
		{"hsl(1, 2%, 3%)", FallbackText},
		{"#zzzzzz", FallbackText},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.want, DarkerText(tc.input, DefaultDarken))
		})
	}
}

func TestDarkerText_Deterministic(t *testing.T) {
	first := DarkerText("#A7F3D0", 0.7)
	for range 10 {
		require.Equal(t, first, DarkerText("#A7F3D0", 0.7))
	}
}

func TestColor_Lerp(t *testing.T) {
	c := Black.Lerp(White, 0.5)
	require.Equal(t, Gray(0.5), c)
}
