package scene

import (
	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/shapes"
)

func buildParty(s *Scene, rng *gm.Random) {
	w, h := s.Config.Width, s.Config.Height
	f := s.Factory

	k := sceneScale(w, h)

	// a loose grid of five columns and two rows, jittered by the seed
	slot := func(column, row int) gm.Vec {
		return gm.Vec{
			X: w*(float64(column)+0.5)/5 + rng.Centered()*30*k,
			Y: h*(0.2+0.3*float64(row)) + rng.Centered()*30*k,
		}
	}

	s.Add(
		f.Star(slot(0, 0), 5, 80*k, shapes.StarOptions{
			StyleOptions: shapes.StyleOptions{
				Fill: "#FDE047",
				Text: shapes.Some("WOW"),
				Font: "900 28px Inter",
			},
		}),

		f.Eye(slot(1, 0), 160*k, 90*k, shapes.EyeOptions{
			Open: shapes.Some(0.85),
			Gaze: gm.Vec{X: 0.3, Y: -0.1},
		}),

		f.MartiniGlass(slot(2, 0), 150*k, shapes.MartiniGlassOptions{
			Bowl: "#A5F3FC",
			Stem: "#E5E7EB",
		}),

		f.OliveStick(slot(3, 0), shapes.OliveStickOptions{
			Count:       3,
			OliveRadius: 16 * k,
			Angle:       -0.3,
		}),

		f.CameraFront(slot(4, 0), 180*k, 120*k, shapes.CameraFrontOptions{
			Label: shapes.Some("SNAP"),
		}),

		f.ExclamationMark(slot(0, 1), 140*k, shapes.ExclamationMarkOptions{
			Color: "#EF4444",
			Angle: 0.15,
		}),

		f.SparkStar(slot(1, 1), 140*k, 160*k, shapes.SparkStarOptions{
			StyleOptions: shapes.StyleOptions{Fill: "#F472B6"},
		}),

		f.Cloud(slot(2, 1), 220*k, 120*k, shapes.CloudOptions{
			Lobes:  6,
			Shadow: "rgba(15, 23, 42, 0.25)",
			Seed:   shapes.Some(int64(s.Config.Seed)),
		}),

		f.CShape(slot(3, 1), 90*k, shapes.CShapeOptions{
			StyleOptions: shapes.StyleOptions{
				Fill: "#60A5FA",
				Text: shapes.Some("AROUND"),
				Font: "800 22px Inter",
			},
			Thickness:     0.4,
			TextDirection: shapes.Some(canvas.Clockwise),
		}),

		f.RectWithCircles(slot(4, 1), 200*k, 80*k, shapes.RectWithCirclesOptions{
			Count:        shapes.Some(4),
			RectColor:    "#1F2937",
			CircleColors: []string{"#F87171", "#FBBF24", "#34D399", "#60A5FA"},
		}),
	)
}
