package scene

import (
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
	"github.com/oliverbestmann/tumble/shapes"
)

func buildLabels(s *Scene, rng *gm.Random) {
	w, h := s.Config.Width, s.Config.Height
	f := s.Factory

	k := sceneScale(w, h)

	// two rows of labels, tumbling slightly when they land
	row := func(y float64, count int) []gm.Vec {
		positions := make([]gm.Vec, count)
		for idx := range positions {
			x := w * (float64(idx) + 0.5) / float64(count)
			positions[idx] = gm.Vec{X: x + rng.Centered()*40*k, Y: y + rng.Centered()*30*k}
		}

		return positions
	}

	top := row(h*0.2, 4)
	bottom := row(h*0.5, 4)

	s.Add(
		f.Dot(top[0], 55*k, shapes.DotOptions{
			StyleOptions: shapes.StyleOptions{Text: shapes.Some("Hi!")},
		}),

		f.Banner(top[1], 240*k, 80*k, shapes.BannerOptions{
			StyleOptions: shapes.StyleOptions{
				Fill: "#FACC15",
				Text: shapes.Some("SALE"),
				Font: "900 40px Inter",
			},
		}),

		f.Burst(top[2], shapes.BurstOptions{
			InnerRadius: 50 * k,
			OuterRadius: 80 * k,
		}),

		f.Pill(top[3], 220*k, 70*k, shapes.PillOptions{
			StyleOptions: shapes.StyleOptions{
				Fill: "#A5F3FC",
				Text: shapes.Some("hello world"),
				Font: "700 28px Inter",
			},
		}),

		f.Parallelogram(bottom[0], 220*k, 80*k, shapes.ParallelogramOptions{
			StyleOptions: shapes.StyleOptions{
				Fill: "#C7D2FE",
				Text: shapes.Some("FAST"),
				Font: "italic 900 36px Inter",
			},
		}),

		f.VLabel(bottom[1], 70*k, 240*k, shapes.VLabelOptions{
			StyleOptions: shapes.StyleOptions{
				Fill: "#FECACA",
				Text: shapes.Some("VERTICAL"),
				Font: "800 28px Inter",
			},
		}),

		f.QuarterPie(bottom[2], 140*k, shapes.QuarterPieOptions{
			StyleOptions: shapes.StyleOptions{
				Fill: "#A7F3D0",
				Text: shapes.Some("slice"),
				Font: "700 24px Inter",
			},
		}),

		f.ThickRing(bottom[3], shapes.ThickRingOptions{
			BodyOptions: physics.BodyOptions{Elasticity: 0.4},
			StyleOptions: shapes.StyleOptions{
				Fill: "#FDE68A",
			},
			OuterRadius: 90 * k,
			InnerRadius: 45 * k,
		}),
	)

	for _, body := range s.Bodies {
		body.SetAngle(gm.Rad(rng.Centered() * 0.4))
	}
}

// sceneScale shrinks shapes on screens smaller than the reference layout of 1280x800.
func sceneScale(width, height float64) float64 {
	return min(1, width/1280, height/800)
}
