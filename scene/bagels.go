package scene

import (
	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/shapes"
)

func buildBagels(s *Scene, _ *gm.Random) {
	w := s.Config.Width
	f := s.Factory

	// the rings are laid out for a wide screen
	k := min(1, w/1920, s.Config.Height/1200)

	bagel := func(x, y, rx, ry, thickness float64, fill, text, font, textColor string, anchor gm.Rad) {
		// the collision proxy is a circle and starts below the ceiling
		y = max(y*k, max(rx, ry)*k+10)

		s.Add(f.Bagel(gm.Vec{X: x, Y: y}, rx*k, ry*k, shapes.BagelOptions{
			StyleOptions: shapes.StyleOptions{
				Fill:      fill,
				Text:      shapes.Some(text),
				Font:      font,
				TextColor: textColor,
			},
			Thickness:     thickness * k,
			TextDirection: canvas.Clockwise,
			TextAnchor:    anchor,
		}))
	}

	bagel(w*0.58, 100, 260, 230, 70, "#60A5FA", "CHARLEMAGNE REGULAR", "700 42px Inter", "#1E40AF", gm.Pi/2)
	bagel(w*0.45, 150, 220, 220, 70, "#FDB022", "Cooper Black", "900 48px Inter", "#B91C1C", -gm.Pi/6)
	bagel(w*0.84, 200, 200, 260, 70, "#FB923C", "CUBANO REGULAR", "800 40px Inter", "#0B1220", gm.Pi/2)
	bagel(w*0.40, 250, 330, 120, 55, "#E5E7EB", "Filson Soft Book + Abril Tilt", "700 34px Inter", "#A11", gm.Pi*0.85)

	ribbon := f.Ribbon(gm.Vec{X: w * 0.62, Y: 300 * k}, 420*k, 90*k, shapes.RibbonOptions{
		StyleOptions: shapes.StyleOptions{
			Fill:      "#F9A8D4",
			Text:      shapes.Some("Rigid Sq"),
			Font:      "700 36px Inter",
			TextColor: "#0B1220",
		},
	})

	ribbon.SetAngle(-gm.Pi / 6)
	s.Add(ribbon)
}
