package scene

import (
	"fmt"

	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
	"github.com/oliverbestmann/tumble/shapes"
)

type badge struct {
	x, y          float64
	width         float64
	fill, outline string
	text          string
	rotation      gm.Rad
}

var aboutBadges = []badge{
	{0.2, 0.1, 180, "#F59E0B", "#B45309", "CREATIVE", -0.1},
	{0.8, 0.15, 180, "#22C55E", "#15803D", "MISFITS", 0.1},
	{0.3, 0.2, 200, "#F9A8D4", "#BE185D", "THINKING", -0.2},
	{0.7, 0.25, 180, "#C2F261", "#059669", "OUTSIDE", 0.15},
	{0.15, 0.3, 160, "#93C5FD", "#1E40AF", "THE BOX", -0.3},
	{0.45, 0.35, 180, "#FACC15", "#A16207", "TINKERING", 0.25},
	{0.45, 0.4, 160, "#FFEE70", "#A16207", "DREAMING", -0.1},
	{0.75, 0.45, 200, "#60A5FA", "#1E40AF", "EXPERIMENTING", 0.2},
}

func buildAbout(s *Scene, rng *gm.Random) {
	w, h := s.Config.Width, s.Config.Height

	scale, fontScale := 1.0, 1.0
	if w < 768 {
		scale, fontScale = 0.6, 0.7
	}

	font := fmt.Sprintf("700 %gpx Inter, system-ui, sans-serif", 28*fontScale)

	var badges []*physics.Body
	for _, b := range aboutBadges {
		badges = append(badges, s.Factory.TextBadge(
			gm.Vec{X: w * b.x, Y: h * b.y},
			b.width*scale, 80*scale,
			shapes.TextBadgeOptions{
				StyleOptions: shapes.StyleOptions{
					Fill:         b.fill,
					Outline:      shapes.Some(b.outline),
					OutlineWidth: 2,
					Text:         shapes.Some(b.text),
					Font:         font,
					TextColor:    b.outline,
					Rotation:     b.rotation,
				},
			},
		))
	}

	DropFromTop(badges, 120, rng)

	s.Add(badges...)
}

// DropFromTop stacks the bodies above the visible area, gap pixels apart, and
// gives each a small random tilt and a downward nudge so they separate
// while falling in.
func DropFromTop(bodies []*physics.Body, gap float64, rng *gm.Random) {
	// nudges are given per step of a 60 Hz simulation
	const stepsPerSecond = 60

	for idx, body := range bodies {
		y := -(float64(idx)*gap + 100 + rng.Float64()*40)
		body.SetPosition(gm.Vec{X: body.Position().X, Y: y})
		body.SetAngle(gm.Rad(rng.Centered() * 0.4))

		body.SetVelocity(gm.Vec{
			X: rng.Centered() * 0.3 * stepsPerSecond,
			Y: (1.2 + rng.Float64()*0.6) * stepsPerSecond,
		})

		body.SetAngularVelocity(rng.Centered() * 0.015 * stepsPerSecond)
	}
}
