package scene

import (
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
	"github.com/oliverbestmann/tumble/shapes"
)

func buildLanding(s *Scene, _ *gm.Random) {
	w, h := s.Config.Width, s.Config.Height
	f := s.Factory

	radius := min(60, w*0.15, h*0.15)
	archSize := min(280, w*0.2, h*0.2)

	circle := f.Circle(gm.Vec{X: w * 0.5, Y: radius + 20}, radius, shapes.CircleOptions{
		Gradient: []string{"#ff8a00", "#ff0080"},
	})

	small := f.Circle(gm.Vec{X: w * 0.2, Y: 80}, radius*0.6, shapes.CircleOptions{
		Gradient: []string{"#00ff88", "#0088ff"},
	})

	large := f.Circle(gm.Vec{X: w * 0.8, Y: h * 0.7}, radius*1.4, shapes.CircleOptions{
		Gradient: []string{"#8a2be2", "#ffff00"},
	})

	half := f.Circle(gm.Vec{X: w * 0.4, Y: radius + 40}, radius*0.8, shapes.CircleOptions{
		Fill:       "#FFD166",
		HalfCircle: true,
	})

	pinkArch := f.Arch(gm.Vec{X: w * 0.3, Y: h * 0.6}, archSize, shapes.ArchOptions{
		BodyOptions: physics.BodyOptions{Static: true},
		Fill:        "#ff69b4",
		Side:        shapes.ArchBottom,
	})

	blueArch := f.Arch(gm.Vec{X: w * 0.7, Y: 50 + archSize*0.4}, archSize*0.8, shapes.ArchOptions{
		Fill: "#4169e1",
		Side: shapes.ArchTop,
	})

	s.Add(circle, small, large, half, pinkArch, blueArch)
}
