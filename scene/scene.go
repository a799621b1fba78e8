// Package scene builds the showcase scenes: a physics world filled with
// decorative shapes, bounded by static walls and draggable with the pointer.
package scene

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
	"github.com/oliverbestmann/tumble/shapes"
)

// WallThickness of the static boundaries around a scene.
const WallThickness = 40

type Config struct {
	Width, Height float64

	// Gravity replaces the gravity of the scene if not zero.
	Gravity gm.Vec

	// Seed makes the random parts of a scene reproducible.
	Seed uint64

	// Debug paints the collision shapes on top of the scene.
	Debug bool
}

type Scene struct {
	Name   string
	Config Config

	// Background is painted below the shapes.
	Background color.Color

	World    *physics.World
	Runner   *physics.Runner
	Store    *shapes.Store
	Factory  *shapes.Factory
	Registry *shapes.Registry

	// Bodies holds the decorative bodies in painting order.
	Bodies []*physics.Body
	Walls  []*physics.Body

	drag    *physics.MouseDrag
	mounted bool
}

// Mount builds the scene with the given name and starts its simulation.
func Mount(name string, config Config) (*Scene, error) {
	def, ok := lookupDefinition(name)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q, expected one of %v", name, Names())
	}

	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("invalid scene size %gx%g", config.Width, config.Height)
	}

	opts := physics.DefaultWorldOptions()
	opts.Gravity = def.gravity

	if config.Gravity != gm.VecZero {
		opts.Gravity = config.Gravity
	}

	world := physics.NewWorld(opts)
	store := shapes.NewStore()

	s := &Scene{
		Name:       def.name,
		Config:     config,
		Background: def.background,
		World:      world,
		Runner:     physics.NewRunner(world),
		Store:      store,
		Factory:    shapes.NewFactory(world, store),
		Registry:   shapes.DefaultRegistry(),
		drag:       physics.NewMouseDrag(world),
		mounted:    true,
	}

	s.drag.Stiffness = def.stiffness
	s.Runner.BeforeStep = s.drag.Update

	s.Walls = world.Walls(config.Width, config.Height, WallThickness, def.ceiling)

	startedAt := time.Now()

	def.build(s, gm.NewRandom(config.Seed))
	world.Add(s.Bodies...)

	slog.Info("Scene mounted",
		slog.String("scene", s.Name),
		slog.Int("bodies", len(s.Bodies)),
		slog.Int("records", store.Len()),
		slog.Duration("duration", time.Since(startedAt)),
	)

	return s, nil
}

// Add appends bodies to the painting order. Mount adds them to the world
// once the scene is built.
func (s *Scene) Add(bodies ...*physics.Body) {
	for _, body := range bodies {
		if body != nil {
			s.Bodies = append(s.Bodies, body)
		}
	}
}

// Mounted reports whether the scene is still running.
func (s *Scene) Mounted() bool {
	return s.mounted
}

// Step advances the simulation by the time passed on the host clock.
func (s *Scene) Step(delta time.Duration) {
	if !s.mounted {
		return
	}

	s.Runner.Advance(delta)
}

// Draw paints the background and every body of the scene.
func (s *Scene) Draw(ctx canvas.Context) {
	if !s.mounted {
		return
	}

	if !s.Background.IsTransparent() {
		ctx.Save()
		ctx.BeginPath()
		ctx.Rect(gm.Rect{Max: gm.Vec{X: s.Config.Width, Y: s.Config.Height}})
		ctx.Fill(canvas.Solid(s.Background), canvas.NonZero)
		ctx.Restore()
	}

	s.Registry.RenderAll(ctx, s.Bodies, s.Store)

	if s.Config.Debug {
		physics.DrawDebug(s.World, ctx)
	}
}

// Simulate runs the given number of fixed steps, independent of the host clock.
func (s *Scene) Simulate(steps int) {
	for range steps {
		s.Step(s.Runner.StepInterval)
	}
}

func (s *Scene) ToggleDebug() {
	s.Config.Debug = !s.Config.Debug
}

func (s *Scene) Press(point gm.Vec) {
	if !s.mounted {
		return
	}

	s.drag.Press(point)
}

func (s *Scene) Drag(point gm.Vec) {
	if !s.mounted {
		return
	}

	s.drag.Move(point)
}

func (s *Scene) Release() {
	s.drag.Release()
}

// Grabbed returns the body currently dragged by the pointer, or nil.
func (s *Scene) Grabbed() *physics.Body {
	return s.drag.Grabbed()
}

// Unmount stops the simulation and drops all bodies and their records.
// Calling Unmount more than once has no effect.
func (s *Scene) Unmount() {
	if !s.mounted {
		return
	}

	s.mounted = false

	s.drag.Release()
	s.Runner.Stop()
	s.World.Clear()
	s.Store.Clear()

	bodies := len(s.Bodies)
	s.Bodies, s.Walls = nil, nil

	slog.Info("Scene unmounted",
		slog.String("scene", s.Name),
		slog.Int("bodies", bodies),
		slog.Duration("simulated", s.Runner.Elapsed),
	)
}
