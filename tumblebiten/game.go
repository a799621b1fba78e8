package tumblebiten

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/color"
)

// Stage is what a Game shows. Step is called once per tick with the time
// passed on the host clock, Draw once per frame.
type Stage interface {
	Step(delta time.Duration)
	Draw(ctx canvas.Context)

	PointerTarget
}

// DebugToggler is implemented by stages that can show a debug overlay.
type DebugToggler interface {
	ToggleDebug()
}

type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	DisableResize bool
}

type Game struct {
	Stage  Stage
	Window WindowConfig

	// Background fills the screen before each frame.
	Background color.Color

	// ShowStats prints tick and frame rates in the top left corner.
	ShowStats bool

	canvas  *Canvas
	pointer Pointer

	lastUpdate time.Time

	// set to a non nil value to exit the app
	appExit error
}

func NewGame(stage Stage, window WindowConfig) *Game {
	return &Game{
		Stage:      stage,
		Window:     window,
		Background: color.White,
		canvas:     NewCanvas(DefaultFaces()),
	}
}

// Exit stops the game after the current tick. Run returns err, or nil
// if err is nil.
func (g *Game) Exit(err error) {
	if err == nil {
		err = ebiten.Termination
	}

	g.appExit = err
}

// Run opens the window and blocks until the game exits.
func Run(game *Game) error {
	win := game.Window

	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)

	if !win.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	var options ebiten.RunGameOptions
	options.SingleThread = true

	slog.Info("Starting game loop",
		slog.String("title", win.Title),
		slog.Int("width", win.Width),
		slog.Int("height", win.Height),
	)

	err := ebiten.RunGameWithOptions(game, &options)
	game.canvas.Dispose()

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}

	return nil
}

func (g *Game) Update() error {
	if g.appExit != nil {
		return g.appExit
	}

	now := time.Now()

	delta := time.Second / time.Duration(ebiten.TPS())
	if !g.lastUpdate.IsZero() {
		delta = now.Sub(g.lastUpdate)
	}

	g.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.ShowStats = !g.ShowStats

		if toggler, ok := g.Stage.(DebugToggler); ok {
			toggler.ToggleDebug()
		}
	}

	g.pointer.Update(g.Stage)
	g.Stage.Step(delta)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Background)

	g.canvas.Begin(screen)
	g.Stage.Draw(g.canvas)

	if g.ShowStats {
		stats := fmt.Sprintf("tps=%5.1f, fps=%5.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrintAt(screen, stats, 16, 16)
	}
}

// Layout keeps the logical screen at the configured window size. ebiten
// scales it to the actual window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if g.Window.Width <= 0 || g.Window.Height <= 0 {
		return outsideWidth, outsideHeight
	}

	return g.Window.Width, g.Window.Height
}
