package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/oliverbestmann/tumble/raster"
	"github.com/oliverbestmann/tumble/scene"
	"github.com/oliverbestmann/tumble/tumblebiten"
	"github.com/pkg/profile"
)

type options struct {
	Command  string
	Scene    string
	Width    int
	Height   int
	Seed     uint64
	Debug    bool
	Profile  string
	LogLevel slog.Level
	Frames   int
	Out      string
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "tumble: %v\n", err)
		os.Exit(2)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.LogLevel})))

	if err := run(opts); err != nil {
		slog.Error("tumble failed", slog.String("command", opts.Command), slog.Any("err", err))
		os.Exit(1)
	}
}

func run(opts options) error {
	switch opts.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	switch opts.Command {
	case "run":
		return runWindow(opts)
	case "snapshot":
		return runSnapshot(opts)
	}

	return fmt.Errorf("unknown command %q", opts.Command)
}

func sceneConfig(opts options) scene.Config {
	return scene.Config{
		Width:  float64(opts.Width),
		Height: float64(opts.Height),
		Seed:   opts.Seed,
		Debug:  opts.Debug,
	}
}

func runWindow(opts options) error {
	s, err := scene.Mount(opts.Scene, sceneConfig(opts))
	if err != nil {
		return fmt.Errorf("mount scene: %w", err)
	}

	defer s.Unmount()

	game := tumblebiten.NewGame(s, tumblebiten.WindowConfig{
		Title:  "tumble - " + opts.Scene,
		Width:  opts.Width,
		Height: opts.Height,
	})

	game.Background = s.Background
	game.ShowStats = opts.Debug

	return tumblebiten.Run(game)
}

func runSnapshot(opts options) error {
	s, err := scene.Mount(opts.Scene, sceneConfig(opts))
	if err != nil {
		return fmt.Errorf("mount scene: %w", err)
	}

	defer s.Unmount()

	s.Simulate(opts.Frames)

	c := raster.New(opts.Width, opts.Height)
	s.Draw(c)

	if err := c.SavePNG(opts.Out); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	slog.Info("Snapshot written",
		slog.String("scene", opts.Scene),
		slog.Int("frames", opts.Frames),
		slog.String("path", opts.Out),
	)

	return nil
}

func parseOptions(args []string, output io.Writer) (options, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		// run is the default command
		args = append([]string{"run"}, args...)
	}

	opts := options{Command: args[0]}
	if opts.Command != "run" && opts.Command != "snapshot" {
		return opts, fmt.Errorf("unknown command %q, expected run or snapshot", opts.Command)
	}

	fs := flag.NewFlagSet("tumble "+opts.Command, flag.ContinueOnError)
	fs.SetOutput(output)

	var logLevel string

	fs.StringVar(&opts.Scene, "scene", "landing", "Scene to show: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&opts.Width, "width", 1280, "Width of the scene in pixels")
	fs.IntVar(&opts.Height, "height", 800, "Height of the scene in pixels")
	fs.Uint64Var(&opts.Seed, "seed", 1, "Seed for the random scene layout")
	fs.BoolVar(&opts.Debug, "debug", false, "Draw collider outlines and frame stats")
	fs.StringVar(&opts.Profile, "profile", "", "Write a profile to the working directory: cpu or mem")
	fs.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.IntVar(&opts.Frames, "frames", 180, "Simulation steps before taking a snapshot")
	fs.StringVar(&opts.Out, "out", "tumble.png", "Output path of the snapshot")

	if err := fs.Parse(args[1:]); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := opts.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return opts, fmt.Errorf("parse log level: %w", err)
	}

	if opts.Profile != "" && opts.Profile != "cpu" && opts.Profile != "mem" {
		return opts, fmt.Errorf("unknown profile %q, expected cpu or mem", opts.Profile)
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		return opts, fmt.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	}

	if opts.Frames < 0 {
		return opts, fmt.Errorf("negative frame count %d", opts.Frames)
	}

	if _, ok := scene.Describe(opts.Scene); !ok {
		return opts, fmt.Errorf("unknown scene %q, expected one of %v", opts.Scene, scene.Names())
	}

	return opts, nil
}
