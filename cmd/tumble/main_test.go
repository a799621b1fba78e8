package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOptions_Defaults(t *testing.T) {
	opts, err := parseOptions(nil, io.Discard)
	require.NoError(t, err)

	require.Equal(t, "run", opts.Command)
	require.Equal(t, "landing", opts.Scene)
	require.Equal(t, 1280, opts.Width)
	require.Equal(t, 800, opts.Height)
	require.Equal(t, slog.LevelInfo, opts.LogLevel)
	require.Empty(t, opts.Profile)
}

func TestParseOptions_Snapshot(t *testing.T) {
	opts, err := parseOptions([]string{
		"snapshot", "-scene", "about", "-width", "640", "-height", "400",
		"-seed", "42", "-frames", "10", "-out", "x.png", "-log-level", "debug",
	}, io.Discard)

	require.NoError(t, err)
	require.Equal(t, options{
		Command:  "snapshot",
		Scene:    "about",
		Width:    640,
		Height:   400,
		Seed:     42,
		LogLevel: slog.LevelDebug,
		Frames:   10,
		Out:      "x.png",
	}, opts)
}

func TestParseOptions_FlagsWithoutCommand(t *testing.T) {
	opts, err := parseOptions([]string{"-debug", "-scene", "party"}, io.Discard)
	require.NoError(t, err)

	require.Equal(t, "run", opts.Command)
	require.Equal(t, "party", opts.Scene)
	require.True(t, opts.Debug)
}

func TestParseOptions_Errors(t *testing.T) {
	cases := map[string][]string{
		"command":   {"jump"},
		"scene":     {"run", "-scene", "nope"},
		"profile":   {"run", "-profile", "block"},
		"log level": {"run", "-log-level", "loud"},
		"size":      {"run", "-width", "0"},
		"frames":    {"snapshot", "-frames", "-1"},
		"arguments": {"run", "extra"},
		"flag":      {"run", "-unknown"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseOptions(args, io.Discard)
			require.Error(t, err)
		})
	}

	_, err := parseOptions([]string{"-h"}, io.Discard)
	require.True(t, errors.Is(err, flag.ErrHelp))
}

func TestRunSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "labels.png")

	err := run(options{
		Command: "snapshot",
		Scene:   "labels",
		Width:   320,
		Height:  200,
		Seed:    1,
		Frames:  30,
		Out:     out,
	})

	require.NoError(t, err)

	stat, err := os.Stat(out)
	require.NoError(t, err)
	require.Greater(t, stat.Size(), int64(0))
}
