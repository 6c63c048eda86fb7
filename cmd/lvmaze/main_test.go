package main

import (
	"bytes"
	"context"
	"flag"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/pathfind"
)

const scenario = "S..#\n.#.#\n...E\n"

func quietLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, nil))
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-format", "png", "-policy", "last", "-tiebreak", "coordinate", "-astar", "m.txt"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "png", cfg.format)
	assert.Equal(t, maze.MarkerKeepLast, cfg.policy)
	assert.Equal(t, pathfind.TieBreakCoordinate, cfg.tieBreak)
	assert.True(t, cfg.astar)
	assert.Equal(t, "m.txt", cfg.input)

	for _, args := range [][]string{
		{},
		{"a.txt", "b.txt"},
		{"-format", "svg", "m.txt"},
		{"-policy", "newest", "m.txt"},
		{"-tiebreak", "random", "m.txt"},
	} {
		_, err := parseFlags(args, io.Discard)
		assert.Error(t, err, "args %q", args)
	}

	_, err = parseFlags([]string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestRun_TextStdin(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := config{input: "-", format: "text"}
	code := run(context.Background(), cfg, strings.NewReader(scenario), &out, quietLogger(&logs))

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "S**#\n.#*#\n..*E\n", out.String())
	assert.Contains(t, logs.String(), "cost=5")
}

func TestRun_Unreachable(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := config{input: "-", format: "text"}
	code := run(context.Background(), cfg, strings.NewReader("S#E\n"), &out, quietLogger(&logs))

	assert.Equal(t, exitUnreachable, code)
	assert.Equal(t, "S#E\n", out.String())
	assert.Contains(t, logs.String(), "end unreachable")
}

func TestRun_Malformed(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := config{input: "-", format: "text"}
	code := run(context.Background(), cfg, strings.NewReader("S.S\n..E\n"), &out, quietLogger(&logs))

	assert.Equal(t, exitFailure, code)
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "more than one start marker")

	cfg.policy = maze.MarkerKeepFirst
	code = run(context.Background(), cfg, strings.NewReader("S.S\n..E\n"), &out, quietLogger(&logs))
	assert.Equal(t, exitOK, code)
}

func TestRun_FilesAndFormats(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(in, []byte(scenario), 0o600))

	pngOut := filepath.Join(dir, "maze.png")
	code := run(context.Background(), config{input: in, format: "png", out: pngOut, cell: 3}, nil, io.Discard, quietLogger(io.Discard))
	require.Equal(t, exitOK, code)
	f, err := os.Open(pngOut)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())

	var out bytes.Buffer
	code = run(context.Background(), config{input: in, format: "geojson", astar: true}, nil, &out, quietLogger(io.Discard))
	require.Equal(t, exitOK, code)
	fc, err := geojson.UnmarshalFeatureCollection(out.Bytes())
	require.NoError(t, err)
	assert.Len(t, fc.Features, 4)

	code = run(context.Background(), config{input: filepath.Join(dir, "missing.txt"), format: "text"}, nil, io.Discard, quietLogger(io.Discard))
	assert.Equal(t, exitFailure, code)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var logs bytes.Buffer
	code := run(ctx, config{input: "-", format: "text"}, strings.NewReader(scenario), io.Discard, quietLogger(&logs))
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, logs.String(), "search failed")
}
