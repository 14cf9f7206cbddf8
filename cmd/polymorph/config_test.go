package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erickwang/polymorph"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "polymorph.toml", `
origin = "1, 2"
origin_absolute = true
precision = 2
pad = "none"
add_points = 3
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, Config{
		Origin:         "1, 2",
		OriginAbsolute: true,
		Precision:      2,
		Pad:            "none",
		AddPoints:      3,
		Frames:         5,
	}, cfg)

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.Equal(t, &polymorph.Point{X: 1, Y: 2}, opts.Origin)
	require.True(t, opts.OriginAbsolute)
	require.Equal(t, 2, opts.Precision)
	require.Equal(t, polymorph.PadNone, opts.PadStrategy)
	require.Equal(t, 3, opts.AddPoints)
	require.Nil(t, opts.Resolver)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "polymorph.yaml", "origin: 0.5,0.5\nframes: 11\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "0.5,0.5", cfg.Origin)
	require.Equal(t, 11, cfg.Frames)
	require.Equal(t, "fill", cfg.Pad)

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.Equal(t, &polymorph.Point{X: 0.5, Y: 0.5}, opts.Origin)
	require.Equal(t, polymorph.PadFill, opts.PadStrategy)

	// origins use the path number syntax
	opts, err = Config{Origin: ".5.5"}.Options()
	require.NoError(t, err)
	require.Equal(t, &polymorph.Point{X: 0.5, Y: 0.5}, opts.Origin)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = LoadConfig(writeFile(t, "polymorph.json", "{}"))
	require.ErrorContains(t, err, "unknown format")

	_, err = LoadConfig(writeFile(t, "polymorph.toml", "precision = ["))
	require.Error(t, err)
}

func TestConfigOptionsErrors(t *testing.T) {
	_, err := Config{Pad: "diagonal"}.Options()
	require.ErrorIs(t, err, polymorph.ErrInvalidArguments)

	_, err = Config{Origin: "1"}.Options()
	require.ErrorIs(t, err, polymorph.ErrInvalidArguments)

	_, err = Config{Origin: "a,b"}.Options()
	require.ErrorIs(t, err, polymorph.ErrInvalidArguments)

	_, err = Config{Document: filepath.Join(t.TempDir(), "missing.svg")}.Options()
	require.Error(t, err)
}

func TestConfigDocument(t *testing.T) {
	svgPath := writeFile(t, "shapes.svg", `<svg><path id="wave" d="M0 0 L10 0"/></svg>`)
	opts, err := Config{Document: svgPath}.Options()
	require.NoError(t, err)
	d, err := opts.Resolver.Resolve("#wave")
	require.NoError(t, err)
	require.Equal(t, "M0 0 L10 0", d)

	htmlPath := writeFile(t, "page.html", `<html><body><svg><path id="wave" d="M1 1 L2 2"/></svg></body></html>`)
	opts, err = Config{Document: htmlPath}.Options()
	require.NoError(t, err)
	d, err = opts.Resolver.Resolve("#wave")
	require.NoError(t, err)
	require.Equal(t, "M1 1 L2 2", d)
}
