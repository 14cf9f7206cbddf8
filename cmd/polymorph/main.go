// Command polymorph morphs, normalizes and reverses SVG path descriptions.
//
//	polymorph [flags] morph PATH PATH...
//	polymorph [flags] bezier PATH
//	polymorph [flags] reverse PATH
//
// A PATH is either a path description or, with -doc, a selector such as
// "#star" resolved against an SVG or HTML document.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/erickwang/polymorph"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("polymorph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML or YAML config file")
		origin     = fs.String("origin", "", "reference point `x,y`")
		absolute   = fs.Bool("origin-absolute", false, "treat the origin as absolute coordinates")
		precision  = fs.Int("precision", 0, "decimals to print, 0 rounds to integers")
		pad        = fs.String("pad", "fill", "padding strategy: fill or none")
		addPoints  = fs.Int("add-points", 0, "extra stationary segments per subpath")
		frames     = fs.Int("frames", 5, "evenly spaced offsets printed by morph")
		at         = fs.String("at", "", "comma separated offsets printed by morph, overrides -frames")
		doc        = fs.String("doc", "", "SVG or HTML document that selectors resolve against")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			logger.Error("loading config", "err", err)
			return 1
		}
		logger.Debug("loaded config", "path", *configPath)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "origin":
			cfg.Origin = *origin
		case "origin-absolute":
			cfg.OriginAbsolute = *absolute
		case "precision":
			cfg.Precision = *precision
		case "pad":
			cfg.Pad = *pad
		case "add-points":
			cfg.AddPoints = *addPoints
		case "frames":
			cfg.Frames = *frames
		case "doc":
			cfg.Document = *doc
		}
	})

	opts, err := cfg.Options()
	if err != nil {
		logger.Error("invalid options", "err", err)
		return exitCode(err)
	}
	if r := opts.Resolver; r != nil {
		opts.Resolver = polymorph.ResolverFunc(func(s string) (string, error) {
			d, err := r.Resolve(s)
			if err == nil && d != s {
				logger.Debug("resolved", "selector", s, "d", d)
			}
			return d, err
		})
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "usage: polymorph [flags] morph|bezier|reverse PATH...")
		fs.PrintDefaults()
		return 2
	}
	cmd, paths := fs.Arg(0), fs.Args()[1:]
	logger.Debug("running", "command", cmd, "paths", len(paths))

	switch cmd {
	case "morph":
		offsets, err := frameOffsets(*at, cfg.Frames)
		if err != nil {
			logger.Error("invalid offsets", "err", err)
			return 2
		}
		morph, err := polymorph.Morph(paths, opts)
		if err != nil {
			logger.Error("building morph", "err", err)
			return exitCode(err)
		}
		for _, o := range offsets {
			logger.Debug("frame", "offset", o)
			fmt.Fprintf(stdout, "%s\t%s\n", strconv.FormatFloat(o, 'f', -1, 64), morph(o))
		}
	case "bezier", "reverse":
		if len(paths) != 1 {
			logger.Error("expected exactly one path", "command", cmd, "got", len(paths))
			return 2
		}
		f := polymorph.ToBezier
		if cmd == "reverse" {
			f = polymorph.Reverse
		}
		d, err := f(paths[0], opts)
		if err != nil {
			logger.Error(cmd, "err", err)
			return exitCode(err)
		}
		fmt.Fprintln(stdout, d)
	default:
		logger.Error("unknown command", "command", cmd)
		return 2
	}
	return 0
}

// frameOffsets returns the offsets listed in at, or frames evenly spaced
// offsets from 0 to 1.
func frameOffsets(at string, frames int) ([]float64, error) {
	if at != "" {
		var offsets []float64
		for _, s := range strings.Split(at, ",") {
			o, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, err
			}
			if o < 0 || o > 1 {
				return nil, fmt.Errorf("offset %v outside [0, 1]", o)
			}
			offsets = append(offsets, o)
		}
		return offsets, nil
	}
	if frames < 2 {
		return nil, fmt.Errorf("need at least 2 frames, got %d", frames)
	}
	offsets := make([]float64, frames)
	for i := range offsets {
		offsets[i] = float64(i) / float64(frames-1)
	}
	return offsets, nil
}

// exitCode maps caller mistakes to 2 and everything else to 1.
func exitCode(err error) int {
	if errors.Is(err, polymorph.ErrInvalidArguments) {
		return 2
	}
	return 1
}
