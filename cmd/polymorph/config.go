package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/erickwang/polymorph"
)

// Config is the file form of the command's settings. Flags override it.
type Config struct {
	// Origin is "x,y"; box relative unless OriginAbsolute is set.
	Origin         string `toml:"origin" yaml:"origin"`
	OriginAbsolute bool   `toml:"origin_absolute" yaml:"origin_absolute"`
	Precision      int    `toml:"precision" yaml:"precision"`
	Pad            string `toml:"pad" yaml:"pad"`
	AddPoints      int    `toml:"add_points" yaml:"add_points"`
	// Frames is the number of evenly spaced offsets printed by morph.
	Frames int `toml:"frames" yaml:"frames"`
	// Document is an SVG or HTML file that selectors are resolved against.
	Document string `toml:"document" yaml:"document"`
}

func defaultConfig() Config {
	return Config{Pad: "fill", Frames: 5}
}

// LoadConfig reads a TOML or YAML file, chosen by extension, on top of the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unknown format %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the configuration to library options. The resolver is
// loaded from Document when one is set.
func (c Config) Options() (*polymorph.Options, error) {
	pad, err := polymorph.ParsePadStrategy(c.Pad)
	if err != nil {
		return nil, err
	}
	opts := &polymorph.Options{
		OriginAbsolute: c.OriginAbsolute,
		Precision:      c.Precision,
		PadStrategy:    pad,
		AddPoints:      c.AddPoints,
	}
	if c.Origin != "" {
		p, err := polymorph.ParsePoint(c.Origin)
		if err != nil {
			return nil, fmt.Errorf("origin: %w", err)
		}
		opts.Origin = &p
	}
	if c.Document != "" {
		r, err := loadDocument(c.Document)
		if err != nil {
			return nil, err
		}
		opts.Resolver = r
	}
	return opts, nil
}

func loadDocument(path string) (polymorph.Resolver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return polymorph.NewHTMLDocument(f)
	default:
		return polymorph.ParseSvgFromReader(f)
	}
}
