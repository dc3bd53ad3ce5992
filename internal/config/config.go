// Package config loads viewer settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"vecview/viewer/camera"
	"vecview/viewer/grid"
	"vecview/viewer/preset"
)

var ErrInvalid = errors.New("config: invalid")

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Camera struct {
	Scale float64 `yaml:"scale"`
}

type Grid struct {
	Spacing    float64 `yaml:"spacing"`
	LabelEvery int     `yaml:"label_every"`
}

// Preset is a user-defined expression preset.
type Preset struct {
	Name  string  `yaml:"name"`
	Count int     `yaml:"count"`
	X     string  `yaml:"x"`
	Y     string  `yaml:"y"`
	Color []uint8 `yaml:"color,omitempty"`
}

// Config is the full viewer configuration.
type Config struct {
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Grid   Grid   `yaml:"grid"`

	// Seed fixes the random preset. Nil seeds from the clock.
	Seed *int64 `yaml:"seed,omitempty"`

	// StartPreset is the preset name or index applied at startup.
	StartPreset string   `yaml:"start_preset,omitempty"`
	Presets     []Preset `yaml:"presets,omitempty"`
}

func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Title: "Vector Viewer"},
		Camera: Camera{Scale: camera.DefaultScale},
		Grid:   Grid{Spacing: grid.DefaultSpacing, LabelEvery: grid.DefaultLabelEvery},
	}
}

// Load reads path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Camera.Scale < camera.MinScale || c.Camera.Scale > camera.MaxScale {
		return fmt.Errorf("%w: camera scale %g outside [%g, %g]", ErrInvalid, c.Camera.Scale, camera.MinScale, camera.MaxScale)
	}
	if c.Grid.Spacing < grid.MinSpacing {
		return fmt.Errorf("%w: grid spacing %g below %g pixels", ErrInvalid, c.Grid.Spacing, grid.MinSpacing)
	}
	if c.Grid.LabelEvery <= 0 {
		return fmt.Errorf("%w: grid label_every %d", ErrInvalid, c.Grid.LabelEvery)
	}
	seen := map[string]bool{}
	for i, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("%w: presets[%d]: missing name", ErrInvalid, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: presets[%d]: duplicate name %q", ErrInvalid, i, p.Name)
		}
		seen[p.Name] = true
		if p.Count <= 0 {
			return fmt.Errorf("%w: preset %q: count must be positive", ErrInvalid, p.Name)
		}
		if p.X == "" || p.Y == "" {
			return fmt.Errorf("%w: preset %q: x and y are required", ErrInvalid, p.Name)
		}
		if len(p.Color) != 0 && len(p.Color) != 3 {
			return fmt.Errorf("%w: preset %q: color needs 3 components", ErrInvalid, p.Name)
		}
	}
	return nil
}

func (c Config) GridConfig() grid.Config {
	return grid.Config{Spacing: c.Grid.Spacing, LabelEvery: c.Grid.LabelEvery}
}

// Generators returns the built-in presets followed by the compiled custom
// presets.
func (c Config) Generators() ([]preset.Generator, error) {
	var seed preset.SeedFunc
	if c.Seed != nil {
		seed = preset.FixedSeed(*c.Seed)
	}
	gens := preset.Builtins(seed)
	for _, p := range c.Presets {
		spec := preset.ExprSpec{Name: p.Name, Count: p.Count, X: p.X, Y: p.Y}
		if len(p.Color) == 3 {
			spec.Color = color.RGBA{R: p.Color[0], G: p.Color[1], B: p.Color[2], A: 0xFF}
		}
		g, err := preset.NewExpr(spec)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		gens = append(gens, g)
	}
	return gens, nil
}

// StartIndex resolves StartPreset against gens by name or index.
func (c Config) StartIndex(gens []preset.Generator) (int, error) {
	if c.StartPreset == "" {
		return 0, nil
	}
	for i, g := range gens {
		if g.Name() == c.StartPreset {
			return i, nil
		}
	}
	i, err := strconv.Atoi(c.StartPreset)
	if err != nil || i < 0 || i >= len(gens) {
		return 0, fmt.Errorf("%w: unknown start preset %q", ErrInvalid, c.StartPreset)
	}
	return i, nil
}
