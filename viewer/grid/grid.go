// Package grid chooses gridline spacing and positions for the current view.
package grid

import (
	"fmt"
	"math"

	"vecview/viewer/camera"
	"vecview/viewer/geom"
)

const (
	// DefaultSpacing is the target on-screen distance between gridlines in pixels.
	DefaultSpacing = 80.0
	// DefaultLabelEvery labels one gridline out of this many.
	DefaultLabelEvery = 2
	// MinSpacing is the smallest accepted gridline spacing in pixels.
	MinSpacing = 4.0

	lineEpsilon = 1e-9
)

// Config controls grid density.
type Config struct {
	Spacing    float64
	LabelEvery int
}

func DefaultConfig() Config {
	return Config{Spacing: DefaultSpacing, LabelEvery: DefaultLabelEvery}
}

// NiceStep rounds target up or down to a value on the 1-2-5-10 ladder.
// Non-positive or non-finite targets yield 1.
func NiceStep(target float64) float64 {
	if target <= 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return 1
	}
	base := math.Pow(10, math.Floor(math.Log10(target)))
	frac := target / base
	switch {
	case frac < 1.5:
		return 1 * base
	case frac < 3.0:
		return 2 * base
	case frac < 7.0:
		return 5 * base
	default:
		return 10 * base
	}
}

// Line is one gridline at a world coordinate.
type Line struct {
	Value   float64
	Labeled bool
}

// Plan is the grid for one frame.
type Plan struct {
	Step   float64
	Bounds camera.Rect

	// Vertical lines are at x = Value, horizontal lines at y = Value.
	Vertical   []Line
	Horizontal []Line

	// AxisX and AxisY are the visible world segments of y = 0 and x = 0.
	AxisX, AxisY [2]geom.Vec2
}

// Build plans the grid for cam.
func Build(cam *camera.Camera, cfg Config) Plan {
	if cfg.Spacing <= 0 {
		cfg.Spacing = DefaultSpacing
	} else if cfg.Spacing < MinSpacing {
		cfg.Spacing = MinSpacing
	}
	if cfg.LabelEvery <= 0 {
		cfg.LabelEvery = 1
	}
	b := cam.WorldBounds()
	step := NiceStep(cfg.Spacing / cam.PixelsPerUnit())
	return Plan{
		Step:       step,
		Bounds:     b,
		Vertical:   lines(b.Min.X, b.Max.X, step, cfg.LabelEvery),
		Horizontal: lines(b.Min.Y, b.Max.Y, step, cfg.LabelEvery),
		AxisX:      [2]geom.Vec2{geom.V(b.Min.X, 0), geom.V(b.Max.X, 0)},
		AxisY:      [2]geom.Vec2{geom.V(0, b.Min.Y), geom.V(0, b.Max.Y)},
	}
}

func lines(lo, hi, step float64, every int) []Line {
	start := math.Floor(lo/step) * step
	var out []Line
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > hi+lineEpsilon {
			break
		}
		out = append(out, Line{Value: v, Labeled: i%every == 0})
	}
	return out
}

// FormatTick formats a gridline value for display.
func FormatTick(v float64) string {
	s := fmt.Sprintf("%.3g", v)
	if s == "-0" {
		return "0"
	}
	return s
}
