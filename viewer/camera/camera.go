// Package camera maps between world space (Y-up, origin at the center of the
// view) and screen space (Y-down pixels, origin at the top-left corner).
package camera

import (
	"math"

	"vecview/viewer/geom"
)

const (
	MinScale     = 10.0
	MaxScale     = 2000.0
	DefaultScale = 80.0

	// ZoomStep is the per-notch wheel zoom factor.
	ZoomStep = 1.1
)

// Camera is the pan/zoom state plus the viewport it projects onto.
//
// Scale is in pixels per world unit. PanX/PanY are pixel offsets applied after
// projection.
type Camera struct {
	Scale float64
	PanX  float64
	PanY  float64

	W, H int
}

func New(w, h int) *Camera {
	return &Camera{Scale: DefaultScale, W: w, H: h}
}

// Reset restores the default scale and removes any pan.
func (c *Camera) Reset() {
	c.Scale = DefaultScale
	c.PanX = 0
	c.PanY = 0
}

func (c *Camera) Resize(w, h int) {
	c.W = w
	c.H = h
}

func (c *Camera) PixelsPerUnit() float64 { return c.Scale }

func (c *Camera) WorldToScreen(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: float64(c.W)*0.5 + c.PanX + p.X*c.Scale,
		Y: float64(c.H)*0.5 + c.PanY - p.Y*c.Scale,
	}
}

func (c *Camera) ScreenToWorld(s geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: (s.X - float64(c.W)*0.5 - c.PanX) / c.Scale,
		Y: (float64(c.H)*0.5 + c.PanY - s.Y) / c.Scale,
	}
}

// PanBy shifts the view by a pixel delta.
func (c *Camera) PanBy(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
}

// ZoomBy multiplies the scale by factor, clamped to [MinScale, MaxScale], and
// adjusts the pan so the world point under anchor stays under anchor.
func (c *Camera) ZoomBy(factor float64, anchor geom.Vec2) {
	w0 := c.ScreenToWorld(anchor)
	c.Scale = clamp(c.Scale*factor, MinScale, MaxScale)
	s1 := c.WorldToScreen(w0)
	c.PanX += anchor.X - s1.X
	c.PanY += anchor.Y - s1.Y
}

// Rect is an axis-aligned world-space rectangle.
type Rect struct {
	Min, Max geom.Vec2
}

// WorldBounds returns the world rectangle covered by the viewport.
func (c *Camera) WorldBounds() Rect {
	corners := [4]geom.Vec2{
		c.ScreenToWorld(geom.V(0, 0)),
		c.ScreenToWorld(geom.V(float64(c.W), 0)),
		c.ScreenToWorld(geom.V(0, float64(c.H))),
		c.ScreenToWorld(geom.V(float64(c.W), float64(c.H))),
	}
	r := Rect{Min: corners[0], Max: corners[0]}
	for _, p := range corners[1:] {
		r.Min = r.Min.Min(p)
		r.Max = r.Max.Max(p)
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
