// Package render draws a session snapshot onto a Surface: background, grid,
// axes, labeled vector arrows and the status line.
package render

import (
	"fmt"
	"image/color"

	"vecview/viewer/camera"
	"vecview/viewer/geom"
	"vecview/viewer/grid"
	"vecview/viewer/scene"
	"vecview/viewer/session"
)

// Surface is the drawing target. Coordinates are screen pixels; Text places
// the top-left corner of the string at p.
type Surface interface {
	Fill(c color.RGBA)
	Line(p0, p1 geom.Vec2, c color.RGBA, width int)
	Text(p geom.Vec2, s string, c color.RGBA)
}

var (
	colorBackground = rgb(15, 16, 20)
	colorGrid       = rgb(40, 42, 48)
	colorAxis       = rgb(90, 180, 255)
	colorTick       = rgb(170, 170, 170)
	colorLabel      = rgb(240, 240, 240)
	colorHUD        = rgb(200, 200, 200)
)

const (
	axisWidth  = 2
	arrowWidth = 2

	// Arrow head size in pixels, independent of zoom.
	headLength    = 10.0
	headHalfWidth = 6.0

	minArrowLen2 = 1e-12
)

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

// Frame draws one full frame of snap.
func Frame(s Surface, snap session.Snapshot, cfg grid.Config) {
	cam := snap.Camera
	s.Fill(colorBackground)

	plan := grid.Build(&cam, cfg)
	drawGrid(s, &cam, plan)

	origin := geom.Vec2{}
	for _, e := range snap.Entries {
		drawArrow(s, &cam, origin, e)
	}

	s.Text(geom.V(8, 8), StatusLine(snap), colorHUD)
}

// StatusLine is the help and status text drawn at the top of the frame.
func StatusLine(snap session.Snapshot) string {
	return fmt.Sprintf("Preset: %s  |  1:Prev  2:Next  |  LMB:Add  RMB:Pan  Wheel:Zoom  R:Reset  Del:Clear  (Vectors: %d)",
		snap.PresetName, snap.Count)
}

// VectorLabel is the text drawn next to an arrow tip.
func VectorLabel(e scene.Entry) string {
	return fmt.Sprintf("%s  |%s|=%.3f", e.Label, e.Label, e.Pos.Length())
}

func drawGrid(s Surface, cam *camera.Camera, plan grid.Plan) {
	b := plan.Bounds
	for _, l := range plan.Vertical {
		s.Line(cam.WorldToScreen(geom.V(l.Value, b.Min.Y)), cam.WorldToScreen(geom.V(l.Value, b.Max.Y)), colorGrid, 1)
	}
	for _, l := range plan.Horizontal {
		s.Line(cam.WorldToScreen(geom.V(b.Min.X, l.Value)), cam.WorldToScreen(geom.V(b.Max.X, l.Value)), colorGrid, 1)
	}

	s.Line(cam.WorldToScreen(plan.AxisX[0]), cam.WorldToScreen(plan.AxisX[1]), colorAxis, axisWidth)
	s.Line(cam.WorldToScreen(plan.AxisY[0]), cam.WorldToScreen(plan.AxisY[1]), colorAxis, axisWidth)

	for _, l := range plan.Vertical {
		if !l.Labeled {
			continue
		}
		p := cam.WorldToScreen(geom.V(l.Value, 0))
		s.Text(p.Add(geom.V(2, 2)), grid.FormatTick(l.Value), colorTick)
	}
	for _, l := range plan.Horizontal {
		if !l.Labeled {
			continue
		}
		p := cam.WorldToScreen(geom.V(0, l.Value))
		s.Text(p.Add(geom.V(4, -16)), grid.FormatTick(l.Value), colorTick)
	}
}

func drawArrow(s Surface, cam *camera.Camera, from geom.Vec2, e scene.Entry) {
	to := e.Pos
	p0 := cam.WorldToScreen(from)
	p1 := cam.WorldToScreen(to)
	s.Line(p0, p1, e.Color, arrowWidth)

	v := to.Sub(from)
	if v.Length2() > minArrowLen2 {
		dir := v.Normalize()
		perp := dir.Perp()
		ppu := cam.PixelsPerUnit()
		base := to.Sub(dir.Scale(headLength / ppu))
		side := perp.Scale(headHalfWidth / ppu)
		s.Line(cam.WorldToScreen(base.Add(side)), p1, e.Color, arrowWidth)
		s.Line(cam.WorldToScreen(base.Sub(side)), p1, e.Color, arrowWidth)
	}

	s.Text(p1.Add(geom.V(8, -14)), VectorLabel(e), colorLabel)
}
