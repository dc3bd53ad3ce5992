package render

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"vecview/hal"
	"vecview/viewer/geom"
)

// textAscent moves Text's top-left anchor to the tinyfont baseline.
const textAscent = 9

var _ drivers.Displayer = (*FramebufferSurface)(nil)

// FramebufferSurface draws into an RGBA8888 hal.Framebuffer. It is also a
// tinygo drivers.Displayer so tinyfont can render onto it directly.
type FramebufferSurface struct {
	fb   hal.Framebuffer
	font tinyfont.Fonter
}

func NewFramebufferSurface(fb hal.Framebuffer) *FramebufferSurface {
	return &FramebufferSurface{fb: fb, font: &proggy.TinySZ8pt7b}
}

func (d *FramebufferSurface) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *FramebufferSurface) SetPixel(x, y int16, c color.RGBA) {
	d.setPixel(int(x), int(y), c)
}

func (d *FramebufferSurface) setPixel(ix, iy int, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = 0xFF
}

func (d *FramebufferSurface) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *FramebufferSurface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.fillRect(int(x), int(y), int(width), int(height), c)
	return nil
}

func (d *FramebufferSurface) fillRect(x, y, width, height int, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	x0 := clampInt(x, 0, w)
	y0 := clampInt(y, 0, h)
	x1 := clampInt(x+width, 0, w)
	y1 := clampInt(y+height, 0, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*4
			if off+3 >= len(buf) {
				continue
			}
			buf[off] = c.R
			buf[off+1] = c.G
			buf[off+2] = c.B
			buf[off+3] = 0xFF
		}
	}
}

func (d *FramebufferSurface) Fill(c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fillRect(0, 0, d.fb.Width(), d.fb.Height(), c)
}

// Line draws a segment width pixels thick. Segments are clipped to the
// framebuffer before rasterizing.
func (d *FramebufferSurface) Line(p0, p1 geom.Vec2, c color.RGBA, width int) {
	if d.fb == nil {
		return
	}
	if width < 1 {
		width = 1
	}
	pad := float64(width)
	x0, y0, x1, y1, ok := clipLineToRect(p0.X, p0.Y, p1.X, p1.Y,
		-pad, -pad, float64(d.fb.Width())+pad, float64(d.fb.Height())+pad)
	if !ok {
		return
	}
	d.drawLine(roundInt(x0), roundInt(y0), roundInt(x1), roundInt(y1), c, width)
}

func (d *FramebufferSurface) drawLine(x0, y0, x1, y1 int, c color.RGBA, width int) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	half := (width - 1) / 2
	err := dx + dy
	for {
		if width == 1 {
			d.setPixel(x0, y0, c)
		} else {
			d.fillRect(x0-half, y0-half, width, width, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Text draws s with its top-left corner at p. Text anchored far outside the
// framebuffer is skipped.
func (d *FramebufferSurface) Text(p geom.Vec2, s string, c color.RGBA) {
	if d.fb == nil || s == "" {
		return
	}
	const margin = 1024
	if p.X < -margin || p.Y < -margin || p.X > float64(d.fb.Width()+margin) || p.Y > float64(d.fb.Height()+margin) {
		return
	}
	tinyfont.WriteLine(d, d.font, int16(roundInt(p.X)), int16(roundInt(p.Y)+textAscent), s, c)
}

// clipLineToRect is Liang-Barsky clipping against [xmin,xmax]x[ymin,ymax].
func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	if math.IsNaN(x0) || math.IsNaN(y0) || math.IsNaN(x1) || math.IsNaN(y1) {
		return 0, 0, 0, 0, false
	}
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = clampFloat(x0+u1*dx, xmin, xmax)
	cy0 = clampFloat(y0+u1*dy, ymin, ymax)
	cx1 = clampFloat(x0+u2*dx, xmin, xmax)
	cy1 = clampFloat(y0+u2*dy, ymin, ymax)
	return cx0, cy0, cx1, cy1, true
}

func roundInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
