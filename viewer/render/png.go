package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"vecview/hal"
)

// WritePNG encodes the framebuffer as PNG. scale > 1 upscales with
// nearest-neighbour sampling so pixels stay sharp.
func WritePNG(w io.Writer, fb hal.Framebuffer, scale int) error {
	if fb.Format() != hal.PixelFormatRGBA8888 {
		return fmt.Errorf("snapshot: unsupported pixel format %d", fb.Format())
	}
	var img image.Image = hal.Snapshot(fb)
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
