package hal

import (
	"image"
	"sync"
)

const bytesPerPixel = 4

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	f := &hostFramebuffer{}
	f.resizeLocked(width, height)
	return f
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGBA8888 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Present() error      { return nil }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := 0; i+3 < len(f.buf); i += bytesPerPixel {
		f.buf[i] = r
		f.buf[i+1] = g
		f.buf[i+2] = b
		f.buf[i+3] = 0xFF
	}
}

// Resize reallocates the buffer when the size changes. Contents are not kept.
func (f *hostFramebuffer) Resize(width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if width == f.width && height == f.height {
		return
	}
	f.resizeLocked(width, height)
}

func (f *hostFramebuffer) resizeLocked(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	f.width = width
	f.height = height
	f.stride = width * bytesPerPixel
	f.buf = make([]byte, f.stride*height)
}

func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// Snapshot copies fb into a new RGBA image.
func Snapshot(fb Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if hf, ok := fb.(*hostFramebuffer); ok {
		hf.snapshotRGBA(img.Pix)
		return img
	}
	if fb.Format() != PixelFormatRGBA8888 {
		return img
	}
	src := fb.Buffer()
	for y := 0; y < fb.Height(); y++ {
		copy(img.Pix[y*img.Stride:(y+1)*img.Stride], src[y*fb.StrideBytes():])
	}
	return img
}
