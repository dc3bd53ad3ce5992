//go:build cgo

package hal

import (
	"os"

	"vecview/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// RunWindow starts a desktop window that displays the framebuffer and forwards
// pointer and keyboard input. It blocks until the window closes.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	h := newHost(os.Stdout, cfg.Width, cfg.Height)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	title := cfg.Title
	if title == "" {
		title = "Vector Viewer"
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width, h.fb.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	fbImg *ebiten.Image
	pix   []byte
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.in.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	w, h := fb.width, fb.height
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
		g.pix = make([]byte, w*h*bytesPerPixel)
	}
	fb.snapshotRGBA(g.pix)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout keeps the framebuffer at the window's logical size and reports size
// changes as resize events.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.h.fb
	if outsideWidth != fb.width || outsideHeight != fb.height {
		fb.Resize(outsideWidth, outsideHeight)
		g.h.in.emit(Event{Kind: EventResize, W: fb.width, H: fb.height})
	}
	return fb.width, fb.height
}
