// Package app wires a viewer session to a HAL: it drains input into the
// session and redraws the framebuffer when something changed.
package app

import (
	"errors"
	"fmt"

	"vecview/hal"
	"vecview/viewer/grid"
	"vecview/viewer/preset"
	"vecview/viewer/render"
	"vecview/viewer/session"
)

// ErrQuit is returned by the step function when the user asks to exit.
var ErrQuit = errors.New("quit")

type Config struct {
	Generators  []preset.Generator
	StartPreset int
	Scale       float64
	Grid        grid.Config
	Debug       bool
}

type viewer struct {
	h       hal.HAL
	cfg     Config
	sess    *session.Session
	surface *render.FramebufferSurface
	fb      hal.Framebuffer

	dirty      bool
	lastW      int
	lastH      int
	frameCount uint64
}

// New creates a session on h and returns the per-tick step function.
func New(h hal.HAL, cfg Config) func() error {
	v := newViewer(h, cfg)
	return recoverStep(h, v.step)
}

func newViewer(h hal.HAL, cfg Config) *viewer {
	if cfg.Grid == (grid.Config{}) {
		cfg.Grid = grid.DefaultConfig()
	}
	v := &viewer{h: h, cfg: cfg, dirty: true}
	if d := h.Display(); d != nil {
		v.fb = d.Framebuffer()
	}
	w, ht := 0, 0
	if v.fb != nil {
		w, ht = v.fb.Width(), v.fb.Height()
		v.surface = render.NewFramebufferSurface(v.fb)
	}
	v.sess = session.New(session.Options{
		Width:       w,
		Height:      ht,
		Scale:       cfg.Scale,
		Generators:  cfg.Generators,
		StartPreset: cfg.StartPreset,
		Logger:      h.Logger(),
		Debug:       cfg.Debug,
	})
	return v
}

func (v *viewer) step() error {
	if in := v.h.Input(); in != nil {
		if err := v.drain(in.Events()); err != nil {
			return err
		}
	}
	return v.draw()
}

func (v *viewer) drain(ch <-chan hal.Event) error {
	for {
		select {
		case ev := <-ch:
			if ev.Kind == hal.EventKey && ev.Key == hal.KeyEscape {
				return ErrQuit
			}
			if ev.Kind == hal.EventResize {
				if r, ok := v.fb.(hal.Resizer); ok {
					r.Resize(ev.W, ev.H)
				}
			}
			if v.sess.Handle(ev) {
				v.dirty = true
			}
		default:
			return nil
		}
	}
}

func (v *viewer) draw() error {
	if v.fb == nil {
		return nil
	}
	if w, h := v.fb.Width(), v.fb.Height(); w != v.lastW || h != v.lastH {
		// The framebuffer may change size without a queued resize event.
		v.sess.Handle(hal.Event{Kind: hal.EventResize, W: w, H: h})
		v.lastW, v.lastH = w, h
		v.dirty = true
	}
	if !v.dirty {
		return nil
	}
	render.Frame(v.surface, v.sess.Snapshot(), v.cfg.Grid)
	v.dirty = false
	v.frameCount++
	if err := v.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}
