// Package session owns the viewer state (camera, vectors, presets) and the
// pan/zoom interaction state machine driven by hal input events.
package session

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"

	"vecview/hal"
	"vecview/viewer/camera"
	"vecview/viewer/geom"
	"vecview/viewer/preset"
	"vecview/viewer/scene"
)

// State is the interaction state.
type State uint8

const (
	Idle State = iota
	Panning
)

func (s State) String() string {
	if s == Panning {
		return "panning"
	}
	return "idle"
}

// ClickColor is the color of vectors added with the primary button.
var ClickColor = color.RGBA{R: 80, G: 220, B: 160, A: 0xFF}

// Options configures a new Session.
type Options struct {
	Width, Height int

	// Scale is the initial pixels-per-unit; zero means camera.DefaultScale.
	Scale float64

	// Generators are the presets in cycle order. Nil means preset.Builtins(nil).
	Generators  []preset.Generator
	StartPreset int

	Logger hal.Logger
	Debug  bool
}

// Session is one viewer instance. It is not safe for concurrent use; the host
// loop feeds it events and renders from Snapshot on the same goroutine.
type Session struct {
	id      uuid.UUID
	cam     *camera.Camera
	vecs    *scene.Collection
	presets *preset.Registry

	state    State
	last     geom.Vec2
	captured bool

	log   hal.Logger
	debug bool
}

func New(opts Options) *Session {
	gens := opts.Generators
	if gens == nil {
		gens = preset.Builtins(nil)
	}
	s := &Session{
		id:    uuid.New(),
		cam:   camera.New(opts.Width, opts.Height),
		vecs:  scene.New(),
		log:   opts.Logger,
		debug: opts.Debug,
	}
	if opts.Scale > 0 {
		s.cam.Scale = opts.Scale
	}
	s.presets = preset.NewRegistry(s.vecs, gens...)
	i, name := s.presets.Apply(opts.StartPreset)
	s.logf("session started, preset %d %q", i, name)
	return s
}

func (s *Session) ID() uuid.UUID             { return s.id }
func (s *Session) State() State              { return s.state }
func (s *Session) Captured() bool            { return s.captured }
func (s *Session) Presets() *preset.Registry { return s.presets }

// Handle applies one input event. It reports whether the visible state may
// have changed.
func (s *Session) Handle(ev hal.Event) bool {
	if s.debug {
		s.logf("event %s (%.0f,%.0f) d=%g state=%s", ev.Kind, ev.X, ev.Y, ev.Delta, s.state)
	}
	p := geom.V(ev.X, ev.Y)

	switch ev.Kind {
	case hal.EventPrimaryPress:
		w := s.cam.ScreenToWorld(p)
		e := s.vecs.Append(w, ClickColor)
		s.logf("added %s at %s", e.Label, w)
		return true

	case hal.EventSecondaryPress:
		s.state = Panning
		s.last = p
		s.captured = true
		return false

	case hal.EventPointerMove:
		if s.state != Panning {
			return false
		}
		d := p.Sub(s.last)
		s.cam.PanBy(d.X, d.Y)
		s.last = p
		return true

	case hal.EventSecondaryRelease:
		if s.state != Panning {
			return false
		}
		s.state = Idle
		s.captured = false
		return false

	case hal.EventScroll:
		if ev.Delta == 0 {
			return false
		}
		f := camera.ZoomStep
		if ev.Delta < 0 {
			f = 1 / camera.ZoomStep
		}
		s.cam.ZoomBy(f, p)
		return true

	case hal.EventKey:
		return s.handleKey(ev)

	case hal.EventResize:
		if ev.W <= 0 || ev.H <= 0 {
			return false
		}
		s.cam.Resize(ev.W, ev.H)
		return true
	}
	return false
}

func (s *Session) handleKey(ev hal.Event) bool {
	switch ev.Key {
	case hal.KeyDelete:
		s.vecs.Reset()
		s.logf("cleared vectors")
		return true
	case hal.KeyLeft:
		s.applied(s.presets.Prev())
		return true
	case hal.KeyRight:
		s.applied(s.presets.Next())
		return true
	case hal.KeyRune:
		switch ev.Rune {
		case 'r', 'R':
			s.cam.Reset()
			s.logf("camera reset")
			return true
		case '1':
			s.applied(s.presets.Prev())
			return true
		case '2':
			s.applied(s.presets.Next())
			return true
		}
	}
	return false
}

func (s *Session) applied(i int, name string) {
	s.logf("preset %d %q (%d vectors)", i, name, s.vecs.Len())
}

// Snapshot is a read-only copy of what a frame needs.
type Snapshot struct {
	PresetIndex int
	PresetName  string
	Count       int
	Camera      camera.Camera
	Entries     []scene.Entry
}

func (s *Session) Snapshot() Snapshot {
	i, name := s.presets.Current()
	return Snapshot{
		PresetIndex: i,
		PresetName:  name,
		Count:       s.vecs.Len(),
		Camera:      *s.cam,
		Entries:     s.vecs.Entries(),
	}
}

func (s *Session) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString("session " + s.id.String()[:8] + ": " + fmt.Sprintf(format, args...))
}
