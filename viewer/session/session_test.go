package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vecview/hal"
	"vecview/viewer/camera"
	"vecview/viewer/geom"
	"vecview/viewer/preset"
)

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func newTestSession(t *testing.T) (*Session, *lineLog) {
	t.Helper()
	log := &lineLog{}
	s := New(Options{
		Width:      800,
		Height:     600,
		Generators: preset.Builtins(preset.FixedSeed(1)),
		Logger:     log,
	})
	return s, log
}

func press(x, y float64) hal.Event { return hal.Event{Kind: hal.EventPrimaryPress, X: x, Y: y} }
func key(r rune) hal.Event         { return hal.Event{Kind: hal.EventKey, Key: hal.KeyRune, Rune: r} }

func labelsOf(s Snapshot) []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Label
	}
	return out
}

func TestStartsEmpty(t *testing.T) {
	s, log := newTestSession(t)
	snap := s.Snapshot()
	require.Equal(t, 0, snap.PresetIndex)
	require.Equal(t, "Empty", snap.PresetName)
	require.Zero(t, snap.Count)
	require.Equal(t, Idle, s.State())
	require.NotEmpty(t, log.lines)
	require.Contains(t, log.lines[0], s.ID().String()[:8])
}

func TestClickDeleteScenario(t *testing.T) {
	s, _ := newTestSession(t)

	require.True(t, s.Handle(press(400, 300)))
	require.True(t, s.Handle(press(480, 300)))
	require.True(t, s.Handle(press(400, 220)))

	snap := s.Snapshot()
	require.Equal(t, []string{"a", "b", "c"}, labelsOf(snap))
	require.Equal(t, geom.V(0, 0), snap.Entries[0].Pos)
	require.Equal(t, geom.V(1, 0), snap.Entries[1].Pos)
	require.Equal(t, geom.V(0, 1), snap.Entries[2].Pos)
	require.Equal(t, ClickColor, snap.Entries[0].Color)

	require.True(t, s.Handle(hal.Event{Kind: hal.EventKey, Key: hal.KeyDelete}))
	require.Zero(t, s.Snapshot().Count)

	s.Handle(press(400, 300))
	require.Equal(t, []string{"a"}, labelsOf(s.Snapshot()))
}

func TestPanning(t *testing.T) {
	s, _ := newTestSession(t)

	// Moves in Idle do nothing.
	require.False(t, s.Handle(hal.Event{Kind: hal.EventPointerMove, X: 10, Y: 10}))
	require.Zero(t, s.Snapshot().Camera.PanX)

	s.Handle(hal.Event{Kind: hal.EventSecondaryPress, X: 100, Y: 100})
	require.Equal(t, Panning, s.State())
	require.True(t, s.Captured())

	require.True(t, s.Handle(hal.Event{Kind: hal.EventPointerMove, X: 130, Y: 90}))
	require.True(t, s.Handle(hal.Event{Kind: hal.EventPointerMove, X: 140, Y: 95}))
	cam := s.Snapshot().Camera
	require.Equal(t, 40.0, cam.PanX)
	require.Equal(t, -5.0, cam.PanY)

	// Primary press still adds while panning.
	s.Handle(press(400, 300))
	require.Equal(t, 1, s.Snapshot().Count)
	require.Equal(t, Panning, s.State())

	s.Handle(hal.Event{Kind: hal.EventSecondaryRelease, X: 140, Y: 95})
	require.Equal(t, Idle, s.State())
	require.False(t, s.Captured())

	s.Handle(hal.Event{Kind: hal.EventPointerMove, X: 500, Y: 500})
	require.Equal(t, 40.0, s.Snapshot().Camera.PanX)
}

func TestZoomKeepsWorldPointUnderCursor(t *testing.T) {
	s, _ := newTestSession(t)
	anchor := geom.V(250, 120)

	cam := s.Snapshot().Camera
	before := cam.ScreenToWorld(anchor)

	require.True(t, s.Handle(hal.Event{Kind: hal.EventScroll, Delta: 1, X: anchor.X, Y: anchor.Y}))
	cam = s.Snapshot().Camera
	require.InDelta(t, camera.DefaultScale*camera.ZoomStep, cam.Scale, 1e-9)
	after := cam.ScreenToWorld(anchor)
	require.InDelta(t, before.X, after.X, 1e-9)
	require.InDelta(t, before.Y, after.Y, 1e-9)

	s.Handle(hal.Event{Kind: hal.EventScroll, Delta: -1, X: anchor.X, Y: anchor.Y})
	require.InDelta(t, camera.DefaultScale, s.Snapshot().Camera.Scale, 1e-9)

	require.False(t, s.Handle(hal.Event{Kind: hal.EventScroll, Delta: 0, X: 1, Y: 1}))
}

func TestZoomClamps(t *testing.T) {
	s, _ := newTestSession(t)
	for i := 0; i < 200; i++ {
		s.Handle(hal.Event{Kind: hal.EventScroll, Delta: 1, X: 400, Y: 300})
	}
	require.Equal(t, camera.MaxScale, s.Snapshot().Camera.Scale)
	for i := 0; i < 400; i++ {
		s.Handle(hal.Event{Kind: hal.EventScroll, Delta: -3, X: 400, Y: 300})
	}
	require.Equal(t, camera.MinScale, s.Snapshot().Camera.Scale)
}

func TestResetKey(t *testing.T) {
	s, _ := newTestSession(t)
	s.Handle(hal.Event{Kind: hal.EventScroll, Delta: 1, X: 10, Y: 10})
	s.Handle(hal.Event{Kind: hal.EventSecondaryPress, X: 0, Y: 0})
	s.Handle(hal.Event{Kind: hal.EventPointerMove, X: 5, Y: 7})
	s.Handle(hal.Event{Kind: hal.EventSecondaryRelease})

	require.True(t, s.Handle(key('R')))
	cam := s.Snapshot().Camera
	require.Equal(t, camera.DefaultScale, cam.Scale)
	require.Zero(t, cam.PanX)
	require.Zero(t, cam.PanY)

	s.Handle(hal.Event{Kind: hal.EventScroll, Delta: 1, X: 10, Y: 10})
	require.True(t, s.Handle(key('r')))
	require.Equal(t, camera.DefaultScale, s.Snapshot().Camera.Scale)
}

func TestPresetKeys(t *testing.T) {
	s, _ := newTestSession(t)

	require.True(t, s.Handle(key('2')))
	snap := s.Snapshot()
	require.Equal(t, 1, snap.PresetIndex)
	require.Equal(t, "Basis & Diagonals", snap.PresetName)
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, labelsOf(snap))
	require.Equal(t, geom.V(2, 0), snap.Entries[0].Pos)

	s.Handle(key('1'))
	s.Handle(key('1'))
	snap = s.Snapshot()
	require.Equal(t, 6, snap.PresetIndex)
	require.Equal(t, "Rotations", snap.PresetName)
	require.Equal(t, 12, snap.Count)

	s.Handle(hal.Event{Kind: hal.EventKey, Key: hal.KeyRight})
	require.Equal(t, 0, s.Snapshot().PresetIndex)
	s.Handle(hal.Event{Kind: hal.EventKey, Key: hal.KeyLeft})
	require.Equal(t, 6, s.Snapshot().PresetIndex)

	require.False(t, s.Handle(key('x')))
}

func TestPresetRestartsLabels(t *testing.T) {
	s, _ := newTestSession(t)
	s.Handle(press(1, 1))
	s.Handle(press(2, 2))
	s.Handle(key('2'))
	s.Handle(press(400, 300))
	snap := s.Snapshot()
	require.Equal(t, 7, snap.Count)
	require.Equal(t, "g", snap.Entries[6].Label)
}

func TestResize(t *testing.T) {
	s, _ := newTestSession(t)
	require.True(t, s.Handle(hal.Event{Kind: hal.EventResize, W: 1024, H: 768}))
	cam := s.Snapshot().Camera
	require.Equal(t, 1024, cam.W)
	require.Equal(t, 768, cam.H)

	require.False(t, s.Handle(hal.Event{Kind: hal.EventResize, W: 0, H: 0}))
	require.Equal(t, 1024, s.Snapshot().Camera.W)

	s.Handle(press(512, 384))
	require.Equal(t, geom.V(0, 0), s.Snapshot().Entries[0].Pos)
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newTestSession(t)
	s.Handle(key('2'))
	snap := s.Snapshot()
	snap.Entries[0].Label = "zz"
	snap.Camera.Scale = 1
	again := s.Snapshot()
	require.Equal(t, "a", again.Entries[0].Label)
	require.Equal(t, camera.DefaultScale, again.Camera.Scale)
}

func TestOptions(t *testing.T) {
	log := &lineLog{}
	s := New(Options{Width: 100, Height: 100, Scale: 40, StartPreset: 1, Logger: log, Debug: true})
	snap := s.Snapshot()
	require.Equal(t, 40.0, snap.Camera.Scale)
	require.Equal(t, "Basis & Diagonals", snap.PresetName)
	require.Equal(t, 7, s.Presets().Len())

	s.Handle(hal.Event{Kind: hal.EventPointerMove, X: 3, Y: 4})
	found := false
	for _, l := range log.lines {
		if strings.Contains(l, "pointer-move") {
			found = true
		}
	}
	require.True(t, found, "debug logging should include events")

	// Camera reset returns to the default scale, not the initial one.
	s.Handle(key('r'))
	require.Equal(t, camera.DefaultScale, s.Snapshot().Camera.Scale)

	// A nil logger is allowed.
	quiet := New(Options{Width: 10, Height: 10})
	quiet.Handle(press(5, 5))
	require.Equal(t, 1, quiet.Snapshot().Count)
}
