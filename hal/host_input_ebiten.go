//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// poll converts this frame's ebiten input state into events.
func (in *hostInput) poll() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if !in.pointerSeen || cx != in.lastX || cy != in.lastY {
		in.pointerSeen = true
		in.lastX, in.lastY = cx, cy
		in.emit(Event{Kind: EventPointerMove, X: x, Y: y})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.emit(Event{Kind: EventPrimaryPress, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		in.emit(Event{Kind: EventSecondaryPress, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		in.emit(Event{Kind: EventSecondaryRelease, X: x, Y: y})
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		in.emit(Event{Kind: EventScroll, Delta: dy, X: x, Y: y})
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		in.emit(Event{Kind: EventKey, Key: KeyRune, Rune: r})
	}

	keys := []struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyDelete, KeyDelete},
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyArrowLeft, KeyLeft},
		{ebiten.KeyArrowRight, KeyRight},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			in.emit(Event{Kind: EventKey, Key: k.code})
		}
	}
}
