package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"vecview/hal"
	"vecview/viewer/geom"
	"vecview/viewer/render"
)

const (
	panicLineHeight = 12
	panicCharWidth  = 7
)

// recoverStep turns a panic inside step into an error, after logging it and
// drawing it on the framebuffer.
func recoverStep(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			stack := debug.Stack()
			reportPanic(h, r, stack)
			err = fmt.Errorf("vecview panic: %v", r)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, value any, stack []byte) {
	lines := []string{
		"Viewer Panic:",
		fmt.Sprintf("panic: %v", value),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	s := render.NewFramebufferSurface(fb)
	s.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	fg := color.RGBA{A: 255}

	cols := fb.Width() / panicCharWidth
	if cols <= 0 {
		cols = 1
	}
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+panicLineHeight > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			s.Text(geom.V(0, float64(y)), chunk, fg)
			y += panicLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
