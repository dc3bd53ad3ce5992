// Package script decodes recorded input sessions from YAML into hal events.
//
//	- {type: primary, x: 400, y: 300}
//	- {type: secondary, x: 10, y: 10}
//	- {type: move, x: 50, y: 20}
//	- {type: release}
//	- {type: scroll, delta: 1, x: 400, y: 300}
//	- {type: key, key: "2"}
//	- {type: key, key: delete}
//	- {type: resize, w: 1024, h: 768}
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"vecview/hal"
)

var ErrInvalid = errors.New("script: invalid event")

// Step is one scripted event as written in YAML.
type Step struct {
	Type  string  `yaml:"type"`
	X     float64 `yaml:"x,omitempty"`
	Y     float64 `yaml:"y,omitempty"`
	Delta float64 `yaml:"delta,omitempty"`
	Key   string  `yaml:"key,omitempty"`
	W     int     `yaml:"w,omitempty"`
	H     int     `yaml:"h,omitempty"`
}

var namedKeys = map[string]hal.KeyCode{
	"delete": hal.KeyDelete,
	"del":    hal.KeyDelete,
	"escape": hal.KeyEscape,
	"esc":    hal.KeyEscape,
	"left":   hal.KeyLeft,
	"right":  hal.KeyRight,
}

// Event converts s to a hal event.
func (s Step) Event() (hal.Event, error) {
	switch strings.ToLower(s.Type) {
	case "primary", "click":
		return hal.Event{Kind: hal.EventPrimaryPress, X: s.X, Y: s.Y}, nil
	case "secondary":
		return hal.Event{Kind: hal.EventSecondaryPress, X: s.X, Y: s.Y}, nil
	case "release":
		return hal.Event{Kind: hal.EventSecondaryRelease, X: s.X, Y: s.Y}, nil
	case "move":
		return hal.Event{Kind: hal.EventPointerMove, X: s.X, Y: s.Y}, nil
	case "scroll":
		return hal.Event{Kind: hal.EventScroll, Delta: s.Delta, X: s.X, Y: s.Y}, nil
	case "resize":
		if s.W <= 0 || s.H <= 0 {
			return hal.Event{}, fmt.Errorf("%w: resize %dx%d", ErrInvalid, s.W, s.H)
		}
		return hal.Event{Kind: hal.EventResize, W: s.W, H: s.H}, nil
	case "key":
		if code, ok := namedKeys[strings.ToLower(s.Key)]; ok {
			return hal.Event{Kind: hal.EventKey, Key: code}, nil
		}
		r, size := utf8.DecodeRuneInString(s.Key)
		if r == utf8.RuneError || size != len(s.Key) {
			return hal.Event{}, fmt.Errorf("%w: key %q", ErrInvalid, s.Key)
		}
		return hal.Event{Kind: hal.EventKey, Key: hal.KeyRune, Rune: r}, nil
	default:
		return hal.Event{}, fmt.Errorf("%w: unknown type %q", ErrInvalid, s.Type)
	}
}

// Decode reads a YAML list of steps.
func Decode(r io.Reader) ([]hal.Event, error) {
	var steps []Step
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&steps); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("script: %w", err)
	}
	events := make([]hal.Event, 0, len(steps))
	for i, s := range steps {
		ev, err := s.Event()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func Load(path string) ([]hal.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
