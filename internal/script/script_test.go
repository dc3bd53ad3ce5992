package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vecview/hal"
)

func TestDecode(t *testing.T) {
	src := `
- {type: primary, x: 400, y: 300}
- {type: secondary, x: 10, y: 10}
- {type: move, x: 50, y: 20}
- {type: release}
- {type: scroll, delta: -1, x: 400, y: 300}
- {type: key, key: "2"}
- {type: key, key: R}
- {type: key, key: Delete}
- {type: resize, w: 1024, h: 768}
`
	events, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []hal.Event{
		{Kind: hal.EventPrimaryPress, X: 400, Y: 300},
		{Kind: hal.EventSecondaryPress, X: 10, Y: 10},
		{Kind: hal.EventPointerMove, X: 50, Y: 20},
		{Kind: hal.EventSecondaryRelease},
		{Kind: hal.EventScroll, Delta: -1, X: 400, Y: 300},
		{Kind: hal.EventKey, Key: hal.KeyRune, Rune: '2'},
		{Kind: hal.EventKey, Key: hal.KeyRune, Rune: 'R'},
		{Kind: hal.EventKey, Key: hal.KeyDelete},
		{Kind: hal.EventResize, W: 1024, H: 768},
	}, events)
}

func TestDecodeEmpty(t *testing.T) {
	events, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestDecodeErrors(t *testing.T) {
	for _, src := range []string{
		"- {type: wiggle}",
		"- {type: key, key: ab}",
		"- {type: key}",
		"- {type: resize, w: 0, h: 5}",
	} {
		_, err := Decode(strings.NewReader(src))
		require.ErrorIs(t, err, ErrInvalid, src)
	}

	_, err := Decode(strings.NewReader("- {type: primary, z: 1}"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- {type: key, key: esc}\n"), 0o644))
	events, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []hal.Event{{Kind: hal.EventKey, Key: hal.KeyEscape}}, events)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
