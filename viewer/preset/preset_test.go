package preset

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"vecview/viewer/geom"
	"vecview/viewer/scene"
)

func labelsOf(c *scene.Collection) []string {
	var out []string
	c.Each(func(_ int, e scene.Entry) bool {
		out = append(out, e.Label)
		return true
	})
	return out
}

func TestRegistryWraps(t *testing.T) {
	c := scene.New()
	r := NewRegistry(c, Builtins(FixedSeed(1))...)
	n := r.Len()
	require.Equal(t, 7, n)

	idx, name := r.Apply(0)
	require.Equal(t, 0, idx)
	require.Equal(t, "Empty", name)

	idx, _ = r.Prev()
	require.Equal(t, n-1, idx)

	idx, name = r.Next()
	require.Equal(t, 0, idx)
	require.Equal(t, "Empty", name)

	idx, _ = r.Apply(-1)
	require.Equal(t, n-1, idx)
	idx, _ = r.Apply(n)
	require.Equal(t, 0, idx)
	idx, _ = r.Apply(2*n + 3)
	require.Equal(t, 3, idx)
	idx, _ = r.Apply(-n - 2)
	require.Equal(t, n-2, idx)
}

func TestRegistryPrependsEmpty(t *testing.T) {
	r := NewRegistry(scene.New(), Basis{})
	require.Equal(t, []string{"Empty", "Basis & Diagonals"}, r.Names())

	r = NewRegistry(scene.New())
	require.Equal(t, 1, r.Len())
	idx, name := r.Next()
	require.Equal(t, 0, idx)
	require.Equal(t, "Empty", name)
}

func TestRegistryFind(t *testing.T) {
	r := NewRegistry(scene.New(), Builtins(nil)...)
	i, ok := r.Find("Rotations")
	require.True(t, ok)
	require.Equal(t, 6, i)
	_, ok = r.Find("nope")
	require.False(t, ok)
}

func TestBasisScene(t *testing.T) {
	c := scene.New()
	c.Append(geom.V(9, 9), color.RGBA{A: 0xFF})
	r := NewRegistry(c, Builtins(nil)...)
	_, name := r.Apply(1)
	require.Equal(t, "Basis & Diagonals", name)

	require.Equal(t, 6, c.Len())
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, labelsOf(c))

	want := []struct {
		pos geom.Vec2
		col color.RGBA
	}{
		{geom.V(2, 0), rgb(230, 80, 80)},
		{geom.V(0, 2), rgb(80, 160, 255)},
		{geom.V(-2, 0), rgb(160, 90, 90)},
		{geom.V(0, -2), rgb(90, 120, 180)},
		{geom.V(1.5, 1.5), rgb(90, 220, 120)},
		{geom.V(-1.5, 1.5), rgb(220, 180, 90)},
	}
	for i, w := range want {
		require.Equal(t, w.pos, c.At(i).Pos, "entry %d", i)
		require.Equal(t, w.col, c.At(i).Color, "entry %d", i)
	}
}

func TestSpokesAndRotations(t *testing.T) {
	c := scene.New()
	Spokes{N: 16, R: 3}.Generate(c)
	require.Equal(t, 16, c.Len())
	c.Each(func(_ int, e scene.Entry) bool {
		require.InDelta(t, 3, e.Pos.Length(), 1e-9)
		return true
	})

	Rotations{V: geom.V(4, 0), Steps: 12}.Generate(c)
	require.Equal(t, 12, c.Len())
	require.Equal(t, "a", c.At(0).Label)
	require.InDelta(t, 0, c.At(3).Pos.X, 1e-9)
	require.InDelta(t, 4, c.At(3).Pos.Y, 1e-9)
	require.InDelta(t, math.Pi/6, c.At(0).Pos.Angle(c.At(1).Pos), 1e-9)
}

func TestProjectionAndReflection(t *testing.T) {
	c := scene.New()
	Projection{A: geom.V(3, 2), B: geom.V(4, 1)}.Generate(c)
	require.Equal(t, 3, c.Len())
	p := c.At(2).Pos
	require.InDelta(t, 56.0/17.0, p.X, 1e-9)
	require.InDelta(t, 14.0/17.0, p.Y, 1e-9)

	Reflection{I: geom.V(3, -2), N: geom.V(0, 1)}.Generate(c)
	require.Equal(t, []string{"a", "b", "c"}, labelsOf(c))
	require.True(t, geom.Equal(geom.V(3, 2), c.At(2).Pos, geom.Epsilon))
}

func TestRandomSeedInjection(t *testing.T) {
	a := scene.New()
	b := scene.New()
	NewRandom(FixedSeed(42)).Generate(a)
	NewRandom(FixedSeed(42)).Generate(b)
	require.Equal(t, 40, a.Len())
	require.Equal(t, a.Entries(), b.Entries())
	a.Each(func(_ int, e scene.Entry) bool {
		require.True(t, e.Pos.X >= -5 && e.Pos.X <= 5, "x=%v", e.Pos.X)
		require.True(t, e.Pos.Y >= -3 && e.Pos.Y <= 3, "y=%v", e.Pos.Y)
		return true
	})

	NewRandom(FixedSeed(43)).Generate(b)
	require.NotEqual(t, a.Entries(), b.Entries())
}

func TestExprPreset(t *testing.T) {
	g, err := NewExpr(ExprSpec{
		Name:  "Circle",
		Count: 8,
		X:     "2 * cos(t)",
		Y:     "2 * sin(t)",
	})
	require.NoError(t, err)
	require.Equal(t, "Circle", g.Name())

	c := scene.New()
	g.Generate(c)
	require.Equal(t, 8, c.Len())
	require.InDelta(t, 2, c.At(0).Pos.X, 1e-9)
	require.InDelta(t, 0, c.At(2).Pos.X, 1e-9)
	require.InDelta(t, 2, c.At(2).Pos.Y, 1e-9)
	require.Equal(t, rgb(80, 220, 160), c.At(0).Color)

	line, err := NewExpr(ExprSpec{Name: "Line", Count: 3, X: "i", Y: "i * 0.5 - abs(-1)", Color: rgb(1, 2, 3)})
	require.NoError(t, err)
	line.Generate(c)
	require.Equal(t, geom.V(2, 0), c.At(2).Pos)
	require.Equal(t, rgb(1, 2, 3), c.At(2).Color)
}

func TestExprPresetErrors(t *testing.T) {
	cases := []ExprSpec{
		{Count: 1, X: "1", Y: "1"},
		{Name: "neg", Count: -1, X: "1", Y: "1"},
		{Name: "empty", Count: 1, X: "", Y: "1"},
		{Name: "syntax", Count: 1, X: "1 +", Y: "1"},
		{Name: "unknown", Count: 1, X: "q * 2", Y: "1"},
	}
	for _, spec := range cases {
		_, err := NewExpr(spec)
		require.Error(t, err, spec.Name)
		require.True(t, errors.Is(err, ErrExpr), spec.Name)
	}
}

func TestExprSkipsNonFinite(t *testing.T) {
	g, err := NewExpr(ExprSpec{Name: "Roots", Count: 3, X: "sqrt(i - 1)", Y: "0"})
	require.NoError(t, err)
	c := scene.New()
	g.Generate(c)
	require.Equal(t, 2, c.Len())
	require.Equal(t, []string{"a", "b"}, labelsOf(c))
}
