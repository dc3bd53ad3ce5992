package preset

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"vecview/viewer/geom"
	"vecview/viewer/scene"
)

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

// Builtins returns the standard preset list. seed feeds the random preset;
// nil seeds it from the clock on every run.
func Builtins(seed SeedFunc) []Generator {
	return []Generator{
		Empty{},
		Basis{},
		Spokes{N: 16, R: 3},
		NewRandom(seed),
		Projection{A: geom.V(3, 2), B: geom.V(4, 1)},
		Reflection{I: geom.V(3, -2), N: geom.V(0, 1)},
		Rotations{V: geom.V(4, 0), Steps: 12},
	}
}

// Empty clears the scene.
type Empty struct{}

func (Empty) Name() string                 { return "Empty" }
func (Empty) Generate(c *scene.Collection) { c.Reset() }

// Basis draws the axis basis vectors and two diagonals.
type Basis struct{}

func (Basis) Name() string { return "Basis & Diagonals" }

func (Basis) Generate(c *scene.Collection) {
	c.Reset()
	c.Append(geom.V(2, 0), rgb(230, 80, 80))
	c.Append(geom.V(0, 2), rgb(80, 160, 255))
	c.Append(geom.V(-2, 0), rgb(160, 90, 90))
	c.Append(geom.V(0, -2), rgb(90, 120, 180))
	c.Append(geom.V(1.5, 1.5), rgb(90, 220, 120))
	c.Append(geom.V(-1.5, 1.5), rgb(220, 180, 90))
}

// Spokes draws N evenly spaced vectors of length R.
type Spokes struct {
	N int
	R float64
}

func (Spokes) Name() string { return "Spokes Circle" }

func (s Spokes) Generate(c *scene.Collection) {
	c.Reset()
	for i := 0; i < s.N; i++ {
		a := float64(i) * 2 * math.Pi / float64(s.N)
		c.Append(geom.V(math.Cos(a)*s.R, math.Sin(a)*s.R), rgb(120, 210, 140))
	}
}

// SeedFunc supplies the seed for one run of the random preset.
type SeedFunc func() int64

// FixedSeed always returns seed.
func FixedSeed(seed int64) SeedFunc { return func() int64 { return seed } }

// Random draws 40 vectors with x in [-5, 5] and y in [-3, 3].
type Random struct {
	Count int
	seed  SeedFunc
}

func NewRandom(seed SeedFunc) Random {
	return Random{Count: 40, seed: seed}
}

func clockSeed() int64 { return time.Now().UnixNano() }

func (Random) Name() string { return "Random Vectors" }

func (r Random) Generate(c *scene.Collection) {
	c.Reset()
	seed := r.seed
	if seed == nil {
		seed = clockSeed
	}
	rng := rand.New(rand.NewSource(seed()))
	for i := 0; i < r.Count; i++ {
		x := rng.Float64()*10 - 5
		y := rng.Float64()*6 - 3
		c.Append(geom.V(x, y), rgb(80, 220, 160))
	}
}

// Projection draws a, b and the projection of a onto b.
type Projection struct {
	A, B geom.Vec2
}

func (Projection) Name() string { return "Projection (a onto b)" }

func (p Projection) Generate(c *scene.Collection) {
	c.Reset()
	c.Append(p.A, rgb(90, 200, 255))
	c.Append(p.B, rgb(255, 160, 60))
	c.Append(p.A.Project(p.B), rgb(255, 220, 0))
}

// Reflection draws an incident vector, a normal and the reflection.
type Reflection struct {
	I, N geom.Vec2
}

func (Reflection) Name() string { return "Reflection (i about n)" }

func (r Reflection) Generate(c *scene.Collection) {
	c.Reset()
	c.Append(r.I, rgb(90, 200, 255))
	c.Append(r.N, rgb(255, 160, 60))
	c.Append(r.I.Reflect(r.N), rgb(255, 80, 200))
}

// Rotations draws V rotated through a full turn in Steps increments.
type Rotations struct {
	V     geom.Vec2
	Steps int
}

func (Rotations) Name() string { return "Rotations" }

func (r Rotations) Generate(c *scene.Collection) {
	c.Reset()
	for k := 0; k < r.Steps; k++ {
		a := float64(k) * 2 * math.Pi / float64(r.Steps)
		c.Append(r.V.Rotate(a), rgb(100, 210, 130))
	}
}
