// Package geom provides the 2D vector type used by the viewer.
//
// Vec2 is a value type: every operation returns a new vector and never mutates
// its receiver or arguments. Degenerate inputs (zero-length vectors) resolve to
// defined values instead of errors, with the exception of Project and Reject,
// which require a non-zero reference vector.
package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Epsilon is the default tolerance for Equal.
const Epsilon = 1e-6

// ErrZeroVector is the panic value raised by Project and Reject when the
// reference vector has zero length.
var ErrZeroVector = errors.New("geom: zero-length reference vector")

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func fromR2(p r2.Vec) Vec2 { return Vec2{X: p.X, Y: p.Y} }
func (v Vec2) vec() r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }

func (v Vec2) Add(o Vec2) Vec2      { return fromR2(r2.Add(v.vec(), o.vec())) }
func (v Vec2) Sub(o Vec2) Vec2      { return fromR2(r2.Sub(v.vec(), o.vec())) }
func (v Vec2) Scale(t float64) Vec2 { return fromR2(r2.Scale(t, v.vec())) }
func (v Vec2) Dot(o Vec2) float64   { return r2.Dot(v.vec(), o.vec()) }
func (v Vec2) Cross(o Vec2) float64 { return r2.Cross(v.vec(), o.vec()) }
func (v Vec2) Length2() float64     { return r2.Norm2(v.vec()) }
func (v Vec2) Length() float64      { return math.Sqrt(v.Length2()) }
func (v Vec2) Dist2(o Vec2) float64 { return v.Sub(o).Length2() }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Length() }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }
func (v Vec2) Perp() Vec2           { return Vec2{X: -v.Y, Y: v.X} }
func (v Vec2) Rot90CCW() Vec2       { return Vec2{X: -v.Y, Y: v.X} }
func (v Vec2) Rot90CW() Vec2        { return Vec2{X: v.Y, Y: -v.X} }
func (v Vec2) Abs() Vec2            { return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)} }
func (v Vec2) Min(o Vec2) Vec2      { return Vec2{X: math.Min(v.X, o.X), Y: math.Min(v.Y, o.Y)} }
func (v Vec2) Max(o Vec2) Vec2      { return Vec2{X: math.Max(v.X, o.X), Y: math.Max(v.Y, o.Y)} }
func (v Vec2) String() string       { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Normalize returns v scaled to unit length, or the zero vector when v has
// zero length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Angle returns the unsigned angle between v and o in [0, π].
// It returns 0 if either vector has zero length.
func (v Vec2) Angle(o Vec2) float64 {
	if v.IsZero() || o.IsZero() {
		return 0
	}
	return math.Atan2(math.Abs(v.Cross(o)), v.Dot(o))
}

// Equal reports whether a and b match within eps.
//
// Two vectors that are both shorter than eps are equal regardless of
// direction. Otherwise each component must agree within eps relative to the
// larger magnitude of that component pair.
func Equal(a, b Vec2, eps float64) bool {
	if a.Length() < eps && b.Length() < eps {
		return true
	}
	return math.Abs(a.X-b.X) <= eps*math.Max(math.Abs(a.X), math.Abs(b.X)) &&
		math.Abs(a.Y-b.Y) <= eps*math.Max(math.Abs(a.Y), math.Abs(b.Y))
}

// Project returns the projection of v onto b. It panics with ErrZeroVector
// if b has zero length.
func (v Vec2) Project(b Vec2) Vec2 {
	l2 := b.Length2()
	if l2 == 0 {
		panic(ErrZeroVector)
	}
	return b.Scale(v.Dot(b) / l2)
}

// Reject returns the component of v orthogonal to b. It panics with
// ErrZeroVector if b has zero length.
func (v Vec2) Reject(b Vec2) Vec2 {
	return v.Sub(v.Project(b))
}

// Reflect mirrors v about the normal n. n is normalized first; a zero normal
// leaves v unchanged.
func (v Vec2) Reflect(n Vec2) Vec2 {
	nn := n.Normalize()
	return v.Sub(nn.Scale(2 * v.Dot(nn)))
}

// Rotate rotates v about the origin by radians, counter-clockwise.
func (v Vec2) Rotate(radians float64) Vec2 {
	return v.RotateAround(Vec2{}, radians)
}

// RotateAround rotates v about pivot by radians, counter-clockwise.
func (v Vec2) RotateAround(pivot Vec2, radians float64) Vec2 {
	return fromR2(r2.Rotate(v.vec(), radians, pivot.vec()))
}
