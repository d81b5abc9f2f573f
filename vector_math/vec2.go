package vector_math

import (
	"fmt"
	"math"
)

// Vector2 is an immutable 2D vector. Every operation returns a new value and
// leaves its operands untouched; use Mutable for in-place, chainable edits.
type Vector2 struct {
	X, Y float64
}

// NewVector2 builds a vector from up to two components. Missing components
// default to 0, supplied ones (including -0 and NaN) are kept as they are.
// Components past the second are ignored.
func NewVector2(components ...float64) Vector2 {
	var v Vector2
	if len(components) > 0 {
		v.X = components[0]
	}
	if len(components) > 1 {
		v.Y = components[1]
	}
	return v
}

// UnitVector2 returns the vector of length 1 pointing at angle radians.
func UnitVector2(angle float64) Vector2 {
	return Vector2{
		X: math.Cos(angle),
		Y: math.Sin(angle),
	}
}

func FromPolar2(magnitude float64, direction float64) Vector2 {
	return UnitVector2(direction).ScalarMul(magnitude)
}

func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{
		X: v.X + w.X,
		Y: v.Y + w.Y,
	}
}

func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{
		X: v.X - w.X,
		Y: v.Y - w.Y,
	}
}

func (v Vector2) Dot(w Vector2) float64 {
	return (v.X * w.X) + (v.Y * w.Y)
}

func (v Vector2) ScalarMul(factor float64) Vector2 {
	return Vector2{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// ScalarDiv divides each component by divisor. A zero divisor yields
// infinite or NaN components.
func (v Vector2) ScalarDiv(divisor float64) Vector2 {
	return Vector2{
		X: v.X / divisor,
		Y: v.Y / divisor,
	}
}

func (v Vector2) Negate() Vector2 {
	return v.ScalarMul(-1)
}

func (v Vector2) MagnitudeSquared() float64 {
	return (v.X * v.X) + (v.Y * v.Y)
}

func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Direction is the angle from the positive x-axis in (-π, π]. The zero
// vector has direction 0.
func (v Vector2) Direction() float64 {
	return math.Atan2(v.Y, v.X)
}

// Normalize scales v to unit length. The zero vector normalizes to NaN
// components.
func (v Vector2) Normalize() Vector2 {
	return v.ScalarDiv(v.Magnitude())
}

// Rotate turns v counterclockwise about the origin by angle radians.
func (v Vector2) Rotate(angle float64) Vector2 {
	cosT := math.Cos(angle)
	sinT := math.Sin(angle)
	return Vector2{
		X: (v.X * cosT) - (v.Y * sinT),
		Y: (v.X * sinT) + (v.Y * cosT),
	}
}

// Vector3 lifts v into 3D space at height z.
func (v Vector2) Vector3(z float64) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: z}
}

// ApproxEqual reports whether every component of v is within tol of w,
// either absolutely or relative to the larger magnitude.
func (v Vector2) ApproxEqual(w Vector2, tol float64) bool {
	return approxEqual(v.X, w.X, tol) && approxEqual(v.Y, w.Y, tol)
}

func (v Vector2) Mutable() *MutableVector2 {
	return &MutableVector2{v: v}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
