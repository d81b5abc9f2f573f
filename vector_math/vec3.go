package vector_math

import (
	"fmt"
	"math"
)

// Vector3 is an immutable 3D vector. Direction and Rotate act on the
// xy-plane only and carry Z through unchanged.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 builds a vector from up to three components, defaulting only the
// missing ones to 0.
func NewVector3(components ...float64) Vector3 {
	var v Vector3
	switch n := len(components); {
	case n >= 3:
		v.Z = components[2]
		fallthrough
	case n == 2:
		v.Y = components[1]
		fallthrough
	case n == 1:
		v.X = components[0]
	}
	return v
}

// UnitVector3 returns the unit vector in the xy-plane at angle radians.
func UnitVector3(angle float64) Vector3 {
	return UnitVector2(angle).Vector3(0)
}

func FromPolar3(magnitude float64, direction float64) Vector3 {
	return UnitVector3(direction).ScalarMul(magnitude)
}

func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: (v.Y * w.Z) - (v.Z * w.Y),
		Y: (v.Z * w.X) - (v.X * w.Z),
		Z: (v.X * w.Y) - (v.Y * w.X),
	}
}

func (v Vector3) Dot(w Vector3) float64 {
	return (v.X * w.X) + (v.Y * w.Y) + (v.Z * w.Z)
}

func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{
		X: v.X - w.X,
		Y: v.Y - w.Y,
		Z: v.Z - w.Z,
	}
}

func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{
		X: v.X + w.X,
		Y: v.Y + w.Y,
		Z: v.Z + w.Z,
	}
}

func (v Vector3) ScalarMul(factor float64) Vector3 {
	return Vector3{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
	}
}

func (v Vector3) ScalarDiv(divisor float64) Vector3 {
	return Vector3{
		X: v.X / divisor,
		Y: v.Y / divisor,
		Z: v.Z / divisor,
	}
}

func (v Vector3) Negate() Vector3 {
	return v.ScalarMul(-1)
}

func (v Vector3) MagnitudeSquared() float64 {
	return (v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z)
}

func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Normalize scales v to unit length; the zero vector yields NaN components.
func (v Vector3) Normalize() Vector3 {
	return v.ScalarDiv(v.Magnitude())
}

// Direction is the angle of the xy projection from the positive x-axis.
func (v Vector3) Direction() float64 {
	return v.XY().Direction()
}

// Rotate turns v about the z axis by angle radians.
func (v Vector3) Rotate(angle float64) Vector3 {
	return v.XY().Rotate(angle).Vector3(v.Z)
}

func (v Vector3) XY() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

func (v Vector3) ApproxEqual(w Vector3, tol float64) bool {
	return approxEqual(v.X, w.X, tol) &&
		approxEqual(v.Y, w.Y, tol) &&
		approxEqual(v.Z, w.Z, tol)
}

func (v Vector3) Mutable() *MutableVector3 {
	return &MutableVector3{v: v}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
