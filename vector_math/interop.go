package vector_math

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// R2 converts v into gonum's planar vector type.
func (v Vector2) R2() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

func FromR2(p r2.Vec) Vector2 {
	return Vector2{X: p.X, Y: p.Y}
}

// R3 converts v into gonum's spatial vector type.
func (v Vector3) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func FromR3(p r3.Vec) Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: p.Z}
}
