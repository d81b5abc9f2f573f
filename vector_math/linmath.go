package vector_math

import "github.com/xlab/linmath"

// Linmath packs v into the float32 layout used for vertex and uniform
// buffers. Precision beyond float32 is lost.
func (v Vector2) Linmath() linmath.Vec2 {
	return linmath.Vec2{float32(v.X), float32(v.Y)}
}

func (v Vector3) Linmath() linmath.Vec3 {
	return linmath.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func FromLinmath2(p linmath.Vec2) Vector2 {
	return Vector2{X: float64(p[0]), Y: float64(p[1])}
}

func FromLinmath3(p linmath.Vec3) Vector3 {
	return Vector3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}
