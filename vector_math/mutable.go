package vector_math

// MutableVector2 is an editable handle around a Vector2. Setters change the
// handle in place and return it so calls can be chained:
//
//	v := vector_math.Vector2{}.Mutable().SetX(3).SetY(4).Vector()
//
// A handle has no internal locking; callers sharing one between goroutines
// must synchronize writes themselves.
type MutableVector2 struct {
	v Vector2
}

func (m *MutableVector2) Set(other Vector2) *MutableVector2 {
	m.v = other
	return m
}

func (m *MutableVector2) SetX(x float64) *MutableVector2 {
	m.v.X = x
	return m
}

func (m *MutableVector2) SetY(y float64) *MutableVector2 {
	m.v.Y = y
	return m
}

// Vector returns a snapshot of the current value.
func (m *MutableVector2) Vector() Vector2 {
	return m.v
}

// MutableVector3 is the 3D counterpart of MutableVector2.
type MutableVector3 struct {
	v Vector3
}

func (m *MutableVector3) Set(other Vector3) *MutableVector3 {
	m.v = other
	return m
}

func (m *MutableVector3) SetX(x float64) *MutableVector3 {
	m.v.X = x
	return m
}

func (m *MutableVector3) SetY(y float64) *MutableVector3 {
	m.v.Y = y
	return m
}

func (m *MutableVector3) SetZ(z float64) *MutableVector3 {
	m.v.Z = z
	return m
}

func (m *MutableVector3) Vector() Vector3 {
	return m.v
}
