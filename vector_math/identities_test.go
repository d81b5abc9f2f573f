package vector_math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var component = rapid.Float64Range(-1e3, 1e3)

func drawVector2(t *rapid.T, label string) Vector2 {
	return Vector2{
		X: component.Draw(t, label+".x"),
		Y: component.Draw(t, label+".y"),
	}
}

func drawVector3(t *rapid.T, label string) Vector3 {
	return Vector3{
		X: component.Draw(t, label+".x"),
		Y: component.Draw(t, label+".y"),
		Z: component.Draw(t, label+".z"),
	}
}

// near asserts |want-got| is small compared to scale, the magnitude of the
// largest intermediate term.
func near(t assert.TestingT, want, got, scale float64, msg string) {
	assert.LessOrEqual(t, math.Abs(want-got), 1e-9*(scale+1), "%s: want %v got %v", msg, want, got)
}

func near2(t assert.TestingT, want, got Vector2, scale float64, msg string) {
	near(t, want.X, got.X, scale, msg+" x")
	near(t, want.Y, got.Y, scale, msg+" y")
}

func near3(t assert.TestingT, want, got Vector3, scale float64, msg string) {
	near(t, want.X, got.X, scale, msg+" x")
	near(t, want.Y, got.Y, scale, msg+" y")
	near(t, want.Z, got.Z, scale, msg+" z")
}

func TestVector2Identities(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawVector2(t, "a")
		b := drawVector2(t, "b")
		c := drawVector2(t, "c")
		s := component.Draw(t, "s")
		sum := a.Magnitude() + b.Magnitude() + c.Magnitude()

		assert.Equal(t, a.Add(b), b.Add(a), "addition commutes")
		assert.Equal(t, a.Dot(b), b.Dot(a), "dot commutes")
		near2(t, a.Add(b.Add(c)), a.Add(b).Add(c), sum, "addition associates")
		near2(t, a.Add(b).ScalarMul(s), a.ScalarMul(s).Add(b.ScalarMul(s)), math.Abs(s)*sum, "scalar distributes")
		near(t, a.Add(b).Dot(c), a.Dot(c)+b.Dot(c), sum*sum, "dot distributes")
		assert.Equal(t, a.MagnitudeSquared(), a.Dot(a), "|a|^2 = a.a")

		assert.LessOrEqual(t, a.Add(b).Magnitude(), a.Magnitude()+b.Magnitude()+1e-9*sum, "triangle inequality")
		assert.GreaterOrEqual(t, a.Sub(b).Magnitude()+1e-9*sum, a.Magnitude()-b.Magnitude(), "reverse triangle inequality")
	})
}

func TestVector3Identities(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawVector3(t, "a")
		b := drawVector3(t, "b")
		c := drawVector3(t, "c")
		s := component.Draw(t, "s")
		sum := a.Magnitude() + b.Magnitude() + c.Magnitude()

		assert.Equal(t, a.Add(b), b.Add(a), "addition commutes")
		assert.Equal(t, a.Dot(b), b.Dot(a), "dot commutes")
		near3(t, a.Add(b.Add(c)), a.Add(b).Add(c), sum, "addition associates")
		near3(t, a.Add(b).ScalarMul(s), a.ScalarMul(s).Add(b.ScalarMul(s)), math.Abs(s)*sum, "scalar distributes")
		near(t, a.Add(b).Dot(c), a.Dot(c)+b.Dot(c), sum*sum, "dot distributes")
		assert.Equal(t, a.MagnitudeSquared(), a.Dot(a), "|a|^2 = a.a")

		assert.LessOrEqual(t, a.Add(b).Magnitude(), a.Magnitude()+b.Magnitude()+1e-9*sum, "triangle inequality")
		assert.GreaterOrEqual(t, a.Sub(b).Magnitude()+1e-9*sum, a.Magnitude()-b.Magnitude(), "reverse triangle inequality")
	})
}

func TestCrossProductIdentities(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawVector3(t, "a")
		b := drawVector3(t, "b")
		c := drawVector3(t, "c")
		d := drawVector3(t, "d")
		sum := a.Magnitude() + b.Magnitude() + c.Magnitude() + d.Magnitude()

		near3(t, a.Cross(b), b.Cross(a).Negate(), sum*sum, "anti-commutativity")
		near3(t, a.Add(b).Cross(c), a.Cross(c).Add(b.Cross(c)), sum*sum, "distributivity")

		triple := a.Dot(b.Cross(c))
		near(t, triple, b.Dot(c.Cross(a)), sum*sum*sum, "scalar triple b.(c x a)")
		near(t, triple, a.Cross(b).Dot(c), sum*sum*sum, "scalar triple (a x b).c")

		near3(t,
			a.Cross(b.Cross(c)),
			b.ScalarMul(a.Dot(c)).Sub(c.ScalarMul(a.Dot(b))),
			sum*sum*sum, "vector triple product")

		near(t,
			a.Cross(b).MagnitudeSquared(),
			a.MagnitudeSquared()*b.MagnitudeSquared()-a.Dot(b)*a.Dot(b),
			math.Pow(sum, 4), "Lagrange's identity")

		near(t,
			a.Cross(b).Dot(c.Cross(d)),
			a.Dot(c)*b.Dot(d)-a.Dot(d)*b.Dot(c),
			math.Pow(sum, 4), "Binet-Cauchy identity")

		cross := a.Cross(b)
		near(t, 0, cross.Dot(a), sum*sum*sum, "a x b is perpendicular to a")
		near(t, 0, cross.Dot(b), sum*sum*sum, "a x b is perpendicular to b")
	})
}

func TestPolarRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := rapid.Float64Range(0, 1e6).Draw(t, "magnitude")
		theta := rapid.Float64Range(-2*math.Pi, 2*math.Pi).Draw(t, "direction")

		near(t, 1, UnitVector2(theta).Magnitude(), 1, "unit vector magnitude")
		near(t, m, FromPolar2(m, theta).Magnitude(), m, "polar 2D magnitude")
		near(t, 1, UnitVector3(theta).Magnitude(), 1, "unit vector 3D magnitude")
		near(t, m, FromPolar3(m, theta).Magnitude(), m, "polar 3D magnitude")
	})
}

func TestRotationPreservesLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := drawVector3(t, "v")
		angle := rapid.Float64Range(-10, 10).Draw(t, "angle")
		r := v.Rotate(angle)

		near(t, v.Magnitude(), r.Magnitude(), v.Magnitude(), "rotation keeps magnitude")
		assert.Equal(t, v.Z, r.Z, "rotation keeps z")
		near2(t, v.XY(), r.XY().Rotate(-angle), v.Magnitude(), "rotating back")
	})
}

func TestOperandsUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawVector3(t, "a")
		b := drawVector3(t, "b")
		a0, b0 := a, b

		_ = a.Add(b)
		_ = a.Sub(b)
		_ = a.Cross(b)
		_ = a.Dot(b)
		_ = a.ScalarMul(3)
		_ = a.ScalarDiv(3)
		_ = a.Negate()
		_ = a.Normalize()
		_ = a.Rotate(1)

		assert.Equal(t, a0, a)
		assert.Equal(t, b0, b)
	})
}
