package vector_math

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ToRad is a helper function to turn degree to radians
func ToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDeg is a helper function to turn radians to degree
func ToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

func approxEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, tol, tol)
}
