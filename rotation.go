package radial

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// PQW2Observer converts a given vector from the perifocal (PQW) frame of an
// orbit to the observer's sky frame, whose +Z axis points along the line of
// sight away from the observer. The rotation is the 3-1-3 sequence by the
// argument of periapsis ω, the inclination i and the longitude of the
// ascending node Ω, all in radians, cf. Murray & Correia (2011) sec. 4.
func PQW2Observer(i, ω, Ω float64, v []float64) []float64 {
	var m mat64.Dense
	m.Mul(R1(-i), R3(-ω))
	m.Mul(R3(-Ω), &m)
	return MxV33(&m, v)
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}
