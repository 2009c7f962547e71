package sail

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// rotZ and rotX build the elementary rotation matrices used to compose
// the orbital-plane-to-ecliptic transform. Adapted from smd's rotation.go
// (R1/R2/R3), trimmed to the two axes §4.A's closed-form transform needs.
func rotZ(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

func rotX(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

// perifocalToEcliptic applies R_z(Omega)*R_x(i)*R_z(omega) to a perifocal
// (PQW) vector, returning its ecliptic-frame components (§4.A, "Rotate to
// ecliptic"). The three elementary matrices are composed once per call via
// gonum's BLAS-backed Mul, mirroring smd's rotation.go composition style
// (R3R1R3) rather than hand-expanding the closed form inline.
func perifocalToEcliptic(omega, i, bigOmega float64, v Vec3) Vec3 {
	var rz1r1, m mat.Dense
	rz1r1.Mul(rotZ(bigOmega), rotX(i))
	m.Mul(&rz1r1, rotZ(omega))

	in := mat.NewVecDense(3, []float64{v[0], v[1], v[2]})
	var out mat.VecDense
	out.MulVec(&m, in)
	return Vec3{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}
