package sail

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vec3 is a 3-component Cartesian vector. It is a plain array (not a
// gonum vector) because every hot path in the core — Kepler solving,
// RTN construction, crossing detection — only ever needs 3-vectors and
// the allocation-free array avoids the Dense/VecDense heap churn smd's
// own math.go paid on every call.
type Vec3 [3]float64

// norm mirrors smd's math.go Norm, adapted to the fixed-size Vec3.
func norm(v Vec3) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// unit mirrors smd's math.go Unit: the zero vector maps to the zero
// vector instead of dividing by zero.
func unit(v Vec3) Vec3 {
	n := norm(v)
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return Vec3{}
	}
	return Vec3{v[0] / n, v[1] / n, v[2] / n}
}

func dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// cross mirrors smd's math.go Cross (R x V ordering kept for the same
// right-hand convention used throughout the orbital-element formulas).
func cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func scale(v Vec3, s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func add(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func sub(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// sign mirrors smd's math.go Sign: zero is treated as positive, which
// keeps quadrant-fix formulas (§4.A, §4.B) from producing a spurious
// sign flip exactly at zero crossing.
func sign(v float64) float64 {
	if floats.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// finite3 reports whether every component of v is finite, the guard
// every primitive in §4.A/§7 uses before returning a result.
func finite3(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// wrap2Pi centralizes angle normalization to [0, 2*pi) (Design Notes §9,
// "Angle normalization drift") so elliptic mean/true anomaly wrapping is
// never duplicated inline with subtly different epsilon handling.
func wrap2Pi(angle float64) float64 {
	const twoPi = 2 * math.Pi
	a := math.Mod(angle, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
