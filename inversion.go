package sail

import "math"

// ElementsFromState inverts a Cartesian state to orbital elements (§4.B).
// Grounded on smd's orbit.go `Elements()` (the RV2COE algorithm, Vallado
// 4th ed. p.113), generalized to also return a correct mean anomaly
// (rather than smd's true anomaly only) and to branch explicitly on
// hyperbolic orbits, which smd's implementation does not handle.
//
// Corrupt inputs (zero position, or non-finite position or velocity)
// return fallback unchanged, per §4.B/§7 — the caller must supply the frame's
// mu explicitly via mu.
func ElementsFromState(r, v Vec3, mu, epoch float64, fallback Elements) Elements {
	return elementsFromState(r, v, mu, epoch, fallback, NopDiagnostics(), minSemiMajorAxisOutsideSOI)
}

// ElementsFromStateInSOI is ElementsFromState with the tighter `a` floor
// used inside a sphere of influence (§4.B).
func ElementsFromStateInSOI(r, v Vec3, mu, epoch float64, fallback Elements) Elements {
	return elementsFromState(r, v, mu, epoch, fallback, NopDiagnostics(), minSemiMajorAxisInsideSOI)
}

func elementsFromState(r, v Vec3, mu, epoch float64, fallback Elements, diag Diagnostics, aFloor float64) Elements {
	if r == (Vec3{}) || !finite3(r) || !finite3(v) {
		diag.Warn("msg", "corrupt state->elements input, returning fallback unchanged")
		return fallback
	}
	rn := norm(r)
	vn := norm(v)

	h := cross(r, v)
	hn := norm(h)
	nodeVec := cross(Vec3{0, 0, 1}, h)
	nodeN := norm(nodeVec)

	xi := (vn*vn)/2 - mu/rn
	a := -mu / (2 * xi)
	if math.Abs(a) < aFloor {
		a = sign(a) * aFloor
	}

	eVec := scale(sub(scale(r, vn*vn-mu/rn), scale(v, dot(r, v))), 1/mu)
	e := norm(eVec)
	if e < 0 {
		e = 0
	}
	e = nudgeEccentricity(e)

	var i float64
	if hn > 0 {
		i = math.Acos(clampUnit(h[2] / hn))
	}

	var raan float64
	equatorial := nodeN < 1e-10
	if !equatorial {
		raan = math.Acos(clampUnit(nodeVec[0] / nodeN))
		if nodeVec[1] < 0 {
			raan = 2*math.Pi - raan
		}
	}

	circular := e < circularEccentricityThreshold

	var argp float64
	switch {
	case circular:
		argp = 0
	case equatorial:
		argp = math.Atan2(eVec[1], eVec[0])
		if argp < 0 {
			argp += 2 * math.Pi
		}
	default:
		argp = math.Acos(clampUnit(dot(eVec, nodeVec) / (nodeN * e)))
		if eVec[2] < 0 {
			argp = 2*math.Pi - argp
		}
	}

	var nu float64
	switch {
	case circular && equatorial:
		nu = math.Atan2(r[1], r[0])
		if nu < 0 {
			nu += 2 * math.Pi
		}
	case circular:
		nu = math.Acos(clampUnit(dot(nodeVec, r) / (nodeN * rn)))
		if r[2] < 0 {
			nu = 2*math.Pi - nu
		}
	default:
		nu = math.Acos(clampUnit(dot(eVec, r) / (e * rn)))
		if dot(r, v) < 0 {
			nu = 2*math.Pi - nu
		}
	}

	kind := classify(e)
	var m0 float64
	if kind == Hyperbolic {
		H := hyperbolicFromTrue(nu, e)
		m0 = e*math.Sinh(H) - H
	} else {
		E := eccentricFromTrue(nu, e)
		m0 = wrap2Pi(E - e*math.Sin(E))
	}

	return Elements{A: a, E: e, I: i, RAAN: raan, ArgPeriapsis: argp, M0: m0, Epoch: epoch, Mu: mu}
}

// clampUnit clamps x to [-1, 1] before feeding it to acos, guarding the
// floating-point edge case where a dot-product ratio lands a hair outside
// the domain (smd's orbit.go hits the identical edge case in its own
// RV2COE and special-cases it the same way).
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
