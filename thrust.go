package sail

// ApplyThrust performs one continuous-thrust step in state-vector form
// (§4.D), adapted from smd's perturbations.go idea of treating a
// perturbing acceleration as an addend to the Cartesian state vector
// rather than to individual elements (smd applies it to a Gauss
// variational-equations rate; this module applies it directly to velocity,
// per spec.md's explicit rejection of Gauss's variational equations in
// favor of state-vector Delta-V, Glossary).
//
// Position is preserved exactly across the step; only velocity changes,
// and elements are reconstructed with epoch = jd (not the old epoch) so
// the next Position/Velocity call starts the clock from the step just
// taken.
func ApplyThrust(el Elements, accel Vec3, dt, jd float64, diag Diagnostics) Elements {
	if norm(accel) < 1e-20 {
		return el
	}
	r := position(el, jd, diag)
	v := velocity(el, jd, diag)
	if !finite3(r) || !finite3(v) || r == (Vec3{}) {
		diag.Warn("msg", "corrupt state at thrust step, returning input elements unchanged")
		return el
	}
	vPrime := add(v, scale(accel, dt))
	aFloor := minSemiMajorAxisOutsideSOI
	if el.Mu != MuSun {
		aFloor = minSemiMajorAxisInsideSOI
	}
	return elementsFromState(r, vPrime, el.Mu, jd, el, diag, aFloor)
}
