package sail

import "math"

// Elements is the Keplerian orbital-element set of §3 ("Orbital Elements").
// Angles are radians; A is AU (negative for hyperbolic orbits); Epoch and
// mean anomaly follow the conventions of §4.A.
type Elements struct {
	A            float64 // semi-major axis, AU; negative for hyperbolic
	E            float64 // eccentricity, >= 0
	I            float64 // inclination, rad
	RAAN         float64 // longitude of ascending node (Omega), rad
	ArgPeriapsis float64 // argument of periapsis (omega), rad
	M0           float64 // mean anomaly at epoch, rad
	Epoch        float64 // Julian date
	Mu           float64 // gravitational parameter, AU^3/day^2
}

// Kind classifies this element set (Design Notes §9).
func (el Elements) Kind() OrbitKind {
	return classify(el.E)
}

// NewElements builds an element set, nudging `e` away from the parabolic
// singularity and clamping a negative eccentricity to zero, per the
// invariants of §3 and the edge-case handling of §4.B.
func NewElements(a, e, i, raan, argp, m0, epoch, mu float64) Elements {
	if e < 0 {
		e = 0
	}
	e = nudgeEccentricity(e)
	return Elements{A: a, E: e, I: i, RAAN: raan, ArgPeriapsis: argp, M0: m0, Epoch: epoch, Mu: mu}
}

// Valid reports whether every field is finite and the orbit-type/sign
// convention of §3 holds (a!=0, e>=0).
func (el Elements) Valid() bool {
	for _, v := range []float64{el.A, el.E, el.I, el.RAAN, el.ArgPeriapsis, el.M0, el.Epoch, el.Mu} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if el.A == 0 || el.E < 0 {
		return false
	}
	return true
}

// MeanMotion returns n = sqrt(mu/|a|^3) (§4.A). Mean motion is monotone
// decreasing in |a| (§8), which is what makes it usable as a propagation
// rate without a sign ambiguity.
func MeanMotion(mu, a float64) float64 {
	return math.Sqrt(mu / math.Abs(a*a*a))
}

// propagateMeanAnomaly advances M0 by n*dt, normalizing to [0, 2*pi) for
// elliptic/circular orbits and leaving it unbounded for hyperbolic ones
// (§4.A). Negative dt is handled by wrap2Pi's modulo, which always returns
// a value in [0, 2*pi).
func propagateMeanAnomaly(el Elements, dt float64) float64 {
	n := MeanMotion(el.Mu, el.A)
	m := el.M0 + n*dt
	if el.Kind() == Hyperbolic {
		return m
	}
	return wrap2Pi(m)
}

// solveKeplerElliptic solves E - e*sin(E) = M by Newton-Raphson, per §4.A:
// short-circuits to E=M for near-circular orbits, seeds E=M for e<0.8 and
// E=pi otherwise, converges to 1e-12 within 50 iterations, and returns the
// last iterate rather than erroring on non-convergence.
func solveKeplerElliptic(m, e float64) float64 {
	if e < 1e-10 {
		return m
	}
	ecc := math.Min(e, 0.999999999)
	var E float64
	if e < 0.8 {
		E = m
	} else {
		E = math.Pi
	}
	for i := 0; i < 50; i++ {
		f := E - ecc*math.Sin(E) - m
		fp := 1 - ecc*math.Cos(E)
		if math.Abs(fp) < 1e-15 {
			break
		}
		delta := f / fp
		E -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	return E
}

// solveKeplerHyperbolic solves e*sinh(H) - H = M by Newton-Raphson, per
// §4.A: seeds from M/(e-1) for small |M| or a log estimate otherwise,
// damps the step by 0.5 when it more than doubles (divergence guard), and
// guards the near-zero derivative.
func solveKeplerHyperbolic(m, e float64) float64 {
	var H float64
	if math.Abs(m) < 1 {
		H = m / (e - 1)
	} else {
		H = sign(m) * math.Log(2*math.Abs(m)/e)
	}
	prevDelta := math.Inf(1)
	for i := 0; i < 50; i++ {
		f := e*math.Sinh(H) - H - m
		fp := e*math.Cosh(H) - 1
		if math.Abs(fp) < 1e-15 {
			break
		}
		delta := f / fp
		if math.Abs(delta) > 2*math.Abs(prevDelta) {
			delta *= 0.5
		}
		H -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
		prevDelta = delta
	}
	return H
}

// trueAnomalyFromEccentric converts E to true anomaly for e<1 (§4.A).
func trueAnomalyFromEccentric(E, e float64) float64 {
	sinE, cosE := math.Sincos(E)
	return math.Atan2(math.Sqrt(1-e*e)*sinE, cosE-e)
}

// trueAnomalyFromHyperbolic converts H to true anomaly for e>1 (§4.A).
func trueAnomalyFromHyperbolic(H, e float64) float64 {
	return 2 * math.Atan(math.Sqrt((e+1)/(e-1))*math.Tanh(H/2))
}

// eccentricFromTrue is the elliptic inverse of trueAnomalyFromEccentric,
// used by state->elements inversion (§4.B).
func eccentricFromTrue(nu, e float64) float64 {
	sinNu, cosNu := math.Sincos(nu)
	return math.Atan2(math.Sqrt(1-e*e)*sinNu, e+cosNu)
}

// hyperbolicFromTrue is the hyperbolic inverse, clamping the tanh argument
// to 0.9999999 to keep atanh finite near the asymptote (§4.A, §4.B, §7).
func hyperbolicFromTrue(nu, e float64) float64 {
	t := math.Tan(nu / 2) * math.Sqrt((e-1)/(e+1))
	if t > 0.9999999 {
		t = 0.9999999
	} else if t < -0.9999999 {
		t = -0.9999999
	}
	return 2 * math.Atanh(t)
}

// semiLatusRectum returns p = a(1-e^2) elliptic, |a|(e^2-1) hyperbolic.
func semiLatusRectum(el Elements) float64 {
	if el.Kind() == Hyperbolic {
		return math.Abs(el.A) * (el.E*el.E - 1)
	}
	return el.A * (1 - el.E*el.E)
}

// radiusAtTrueAnomaly returns r = p/(1+e*cos(nu)) for either branch (§4.A).
func radiusAtTrueAnomaly(el Elements, nu float64) float64 {
	p := semiLatusRectum(el)
	return p / (1 + el.E*math.Cos(nu))
}

// velocityInPlane returns the PQW-frame velocity components, with p
// floored at minSemiLatusRectum to avoid the singularity near parabolic
// orbits (§4.A).
func velocityInPlane(mu, p, e, nu float64) Vec3 {
	if p < minSemiLatusRectum {
		p = minSemiLatusRectum
	}
	sinNu, cosNu := math.Sincos(nu)
	root := math.Sqrt(mu / p)
	return Vec3{-root * sinNu, root * (e + cosNu), 0}
}

// trueAnomalyAt returns the true anomaly of el at Julian date jd, solving
// the appropriate Kepler equation for el.Kind().
func trueAnomalyAt(el Elements, jd float64) float64 {
	dt := jd - el.Epoch
	m := propagateMeanAnomaly(el, dt)
	switch el.Kind() {
	case Hyperbolic:
		H := solveKeplerHyperbolic(m, el.E)
		return trueAnomalyFromHyperbolic(H, el.E)
	default:
		E := solveKeplerElliptic(m, el.E)
		return trueAnomalyFromEccentric(E, el.E)
	}
}

// Position returns the Cartesian position of el at Julian date jd, in the
// el.Mu frame's origin. Any non-finite result is replaced with the origin
// rather than propagated. The warning goes to NopDiagnostics and is
// discarded; callers inside the package that pass their own Diagnostics
// (the predictor, ApplyThrust) get it logged.
func Position(el Elements, jd float64) Vec3 {
	return position(el, jd, NopDiagnostics())
}

// Velocity returns the Cartesian velocity of el at Julian date jd. See
// Position for the non-finite fallback contract.
func Velocity(el Elements, jd float64) Vec3 {
	return velocity(el, jd, NopDiagnostics())
}

func position(el Elements, jd float64, diag Diagnostics) Vec3 {
	nu := trueAnomalyAt(el, jd)
	r := radiusAtTrueAnomaly(el, nu)
	pqw := Vec3{r * math.Cos(nu), r * math.Sin(nu), 0}
	eci := perifocalToEcliptic(el.ArgPeriapsis, el.I, el.RAAN, pqw)
	if !finite3(eci) {
		diag.Warn("msg", "non-finite position, falling back to origin", "a", el.A, "e", el.E)
		return Vec3{}
	}
	return eci
}

func velocity(el Elements, jd float64, diag Diagnostics) Vec3 {
	nu := trueAnomalyAt(el, jd)
	p := semiLatusRectum(el)
	vpqw := velocityInPlane(el.Mu, p, el.E, nu)
	veci := perifocalToEcliptic(el.ArgPeriapsis, el.I, el.RAAN, vpqw)
	if !finite3(veci) {
		diag.Warn("msg", "non-finite velocity, falling back to zero", "a", el.A, "e", el.E)
		return Vec3{}
	}
	return veci
}
