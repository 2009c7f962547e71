package sail

import (
	"math"
	"sort"
)

// Intersection is an encounter marker: the point where a predicted
// trajectory crosses a body's orbital path ("ghost planet", Glossary; §3).
type Intersection struct {
	BodyName                     string
	Time                         float64 // Julian date
	BodyPositionAtTime           Vec3
	TrajectoryPositionAtCrossing Vec3
	Distance                     float64 // always 0; kept for the output shape of §3
}

// DetectorPrecision tunes the zoom-adaptive sampling of §4.G: at low zoom,
// segments are skipped and bisection/dedup are coarser; at high zoom,
// every segment is tested at full precision.
type DetectorPrecision struct {
	SegmentStep         int
	BisectionIterations int
	DedupRoundingDays   float64
}

// PrecisionForZoom maps a zoom level (arbitrary units, larger = more
// zoomed in) to a DetectorPrecision, per §4.G's "zoom-adaptive sampling".
func PrecisionForZoom(zoom float64) DetectorPrecision {
	switch {
	case zoom < 1:
		return DetectorPrecision{SegmentStep: 4, BisectionIterations: 4, DedupRoundingDays: 1.0}
	case zoom < 3:
		return DetectorPrecision{SegmentStep: 2, BisectionIterations: 6, DedupRoundingDays: 0.1}
	default:
		return DetectorPrecision{SegmentStep: 1, BisectionIterations: 10, DedupRoundingDays: 0.001}
	}
}

// DetectIntersections finds where trajectory crosses each body's orbital
// plane (or radial shell, for low-inclination bodies) per §4.G. soiBody,
// when non-empty, restricts detection to that one body. activeTimeJD
// filters out crossings whose segment has already fully elapsed.
func DetectIntersections(trajectory Trajectory, bodies []CelestialObject, activeTimeJD float64, soiBody string, precision DetectorPrecision, oracle EphemerisOracle, diag Diagnostics) []Intersection {
	samples := trajectory.Samples
	if len(samples) < 2 {
		return nil
	}
	if oracle == nil {
		oracle = NoEphemeris
	}

	const margin = 0.02
	rMin, rMax := math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		r := norm(s.R)
		if r < rMin {
			rMin = r
		}
		if r > rMax {
			rMax = r
		}
	}
	rMin -= margin
	rMax += margin

	candidates := make([]CelestialObject, 0, len(bodies))
	for _, b := range bodies {
		if !b.HasElements {
			continue
		}
		if soiBody != "" && b.Name != soiBody {
			continue
		}
		peri, apo := b.Elements.A*(1-b.Elements.E), b.Elements.A*(1+b.Elements.E)
		if apo < rMin || peri > rMax {
			continue
		}
		candidates = append(candidates, b)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Elements.A < candidates[j].Elements.A })

	step := precision.SegmentStep
	if step < 1 {
		step = 1
	}
	iterations := precision.BisectionIterations
	if iterations < 1 {
		iterations = 1
	}
	dedupRound := precision.DedupRoundingDays
	if dedupRound <= 0 {
		dedupRound = 0.001
	}

	var out []Intersection
	for _, body := range candidates {
		peri, apo := body.Elements.A*(1-body.Elements.E), body.Elements.A*(1+body.Elements.E)
		n := orbitalPlaneNormal(body.Elements.I, body.Elements.RAAN)
		lowIncl := math.Abs(body.Elements.I) < lowInclinationThreshold

		var found []Intersection
		seenTimes := make(map[float64]bool)

		for i := 0; i+step < len(samples); i += step {
			p1, p2 := samples[i], samples[i+step]
			if p2.Time < activeTimeJD {
				continue
			}

			var crossTime float64
			var crossPos Vec3
			var ok bool

			if lowIncl {
				crossTime, crossPos, ok = radialShellCrossing(p1.R, p1.Time, p2.R, p2.Time, body.Elements.A, iterations)
			} else {
				segLen := norm(sub(p2.R, p1.R))
				d1, d2 := dot(n, p1.R), dot(n, p2.R)
				switch {
				case d1*d2 > 0:
					ok = false
				case segLen > 0 && math.Abs(d1) < 1e-3*segLen && math.Abs(d2) < 1e-3*segLen:
					crossTime, crossPos, ok = radialShellCrossing(p1.R, p1.Time, p2.R, p2.Time, body.Elements.A, iterations)
				default:
					tParam := -d1 / (d2 - d1)
					pt := add(p1.R, scale(sub(p2.R, p1.R), tParam))
					rc := norm(pt)
					if rc < peri-0.005 || rc > apo+0.005 {
						ok = false
					} else {
						crossTime = p1.Time + tParam*(p2.Time-p1.Time)
						crossPos = pt
						ok = true
					}
				}
			}

			if !ok {
				continue
			}
			key := math.Round(crossTime/dedupRound) * dedupRound
			if seenTimes[key] {
				continue
			}
			seenTimes[key] = true

			bodyPos := HelioPosition(body, crossTime, oracle)
			found = append(found, Intersection{
				BodyName:                     body.Name,
				Time:                         crossTime,
				BodyPositionAtTime:           bodyPos,
				TrajectoryPositionAtCrossing: crossPos,
				Distance:                     0,
			})
		}
		out = append(out, found...)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	if len(out) > maxIntersections {
		diag.Warn("msg", "truncating intersections to max", "found", len(out), "max", maxIntersections)
		out = out[:maxIntersections]
	}
	return out
}

// orbitalPlaneNormal returns n = (sin(Omega)*sin(i), -cos(Omega)*sin(i),
// cos(i)), the body's orbital-plane normal (§4.G).
func orbitalPlaneNormal(i, raan float64) Vec3 {
	sinI, cosI := math.Sincos(i)
	sinO, cosO := math.Sincos(raan)
	return Vec3{sinO * sinI, -cosO * sinI, cosI}
}

// radialShellCrossing finds where the segment p1->p2 crosses the sphere of
// radius targetR, per §4.G step 4: an inclusive straddle check (so a
// sample that lands exactly on the target radius due to float reuse
// between frames still counts as a crossing, which is what keeps the
// detector from flickering), bisection refinement, and a final quadratic
// solve with a small-negative-discriminant clamp for the tangent case.
func radialShellCrossing(p1 Vec3, t1 float64, p2 Vec3, t2 float64, targetR float64, iterations int) (float64, Vec3, bool) {
	r1, r2 := norm(p1), norm(p2)
	straddles := (r1 <= targetR && r2 >= targetR) || (r1 >= targetR && r2 <= targetR)
	if !straddles {
		return 0, Vec3{}, false
	}
	if r1 == targetR && r2 == targetR {
		return 0, Vec3{}, false
	}

	tLo, tHi := 0.0, 1.0
	d := sub(p2, p1)
	at := func(t float64) Vec3 { return add(p1, scale(d, t)) }

	for k := 0; k < iterations; k++ {
		tMid := (tLo + tHi) / 2
		rLo := norm(at(tLo))
		rMid := norm(at(tMid))
		loStraddles := (rLo <= targetR && rMid >= targetR) || (rLo >= targetR && rMid <= targetR)
		if loStraddles {
			tHi = tMid
		} else {
			tLo = tMid
		}
	}

	q1, q2 := at(tLo), at(tHi)
	qd := sub(q2, q1)
	aC := dot(qd, qd)
	bC := 2 * dot(q1, qd)
	cC := dot(q1, q1) - targetR*targetR

	var tLocal float64
	solved := false
	if aC > 1e-20 {
		disc := bC*bC - 4*aC*cC
		if disc < 0 && disc > -1e-10 {
			disc = 0
		}
		if disc >= 0 {
			sq := math.Sqrt(disc)
			ra, rb := (-bC+sq)/(2*aC), (-bC-sq)/(2*aC)
			if t, ok := pickRootInUnitRange(ra, rb); ok {
				tLocal = t
				solved = true
			}
		}
	}
	if !solved {
		rq1, rq2 := norm(q1), norm(q2)
		if rq2 == rq1 {
			return 0, Vec3{}, false
		}
		tLocal = (targetR - rq1) / (rq2 - rq1)
	}
	if tLocal < 0 {
		tLocal = 0
	} else if tLocal > 1 {
		tLocal = 1
	}

	tAbs := tLo + tLocal*(tHi-tLo)
	crossTime := t1 + tAbs*(t2-t1)
	crossPos := at(tAbs)
	return crossTime, crossPos, true
}

// pickRootInUnitRange prefers the smaller of two quadratic roots that
// falls in [0,1] (the first crossing along the segment), per §4.G's
// "never exactly 1 crossing for a tangent" stability rule (§8): when both
// roots coincide (tangent), either branch returns the same single answer.
func pickRootInUnitRange(a, b float64) (float64, bool) {
	aOK := a >= -1e-9 && a <= 1+1e-9
	bOK := b >= -1e-9 && b <= 1+1e-9
	switch {
	case aOK && bOK:
		if a <= b {
			return clampFloat(a, 0, 1), true
		}
		return clampFloat(b, 0, 1), true
	case aOK:
		return clampFloat(a, 0, 1), true
	case bOK:
		return clampFloat(b, 0, 1), true
	default:
		return 0, false
	}
}
