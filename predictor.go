package sail

import (
	"math"
	"time"
)

// TruncationTag marks why a predicted trajectory's last retained sample is
// the end of the line (§3, "Trajectory"; §4.F).
type TruncationTag uint8

const (
	NoTruncation TruncationTag = iota
	SOIExit
	MaxDistance
	SunApproach
	OrbitalInstability
	EccentricInstability
)

func (t TruncationTag) String() string {
	switch t {
	case SOIExit:
		return "SOI_EXIT"
	case MaxDistance:
		return "MAX_DISTANCE"
	case SunApproach:
		return "SUN_APPROACH"
	case OrbitalInstability:
		return "ORBITAL_INSTABILITY"
	case EccentricInstability:
		return "ECCENTRIC_INSTABILITY"
	default:
		return ""
	}
}

// TrajectorySample is one point of a predicted polyline, always
// heliocentric on output (§3).
type TrajectorySample struct {
	R    Vec3
	Time float64 // Julian date
}

// Trajectory is a predicted polyline with an optional truncation tag on
// its last sample (§3).
type Trajectory struct {
	Samples    []TrajectorySample
	Truncation TruncationTag
}

// PredictInput bundles every input that affects the predicted polyline, so
// it can double as the predictor's cache key (§4.F).
type PredictInput struct {
	Elements     Elements
	Sail         SailState
	MassKg       float64
	StartTime    float64
	DurationDays float64
	Steps        int
	SOI          SOIState
	ExtremeFlyby ExtremeFlybyState
	Bodies       []CelestialObject // defaults to DefaultBodies when nil
	Oracle       EphemerisOracle   // defaults to NoEphemeris when nil
}

func sailIsActive(s SailState) bool {
	return s.AreaM2 > 0 && s.DeploymentPct > 0 && s.ConditionPct > 0 && s.SailCount > 0
}

func findBody(bodies []CelestialObject, name string) (CelestialObject, bool) {
	for _, b := range bodies {
		if b.Name == name {
			return b, true
		}
	}
	return CelestialObject{}, false
}

// Predictor owns the single-slot trajectory cache of §3/§4.F/§5: one
// owner, read-modify-written within a tick, no locking (the core is
// single-threaded cooperative, §5) — the struct itself is the "builder
// returns fresh caches for testing" pattern of Design Notes §9.
type Predictor struct {
	diag      Diagnostics
	hasCache  bool
	hash      float64
	computed  time.Time
	result    Trajectory
}

// NewPredictor returns a Predictor with an empty cache.
func NewPredictor(diag Diagnostics) *Predictor {
	return &Predictor{diag: diag}
}

// inputHash sums a weighted float encoding of the inputs that affect the
// polyline: elements, sail, mass, rounded start time, duration, steps, SOI
// parent, and the extreme-flyby entry time and the x components of its
// entry position and velocity. Bodies and Oracle are not part of the hash.
// This is the same lightweight technique smd's
// orbit.go uses for its own element cache (`computeHash` sums r+v
// components) rather than a cryptographic hash — adequate here because
// the cache only needs to detect "did anything change", not resist
// adversarial collision.
func inputHash(in PredictInput) float64 {
	roundedStart := math.Round(in.StartTime*1e8) / 1e8
	h := in.Elements.A + in.Elements.E*2 + in.Elements.I*3 + in.Elements.RAAN*4 +
		in.Elements.ArgPeriapsis*5 + in.Elements.M0*6 + in.Elements.Epoch*7 + in.Elements.Mu*8
	h += in.Sail.Yaw*9 + in.Sail.Pitch*10 + in.Sail.DeploymentPct*11 + in.Sail.ConditionPct*12 +
		float64(in.Sail.SailCount)*13 + in.Sail.AreaM2*14 + in.Sail.Reflectivity*15
	h += in.MassKg*16 + roundedStart*17 + in.DurationDays*18 + float64(in.Steps)*19
	if in.SOI.IsInSOI {
		for _, c := range in.SOI.ParentBody {
			h += float64(c) * 0.001
		}
		h += 1000
	}
	if in.ExtremeFlyby.Active {
		h += in.ExtremeFlyby.EntryTime*20 + in.ExtremeFlyby.EntryPos[0]*21 + in.ExtremeFlyby.EntryVel[0]*22
	}
	return h
}

// Predict returns the cached trajectory if in matches the last computed
// input and the cache is younger than TrajectoryCacheTTLMillis, else
// recomputes and replaces the cache (§4.F). `now` is threaded in rather
// than read from the clock internally, keeping Predict a function of its
// arguments (Design Notes §9 rejects module-level mutable state).
func (p *Predictor) Predict(in PredictInput, now time.Time) Trajectory {
	h := inputHash(in)
	if p.hasCache && p.hash == h && now.Sub(p.computed) < TrajectoryCacheTTLMillis*time.Millisecond {
		return p.result
	}
	result := computeTrajectory(in, p.diag)
	p.hasCache = true
	p.hash = h
	p.computed = now
	p.result = result
	return result
}

// InvalidateCache forces the next Predict call to recompute regardless of
// hash/TTL, for hosts driving a periodic full-cache cleanup (§5).
func (p *Predictor) InvalidateCache() {
	p.hasCache = false
}

func computeTrajectory(in PredictInput, diag Diagnostics) Trajectory {
	bodies := in.Bodies
	if bodies == nil {
		bodies = DefaultBodies
	}
	oracle := in.Oracle
	if oracle == nil {
		oracle = NoEphemeris
	}

	steps := in.Steps
	if steps < 1 {
		steps = 1
	}
	dt := in.DurationDays / float64(steps)

	curElements := in.Elements
	curSOI := in.SOI
	curFlyby := in.ExtremeFlyby

	samples := make([]TrajectorySample, 0, steps+1)
	truncation := NoTruncation

	for i := 0; i <= steps; i++ {
		t := in.StartTime + float64(i)*dt

		usingLinear := curFlyby.Active && curSOI.IsInSOI && curElements.E > ExtremeEccentricityThreshold
		var posFrame, velFrame Vec3
		if usingLinear {
			posFrame = add(curFlyby.EntryPos, scale(curFlyby.EntryVel, t-curFlyby.EntryTime))
			velFrame = curFlyby.EntryVel
		} else {
			posFrame = position(curElements, t, diag)
			velFrame = velocity(curElements, t, diag)
		}

		if !finite3(posFrame) {
			truncation = OrbitalInstability
			diag.Warn("msg", "non-finite position during prediction, truncating", "step", i)
			break
		}

		d := norm(posFrame)
		stepTag := NoTruncation
		var soiBody CelestialObject
		if curSOI.IsInSOI {
			body, found := findBody(bodies, curSOI.ParentBody)
			soiBody = body
			if found && d > body.SOIRadiusAU*soiExitTruncationFactor {
				stepTag = SOIExit
			}
		} else {
			if d > MaxHeliocentricRadius {
				stepTag = MaxDistance
			} else if d < sunApproachFactor*MinHeliocentricRadius {
				stepTag = SunApproach
			}
		}

		helioR := posFrame
		if curSOI.IsInSOI {
			parentR := HelioPosition(soiBody, t, oracle)
			helioR = add(posFrame, parentR)
		}
		samples = append(samples, TrajectorySample{R: helioR, Time: t})

		if stepTag != NoTruncation {
			truncation = stepTag
			break
		}
		if i == steps {
			break
		}

		if sailIsActive(in.Sail) && !usingLinear {
			helioV := velFrame
			if curSOI.IsInSOI {
				_, parentV := BodyHelioState(soiBody, t, oracle)
				helioV = add(velFrame, parentV)
			}
			accel := ThrustAcceleration(helioR, helioV, in.MassKg, in.Sail)
			newElements := ApplyThrust(curElements, accel, dt, t, diag)
			if !newElements.Valid() {
				truncation = OrbitalInstability
				diag.Warn("msg", "thrust step produced non-finite elements, truncating", "step", i)
				break
			}
			if newElements.E < 0 || newElements.E > ExtremeEccentricityThreshold {
				truncation = EccentricInstability
				diag.Warn("msg", "thrust step produced extreme eccentricity, truncating", "step", i, "e", newElements.E)
				break
			}
			curElements = newElements
		}
	}

	return Trajectory{Samples: samples, Truncation: truncation}
}
