package sail

// SailState is the ship's solar-sail configuration (§3, "Ship").
// Deployment/Condition are percentages [0,100]; Yaw/Pitch are radians clamped
// to [-pi/2, pi/2] (§6).
type SailState struct {
	AreaM2        float64
	Reflectivity  float64
	Yaw           float64
	Pitch         float64
	DeploymentPct float64
	ConditionPct  float64
	SailCount     int
}

// ClampInputs enforces the input ranges of §6 on user-adjustable fields.
func (s *SailState) ClampInputs() {
	s.Yaw = clampFloat(s.Yaw, -yawPitchLimit, yawPitchLimit)
	s.Pitch = clampFloat(s.Pitch, -yawPitchLimit, yawPitchLimit)
	s.DeploymentPct = clampFloat(s.DeploymentPct, deploymentMin, deploymentMax)
	if s.SailCount < sailCountMin {
		s.SailCount = sailCountMin
	} else if s.SailCount > sailCountMax {
		s.SailCount = sailCountMax
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SOIState records which body's sphere of influence the ship currently
// occupies, if any (§3, §4.E).
type SOIState struct {
	ParentBody string
	IsInSOI    bool
}

// ExtremeFlybyState captures the entry conditions used for linear
// fly-through when an SOI orbit's eccentricity exceeds
// ExtremeEccentricityThreshold (§3, §4.F). Must be cleared explicitly on
// SOI exit (Open Question in spec.md §9 — resolved in DESIGN.md).
type ExtremeFlybyState struct {
	Active    bool
	EntryTime float64
	EntryPos  Vec3
	EntryVel  Vec3
}

// Ship is the player vehicle's full mutable state (§3).
type Ship struct {
	Elements          Elements
	MassKg            float64
	Sail              SailState
	SOI               SOIState
	ExtremeFlyby      ExtremeFlybyState
	cachedState       State
	cachedStateEpoch  float64
	cachedStateValid  bool
}

// CartesianState returns the ship's Cartesian state at the ship's own
// Elements.Mu frame, at el.Epoch (i.e. "now"), caching by epoch the same
// way smd's orbit.go caches Elements() by a hash of (r,v) — here keyed by
// epoch instead, since elements (not (r,v)) are the ship's source of
// truth between thrust steps.
func (sh *Ship) CartesianState() State {
	if sh.cachedStateValid && sh.cachedStateEpoch == sh.Elements.Epoch {
		return sh.cachedState
	}
	r := Position(sh.Elements, sh.Elements.Epoch)
	v := Velocity(sh.Elements, sh.Elements.Epoch)
	var st State
	if sh.SOI.IsInSOI {
		st = PlanetoState(r, v, sh.SOI.ParentBody)
	} else {
		st = HelioState(r, v)
	}
	sh.cachedState = st
	sh.cachedStateEpoch = sh.Elements.Epoch
	sh.cachedStateValid = true
	return st
}

// invalidateCache must be called by anything that mutates sh.Elements or
// sh.SOI outside of the normal thrust-step path.
func (sh *Ship) invalidateCache() {
	sh.cachedStateValid = false
}
