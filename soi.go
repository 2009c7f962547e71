package sail

// HelioToPlanetocentric converts a heliocentric state to the frame
// centered on parent (given parent's own heliocentric state), by linear
// subtraction (§4.E). The round trip with PlanetocentricToHelio is the
// identity to machine precision (§8).
func HelioToPlanetocentric(shipR, shipV, parentR, parentV Vec3) (Vec3, Vec3) {
	return sub(shipR, parentR), sub(shipV, parentV)
}

// PlanetocentricToHelio is the inverse of HelioToPlanetocentric.
func PlanetocentricToHelio(relR, relV, parentR, parentV Vec3) (Vec3, Vec3) {
	return add(relR, parentR), add(relV, parentV)
}

// SOIEntryResult names the body whose SOI the ship has entered, and the
// set of other bodies whose SOI also overlapped (for diagnostics).
type SOIEntryResult struct {
	Body        CelestialObject
	Alternatives []CelestialObject
}

// CheckSOIEntry implements §4.E's entry check: among all bodies with a
// positive SOI radius, collect those within range of the ship's
// heliocentric position, and if more than one overlaps, pick the one
// with the largest mu/d^2 (dominant gravity), logging the others as
// alternatives (§7, "SOI ambiguity").
func CheckSOIEntry(shipHelioR Vec3, bodies []CelestialObject, jd float64, oracle EphemerisOracle, diag Diagnostics) (SOIEntryResult, bool) {
	type candidate struct {
		body CelestialObject
		d    float64
	}
	var candidates []candidate
	for _, b := range bodies {
		if b.SOIRadiusAU <= 0 {
			continue
		}
		bodyR := HelioPosition(b, jd, oracle)
		d := norm(sub(shipHelioR, bodyR))
		if d < b.SOIRadiusAU {
			candidates = append(candidates, candidate{b, d})
		}
	}
	if len(candidates) == 0 {
		return SOIEntryResult{}, false
	}
	best := 0
	bestScore := candidates[0].body.Mu / (candidates[0].d * candidates[0].d)
	for i := 1; i < len(candidates); i++ {
		score := candidates[i].body.Mu / (candidates[i].d * candidates[i].d)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	var alts []CelestialObject
	for i, c := range candidates {
		if i != best {
			alts = append(alts, c.body)
		}
	}
	if len(alts) > 0 {
		diag.Info("msg", "SOI overlap, picked dominant body", "chosen", candidates[best].body.Name, "alternatives", len(alts))
	}
	return SOIEntryResult{Body: candidates[best].body, Alternatives: alts}, true
}

// CheckSOIExit implements §4.E's exit check: in the planetocentric frame
// of parent, exit once |r_rel| exceeds soiRadius*1.01 (hysteresis).
func CheckSOIExit(relR Vec3, parent CelestialObject) bool {
	return norm(relR) > parent.SOIRadiusAU*soiExitHysteresis
}

// TransitionToSOI executes the four-step entry protocol of §4.E: compute
// (r,v) in the current (heliocentric) frame, convert to the new
// (planetocentric) frame, reconstruct elements with the new mu and jd as
// epoch, and update soiState.
func TransitionToSOI(sh *Ship, body CelestialObject, jd float64, oracle EphemerisOracle, diag Diagnostics) {
	r := Position(sh.Elements, jd)
	v := Velocity(sh.Elements, jd)
	parentR, parentV := BodyHelioState(body, jd, oracle)
	relR, relV := HelioToPlanetocentric(r, v, parentR, parentV)
	sh.Elements = ElementsFromStateInSOI(relR, relV, body.Mu, jd, sh.Elements)
	sh.SOI = SOIState{ParentBody: body.Name, IsInSOI: true}
	sh.invalidateCache()
	diag.Info("msg", "entered SOI", "body", body.Name, "jd", jd)
}

// TransitionFromSOI executes the reverse protocol on SOI exit: convert the
// planetocentric (r,v) back to heliocentric, reconstruct elements with
// Sun's mu, and clear both SOI and extreme-flyby state — the explicit
// clearing resolves spec.md §9's open question about whether extreme-flyby
// fly-through should persist past eccentricity decay: it must not, so it
// is cleared unconditionally on exit.
func TransitionFromSOI(sh *Ship, parent CelestialObject, jd float64, oracle EphemerisOracle, diag Diagnostics) {
	relR := Position(sh.Elements, jd)
	relV := Velocity(sh.Elements, jd)
	parentR, parentV := BodyHelioState(parent, jd, oracle)
	r, v := PlanetocentricToHelio(relR, relV, parentR, parentV)
	sh.Elements = ElementsFromState(r, v, MuSun, jd, sh.Elements)
	sh.SOI = SOIState{}
	sh.ExtremeFlyby = ExtremeFlybyState{}
	sh.invalidateCache()
	diag.Info("msg", "exited SOI", "body", parent.Name, "jd", jd)
}
