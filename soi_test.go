package sail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelioPlanetocentricRoundTrip(t *testing.T) {
	shipR, shipV := Vec3{1.1, 0.2, 0}, Vec3{0, 0.9, 0}
	parentR, parentV := Vec3{1.0, 0, 0}, Vec3{0, 1.0, 0}

	relR, relV := HelioToPlanetocentric(shipR, shipV, parentR, parentV)
	backR, backV := PlanetocentricToHelio(relR, relV, parentR, parentV)

	assert.InDelta(t, 0.0, norm(sub(shipR, backR)), 1e-12)
	assert.InDelta(t, 0.0, norm(sub(shipV, backV)), 1e-12)
}

func TestCheckSOIEntryPicksDominantBody(t *testing.T) {
	earthR := HelioPosition(Earth, J2000, NoEphemeris)
	result, ok := CheckSOIEntry(earthR, []CelestialObject{Earth, Mars}, J2000, NoEphemeris, NopDiagnostics())
	assert.True(t, ok)
	assert.Equal(t, "Earth", result.Body.Name)
}

func TestCheckSOIEntryNoneInRange(t *testing.T) {
	farR := Vec3{500, 0, 0}
	_, ok := CheckSOIEntry(farR, DefaultBodies, J2000, NoEphemeris, NopDiagnostics())
	assert.False(t, ok)
}

func TestCheckSOIExitHysteresis(t *testing.T) {
	justInside := Vec3{Earth.SOIRadiusAU * 1.005, 0, 0}
	justOutside := Vec3{Earth.SOIRadiusAU * 1.02, 0, 0}
	assert.False(t, CheckSOIExit(justInside, Earth))
	assert.True(t, CheckSOIExit(justOutside, Earth))
}

func TestTransitionToAndFromSOIRoundTrip(t *testing.T) {
	sh := &Ship{Elements: NewElements(1.0, 0.05, 0.01, 0, 0, 0, J2000, MuSun), MassKg: 500}
	rBefore := Position(sh.Elements, J2000)

	TransitionToSOI(sh, Earth, J2000, NoEphemeris, NopDiagnostics())
	assert.True(t, sh.SOI.IsInSOI)
	assert.Equal(t, "Earth", sh.SOI.ParentBody)

	TransitionFromSOI(sh, Earth, J2000, NoEphemeris, NopDiagnostics())
	assert.False(t, sh.SOI.IsInSOI)

	rAfter := Position(sh.Elements, J2000)
	assert.InDelta(t, 0.0, norm(sub(rBefore, rAfter)), 1e-6)
}

func TestTransitionFromSOIClearsExtremeFlyby(t *testing.T) {
	sh := &Ship{
		Elements:     NewElements(0.01, 0.1, 0, 0, 0, 0, J2000, Earth.Mu),
		SOI:          SOIState{ParentBody: "Earth", IsInSOI: true},
		ExtremeFlyby: ExtremeFlybyState{Active: true, EntryTime: J2000},
	}
	TransitionFromSOI(sh, Earth, J2000, NoEphemeris, NopDiagnostics())
	assert.Equal(t, ExtremeFlybyState{}, sh.ExtremeFlyby)
}
