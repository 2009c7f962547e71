package sail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSailStateClampInputs(t *testing.T) {
	s := SailState{Yaw: 10, Pitch: -10, DeploymentPct: 150, SailCount: 100}
	s.ClampInputs()
	assert.Equal(t, yawPitchLimit, s.Yaw)
	assert.Equal(t, -yawPitchLimit, s.Pitch)
	assert.Equal(t, deploymentMax, s.DeploymentPct)
	assert.Equal(t, sailCountMax, s.SailCount)
}

func TestSailStateClampInputsLowerBounds(t *testing.T) {
	s := SailState{DeploymentPct: -20, SailCount: 0}
	s.ClampInputs()
	assert.Equal(t, deploymentMin, s.DeploymentPct)
	assert.Equal(t, sailCountMin, s.SailCount)
}

func TestShipCartesianStateCachesByEpoch(t *testing.T) {
	sh := &Ship{Elements: NewElements(1.0, 0.1, 0, 0, 0, 0, J2000, MuSun), MassKg: 100}
	first := sh.CartesianState()
	second := sh.CartesianState()
	assert.Equal(t, first, second)

	sh.Elements = NewElements(1.0, 0.1, 0, 0, 0, 0.5, J2000+1, MuSun)
	sh.invalidateCache()
	third := sh.CartesianState()
	assert.NotEqual(t, first.R, third.R)
}

func TestShipCartesianStatePlanetocentricWhenInSOI(t *testing.T) {
	sh := &Ship{
		Elements: NewElements(0.01, 0.05, 0, 0, 0, 0, J2000, Earth.Mu),
		SOI:      SOIState{ParentBody: "Earth", IsInSOI: true},
	}
	st := sh.CartesianState()
	assert.Equal(t, Planetocentric, st.Frame)
	assert.Equal(t, "Earth", st.Origin)
}
