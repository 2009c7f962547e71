package sail

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementsFromStateRoundTripElliptic(t *testing.T) {
	original := NewElements(1.3, 0.2, 0.3, 1.1, 0.5, 0.9, J2000, MuSun)
	r := Position(original, J2000)
	v := Velocity(original, J2000)

	recovered := ElementsFromState(r, v, MuSun, J2000, Elements{})

	assert.InDelta(t, original.A, recovered.A, 1e-8)
	assert.InDelta(t, original.E, recovered.E, 1e-8)
	assert.InDelta(t, original.I, recovered.I, 1e-8)

	rBack := Position(recovered, J2000)
	vBack := Velocity(recovered, J2000)
	assert.InDelta(t, 0.0, norm(sub(r, rBack)), 1e-8)
	assert.InDelta(t, 0.0, norm(sub(v, vBack)), 1e-8)
}

func TestElementsFromStateRoundTripCircularEquatorial(t *testing.T) {
	original := NewElements(1.0, 0, 0, 0, 0, 1.2, J2000, MuSun)
	r := Position(original, J2000)
	v := Velocity(original, J2000)

	recovered := ElementsFromState(r, v, MuSun, J2000, Elements{})
	assert.InDelta(t, 1.0, recovered.A, 1e-8)
	assert.InDelta(t, 0.0, recovered.E, 1e-6)

	rBack := Position(recovered, J2000)
	assert.InDelta(t, 0.0, norm(sub(r, rBack)), 1e-8)
}

func TestElementsFromStateRoundTripHyperbolic(t *testing.T) {
	original := NewElements(-1.5, 1.3, 0.2, 0.4, 0.3, 0.1, J2000, MuSun)
	r := Position(original, J2000)
	v := Velocity(original, J2000)

	recovered := ElementsFromState(r, v, MuSun, J2000, Elements{})
	assert.Equal(t, Hyperbolic, recovered.Kind())

	rBack := Position(recovered, J2000)
	assert.InDelta(t, 0.0, norm(sub(r, rBack)), 1e-6)
}

func TestElementsFromStateCorruptInputReturnsFallback(t *testing.T) {
	fallback := NewElements(2.0, 0.1, 0, 0, 0, 0, J2000, MuSun)
	recovered := ElementsFromState(Vec3{}, Vec3{1, 0, 0}, MuSun, J2000, fallback)
	assert.Equal(t, fallback, recovered)
}

func TestElementsFromStateInSOIUsesTighterFloor(t *testing.T) {
	r := Vec3{1e-7, 0, 0}
	v := Vec3{0, 1e-7, 0}
	el := ElementsFromStateInSOI(r, v, 1e-10, J2000, Elements{})
	assert.GreaterOrEqual(t, math.Abs(el.A), minSemiMajorAxisInsideSOI*0.999)
}
