package sail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func straightLineTrajectory(r0 Vec3, r1 Vec3, t0, t1 float64, n int) Trajectory {
	samples := make([]TrajectorySample, n+1)
	for i := 0; i <= n; i++ {
		frac := float64(i) / float64(n)
		samples[i] = TrajectorySample{
			R:    add(r0, scale(sub(r1, r0), frac)),
			Time: t0 + frac*(t1-t0),
		}
	}
	return Trajectory{Samples: samples}
}

func TestRadialShellCrossingFindsStraddle(t *testing.T) {
	p1 := Vec3{0.5, 0, 0}
	p2 := Vec3{1.5, 0, 0}
	crossTime, crossPos, ok := radialShellCrossing(p1, 0, p2, 10, 1.0, 10)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, norm(crossPos), 1e-6)
	assert.InDelta(t, 5.0, crossTime, 0.5)
}

func TestRadialShellCrossingNoStraddleReturnsFalse(t *testing.T) {
	p1 := Vec3{2.0, 0, 0}
	p2 := Vec3{3.0, 0, 0}
	_, _, ok := radialShellCrossing(p1, 0, p2, 10, 1.0, 10)
	assert.False(t, ok)
}

func TestRadialShellCrossingDegenerateBothOnShell(t *testing.T) {
	p1 := Vec3{1.0, 0, 0}
	p2 := Vec3{0, 1.0, 0}
	_, _, ok := radialShellCrossing(p1, 0, p2, 10, 1.0, 10)
	assert.False(t, ok)
}

func TestQuadraticMoreAccurateThanLinearOnCurvedSegment(t *testing.T) {
	// A chord that is not radially aligned: r(t) = |p1 + t*(p2-p1)| is not
	// linear in t, so naively interpolating t from (R-r1)/(r2-r1) lands
	// off the actual sphere, while the quadratic solve used here always
	// lands exactly on it.
	p1 := Vec3{0.4, 0, 0}
	p2 := Vec3{1.6, 1.6, 0}
	const target = 1.0

	_, crossPos, ok := radialShellCrossing(p1, 0, p2, 10, target, 20)
	assert.True(t, ok)
	assert.InDelta(t, target, norm(crossPos), 1e-9)

	r1, r2 := norm(p1), norm(p2)
	tLinear := (target - r1) / (r2 - r1)
	linearPos := add(p1, scale(sub(p2, p1), tLinear))
	assert.NotInDelta(t, target, norm(linearPos), 1e-9)
}

func TestDetectIntersectionsFindsEarthCrossing(t *testing.T) {
	outbound := Vec3{0.5, 0, 0}
	inbound := Vec3{1.5, 0, 0}
	traj := straightLineTrajectory(outbound, inbound, J2000, J2000+50, 40)

	bodies := []CelestialObject{Earth}
	precision := PrecisionForZoom(5)
	hits := DetectIntersections(traj, bodies, 0, "", precision, NoEphemeris, NopDiagnostics())

	assert.NotEmpty(t, hits)
	assert.Equal(t, "Earth", hits[0].BodyName)
}

func TestDetectIntersectionsRestrictsToSOIBody(t *testing.T) {
	outbound := Vec3{0.5, 0, 0}
	inbound := Vec3{2.0, 0, 0}
	traj := straightLineTrajectory(outbound, inbound, J2000, J2000+50, 40)

	precision := PrecisionForZoom(5)
	hits := DetectIntersections(traj, DefaultBodies, 0, "Mars", precision, NoEphemeris, NopDiagnostics())
	for _, h := range hits {
		assert.Equal(t, "Mars", h.BodyName)
	}
}

func TestDetectIntersectionsSortedByTime(t *testing.T) {
	outbound := Vec3{0.3, 0, 0}
	inbound := Vec3{2.5, 0, 0}
	traj := straightLineTrajectory(outbound, inbound, J2000, J2000+200, 200)

	precision := PrecisionForZoom(5)
	hits := DetectIntersections(traj, []CelestialObject{Venus, Earth, Mars}, 0, "", precision, NoEphemeris, NopDiagnostics())
	for i := 1; i < len(hits); i++ {
		assert.LessOrEqual(t, hits[i-1].Time, hits[i].Time)
	}
}

func TestDetectIntersectionsTooFewSamples(t *testing.T) {
	traj := Trajectory{Samples: []TrajectorySample{{R: Vec3{1, 0, 0}, Time: J2000}}}
	hits := DetectIntersections(traj, DefaultBodies, 0, "", PrecisionForZoom(5), NoEphemeris, NopDiagnostics())
	assert.Nil(t, hits)
}

func TestPrecisionForZoomTiers(t *testing.T) {
	low := PrecisionForZoom(0.5)
	mid := PrecisionForZoom(2.0)
	high := PrecisionForZoom(10.0)
	assert.Greater(t, low.SegmentStep, mid.SegmentStep)
	assert.Greater(t, mid.SegmentStep, high.SegmentStep)
	assert.Less(t, low.BisectionIterations, high.BisectionIterations)
}

func TestPickRootInUnitRangeTangentCase(t *testing.T) {
	tVal, ok := pickRootInUnitRange(0.5, 0.5)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, tVal, 1e-9)
}

func TestPickRootInUnitRangeNoneInRange(t *testing.T) {
	_, ok := pickRootInUnitRange(-5, 5.5)
	assert.False(t, ok)
}
