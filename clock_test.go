package sail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockAdvance(t *testing.T) {
	c := NewClock(J2000)
	c.SetSpeed(SpeedDay)
	c.Advance()
	assert.InDelta(t, J2000+1, c.JD, 1e-12)
}

func TestClockSetSpeedUnknownPresetRejected(t *testing.T) {
	c := NewClock(J2000)
	ok := c.SetSpeed(SpeedPreset("bogus"))
	assert.False(t, ok)
	assert.Equal(t, SpeedRealtime, c.Speed)
}

func TestPlanningModeSnapshotIntegrity(t *testing.T) {
	c := NewClock(J2000)
	ship := &Ship{Elements: NewElements(1.0, 0.1, 0, 0, 0, 0, J2000, MuSun)}
	ship.Sail.Yaw = 0.1

	preEntryJD := c.JD
	preEntryYaw := ship.Sail.Yaw

	c.EnterPlanning(ship, "ship")
	assert.True(t, c.Planning)
	assert.Equal(t, 0.0, c.TimeScale)

	c.SetSandboxOffset(100)
	ship.Sail.Yaw += 0.5

	c.ExitPlanning(ship)

	assert.False(t, c.Planning)
	assert.Equal(t, preEntryJD, c.JD)
	assert.Equal(t, preEntryYaw, ship.Sail.Yaw)
	assert.Equal(t, 0.0, c.SandboxOffset)
}

func TestPlanningModeEffectiveJD(t *testing.T) {
	c := NewClock(J2000)
	ship := &Ship{}
	c.EnterPlanning(ship, "")
	c.SetSandboxOffset(50)
	assert.InDelta(t, J2000+50, c.EffectiveJD(), 1e-9)
}

func TestPlanningModeSandboxOffsetClamped(t *testing.T) {
	c := NewClock(J2000)
	ship := &Ship{}
	c.EnterPlanning(ship, "")
	c.SetSandboxOffset(-10)
	assert.Equal(t, 0.0, c.SandboxOffset)
	c.SetSandboxOffset(10000)
	assert.Equal(t, planningOffsetMaxDays, c.SandboxOffset)
}

func TestSandboxOffsetBoundIsHostTunable(t *testing.T) {
	c := NewClock(J2000)
	c.MaxSandboxOffsetDays = 30
	c.SetSandboxOffset(10000)
	assert.Equal(t, 30.0, c.SandboxOffset)
}

func TestPlanningModeEntryIsIdempotent(t *testing.T) {
	c := NewClock(J2000)
	ship := &Ship{}
	c.EnterPlanning(ship, "first")
	c.EnterPlanning(ship, "second") // must not overwrite the snapshot
	target := c.ExitPlanning(ship)
	assert.Equal(t, "first", target)
}

func TestPlanningModeExitWithoutEntryIsNoOp(t *testing.T) {
	c := NewClock(J2000)
	ship := &Ship{}
	target := c.ExitPlanning(ship)
	assert.Equal(t, "", target)
}

func TestSpeedBlockedDuringPlanning(t *testing.T) {
	c := NewClock(J2000)
	ship := &Ship{}
	c.EnterPlanning(ship, "")
	ok := c.SetSpeed(SpeedWeek)
	assert.False(t, ok)
}
